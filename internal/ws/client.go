package ws

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 4096

	// Outbound frames buffered per connection before sends are dropped
	sendBuffer = 256
)

// Client is one live websocket session for an authenticated user.
type Client struct {
	userID string
	conn   *websocket.Conn

	// Buffered channel of encoded outbound frames. Senders never write to
	// the socket directly; a slow peer fills its own buffer and loses
	// frames instead of stalling anyone else.
	send chan []byte

	done chan struct{}
	once sync.Once
}

func newClient(userID string, conn *websocket.Conn) *Client {
	return &Client{
		userID: userID,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		done:   make(chan struct{}),
	}
}

// UserID returns the authenticated identity bound to this connection.
func (c *Client) UserID() string {
	return c.userID
}

// close shuts the connection down at most once, no matter how many of the
// peer-close / read-error / superseded paths race into it.
func (c *Client) close() {
	c.once.Do(func() {
		close(c.done)
		if c.conn != nil {
			c.conn.Close()
		}
	})
}

// enqueue hands an encoded frame to the write pump without blocking and
// reports whether the frame was accepted. Delivery is best effort: a closed
// connection or a full buffer drops the frame.
func (c *Client) enqueue(frame []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- frame:
		return true
	case <-c.done:
		return false
	default:
		return false
	}
}

// readPump pumps inbound frames from the websocket to the hub's router.
// Frames are processed in arrival order; dispatch to recipients never blocks
// the loop. The pump owns teardown: when the read side fails for any reason
// the client is detached exactly once.
func (c *Client) readPump(hub *Hub) {
	defer func() {
		c.close()
		hub.Detach(c)
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Debug("websocket read error", "userID", c.userID, "error", err)
			}
			return
		}
		hub.route(c, data)
	}
}

// writePump drains the send buffer onto the websocket and keeps the
// connection alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case frame := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				slog.Debug("websocket write error", "userID", c.userID, "error", err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}
