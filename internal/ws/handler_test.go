package ws

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier map[string]string

func (s stubVerifier) VerifyToken(_ context.Context, token string) (string, error) {
	if userID, ok := s[token]; ok {
		return userID, nil
	}
	return "", errors.New("invalid token")
}

func newTestServer(t *testing.T, hub *Hub, verifier TokenVerifier) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/ws", ServeWS(hub, verifier))
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, token string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/ws?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

// awaitEvent reads frames until one matches, skipping unrelated presence
// traffic from other connections in the test.
func awaitEvent(t *testing.T, conn *websocket.Conn, match func(Event) bool) Event {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	for {
		_, data, err := conn.ReadMessage()
		require.NoError(t, err, "timed out waiting for event")
		ev, err := Decode(data)
		require.NoError(t, err)
		if match(ev) {
			return ev
		}
	}
}

func TestServeWSRejectsMissingOrInvalidToken(t *testing.T) {
	hub := NewHub(nil, nil)
	srv := newTestServer(t, hub, stubVerifier{})

	for _, path := range []string{"/api/ws", "/api/ws?token=bogus"} {
		url := "ws" + strings.TrimPrefix(srv.URL, "http") + path
		_, resp, err := websocket.DefaultDialer.Dial(url, nil)
		assert.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}

	// A refused handshake leaves no registry state behind
	assert.Equal(t, 0, hub.Registry().Count())
}

func TestLiveChannelScenario(t *testing.T) {
	hub := NewHub(nil, nil)
	verifier := stubVerifier{"token-a": "user-a", "token-b": "user-b"}
	srv := newTestServer(t, hub, verifier)

	connA := dial(t, srv, "token-a")
	awaitEvent(t, connA, func(ev Event) bool {
		return ev.Kind == KindStatus && ev.UserID == "user-a" && ev.Status == StatusOnline
	})

	connB := dial(t, srv, "token-b")

	// Both sides observe B coming online, B included
	for _, conn := range []*websocket.Conn{connA, connB} {
		awaitEvent(t, conn, func(ev Event) bool {
			return ev.Kind == KindStatus && ev.UserID == "user-b" && ev.Status == StatusOnline
		})
	}

	// A sends a chat frame addressed to B
	err := connA.WriteMessage(websocket.TextMessage, []byte(`{"kind":"chat","to":"user-b","text":"hello","matchId":"m1"}`))
	require.NoError(t, err)

	chat := awaitEvent(t, connB, func(ev Event) bool { return ev.Kind == KindChat })
	assert.Equal(t, "user-a", chat.From)
	assert.Equal(t, "hello", chat.Text)
	assert.Equal(t, "m1", chat.MatchID)
	_, err = time.Parse(time.RFC3339, chat.CreatedAt)
	assert.NoError(t, err)

	// Typing indicator follows the same path
	err = connA.WriteMessage(websocket.TextMessage, []byte(`{"kind":"typing","to":"user-b","matchId":"m1"}`))
	require.NoError(t, err)
	typing := awaitEvent(t, connB, func(ev Event) bool { return ev.Kind == KindTyping })
	assert.Equal(t, "user-a", typing.From)

	// A disconnects; every remaining connection sees the offline transition
	require.NoError(t, connA.Close())
	awaitEvent(t, connB, func(ev Event) bool {
		return ev.Kind == KindStatus && ev.UserID == "user-a" && ev.Status == StatusOffline
	})
}

func TestNotifyReachesConnectedClient(t *testing.T) {
	hub := NewHub(nil, nil)
	srv := newTestServer(t, hub, stubVerifier{"token-b": "user-b"})

	connB := dial(t, srv, "token-b")
	awaitEvent(t, connB, func(ev Event) bool { return ev.Kind == KindStatus })

	hub.Notify("user-b", Notification{Type: "like", From: "user-a", Message: "someone liked your profile"})

	ev := awaitEvent(t, connB, func(ev Event) bool { return ev.Kind == KindNotification })
	require.NotNil(t, ev.Notification)
	assert.Equal(t, "like", ev.Notification.Type)
	assert.Equal(t, "user-a", ev.Notification.From)
}
