package ws

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// TokenVerifier resolves a live-channel token to a stable user identity,
// confirming the account still exists. Implemented by the auth service.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (string, error)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Origin checking is handled by the CORS middleware for the rest
		// of the API; browser clients connect cross-origin here.
		return true
	},
}

// ServeWS returns the gin handler for the live channel. The client passes
// its token as a query parameter; verification happens before the upgrade is
// registered, so a refused handshake leaves no registry state behind.
func ServeWS(hub *Hub, verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token is required"})
			return
		}
		token = strings.TrimPrefix(token, "Bearer ")

		userID, err := verifier.VerifyToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			slog.Error("websocket upgrade failed", "userID", userID, "error", err)
			return
		}

		client := newClient(userID, conn)
		hub.Attach(client)

		go client.writePump()
		go client.readPump(hub)
	}
}
