package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// CORS allows the known frontends plus any extra origins passed in.
func CORS(extraOrigins []string) gin.HandlerFunc {
	allowed := map[string]bool{
		"http://localhost:5173":   true,
		"http://localhost:8080":   true,
		"https://cafemeetups.com": true,
	}
	for _, origin := range extraOrigins {
		allowed[strings.TrimSpace(origin)] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if allowed[origin] || strings.Contains(origin, "localhost") || strings.Contains(origin, "127.0.0.1") {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
