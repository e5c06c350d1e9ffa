package routes

import (
	"time"

	"github.com/shivamk23/cafe-meet-up-backend/internal/api/middleware"
	"github.com/shivamk23/cafe-meet-up-backend/internal/auth"
	"github.com/shivamk23/cafe-meet-up-backend/internal/chat"
	"github.com/shivamk23/cafe-meet-up-backend/internal/match"
	"github.com/shivamk23/cafe-meet-up-backend/internal/profile"
	"github.com/shivamk23/cafe-meet-up-backend/internal/upload"
	"github.com/shivamk23/cafe-meet-up-backend/internal/ws"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth    *auth.AuthHandler
	Profile *profile.ProfileHandler
	Match   *match.MatchHandler
	Chat    *chat.ChatHandler
	Upload  *upload.UploadHandler

	Hub      *ws.Hub
	Verifier ws.TokenVerifier

	JWTSecret    string
	RateLimiter  *middleware.RateLimitMiddleware
	ExtraOrigins []string
}

// Setup builds the gin engine with all middleware and routes mounted.
func Setup(h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.LogAPI())
	router.Use(middleware.CORS(h.ExtraOrigins))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	// Live channel; authentication happens inside the handshake via the
	// token query parameter.
	api.GET("/ws", ws.ServeWS(h.Hub, h.Verifier))

	public := api.Group("/auth")
	if h.RateLimiter != nil {
		public.Use(h.RateLimiter.RateLimitIP(20, time.Minute))
	}
	{
		public.POST("/register", h.Auth.Register)
		public.POST("/login", h.Auth.Login)
	}

	protected := api.Group("/")
	protected.Use(middleware.Auth(h.JWTSecret))
	if h.RateLimiter != nil {
		protected.Use(h.RateLimiter.RateLimit(120, time.Minute))
	}
	{
		protected.GET("/auth/me", h.Auth.Me)

		profiles := protected.Group("/profiles")
		{
			profiles.GET("", h.Profile.Discover)
			profiles.POST("/like", h.Profile.Like)
			profiles.POST("/skip", h.Profile.Skip)
			profiles.GET("/notifications", h.Profile.Notifications)
			profiles.POST("/notifications/read", h.Profile.MarkNotificationsRead)
		}

		protected.GET("/likes/liked-by", h.Profile.LikedBy)
		protected.GET("/matches", h.Match.List)

		chats := protected.Group("/chat")
		{
			chats.GET("/:matchId", h.Chat.History)
			chats.POST("", h.Chat.Send)
		}

		if h.Upload != nil {
			protected.POST("/upload/profile-picture", h.Upload.ProfilePicture)
		}
	}

	return router
}
