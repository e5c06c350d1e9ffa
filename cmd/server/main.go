package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/shivamk23/cafe-meet-up-backend/docs"
	"github.com/shivamk23/cafe-meet-up-backend/internal/api/middleware"
	"github.com/shivamk23/cafe-meet-up-backend/internal/api/routes"
	"github.com/shivamk23/cafe-meet-up-backend/internal/auth"
	"github.com/shivamk23/cafe-meet-up-backend/internal/chat"
	"github.com/shivamk23/cafe-meet-up-backend/internal/config"
	"github.com/shivamk23/cafe-meet-up-backend/internal/database"
	"github.com/shivamk23/cafe-meet-up-backend/internal/kafka"
	"github.com/shivamk23/cafe-meet-up-backend/internal/match"
	"github.com/shivamk23/cafe-meet-up-backend/internal/profile"
	"github.com/shivamk23/cafe-meet-up-backend/internal/services"
	"github.com/shivamk23/cafe-meet-up-backend/internal/upload"
	"github.com/shivamk23/cafe-meet-up-backend/internal/ws"
)

// @title           Cafe Meet Up API
// @version         1.0
// @description     Dating application backend: accounts, discovery, matching and chat with a real-time channel.
// @BasePath        /api
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := database.NewMySQLConnection(cfg.MySQL)
	if err != nil {
		logger.Error("mysql connection failed", "error", err)
		os.Exit(1)
	}

	redisClient, err := database.NewRedisConnection(cfg.Redis.URL)
	if err != nil {
		logger.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	redisService := services.NewRedisService(redisClient)

	hub := ws.NewHub(redisService, logger)

	// Kafka and MinIO are optional; the service degrades to database-only
	// chat and no picture uploads when they are not configured.
	var producer chat.EventProducer
	var kafkaProducer *kafka.MessageProducer
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaProducer, err = kafka.NewMessageProducer(cfg.Kafka.Brokers, cfg.Kafka.ChatTopic)
		if err != nil {
			logger.Error("kafka producer failed", "error", err)
			os.Exit(1)
		}
		producer = kafkaProducer
	} else {
		logger.Warn("KAFKA_BROKERS not set, chat events will not be published")
	}

	var uploadHandler *upload.UploadHandler
	if cfg.MinIO.Endpoint != "" {
		minioClient, err := database.NewMinIOClient(
			cfg.MinIO.Endpoint, cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, cfg.MinIO.Bucket)
		if err != nil {
			logger.Error("minio connection failed", "error", err)
			os.Exit(1)
		}
		uploadHandler = upload.NewUploadHandler(upload.NewUploadService(minioClient, db))
	} else {
		logger.Warn("MINIO_ENDPOINT not set, profile picture uploads disabled")
	}

	authService := auth.NewAuthService(auth.NewAuthRepository(db), cfg.JWT.Secret, cfg.JWT.Expire)
	profileService := profile.NewProfileService(profile.NewProfileRepository(db), hub)
	matchService := match.NewMatchService(match.NewMatchRepository(db))
	chatService := chat.NewChatService(chat.NewChatRepository(db), producer, hub)

	router := routes.Setup(routes.Handlers{
		Auth:    auth.NewAuthHandler(authService),
		Profile: profile.NewProfileHandler(profileService),
		Match:   match.NewMatchHandler(matchService),
		Chat:    chat.NewChatHandler(chatService),
		Upload:  uploadHandler,

		Hub:      hub,
		Verifier: authService,

		JWTSecret:   cfg.JWT.Secret,
		RateLimiter: middleware.NewRateLimitMiddleware(redisService),
	})

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
	hub.Stop()
	if kafkaProducer != nil {
		if err := kafkaProducer.Close(); err != nil {
			logger.Error("kafka producer close failed", "error", err)
		}
	}
	if err := redisClient.Close(); err != nil {
		logger.Error("redis close failed", "error", err)
	}
	logger.Info("server exited")
}
