package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"levelhub/database"
	"levelhub/internal/config"
	"levelhub/internal/http-api/handler"
	"levelhub/internal/http-api/middleware"
	"levelhub/internal/http-api/repository"
	"levelhub/internal/http-api/service"
	"levelhub/internal/storage"
)

func main() {
	// Load config (fallback to env/default)
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	// Connect to the database and apply migrations
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Object storage for avatar uploads
	avatars, err := storage.NewMinioAvatarStorage(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to connect to object storage: %v", err)
	}

	// Repositories
	levelRepo := repository.NewLevelRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	feedService := service.NewFeedService(levelRepo)
	levelService := service.NewLevelService(levelRepo, commentRepo)
	commentService := service.NewCommentService(commentRepo, levelRepo)
	userService := service.NewUserService(userRepo, levelRepo)
	uploadService := service.NewUploadService(avatars, userRepo)

	// Handlers
	homeHandler := handler.NewHomeHandler(feedService)
	levelHandler := handler.NewLevelHandler(levelService)
	commentHandler := handler.NewCommentHandler(commentService)
	userHandler := handler.NewUserHandler(userService)
	uploadHandler := handler.NewUploadHandler(uploadService)

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	r.Use(limiter.Middleware())

	r.GET("/healthz", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Read routes run under optional auth: visibility of unpublished levels
	// depends on who is asking.
	public := r.Group("", middleware.OptionalAuth(cfg.JWTSecret))
	homeHandler.RegisterRoutes(public)
	levelHandler.RegisterPublicRoutes(public)
	userHandler.RegisterPublicRoutes(public)

	// Everything that writes requires a valid provider token.
	authed := r.Group("", middleware.AuthMiddleware(cfg.JWTSecret))
	levelHandler.RegisterRoutes(authed)
	commentHandler.RegisterRoutes(authed)
	userHandler.RegisterRoutes(authed)
	uploadHandler.RegisterRoutes(authed)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("starting_http_server", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
