package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yungbote/legalkaz/backend/internal/cache"
	"github.com/yungbote/legalkaz/backend/internal/db"
	"github.com/yungbote/legalkaz/backend/internal/handlers"
	"github.com/yungbote/legalkaz/backend/internal/logger"
	"github.com/yungbote/legalkaz/backend/internal/repos"
	"github.com/yungbote/legalkaz/backend/internal/server"
	"github.com/yungbote/legalkaz/backend/internal/services"
	"github.com/yungbote/legalkaz/backend/internal/utils"
)

func main() {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	// Logger Setup
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	if logMode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Environment Variables
	log.Info("Attempting to load environment variables for Main now...")
	port := utils.GetEnv("PORT", "3001", log)
	redisAddress := utils.GetEnv("REDIS_ADDRESS", "", log)
	redisPassword := utils.GetEnv("REDIS_PASSWORD", "", log)
	historyCacheTTL := utils.GetEnvAsDuration("HISTORY_CACHE_TTL", cache.DefaultHistoryTTL, log)
	bcryptCost := utils.GetEnvAsInt("BCRYPT_COST", utils.DefaultBcryptCost, log)
	allowOrigins := utils.GetEnvAsSlice("CORS_ALLOW_ORIGINS", server.DefaultAllowOrigins, log)
	log.Debug("Environment variables loaded for Main :)",
		"port", port,
		"redisAddress", redisAddress,
		"historyCacheTTL", historyCacheTTL,
		"bcryptCost", bcryptCost,
		"allowOrigins", allowOrigins,
	)

	// Postgres Setup
	log.Info("Setting Up Postgres from Main now...")
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("DB init failed", "error", err)
		os.Exit(1)
	}
	defer postgresService.Close()
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()
	log.Info("Postgres Setup From Main Successful :)")

	// Redis History Cache
	log.Info("Setting Up Redis History Cache From Main Now...")
	var historyCache cache.HistoryCache
	healthChecks := []handlers.HealthCheck{{
		Name: "postgres",
		Check: func(ctx context.Context) error {
			sqlDB, err := thePG.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}}
	redisClient, err := db.NewRedisClient(log, redisAddress, redisPassword)
	switch {
	case err != nil:
		log.Warn("Failed to init redis, serving history straight from postgres", "error", err)
	case redisClient == nil:
		log.Info("REDIS_ADDRESS not set, history cache disabled")
	default:
		defer redisClient.Close()
		historyCache = cache.NewRedisHistoryCache(redisClient, historyCacheTTL, log)
		healthChecks = append(healthChecks, handlers.HealthCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
		})
		log.Info("Redis history cache is active!")
	}

	// Repositories Setup
	log.Info("Setting Up Repositories from Main now...")
	accountRepo := repos.NewAccountRepo(thePG, log)
	chatMessageRepo := repos.NewChatMessageRepo(thePG, log)
	log.Info("Repositories Set Up From Main Successful :)")

	// Services Setup
	log.Info("Setting up Services from Main now...")
	authService := services.NewAuthService(log, accountRepo, bcryptCost)
	chatService := services.NewChatService(log, accountRepo, chatMessageRepo, historyCache)
	historyService := services.NewHistoryService(log, chatMessageRepo, historyCache)
	log.Info("Services Set Up From Main Successful :)")

	// Handler Setup
	log.Info("Setting Up Handlers from Main now...")
	authHandler := handlers.NewAuthHandler(authService)
	historyHandler := handlers.NewHistoryHandler(historyService)
	chatHandler := handlers.NewChatHandler(chatService)
	healthHandler := handlers.NewHealthHandler(healthChecks...)
	log.Info("Handlers Set Up From Main Successful :)")

	// Router Setup
	log.Info("Setting Up Router from Main now...")
	router := server.NewRouter(server.RouterConfig{
		Log:            log,
		AllowOrigins:   allowOrigins,
		AuthHandler:    authHandler,
		HistoryHandler: historyHandler,
		ChatHandler:    chatHandler,
		HealthHandler:  healthHandler,
	})
	log.Info("Router Set Up From Main Successful :)")

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("Server listening", "port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server failed", "error", err)
			stop()
		}
	}()

	// On Shutdown
	<-ctx.Done()
	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("Graceful shutdown failed", "error", err)
	}
}
