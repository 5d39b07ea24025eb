package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yungbote/legalkaz/backend/internal/handlers"
	"github.com/yungbote/legalkaz/backend/internal/logger"
	"github.com/yungbote/legalkaz/backend/internal/middleware"
)

var DefaultAllowOrigins = []string{"http://localhost:3000"}

type RouterConfig struct {
	Log            *logger.Logger
	AllowOrigins   []string
	AuthHandler    *handlers.AuthHandler
	HistoryHandler *handlers.HistoryHandler
	ChatHandler    *handlers.ChatHandler
	HealthHandler  *handlers.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	//-----------------------------------------
	// Cors Setup
	//-----------------------------------------
	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = DefaultAllowOrigins
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	}))

	router.Use(middleware.AttachRequestContext())
	router.Use(middleware.RequestLogger(cfg.Log))

	//-----------------------------------------
	// Health Routes
	//-----------------------------------------
	if cfg.HealthHandler != nil {
		router.GET("/healthz", cfg.HealthHandler.Healthz)
	}

	//-----------------------------------------
	// Public Routes
	//-----------------------------------------
	router.POST("/register", cfg.AuthHandler.Register)
	router.POST("/login", cfg.AuthHandler.Login)
	router.POST("/history", cfg.HistoryHandler.History)
	router.POST("/sessions", cfg.HistoryHandler.Sessions)
	router.POST("/chats", cfg.ChatHandler.AppendMessage)

	return router
}
