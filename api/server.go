package api

import (
	"context"
	"fmt"
	"net/http"
	
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	db "github.com/katatrina/notification-service/internal/db/sqlc"
	"github.com/katatrina/notification-service/internal/notification"
	"github.com/katatrina/notification-service/internal/token"
	"github.com/katatrina/notification-service/internal/util"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	
	_ "github.com/katatrina/notification-service/docs"
)

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

type Server struct {
	router       *gin.Engine
	dbStore      db.Store
	taskQueue    notification.TaskQueue
	tokenMaker   token.Maker
	config       *util.Config
	healthChecks map[string]HealthCheck
}

type ServerOption func(*Server)

// WithHealthCheck adds a dependency to the readiness probe. The database is
// always checked.
func WithHealthCheck(name string, check HealthCheck) ServerOption {
	return func(s *Server) {
		s.healthChecks[name] = check
	}
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(store db.Store, taskQueue notification.TaskQueue, config *util.Config, opts ...ServerOption) (*Server, error) {
	server := &Server{
		dbStore:   store,
		taskQueue: taskQueue,
		config:    config,
		healthChecks: map[string]HealthCheck{
			"database": store.Ping,
		},
	}
	
	// Authentication is enabled only when a secret is configured.
	if config.TokenSecretKey != "" {
		tokenMaker, err := token.NewJWTMaker(config.TokenSecretKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create token maker: %w", err)
		}
		server.tokenMaker = tokenMaker
		log.Info().Msg("API authentication enabled")
	} else {
		log.Warn().Msg("TOKEN_SECRET_KEY is empty, API authentication disabled")
	}
	
	for _, opt := range opts {
		opt(server)
	}
	
	server.setupRouter()
	return server, nil
}

// setupRouter configures the HTTP server routes.
func (server *Server) setupRouter() {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())
	router.Use(cors.New(corsConfig(server.config.AllowedOrigins)))
	
	router.GET("/health", server.health)
	router.GET("/health/live", server.liveness)
	router.GET("/health/ready", server.readiness)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	
	v1 := router.Group("/api/v1")
	if server.tokenMaker != nil {
		v1.Use(authMiddleware(server.tokenMaker))
	}
	
	notificationGroup := v1.Group("/notifications")
	{
		notificationGroup.POST("/send", server.sendNotification)
		notificationGroup.GET("", server.listNotifications)
		notificationGroup.GET("/user/:user_id", server.listUserNotifications)
		notificationGroup.GET("/:id", server.getNotification)
		notificationGroup.PATCH("/:id/read", server.markNotificationRead)
	}
	
	templateGroup := v1.Group("/templates")
	{
		templateGroup.GET("", server.listTemplates)
		templateGroup.GET("/:id", server.getTemplate)
	}
	
	preferenceGroup := v1.Group("/preferences")
	{
		preferenceGroup.GET("/:user_id", server.getPreferences)
		preferenceGroup.PUT("/:user_id", server.updatePreferences)
	}
	
	router.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, errorResponse(CodeNotFound, "Route not found"))
	})
	
	server.router = router
}

// corsConfig allows every origin, without credentials, when none is configured.
func corsConfig(origins []string) cors.Config {
	config := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	if len(origins) == 0 {
		config.AllowOrigins = nil
		config.AllowAllOrigins = true
		config.AllowCredentials = false
	}
	
	return config
}

// Handler exposes the router for an http.Server.
func (server *Server) Handler() http.Handler {
	return server.router
}
