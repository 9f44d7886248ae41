package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sounddesk/client-portal/internal/api/handler"
	"github.com/sounddesk/client-portal/internal/api/middleware"
	"github.com/sounddesk/client-portal/internal/core/service"
	"github.com/sounddesk/client-portal/internal/infrastructure/config"
	mongodb "github.com/sounddesk/client-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/sounddesk/client-portal/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Dependencies ---
	clientRepo := mongodb.NewClientRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	messageRepo := mongodb.NewMessageRepository(db)
	unread := redisdb.NewUnreadCounter(rdb)

	authService := service.NewAuthService(clientRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	projectService := service.NewProjectService(clientRepo, projectRepo, unread, log)
	messageService := service.NewMessageService(clientRepo, messageRepo, unread, log)
	seedService := service.NewSeedService(clientRepo, projectRepo, messageRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	clientHandler := handler.NewClientHandler(projectService)
	projectHandler := handler.NewProjectHandler(projectService)
	messageHandler := handler.NewMessageHandler(messageService)
	seedHandler := handler.NewSeedHandler(seedService)

	authGate := middleware.Auth(authService)

	// --- Portal routes ---
	g := e.Group("/api")
	g.POST("/register", authHandler.Register)
	g.POST("/login", authHandler.Login)
	g.GET("/seed", seedHandler.Seed)

	g.GET("/clients", clientHandler.List, authGate, middleware.RequireAdmin())
	g.GET("/clients/:clientId/project", clientHandler.GetProject, authGate)
	g.GET("/clients/:clientId/progress", clientHandler.GetProgress, authGate)
	g.POST("/projects/:projectId", projectHandler.Update, authGate)

	g.POST("/messages", messageHandler.Send, authGate)
	g.GET("/messages/:clientId", messageHandler.Conversation, authGate)
	g.GET("/messages", messageHandler.MyConversation, authGate)

	// --- Health probes, metrics, docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readyHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readyHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
