package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kindredhq/kindred/internal/infrastructure/config"
	"github.com/kindredhq/kindred/internal/interfaces/http/middleware"
	"github.com/kindredhq/kindred/internal/interfaces/http/routes"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

// Router owns the gin engine and the wired container behind it.
type Router struct {
	engine    *gin.Engine
	container *Container
}

// NewRouter creates the HTTP router with all dependencies wired.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	container, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}

	return &Router{
		engine:    container.engine,
		container: container,
	}, nil
}

// SetupRoutes configures global middleware and all route groups.
func (r *Router) SetupRoutes() {
	c := r.container

	r.engine.Use(middleware.Recovery(c.log))
	r.engine.Use(middleware.Logger(c.log))
	r.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupDilemmaRoutes(r.engine, &routes.DilemmaRouteConfig{
		DilemmaHandler: c.hdlrs.dilemmaHandler,
		FeedHandler:    c.hdlrs.feedHandler,
		AuthMiddleware: c.authMiddleware,
		RateLimiter:    c.actionRateLimiter,
		RateLimits:     c.cfg.RateLimit,
	})

	routes.SetupHelperRoutes(r.engine, &routes.HelperRouteConfig{
		HelperHandler:        c.hdlrs.helperHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupSessionRoutes(r.engine, &routes.SessionRouteConfig{
		SessionHandler: c.hdlrs.sessionHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupReflectionRoutes(r.engine, &routes.ReflectionRouteConfig{
		ReflectionHandler: c.hdlrs.reflectionHandler,
		AuthMiddleware:    c.authMiddleware,
	})

	routes.SetupModerationRoutes(r.engine, &routes.ModerationRouteConfig{
		ModerationHandler:    c.hdlrs.moderationHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupCompanionRoutes(r.engine, &routes.CompanionRouteConfig{
		CompanionHandler: c.hdlrs.companionHandler,
		AuthMiddleware:   c.authMiddleware,
	})
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

// Shutdown releases resources held by the container.
func (r *Router) Shutdown() {
	r.container.Shutdown()
}
