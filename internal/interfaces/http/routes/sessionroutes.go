package routes

import (
	"github.com/gin-gonic/gin"

	sessionhandlers "github.com/kindredhq/kindred/internal/interfaces/http/handlers/session"
	"github.com/kindredhq/kindred/internal/interfaces/http/middleware"
)

type SessionRouteConfig struct {
	SessionHandler *sessionhandlers.SessionHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupSessionRoutes(engine *gin.Engine, config *SessionRouteConfig) {
	sessions := engine.Group("/api/sessions")
	sessions.Use(config.AuthMiddleware.RequireAuth())
	{
		sessions.GET("",
			config.SessionHandler.ListSessions)
		sessions.POST("/:id/favorite",
			config.SessionHandler.ToggleFavorite)
		sessions.POST("/:id/kudos",
			config.SessionHandler.GiveKudos)
	}
}
