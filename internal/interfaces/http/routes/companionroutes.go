package routes

import (
	"github.com/gin-gonic/gin"

	companionhandlers "github.com/kindredhq/kindred/internal/interfaces/http/handlers/companion"
	"github.com/kindredhq/kindred/internal/interfaces/http/middleware"
)

type CompanionRouteConfig struct {
	CompanionHandler *companionhandlers.CompanionHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

func SetupCompanionRoutes(engine *gin.Engine, config *CompanionRouteConfig) {
	companion := engine.Group("/api/companion")
	companion.Use(config.AuthMiddleware.RequireAuth())
	{
		companion.POST("/chat",
			config.CompanionHandler.Chat)
	}
}
