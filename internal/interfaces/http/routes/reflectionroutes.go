package routes

import (
	"github.com/gin-gonic/gin"

	reflectionhandlers "github.com/kindredhq/kindred/internal/interfaces/http/handlers/reflection"
	"github.com/kindredhq/kindred/internal/interfaces/http/middleware"
)

type ReflectionRouteConfig struct {
	ReflectionHandler *reflectionhandlers.ReflectionHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

func SetupReflectionRoutes(engine *gin.Engine, config *ReflectionRouteConfig) {
	reflections := engine.Group("/api/reflections")
	{
		// The gratitude wall is readable without an account.
		reflections.GET("",
			config.ReflectionHandler.ListReflections)

		authed := reflections.Group("")
		authed.Use(config.AuthMiddleware.RequireAuth())
		{
			authed.POST("",
				config.ReflectionHandler.PostReflection)
			authed.POST("/:id/react",
				config.ReflectionHandler.React)
		}
	}
}
