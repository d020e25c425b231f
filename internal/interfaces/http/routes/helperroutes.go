package routes

import (
	"github.com/gin-gonic/gin"

	helperhandlers "github.com/kindredhq/kindred/internal/interfaces/http/handlers/helper"
	"github.com/kindredhq/kindred/internal/interfaces/http/middleware"
)

type HelperRouteConfig struct {
	HelperHandler        *helperhandlers.HelperHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupHelperRoutes(engine *gin.Engine, config *HelperRouteConfig) {
	helpers := engine.Group("/api/helpers")
	{
		// Online count backs the landing page and needs no identity.
		helpers.GET("/online-count",
			config.HelperHandler.OnlineCount)

		authed := helpers.Group("")
		authed.Use(config.AuthMiddleware.RequireAuth())
		{
			authed.POST("",
				config.HelperHandler.CreateHelper)
			authed.GET("",
				config.HelperHandler.ListHelpers)
			authed.GET("/me",
				config.HelperHandler.GetMe)

			authed.PATCH("/:id/profile",
				config.HelperHandler.UpdateProfile)
			authed.PATCH("/:id/availability",
				config.HelperHandler.SetAvailability)
			authed.POST("/:id/training",
				config.HelperHandler.CompleteTraining)
			authed.POST("/:id/application",
				config.HelperHandler.SubmitApplication)
			authed.POST("/:id/application/review",
				config.PermissionMiddleware.RequirePermission("helper", "review_application"),
				config.HelperHandler.ReviewApplication)
			authed.PATCH("/:id/role",
				config.PermissionMiddleware.RequirePermission("helper", "change_role"),
				config.HelperHandler.ChangeRole)

			authed.GET("/:id",
				config.HelperHandler.GetHelper)
		}
	}
}
