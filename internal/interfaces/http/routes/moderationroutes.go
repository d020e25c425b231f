package routes

import (
	"github.com/gin-gonic/gin"

	moderationhandlers "github.com/kindredhq/kindred/internal/interfaces/http/handlers/moderation"
	"github.com/kindredhq/kindred/internal/interfaces/http/middleware"
)

type ModerationRouteConfig struct {
	ModerationHandler    *moderationhandlers.ModerationHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupModerationRoutes(engine *gin.Engine, config *ModerationRouteConfig) {
	moderation := engine.Group("/api/moderation")
	moderation.Use(config.AuthMiddleware.RequireAuth())
	{
		moderation.GET("/queue",
			config.PermissionMiddleware.RequirePermission("dilemma", "moderate"),
			config.ModerationHandler.GetReportedQueue)

		moderation.POST("/dilemmas/:id/remove",
			config.PermissionMiddleware.RequirePermission("dilemma", "moderate"),
			config.ModerationHandler.RemovePost)
		moderation.POST("/dilemmas/:id/dismiss",
			config.PermissionMiddleware.RequirePermission("dilemma", "moderate"),
			config.ModerationHandler.DismissReport)

		moderation.POST("/users/:user_id/warn",
			config.PermissionMiddleware.RequirePermission("user", "warn"),
			config.ModerationHandler.WarnUser)
		moderation.POST("/users/:user_id/ban",
			config.PermissionMiddleware.RequirePermission("user", "ban"),
			config.ModerationHandler.BanUser)
		moderation.GET("/users/:user_id/status",
			config.PermissionMiddleware.RequirePermission("user", "read_status"),
			config.ModerationHandler.GetUserStatus)
		moderation.GET("/users/:user_id/history",
			config.PermissionMiddleware.RequirePermission("user", "read_status"),
			config.ModerationHandler.GetHistory)
	}

	// Blocking is a personal preference, not a moderator action.
	blocks := engine.Group("/api/users/blocks")
	blocks.Use(config.AuthMiddleware.RequireAuth())
	{
		blocks.GET("",
			config.ModerationHandler.ListBlocked)
		blocks.POST("",
			config.ModerationHandler.BlockUser)
		blocks.DELETE("/:blocked_id",
			config.ModerationHandler.UnblockUser)
	}
}
