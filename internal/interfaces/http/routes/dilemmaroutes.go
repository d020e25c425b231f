package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kindredhq/kindred/internal/infrastructure/ratelimit"
	dilemmahandlers "github.com/kindredhq/kindred/internal/interfaces/http/handlers/dilemma"
	feedhandlers "github.com/kindredhq/kindred/internal/interfaces/http/handlers/feed"
	"github.com/kindredhq/kindred/internal/interfaces/http/middleware"
	"github.com/kindredhq/kindred/internal/shared/authorization"
	sharedConfig "github.com/kindredhq/kindred/internal/shared/config"
)

type DilemmaRouteConfig struct {
	DilemmaHandler *dilemmahandlers.DilemmaHandler
	FeedHandler    *feedhandlers.FeedHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.ActionRateLimiter
	RateLimits     sharedConfig.RateLimitConfig
}

func SetupDilemmaRoutes(engine *gin.Engine, config *DilemmaRouteConfig) {
	postLimit := ratelimit.LimitConfig{
		PerMinute: config.RateLimits.PostsPerMinute,
		PerHour:   config.RateLimits.PostsPerHour,
	}
	reportLimit := ratelimit.LimitConfig{
		PerMinute: config.RateLimits.ReportsPerMinute,
	}

	dilemmas := engine.Group("/api/dilemmas")
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// The community feed is public; a bearer token only enriches it
		// with viewer-specific support marks.
		dilemmas.GET("/feed",
			config.AuthMiddleware.OptionalAuth(),
			config.FeedHandler.GetCommunityFeed)

		authed := dilemmas.Group("")
		authed.Use(config.AuthMiddleware.RequireAuth())
		{
			authed.POST("",
				config.RateLimiter.Limit("post_dilemma", postLimit),
				config.DilemmaHandler.PostDilemma)
			authed.GET("",
				authorization.RequireAdmin(),
				config.DilemmaHandler.ListDilemmas)
			authed.POST("/direct-request",
				config.RateLimiter.Limit("post_dilemma", postLimit),
				config.DilemmaHandler.CreateDirectRequest)
			authed.GET("/for-you/:userToken",
				config.FeedHandler.GetForYouFeed)

			authed.POST("/:id/support",
				config.DilemmaHandler.ToggleSupport)
			authed.POST("/:id/report",
				config.RateLimiter.Limit("report_dilemma", reportLimit),
				config.DilemmaHandler.ReportDilemma)
			authed.POST("/:id/accept",
				config.DilemmaHandler.AcceptDilemma)
			authed.POST("/:id/resolve",
				config.DilemmaHandler.ResolveDilemma)
			authed.POST("/:id/decline",
				config.DilemmaHandler.DeclineDilemma)
			authed.POST("/:id/summarize",
				config.DilemmaHandler.SummarizeDilemma)

			authed.GET("/:id",
				config.DilemmaHandler.GetDilemma)
		}
	}
}
