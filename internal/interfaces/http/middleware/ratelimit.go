package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kindredhq/kindred/internal/infrastructure/ratelimit"
	"github.com/kindredhq/kindred/internal/shared/constants"
	"github.com/kindredhq/kindred/internal/shared/logger"
	"github.com/kindredhq/kindred/internal/shared/utils"
)

// ActionRateLimiter throttles write actions per subject. Keys combine
// the action name with the caller's subject ID, falling back to the
// client IP for anonymous requests.
type ActionRateLimiter struct {
	limiter ratelimit.RateLimiter
	logger  logger.Interface
}

func NewActionRateLimiter(limiter ratelimit.RateLimiter, logger logger.Interface) *ActionRateLimiter {
	return &ActionRateLimiter{
		limiter: limiter,
		logger:  logger,
	}
}

func (rl *ActionRateLimiter) Limit(action string, config ratelimit.LimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := c.GetString(constants.ContextKeyUserID)
		if subject == "" {
			subject = c.ClientIP()
		}

		key := fmt.Sprintf("%s:%s", action, subject)

		allowed, err := rl.limiter.Allow(key, config)
		if err != nil {
			// A rate limiter outage must not take writes down with it.
			rl.logger.Warnw("rate limit check failed, allowing request", "error", err, "action", action)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
