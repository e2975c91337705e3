package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atriumhq/atrium/internal/infrastructure/ratelimit"
	"github.com/atriumhq/atrium/internal/shared/logger"
	"github.com/atriumhq/atrium/internal/shared/utils"
)

// RateLimit enforces per-client-IP request limits. When the limiter
// backend is unavailable the request is allowed through; availability
// wins over strictness here.
func RateLimit(limiter ratelimit.RateLimiter, cfg ratelimit.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow("ip:"+c.ClientIP(), cfg)
		if err != nil {
			log.Warnw("rate limiter unavailable", "error", err)
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
