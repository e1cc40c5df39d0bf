package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gatehouse/internal/infrastructure/ratelimit"
	"gatehouse/internal/shared/logger"
	"gatehouse/internal/shared/utils"
)

// ReviewRateLimit throttles mutating review calls per staff member.
// Requests without an actor header fall back to the client IP so the
// limiter still covers the submission endpoint.
func ReviewRateLimit(limiter ratelimit.RateLimiter, perMinute int, log logger.Interface) gin.HandlerFunc {
	cfg := ratelimit.RateLimitConfig{RequestsPerMinute: perMinute}

	return func(c *gin.Context) {
		key := c.GetHeader(StaffIDHeader)
		if key == "" {
			key = c.ClientIP()
		}

		allowed, err := limiter.Allow(key, cfg)
		if err != nil {
			// Limiter backend down: let traffic through rather than
			// turning an outage into a total lockout.
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
