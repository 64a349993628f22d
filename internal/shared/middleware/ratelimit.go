package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/logger"
)

// RateLimit throttles a route per client IP using redis counters: the
// first hit in a window creates the counter with a TTL, subsequent hits
// increment it until max is reached. Protects the login and contact-form
// endpoints from abuse.
//
// If redis is unreachable the request is allowed through; losing rate
// limiting is preferable to taking the public site down.
func RateLimit(store cache.Cache, name string, max int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", name, c.ClientIP())

		count, err := store.Increment(c.Request.Context(), key)
		if err != nil {
			logger.Error("rate limit counter unavailable", err)
			c.Next()
			return
		}

		if count == 1 {
			if err := store.Expire(c.Request.Context(), key, window); err != nil {
				logger.Error("rate limit expire failed", err)
			}
		}

		if count > max {
			logger.Warn("rate limit exceeded", map[string]interface{}{
				"limiter": name,
				"ip":      c.ClientIP(),
				"count":   count,
			})
			response.TooManyRequests(c, "too many requests, slow down")
			c.Abort()
			return
		}

		c.Next()
	}
}
