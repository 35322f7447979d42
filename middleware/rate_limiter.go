package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimiter allows maxRequests per client IP, method and route within each
// window, counted in redis. When redis cannot be reached the request is let
// through and a warning is logged.
func RateLimiter(client *redis.Client, maxRequests int, window time.Duration, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ip := c.ClientIP()
		endpoint := c.FullPath() // /api/v1/forms/contact, etc.
		method := c.Request.Method

		// Key is per-IP, per-method, per-endpoint
		key := "rl:" + ip + ":" + method + ":" + endpoint

		// Count and read the window in one round trip
		pipe := client.TxPipeline()
		incr := pipe.Incr(ctx, key)
		ttl := pipe.PTTL(ctx, key)
		if _, err := pipe.Exec(ctx); err != nil {
			logger.Warn("[ratelimit] redis unavailable, allowing request",
				zap.String("route", endpoint),
				zap.Error(err),
			)
			c.Next()
			return
		}
		count := int(incr.Val())

		// First request in the window → start the clock
		wait := ttl.Val()
		if wait < 0 {
			client.PExpire(ctx, key, window)
			wait = window
		}
		resetAt := time.Now().Add(wait)

		rate := &models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      max(maxRequests-count, 0),
			ResetAt:        resetAt,
			ResetInSeconds: int(wait.Round(time.Second).Seconds()),
		}

		// Store in context for controllers
		c.Set("rateLimiter", rate)

		if count > maxRequests {
			logger.Info("[ratelimit] blocked",
				zap.String("ip", ip),
				zap.String("route", endpoint),
				zap.Int("count", count),
			)
			c.Header("Retry-After", strconv.Itoa(max(rate.ResetInSeconds, 1)))
			c.JSON(http.StatusTooManyRequests, models.ApiResponse{
				Message:         "Too many requests. Please try again later",
				Error:           true,
				Rate:            rate,
				RequestedEntity: method + " " + endpoint,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
