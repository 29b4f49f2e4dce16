package middleware

import (
	"fmt"
	"strconv"
	"time"

	"wellness-dispatch/internal/core/domain"
	"wellness-dispatch/internal/core/ports"
	"wellness-dispatch/internal/observability"
	"wellness-dispatch/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule is a fixed-window budget for one route group.
type RateLimitRule struct {
	Limit  int
	Window time.Duration
}

// RateLimiter creates a rate-limiting middleware for a route group.
// Rejections are logged as rate_limit_exceeded security events. Store errors
// fail open.
func RateLimiter(
	store ports.RateLimitStore,
	route string,
	rule RateLimitRule,
	security ports.SecurityLogger,
	metrics *observability.Metrics,
	log zerolog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := domain.BuildRateLimitKey(route, extractIdentifier(c))

		result, err := store.CheckAndIncrement(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("route", route).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			retryAfter := int64(result.RetryAfter(time.Now()) / time.Second)
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))

			metrics.RateLimitRejected(route)
			security.LogEvent(c.Request.Context(), domain.SecurityRateLimitExceeded, AdminActor(c), ClientInfo(c),
				map[string]interface{}{
					"route":  route,
					"limit":  rule.Limit,
					"window": rule.Window.String(),
					"path":   c.Request.URL.Path,
				})

			abort(c, apperror.ErrRateLimitExceeded())
			return
		}

		c.Next()
	}
}

// extractIdentifier determines the rate limit key source.
func extractIdentifier(c *gin.Context) string {
	if ak := c.GetHeader(HeaderAccessKey); ak != "" {
		return "ak:" + ak
	}
	if id, exists := c.Get(CtxAdminID); exists {
		return fmt.Sprintf("admin:%v", id)
	}
	return "ip:" + c.ClientIP()
}
