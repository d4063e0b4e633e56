package middleware

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/handler/httperr"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra/ratelimit"

	"github.com/gin-gonic/gin"
)

type RateLimiter interface {
	Allow(ctx context.Context, key string) (ratelimit.Decision, error)
	Limit() int64
}

// RateLimit throttles per authenticated user, falling back to the client IP.
// A nil limiter disables throttling. Limiter errors let the request through.
func RateLimit(limiter RateLimiter, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		key := scope + ":ip:" + c.ClientIP()
		if userID, ok := GetUserID(c); ok {
			key = scope + ":user:" + userID.String()
		}

		d, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			slog.Warn("rate limiter unavailable, allowing request", "scope", scope, "error", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(limiter.Limit(), 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(d.Remaining, 10))

		if !d.Allowed {
			retry := int64(math.Ceil(d.RetryAfter.Seconds()))
			if retry < 1 {
				retry = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retry, 10))
			httperr.AbortWithCode(c, http.StatusTooManyRequests, "RATE_LIMITED", nil, "Too many requests", nil)
			return
		}

		c.Next()
	}
}
