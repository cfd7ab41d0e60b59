package middleware

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/api/metrics"
	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/pkg/ratelimit"
)

// RateLimit throttles requests per client IP using the given limiter.
// Allowed requests carry X-RateLimit-Limit/-Remaining/-Reset headers; rejected
// ones surface a *ratelimit.LimitExceededError, which the error handler turns
// into a 429 with Retry-After. When the limiter fails open no headers are set.
func RateLimit(limiter *ratelimit.Limiter, scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			res, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				if le, ok := err.(*ratelimit.LimitExceededError); ok {
					metrics.RateLimitRejectionsTotal.WithLabelValues(scope).Inc()
					c.Response().Header().Set("Retry-After", strconv.Itoa(le.RetryAfter))
				}
				return err
			}
			if res != nil {
				h := c.Response().Header()
				h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
				h.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
				h.Set("X-RateLimit-Reset", strconv.Itoa(res.Reset))
			}
			return next(c)
		}
	}
}
