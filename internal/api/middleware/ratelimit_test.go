package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/pkg/ratelimit"
)

func limiterFixture(t *testing.T, max int) *ratelimit.Limiter {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return ratelimit.New(rdb, "rate_limit", max, time.Minute, zerolog.Nop())
}

func doRequest(mw echo.MiddlewareFunc) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/jobs", nil)
	req.RemoteAddr = "198.51.100.7:1234"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
	return rec, err
}

func TestRateLimit_SetsHeadersOnAllow(t *testing.T) {
	mw := RateLimit(limiterFixture(t, 5), "rate_limit")

	rec, err := doRequest(mw)
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("X-RateLimit-Limit"); got != "5" {
		t.Fatalf("expected X-RateLimit-Limit 5, got %q", got)
	}
	if got := rec.Header().Get("X-RateLimit-Remaining"); got != "4" {
		t.Fatalf("expected X-RateLimit-Remaining 4, got %q", got)
	}
	if rec.Header().Get("X-RateLimit-Reset") == "" {
		t.Fatalf("expected X-RateLimit-Reset header")
	}
}

func TestRateLimit_RejectsOverLimit(t *testing.T) {
	mw := RateLimit(limiterFixture(t, 2), "rate_limit")

	for i := 0; i < 2; i++ {
		if _, err := doRequest(mw); err != nil {
			t.Fatalf("request %d unexpectedly rejected: %v", i+1, err)
		}
	}

	rec, err := doRequest(mw)
	var le *ratelimit.LimitExceededError
	if !errors.As(err, &le) {
		t.Fatalf("expected LimitExceededError, got %v", err)
	}
	if le.RetryAfter <= 0 {
		t.Fatalf("expected positive retry-after, got %d", le.RetryAfter)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header on rejection")
	}
}
