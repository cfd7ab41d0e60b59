// Package ratelimit implements a fixed-window request counter backed by
// Redis. The counter resets when its TTL elapses, so bursts straddling a
// window boundary can pass up to twice the configured maximum; this is a
// documented approximation, not a true sliding window.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// LimitExceededError rejects a request, carrying the seconds until the
// current window expires.
type LimitExceededError struct {
	RetryAfter int
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("rate limit exceeded, try again in %d seconds", e.RetryAfter)
}

// Result describes an allowed request, surfaced as X-RateLimit-* headers.
type Result struct {
	Limit     int
	Remaining int
	// Reset is the window length in seconds.
	Reset int
}

// Limiter counts requests per key within a fixed window. When Redis is
// unreachable the limiter fails open: the request proceeds unthrottled and
// the error is only logged.
type Limiter struct {
	rdb    *redis.Client
	prefix string
	max    int
	window time.Duration
	log    zerolog.Logger
}

// New creates a Limiter. prefix namespaces the counter keys so per-route
// limiters (e.g. login) do not share counters with the global one.
func New(rdb *redis.Client, prefix string, max int, window time.Duration, log zerolog.Logger) *Limiter {
	return &Limiter{rdb: rdb, prefix: prefix, max: max, window: window, log: log}
}

// Max returns the configured per-window request ceiling.
func (l *Limiter) Max() int { return l.max }

// Window returns the configured window length.
func (l *Limiter) Window() time.Duration { return l.window }

func (l *Limiter) key(id string) string {
	return l.prefix + ":" + id
}

// Allow records a request for the given client identifier and reports
// whether it may proceed.
//
// First request in a window creates the counter with the window TTL.
// Subsequent requests increment it atomically (INCR, no lost updates).
// Once the counter reaches the maximum, requests are rejected with a
// *LimitExceededError and the counter is not incremented further.
func (l *Limiter) Allow(ctx context.Context, id string) (*Result, error) {
	key := l.key(id)

	current, err := l.rdb.Get(ctx, key).Int64()
	if err == redis.Nil {
		if err := l.rdb.SetEx(ctx, key, 1, l.window).Err(); err != nil {
			return l.failOpen(err)
		}
		return &Result{Limit: l.max, Remaining: l.max - 1, Reset: int(l.window.Seconds())}, nil
	}
	if err != nil {
		return l.failOpen(err)
	}

	if current >= int64(l.max) {
		retryAfter := int(l.window.Seconds())
		if ttl, err := l.rdb.TTL(ctx, key).Result(); err == nil && ttl > 0 {
			retryAfter = int(ttl.Seconds())
		}
		return nil, &LimitExceededError{RetryAfter: retryAfter}
	}

	after, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		return l.failOpen(err)
	}

	remaining := l.max - int(after)
	if remaining < 0 {
		remaining = 0
	}
	return &Result{Limit: l.max, Remaining: remaining, Reset: int(l.window.Seconds())}, nil
}

// failOpen logs the store failure and lets the request through without
// rate-limit headers. Availability wins over strictness here.
func (l *Limiter) failOpen(err error) (*Result, error) {
	l.log.Warn().Err(err).Str("prefix", l.prefix).Msg("rate limit store unavailable, failing open")
	return nil, nil
}
