package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"counsellor-backend/internal/shared/server/respond"
)

// RateLimitConfig controls the per-key sliding window.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
	Limiter  *RateLimiter
}

// RateLimiter tracks request timestamps per caller key over a sliding window.
type RateLimiter struct {
	mu      sync.Mutex
	history map[string][]time.Time
	now     func() time.Time
}

// NewRateLimiter constructs a RateLimiter with an injectable clock.
func NewRateLimiter(now func() time.Time) *RateLimiter {
	if now == nil {
		now = time.Now
	}
	return &RateLimiter{
		history: make(map[string][]time.Time),
		now:     now,
	}
}

// RateLimit enforces the sliding-window limit per API key. Anonymous callers
// are not tracked.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.Limiter == nil {
		cfg.Limiter = NewRateLimiter(nil)
	}
	return func(c *gin.Context) {
		if cfg.Requests <= 0 || cfg.Window <= 0 {
			c.Next()
			return
		}
		if IsAnonymous(c) {
			c.Next()
			return
		}
		key := APIKeyFromContext(c)
		if key == "" {
			key = c.ClientIP()
		}
		allowed, retryAfter := cfg.Limiter.Allow(key, cfg.Requests, cfg.Window)
		if allowed {
			c.Next()
			return
		}
		retryAfterSeconds := int(math.Ceil(retryAfter.Seconds()))
		if retryAfterSeconds <= 0 {
			retryAfterSeconds = 1
		}
		c.Header("Retry-After", strconv.Itoa(retryAfterSeconds))
		respond.Error(c, http.StatusTooManyRequests, "rate_limited", "Rate limit exceeded", map[string]any{
			"retry_after_seconds": retryAfterSeconds,
		})
	}
}

// Allow records a request for key if the window has capacity. It prunes
// timestamps older than the window, then appends the current instant. When
// the window is full it returns the wait until the oldest entry expires.
func (l *RateLimiter) Allow(key string, requests int, window time.Duration) (bool, time.Duration) {
	if l == nil {
		return true, 0
	}
	now := l.now()
	windowStart := now.Add(-window)

	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.history[key][:0]
	for _, ts := range l.history[key] {
		if ts.After(windowStart) {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= requests {
		l.history[key] = kept
		retryAfter := kept[0].Sub(windowStart)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return false, retryAfter
	}

	l.history[key] = append(kept, now)
	return true, 0
}
