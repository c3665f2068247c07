package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shahisiiii/quiz-platform/internal/response"
)

const staleVisitorAge = 3 * time.Minute

// RateLimiter is a per-IP token bucket. Each client starts with a full
// bucket of `limit` tokens; the bucket refills completely every window.
// Used on the auth routes to slow down credential stuffing.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	limit   int
	window  time.Duration
}

type bucket struct {
	remaining int
	refilled  time.Time
}

// NewRateLimiter creates a RateLimiter allowing `limit` requests per
// window per client IP. It starts a janitor goroutine that evicts idle
// clients; the limiter lives for the process, so the goroutine does too.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[string]*bucket),
		limit:   limit,
		window:  window,
	}

	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			rl.evictStale()
		}
	}()

	return rl
}

// Middleware returns a Gin handler that rejects over-limit clients with 429.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			response.AbortFail(c, http.StatusTooManyRequests, response.ErrRateLimitExceeded)
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	b, ok := rl.buckets[ip]
	if !ok {
		b = &bucket{remaining: rl.limit, refilled: now}
		rl.buckets[ip] = b
	}

	if now.Sub(b.refilled) >= rl.window {
		b.remaining = rl.limit
		b.refilled = now
	}

	if b.remaining <= 0 {
		return false
	}
	b.remaining--
	return true
}

func (rl *RateLimiter) evictStale() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, b := range rl.buckets {
		if time.Since(b.refilled) > staleVisitorAge {
			delete(rl.buckets, ip)
		}
	}
}
