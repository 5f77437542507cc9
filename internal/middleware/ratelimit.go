package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/quiz-backend/internal/response"
)

// RateLimiter is a per-client-IP fixed window limiter.
type RateLimiter struct {
	mu          sync.Mutex
	clients     map[string]*window
	limit       int
	interval    time.Duration
	lastCleanup time.Time
	now         func() time.Time
}

type window struct {
	start time.Time
	count int
}

// NewRateLimiter allows limit requests per client within each interval.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		clients:  make(map[string]*window),
		limit:    limit,
		interval: interval,
		now:      time.Now,
	}
}

// Allow records a request from key and reports whether it is within the limit.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastCleanup) > rl.interval {
		rl.cleanup(now)
	}

	w, ok := rl.clients[key]
	if !ok || now.Sub(w.start) >= rl.interval {
		w = &window{start: now}
		rl.clients[key] = w
	}
	if w.count >= rl.limit {
		return false
	}
	w.count++
	return true
}

// Middleware returns a Gin middleware that rate-limits requests by IP.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			response.AbortFail(c, http.StatusTooManyRequests, response.ErrRateLimitExceeded)
			return
		}
		c.Next()
	}
}

// cleanup drops windows that have expired. Caller holds mu.
func (rl *RateLimiter) cleanup(now time.Time) {
	for key, w := range rl.clients {
		if now.Sub(w.start) >= rl.interval {
			delete(rl.clients, key)
		}
	}
	rl.lastCleanup = now
}
