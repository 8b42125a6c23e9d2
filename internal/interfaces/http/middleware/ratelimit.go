package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/execdash/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// RateLimiter is a fixed-window in-memory limiter keyed by client
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	limit   int
	period  time.Duration
}

type window struct {
	count   int
	startAt time.Time
}

// NewRateLimiter allows limit requests per period per key. A background
// goroutine evicts keys idle for more than two periods.
func NewRateLimiter(limit int, period time.Duration) *RateLimiter {
	rl := &RateLimiter{
		windows: make(map[string]*window),
		limit:   limit,
		period:  period,
	}
	go rl.evictIdle()
	return rl
}

func (rl *RateLimiter) evictIdle() {
	ticker := time.NewTicker(rl.period * 2)
	defer ticker.Stop()
	for range ticker.C {
		rl.sweep()
	}
}

func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, w := range rl.windows {
		if time.Since(w.startAt) > rl.period*2 {
			delete(rl.windows, key)
		}
	}
}

// take consumes one slot for key, reporting whether the request may
// proceed and how many slots remain in the current window
func (rl *RateLimiter) take(key string) (bool, int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w := rl.windows[key]
	if w == nil || now.Sub(w.startAt) >= rl.period {
		w = &window{startAt: now}
		rl.windows[key] = w
	}

	if w.count >= rl.limit {
		return false, 0
	}
	w.count++
	return true, rl.limit - w.count
}

// RateLimit enforces the limiter per client IP and exposes the usual
// X-RateLimit headers
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, remaining := limiter.take(c.ClientIP())
		if !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(
				dto.ErrCodeRateLimited,
				"Too many requests. Please try again later.",
			))
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Next()
	}
}
