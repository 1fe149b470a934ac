package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medicore-health/hms/pkg/logger"
	"go.uber.org/zap"
)

// RateLimiter is a per-IP sliding window limiter.
type RateLimiter struct {
	tokens     map[string][]time.Time
	maxRequest int
	duration   time.Duration
	mu         sync.Mutex
}

func NewRateLimiter(maxRequest int, duration time.Duration) *RateLimiter {
	return &RateLimiter{
		tokens:     make(map[string][]time.Time),
		maxRequest: maxRequest,
		duration:   duration,
	}
}

func (rl *RateLimiter) cleanup(now time.Time) {
	for ip, tokens := range rl.tokens {
		var valid []time.Time
		for _, t := range tokens {
			if now.Sub(t) <= rl.duration {
				valid = append(valid, t)
			}
		}
		if len(valid) > 0 {
			rl.tokens[ip] = valid
		} else {
			delete(rl.tokens, ip)
		}
	}
}

// allow records a hit and reports whether the caller is still inside the
// window, along with the remaining budget.
func (rl *RateLimiter) allow(ip string, now time.Time) (bool, int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.cleanup(now)

	tokens := rl.tokens[ip]
	if len(tokens) >= rl.maxRequest {
		return false, 0
	}
	rl.tokens[ip] = append(tokens, now)
	return true, rl.maxRequest - len(tokens) - 1
}

func RateLimit(maxRequest int, duration time.Duration) gin.HandlerFunc {
	limiter := NewRateLimiter(maxRequest, duration)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		ok, remaining := limiter.allow(ip, now)
		if !ok {
			logger.GetLogger().Warn("Rate limit exceeded",
				zap.String("client_ip", ip),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Int("max_requests", maxRequest),
			)
			c.Header("Retry-After", fmt.Sprintf("%d", int(duration.Seconds())))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"message":     "Rate limit exceeded",
				"retry_after": duration.Seconds(),
			})
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", maxRequest))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", now.Add(duration).Unix()))

		c.Next()
	}
}
