package middlewares

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiterConfig bounds the request rate a single client may sustain.
type RateLimiterConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// clientLimiters hands out one token bucket per client address.
type clientLimiters struct {
	config   RateLimiterConfig
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func (cl *clientLimiters) get(addr string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	limiter, ok := cl.limiters[addr]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(cl.config.RequestsPerSecond), cl.config.Burst)
		cl.limiters[addr] = limiter
	}
	return limiter
}

// NewRateLimiterMiddleware throttles each client address independently so
// one busy client cannot starve the rest.
func NewRateLimiterMiddleware(config RateLimiterConfig) gin.HandlerFunc {
	clients := &clientLimiters{
		config:   config,
		limiters: make(map[string]*rate.Limiter),
	}

	return func(c *gin.Context) {
		if !clients.get(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}

		c.Next()
	}
}
