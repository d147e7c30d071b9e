package httpserver

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// rateLimiter hands out one token bucket per client IP and drops buckets
// that have been idle for a while.
type rateLimiter struct {
	mu      sync.Mutex
	clients map[string]*rateClient
	limit   rate.Limit
	burst   int
}

type rateClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const rateClientTTL = 10 * time.Minute

func newRateLimiter(perSec float64, burst int) *rateLimiter {
	return &rateLimiter{
		clients: make(map[string]*rateClient),
		limit:   rate.Limit(perSec),
		burst:   burst,
	}
}

func (rl *rateLimiter) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.visitor(c.ClientIP()).Allow() {
			errorJSON(c, http.StatusTooManyRequests, "too many requests")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (rl *rateLimiter) visitor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if v, ok := rl.clients[ip]; ok {
		v.lastSeen = now
		return v.limiter
	}

	// Opportunistic cleanup on the insert path keeps the map bounded
	// without a background goroutine.
	for addr, v := range rl.clients {
		if now.Sub(v.lastSeen) > rateClientTTL {
			delete(rl.clients, addr)
		}
	}

	limiter := rate.NewLimiter(rl.limit, rl.burst)
	rl.clients[ip] = &rateClient{limiter: limiter, lastSeen: now}
	return limiter
}
