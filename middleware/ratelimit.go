package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/Vtdarling/kitchenAI/entity"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter caps requests per client address with a token bucket per IP.
// Counter updates are serialized per key by the mutex so concurrent requests
// from the same address cannot lose updates.
type RateLimiter struct {
	mu       sync.Mutex
	clients  map[string]*clientLimiter
	limit    rate.Limit
	burst    int
	stop     chan struct{}
	stopOnce sync.Once
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter builds a limiter from config and starts the idle-entry
// eviction loop.
func NewRateLimiter(cfg entity.RateLimit) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*clientLimiter),
		limit:   rate.Limit(cfg.RequestsPerSecond),
		burst:   cfg.Burst,
		stop:    make(chan struct{}),
	}
	go rl.evictLoop()
	return rl
}

// Stop terminates the eviction loop. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Allow reports whether a request from the given client address may proceed.
func (rl *RateLimiter) Allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, ok := rl.clients[clientIP]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[clientIP] = cl
	}
	cl.lastSeen = time.Now()
	return cl.limiter.Allow()
}

// Middleware rejects over-limit requests before any downstream handler runs.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests, please slow down"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) evictLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.mu.Lock()
			for ip, cl := range rl.clients {
				if time.Since(cl.lastSeen) > 3*time.Minute {
					delete(rl.clients, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}
