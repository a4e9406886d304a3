package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Vtdarling/kitchenAI/entity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_ExceededBlocksDownstream(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Tiny burst and a near-zero refill so the third request must fail.
	rl := NewRateLimiter(entity.RateLimit{RequestsPerSecond: 0.001, Burst: 2})
	defer rl.Stop()

	handled := 0
	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/", func(c *gin.Context) {
		handled++
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	do := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "203.0.113.7:1234"
		r.ServeHTTP(w, req)
		return w.Code
	}

	require.Equal(t, http.StatusOK, do())
	require.Equal(t, http.StatusOK, do())
	require.Equal(t, http.StatusTooManyRequests, do())
	require.Equal(t, 2, handled, "limited request must not reach the handler")
}

func TestRateLimiter_KeysByClientAddress(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewRateLimiter(entity.RateLimit{RequestsPerSecond: 0.001, Burst: 1})
	defer rl.Stop()

	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(addr string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		r.ServeHTTP(w, req)
		return w.Code
	}

	require.Equal(t, http.StatusOK, do("203.0.113.7:1234"))
	require.Equal(t, http.StatusTooManyRequests, do("203.0.113.7:9999"))
	// A different client address has its own bucket.
	require.Equal(t, http.StatusOK, do("198.51.100.9:1234"))
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(entity.RateLimit{RequestsPerSecond: 1, Burst: 1})
	rl.Stop()
	rl.Stop()
	// The limiter still answers after the eviction loop is gone.
	require.True(t, rl.Allow("203.0.113.7"))
}
