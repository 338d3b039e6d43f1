package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedEngine(limiter *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.POST("/insights", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func doRequest(engine *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/insights", nil)
	req.RemoteAddr = remoteAddr
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func TestRateLimiterMiddleware(t *testing.T) {
	t.Setenv("ENV", "unit")
	t.Setenv("E2E_MODE", "")

	t.Run("blocks after the attempt budget is spent", func(t *testing.T) {
		limiter := NewRateLimiterWithConfig(2, time.Minute)
		engine := newLimitedEngine(limiter)

		assert.Equal(t, http.StatusOK, doRequest(engine, "192.0.2.1:1000").Code)
		assert.Equal(t, http.StatusOK, doRequest(engine, "192.0.2.1:1000").Code)

		blocked := doRequest(engine, "192.0.2.1:1000")
		assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
		assert.Contains(t, blocked.Body.String(), "Too many requests")
	})

	t.Run("clients are tracked separately", func(t *testing.T) {
		limiter := NewRateLimiterWithConfig(1, time.Minute)
		engine := newLimitedEngine(limiter)

		assert.Equal(t, http.StatusOK, doRequest(engine, "192.0.2.1:1000").Code)
		assert.Equal(t, http.StatusTooManyRequests, doRequest(engine, "192.0.2.1:1000").Code)
		assert.Equal(t, http.StatusOK, doRequest(engine, "192.0.2.2:1000").Code)
	})

	t.Run("window expiry restores the budget", func(t *testing.T) {
		limiter := NewRateLimiterWithConfig(1, time.Minute)
		engine := newLimitedEngine(limiter)

		assert.Equal(t, http.StatusOK, doRequest(engine, "192.0.2.1:1000").Code)
		assert.Equal(t, http.StatusTooManyRequests, doRequest(engine, "192.0.2.1:1000").Code)

		expireWindow(t, limiter)

		assert.Equal(t, http.StatusOK, doRequest(engine, "192.0.2.1:1000").Code)
	})

	t.Run("reset clears all state", func(t *testing.T) {
		limiter := NewRateLimiterWithConfig(1, time.Minute)
		engine := newLimitedEngine(limiter)

		assert.Equal(t, http.StatusOK, doRequest(engine, "192.0.2.1:1000").Code)
		assert.Equal(t, http.StatusTooManyRequests, doRequest(engine, "192.0.2.1:1000").Code)

		limiter.Reset()

		assert.Equal(t, http.StatusOK, doRequest(engine, "192.0.2.1:1000").Code)
	})

	t.Run("cleanup drops only expired entries", func(t *testing.T) {
		limiter := NewRateLimiterWithConfig(1, time.Minute)
		require.True(t, limiter.allow("stale"))
		expireWindow(t, limiter)
		require.True(t, limiter.allow("fresh"))

		limiter.Cleanup()

		limiter.mu.Lock()
		_, staleKept := limiter.entries["stale"]
		_, freshKept := limiter.entries["fresh"]
		limiter.mu.Unlock()
		assert.False(t, staleKept)
		assert.True(t, freshKept)
	})
}

func TestRateLimiterSkipsInTestEnv(t *testing.T) {
	t.Setenv("ENV", "test")

	limiter := NewRateLimiterWithConfig(1, time.Minute)
	engine := newLimitedEngine(limiter)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, doRequest(engine, "192.0.2.1:1000").Code)
	}
}

// expireWindow rewinds every tracked window so the next request starts a
// fresh one.
func expireWindow(t *testing.T, limiter *RateLimiter) {
	t.Helper()
	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	for _, entry := range limiter.entries {
		entry.resetTime = time.Now().Add(-time.Second)
	}
}
