package delivery

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestRequestIDIsPropagated(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("requestID"))
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
}

func TestRateLimiterKeysByClientIP(t *testing.T) {
	logger, hook := test.NewNullLogger()
	limiter := NewRateLimiter(1, 1, logger)

	router := gin.New()
	router.POST("/login", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, send("192.0.2.1:1000"))
	assert.Equal(t, http.StatusTooManyRequests, send("192.0.2.1:1001"))
	assert.Equal(t, http.StatusNoContent, send("192.0.2.2:1000"))
	assert.NotEmpty(t, hook.AllEntries())
}

func TestRequestLoggerRecordsStatus(t *testing.T) {
	logger, hook := test.NewNullLogger()
	router := gin.New()
	router.Use(RequestID(), RequestLogger(logger))
	router.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	req := httptest.NewRequest(http.MethodGet, "/items/7", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	router.ServeHTTP(httptest.NewRecorder(), req)

	entry := hook.LastEntry()
	if assert.NotNil(t, entry) {
		assert.Equal(t, logrus.WarnLevel, entry.Level)
		assert.Equal(t, http.StatusNotFound, entry.Data["status_code"])
		assert.Equal(t, "/items/7", entry.Data["path"])
		assert.Equal(t, "/items/:id", entry.Data["route"])
		assert.Equal(t, "req-42", entry.Data["request_id"])
	}
}

func TestRateLimiterDropsIdleClients(t *testing.T) {
	logger, _ := test.NewNullLogger()
	rl := NewRateLimiter(60, 1, logger)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.getLimiter("192.0.2.1")
	rl.getLimiter("192.0.2.2")
	assert.Equal(t, 2, rl.Len())

	now = now.Add(5 * time.Minute)
	rl.getLimiter("192.0.2.2")
	assert.Zero(t, rl.Cleanup())

	now = now.Add(minLimiterIdleTTL)
	assert.Equal(t, 1, rl.Cleanup())
	assert.Equal(t, 1, rl.Len())

	// the next lookup sweeps on its own once a full TTL has passed
	now = now.Add(time.Hour)
	rl.getLimiter("192.0.2.3")
	assert.Equal(t, 1, rl.Len())
}

func TestRateLimiterIdleTTLCoversRefill(t *testing.T) {
	logger, _ := test.NewNullLogger()

	assert.Equal(t, minLimiterIdleTTL, NewRateLimiter(10, 5, logger).idleTTL)
	assert.Equal(t, 20*time.Minute, NewRateLimiter(1, 20, logger).idleTTL)
}
