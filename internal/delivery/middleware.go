package delivery

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	RequestIDHeader = "X-Request-ID"
	AdminAuthCookie = "adminAuth"
	AdminUserCookie = "adminUser"

	requestIDKey = "requestID"
)

// RequestID makes sure every response carries an X-Request-ID, reusing the
// caller's value when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Set(requestIDKey, id)
		c.Next()
	}
}

// RequestLogger writes one entry per finished request, tagged with the route
// template and the id set by RequestID. The level follows the status class.
func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := logrus.Fields{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
			"remote_ip":   c.ClientIP(),
			"latency_ms":  time.Since(start).Milliseconds(),
		}
		if route := c.FullPath(); route != "" {
			fields["route"] = route
		}
		if id := c.GetString(requestIDKey); id != "" {
			fields["request_id"] = id
		}
		entry := logger.WithFields(fields)

		switch status := c.Writer.Status(); {
		case len(c.Errors) > 0:
			entry.Error(c.Errors.ByType(gin.ErrorTypePrivate).String())
		case status >= http.StatusInternalServerError:
			entry.Error("Request failed")
		case status >= http.StatusBadRequest:
			entry.Warn("Request rejected")
		default:
			entry.Info("Request served")
		}
	}
}

// AdminGuard admits requests carrying the adminAuth cookie set by a
// successful login. The cookie is readable by scripts and unsigned; it marks a
// demo session, it does not authenticate anyone.
func AdminGuard(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := c.Cookie(AdminAuthCookie)
		if err != nil || value != "true" {
			log.Warnf("Middleware: Admin cookie missing for %s %s", c.Request.Method, c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Admin login required"})
			return
		}
		c.Next()
	}
}

const minLimiterIdleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP. Buckets idle for longer
// than idleTTL are dropped; idleTTL is never shorter than a full refill, so a
// dropped bucket would have been full anyway.
type RateLimiter struct {
	visitors  map[string]*visitor
	mu        sync.Mutex
	rate      rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
	log       *logrus.Logger
}

func NewRateLimiter(perMinute, burst int, logger *logrus.Logger) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 1
	}
	if burst <= 0 {
		burst = 1
	}
	interval := time.Minute / time.Duration(perMinute)
	idleTTL := time.Duration(burst) * interval
	if idleTTL < minLimiterIdleTTL {
		idleTTL = minLimiterIdleTTL
	}
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate.Every(interval),
		burst:    burst,
		idleTTL:  idleTTL,
		now:      time.Now,
		log:      logger,
	}
}

// getLimiter returns the bucket for key and sweeps idle buckets at most once
// per idleTTL.
func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) >= rl.idleTTL {
		rl.cleanupLocked(now)
		rl.lastSweep = now
	}

	v, exists := rl.visitors[key]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter
}

// Cleanup drops idle buckets and returns how many were removed.
func (rl *RateLimiter) Cleanup() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return rl.cleanupLocked(rl.now())
}

func (rl *RateLimiter) cleanupLocked(now time.Time) int {
	removed := 0
	for key, v := range rl.visitors {
		if now.Sub(v.lastSeen) > rl.idleTTL {
			delete(rl.visitors, key)
			removed++
		}
	}
	if removed > 0 {
		rl.log.Debugf("Middleware: Dropped %d idle rate limit buckets", removed)
	}
	return removed
}

// Len reports the number of tracked clients.
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.visitors)
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if !rl.getLimiter(key).Allow() {
			rl.log.Warnf("Middleware: Rate limit exceeded for %s on %s", key, c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{Error: "Too many requests, try again later"})
			return
		}
		c.Next()
	}
}
