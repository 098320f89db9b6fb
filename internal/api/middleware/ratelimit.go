package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	apperrors "scoutpro-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// Route-class ceilings. The guard sits in front of the handlers it protects
// and is independent of their logic.
var (
	GeneralClass  = RateClass{Name: "general", Window: 15 * time.Minute, Max: 100}
	LoginClass    = RateClass{Name: "login", Window: 15 * time.Minute, Max: 5}
	RegisterClass = RateClass{Name: "register", Window: 24 * time.Hour, Max: 3}
	UploadClass   = RateClass{Name: "upload", Window: time.Hour, Max: 10}
)

// RateClass describes one route class's request ceiling over a rolling window
type RateClass struct {
	Name   string
	Window time.Duration
	Max    int
}

// RateLimiter is a sliding-window request counter keyed by client address.
// State is process-scoped and owned by whoever wires the router; there are
// no package-level counters.
type RateLimiter struct {
	class RateClass

	mu   sync.Mutex
	hits map[string][]time.Time
	now  func() time.Time
}

// NewRateLimiter creates a limiter for one route class
func NewRateLimiter(class RateClass) *RateLimiter {
	return &RateLimiter{
		class: class,
		hits:  map[string][]time.Time{},
		now:   time.Now,
	}
}

// Allow records a request for the key and reports whether it is within the
// ceiling. On breach it returns the remaining window duration as the
// retry-after hint.
func (l *RateLimiter) Allow(key string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.class.Window)

	recent := l.hits[key][:0]
	for _, t := range l.hits[key] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= l.class.Max {
		l.hits[key] = recent
		retryAfter := l.class.Window - now.Sub(recent[0])
		return false, retryAfter
	}

	l.hits[key] = append(recent, now)
	return true, 0
}

// Limit rejects requests over the ceiling with 429 and a Retry-After hint
func (l *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, retryAfter := l.Allow(c.ClientIP())
		if !ok {
			err := apperrors.NewRateLimitedError(retryAfter)
			c.Header("Retry-After", strconv.Itoa(retrySeconds(retryAfter)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       err.Error(),
				"retry_after": retrySeconds(retryAfter),
			})
			return
		}
		c.Next()
	}
}

func retrySeconds(d time.Duration) int {
	return int(math.Ceil(d.Seconds()))
}
