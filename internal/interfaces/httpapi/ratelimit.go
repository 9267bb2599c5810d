package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

var errRateLimited = errors.New("too many requests")

const limiterIdleTTL = 10 * time.Minute

// ClientLimiter hands out one token bucket per client IP.
type ClientLimiter struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	clients  map[string]*clientBucket
	now      func() time.Time
	lastTidy time.Time
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewClientLimiter allows perSecond requests with the given burst per client.
// A non-positive rate disables limiting.
func NewClientLimiter(perSecond float64, burst int) *ClientLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &ClientLimiter{
		limit:   rate.Limit(perSecond),
		burst:   burst,
		clients: make(map[string]*clientBucket),
		now:     time.Now,
	}
}

func (l *ClientLimiter) Allow(key string) bool {
	if l == nil || l.limit <= 0 {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.tidy(now)

	bucket, ok := l.clients[key]
	if !ok {
		bucket = &clientBucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = bucket
	}
	bucket.lastSeen = now
	return bucket.limiter.AllowN(now, 1)
}

func (l *ClientLimiter) tidy(now time.Time) {
	if now.Sub(l.lastTidy) < limiterIdleTTL {
		return
	}
	l.lastTidy = now
	for key, bucket := range l.clients {
		if now.Sub(bucket.lastSeen) > limiterIdleTTL {
			delete(l.clients, key)
		}
	}
}

func RateLimit(limiter *ClientLimiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := resolveClientIP(r)
		if !limiter.Allow(ip) {
			w.Header().Set("Retry-After", "1")
			writeError(r.Context(), w, fmt.Errorf("%w: slow down", errRateLimited))
			return
		}
		next.ServeHTTP(w, r)
	})
}
