package middleware

import (
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/Aarekaz/api/internal/utils/response"
)

// clientTTL is how long an idle client's token bucket is kept before
// pruning. Prevents the map from growing without bound under scans.
const clientTTL = 10 * time.Minute

// RateLimiter applies a per-client-IP token bucket to every request.
//
// Each client gets its own rate.Limiter, created on first sight and
// discarded after clientTTL of inactivity. The mutex guards only the map
// lookup — rate.Limiter itself is safe for concurrent use.
type RateLimiter struct {
	limit rate.Limit
	burst int

	mu        sync.Mutex
	clients   map[string]*clientBucket
	lastPrune time.Time
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter returns a limiter allowing rps requests per second with
// the given burst per client IP.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		limit:     rate.Limit(rps),
		burst:     burst,
		clients:   make(map[string]*clientBucket),
		lastPrune: time.Now(),
	}
}

// Wrap returns a middleware that rejects over-limit requests with
// 429 Too Many Requests and the standard error envelope.
func (l *RateLimiter) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.allow(clientIP(r)) {
			response.WriteJSON(w, http.StatusTooManyRequests,
				response.GeneralError(errors.New("too many requests")))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (l *RateLimiter) allow(ip string) bool {
	now := time.Now()

	l.mu.Lock()

	// Prune opportunistically instead of running a background goroutine:
	// at most one sweep per TTL window, amortised across requests.
	if now.Sub(l.lastPrune) > clientTTL {
		for ip, c := range l.clients {
			if now.Sub(c.lastSeen) > clientTTL {
				delete(l.clients, ip)
			}
		}
		l.lastPrune = now
	}

	c, ok := l.clients[ip]
	if !ok {
		c = &clientBucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = c
	}
	c.lastSeen = now

	limiter := c.limiter
	l.mu.Unlock()

	return limiter.Allow()
}

// clientIP extracts the bare IP from r.RemoteAddr ("ip:port").
// Falls back to the raw string when there is no port (e.g. in tests
// that set RemoteAddr by hand).
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
