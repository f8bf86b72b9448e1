package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/postcraft-backend/pkg/ctxutil"
)

// KeyFunc selects the bucket a request is counted against.
type KeyFunc func(r *http.Request) string

// ByIP keys requests by the remote host, ignoring the port.
func ByIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// ByUser keys requests by the authenticated owner, falling back to the IP.
func ByUser(r *http.Request) string {
	if id, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		return "user:" + id.String()
	}
	return "ip:" + ByIP(r)
}

// RateLimiter keeps one token bucket per key and limit. Buckets that have
// refilled completely carry no state and are dropped by a background sweep.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	clock   clockwork.Clock
	stop    chan struct{}
	once    sync.Once
}

type bucket struct {
	tokens   float64
	capacity float64
	perSec   float64
	updated  time.Time
}

// NewRateLimiter starts the sweep goroutine; call Stop on shutdown.
func NewRateLimiter(clock clockwork.Clock, sweepInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[string]*bucket),
		clock:   clock,
		stop:    make(chan struct{}),
	}
	go rl.sweepLoop(sweepInterval)
	return rl
}

func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// LimitBy allows perMinute requests per key with bursts up to perMinute.
// Every response carries RateLimit-Limit and RateLimit-Remaining; a rejected
// request gets 429 with Retry-After set to the wait for the next token.
func (rl *RateLimiter) LimitBy(perMinute int, key KeyFunc) Middleware {
	limit := strconv.Itoa(perMinute)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, remaining, wait := rl.take(limit+"|"+key(r), perMinute)

			w.Header().Set("RateLimit-Limit", limit)
			w.Header().Set("RateLimit-Remaining", strconv.Itoa(remaining))
			if !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"error":"rate limit exceeded","code":"rate_limited"}`)) //nolint:errcheck
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// take consumes one token from the bucket for key.
func (rl *RateLimiter) take(key string, perMinute int) (bool, int, time.Duration) {
	now := rl.clock.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{tokens: float64(perMinute), capacity: float64(perMinute), perSec: float64(perMinute) / 60, updated: now}
		rl.buckets[key] = b
	}
	b.refill(now)

	if b.tokens < 1 {
		wait := time.Duration((1 - b.tokens) / b.perSec * float64(time.Second))
		return false, 0, wait
	}
	b.tokens--
	return true, int(b.tokens), 0
}

func (b *bucket) refill(now time.Time) {
	if elapsed := now.Sub(b.updated); elapsed > 0 {
		b.tokens = min(b.capacity, b.tokens+elapsed.Seconds()*b.perSec)
	}
	b.updated = now
}

func (rl *RateLimiter) sweepLoop(interval time.Duration) {
	ticker := rl.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.Chan():
			rl.sweep(rl.clock.Now())
		}
	}
}

func (rl *RateLimiter) sweep(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, b := range rl.buckets {
		b.refill(now)
		if b.tokens >= b.capacity {
			delete(rl.buckets, key)
		}
	}
}
