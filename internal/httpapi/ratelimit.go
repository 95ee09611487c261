package httpapi

import (
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// clientWindow tracks one peer's admissions inside the sliding window,
// plus the block-out deadline once the capacity is exceeded.
type clientWindow struct {
	requests     []time.Time
	blockedUntil time.Time
	lastSeen     time.Time
}

// RateLimiter is the per-peer sliding-window limiter with a block penalty.
// A single mutex serializes all table mutations; the table is capped by
// evicting peers idle longer than the block duration.
//
// State is process-local by design (see the non-goals): distributed
// deployments get per-instance limits.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientWindow

	capacity int
	interval time.Duration
	block    time.Duration

	// now is swapped in tests.
	now func() time.Time
}

// NewRateLimiter creates a limiter admitting capacity requests per interval
// per client, blocking offenders for block. A cleanup goroutine evicts idle
// entries so the table cannot grow without bound.
func NewRateLimiter(capacity int, interval, block time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients:  make(map[string]*clientWindow),
		capacity: capacity,
		interval: interval,
		block:    block,
		now:      time.Now,
	}
	go rl.cleanupLoop()
	return rl
}

// Allow decides admission for the client. When rejected, retryAfter is the
// number of seconds the client should wait.
func (rl *RateLimiter) Allow(clientIP string) (allowed bool, retryAfter int) {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	cw, ok := rl.clients[clientIP]
	if !ok {
		cw = &clientWindow{}
		rl.clients[clientIP] = cw
	}
	cw.lastSeen = now

	if cw.blockedUntil.After(now) {
		return false, int(math.Ceil(cw.blockedUntil.Sub(now).Seconds()))
	}

	// Evict admissions that slid out of the window.
	cutoff := now.Add(-rl.interval)
	kept := cw.requests[:0]
	for _, ts := range cw.requests {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	cw.requests = kept

	if len(cw.requests) >= rl.capacity {
		cw.blockedUntil = now.Add(rl.block)
		return false, int(rl.block.Seconds())
	}

	cw.requests = append(cw.requests, now)
	return true, 0
}

// cleanupLoop drops peers that have been idle for longer than the block
// duration; their window and any block-out are both stale by then.
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.block)
	defer ticker.Stop()

	for range ticker.C {
		now := rl.now()
		rl.mu.Lock()
		for ip, cw := range rl.clients {
			if now.Sub(cw.lastSeen) > rl.block && !cw.blockedUntil.After(now) {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// Middleware enforces the limiter on every request, keyed by the peer IP.
// Rejections are 429 with a {code, message} body and a Retry-After header.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientIP := peerIP(r)

		allowed, retryAfter := rl.Allow(clientIP)
		if !allowed {
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))

			log.Ctx(r.Context()).Warn().
				Str("client_ip", clientIP).
				Str("path", r.URL.Path).
				Int("retry_after", retryAfter).
				Msg("rate limit exceeded")

			writeJSON(w, http.StatusTooManyRequests, errorBody{
				Code: http.StatusTooManyRequests,
				Message: fmt.Sprintf("Too many requests from %s. Please try again after %d seconds.",
					clientIP, retryAfter),
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// peerIP extracts the connection's peer address. chi's RealIP middleware
// has already folded X-Forwarded-For / X-Real-IP into RemoteAddr.
func peerIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
