// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Idle limiters are dropped once the map grows past sweepThreshold.
const (
	sweepThreshold = 10000
	limiterIdleTTL = 30 * time.Minute
)

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter applies a token bucket per client IP. The key is the
// connected peer's address unless trustProxy is set, in which case
// X-Forwarded-For and X-Real-IP name the client.
type RateLimiter struct {
	mu         sync.Mutex
	limiters   map[string]*ipLimiter
	rps        rate.Limit
	burst      int
	trustProxy bool
}

func NewRateLimiter(rps float64, burst int, trustProxy bool) *RateLimiter {
	return &RateLimiter{
		limiters:   make(map[string]*ipLimiter),
		rps:        rate.Limit(rps),
		burst:      burst,
		trustProxy: trustProxy,
	}
}

// clientKey picks the bucket for r
func (rl *RateLimiter) clientKey(r *http.Request) string {
	if rl.trustProxy {
		return GetClientIP(r)
	}
	return RemoteIP(r)
}

// Allow reports whether a request from key may proceed now
func (rl *RateLimiter) Allow(key string) bool {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	l, ok := rl.limiters[key]
	if !ok {
		if len(rl.limiters) >= sweepThreshold {
			rl.sweep(now)
		}
		l = &ipLimiter{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.limiters[key] = l
	}
	l.lastSeen = now
	return l.limiter.AllowN(now, 1)
}

// sweep drops limiters idle longer than limiterIdleTTL. Caller holds mu.
func (rl *RateLimiter) sweep(now time.Time) {
	for key, l := range rl.limiters {
		if now.Sub(l.lastSeen) > limiterIdleTTL {
			delete(rl.limiters, key)
		}
	}
}

// Limit wraps a handler, answering 429 once a client exceeds its budget
func (rl *RateLimiter) Limit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := rl.clientKey(r)
		if !rl.Allow(ip) {
			slog.Warn("rate limit exceeded", "path", r.URL.Path, "remote", ip)
			ErrorResponse(w, http.StatusTooManyRequests, "Too many requests, slow down")
			return
		}
		next(w, r)
	}
}
