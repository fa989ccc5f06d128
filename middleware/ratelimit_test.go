// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"
)

func TestRateLimiter_Allow(t *testing.T) {
	// A near-zero refill rate makes the burst the whole budget
	rl := NewRateLimiter(0.001, 3, false)

	for i := 0; i < 3; i++ {
		if !rl.Allow("203.0.113.5") {
			t.Fatalf("Request %d should be allowed within burst", i+1)
		}
	}
	if rl.Allow("203.0.113.5") {
		t.Error("Request beyond burst should be rejected")
	}

	// Other clients have their own bucket
	if !rl.Allow("198.51.100.7") {
		t.Error("A different IP should not share the bucket")
	}
}

func TestRateLimiter_Sweep(t *testing.T) {
	rl := NewRateLimiter(1, 1, false)
	rl.Allow("stale")
	rl.Allow("fresh")

	rl.mu.Lock()
	rl.limiters["stale"].lastSeen = time.Now().Add(-2 * limiterIdleTTL)
	rl.sweep(time.Now())
	_, staleKept := rl.limiters["stale"]
	_, freshKept := rl.limiters["fresh"]
	rl.mu.Unlock()

	if staleKept {
		t.Error("Expected idle limiter to be swept")
	}
	if !freshKept {
		t.Error("Expected recent limiter to survive sweep")
	}
}

func TestRateLimiter_Limit(t *testing.T) {
	rl := NewRateLimiter(0.001, 1, false)
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	send := func() int {
		req := httptest.NewRequest("POST", "/login", nil)
		req.RemoteAddr = "192.0.2.10:4000"
		w := httptest.NewRecorder()
		handler(w, req)
		return w.Code
	}

	if code := send(); code != http.StatusOK {
		t.Fatalf("First request: expected 200, got %d", code)
	}
	if code := send(); code != http.StatusTooManyRequests {
		t.Errorf("Second request: expected 429, got %d", code)
	}
}

// TestRateLimiter_IgnoresForwardedHeaders checks that a client rotating
// X-Forwarded-For (or X-Real-IP) stays in the bucket of its peer address
func TestRateLimiter_IgnoresForwardedHeaders(t *testing.T) {
	rl := NewRateLimiter(1, 1, false)
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	allowed := 0
	for i := 0; i < 50; i++ {
		req := httptest.NewRequest("POST", "/login", nil)
		req.RemoteAddr = "203.0.113.9:" + strconv.Itoa(40000+i)
		req.Header.Set("X-Forwarded-For", "10.0.0."+strconv.Itoa(i))
		req.Header.Set("X-Real-IP", "10.0.1."+strconv.Itoa(i))
		w := httptest.NewRecorder()
		handler(w, req)
		if w.Code == http.StatusOK {
			allowed++
		}
	}

	// Burst of 1 at 1/s: the loop finishes well inside a second, so at most
	// one refill can land
	if allowed > 2 {
		t.Errorf("Expected spoofed headers to share one bucket, %d/50 requests allowed", allowed)
	}
}

func TestRateLimiter_TrustProxy(t *testing.T) {
	rl := NewRateLimiter(0.001, 1, true)
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	send := func(forwardedFor string) int {
		req := httptest.NewRequest("POST", "/login", nil)
		req.RemoteAddr = "10.0.0.1:443" // the proxy
		req.Header.Set("X-Forwarded-For", forwardedFor)
		w := httptest.NewRecorder()
		handler(w, req)
		return w.Code
	}

	if code := send("198.51.100.1"); code != http.StatusOK {
		t.Fatalf("First client: expected 200, got %d", code)
	}
	if code := send("198.51.100.2"); code != http.StatusOK {
		t.Errorf("Second client behind the same proxy: expected 200, got %d", code)
	}
	if code := send("198.51.100.1"); code != http.StatusTooManyRequests {
		t.Errorf("First client again: expected 429, got %d", code)
	}
}
