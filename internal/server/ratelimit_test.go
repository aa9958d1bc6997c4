package server

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)
	defer rl.Stop()

	now := time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("fourth request within the window should be rejected")
	}
	if !rl.Allow("10.0.0.2") {
		t.Fatal("a different client should have its own bucket")
	}

	now = now.Add(time.Minute)
	if !rl.Allow("10.0.0.1") {
		t.Fatal("bucket should refill after the window")
	}
}

func TestRateLimiterZeroCapacity(t *testing.T) {
	rl := NewRateLimiter(0, time.Minute)
	defer rl.Stop()

	if rl.Allow("10.0.0.1") {
		t.Fatal("zero capacity should reject the first request")
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("zero capacity should reject later requests")
	}
}

func TestRateLimiterCleanup(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()

	now := time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	rl.Allow("10.0.0.1")

	now = now.Add(2 * time.Hour)
	rl.cleanup()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if len(rl.clients) != 0 {
		t.Fatalf("expected idle buckets to be removed, got %d", len(rl.clients))
	}
}

func TestRateLimiterStopTwice(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	rl.Stop()
	rl.Stop()
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	if got := clientIP(req); got != "192.0.2.1" {
		t.Errorf("clientIP() = %q, expected 192.0.2.1", got)
	}

	req.RemoteAddr = "not-an-address"
	if got := clientIP(req); got != "not-an-address" {
		t.Errorf("clientIP() = %q, expected raw RemoteAddr", got)
	}
}
