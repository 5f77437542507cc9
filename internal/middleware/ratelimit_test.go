package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterWindow(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(2, time.Minute)
	rl.now = func() time.Time { return now }

	if !rl.Allow("1.1.1.1") || !rl.Allow("1.1.1.1") {
		t.Fatal("expected first two requests to pass")
	}
	if rl.Allow("1.1.1.1") {
		t.Fatal("expected third request to be limited")
	}
	if !rl.Allow("2.2.2.2") {
		t.Fatal("expected other client to have its own budget")
	}

	now = now.Add(time.Minute)
	if !rl.Allow("1.1.1.1") {
		t.Fatal("expected budget to reset after the interval")
	}
}

func TestRateLimiterCleanup(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, time.Minute)
	rl.now = func() time.Time { return now }

	rl.Allow("a")
	rl.Allow("b")
	now = now.Add(2 * time.Minute)
	rl.Allow("c")

	if _, ok := rl.clients["a"]; ok {
		t.Fatal("expected stale client a to be removed")
	}
	if len(rl.clients) != 1 {
		t.Fatalf("expected only client c to remain, got %d clients", len(rl.clients))
	}
}
