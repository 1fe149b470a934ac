package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterAllowsUpToMax(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)
	now := time.Now()

	for i := 0; i < 3; i++ {
		ok, _ := rl.allow("10.0.0.1", now)
		if !ok {
			t.Fatalf("request %d rejected inside the budget", i+1)
		}
	}
	if ok, _ := rl.allow("10.0.0.1", now); ok {
		t.Fatal("request over budget admitted")
	}
}

func TestRateLimiterIsolatesClients(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	now := time.Now()

	if ok, _ := rl.allow("10.0.0.1", now); !ok {
		t.Fatal("first client rejected")
	}
	if ok, _ := rl.allow("10.0.0.2", now); !ok {
		t.Fatal("second client throttled by first client's traffic")
	}
}

func TestRateLimiterWindowSlides(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	start := time.Now()

	if ok, _ := rl.allow("10.0.0.1", start); !ok {
		t.Fatal("first request rejected")
	}
	if ok, _ := rl.allow("10.0.0.1", start.Add(time.Second)); ok {
		t.Fatal("second request admitted inside the window")
	}
	if ok, _ := rl.allow("10.0.0.1", start.Add(2*time.Minute)); !ok {
		t.Fatal("request rejected after the window expired")
	}
}
