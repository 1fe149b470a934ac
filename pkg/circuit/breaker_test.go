package circuit

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestNewBreaker(t *testing.T) {
	breaker := NewBreaker("test", DefaultConfig(), nil)

	if breaker.State() != StateClosed {
		t.Errorf("Expected initial state CLOSED, got %s", breaker.State().String())
	}

	if breaker.IsOpen() {
		t.Error("Expected breaker to not be open initially")
	}
}

func TestBreaker_OpensAfterThreshold(t *testing.T) {
	config := Config{
		Threshold:        3,
		Cooldown:         time.Second,
		SuccessThreshold: 2,
	}
	breaker := NewBreaker("test", config, zap.NewNop())

	for i := 0; i < 3; i++ {
		breaker.Record(errors.New("test error"))
	}

	if breaker.State() != StateOpen {
		t.Errorf("Expected state OPEN after %d failures, got %s", config.Threshold, breaker.State().String())
	}

	if err := breaker.Allow(); err != ErrCircuitOpen {
		t.Errorf("Expected ErrCircuitOpen, got %v", err)
	}
}

func TestBreaker_HalfOpenAfterCooldown(t *testing.T) {
	config := Config{
		Threshold:        2,
		Cooldown:         50 * time.Millisecond,
		SuccessThreshold: 2,
	}
	breaker := NewBreaker("test", config, zap.NewNop())

	breaker.Record(errors.New("error 1"))
	breaker.Record(errors.New("error 2"))

	if breaker.State() != StateOpen {
		t.Fatalf("Expected state OPEN, got %s", breaker.State().String())
	}

	time.Sleep(80 * time.Millisecond)

	if err := breaker.Allow(); err != nil {
		t.Errorf("Expected Allow() to succeed after cooldown, got %v", err)
	}

	if breaker.State() != StateHalfOpen {
		t.Errorf("Expected state HALF_OPEN, got %s", breaker.State().String())
	}
}

func TestBreaker_ClosesAfterSuccesses(t *testing.T) {
	config := Config{
		Threshold:        2,
		Cooldown:         10 * time.Millisecond,
		SuccessThreshold: 2,
	}
	breaker := NewBreaker("test", config, zap.NewNop())

	breaker.Record(errors.New("error 1"))
	breaker.Record(errors.New("error 2"))
	time.Sleep(20 * time.Millisecond)

	if err := breaker.Allow(); err != nil {
		t.Fatalf("Expected Allow() to succeed, got %v", err)
	}

	breaker.Record(nil)
	breaker.Record(nil)

	if breaker.State() != StateClosed {
		t.Errorf("Expected state CLOSED after successes, got %s", breaker.State().String())
	}
}

func TestBreaker_ReopensOnHalfOpenFailure(t *testing.T) {
	config := Config{
		Threshold:        2,
		Cooldown:         10 * time.Millisecond,
		SuccessThreshold: 2,
	}
	breaker := NewBreaker("test", config, zap.NewNop())

	breaker.Record(errors.New("error 1"))
	breaker.Record(errors.New("error 2"))
	time.Sleep(20 * time.Millisecond)

	if err := breaker.Allow(); err != nil {
		t.Fatalf("Expected Allow() to succeed, got %v", err)
	}

	breaker.Record(errors.New("still failing"))

	if breaker.State() != StateOpen {
		t.Errorf("Expected state OPEN after half-open failure, got %s", breaker.State().String())
	}
}

func TestBreaker_Execute(t *testing.T) {
	config := Config{
		Threshold:        1,
		Cooldown:         time.Minute,
		SuccessThreshold: 1,
	}
	breaker := NewBreaker("test", config, zap.NewNop())

	testErr := errors.New("boom")
	if err := breaker.Execute(func() error { return testErr }); err != testErr {
		t.Errorf("Expected wrapped error to pass through, got %v", err)
	}

	if err := breaker.Execute(func() error { return nil }); err != ErrCircuitOpen {
		t.Errorf("Expected fail-fast ErrCircuitOpen, got %v", err)
	}
}
