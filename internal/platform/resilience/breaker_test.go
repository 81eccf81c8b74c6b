package resilience

import (
	"errors"
	"testing"
	"time"
)

func TestCircuitBreaker_OpensAndRecovers(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: 5 * time.Second, HalfOpenMaxReq: 1})

	now := time.Date(2025, 8, 16, 11, 30, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	upstream := errors.New("upstream down")
	fail := func() error { return upstream }

	if err := b.Execute(fail, nil); !errors.Is(err, upstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	_ = b.Execute(fail, nil)
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}

	called := false
	err := b.Execute(func() error { called = true; return nil }, nil)
	if !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}
	if called {
		t.Fatalf("fn must not run while the circuit is open")
	}

	now = now.Add(6 * time.Second)
	if state := b.State(); state != CircuitStateHalfOpen {
		t.Fatalf("expected half-open after timeout, got %s", state)
	}
	if err := b.Execute(func() error { return nil }, nil); err != nil {
		t.Fatalf("expected probe to pass, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful probe, got %s", state)
	}
}

func TestCircuitBreaker_IgnoresNonFailures(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{Enabled: true, FailureThreshold: 1})
	notFound := errors.New("not found")

	for i := 0; i < 3; i++ {
		_ = b.Execute(func() error { return notFound }, func(err error) bool { return !errors.Is(err, notFound) })
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed when errors are not counted, got %s", state)
	}
}

func TestCircuitBreaker_DisabledPassesThrough(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{Enabled: false, FailureThreshold: 1})
	for i := 0; i < 3; i++ {
		_ = b.Execute(func() error { return errors.New("x") }, nil)
	}
	if err := b.Execute(func() error { return nil }, nil); err != nil {
		t.Fatalf("disabled breaker should never reject, got %v", err)
	}
}
