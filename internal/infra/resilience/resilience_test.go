package resilience_test

import (
	"context"
	"testing"
	"time"

	"github.com/jdvalencia/fondos-dashboard-go/internal/infra/resilience"
)

func TestBulkhead_AcquireRelease(t *testing.T) {
	b := resilience.NewBulkhead(1)

	if err := b.Acquire(context.Background()); err != nil {
		t.Fatalf("expected acquire to succeed, got %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := b.Acquire(ctx); err == nil {
		t.Fatal("expected acquire to fail while slot is held")
	}

	b.Release()
	if err := b.Acquire(context.Background()); err != nil {
		t.Fatalf("expected acquire after release to succeed, got %v", err)
	}
}

func TestCircuitBreaker_OpensAfterFailures(t *testing.T) {
	cb := resilience.NewCircuitBreaker("test")

	fail := func() (any, error) { return nil, context.DeadlineExceeded }
	for i := 0; i < 6; i++ {
		cb.Execute(fail)
	}

	_, err := cb.Execute(func() (any, error) { return nil, nil })
	if err == nil {
		t.Fatal("expected circuit to be open")
	}
}
