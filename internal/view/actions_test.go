package view_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jdvalencia/fondos-dashboard-go/internal/domain"
	"github.com/jdvalencia/fondos-dashboard-go/internal/view"
)

type fakeMutator struct {
	subscribeCalls int
	cancelCalls    int
	envelope       *domain.Envelope
	err            error
}

func (f *fakeMutator) Subscribe(context.Context, string) (*domain.Envelope, error) {
	f.subscribeCalls++
	return f.envelope, f.err
}

func (f *fakeMutator) Cancel(context.Context, string) (*domain.Envelope, error) {
	f.cancelCalls++
	return f.envelope, f.err
}

func activeFund() domain.Fund {
	return domain.Fund{ID: "1", Name: "FPV_BTG_PACTUAL_RECAUDADORA", MinimumAmount: "75000.00", Category: domain.CategoryFPV, IsActive: true}
}

func TestSubscribe_BelowMinimumNeverHitsNetwork(t *testing.T) {
	mutator := &fakeMutator{}
	actions := view.NewActions(mutator, view.NewBus(zap.NewNop()), zap.NewNop())

	_, err := actions.Subscribe(context.Background(), activeFund(), decimal.RequireFromString("74999.99"))

	var validation *domain.ErrValidation
	if !errors.As(err, &validation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if !strings.Contains(validation.Message, "$75,000.00") {
		t.Errorf("expected formatted minimum in message, got '%s'", validation.Message)
	}
	if mutator.subscribeCalls != 0 {
		t.Errorf("expected no network call, got %d", mutator.subscribeCalls)
	}
}

func TestSubscribe_ExactMinimumIsAccepted(t *testing.T) {
	mutator := &fakeMutator{envelope: &domain.Envelope{Success: true, Message: "Suscripción exitosa"}}
	actions := view.NewActions(mutator, view.NewBus(zap.NewNop()), zap.NewNop())

	msg, err := actions.Subscribe(context.Background(), activeFund(), decimal.RequireFromString("75000.00"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if msg != "Suscripción exitosa" {
		t.Errorf("expected server message, got '%s'", msg)
	}
	if mutator.subscribeCalls != 1 {
		t.Errorf("expected 1 subscribe call, got %d", mutator.subscribeCalls)
	}
}

func TestSubscribe_InactiveFundIsRejected(t *testing.T) {
	mutator := &fakeMutator{}
	actions := view.NewActions(mutator, view.NewBus(zap.NewNop()), zap.NewNop())

	fund := activeFund()
	fund.IsActive = false

	_, err := actions.Subscribe(context.Background(), fund, decimal.RequireFromString("80000"))
	var validation *domain.ErrValidation
	if !errors.As(err, &validation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if mutator.subscribeCalls != 0 {
		t.Error("expected no network call for an inactive fund")
	}
}

func TestSubscribe_SuccessPublishesInvalidationOnce(t *testing.T) {
	mutator := &fakeMutator{envelope: &domain.Envelope{Success: true}}
	bus := view.NewBus(zap.NewNop())

	invalidations := 0
	bus.Subscribe(view.TopicSubscriptionsChanged, func(context.Context) { invalidations++ })

	actions := view.NewActions(mutator, bus, zap.NewNop())
	if _, err := actions.Subscribe(context.Background(), activeFund(), decimal.RequireFromString("100000")); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if invalidations != 1 {
		t.Errorf("expected exactly one invalidation, got %d", invalidations)
	}
}

func TestSubscribe_ServerRejectionSurfacesMessageAndSkipsInvalidation(t *testing.T) {
	mutator := &fakeMutator{envelope: &domain.Envelope{Success: false, Message: "Saldo insuficiente para vincularse al fondo"}}
	bus := view.NewBus(zap.NewNop())

	invalidations := 0
	bus.Subscribe(view.TopicSubscriptionsChanged, func(context.Context) { invalidations++ })

	actions := view.NewActions(mutator, bus, zap.NewNop())
	_, err := actions.Subscribe(context.Background(), activeFund(), decimal.RequireFromString("100000"))

	var serverErr *domain.ErrServer
	if !errors.As(err, &serverErr) {
		t.Fatalf("expected ErrServer, got %v", err)
	}
	if serverErr.Message != "Saldo insuficiente para vincularse al fondo" {
		t.Errorf("expected server message, got '%s'", serverErr.Message)
	}
	if invalidations != 0 {
		t.Errorf("expected no invalidation on failure, got %d", invalidations)
	}
}

func TestCancel_PublishesSubscriptionsAndStatsRefetchOnceEach(t *testing.T) {
	mutator := &fakeMutator{envelope: &domain.Envelope{Success: true}}
	bus := view.NewBus(zap.NewNop())

	subscriptionRefetches := 0
	statsRefetches := 0
	bus.Subscribe(view.TopicSubscriptionsChanged, func(context.Context) { subscriptionRefetches++ })
	bus.Subscribe(view.TopicSubscriptionsChanged, func(context.Context) { statsRefetches++ })

	actions := view.NewActions(mutator, bus, zap.NewNop())
	if _, err := actions.Cancel(context.Background(), "1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if subscriptionRefetches != 1 || statsRefetches != 1 {
		t.Errorf("expected exactly one refetch each, got %d and %d", subscriptionRefetches, statsRefetches)
	}
	if mutator.cancelCalls != 1 {
		t.Errorf("expected 1 cancel call, got %d", mutator.cancelCalls)
	}
}

func TestCancel_TransportFailurePropagates(t *testing.T) {
	mutator := &fakeMutator{err: &domain.ErrTransport{Op: "Cancel", Err: errors.New("connection refused")}}
	actions := view.NewActions(mutator, view.NewBus(zap.NewNop()), zap.NewNop())

	_, err := actions.Cancel(context.Background(), "1")
	var transport *domain.ErrTransport
	if !errors.As(err, &transport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}
