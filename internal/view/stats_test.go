package view_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jdvalencia/fondos-dashboard-go/internal/domain"
	"github.com/jdvalencia/fondos-dashboard-go/internal/infra/observability"
	"github.com/jdvalencia/fondos-dashboard-go/internal/view"
)

type fakeUserReader struct {
	balance    *domain.Balance
	balanceErr error
	userFunds  []domain.UserFund
	fundsErr   error
}

func (f *fakeUserReader) GetUser(context.Context) (*domain.User, error) {
	return &domain.User{UserID: "u-1"}, nil
}

func (f *fakeUserReader) GetBalance(context.Context) (*domain.Balance, error) {
	return f.balance, f.balanceErr
}

func (f *fakeUserReader) GetUserFunds(context.Context) ([]domain.UserFund, error) {
	return f.userFunds, f.fundsErr
}

func (f *fakeUserReader) GetTransactions(context.Context, int) ([]domain.Transaction, error) {
	return nil, nil
}

func TestStats_Derivation(t *testing.T) {
	reader := &fakeUserReader{
		balance: &domain.Balance{UserID: "u-1", AvailableBalance: "500000.00"},
		userFunds: []domain.UserFund{
			{Subscription: domain.Subscription{FundID: "1", Active: true}},
			{Subscription: domain.Subscription{FundID: "2", Active: false}},
		},
	}

	stats := view.NewStats(reader, observability.NewMetrics(), zap.NewNop())
	stats.Refetch(context.Background())

	snap := stats.Snapshot()
	if snap.Err != "" {
		t.Fatalf("expected no error, got '%s'", snap.Err)
	}
	if !snap.Data.TotalBalance.Equal(decimal.NewFromInt(500000)) {
		t.Errorf("expected total balance 500000, got %s", snap.Data.TotalBalance)
	}
	if snap.Data.ActiveSubscriptions != 1 {
		t.Errorf("expected 1 active subscription, got %d", snap.Data.ActiveSubscriptions)
	}
}

func TestStats_FallbackSnapshotOnFailure(t *testing.T) {
	reader := &fakeUserReader{balanceErr: errors.New("connection refused")}

	stats := view.NewStats(reader, observability.NewMetrics(), zap.NewNop())
	stats.Refetch(context.Background())

	snap := stats.Snapshot()
	if snap.Err == "" {
		t.Fatal("expected an error message")
	}
	// Degraded mode: the fixed placeholder snapshot, never a blank dashboard.
	if !snap.Data.TotalBalance.Equal(decimal.NewFromInt(500000)) {
		t.Errorf("expected fallback balance 500000, got %s", snap.Data.TotalBalance)
	}
	if snap.Data.TotalUsers != 1250 || snap.Data.ActiveSubscriptions != 8 {
		t.Errorf("expected fallback placeholders, got %+v", snap.Data)
	}
}

func TestStats_BadDecimalIsAnError(t *testing.T) {
	reader := &fakeUserReader{
		balance: &domain.Balance{UserID: "u-1", AvailableBalance: "not-a-number"},
	}

	stats := view.NewStats(reader, observability.NewMetrics(), zap.NewNop())
	stats.Refetch(context.Background())

	if snap := stats.Snapshot(); snap.Err == "" {
		t.Error("expected an error for an unparseable balance")
	}
}
