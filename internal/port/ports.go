// Package port defines the interfaces (ports) for the external fund
// platform API. Following hexagonal architecture, these ports decouple the
// view layer from the concrete HTTP client.
package port

import (
	"context"

	"github.com/jdvalencia/fondos-dashboard-go/internal/domain"
)

// FundReader retrieves fund catalog data.
type FundReader interface {
	ListFunds(ctx context.Context) ([]domain.Fund, error)
	GetFund(ctx context.Context, fundID string) (*domain.Fund, error)
}

// FundMutator performs subscription mutations. Both operations return the
// raw mutation envelope so callers can surface the server's message.
type FundMutator interface {
	Subscribe(ctx context.Context, fundID string) (*domain.Envelope, error)
	Cancel(ctx context.Context, fundID string) (*domain.Envelope, error)
}

// UserReader retrieves the current user's data.
type UserReader interface {
	GetUser(ctx context.Context) (*domain.User, error)
	GetBalance(ctx context.Context) (*domain.Balance, error)
	GetUserFunds(ctx context.Context) ([]domain.UserFund, error)
	GetTransactions(ctx context.Context, limit int) ([]domain.Transaction, error)
}

// NotificationStore reads and updates notification preferences.
type NotificationStore interface {
	GetPreferences(ctx context.Context) (*domain.NotificationPreferences, error)
	UpdatePreferences(ctx context.Context, update domain.PreferencesUpdate) (*domain.NotificationPreferences, error)
}
