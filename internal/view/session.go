package view

import (
	"context"

	"go.uber.org/zap"

	"github.com/jdvalencia/fondos-dashboard-go/internal/domain"
	"github.com/jdvalencia/fondos-dashboard-go/internal/infra/observability"
	"github.com/jdvalencia/fondos-dashboard-go/internal/port"
)

// API bundles every port the session consumes. The fundsapi client
// satisfies all of them.
type API interface {
	port.FundReader
	port.FundMutator
	port.UserReader
	port.NotificationStore
}

// Session is the explicit container owning every view-state controller for
// the dashboard's single user. It is created on startup and discarded on
// shutdown; there is no package-level state.
type Session struct {
	Funds        *Resource[[]domain.Fund]
	UserFunds    *Resource[[]domain.UserFund]
	Transactions *Resource[[]domain.Transaction]
	Balance      *Resource[domain.Balance]
	User         *Resource[domain.User]
	Preferences  *Preferences
	Stats        *Resource[domain.DashboardStats]
	Actions      *Actions
	Bus          *Bus
}

// NewSession wires every view to the API and subscribes the
// subscription-derived views to the invalidation bus.
func NewSession(api API, txLimit int, metrics *observability.Metrics, logger *zap.Logger) *Session {
	bus := NewBus(logger)

	s := &Session{
		Funds: NewResource("funds", "Error al cargar los fondos",
			func(ctx context.Context) ([]domain.Fund, error) { return api.ListFunds(ctx) },
			metrics, logger),
		UserFunds: NewResource("user_funds", "Error al cargar los fondos del usuario",
			func(ctx context.Context) ([]domain.UserFund, error) { return api.GetUserFunds(ctx) },
			metrics, logger),
		Transactions: NewResource("transactions", "Error al cargar las transacciones",
			func(ctx context.Context) ([]domain.Transaction, error) { return api.GetTransactions(ctx, txLimit) },
			metrics, logger),
		Balance: NewResource("balance", "Error al cargar el balance",
			func(ctx context.Context) (domain.Balance, error) {
				b, err := api.GetBalance(ctx)
				if err != nil {
					return domain.Balance{}, err
				}
				return *b, nil
			},
			metrics, logger),
		User: NewResource("user", "Error al cargar datos del usuario",
			func(ctx context.Context) (domain.User, error) {
				u, err := api.GetUser(ctx)
				if err != nil {
					return domain.User{}, err
				}
				return *u, nil
			},
			metrics, logger),
		Preferences: NewPreferences(api, metrics, logger),
		Stats:       NewStats(api, metrics, logger),
		Actions:     NewActions(api, bus, logger),
		Bus:         bus,
	}

	// A subscribe or cancel changes the fund catalog state, the user's
	// subscriptions, the aggregate stats and the transaction history.
	bus.Subscribe(TopicSubscriptionsChanged, s.Funds.Refetch)
	bus.Subscribe(TopicSubscriptionsChanged, s.UserFunds.Refetch)
	bus.Subscribe(TopicSubscriptionsChanged, s.Stats.Refetch)
	bus.Subscribe(TopicSubscriptionsChanged, s.Transactions.Refetch)

	return s
}

// RefetchAll loads every view once. Called on startup, the server-side
// analogue of mounting the whole dashboard.
func (s *Session) RefetchAll(ctx context.Context) {
	s.Funds.Refetch(ctx)
	s.UserFunds.Refetch(ctx)
	s.Transactions.Refetch(ctx)
	s.Balance.Refetch(ctx)
	s.User.Refetch(ctx)
	s.Preferences.Refetch(ctx)
	s.Stats.Refetch(ctx)
}
