package view

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jdvalencia/fondos-dashboard-go/internal/domain"
	"github.com/jdvalencia/fondos-dashboard-go/internal/infra/observability"
	"github.com/jdvalencia/fondos-dashboard-go/internal/port"
)

// Placeholder aggregates: the platform exposes no user-count or growth
// endpoint yet, so these stand in until it does. Do not compute them.
const (
	placeholderTotalUsers    = 1
	placeholderMonthlyGrowth = 12.5
)

// fallbackStats is the fixed degraded-mode snapshot shown when the
// aggregate fetch fails: the overview tab never renders blank.
func fallbackStats() (domain.DashboardStats, bool) {
	return domain.DashboardStats{
		TotalBalance:        decimal.NewFromInt(500000),
		TotalUsers:          1250,
		ActiveSubscriptions: 8,
		MonthlyGrowth:       placeholderMonthlyGrowth,
	}, true
}

// NewStats builds the aggregate dashboard-stats view. It fans out to the
// balance and user-funds endpoints concurrently and derives the totals.
func NewStats(user port.UserReader, metrics *observability.Metrics, logger *zap.Logger) *Resource[domain.DashboardStats] {
	fetch := func(ctx context.Context) (domain.DashboardStats, error) {
		var (
			balance   *domain.Balance
			userFunds []domain.UserFund
		)

		g, gCtx := errgroup.WithContext(ctx)
		g.Go(func() error {
			b, err := user.GetBalance(gCtx)
			if err != nil {
				return err
			}
			balance = b
			return nil
		})
		g.Go(func() error {
			uf, err := user.GetUserFunds(gCtx)
			if err != nil {
				return err
			}
			userFunds = uf
			return nil
		})
		if err := g.Wait(); err != nil {
			return domain.DashboardStats{}, err
		}

		return deriveStats(balance, userFunds)
	}

	return NewResource("stats", "Error al cargar las estadísticas", fetch, metrics, logger).
		WithFallback(fallbackStats)
}

// deriveStats computes the aggregate numbers from raw server data. The
// total balance is parsed from the exact decimal string, never from a
// float, and only active subscriptions count.
func deriveStats(balance *domain.Balance, userFunds []domain.UserFund) (domain.DashboardStats, error) {
	total, err := balance.AvailableDecimal()
	if err != nil {
		return domain.DashboardStats{}, err
	}

	active := 0
	for _, uf := range userFunds {
		if uf.Subscription.Active {
			active++
		}
	}

	return domain.DashboardStats{
		TotalBalance:        total,
		TotalUsers:          placeholderTotalUsers,
		ActiveSubscriptions: active,
		MonthlyGrowth:       placeholderMonthlyGrowth,
	}, nil
}
