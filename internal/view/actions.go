package view

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jdvalencia/fondos-dashboard-go/internal/currency"
	"github.com/jdvalencia/fondos-dashboard-go/internal/domain"
	"github.com/jdvalencia/fondos-dashboard-go/internal/port"
)

// Actions performs the subscribe/cancel mutations. Success publishes an
// invalidation so dependent views refetch; failure surfaces the server's
// message (or a generic one) and leaves all view state untouched.
type Actions struct {
	funds  port.FundMutator
	bus    *Bus
	logger *zap.Logger
}

// NewActions creates the mutation actions bound to the session bus.
func NewActions(funds port.FundMutator, bus *Bus, logger *zap.Logger) *Actions {
	return &Actions{funds: funds, bus: bus, logger: logger}
}

// Subscribe validates the requested amount against the fund's minimum and
// opens the subscription. The comparison runs on exact decimals; an amount
// below the minimum never reaches the network.
func (a *Actions) Subscribe(ctx context.Context, fund domain.Fund, amount decimal.Decimal) (string, error) {
	if !fund.IsActive {
		return "", &domain.ErrValidation{Field: "fund", Message: "El fondo no está disponible para nuevas suscripciones"}
	}

	min, err := fund.MinimumDecimal()
	if err != nil {
		return "", &domain.ErrValidation{Field: "minimum_amount", Message: "El fondo tiene un monto mínimo inválido"}
	}
	if amount.LessThan(min) {
		return "", &domain.ErrValidation{
			Field:   "amount",
			Message: fmt.Sprintf("El monto mínimo es %s", currency.FormatCOP(min)),
		}
	}

	env, err := a.funds.Subscribe(ctx, fund.ID)
	if err != nil {
		a.logger.Error("subscribe failed", zap.String("fund_id", fund.ID), zap.Error(err))
		return "", err
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "Error al realizar la suscripción"
		}
		return "", &domain.ErrServer{Message: msg}
	}

	a.logger.Info("fund subscription created", zap.String("fund_id", fund.ID))
	a.bus.Publish(ctx, TopicSubscriptionsChanged)

	if env.Message != "" {
		return env.Message, nil
	}
	return "Suscripción realizada exitosamente", nil
}

// Cancel closes an active subscription. The caller is responsible for the
// destructive-action confirmation step before invoking this.
func (a *Actions) Cancel(ctx context.Context, fundID string) (string, error) {
	env, err := a.funds.Cancel(ctx, fundID)
	if err != nil {
		a.logger.Error("cancel failed", zap.String("fund_id", fundID), zap.Error(err))
		return "", err
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "Error al cancelar la suscripción"
		}
		return "", &domain.ErrServer{Message: msg}
	}

	a.logger.Info("fund subscription cancelled", zap.String("fund_id", fundID))
	a.bus.Publish(ctx, TopicSubscriptionsChanged)

	if env.Message != "" {
		return env.Message, nil
	}
	return "Suscripción cancelada exitosamente", nil
}
