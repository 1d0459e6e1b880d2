package view

import (
	"context"

	"go.uber.org/zap"

	"github.com/jdvalencia/fondos-dashboard-go/internal/domain"
	"github.com/jdvalencia/fondos-dashboard-go/internal/infra/observability"
	"github.com/jdvalencia/fondos-dashboard-go/internal/port"
)

// Preferences is the notification-preferences view. On top of the fetch
// cycle it offers Update, which submits the full desired preference set
// and only replaces local state with the server's confirmed result —
// never optimistically.
type Preferences struct {
	*Resource[domain.NotificationPreferences]
	store port.NotificationStore
}

// NewPreferences builds the preferences view.
func NewPreferences(store port.NotificationStore, metrics *observability.Metrics, logger *zap.Logger) *Preferences {
	fetch := func(ctx context.Context) (domain.NotificationPreferences, error) {
		p, err := store.GetPreferences(ctx)
		if err != nil {
			return domain.NotificationPreferences{}, err
		}
		return *p, nil
	}

	return &Preferences{
		Resource: NewResource("preferences", "Error al cargar las preferencias", fetch, metrics, logger),
		store:    store,
	}
}

// Update submits the desired preference set. On success the confirmed
// server state replaces the local one; on failure the error is returned
// for the caller to display and local state is untouched.
func (p *Preferences) Update(ctx context.Context, update domain.PreferencesUpdate) (*domain.NotificationPreferences, error) {
	confirmed, err := p.store.UpdatePreferences(ctx, update)
	if err != nil {
		return nil, err
	}
	p.Replace(*confirmed)
	return confirmed, nil
}
