package fundsapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/jdvalencia/fondos-dashboard-go/internal/domain"
	"github.com/jdvalencia/fondos-dashboard-go/internal/infra/fundsapi"
	"github.com/jdvalencia/fondos-dashboard-go/internal/infra/observability"
	"github.com/jdvalencia/fondos-dashboard-go/internal/infra/resilience"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*fundsapi.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := fundsapi.NewClient(
		&http.Client{Timeout: 2 * time.Second},
		srv.URL,
		resilience.NewCircuitBreaker("test"),
		resilience.NewBulkhead(10),
		observability.NewMetrics(),
		zap.NewNop(),
	)
	return client, srv
}

func envelope(t *testing.T, w http.ResponseWriter, status int, env any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		t.Fatalf("encode envelope: %v", err)
	}
}

func TestListFunds_UnwrapsData(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/funds/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		envelope(t, w, http.StatusOK, map[string]any{
			"success": true,
			"message": "ok",
			"data": []map[string]any{
				{"id": "1", "name": "FPV_BTG_PACTUAL_RECAUDADORA", "minimum_amount": "75000.00", "category": "FPV", "is_active": true},
				{"id": "2", "name": "FDO-ACCIONES", "minimum_amount": "250000.00", "category": "FIC", "is_active": true},
			},
		})
	})

	funds, err := client.ListFunds(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(funds) != 2 {
		t.Fatalf("expected 2 funds, got %d", len(funds))
	}
	if funds[0].MinimumAmount != "75000.00" {
		t.Errorf("expected minimum_amount '75000.00', got '%s'", funds[0].MinimumAmount)
	}
}

func TestListFunds_MissingDataYieldsEmptyList(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		envelope(t, w, http.StatusOK, map[string]any{"success": true, "message": "sin fondos"})
	})

	funds, err := client.ListFunds(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if funds == nil || len(funds) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", funds)
	}
}

func TestGetFund_MissingDataIsNotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		envelope(t, w, http.StatusOK, map[string]any{"success": false, "message": "Fondo no encontrado"})
	})

	_, err := client.GetFund(context.Background(), "99")
	var notFound *domain.ErrNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if notFound.Message != "Fondo no encontrado" {
		t.Errorf("expected envelope message in error, got '%s'", notFound.Message)
	}
}

func TestGetBalance_UnwrapsSingleEntity(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user/balance/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		envelope(t, w, http.StatusOK, map[string]any{
			"success": true,
			"message": "ok",
			"data": map[string]any{
				"user_id":           "u-1",
				"available_balance": "500000.00",
				"formatted_balance": "$500,000.00",
			},
		})
	})

	balance, err := client.GetBalance(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if balance.AvailableBalance != "500000.00" {
		t.Errorf("expected raw balance '500000.00', got '%s'", balance.AvailableBalance)
	}
}

func TestNon2xx_SurfacesEnvelopeMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		envelope(t, w, http.StatusUnprocessableEntity, map[string]any{
			"success": false,
			"message": "Saldo insuficiente para vincularse al fondo",
		})
	})

	_, err := client.Subscribe(context.Background(), "1")
	var serverErr *domain.ErrServer
	if !errors.As(err, &serverErr) {
		t.Fatalf("expected ErrServer, got %v", err)
	}
	if serverErr.Status != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422, got %d", serverErr.Status)
	}
	if serverErr.Message != "Saldo insuficiente para vincularse al fondo" {
		t.Errorf("expected server message, got '%s'", serverErr.Message)
	}
}

func TestNetworkFailure_IsTransportError(t *testing.T) {
	client, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	_, err := client.ListFunds(context.Background())
	var transport *domain.ErrTransport
	if !errors.As(err, &transport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestGetTransactions_SendsLimit(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user/transactions/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "5" {
			t.Errorf("expected limit=5, got %q", got)
		}
		envelope(t, w, http.StatusOK, map[string]any{"success": true, "message": "ok", "data": []any{}})
	})

	if _, err := client.GetTransactions(context.Background(), 5); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestSubscribe_PostsToSubscribePath(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/funds/42/subscribe/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		envelope(t, w, http.StatusOK, map[string]any{"success": true, "message": "Suscripción exitosa"})
	})

	env, err := client.Subscribe(context.Background(), "42")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !env.Success || env.Message != "Suscripción exitosa" {
		t.Errorf("expected success envelope, got %+v", env)
	}
}

func TestUpdatePreferences_RoundTrip(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/user/notifications/update/" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var update domain.PreferencesUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			t.Fatalf("decode update: %v", err)
		}
		envelope(t, w, http.StatusOK, map[string]any{
			"success": true,
			"message": "ok",
			"data": map[string]any{
				"user_id":           "u-1",
				"notification_type": update.NotificationType,
				"sms_enabled":       update.SMSEnabled,
			},
		})
	})

	prefs, err := client.UpdatePreferences(context.Background(), domain.PreferencesUpdate{
		NotificationType: domain.ChannelSMS,
		SMSEnabled:       true,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if prefs.NotificationType != domain.ChannelSMS {
		t.Errorf("expected confirmed type 'sms', got '%s'", prefs.NotificationType)
	}
}

func TestTimeout_IsTransportError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		envelope(t, w, http.StatusOK, map[string]any{"success": true, "message": "ok"})
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.GetUser(ctx)
	var transport *domain.ErrTransport
	if !errors.As(err, &transport) {
		t.Fatalf("expected ErrTransport on timeout, got %v", err)
	}
}
