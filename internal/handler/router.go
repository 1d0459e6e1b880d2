// Package handler exposes the dashboard over HTTP: the server-rendered
// page with its tabs and modals, the form-post mutation routes, and the
// operational endpoints.
package handler

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/jdvalencia/fondos-dashboard-go/internal/currency"
	"github.com/jdvalencia/fondos-dashboard-go/internal/domain"
	"github.com/jdvalencia/fondos-dashboard-go/internal/infra/observability"
	"github.com/jdvalencia/fondos-dashboard-go/internal/ui"
	"github.com/jdvalencia/fondos-dashboard-go/internal/view"
)

var tracer = otel.Tracer("handler")

const (
	tabResumen       = "resumen"
	tabFondos        = "fondos"
	tabSuscripciones = "suscripciones"
	tabTransacciones = "transacciones"
	tabAjustes       = "ajustes"
)

var dashboardTabs = []ui.Tab{
	{Value: tabResumen, Label: "Resumen", URL: "/?tab=" + tabResumen},
	{Value: tabFondos, Label: "Fondos", URL: "/?tab=" + tabFondos},
	{Value: tabSuscripciones, Label: "Mis Suscripciones", URL: "/?tab=" + tabSuscripciones},
	{Value: tabTransacciones, Label: "Transacciones", URL: "/?tab=" + tabTransacciones},
	{Value: tabAjustes, Label: "Ajustes", URL: "/?tab=" + tabAjustes},
}

// NewRouter creates the HTTP router with all routes and middleware.
func NewRouter(session *view.Session, metrics *observability.Metrics, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.ZapLoggerMiddleware(logger))
	r.Use(observability.TracingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	// --- Operational endpoints ---
	r.Get("/healthz", healthzHandler(session, metrics))
	r.Get("/readyz", readyzHandler())
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	// --- Dashboard page ---
	r.Get("/", dashboardHandler(session, metrics, logger))

	// --- Mutations (form posts) ---
	r.Post("/funds/{fundID}/subscribe", subscribeHandler(session, logger))
	r.Post("/funds/{fundID}/cancel", cancelHandler(session, logger))
	r.Post("/preferences", updatePreferencesHandler(session, logger))

	return r
}

// ============================================================
// Dashboard page — GET /
// ============================================================

func dashboardHandler(session *view.Session, metrics *observability.Metrics, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /")
		defer span.End()

		q := r.URL.Query()
		tab := ui.ResolveTab(dashboardTabs, q.Get("tab"), tabResumen)
		span.SetAttributes(attribute.String("dashboard.tab", tab))

		refetchTab(ctx, session, tab)
		metrics.IncrPageRender(tab)

		var body template.HTML
		if notice := q.Get("notice"); notice != "" {
			body += ui.SuccessMessage("Listo", notice)
		}
		if errMsg := q.Get("error"); errMsg != "" {
			body += ui.ErrorMessage("Error", errMsg, "")
		}

		body += ui.Tabs(dashboardTabs, tab, renderTab(session, tab))
		body += renderModal(ctx, session, tab, q)

		userName := session.User.Snapshot().Data.Name
		writeHTML(w, http.StatusOK, ui.Page("BTG Fondos de Inversión", userName, body))
	}
}

// refetchTab reloads the views backing the requested tab, so every page
// view renders fresh server state.
func refetchTab(ctx context.Context, session *view.Session, tab string) {
	switch tab {
	case tabResumen:
		session.Stats.Refetch(ctx)
		session.Balance.Refetch(ctx)
		session.User.Refetch(ctx)
	case tabFondos:
		session.Funds.Refetch(ctx)
	case tabSuscripciones:
		session.UserFunds.Refetch(ctx)
	case tabTransacciones:
		session.Transactions.Refetch(ctx)
	case tabAjustes:
		session.Preferences.Refetch(ctx)
	}
}

func renderTab(session *view.Session, tab string) template.HTML {
	switch tab {
	case tabFondos:
		snap := session.Funds.Snapshot()
		table := ui.FundsTable(snap.Data, ui.TableState{
			Loading:  snap.Loading,
			Err:      snap.Err,
			RetryURL: "/?tab=" + tabFondos,
		})
		return ui.Card("Fondos Disponibles", "Fondos de pensión voluntaria y de inversión colectiva", table)

	case tabSuscripciones:
		snap := session.UserFunds.Snapshot()
		table := ui.SubscriptionsTable(snap.Data, ui.TableState{
			Loading:  snap.Loading,
			Err:      snap.Err,
			RetryURL: "/?tab=" + tabSuscripciones,
		})
		return ui.Card("Mis Suscripciones", "", table)

	case tabTransacciones:
		snap := session.Transactions.Snapshot()
		table := ui.TransactionsTable(snap.Data, ui.TableState{
			Loading:  snap.Loading,
			Err:      snap.Err,
			RetryURL: "/?tab=" + tabTransacciones,
		})
		return ui.Card("Historial de Transacciones", "Últimos movimientos registrados", table)

	case tabAjustes:
		snap := session.Preferences.Snapshot()
		if snap.Err != "" {
			return ui.ErrorMessage("Error", snap.Err, "/?tab="+tabAjustes)
		}
		if snap.Loading {
			return ui.InfoMessage("Cargando", "Cargando tus preferencias de notificación")
		}
		return ui.Card("Preferencias de Notificación", "Elige cómo quieres recibir las confirmaciones", ui.PreferencesForm(snap.Data))

	default: // resumen
		stats := session.Stats.Snapshot()
		body := ui.StatsCards(stats.Data, stats.Err != "")

		balance := session.Balance.Snapshot()
		switch {
		case balance.Err != "":
			body += ui.ErrorMessage("Error", balance.Err, "/?tab="+tabResumen)
		case balance.Loading:
			body += ui.InfoMessage("Cargando", "Cargando tu balance disponible")
		default:
			display := balance.Data.FormattedBalance
			if display == "" {
				display = currency.FormatString(balance.Data.AvailableBalance)
			}
			body += ui.Card("Balance Disponible", "Saldo libre para nuevas suscripciones", template.HTML(`<p class="stats-value">`+template.HTMLEscapeString(display)+`</p>`))
		}
		return body
	}
}

// renderModal renders the subscribe or cancel confirmation dialog when the
// query string requests one. The modal's close links drop the parameter.
func renderModal(ctx context.Context, session *view.Session, tab string, q url.Values) template.HTML {
	closeURL := "/?tab=" + tab

	if fundID := q.Get("subscribe"); fundID != "" {
		fund, ok := findFund(ctx, session, fundID)
		if !ok {
			return ui.Modal(true, "Suscribirse", closeURL, ui.ErrorMessage("Error", "Fondo no encontrado", ""))
		}
		return ui.Modal(true, "Suscribirse a "+fund.Name, closeURL, ui.SubscribeForm(fund, closeURL))
	}

	if fundID := q.Get("cancel"); fundID != "" {
		userFund, ok := findUserFund(ctx, session, fundID)
		if !ok {
			return ui.Modal(true, "Cancelar suscripción", closeURL, ui.ErrorMessage("Error", "Suscripción no encontrada", ""))
		}
		return ui.Modal(true, "Cancelar suscripción", closeURL, ui.CancelForm(userFund, closeURL))
	}

	return ""
}

func findFund(ctx context.Context, session *view.Session, fundID string) (domain.Fund, bool) {
	lookup := func() (domain.Fund, bool) {
		for _, f := range session.Funds.Snapshot().Data {
			if f.ID == fundID {
				return f, true
			}
		}
		return domain.Fund{}, false
	}

	if fund, ok := lookup(); ok {
		return fund, true
	}
	session.Funds.Refetch(ctx)
	return lookup()
}

func findUserFund(ctx context.Context, session *view.Session, fundID string) (domain.UserFund, bool) {
	lookup := func() (domain.UserFund, bool) {
		for _, uf := range session.UserFunds.Snapshot().Data {
			if uf.Subscription.FundID == fundID && uf.Subscription.Active {
				return uf, true
			}
		}
		return domain.UserFund{}, false
	}

	if userFund, ok := lookup(); ok {
		return userFund, true
	}
	session.UserFunds.Refetch(ctx)
	return lookup()
}

// ============================================================
// Mutations
// ============================================================

func subscribeHandler(session *view.Session, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /funds/{fundID}/subscribe")
		defer span.End()

		fundID := chi.URLParam(r, "fundID")
		span.SetAttributes(attribute.String("fund.id", fundID))

		if err := r.ParseForm(); err != nil {
			redirectToTab(w, r, tabFondos, url.Values{"error": {"Formulario inválido"}})
			return
		}

		amount, err := decimal.NewFromString(strings.TrimSpace(r.PostFormValue("amount")))
		if err != nil {
			redirectToTab(w, r, tabFondos, url.Values{
				"subscribe": {fundID},
				"error":     {"El monto ingresado no es válido"},
			})
			return
		}

		fund, ok := findFund(ctx, session, fundID)
		if !ok {
			redirectToTab(w, r, tabFondos, url.Values{"error": {"Fondo no encontrado"}})
			return
		}

		notice, err := session.Actions.Subscribe(ctx, fund, amount)
		if err != nil {
			msg := actionErrorMessage(err, "Error al realizar la suscripción", logger)
			q := url.Values{"error": {msg}}
			// Validation failures keep the dialog open for another attempt.
			var validation *domain.ErrValidation
			if errors.As(err, &validation) {
				q.Set("subscribe", fundID)
			}
			redirectToTab(w, r, tabFondos, q)
			return
		}

		redirectToTab(w, r, tabFondos, url.Values{"notice": {notice}})
	}
}

func cancelHandler(session *view.Session, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /funds/{fundID}/cancel")
		defer span.End()

		fundID := chi.URLParam(r, "fundID")
		span.SetAttributes(attribute.String("fund.id", fundID))

		notice, err := session.Actions.Cancel(ctx, fundID)
		if err != nil {
			msg := actionErrorMessage(err, "Error al cancelar la suscripción", logger)
			redirectToTab(w, r, tabSuscripciones, url.Values{"error": {msg}})
			return
		}

		redirectToTab(w, r, tabSuscripciones, url.Values{"notice": {notice}})
	}
}

func updatePreferencesHandler(session *view.Session, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /preferences")
		defer span.End()

		if err := r.ParseForm(); err != nil {
			redirectToTab(w, r, tabAjustes, url.Values{"error": {"Formulario inválido"}})
			return
		}

		notificationType := r.PostFormValue("notification_type")
		if notificationType != domain.ChannelEmail && notificationType != domain.ChannelSMS {
			redirectToTab(w, r, tabAjustes, url.Values{"error": {"Selecciona un canal de notificación válido"}})
			return
		}

		update := domain.PreferencesUpdate{
			NotificationType: notificationType,
			EmailEnabled:     r.PostFormValue("email_enabled") == "true",
			SMSEnabled:       r.PostFormValue("sms_enabled") == "true",
			EmailAddress:     strings.TrimSpace(r.PostFormValue("email_address")),
			PhoneNumber:      strings.TrimSpace(r.PostFormValue("phone_number")),
		}

		if _, err := session.Preferences.Update(ctx, update); err != nil {
			msg := actionErrorMessage(err, "Error al actualizar las preferencias", logger)
			redirectToTab(w, r, tabAjustes, url.Values{"error": {msg}})
			return
		}

		redirectToTab(w, r, tabAjustes, url.Values{"notice": {"Preferencias actualizadas exitosamente"}})
	}
}

// ============================================================
// Operational endpoints
// ============================================================

func healthzHandler(session *view.Session, metrics *observability.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Degraded while any core view is currently erroring; a later
		// successful refetch clears the view error and with it this status.
		status := "healthy"
		if session.Funds.Snapshot().Err != "" ||
			session.UserFunds.Snapshot().Err != "" ||
			session.Stats.Snapshot().Err != "" {
			status = "degraded"
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"status":  status,
			"service": "fondos-dashboard",
			"api_errors_total": map[string]float64{
				"list_funds":   metrics.APIErrorCount("ListFunds"),
				"get_balance":  metrics.APIErrorCount("GetBalance"),
				"transactions": metrics.APIErrorCount("GetTransactions"),
			},
		})
	}
}

func readyzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ready": true})
	}
}
