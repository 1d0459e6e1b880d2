package handler

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/jdvalencia/fondos-dashboard-go/internal/domain"
	"github.com/jdvalencia/fondos-dashboard-go/internal/view"
)

// ============================================================
// Shared helper functions
// ============================================================

func writeHTML(w http.ResponseWriter, status int, body template.HTML) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// redirectToTab sends the browser back to a dashboard tab, carrying flash
// parameters (notice, error, an open modal) in the query string.
func redirectToTab(w http.ResponseWriter, r *http.Request, tab string, q url.Values) {
	q.Set("tab", tab)
	http.Redirect(w, r, "/?"+q.Encode(), http.StatusSeeOther)
}

// actionErrorMessage converts a mutation failure into the display message
// carried back through the redirect. Infrastructure failures never leak
// their internals to the page.
func actionErrorMessage(err error, fallback string, logger *zap.Logger) string {
	var open *domain.ErrCircuitOpen
	if errors.As(err, &open) {
		logger.Error("circuit breaker open", zap.Error(err))
		return "El servicio no está disponible en este momento"
	}

	var transport *domain.ErrTransport
	if errors.As(err, &transport) {
		logger.Error("transport failure", zap.Error(err))
		return fallback
	}

	return view.Message(err, fallback)
}
