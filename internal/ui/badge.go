package ui

import (
	"html/template"

	"github.com/jdvalencia/fondos-dashboard-go/internal/domain"
)

var badgeTmpl = mustParse("badge", `<span class="badge badge-{{.Tone}}">{{.Label}}</span>`)

type badgeData struct {
	Label string
	Tone  string
}

// Badge renders a small colored label. Tone is one of green, red, yellow,
// blue or gray.
func Badge(label, tone string) template.HTML {
	return renderTemplate(badgeTmpl, badgeData{Label: label, Tone: tone})
}

// StatusBadge maps a transaction status to its display badge.
func StatusBadge(status string) template.HTML {
	switch status {
	case domain.TxCompleted:
		return Badge("Completada", "green")
	case domain.TxPending:
		return Badge("Pendiente", "yellow")
	case domain.TxFailed:
		return Badge("Fallida", "red")
	default:
		return Badge(status, "gray")
	}
}

// CategoryBadge maps a fund category to its display badge.
func CategoryBadge(category string) template.HTML {
	switch category {
	case domain.CategoryFPV:
		return Badge("FPV", "blue")
	case domain.CategoryFIC:
		return Badge("FIC", "green")
	default:
		return Badge(category, "gray")
	}
}

// ActiveBadge renders the active/inactive state of a subscription.
func ActiveBadge(active bool) template.HTML {
	if active {
		return Badge("Activa", "green")
	}
	return Badge("Cancelada", "gray")
}

// TransactionTypeBadge maps a transaction type to its display badge,
// preferring the server-provided display name when present.
func TransactionTypeBadge(txType, display string) template.HTML {
	switch txType {
	case domain.TxSubscription:
		if display == "" {
			display = "Suscripción"
		}
		return Badge(display, "green")
	case domain.TxCancellation:
		if display == "" {
			display = "Cancelación"
		}
		return Badge(display, "red")
	default:
		return Badge(txType, "gray")
	}
}
