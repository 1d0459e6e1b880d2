package ui

import (
	"fmt"
	"html/template"
	"net/url"

	"github.com/jdvalencia/fondos-dashboard-go/internal/currency"
	"github.com/jdvalencia/fondos-dashboard-go/internal/domain"
)

var actionLinkTmpl = mustParse("actionLink", `<a class="button{{if .Outline}} button-outline{{end}}" href="{{.URL}}">{{.Label}}</a>`)

type actionLinkData struct {
	Label   string
	URL     string
	Outline bool
}

func actionLink(label, href string, outline bool) template.HTML {
	return renderTemplate(actionLinkTmpl, actionLinkData{Label: label, URL: href, Outline: outline})
}

func text(s string) template.HTML {
	return template.HTML(template.HTMLEscapeString(s))
}

func subscribeURL(fundID string) string {
	return "/?tab=fondos&subscribe=" + url.QueryEscape(fundID)
}

func cancelURL(fundID string) string {
	return "/?tab=suscripciones&cancel=" + url.QueryEscape(fundID)
}

// FundsTable lists every fund with its minimum amount and a subscribe
// action for the active ones.
func FundsTable(funds []domain.Fund, state TableState) template.HTML {
	if state.EmptyTitle == "" {
		state.EmptyTitle = "Sin fondos"
		state.EmptyMessage = "No hay fondos disponibles en este momento"
	}
	cols := []Column[domain.Fund]{
		{Header: "Nombre", Render: func(f domain.Fund) template.HTML { return text(f.Name) }},
		{Header: "Categoría", Render: func(f domain.Fund) template.HTML { return CategoryBadge(f.Category) }},
		{Header: "Monto Mínimo", Render: func(f domain.Fund) template.HTML {
			return text(currency.FormatString(f.MinimumAmount))
		}},
		{Header: "Acciones", Render: func(f domain.Fund) template.HTML {
			if !f.IsActive {
				return Badge("No disponible", "gray")
			}
			return actionLink("Suscribirse", subscribeURL(f.ID), false)
		}},
	}
	return Table(funds, cols, state)
}

// SubscriptionsTable lists the user's fund subscriptions with a cancel
// action for the active ones.
func SubscriptionsTable(userFunds []domain.UserFund, state TableState) template.HTML {
	if state.EmptyTitle == "" {
		state.EmptyTitle = "Sin suscripciones"
		state.EmptyMessage = "Aún no tienes suscripciones a fondos"
	}
	cols := []Column[domain.UserFund]{
		{Header: "Fondo", Render: func(uf domain.UserFund) template.HTML { return text(uf.Fund.Name) }},
		{Header: "Categoría", Render: func(uf domain.UserFund) template.HTML { return CategoryBadge(uf.Fund.Category) }},
		{Header: "Monto Suscrito", Render: func(uf domain.UserFund) template.HTML {
			return text(currency.FormatString(uf.Subscription.SubscriptionAmount))
		}},
		{Header: "Monto Invertido", Render: func(uf domain.UserFund) template.HTML {
			return text(currency.FormatString(uf.Subscription.InvestedAmount))
		}},
		{Header: "Fecha", Render: func(uf domain.UserFund) template.HTML { return text(uf.Subscription.SubscribedAt) }},
		{Header: "Estado", Render: func(uf domain.UserFund) template.HTML { return ActiveBadge(uf.Subscription.Active) }},
		{Header: "Acciones", Render: func(uf domain.UserFund) template.HTML {
			if !uf.Subscription.Active {
				return ""
			}
			return actionLink("Cancelar", cancelURL(uf.Subscription.FundID), true)
		}},
	}
	return Table(userFunds, cols, state)
}

// TransactionsTable lists the recent transaction history.
func TransactionsTable(transactions []domain.Transaction, state TableState) template.HTML {
	if state.EmptyTitle == "" {
		state.EmptyTitle = "Sin transacciones"
		state.EmptyMessage = "Aún no tienes transacciones registradas"
	}
	cols := []Column[domain.Transaction]{
		{Header: "Fecha", Render: func(tx domain.Transaction) template.HTML { return text(tx.CreatedAt) }},
		{Header: "Fondo", Render: func(tx domain.Transaction) template.HTML { return text(tx.FundName) }},
		{Header: "Tipo", Render: func(tx domain.Transaction) template.HTML {
			return TransactionTypeBadge(tx.TransactionType, tx.TransactionTypeDisplay)
		}},
		{Header: "Monto", Render: func(tx domain.Transaction) template.HTML {
			if tx.FormattedAmount != "" {
				return text(tx.FormattedAmount)
			}
			return text(currency.FormatString(tx.Amount))
		}},
		{Header: "Estado", Render: func(tx domain.Transaction) template.HTML { return StatusBadge(tx.Status) }},
		{Header: "Notificación", Render: func(tx domain.Transaction) template.HTML {
			if tx.NotificationSent {
				return Badge("Enviada", "green")
			}
			return Badge("Pendiente", "gray")
		}},
	}
	return Table(transactions, cols, state)
}

var statsGridTmpl = mustParse("statsGrid", `<div class="stats-grid">{{range .}}{{.}}{{end}}</div>`)

// StatsCards renders the overview headline figures.
func StatsCards(stats domain.DashboardStats, degraded bool) template.HTML {
	subtitle := ""
	if degraded {
		subtitle = "Datos de respaldo"
	}
	cards := []template.HTML{
		StatsCard("Balance Total", currency.FormatCOP(stats.TotalBalance), subtitle),
		StatsCard("Usuarios", fmt.Sprintf("%d", stats.TotalUsers), subtitle),
		StatsCard("Suscripciones Activas", fmt.Sprintf("%d", stats.ActiveSubscriptions), subtitle),
		StatsCard("Crecimiento Mensual", fmt.Sprintf("%.1f%%", stats.MonthlyGrowth), subtitle),
	}
	return renderTemplate(statsGridTmpl, cards)
}
