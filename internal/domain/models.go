// Package domain holds the data shapes exchanged with the fund platform API
// and the error types shared across the dashboard.
//
// Every entity is owned by the backend. The dashboard keeps transient,
// refetchable copies and never assigns identity of its own. Monetary fields
// travel as decimal strings to avoid floating-point drift; use the Decimal
// accessors for any comparison or arithmetic.
package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Fund categories exposed by the platform.
const (
	CategoryFPV = "FPV"
	CategoryFIC = "FIC"
)

// Transaction types.
const (
	TxSubscription = "SUBSCRIPTION"
	TxCancellation = "CANCELLATION"
)

// Transaction statuses.
const (
	TxPending   = "PENDING"
	TxCompleted = "COMPLETED"
	TxFailed    = "FAILED"
)

// Notification channels.
const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

// Fund is an investable product.
type Fund struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	MinimumAmount string `json:"minimum_amount"`
	Category      string `json:"category"` // FPV | FIC
	IsActive      bool   `json:"is_active"`
}

// MinimumDecimal parses the fund's minimum subscription amount.
func (f Fund) MinimumDecimal() (decimal.Decimal, error) {
	return decimal.NewFromString(f.MinimumAmount)
}

// User is the authenticated platform user. Read-only for the dashboard.
type User struct {
	UserID         string `json:"user_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	DocumentNumber string `json:"document_number"`
	DocumentType   string `json:"document_type"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

// Balance is the user's available balance. The server pre-formats the
// display string; the dashboard does no arithmetic beyond display.
type Balance struct {
	UserID           string `json:"user_id"`
	AvailableBalance string `json:"available_balance"`
	FormattedBalance string `json:"formatted_balance"`
	UpdatedAt        string `json:"updated_at"`
}

// AvailableDecimal parses the raw available balance.
func (b Balance) AvailableDecimal() (decimal.Decimal, error) {
	return decimal.NewFromString(b.AvailableBalance)
}

// Subscription binds a user to a fund. Cancellation flips Active to false,
// the record itself is never deleted.
type Subscription struct {
	UserID             string `json:"user_id"`
	FundID             string `json:"fund_id"`
	SubscribedAt       string `json:"subscribed_at"`
	Active             bool   `json:"active"`
	SubscriptionAmount string `json:"subscription_amount"`
	InvestedAmount     string `json:"invested_amount"`
}

// InvestedDecimal parses the currently invested amount. It may sit above or
// below the subscribed amount, reflecting gain or loss.
func (s Subscription) InvestedDecimal() (decimal.Decimal, error) {
	return decimal.NewFromString(s.InvestedAmount)
}

// UserFund pairs a subscription with a snapshot of its fund.
type UserFund struct {
	Subscription Subscription `json:"subscription"`
	Fund         Fund         `json:"fund"`
}

// Transaction is an append-only audit record of a subscribe or cancel
// action. The dashboard never mutates these.
type Transaction struct {
	ID                     string `json:"id"`
	UserID                 string `json:"user_id"`
	FundID                 string `json:"fund_id"`
	FundName               string `json:"fund_name"`
	TransactionType        string `json:"transaction_type"` // SUBSCRIPTION | CANCELLATION
	TransactionTypeDisplay string `json:"transaction_type_display"`
	Amount                 string `json:"amount"`
	FormattedAmount        string `json:"formatted_amount"`
	Status                 string `json:"status"` // PENDING | COMPLETED | FAILED
	CreatedAt              string `json:"created_at"`
	NotificationSent       bool   `json:"notification_sent"`
}

// NotificationPreferences is the user's delivery configuration.
// The server is the source of truth after every update.
type NotificationPreferences struct {
	UserID           string `json:"user_id"`
	NotificationType string `json:"notification_type"` // email | sms
	EmailEnabled     bool   `json:"email_enabled"`
	SMSEnabled       bool   `json:"sms_enabled"`
	EmailAddress     string `json:"email_address,omitempty"`
	PhoneNumber      string `json:"phone_number,omitempty"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

// PreferencesUpdate is the full desired preference set submitted on update.
type PreferencesUpdate struct {
	NotificationType string `json:"notification_type"`
	EmailEnabled     bool   `json:"email_enabled"`
	SMSEnabled       bool   `json:"sms_enabled"`
	EmailAddress     string `json:"email_address,omitempty"`
	PhoneNumber      string `json:"phone_number,omitempty"`
}

// Envelope is the uniform wrapper around every API response. Data must be
// unwrapped before any domain value is reachable.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message"`
	Error   string          `json:"error,omitempty"`
	Details map[string]any  `json:"details,omitempty"`
}

// HasData reports whether the envelope carries a usable data payload.
func (e *Envelope) HasData() bool {
	return len(e.Data) > 0 && string(e.Data) != "null"
}

// DashboardStats are the aggregate numbers shown on the overview tab.
//
// TotalUsers and MonthlyGrowth are hard-coded placeholders until the
// platform exposes real aggregates; do not treat them as computed values.
type DashboardStats struct {
	TotalBalance        decimal.Decimal
	TotalUsers          int
	ActiveSubscriptions int
	MonthlyGrowth       float64
}
