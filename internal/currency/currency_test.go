package currency_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/jdvalencia/fondos-dashboard-go/internal/currency"
)

func TestFormatCOP(t *testing.T) {
	got := currency.FormatCOP(decimal.RequireFromString("75000"))
	if got != "$75,000.00" {
		t.Errorf("expected '$75,000.00', got '%s'", got)
	}
}

func TestFormatString_Unparseable(t *testing.T) {
	if got := currency.FormatString("n/a"); got != "n/a" {
		t.Errorf("expected raw value back, got '%s'", got)
	}
}

func TestFormatString(t *testing.T) {
	if got := currency.FormatString("125000.50"); got != "$125,000.50" {
		t.Errorf("expected '$125,000.50', got '%s'", got)
	}
}
