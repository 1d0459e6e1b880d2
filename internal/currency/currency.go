// Package currency formats Colombian peso amounts for display.
package currency

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// The platform renders peso amounts as "$75,000.00", with the comma as
// the thousands separator. go-money ships COP with the es-CO separators
// ("$75.000,00"), so register the platform's format instead.
func init() {
	money.AddCurrency(money.COP, "$", "$1", ".", ",", 2)
}

// FormatCOP renders an exact decimal amount as a display string,
// e.g. 75000 -> "$75,000.00".
func FormatCOP(d decimal.Decimal) string {
	cur := money.GetCurrency(money.COP)
	minor := d.Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), money.COP).Display()
}

// FormatString formats a decimal-as-text amount. Unparseable input is
// returned untouched so a bad server value still renders something.
func FormatString(s string) string {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}
	return FormatCOP(d)
}
