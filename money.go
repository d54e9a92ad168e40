package fxdesk

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DisplayMoney formats an amount for terminal display using the
// currency's conventional fraction digits and symbol. Codes unknown to
// the currency table (such as a local base currency) fall back to
// go-money's default template.
func DisplayMoney(code string, v float64) string {
	// the Money constructor is the only way to get a never-nil currency.
	cur := *money.New(0, code).Currency()
	minor := decimal.NewFromFloat(v).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}
