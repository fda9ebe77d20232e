package avgcost

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// displayCurrency is the single currency used to format every Amount. The
// tool tracks one market, so one display format is enough.
var displayCurrency = "USD"

// SetDisplayCurrency selects the currency used to format amounts.
func SetDisplayCurrency(code string) error {
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency code %q", code)
	}
	displayCurrency = code
	return nil
}

// Amount is a monetary value formatted in the display currency. It exists
// for presentation only: all accounting stays in plain float64.
type Amount float64

// currency returns the display currency, never nil thanks to the money
// constructor.
func currency() *money.Currency {
	return money.New(0, displayCurrency).Currency()
}

// String formats the amount with the currency's own grapheme and fraction,
// shifting to minor units exactly through decimal before rounding.
func (a Amount) String() string {
	cur := currency()
	minor := decimal.NewFromFloat(float64(a)).Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// SignedString is like String with an explicit sign; zero renders as "-".
func (a Amount) SignedString() string {
	switch {
	case a == 0:
		return "-"
	case a > 0:
		return "+" + a.String()
	default:
		return a.String()
	}
}
