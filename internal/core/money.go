package core

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the single currency amounts are displayed in.
const Currency = money.USD

// FormatMoney renders an amount as $X,XXX.XX, rounded half away from zero to
// cents. The sign follows the currency symbol: $-40.00.
func FormatMoney(d decimal.Decimal) string {
	cur := money.New(0, Currency).Currency()
	cents := d.Shift(int32(cur.Fraction)).Round(0).IntPart()
	if cents < 0 {
		magnitude := money.New(-cents, Currency).Display()
		return cur.Grapheme + "-" + strings.TrimPrefix(magnitude, cur.Grapheme)
	}
	return money.New(cents, Currency).Display()
}
