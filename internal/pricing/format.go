package pricing

import (
	"github.com/shopspring/decimal"
)

// FormatDisplayPrice renders a price as "{value} dh". A nil price yields
// the empty string, not zero. With marketing enabled, whole positive
// prices are dropped by one (300 displays as 299); fractional prices are
// left alone. Decimal rendering keeps values like 1000.01 exact, with no
// fixed decimal places and no separators.
//
// Browse surfaces pass marketing=true; cart and checkout surfaces pass
// false and show the real price.
func FormatDisplayPrice(price *float64, marketing bool) string {
	if price == nil {
		return ""
	}

	value := decimal.NewFromFloat(*price)
	if marketing && value.IsInteger() && value.IsPositive() {
		value = value.Sub(decimal.NewFromInt(1))
	}

	return value.String() + " dh"
}
