package money

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// FromCents converts an integer cent amount into a decimal currency value.
func FromCents(cents int) decimal.Decimal {
	return decimal.NewFromInt(int64(cents)).Div(hundred)
}

// Format renders a cent amount with two decimal places for display.
// Arithmetic stays in integer cents; rounding happens exactly once, here.
func Format(cents int) string {
	return FromCents(cents).StringFixed(2)
}

// DiscountPercent derives the advertised discount from the sale price and the
// compare-at price. Returns 0 when no compare-at price is set or the sale
// price is not actually lower.
func DiscountPercent(priceCents int, compareAtCents *int) int {
	if compareAtCents == nil || *compareAtCents <= 0 || priceCents >= *compareAtCents {
		return 0
	}
	compare := decimal.NewFromInt(int64(*compareAtCents))
	price := decimal.NewFromInt(int64(priceCents))
	pct := compare.Sub(price).Div(compare).Mul(hundred)
	return int(pct.Round(0).IntPart())
}
