// Package money keeps currency arithmetic off binary floating point.
// Amounts travel as float64 with two decimal places; every operation goes
// through decimal and is rounded back to cents.
package money

import "github.com/shopspring/decimal"

const scale = 2

var hundred = decimal.NewFromInt(100)

func Round(v float64) float64 {
	return decimal.NewFromFloat(v).Round(scale).InexactFloat64()
}

// Percent returns pct percent of amount.
func Percent(amount, pct float64) float64 {
	return decimal.NewFromFloat(amount).
		Mul(decimal.NewFromFloat(pct)).
		Div(hundred).
		Round(scale).
		InexactFloat64()
}

func Min(a, b float64) float64 {
	return decimal.Min(decimal.NewFromFloat(a), decimal.NewFromFloat(b)).Round(scale).InexactFloat64()
}

// Sub never goes below zero.
func Sub(a, b float64) float64 {
	d := decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Round(scale)
	if d.IsNegative() {
		return 0
	}
	return d.InexactFloat64()
}

func Less(a, b float64) bool {
	return decimal.NewFromFloat(a).LessThan(decimal.NewFromFloat(b))
}
