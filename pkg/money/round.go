// Package money holds the rounding applied when calculation results leave the
// service. Calculations run at full float64 precision; only the values handed
// to encoders are rounded.
package money

import "github.com/shopspring/decimal"

// Places is the number of fractional digits shown for monetary values.
const Places = 2

// Round2 rounds v half away from zero to two fractional digits. Going through
// decimal avoids the binary artefacts of math.Round(v*100)/100 (1.005 -> 1.00).
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(Places).InexactFloat64()
}

// Sum adds values exactly in decimal and rounds the result.
func Sum(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total.Round(Places).InexactFloat64()
}

// String formats v with exactly two fractional digits.
func String(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(Places)
}
