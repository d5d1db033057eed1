package derive

import "github.com/shopspring/decimal"

// Round2 rounds to cents. Zoho currency fields hold two decimal places.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Round4 rounds to four places, used for price-per-watt fields.
func Round4(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(4).Float64()
	return f
}
