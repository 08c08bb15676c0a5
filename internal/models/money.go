package models

import "github.com/shopspring/decimal"

func init() {
	// Prices travel as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// RoundPrice clamps p at zero and rounds half-up to two decimal places.
func RoundPrice(p decimal.Decimal) decimal.Decimal {
	if p.IsNegative() {
		return decimal.Zero
	}

	return p.Round(2)
}
