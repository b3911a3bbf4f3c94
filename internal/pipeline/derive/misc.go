package derive

import "time"

// ComputeTimeliness returns the integer day-difference between the central
// processing date and the transaction's purchase date.
func ComputeTimeliness(centralProcessingDate, purchaseDate time.Time) int64 {
	return int64(centralProcessingDate.Sub(purchaseDate).Hours() / 24)
}

// ComputeSurchargeAmount returns the maximum surcharge amount across the
// sub-record variants, skipping any that failed to parse.
func ComputeSurchargeAmount(variants ...float64) float64 {
	var max float64
	for i, v := range variants {
		if i == 0 || v > max {
			max = v
		}
	}
	return max
}

// ComputeSourceCurrencyAlphabetic looks up the ISO alphabetic currency code
// for a numeric currency code via the currency table.
func (c Context) ComputeSourceCurrencyAlphabetic(numericCode string) string {
	if cur, ok := c.Currencies[numericCode]; ok {
		return cur.AlphabeticCode
	}
	return ""
}
