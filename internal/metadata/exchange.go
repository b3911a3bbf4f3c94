package metadata

import (
	"fmt"
	"time"

	"github.com/rawblock/visa-interchange/internal/model"
)

// ExchangeRates reads exchange_rate rows for brand on rateDate, keyed by
// currency_from_code, for the amount-currency criterion group's conversion.
func (s *Store) ExchangeRates(brand string, rateDate time.Time) (map[string]model.ExchangeRate, error) {
	rows, err := s.db.Query(
		`SELECT brand, rate_date, currency_from_code, currency_to, exchange_value
		 FROM exchange_rate WHERE brand = ? AND rate_date = ?`,
		brand, rateDate.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("metadata: exchange_rate: %w", err)
	}
	defer rows.Close()

	out := make(map[string]model.ExchangeRate)
	for rows.Next() {
		var r model.ExchangeRate
		var d string
		if err := rows.Scan(&r.Brand, &d, &r.CurrencyFromCode, &r.CurrencyTo, &r.ExchangeValue); err != nil {
			return nil, fmt.Errorf("metadata: exchange_rate scan: %w", err)
		}
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			return nil, fmt.Errorf("metadata: exchange_rate rate_date %q: %w", d, err)
		}
		r.RateDate = parsed
		out[r.CurrencyFromCode] = r
	}
	return out, rows.Err()
}
