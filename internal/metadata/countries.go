package metadata

import (
	"fmt"

	"github.com/rawblock/visa-interchange/internal/model"
)

// Countries reads the full country table, keyed by country_code, for the
// jurisdiction classifier's region lookups.
func (s *Store) Countries() (map[string]model.Country, error) {
	rows, err := s.db.Query(`SELECT country_code, visa_region_code FROM country`)
	if err != nil {
		return nil, fmt.Errorf("metadata: countries: %w", err)
	}
	defer rows.Close()

	out := make(map[string]model.Country)
	for rows.Next() {
		var c model.Country
		if err := rows.Scan(&c.CountryCode, &c.VisaRegionCode); err != nil {
			return nil, fmt.Errorf("metadata: countries scan: %w", err)
		}
		out[c.CountryCode] = c
	}
	return out, rows.Err()
}

// Currencies reads the full currency table, keyed by numeric code.
func (s *Store) Currencies() (map[string]model.Currency, error) {
	rows, err := s.db.Query(`SELECT currency_numeric_code, currency_alphabetic_code FROM currency`)
	if err != nil {
		return nil, fmt.Errorf("metadata: currencies: %w", err)
	}
	defer rows.Close()

	out := make(map[string]model.Currency)
	for rows.Next() {
		var c model.Currency
		if err := rows.Scan(&c.NumericCode, &c.AlphabeticCode); err != nil {
			return nil, fmt.Errorf("metadata: currencies scan: %w", err)
		}
		out[c.NumericCode] = c
	}
	return out, rows.Err()
}
