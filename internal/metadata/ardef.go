package metadata

import (
	"fmt"
	"time"

	"github.com/rawblock/visa-interchange/internal/model"
)

// ARDEFRecords reads every visa_ardef row. The resolver (internal/ardef/ardef.go)
// applies the delete/validity/overlap filtering described in the data model.
func (s *Store) ARDEFRecords() ([]model.ARDEFRecord, error) {
	rows, err := s.db.Query(`SELECT low_key, table_key, effective_date, valid_until,
		delete_indicator, funding_source, country, region, product_id, product_subtype,
		b2b_program_id, fast_funds, nnss_indicator, technology_indicator, travel_indicator
		FROM visa_ardef`)
	if err != nil {
		return nil, fmt.Errorf("metadata: visa_ardef: %w", err)
	}
	defer rows.Close()

	var out []model.ARDEFRecord
	for rows.Next() {
		var r model.ARDEFRecord
		var effDate string
		var validUntil *string
		if err := rows.Scan(&r.LowKey, &r.TableKey, &effDate, &validUntil,
			&r.DeleteIndicator, &r.FundingSource, &r.Country, &r.Region, &r.ProductID,
			&r.ProductSubtype, &r.B2BProgramID, &r.FastFunds, &r.NNSSIndicator,
			&r.TechnologyIndicator, &r.TravelIndicator); err != nil {
			return nil, fmt.Errorf("metadata: visa_ardef scan: %w", err)
		}

		d, err := time.Parse("2006-01-02", effDate)
		if err != nil {
			return nil, fmt.Errorf("metadata: visa_ardef effective_date %q: %w", effDate, err)
		}
		r.EffectiveDate = d

		if validUntil != nil && *validUntil != "" {
			vu, err := time.Parse("2006-01-02", *validUntil)
			if err != nil {
				return nil, fmt.Errorf("metadata: visa_ardef valid_until %q: %w", *validUntil, err)
			}
			r.ValidUntil = vu
		}
		// a null valid_until defaults to the file's processing date at
		// resolve time (internal/ardef/ardef.go), not here.

		out = append(out, r)
	}
	return out, rows.Err()
}
