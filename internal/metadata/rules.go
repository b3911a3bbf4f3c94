package metadata

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rawblock/visa-interchange/internal/model"
)

// FeeRules reads every visa_rules row valid on processingDate
// (valid_from <= processingDate <= valid_until; a null valid_until defaults
// to today, per the rule engine's input narrowing step).
func (s *Store) FeeRules(processingDate time.Time) ([]model.FeeRule, error) {
	rows, err := s.db.Query(
		`SELECT region_country_code, intelica_id, valid_from, valid_until,
			fee_descriptor, fee_currency, fee_variable, fee_fixed, fee_min, fee_cap, criteria_json
		 FROM visa_rules
		 ORDER BY intelica_id`)
	if err != nil {
		return nil, fmt.Errorf("metadata: visa_rules: %w", err)
	}
	defer rows.Close()

	today := time.Now()
	var out []model.FeeRule
	for rows.Next() {
		var r model.FeeRule
		var validFrom string
		var validUntil *string
		var criteriaJSON string
		if err := rows.Scan(&r.RegionCountryCode, &r.IntelicaID, &validFrom, &validUntil,
			&r.FeeDescriptor, &r.FeeCurrency, &r.FeeVariable, &r.FeeFixed, &r.FeeMin, &r.FeeCap,
			&criteriaJSON); err != nil {
			return nil, fmt.Errorf("metadata: visa_rules scan: %w", err)
		}

		vf, err := time.Parse("2006-01-02", validFrom)
		if err != nil {
			return nil, fmt.Errorf("metadata: visa_rules valid_from %q: %w", validFrom, err)
		}
		r.ValidFrom = vf

		if validUntil != nil && *validUntil != "" {
			vu, err := time.Parse("2006-01-02", *validUntil)
			if err != nil {
				return nil, fmt.Errorf("metadata: visa_rules valid_until %q: %w", *validUntil, err)
			}
			r.ValidUntil = vu
		} else {
			r.ValidUntil = today
		}

		if criteriaJSON == "" {
			criteriaJSON = "{}"
		}
		if err := json.Unmarshal([]byte(criteriaJSON), &r.Criteria); err != nil {
			return nil, fmt.Errorf("metadata: visa_rules criteria_json for rule %d: %w", r.IntelicaID, err)
		}

		if !processingDate.Before(r.ValidFrom) && !processingDate.After(r.ValidUntil) {
			out = append(out, r)
		}
	}
	return out, rows.Err()
}

// TransactionTypes reads the visa_transaction_type table.
func (s *Store) TransactionTypes() ([]model.TransactionType, error) {
	rows, err := s.db.Query(`SELECT business_transaction_type_id, transaction_type_id FROM visa_transaction_type`)
	if err != nil {
		return nil, fmt.Errorf("metadata: visa_transaction_type: %w", err)
	}
	defer rows.Close()

	var out []model.TransactionType
	for rows.Next() {
		var t model.TransactionType
		if err := rows.Scan(&t.BusinessTransactionTypeID, &t.TransactionTypeID); err != nil {
			return nil, fmt.Errorf("metadata: visa_transaction_type scan: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
