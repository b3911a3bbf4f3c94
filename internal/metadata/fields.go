package metadata

import (
	"fmt"
	"sort"

	"github.com/rawblock/visa-interchange/internal/model"
)

// FieldDefinitions reads visa_fields filtered to typeRecord, sorted by
// (tcsn, position, secondary_identifier_len desc) so ties among definitions
// sharing a position/length resolve to the longer secondary identifier
// first, per the field extractor's tie-break rule.
func (s *Store) FieldDefinitions(typeRecord string) ([]model.FieldDefinition, error) {
	rows, err := s.db.Query(
		`SELECT type_record, tcsn, position, length, column_name,
			secondary_identifier_pos, secondary_identifier_len, secondary_identifier,
			column_type, float_decimals, date_format
		 FROM visa_fields WHERE type_record = ?`, typeRecord)
	if err != nil {
		return nil, fmt.Errorf("metadata: visa_fields %s: %w", typeRecord, err)
	}
	defer rows.Close()

	var out []model.FieldDefinition
	for rows.Next() {
		var fd model.FieldDefinition
		if err := rows.Scan(&fd.TypeRecord, &fd.TCSN, &fd.Position, &fd.Length, &fd.ColumnName,
			&fd.SecondaryIdentifierPos, &fd.SecondaryIdentifierLen, &fd.SecondaryIdentifier,
			&fd.ColumnType, &fd.FloatDecimals, &fd.DateFormat); err != nil {
			return nil, fmt.Errorf("metadata: visa_fields scan: %w", err)
		}
		out = append(out, fd)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TCSN != out[j].TCSN {
			return out[i].TCSN < out[j].TCSN
		}
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].SecondaryIdentifierLen > out[j].SecondaryIdentifierLen
	})
	return out, nil
}
