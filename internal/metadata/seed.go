package metadata

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// NewFileID generates a synthetic file_id for fixture and demo seeding
// (the core pipeline always receives a real file_id from file_control,
// never generates one).
func NewFileID() string {
	return uuid.NewString()
}

// SeedClient inserts or replaces one client row. Used only by test fixtures
// and the demo data loader; the core pipeline stages never call this.
func (s *Store) SeedClient(c ClientSeed) error {
	_, err := s.db.Exec(
		`INSERT INTO client (client_id, issuing_bins_6_digits, issuing_bins_8_digits, acquiring_bins)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(client_id) DO UPDATE SET
			issuing_bins_6_digits = excluded.issuing_bins_6_digits,
			issuing_bins_8_digits = excluded.issuing_bins_8_digits,
			acquiring_bins = excluded.acquiring_bins`,
		c.ClientID, c.IssuingBINs6Digit, c.IssuingBINs8Digit, c.AcquiringBINs)
	if err != nil {
		return fmt.Errorf("metadata: seed client %s: %w", c.ClientID, err)
	}
	return nil
}

// ClientSeed is the plain-string form of a client row used by fixture code,
// where BIN lists are already comma-joined.
type ClientSeed struct {
	ClientID          string
	IssuingBINs6Digit string
	IssuingBINs8Digit string
	AcquiringBINs     string
}

// SeedCountry inserts or replaces one country row.
func (s *Store) SeedCountry(countryCode, regionCode string) error {
	_, err := s.db.Exec(
		`INSERT INTO country (country_code, visa_region_code) VALUES (?, ?)
		 ON CONFLICT(country_code) DO UPDATE SET visa_region_code = excluded.visa_region_code`,
		countryCode, regionCode)
	if err != nil {
		return fmt.Errorf("metadata: seed country %s: %w", countryCode, err)
	}
	return nil
}

// SeedFileControl inserts or replaces one file_control row.
func (s *Store) SeedFileControl(clientID, fileID, brandID, fileType, processingDate, landingFileName string) error {
	_, err := s.db.Exec(
		`INSERT INTO file_control (client_id, file_id, brand_id, file_type, file_processing_date, landing_file_name)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(client_id, file_id) DO UPDATE SET
			brand_id = excluded.brand_id, file_type = excluded.file_type,
			file_processing_date = excluded.file_processing_date,
			landing_file_name = excluded.landing_file_name`,
		clientID, fileID, brandID, fileType, processingDate, landingFileName)
	if err != nil {
		return fmt.Errorf("metadata: seed file_control %s/%s: %w", clientID, fileID, err)
	}
	return nil
}

// SeedFieldDefinition inserts one visa_fields row.
func (s *Store) SeedFieldDefinition(fd FieldDefinitionSeed) error {
	_, err := s.db.Exec(
		`INSERT INTO visa_fields (type_record, tcsn, position, length, column_name,
			secondary_identifier_pos, secondary_identifier_len, secondary_identifier,
			column_type, float_decimals, date_format)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		fd.TypeRecord, fd.TCSN, fd.Position, fd.Length, fd.ColumnName,
		fd.SecondaryIdentifierPos, fd.SecondaryIdentifierLen, fd.SecondaryIdentifier,
		fd.ColumnType, fd.FloatDecimals, fd.DateFormat)
	if err != nil {
		return fmt.Errorf("metadata: seed field %s.%s: %w", fd.TypeRecord, fd.ColumnName, err)
	}
	return nil
}

// FieldDefinitionSeed is the fixture-construction form of a visa_fields row.
type FieldDefinitionSeed struct {
	TypeRecord             string
	TCSN                   string
	Position               int
	Length                 int
	ColumnName             string
	SecondaryIdentifierPos int
	SecondaryIdentifierLen int
	SecondaryIdentifier    string
	ColumnType             string
	FloatDecimals          int
	DateFormat             string
}

// SeedARDEF inserts one visa_ardef row.
func (s *Store) SeedARDEF(lowKey, tableKey int64, effectiveDate, validUntil, deleteIndicator, country, region string) error {
	_, err := s.db.Exec(
		`INSERT INTO visa_ardef (low_key, table_key, effective_date, valid_until, delete_indicator, country, region)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		lowKey, tableKey, effectiveDate, nullIfEmpty(validUntil), deleteIndicator, country, region)
	if err != nil {
		return fmt.Errorf("metadata: seed ardef [%d,%d]: %w", lowKey, tableKey, err)
	}
	return nil
}

// SeedFeeRule inserts one visa_rules row with its criteria marshaled to JSON.
func (s *Store) SeedFeeRule(regionCountryCode string, intelicaID int64, validFrom, validUntil string, criteria map[string]string) error {
	b, err := json.Marshal(criteria)
	if err != nil {
		return fmt.Errorf("metadata: marshal criteria for rule %d: %w", intelicaID, err)
	}
	_, err = s.db.Exec(
		`INSERT INTO visa_rules (region_country_code, intelica_id, valid_from, valid_until, criteria_json)
		 VALUES (?, ?, ?, ?, ?)`,
		regionCountryCode, intelicaID, validFrom, nullIfEmpty(validUntil), string(b))
	if err != nil {
		return fmt.Errorf("metadata: seed rule %d: %w", intelicaID, err)
	}
	return nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
