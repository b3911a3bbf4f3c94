package metadata

import "fmt"

// schemaDDL carries CREATE TABLE IF NOT EXISTS statements for the nine
// read-contract tables. The core pipeline never issues DDL at runtime except
// through the explicit init-db command used to prepare test fixtures.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS client (
		client_id TEXT PRIMARY KEY,
		issuing_bins_6_digits TEXT NOT NULL DEFAULT '',
		issuing_bins_8_digits TEXT NOT NULL DEFAULT '',
		acquiring_bins TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS country (
		country_code TEXT PRIMARY KEY,
		visa_region_code TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS file_control (
		client_id TEXT NOT NULL,
		file_id TEXT NOT NULL,
		brand_id TEXT NOT NULL,
		file_type TEXT NOT NULL,
		file_processing_date TEXT NOT NULL,
		landing_file_name TEXT NOT NULL,
		PRIMARY KEY (client_id, file_id)
	)`,
	`CREATE TABLE IF NOT EXISTS visa_ardef (
		low_key INTEGER NOT NULL,
		table_key INTEGER NOT NULL,
		effective_date TEXT NOT NULL,
		valid_until TEXT,
		delete_indicator TEXT NOT NULL DEFAULT ' ',
		funding_source TEXT,
		country TEXT,
		region TEXT,
		product_id TEXT,
		product_subtype TEXT,
		b2b_program_id TEXT,
		fast_funds TEXT,
		nnss_indicator TEXT,
		technology_indicator TEXT,
		travel_indicator TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS visa_fields (
		type_record TEXT NOT NULL,
		tcsn TEXT NOT NULL,
		position INTEGER NOT NULL,
		length INTEGER NOT NULL,
		column_name TEXT NOT NULL,
		secondary_identifier_pos INTEGER NOT NULL DEFAULT 0,
		secondary_identifier_len INTEGER NOT NULL DEFAULT 0,
		secondary_identifier TEXT NOT NULL DEFAULT '',
		column_type TEXT NOT NULL,
		float_decimals INTEGER NOT NULL DEFAULT 0,
		date_format TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS visa_rules (
		region_country_code TEXT NOT NULL,
		intelica_id INTEGER NOT NULL,
		valid_from TEXT NOT NULL,
		valid_until TEXT,
		fee_descriptor TEXT,
		fee_currency TEXT,
		fee_variable REAL NOT NULL DEFAULT 0,
		fee_fixed REAL NOT NULL DEFAULT 0,
		fee_min REAL NOT NULL DEFAULT 0,
		fee_cap REAL NOT NULL DEFAULT 0,
		criteria_json TEXT NOT NULL DEFAULT '{}',
		PRIMARY KEY (region_country_code, intelica_id)
	)`,
	`CREATE TABLE IF NOT EXISTS visa_transaction_type (
		business_transaction_type_id INTEGER NOT NULL,
		transaction_type_id INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS exchange_rate (
		brand TEXT NOT NULL,
		rate_date TEXT NOT NULL,
		currency_from_code TEXT NOT NULL,
		currency_to TEXT NOT NULL,
		exchange_value REAL NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS currency (
		currency_numeric_code TEXT PRIMARY KEY,
		currency_alphabetic_code TEXT NOT NULL
	)`,
}

// InitSchema creates every read-contract table if it does not already exist.
// Used by `itx init-db` to prepare test and demo fixtures; never called by
// the core pipeline stages themselves.
func (s *Store) InitSchema() error {
	for _, stmt := range schemaDDL {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("metadata: init schema: %w", err)
		}
	}
	return nil
}
