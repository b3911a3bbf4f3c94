// Package metadata implements the read-only contract over the embedded
// SQLite metadata store: clients, countries, file_control, visa_ardef,
// visa_fields, visa_rules, visa_transaction_type, exchange_rate, currency.
// The core pipeline never writes to these tables.
package metadata

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store wraps one SQLite connection, opened once per stage invocation and
// closed when the stage completes, per the concurrency model's "opened per
// stage, read once, and closed" contract.
type Store struct {
	db *sql.DB
}

// Open opens the metadata database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("metadata: open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("metadata: ping %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the connection.
func (s *Store) Close() error {
	return s.db.Close()
}
