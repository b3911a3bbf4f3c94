package metadata

import (
	"fmt"
	"strings"

	"github.com/rawblock/visa-interchange/internal/model"
)

// Client reads the client row for clientID. A missing client is a
// configuration error: every derivation needs the client's BIN lists.
func (s *Store) Client(clientID string) (model.Client, error) {
	row := s.db.QueryRow(
		`SELECT client_id, issuing_bins_6_digits, issuing_bins_8_digits, acquiring_bins
		 FROM client WHERE client_id = ?`, clientID)

	var id, bins6, bins8, acq string
	if err := row.Scan(&id, &bins6, &bins8, &acq); err != nil {
		return model.Client{}, fmt.Errorf("metadata: client %s: %w", clientID, err)
	}

	return model.Client{
		ClientID:          id,
		IssuingBINs6Digit: splitCSV(bins6),
		IssuingBINs8Digit: splitCSV(bins8),
		AcquiringBINs:     splitCSV(acq),
	}, nil
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
