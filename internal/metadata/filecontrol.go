package metadata

import (
	"fmt"
	"time"

	"github.com/rawblock/visa-interchange/internal/model"
)

// FileControl reads the file_control row for (clientID, fileID), which
// governs every artifact path and the processing date used throughout
// Clean, Calculate, and Interchange.
func (s *Store) FileControl(clientID, fileID string) (model.FileControl, error) {
	row := s.db.QueryRow(
		`SELECT client_id, file_id, brand_id, file_type, file_processing_date, landing_file_name
		 FROM file_control WHERE client_id = ? AND file_id = ?`, clientID, fileID)

	var fc model.FileControl
	var fileType, procDate string
	if err := row.Scan(&fc.ClientID, &fc.FileID, &fc.BrandID, &fileType, &procDate, &fc.LandingFileName); err != nil {
		return model.FileControl{}, fmt.Errorf("metadata: file_control %s/%s: %w", clientID, fileID, err)
	}

	fc.FileType = model.FileType(fileType)
	d, err := time.Parse("2006-01-02", procDate)
	if err != nil {
		return model.FileControl{}, fmt.Errorf("metadata: file_control %s/%s: bad processing date %q: %w", clientID, fileID, procDate, err)
	}
	fc.FileProcessingDate = d
	return fc, nil
}
