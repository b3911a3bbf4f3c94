package artifact

import (
	"fmt"

	"github.com/rawblock/visa-interchange/internal/model"
)

// Store resolves artifact references against one datalake root.
type Store struct {
	Root string
}

// NewStore builds a Store rooted at datalakeRoot (ITX_DATALAKE_PATH).
func NewStore(datalakeRoot string) *Store {
	return &Store{Root: datalakeRoot}
}

// Read loads the frame at ref.
func (s *Store) Read(ref model.ArtifactRef) (*Frame, error) {
	path := Path(s.Root, ref)
	f, err := ReadParquet(path)
	if err != nil {
		return nil, fmt.Errorf("artifact: read %s: %w", path, err)
	}
	return f, nil
}

// Write persists f at ref, creating the target subdirectory idempotently
// and overwriting any existing artifact atomically.
func (s *Store) Write(ref model.ArtifactRef, f *Frame) error {
	path := Path(s.Root, ref)
	if err := WriteParquet(path, f); err != nil {
		return fmt.Errorf("artifact: write %s: %w", path, err)
	}
	return nil
}
