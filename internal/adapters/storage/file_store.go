package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/moodbrew/moodbrew-backend/internal/domain/providers"
)

// FileStore persists each collection as a JSON file in a data directory.
// This is the default backend and mirrors the single-writer local storage
// the system was designed around.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed store rooted at dir.
func NewFileStore(dir string) (providers.StoreProvider, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Load reads the serialized collection. A missing file is an empty
// collection, not an error.
func (s *FileStore) Load(_ context.Context, collection string) ([]byte, error) {
	data, err := os.ReadFile(s.path(collection))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", collection, err)
	}
	return data, nil
}

// Save overwrites the collection file via a temp file and rename, so a
// partial write is never observable.
func (s *FileStore) Save(_ context.Context, collection string, data []byte) error {
	path := s.path(collection)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", collection, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace collection %s: %w", collection, err)
	}
	return nil
}

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}
