package storage

import (
	"context"
	"sync"

	"github.com/moodbrew/moodbrew-backend/internal/domain/providers"
)

// MemoryStore is an in-process store used in tests and as a last-resort
// fallback when no durable backend is configured.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

var _ providers.StoreProvider = (*MemoryStore)(nil)

// Load returns the stored collection, or nil when absent.
func (s *MemoryStore) Load(_ context.Context, collection string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.data[collection]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Save overwrites the stored collection.
func (s *MemoryStore) Save(_ context.Context, collection string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	s.data[collection] = stored
	return nil
}
