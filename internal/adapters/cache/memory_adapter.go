package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/moodbrew/moodbrew-backend/internal/domain/providers"
)

// MemoryAdapter is a process-local CacheProvider used when Redis is
// unavailable and in tests. Entries expire lazily on access.
type MemoryAdapter struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// NewMemoryAdapter creates an empty in-memory cache.
func NewMemoryAdapter() providers.CacheProvider {
	return &MemoryAdapter{entries: make(map[string]memoryEntry)}
}

// Get retrieves a value from cache
func (a *MemoryAdapter) Get(_ context.Context, key string) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	entry, ok := a.entries[key]
	if !ok || a.expired(entry) {
		delete(a.entries, key)
		return nil, fmt.Errorf("key not found: %s", key)
	}
	out := make([]byte, len(entry.value))
	copy(out, entry.value)
	return out, nil
}

// Set stores a value in cache with expiration
func (a *MemoryAdapter) Set(_ context.Context, key string, value []byte, expirationSeconds int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)

	var expiresAt time.Time
	if expirationSeconds > 0 {
		expiresAt = time.Now().Add(time.Duration(expirationSeconds) * time.Second)
	}
	a.entries[key] = memoryEntry{value: stored, expiresAt: expiresAt}
	return nil
}

// Delete removes a value from cache
func (a *MemoryAdapter) Delete(_ context.Context, key string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.entries, key)
	return nil
}

// Exists checks if a key exists in cache
func (a *MemoryAdapter) Exists(_ context.Context, key string) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	entry, ok := a.entries[key]
	if !ok {
		return false, nil
	}
	if a.expired(entry) {
		delete(a.entries, key)
		return false, nil
	}
	return true, nil
}

func (a *MemoryAdapter) expired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt)
}
