package storage

import (
	"context"
	"sync"

	"github.com/moodbrew/moodbrew-backend/internal/domain/entities"
	"github.com/moodbrew/moodbrew-backend/internal/domain/providers"
	"github.com/moodbrew/moodbrew-backend/internal/domain/repositories"
)

// EmotionLogAdapter implements append-only emotion log persistence over the
// collection store.
type EmotionLogAdapter struct {
	store providers.StoreProvider
	mu    sync.Mutex
}

// NewEmotionLogAdapter creates a new emotion log adapter.
func NewEmotionLogAdapter(store providers.StoreProvider) repositories.EmotionLogRepository {
	return &EmotionLogAdapter{store: store}
}

// Append adds a log entry.
func (a *EmotionLogAdapter) Append(ctx context.Context, log entities.EmotionLog) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	logs, err := loadCollection[entities.EmotionLog](ctx, a.store, providers.CollectionLogs)
	if err != nil {
		return err
	}
	logs = append(logs, log)
	return saveCollection(ctx, a.store, providers.CollectionLogs, logs)
}

// List returns all log entries in insertion order.
func (a *EmotionLogAdapter) List(ctx context.Context) ([]entities.EmotionLog, error) {
	return loadCollection[entities.EmotionLog](ctx, a.store, providers.CollectionLogs)
}
