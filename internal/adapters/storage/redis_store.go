package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/moodbrew/moodbrew-backend/internal/domain/providers"
	redisclient "github.com/moodbrew/moodbrew-backend/internal/infrastructure/clients/redis"
)

// RedisStore persists each collection as a single Redis key.
type RedisStore struct {
	client *redisclient.Client
}

// NewRedisStore creates a Redis-backed store.
func NewRedisStore(client *redisclient.Client) providers.StoreProvider {
	return &RedisStore{client: client}
}

// Load reads the serialized collection. A missing key is an empty
// collection.
func (s *RedisStore) Load(ctx context.Context, collection string) ([]byte, error) {
	data, err := s.client.Client().Get(ctx, collection).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", collection, err)
	}
	return data, nil
}

// Save overwrites the collection key. Collections never expire.
func (s *RedisStore) Save(ctx context.Context, collection string, data []byte) error {
	if err := s.client.Client().Set(ctx, collection, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", collection, err)
	}
	return nil
}
