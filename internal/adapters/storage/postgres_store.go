package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/moodbrew/moodbrew-backend/internal/domain/providers"
	"github.com/moodbrew/moodbrew-backend/internal/infrastructure/clients/postgres"
)

const collectionsTable = "collections"

// PostgresStore persists each collection as one row of a collections table,
// keeping the whole-collection overwrite semantics of the store contract.
type PostgresStore struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewPostgresStore creates a Postgres-backed store and ensures the
// collections table exists.
func NewPostgresStore(ctx context.Context, client *postgres.Client) (providers.StoreProvider, error) {
	ddl := `CREATE TABLE IF NOT EXISTS collections (
		name TEXT PRIMARY KEY,
		data JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`
	if _, err := client.DB().ExecContext(ctx, ddl); err != nil {
		return nil, fmt.Errorf("failed to ensure collections table: %w", err)
	}

	return &PostgresStore{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}, nil
}

// Load reads the serialized collection. A missing row is an empty
// collection.
func (s *PostgresStore) Load(ctx context.Context, collection string) ([]byte, error) {
	query, args, err := s.db.From(collectionsTable).
		Select("data").
		Where(goqu.C("name").Eq(collection)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build collection select: %w", err)
	}

	var data []byte
	err = s.client.DB().QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", collection, err)
	}
	return data, nil
}

// Save upserts the collection row.
func (s *PostgresStore) Save(ctx context.Context, collection string, data []byte) error {
	query, args, err := s.db.Insert(collectionsTable).
		Rows(goqu.Record{"name": collection, "data": data, "updated_at": goqu.L("now()")}).
		OnConflict(goqu.DoUpdate("name", goqu.Record{"data": data, "updated_at": goqu.L("now()")})).
		ToSQL()
	if err != nil {
		return fmt.Errorf("failed to build collection upsert: %w", err)
	}

	if _, err := s.client.DB().ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", collection, err)
	}
	return nil
}
