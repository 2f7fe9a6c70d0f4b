package providers

import "context"

// Collection names for the persistent store. The names double as the
// localStorage keys the original web client used, so a migrated dataset
// maps one to one.
const (
	CollectionUsers     = "moodbrew_users"
	CollectionLogs      = "moodbrew_logs"
	CollectionFavorites = "moodbrew_favorites"
	CollectionReviews   = "moodbrew_reviews"
)

// StoreProvider is a flat key-value store holding one serialized list per
// collection. Save overwrites the whole collection; there is a single writer
// per process, which is what makes wholesale read-modify-write safe. Multiple
// concurrent writer processes are not supported.
type StoreProvider interface {
	// Load returns the serialized collection, or nil when it has never been
	// written.
	Load(ctx context.Context, collection string) ([]byte, error)

	// Save overwrites the serialized collection.
	Save(ctx context.Context, collection string, data []byte) error
}
