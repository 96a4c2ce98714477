package comments

import "context"

// StorageKey is the single persistence entry that holds every comment.
const StorageKey = "comments"

// Store persists the whole quote-id → comment mapping as one value.
// Implementations must return a non-nil map from GetAll, empty when nothing
// has been stored yet.
type Store interface {
	GetAll(ctx context.Context) (map[string]string, error)
	SetAll(ctx context.Context, all map[string]string) error
}
