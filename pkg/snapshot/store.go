package snapshot

import "context"

// Store is the opaque blob persistence contract for customer snapshots.
// Blobs are written whole; there is no partial update and no schema
// versioning. Callers own migration if a blob shape changes.
type Store interface {
	// Get returns the blob stored under key, or ok=false when absent.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set writes the blob under key, replacing any previous value.
	Set(ctx context.Context, key string, blob []byte) error
	// Del removes the blob stored under key. Missing keys are not errors.
	Del(ctx context.Context, key string) error
}
