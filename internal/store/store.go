package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when nothing has been saved under the key.
// Callers treat it as "uninitialized" and fall back to defaults.
var ErrNotFound = errors.New("store: key not found")

// Store is the durable local-state adapter: JSON-encoded snapshots under
// fixed keys, full replace on every save, last writer wins.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}
