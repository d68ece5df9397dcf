// Package kvblob persists the whole record collection as one JSON value
// under one fixed key of a key-value primitive.
package kvblob

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"habitlog/internal/domain"
)

// StorageKey is the single key the collection lives under. The name predates
// this codebase and is kept so existing data files keep loading.
const StorageKey = "meus_registros"

// ErrCorrupt indicates the stored value exists but cannot be decoded.
var ErrCorrupt = errors.New("stored collection is corrupt")

// KV is the minimal storage primitive a backend must provide. Get reports
// found=false when the key was never written. Set must replace the value
// atomically with respect to concurrent Gets; the backends delegate that to
// a single SQL statement.
type KV interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}

// Repository adapts a KV into the collection persistence port.
type Repository struct {
	kv KV
}

// New creates a Repository over the given KV backend.
func New(kv KV) *Repository {
	return &Repository{kv: kv}
}

var _ domain.CollectionRepository = (*Repository)(nil)

// Load returns the persisted collection. A key that was never written is an
// empty collection and no error; a value that fails to decode returns an
// error wrapping ErrCorrupt. The fallback policy belongs to the caller.
func (r *Repository) Load(ctx context.Context) ([]domain.Record, error) {
	raw, found, err := r.kv.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("load collection: %w", err)
	}
	if !found {
		return nil, nil
	}
	var records []domain.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return records, nil
}

// Save writes the full collection under StorageKey.
func (r *Repository) Save(ctx context.Context, records []domain.Record) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}
	if err := r.kv.Set(ctx, StorageKey, raw); err != nil {
		return fmt.Errorf("save collection: %w", err)
	}
	return nil
}
