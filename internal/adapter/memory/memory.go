// Package memory implements an in-memory storage backend for development and
// testing.
package memory

import (
	"context"
	"sync"

	"habitlog/internal/adapter/kvblob"
)

// KV implements the kvblob.KV primitive on a map.
type KV struct {
	mu     sync.Mutex
	values map[string][]byte

	// GetErr and SetErr, when set, are returned by the corresponding
	// operation. Used to exercise failure paths in tests.
	GetErr error
	SetErr error
}

// New creates an empty in-memory backend.
func New() *KV {
	return &KV{values: make(map[string][]byte)}
}

// Ensure interfaces are met.
var _ kvblob.KV = (*KV)(nil)

// Get returns the value under key.
func (m *KV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.GetErr != nil {
		return nil, false, m.GetErr
	}
	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	// copy so callers cannot mutate the stored value
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// Set replaces the value under key.
func (m *KV) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SetErr != nil {
		return m.SetErr
	}
	v := make([]byte, len(value))
	copy(v, value)
	m.values[key] = v
	return nil
}
