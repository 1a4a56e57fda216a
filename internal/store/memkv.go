package store

import (
	"context"
	"sync"
)

// MemKV is an in-memory KV implementation. It backs tests and ephemeral
// runs where nothing should touch the filesystem.
type MemKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemKV returns an empty in-memory key-value store.
func NewMemKV() *MemKV {
	return &MemKV{data: make(map[string][]byte)}
}

// Ensure MemKV implements the KV interface.
var _ KV = (*MemKV)(nil)

// Get implements KV.Get.
func (m *MemKV) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Put implements KV.Put.
func (m *MemKV) Put(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}
