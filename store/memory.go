// ABOUTME: In-memory KV implementation for tests and ephemeral runs.
// ABOUTME: Also provides a failing wrapper used to exercise degraded-store paths.
package store

import (
	"context"
	"sync"
)

// Memory is a map-backed KV safe for concurrent use.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Get returns a copy of the stored value, or ErrNotFound.
func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set stores a copy of value under key.
func (m *Memory) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = stored
	return nil
}

// Close is a no-op for the in-memory store.
func (m *Memory) Close() error {
	return nil
}

// Len reports the number of stored keys.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Failing wraps a KV and forces every operation to return err.
// Used in tests to simulate a store outage.
type Failing struct {
	Err error
}

// Get always fails with the configured error.
func (f *Failing) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, f.Err
}

// Set always fails with the configured error.
func (f *Failing) Set(ctx context.Context, key string, value []byte) error {
	return f.Err
}

// Close is a no-op.
func (f *Failing) Close() error {
	return nil
}
