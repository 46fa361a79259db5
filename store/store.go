// ABOUTME: Key-value store abstraction shared by the content accessor and the seeder.
// ABOUTME: Defines the KV interface, the ErrNotFound sentinel, and backend selection helpers.
package store

import (
	"context"
	"errors"
)

// ErrNotFound indicates the store has no value for the requested key.
var ErrNotFound = errors.New("key not found")

// KV is the minimal key-value contract the content layer depends on.
// Implementations must treat each key independently; a write replaces the
// whole value (last write wins) and reads never observe partial values.
type KV interface {
	// Get returns the stored value for key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Close releases the backend's resources.
	Close() error
}
