// Package ports defines interfaces for external service communication.
package ports

import "context"

// KeyValueStore is the local key-value medium the roster is persisted to.
// It plays the role of the browser's local storage: one opaque blob per key.
type KeyValueStore interface {
	// Get returns the value stored under key. found is false when the key
	// has never been written.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying storage.
	Close() error
}
