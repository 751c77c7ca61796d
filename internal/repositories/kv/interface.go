// Package kv is the key-value layer under the stores: each logical table
// (users, birthdays, session) is one serialized collection held under a
// fixed key in a single SQLite table.
package kv

import "context"

// Repository reads and writes opaque values by key.
type Repository interface {
	// Get returns the value stored under key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
