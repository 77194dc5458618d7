// Package storage defines the key-value contract the offline session cache
// persists through, together with ready-made backends: an in-process map, a
// BadgerDB store for a single device, and a Redis store that can be shared
// across client instances.
//
// The store is treated as a plain overwrite-on-write, read-on-read map. No
// locking is layered on top: concurrent writers to the same key race and the
// last write wins, which matches the multiple-tabs reality this client came
// from.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("not found")

// Store is the persisted key-value collaborator. The cache keeps two entries
// per user: one for the ciphertext and one for the IV.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// Clear deletes every entry this store is responsible for.
	Clear(ctx context.Context) error
}
