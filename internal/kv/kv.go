// Package kv provides the durable key-value blob store backing all
// persisted application state. Values are whole serialized collections;
// callers read and write them as opaque byte slices.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written or has
// been deleted.
var ErrNotFound = errors.New("key not found")

// Store is a string-keyed durable blob store with read/write-whole-value
// semantics.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
