// Package cache defines a key-value store of parse results, keyed by
// the UUID v5 of a verbatim name string. It lets batch runs with many
// repeated names parse each distinct name once.
package cache

import "github.com/dgraph-io/badger/v2"

// Cache is a key-value store of parse results.
type Cache interface {
	// Open opens the store for reading and writing.
	Open() error

	// Close closes the store.
	Close() error

	// GetTransaction returns a write transaction.
	GetTransaction() (*badger.Txn, error)

	// GetValue returns the value for a key, nil without an error when
	// the key is absent.
	GetValue(key []byte) ([]byte, error)
}
