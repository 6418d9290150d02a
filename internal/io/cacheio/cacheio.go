// Package cacheio implements the parse-results cache on top of an
// embedded badger database.
package cacheio

import (
	"errors"
	"log/slog"

	"github.com/dgraph-io/badger/v2"
	"github.com/gnames/gnomen/internal/ent/cache"
	"github.com/gnames/gnsys"
)

type cacheio struct {
	dir string
	db  *badger.DB
}

// New returns a badger-backed cache rooted at dir. The directory is
// created if needed, existing records survive between runs.
func New(dir string) (cache.Cache, error) {
	err := gnsys.MakeDir(dir)
	if err != nil {
		slog.Error("Cannot create directory", "error", err, "dir", dir)
		return nil, err
	}

	res := cacheio{dir: dir}
	return &res, nil
}

// Open opens the key-value store.
func (c *cacheio) Open() error {
	if c.db != nil {
		slog.Warn("cache is already open")
		return nil
	}
	options := badger.DefaultOptions(c.dir)
	options.Logger = nil

	bdb, err := badger.Open(options)
	if err != nil {
		return err
	}
	c.db = bdb
	return nil
}

// Close closes the key-value store.
func (c *cacheio) Close() error {
	if c.db == nil {
		slog.Warn("cache is not open")
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}

// GetTransaction returns a write transaction.
func (c *cacheio) GetTransaction() (*badger.Txn, error) {
	if c.db == nil {
		err := errors.New("cache is not open")
		return nil, err
	}
	txn := c.db.NewTransaction(true)
	return txn, nil
}

// GetValue returns the value for a key. A missing key is a cache
// miss, not an error.
func (c *cacheio) GetValue(key []byte) ([]byte, error) {
	txn := c.db.NewTransaction(false)
	defer txn.Commit()
	val, err := txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	var res []byte
	return val.ValueCopy(res)
}
