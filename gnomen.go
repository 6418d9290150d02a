// Package gnomen provides a parser that breaks scientific names of
// organisms into their semantic elements: genus, epithets, rank
// markers, authorship, annotations.
package gnomen

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dgraph-io/badger/v2"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnomen/ent/parsed"
	"github.com/gnames/gnomen/ent/rank"
	"github.com/gnames/gnomen/internal/ent/cache"
	"github.com/gnames/gnomen/internal/io/cacheio"
	"github.com/gnames/gnomen/internal/parser"
	"github.com/gnames/gnomen/pkg/config"
	"github.com/gnames/gnuuid"
	"github.com/mitchellh/go-homedir"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of parsing one name string of a batch.
type Result struct {
	// ID is a deterministic UUID v5 derived from the verbatim input.
	ID string

	// Name is the structured parse. It is never nil, failed parses
	// produce a degenerate name that keeps the verbatim input.
	Name *parsed.ParsedName
}

// gnomen is an implementation of GNomen interface.
type gnomen struct {
	cfg config.Config
	eng *parser.Engine
}

// New creates a new instance of GNomen.
func New(cfg config.Config) GNomen {
	if strings.HasPrefix(cfg.CacheDir, "~/") ||
		strings.HasPrefix(cfg.CacheDir, "~\\") {
		home, err := homedir.Dir()
		if err != nil {
			slog.Error("Cannot find home directory", "error", err)
			os.Exit(1)
		}
		cfg.CacheDir = filepath.Join(home, cfg.CacheDir[2:])
	}
	res := gnomen{
		cfg: cfg,
		eng: parser.New(cfg),
	}
	return &res
}

func (g *gnomen) Parse(
	name string, knownRank rank.Rank,
) (*parsed.ParsedName, error) {
	return g.eng.Parse(name, knownRank)
}

func (g *gnomen) ParseQuietly(
	name string, knownRank rank.Rank,
) *parsed.ParsedName {
	pn, err := g.eng.Parse(name, knownRank)
	if err == nil {
		return pn
	}

	pn = &parsed.ParsedName{
		Verbatim: name,
		State:    parsed.None,
		Rank:     knownRank,
	}
	var unp *parsed.UnparsableError
	if errors.As(err, &unp) {
		pn.Type = unp.Type
	} else if errors.Is(err, parsed.ErrTimeout) {
		// the input looked enough like a name to blow the budget
		pn.Type = parsed.Scientific
	}
	return pn
}

func (g *gnomen) ParseToCanonical(name string) string {
	pn, err := g.eng.Parse(name, rank.Unranked)
	if err != nil {
		return ""
	}
	return pn.CanonicalWithoutAuthorship()
}

func (g *gnomen) ParseToCanonicalOrOriginal(name string) string {
	if res := g.ParseToCanonical(name); res != "" {
		return res
	}
	return strings.Join(strings.Fields(name), " ")
}

func (g *gnomen) ParseStream(
	ctx context.Context,
	chIn <-chan string,
	chOut chan<- Result,
) error {
	var store cache.Cache
	if g.cfg.WithCache {
		var err error
		store, err = cacheio.New(g.cfg.CacheDir)
		if err != nil {
			slog.Error("Cannot create cache", "error", err, "dir", g.cfg.CacheDir)
			return err
		}
		if err = store.Open(); err != nil {
			slog.Error("Cannot open cache", "error", err, "dir", g.cfg.CacheDir)
			return err
		}
		defer store.Close()
	}

	var wg sync.WaitGroup
	grp, ctx := errgroup.WithContext(ctx)

	for i := 0; i < g.cfg.JobsNum; i++ {
		wg.Add(1)
		grp.Go(func() error {
			defer wg.Done()
			return g.parseWorker(ctx, store, chIn, chOut)
		})
	}

	go func() {
		wg.Wait()
		close(chOut)
	}()

	return grp.Wait()
}

// parseWorker consumes name strings until chIn closes. Cache hits skip
// the engine, misses are parsed and written back through one long
// transaction per worker.
func (g *gnomen) parseWorker(
	ctx context.Context,
	store cache.Cache,
	chIn <-chan string,
	chOut chan<- Result,
) error {
	var err error
	var txn *badger.Txn
	enc := gnfmt.GNjson{}

	if store != nil {
		txn, err = store.GetTransaction()
		if err != nil {
			slog.Error("Cannot make cache transaction", "error", err)
			return err
		}
	}

loop:
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case name, ok := <-chIn:
			if !ok {
				break loop
			}
			id := gnuuid.New(name).String()

			if store != nil {
				if pn := g.cachedName(store, enc, id); pn != nil {
					chOut <- Result{ID: id, Name: pn}
					continue
				}
			}

			pn := g.ParseQuietly(name, rank.Unranked)

			if store != nil {
				txn, err = g.saveName(store, enc, txn, id, pn)
				if err != nil {
					return err
				}
			}
			chOut <- Result{ID: id, Name: pn}
		}
	}

	if txn != nil {
		if err = txn.Commit(); err != nil {
			slog.Error("Cannot commit cache transaction", "error", err)
			return err
		}
	}
	return nil
}

// cachedName returns a previously stored parse, nil on a miss or a
// corrupted record.
func (g *gnomen) cachedName(
	store cache.Cache,
	enc gnfmt.Encoder,
	id string,
) *parsed.ParsedName {
	bs, err := store.GetValue([]byte(id))
	if err != nil || bs == nil {
		return nil
	}
	var pn parsed.ParsedName
	if err = enc.Decode(bs, &pn); err != nil {
		return nil
	}
	return &pn
}

func (g *gnomen) saveName(
	store cache.Cache,
	enc gnfmt.Encoder,
	txn *badger.Txn,
	id string,
	pn *parsed.ParsedName,
) (*badger.Txn, error) {
	bs, err := enc.Encode(pn)
	if err != nil {
		slog.Error("Cannot encode parsed name", "error", err)
		return nil, err
	}
	if err = txn.Set([]byte(id), bs); err == badger.ErrTxnTooBig {
		if err = txn.Commit(); err != nil {
			slog.Error("Cannot commit cache transaction", "error", err)
			return nil, err
		}
		txn, err = store.GetTransaction()
		if err != nil {
			slog.Error("Cannot recreate cache transaction", "error", err)
			return nil, err
		}
		err = txn.Set([]byte(id), bs)
	}
	if err != nil {
		slog.Error("Cannot set cache record", "error", err)
		return nil, err
	}
	return txn, nil
}
