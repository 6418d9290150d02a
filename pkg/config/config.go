package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gnames/gnfmt"
)

// Config is a struct that holds configuration parameters for the package.
type Config struct {
	// Timeout is a wall-clock budget for matching one name against the
	// structural grammar. Adversarial authorship strings can send the
	// match into catastrophic backtracking, the budget cuts it short.
	Timeout time.Duration

	// LatinEndings is a list of word endings typical for Latin
	// epithets. It drives the heuristic that tells bracketed subgenera
	// apart from basionym authors. An empty list falls back to the
	// built-in vocabulary.
	LatinEndings []string

	// JobsNum is a number of concurrent parsing goroutines for batch
	// input.
	JobsNum int

	// BatchSize is a number of name strings collected per output flush
	// during batch parsing.
	BatchSize int

	// Format sets the output encoding of batch results.
	Format gnfmt.Format

	// WithCache enables a key-value store of parse results keyed by
	// name UUID, so repeated names in large inputs parse once.
	WithCache bool

	// CacheDir is a directory for the key-value store.
	CacheDir string
}

// Option type allows to change settings for Config.
type Option func(*Config)

// OptTimeout sets the wall-clock budget of one structural match.
func OptTimeout(d time.Duration) Option {
	return func(cfg *Config) {
		cfg.Timeout = d
	}
}

// OptLatinEndings replaces the built-in Latin epithet endings list.
func OptLatinEndings(endings []string) Option {
	return func(cfg *Config) {
		cfg.LatinEndings = endings
	}
}

// OptJobsNum sets parallelism number for concurrent goroutines.
func OptJobsNum(j int) Option {
	return func(cfg *Config) {
		cfg.JobsNum = j
	}
}

// OptBatchSize sets the number of records flushed per batch.
func OptBatchSize(n int) Option {
	return func(cfg *Config) {
		cfg.BatchSize = n
	}
}

// OptFormat sets the output encoding of batch results.
func OptFormat(f gnfmt.Format) Option {
	return func(cfg *Config) {
		cfg.Format = f
	}
}

// OptWithCache enables the key-value cache of parse results.
func OptWithCache(b bool) Option {
	return func(cfg *Config) {
		cfg.WithCache = b
	}
}

// OptCacheDir sets a directory for the key-value cache.
func OptCacheDir(d string) Option {
	return func(cfg *Config) {
		cfg.CacheDir = d
	}
}

func New(opts ...Option) Config {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	cacheDir = filepath.Join(cacheDir, "gnomen")

	res := Config{
		Timeout:   time.Second,
		JobsNum:   4,
		BatchSize: 50_000,
		Format:    gnfmt.CSV,
		CacheDir:  cacheDir,
	}

	for _, opt := range opts {
		opt(&res)
	}

	return res
}
