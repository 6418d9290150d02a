package gnomen

import (
	"context"

	"github.com/gnames/gnomen/ent/parsed"
	"github.com/gnames/gnomen/ent/rank"
)

// GNomen is an interface for parsing scientific names.
type GNomen interface {
	// Parse takes one name string into its structured form. The rank
	// argument passes a rank known from an external source, Unranked
	// when there is none. Unparsable names return a classified
	// UnparsableError, an exceeded match budget returns a TimeoutError.
	Parse(name string, knownRank rank.Rank) (*parsed.ParsedName, error)

	// ParseQuietly never fails. Unparsable names come back as a
	// degenerate ParsedName that keeps the verbatim input and the
	// failure classification, with the state set to None.
	ParseQuietly(name string, knownRank rank.Rank) *parsed.ParsedName

	// ParseToCanonical returns the canonical form of a name without
	// authorship, or an empty string when the name cannot be parsed.
	ParseToCanonical(name string) string

	// ParseToCanonicalOrOriginal returns the authorship-free canonical
	// form of a name, falling back to the whitespace-normalized input
	// when the name cannot be parsed.
	ParseToCanonicalOrOriginal(name string) string

	// ParseStream parses name strings from chIn concurrently and sends
	// one Result per input to chOut. The caller closes chIn, chOut is
	// closed when all workers finish. Output order is not the input
	// order.
	ParseStream(ctx context.Context, chIn <-chan string, chOut chan<- Result) error
}
