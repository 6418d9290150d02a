// Package parsed provides the structured representation of a
// scientific name produced by the parsing engine, together with its
// rendering into canonical forms.
package parsed

import (
	"strings"

	"github.com/gnames/gnomen/ent/nomcode"
	"github.com/gnames/gnomen/ent/rank"
)

// State tells how much of the cleaned name string matched the
// structural grammar.
type State int

const (
	// None means no structural match succeeded.
	None State = iota
	// Partial means only a prefix of the string matched.
	Partial
	// Complete means the whole string matched.
	Complete
)

var stateStrings = map[State]string{
	None:     "none",
	Partial:  "partial",
	Complete: "complete",
}

func (s State) String() string {
	return stateStrings[s]
}

// IsParsed reports whether a structural match succeeded at all.
func (s State) IsParsed() bool {
	return s != None
}

// NamePart identifies a component of a name, used to mark which part
// carries a hybrid sign.
type NamePart int

const (
	GenericPart NamePart = iota + 1
	InfragenericPart
	SpecificPart
	InfraspecificPart
)

var namePartStrings = map[NamePart]string{
	GenericPart:       "generic",
	InfragenericPart:  "infrageneric",
	SpecificPart:      "specific",
	InfraspecificPart: "infraspecific",
}

func (np NamePart) String() string {
	return namePartStrings[np]
}

// ParsedName is the structured result of parsing one name string.
// One instance belongs to one parse job and is never shared between
// concurrent parses.
type ParsedName struct {
	// Verbatim is the input string before any cleaning.
	Verbatim string

	Type  NameType
	State State
	Rank  rank.Rank
	Code  nomcode.Code

	// Doubtful is set when the input contains suspicious characters
	// or other signs of data corruption.
	Doubtful bool
	// Candidatus is set for provisional bacterial names.
	Candidatus bool
	// Extinct is set when the input carries the dagger extinction
	// marker.
	Extinct bool
	// Notho marks the name part carrying the hybrid sign, if any.
	Notho NamePart

	Uninomial            string
	Genus                string
	InfragenericEpithet  string
	SpecificEpithet      string
	InfraspecificEpithet string
	CultivarEpithet      string
	Strain               string

	CombinationAuthorship Authorship
	BasionymAuthorship    Authorship
	SanctioningAuthor     string

	// TaxonomicNote keeps a sensu/sec reference.
	TaxonomicNote string
	// NomenclaturalNotes keeps notes like "nom. illeg.".
	NomenclaturalNotes string
	// Remarks keeps informal fragments like "aff." or manuscript tails.
	Remarks string
	// Unparsed keeps the tail of the string a partial match left over.
	Unparsed string

	// Warnings accumulate during a parse and are never cleared.
	Warnings []string
}

// hybrid signs accepted in front of a name part.
const hybridSigns = "×+"

func (pn *ParsedName) stripHybrid(epithet string, part NamePart) string {
	e := strings.TrimSpace(epithet)
	if e == "" {
		return ""
	}
	if r := []rune(e); strings.ContainsRune(hybridSigns, r[0]) {
		pn.Notho = part
		return strings.TrimSpace(string(r[1:]))
	}
	return e
}

// SetUninomial stores a name above the genus level. A leading hybrid
// sign moves into the Notho field.
func (pn *ParsedName) SetUninomial(s string) {
	pn.Uninomial = pn.stripHybrid(s, GenericPart)
}

// SetGenus stores the genus. A leading hybrid sign moves into the
// Notho field.
func (pn *ParsedName) SetGenus(s string) {
	pn.Genus = pn.stripHybrid(s, GenericPart)
}

// SetInfragenericEpithet stores the infrageneric epithet. A leading
// hybrid sign moves into the Notho field.
func (pn *ParsedName) SetInfragenericEpithet(s string) {
	pn.InfragenericEpithet = pn.stripHybrid(s, InfragenericPart)
}

// SetSpecificEpithet stores the specific epithet. A leading hybrid
// sign moves into the Notho field.
func (pn *ParsedName) SetSpecificEpithet(s string) {
	pn.SpecificEpithet = pn.stripHybrid(s, SpecificPart)
}

// SetInfraspecificEpithet stores the terminal infraspecific epithet.
// A leading hybrid sign moves into the Notho field.
func (pn *ParsedName) SetInfraspecificEpithet(s string) {
	pn.InfraspecificEpithet = pn.stripHybrid(s, InfraspecificPart)
}

// SetCultivarEpithet stores a cultivar epithet without its quotes.
func (pn *ParsedName) SetCultivarEpithet(s string) {
	pn.CultivarEpithet = strings.TrimSpace(s)
}

// SetStrain stores a strain designation.
func (pn *ParsedName) SetStrain(s string) {
	pn.Strain = strings.TrimSpace(s)
}

// AddWarning appends warning codes, skipping duplicates.
func (pn *ParsedName) AddWarning(warns ...string) {
	pn.Warnings = append(pn.Warnings, warns...)
}

// AddRemark appends a fragment to the remarks, separating entries
// with a semicolon.
func (pn *ParsedName) AddRemark(remark string) {
	remark = strings.TrimSpace(remark)
	if remark == "" {
		return
	}
	if pn.Remarks == "" {
		pn.Remarks = remark
		return
	}
	pn.Remarks = pn.Remarks + "; " + remark
}

// IsAutonym reports whether the infraspecific epithet repeats the
// specific epithet. Autonyms carry no authorship of their own.
func (pn *ParsedName) IsAutonym() bool {
	return pn.SpecificEpithet != "" &&
		pn.SpecificEpithet == pn.InfraspecificEpithet
}

// IsBinomial reports whether both genus and specific epithet are
// present.
func (pn *ParsedName) IsBinomial() bool {
	return pn.Genus != "" && pn.SpecificEpithet != ""
}

// IsTrinomial reports whether the name is a binomial with an
// infraspecific epithet.
func (pn *ParsedName) IsTrinomial() bool {
	return pn.IsBinomial() && pn.InfraspecificEpithet != ""
}

// IsIndetermined reports whether the rank promises an epithet the
// name does not deliver, e.g. "Abies sp." or "Carex sect.".
func (pn *ParsedName) IsIndetermined() bool {
	return pn.Rank.IsInfrageneric() && !pn.Rank.IsSpeciesAggregateOrBelow() &&
		pn.InfragenericEpithet == "" && pn.SpecificEpithet == "" ||
		pn.Rank.IsSpeciesOrBelow() && pn.SpecificEpithet == "" &&
			pn.CultivarEpithet == "" ||
		pn.Rank.IsInfraspecific() && pn.InfraspecificEpithet == "" &&
			pn.CultivarEpithet == ""
}

// IsIncomplete reports whether the name lacks a leading name part.
func (pn *ParsedName) IsIncomplete() bool {
	return pn.Uninomial == "" && pn.Genus == "" &&
		(pn.SpecificEpithet != "" || pn.InfragenericEpithet != "")
}

// HasAuthorship reports whether any authorship was extracted.
func (pn *ParsedName) HasAuthorship() bool {
	return pn.CombinationAuthorship.Exists() || pn.BasionymAuthorship.Exists()
}

// TerminalEpithet returns the lowest populated epithet.
func (pn *ParsedName) TerminalEpithet() string {
	if pn.InfraspecificEpithet != "" {
		return pn.InfraspecificEpithet
	}
	return pn.SpecificEpithet
}
