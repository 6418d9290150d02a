// Package rank provides the vocabulary of taxonomic ranks used in
// scientific names, together with their conventional markers and
// helpers to infer a rank from the structure of a parsed name.
package rank

import (
	"sort"
	"strings"

	"github.com/gnames/gnomen/ent/nomcode"
)

// Rank is a taxonomic rank. Ranks are ordered from the highest
// (Domain) down to the lowest (Strain), so ordinal comparisons
// express "below" and "above" in the taxonomic hierarchy.
type Rank int

const (
	// Unranked is the explicit absence of a rank, also the zero value.
	Unranked Rank = iota
	// Other is a rank that exists but matches no entry of this
	// vocabulary.
	Other

	Domain
	Superkingdom
	Kingdom
	Subkingdom
	Superphylum
	Phylum
	Subphylum
	Superclass
	Class
	Subclass
	Superorder
	Order
	Suborder
	Infraorder
	Superfamily
	Family
	Subfamily
	Tribe
	Subtribe

	// SupragenericName is a name above the genus level of otherwise
	// undetermined rank.
	SupragenericName

	Genus
	Subgenus

	// InfragenericName is a name below genus and above species of
	// otherwise undetermined rank.
	InfragenericName

	Supersection
	Section
	Subsection
	Superseries
	Series
	Subseries

	// SpeciesAggregate is a group of closely related species treated
	// as a unit, e.g. a superspecies.
	SpeciesAggregate

	Species

	// InfraspecificName is a name below species of otherwise
	// undetermined rank.
	InfraspecificName

	Grex
	Subspecies
	CultivarGroup
	Convariety

	// InfrasubspecificName is a name below subspecies of otherwise
	// undetermined rank.
	InfrasubspecificName

	Proles
	Natio
	Aberration
	Morph
	Variety
	Subvariety
	Form
	Subform
	Pathovar
	Biovar
	Chemovar
	Morphovar
	Phagovar
	Serovar
	Chemoform
	FormaSpecialis
	Cultivar
	Strain
)

var rankStrings = map[Rank]string{
	Unranked:             "unranked",
	Other:                "other",
	Domain:               "domain",
	Superkingdom:         "superkingdom",
	Kingdom:              "kingdom",
	Subkingdom:           "subkingdom",
	Superphylum:          "superphylum",
	Phylum:               "phylum",
	Subphylum:            "subphylum",
	Superclass:           "superclass",
	Class:                "class",
	Subclass:             "subclass",
	Superorder:           "superorder",
	Order:                "order",
	Suborder:             "suborder",
	Infraorder:           "infraorder",
	Superfamily:          "superfamily",
	Family:               "family",
	Subfamily:            "subfamily",
	Tribe:                "tribe",
	Subtribe:             "subtribe",
	SupragenericName:     "suprageneric name",
	Genus:                "genus",
	Subgenus:             "subgenus",
	InfragenericName:     "infrageneric name",
	Supersection:         "supersection",
	Section:              "section",
	Subsection:           "subsection",
	Superseries:          "superseries",
	Series:               "series",
	Subseries:            "subseries",
	SpeciesAggregate:     "species aggregate",
	Species:              "species",
	InfraspecificName:    "infraspecific name",
	Grex:                 "grex",
	Subspecies:           "subspecies",
	CultivarGroup:        "cultivar group",
	Convariety:           "convariety",
	InfrasubspecificName: "infrasubspecific name",
	Proles:               "proles",
	Natio:                "natio",
	Aberration:           "aberration",
	Morph:                "morph",
	Variety:              "variety",
	Subvariety:           "subvariety",
	Form:                 "form",
	Subform:              "subform",
	Pathovar:             "pathovar",
	Biovar:               "biovar",
	Chemovar:             "chemovar",
	Morphovar:            "morphovar",
	Phagovar:             "phagovar",
	Serovar:              "serovar",
	Chemoform:            "chemoform",
	FormaSpecialis:       "forma specialis",
	Cultivar:             "cultivar",
	Strain:               "strain",
}

// String returns the lower-case English name of a rank.
func (r Rank) String() string {
	return rankStrings[r]
}

var rankMarkers = map[Rank]string{
	SupragenericName:     "supragen.",
	Subgenus:             "subgen.",
	InfragenericName:     "infragen.",
	Supersection:         "supersect.",
	Section:              "sect.",
	Subsection:           "subsect.",
	Superseries:          "superser.",
	Series:               "ser.",
	Subseries:            "subser.",
	SpeciesAggregate:     "agg.",
	Species:              "sp.",
	InfraspecificName:    "infrasp.",
	Grex:                 "gx",
	Subspecies:           "subsp.",
	CultivarGroup:        "Group",
	Convariety:           "convar.",
	InfrasubspecificName: "infrasubsp.",
	Proles:               "prol.",
	Natio:                "natio",
	Aberration:           "ab.",
	Morph:                "morph",
	Variety:              "var.",
	Subvariety:           "subvar.",
	Form:                 "f.",
	Subform:              "subf.",
	Pathovar:             "pv.",
	Biovar:               "biovar.",
	Chemovar:             "chemovar.",
	Morphovar:            "morphovar.",
	Phagovar:             "phagovar.",
	Serovar:              "serovar.",
	Chemoform:            "chemoform",
	FormaSpecialis:       "f.sp.",
	Cultivar:             "cv.",
	Strain:               "strain",
}

// Marker returns the conventional abbreviation used in front of an
// epithet of this rank, an empty string if the rank has none.
func (r Rank) Marker() string {
	return rankMarkers[r]
}

// uncomparable ranks express absence or uncertainty, so their ordinal
// position carries no hierarchical meaning.
var uncomparable = map[Rank]bool{
	Unranked:             true,
	Other:                true,
	SupragenericName:     true,
	InfragenericName:     true,
	InfraspecificName:    true,
	InfrasubspecificName: true,
}

// Uncertain reports whether a rank expresses absence or uncertainty
// rather than a definite position in the hierarchy.
func (r Rank) Uncertain() bool {
	return uncomparable[r]
}

// IsUndefined reports whether the rank carries no information at all.
func (r Rank) IsUndefined() bool {
	return r == Unranked || r == Other
}

// IsSuprageneric reports whether a rank is above the genus level.
func (r Rank) IsSuprageneric() bool {
	return r >= Domain && r < Genus
}

// IsInfrageneric reports whether a rank is below the genus level.
func (r Rank) IsInfrageneric() bool {
	return r > Genus
}

// IsSpeciesOrBelow reports whether a rank is the species level or
// below it.
func (r Rank) IsSpeciesOrBelow() bool {
	return r >= Species
}

// IsSpeciesAggregateOrBelow reports whether a rank is a species
// aggregate or any lower rank.
func (r Rank) IsSpeciesAggregateOrBelow() bool {
	return r >= SpeciesAggregate
}

// IsInfraspecific reports whether a rank is below the species level.
func (r Rank) IsInfraspecific() bool {
	return r > Species
}

// RestrictedToCode returns the nomenclatural code a rank belongs to
// exclusively, nomcode.Unknown when the rank is used across codes.
func (r Rank) RestrictedToCode() nomcode.Code {
	switch r {
	case Natio, Morph, Aberration:
		return nomcode.Zoological
	case Supersection, Section, Subsection, Superseries, Series, Subseries,
		Proles, Subform, FormaSpecialis:
		return nomcode.Botanical
	case Cultivar, CultivarGroup, Convariety, Grex:
		return nomcode.Cultivars
	case Pathovar, Biovar, Chemovar, Morphovar, Phagovar, Serovar,
		Chemoform:
		return nomcode.Bacterial
	}
	return nomcode.Unknown
}

// MicrobialRanks are infrasubspecific ranks restricted to
// bacteriological nomenclature.
var MicrobialRanks = []Rank{
	Pathovar, Biovar, Chemovar, Morphovar, Phagovar, Serovar, Chemoform,
	FormaSpecialis,
}

// markerSynonyms maps rank marker spellings, including common
// variants, to ranks. Keys are stored without a trailing period so
// lookups tolerate both "subsp" and "subsp.".
var markerSynonyms = map[string]Rank{
	"supragen":    SupragenericName,
	"gen":         Genus,
	"subgen":      Subgenus,
	"subg":        Subgenus,
	"sg":          Subgenus,
	"infragen":    InfragenericName,
	"supersect":   Supersection,
	"sect":        Section,
	"subsect":     Subsection,
	"superser":    Superseries,
	"ser":         Series,
	"subser":      Subseries,
	"agg":         SpeciesAggregate,
	"aggr":        SpeciesAggregate,
	"sp":          Species,
	"spp":         Species,
	"spec":        Species,
	"species":     Species,
	"infrasp":     InfraspecificName,
	"gx":          Grex,
	"grex":        Grex,
	"ssp":         Subspecies,
	"subsp":       Subspecies,
	"subspec":     Subspecies,
	"subspecies":  Subspecies,
	"group":       CultivarGroup,
	"convar":      Convariety,
	"infrasubsp":  InfrasubspecificName,
	"prol":        Proles,
	"proles":      Proles,
	"natio":       Natio,
	"nat":         Natio,
	"ab":          Aberration,
	"aberration":  Aberration,
	"morph":       Morph,
	"morpha":      Morph,
	"var":         Variety,
	"v":           Variety,
	"variety":     Variety,
	"varietas":    Variety,
	"subvar":      Subvariety,
	"subv":        Subvariety,
	"sv":          Subvariety,
	"f":           Form,
	"fo":          Form,
	"form":        Form,
	"forma":       Form,
	"subf":        Subform,
	"subform":     Subform,
	"pv":          Pathovar,
	"pathovar":    Pathovar,
	"biovar":      Biovar,
	"chemovar":    Chemovar,
	"morphovar":   Morphovar,
	"phagovar":    Phagovar,
	"serovar":     Serovar,
	"chemoform":   Chemoform,
	"fsp":         FormaSpecialis,
	"cv":          Cultivar,
	"cultivar":    Cultivar,
	"strain":      Strain,
	"str":         Strain,
	"dom":         Domain,
	"superreg":    Superkingdom,
	"reg":         Kingdom,
	"subreg":      Subkingdom,
	"superphyl":   Superphylum,
	"phyl":        Phylum,
	"subphyl":     Subphylum,
	"supercl":     Superclass,
	"cl":          Class,
	"subcl":       Subclass,
	"superord":    Superorder,
	"ord":         Order,
	"subord":      Suborder,
	"infraord":    Infraorder,
	"superfam":    Superfamily,
	"fam":         Family,
	"subfam":      Subfamily,
	"trib":        Tribe,
	"subtrib":     Subtribe,
}

// InferMarker returns the rank matching a marker string, e.g.
// "subsp." or "var". It returns Unranked when the marker is not
// recognized.
func InferMarker(marker string) Rank {
	m := strings.TrimSpace(marker)
	m = strings.TrimSuffix(m, ".")
	m = strings.ToLower(m)
	if r, ok := markerSynonyms[m]; ok {
		return r
	}
	return Unranked
}

var rankNames = func() map[string]Rank {
	res := make(map[string]Rank, len(rankStrings))
	for r, s := range rankStrings {
		res[s] = r
	}
	return res
}()

// New converts an English rank name or a rank marker into a Rank.
// Unrecognized strings give Unranked.
func New(s string) Rank {
	name := strings.ToLower(strings.TrimSpace(s))
	if r, ok := rankNames[name]; ok {
		return r
	}
	return InferMarker(name)
}

// MarkersInfrageneric returns markers of ranks between genus and
// species, the longest spellings first, so alternations built from
// them match greedily.
func MarkersInfrageneric() []string {
	return markersFor(func(r Rank) bool {
		return r > Genus && r < SpeciesAggregate
	})
}

// MarkersInfraspecific returns markers of ranks below the species
// level, the longest spellings first.
func MarkersInfraspecific() []string {
	return markersFor(func(r Rank) bool { return r > Species })
}

// MarkersSuprageneric returns markers of ranks above the genus level,
// the longest spellings first.
func MarkersSuprageneric() []string {
	return markersFor(func(r Rank) bool { return r >= Domain && r < Genus })
}

// MarkersAll returns every known marker spelling, the longest first.
func MarkersAll() []string {
	return markersFor(func(r Rank) bool { return true })
}

func markersFor(pred func(Rank) bool) []string {
	seen := make(map[string]bool)
	var res []string
	for m, r := range markerSynonyms {
		if pred(r) && !seen[m] {
			seen[m] = true
			res = append(res, m)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if len(res[i]) != len(res[j]) {
			return len(res[i]) > len(res[j])
		}
		return res[i] < res[j]
	})
	return res
}

// uninomialSuffixes maps the endings of suprageneric names to their
// ranks. Longer endings come first in the lookup.
var uninomialSuffixes = []struct {
	suffix string
	rank   Rank
}{
	{"oideae", Subfamily},
	{"aceae", Family},
	{"mycota", Phylum},
	{"phyceae", Class},
	{"mycetes", Class},
	{"oidea", Superfamily},
	{"phyta", Phylum},
	{"ales", Order},
	{"idae", Family},
	{"inae", Subfamily},
	{"eae", Tribe},
	{"ini", Tribe},
}

// InferRank guesses the rank of a name from which of its parts are
// populated. A name with an infraspecific epithet but no explicit
// marker gets the indeterminate InfraspecificName rank, a binomial
// gets Species, and a uninomial is matched against conventional
// suprageneric suffixes.
func InferRank(uninomial, genus, infrageneric, specific, infraspecific string) Rank {
	if infraspecific != "" {
		return InfraspecificName
	}
	if specific != "" {
		return Species
	}
	if infrageneric != "" {
		return InfragenericName
	}
	if genus != "" {
		return Genus
	}
	if uninomial != "" {
		for _, s := range uninomialSuffixes {
			if strings.HasSuffix(uninomial, s.suffix) {
				return s.rank
			}
		}
	}
	return Unranked
}
