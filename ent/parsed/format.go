package parsed

import (
	"strings"
	"unicode"

	"github.com/gnames/gnomen/ent/nomcode"
	"github.com/gnames/gnomen/ent/rank"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// HybridMarker is the multiplication sign used in front of nothotaxa.
const HybridMarker = '×'

// FormatOpts controls which parts of a ParsedName render into a
// name string.
type FormatOpts struct {
	// HybridMarker shows the hybrid sign of nothotaxa.
	HybridMarker bool
	// RankMarker shows infrageneric and infraspecific rank markers.
	RankMarker bool
	// Authorship shows author teams and years.
	Authorship bool
	// GenusForInfrageneric shows the genus for terminal infrageneric
	// names.
	GenusForInfrageneric bool
	// Infrageneric shows the bracketed subgenus inside binomials.
	Infrageneric bool
	// Decomposition expands unicode ligatures, e.g. æ to ae.
	Decomposition bool
	// ASCIIOnly transliterates all letters to their ASCII base.
	ASCIIOnly bool
	// ShowIndet renders rank markers of incomplete determinations,
	// e.g. "Puma spec.".
	ShowIndet bool
	// NomNote shows nomenclatural notes.
	NomNote bool
	// Remarks shows informal remarks in square brackets.
	Remarks bool
	// ShowSensu shows a sensu/sec reference.
	ShowSensu bool
	// ShowCultivar shows a quoted cultivar epithet.
	ShowCultivar bool
	// ShowStrain shows a strain designation.
	ShowStrain bool
}

// Canonical renders the full canonical form with authorship.
// Autonyms render without authorship.
func (pn *ParsedName) Canonical() string {
	return pn.BuildName(FormatOpts{
		HybridMarker:         true,
		RankMarker:           true,
		Authorship:           true,
		GenusForInfrageneric: true,
		Decomposition:        true,
		ShowIndet:            true,
		ShowCultivar:         true,
		ShowStrain:           true,
	})
}

// CanonicalWithoutAuthorship renders the canonical form with all
// authorship omitted.
func (pn *ParsedName) CanonicalWithoutAuthorship() string {
	return pn.BuildName(FormatOpts{
		HybridMarker:         true,
		RankMarker:           true,
		GenusForInfrageneric: true,
		Decomposition:        true,
		ShowIndet:            true,
		ShowCultivar:         true,
		ShowStrain:           true,
	})
}

// CanonicalMinimal renders nothing but the core epithets,
// transliterated to ASCII. Terminal infrageneric names render without
// their genus.
func (pn *ParsedName) CanonicalMinimal() string {
	return pn.BuildName(FormatOpts{
		Decomposition: true,
		ASCIIOnly:     true,
	})
}

// CanonicalComplete renders everything including notes, remarks,
// sensu references, cultivars and strains.
func (pn *ParsedName) CanonicalComplete() string {
	return pn.BuildName(FormatOpts{
		HybridMarker:         true,
		RankMarker:           true,
		Authorship:           true,
		GenusForInfrageneric: true,
		Infrageneric:         true,
		Decomposition:        true,
		ShowIndet:            true,
		NomNote:              true,
		Remarks:              true,
		ShowSensu:            true,
		ShowCultivar:         true,
		ShowStrain:           true,
	})
}

// AuthorshipComplete renders the concatenated authorship including
// the sanctioning author, an empty string when none exists.
func (pn *ParsedName) AuthorshipComplete() string {
	var sb strings.Builder
	pn.appendAuthorship(&sb)
	return sb.String()
}

// AuthorString renders one authorship group, optionally with its year.
func AuthorString(a Authorship, inclYear bool) string {
	var sb strings.Builder
	appendAuthors(&sb, a, inclYear)
	return sb.String()
}

var epithetDashes = strings.NewReplacer(" ", "-", "_", "-")

// BuildName assembles a name string from the parsed parts under the
// given options.
func (pn *ParsedName) BuildName(o FormatOpts) string {
	var sb strings.Builder
	authorship := o.Authorship

	if pn.Candidatus {
		sb.WriteString("\"Candidatus ")
	}

	if pn.Uninomial != "" {
		if o.HybridMarker && pn.Notho == GenericPart {
			sb.WriteRune(HybridMarker)
			sb.WriteByte(' ')
		}
		sb.WriteString(pn.Uninomial)
	} else {
		switch {
		case pn.InfragenericEpithet != "" && pn.SpecificEpithet == "":
			// terminal infrageneric name
			if pn.Genus != "" && o.GenusForInfrageneric {
				pn.appendGenus(&sb, o.HybridMarker)
				sb.WriteByte(' ')
				if pn.Code == nomcode.Zoological {
					// zoological subgenera show in brackets
					sb.WriteByte('(')
					sb.WriteString(pn.InfragenericEpithet)
					sb.WriteByte(')')
				} else {
					if o.RankMarker {
						appendRankMarker(&sb, pn.Rank, nil)
					}
					sb.WriteString(pn.InfragenericEpithet)
				}
			} else {
				sb.WriteString(pn.InfragenericEpithet)
			}
		case pn.Genus != "":
			pn.appendGenus(&sb, o.HybridMarker)
			if pn.InfragenericEpithet != "" && o.Infrageneric {
				sb.WriteString(" (")
				sb.WriteString(pn.InfragenericEpithet)
				sb.WriteByte(')')
			}
		}

		if pn.SpecificEpithet == "" {
			if o.ShowIndet {
				switch {
				case pn.Rank == rank.Species:
					sb.WriteString(" spec.")
					authorship = false
				case pn.Rank.IsInfraspecific() &&
					(pn.Rank != rank.Cultivar || pn.CultivarEpithet == ""):
					sb.WriteByte(' ')
					sb.WriteString(pn.Rank.Marker())
					authorship = false
				}
			}
		} else {
			sb.WriteByte(' ')
			if o.HybridMarker && pn.Notho == SpecificPart {
				sb.WriteRune(HybridMarker)
				sb.WriteByte(' ')
			}
			sb.WriteString(epithetDashes.Replace(pn.SpecificEpithet))

			if pn.InfraspecificEpithet == "" {
				// indetermined infraspecies, unless a cultivar epithet
				// stands in for the missing part
				if o.ShowIndet && pn.Rank.IsInfraspecific() &&
					(pn.Rank != rank.Cultivar || pn.CultivarEpithet == "") {
					sb.WriteByte(' ')
					sb.WriteString(pn.Rank.Marker())
					authorship = false
				}
			} else {
				sb.WriteByte(' ')
				if o.HybridMarker && pn.Notho == InfraspecificPart {
					if o.RankMarker && isInfraspecificMarker(pn.Rank) {
						sb.WriteString("notho")
					} else {
						sb.WriteRune(HybridMarker)
						sb.WriteByte(' ')
					}
				}
				// zoological names hide the subsp. marker
				if o.RankMarker &&
					!(pn.Code == nomcode.Zoological && pn.Rank == rank.Subspecies) {
					appendRankMarker(&sb, pn.Rank, isInfraspecificMarker)
				}
				sb.WriteString(epithetDashes.Replace(pn.InfraspecificEpithet))
				if pn.IsAutonym() {
					authorship = false
				}
			}
		}
	}

	if pn.Candidatus {
		sb.WriteByte('"')
	}

	if authorship && pn.HasAuthorship() {
		sb.WriteByte(' ')
		pn.appendAuthorship(&sb)
	}

	if o.ShowStrain && pn.Strain != "" {
		sb.WriteByte(' ')
		sb.WriteString(pn.Strain)
	}

	if o.ShowCultivar && pn.CultivarEpithet != "" {
		sb.WriteString(" '")
		sb.WriteString(pn.CultivarEpithet)
		sb.WriteByte('\'')
	}

	if o.ShowSensu && pn.TaxonomicNote != "" {
		sb.WriteByte(' ')
		sb.WriteString(pn.TaxonomicNote)
	}

	if o.NomNote && pn.NomenclaturalNotes != "" {
		sb.WriteString(", ")
		sb.WriteString(pn.NomenclaturalNotes)
	}

	if o.Remarks && pn.Remarks != "" {
		sb.WriteString(" [")
		sb.WriteString(pn.Remarks)
		sb.WriteByte(']')
	}

	name := strings.TrimSpace(sb.String())
	if o.Decomposition {
		name = decompose(name)
	}
	if o.ASCIIOnly {
		name = toASCII(name)
	}
	return name
}

func (pn *ParsedName) appendGenus(sb *strings.Builder, hybridMarker bool) {
	if hybridMarker && pn.Notho == GenericPart {
		sb.WriteRune(HybridMarker)
		sb.WriteByte(' ')
	}
	sb.WriteString(pn.Genus)
}

func isInfraspecificMarker(r rank.Rank) bool {
	return r.IsInfraspecific() && !r.Uncertain()
}

func appendRankMarker(sb *strings.Builder, r rank.Rank, ifRank func(rank.Rank) bool) {
	if r.Marker() == "" {
		return
	}
	if ifRank != nil && !ifRank(r) {
		return
	}
	sb.WriteString(r.Marker())
	sb.WriteByte(' ')
}

func appendAuthors(sb *strings.Builder, a Authorship, inclYear bool) {
	if !a.Exists() {
		return
	}
	var appended bool
	if len(a.ExAuthors) > 0 {
		sb.WriteString(joinAuthors(a.ExAuthors))
		sb.WriteString(" ex ")
		appended = true
	}
	if len(a.Authors) > 0 {
		sb.WriteString(joinAuthors(a.Authors))
		appended = true
	}
	if a.Year != "" && inclYear {
		if appended {
			sb.WriteString(", ")
		}
		sb.WriteString(a.Year)
	}
}

func (pn *ParsedName) appendAuthorship(sb *strings.Builder) {
	if pn.BasionymAuthorship.Exists() {
		sb.WriteByte('(')
		appendAuthors(sb, pn.BasionymAuthorship, true)
		sb.WriteString(") ")
	}
	if pn.CombinationAuthorship.Exists() {
		appendAuthors(sb, pn.CombinationAuthorship, true)
		// sanctioning authors of fungi follow after a colon
		if pn.SanctioningAuthor != "" {
			sb.WriteString(" : ")
			sb.WriteString(pn.SanctioningAuthor)
		}
	}
}

var ligatures = strings.NewReplacer(
	"æ", "ae", "Æ", "Ae",
	"œ", "oe", "Œ", "Oe",
)

// decompose expands unicode ligatures into their letter sequences.
func decompose(s string) string {
	return ligatures.Replace(s)
}

var asciiTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

var asciiSubstitutes = strings.NewReplacer(
	"ø", "o", "Ø", "O",
	"ß", "ss",
	"ð", "d", "Ð", "D",
	"þ", "th", "Þ", "Th",
	"đ", "d", "Đ", "D",
	"ł", "l", "Ł", "L",
)

// toASCII strips diacritics and replaces letters that do not
// decompose into an ASCII base.
func toASCII(s string) string {
	res, _, err := transform.String(asciiTransformer, s)
	if err != nil {
		res = s
	}
	return asciiSubstitutes.Replace(decompose(res))
}
