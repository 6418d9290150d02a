package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"github.com/gnames/gnomen/ent/nomcode"
	"github.com/gnames/gnomen/ent/parsed"
	"github.com/gnames/gnomen/ent/rank"
)

// setRank applies a found rank marker, also setting the notho field
// when the marker carries a notho prefix. Unknown markers change
// nothing.
func (j *job) setRank(marker string) {
	marker = strings.TrimSpace(marker)
	base := strings.TrimPrefix(marker, "notho")
	r := rank.InferMarker(base)
	if r.IsUndefined() {
		return
	}
	j.pn.Rank = r
	if base == marker {
		return
	}
	switch {
	case r.IsInfraspecific():
		j.pn.Notho = parsed.InfraspecificPart
	case r == rank.Species:
		j.pn.Notho = parsed.SpecificPart
	case r.IsInfrageneric():
		j.pn.Notho = parsed.InfragenericPart
	case r == rank.Genus:
		j.pn.Notho = parsed.GenericPart
	}
}

// setUninomialOrGenus decides whether the leading monomial is a genus
// with further epithets or a standalone uninomial.
func (j *job) setUninomialOrGenus(m *regexp2.Match) {
	g1 := strings.TrimSpace(group(m, 1))
	if group(m, 2) != "" || group(m, 4) != "" ||
		group(m, 5) != "" || group(m, 8) != "" ||
		(j.pn.Rank.IsSpeciesOrBelow() &&
			j.pn.Rank.RestrictedToCode() != nomcode.Cultivars) {
		j.pn.SetGenus(g1)
	} else {
		j.pn.SetUninomial(g1)
	}
}

// lookForIrregularRankMarker inspects the epithets for rank markers
// that ended up in the wrong place, e.g. "Coccyzus americanus ssp.".
func (j *job) lookForIrregularRankMarker() {
	if j.pn.Rank.IsUndefined() {
		if j.pn.InfraspecificEpithet != "" &&
			match(rankMarkerOnly, j.pn.InfraspecificEpithet) {
			j.setRank(j.pn.InfraspecificEpithet)
			j.pn.InfraspecificEpithet = ""
			j.pn.AddWarning(parsed.WarnRankMismatch)
		}
		if j.pn.SpecificEpithet != "" &&
			match(rankMarkerOnly, j.pn.SpecificEpithet) {
			j.setRank(j.pn.SpecificEpithet)
			j.pn.SpecificEpithet = ""
			j.pn.AddWarning(parsed.WarnRankMismatch)
		}
	} else if j.pn.Rank == rank.Species && j.pn.InfraspecificEpithet != "" {
		// sp. wrongly used as a subspecies marker
		j.pn.Rank = rank.Subspecies
		j.pn.AddWarning(parsed.WarnSubspeciesAssigned)
	}
}

// infragenericIsAuthor decides whether a bracketed token after the
// genus is a basionym author rather than a subgenus. Without an
// external rank the decision falls to the Latin-endings heuristic.
func (j *job) infragenericIsAuthor() bool {
	if j.pn.BasionymAuthorship.Exists() || j.pn.SpecificEpithet != "" {
		return false
	}
	if !j.knownRank.IsUndefined() {
		return !(j.knownRank.IsInfrageneric() && !j.knownRank.IsSpeciesOrBelow())
	}
	return !match(j.eng.latinEndings, j.pn.InfragenericEpithet)
}

// checkEpithetVsAuthorPrefix drops a trailing epithet that together
// with the parsed authorship reads as an author team. Two letter
// epithets are often author name prefixes.
func (j *job) checkEpithetVsAuthorPrefix() error {
	if j.pn.InfraspecificEpithet != "" {
		extended := j.pn.InfraspecificEpithet + " " +
			j.pn.CombinationAuthorship.String()
		ok, err := j.eng.authorTeamPat.MatchString(extended)
		if err != nil {
			return j.timeout()
		}
		if ok {
			j.pn.InfraspecificEpithet = ""
		}
	} else if j.pn.SpecificEpithet != "" {
		extended := j.pn.SpecificEpithet + " " +
			j.pn.CombinationAuthorship.String()
		ok, err := j.eng.authorTeamPat.MatchString(extended)
		if err != nil {
			return j.timeout()
		}
		if ok {
			j.pn.SpecificEpithet = ""
		}
	}
	return nil
}

// determineNameType settles the name type, defaulting to Scientific
// so the type is never left unset on success.
func (j *job) determineNameType(normedName string) {
	pn := j.pn
	if pn.Type != parsed.Unset && !pn.Type.IsParsable() {
		return
	}

	first, _ := utf8.DecodeRuneInString(normedName)
	if pn.Uninomial != "" && unicode.IsLower(first) {
		// a lower case monomial is suspicious
		pn.AddWarning(parsed.WarnLowercaseMonomial)
		pn.Doubtful = true
		if pn.Type == parsed.Unset {
			pn.Type = parsed.Informal
		}
	} else if !pn.Rank.IsUndefined() {
		switch {
		case pn.Rank == rank.Cultivar && pn.CultivarEpithet == "":
			pn.AddWarning(parsed.WarnIndetCultivar)
			pn.Type = parsed.Informal
		case pn.Rank.IsSpeciesOrBelow() &&
			pn.Rank.RestrictedToCode() != nomcode.Cultivars &&
			!pn.IsBinomial():
			pn.AddWarning(parsed.WarnIndetSpecies)
			pn.Type = parsed.Informal
		case pn.Rank.IsInfraspecific() &&
			pn.Rank.RestrictedToCode() != nomcode.Cultivars &&
			pn.InfraspecificEpithet == "":
			pn.AddWarning(parsed.WarnIndetInfraspecies)
			pn.Type = parsed.Informal
		case !pn.Rank.IsSpeciesAggregateOrBelow() && pn.IsBinomial():
			pn.AddWarning(parsed.WarnHigherRankBinomial)
			pn.Doubtful = true
		}
	}

	if pn.Type == parsed.Unset {
		if pn.Genus == "?" || pn.Uninomial == "?" {
			pn.Type = parsed.Placeholder
		} else {
			pn.Type = parsed.Scientific
		}
	}
}

// applyDoubtfulFlag checks the untouched input against the allowed
// character class, then for stray "null" tokens of upstream data
// corruption.
func (j *job) applyDoubtfulFlag() {
	pn := j.pn
	if !match(doubtfulChars, j.verbatim) {
		pn.Doubtful = true
		pn.AddWarning(parsed.WarnUnusualCharacters)
	} else if pn.Type.IsParsable() && match(doubtfulNull, j.verbatim) {
		pn.Doubtful = true
		pn.AddWarning(parsed.WarnNullEpithet)
	}
}

// determineCode infers the nomenclatural code when nothing set it
// explicitly.
func (j *job) determineCode() {
	pn := j.pn
	if pn.Code != nomcode.Unknown {
		return
	}
	switch {
	case pn.Rank.RestrictedToCode() != nomcode.Unknown:
		pn.Code = pn.Rank.RestrictedToCode()
	case pn.CultivarEpithet != "":
		pn.Code = nomcode.Cultivars
	case pn.SanctioningAuthor != "":
		// sanctioning exists only for fungi
		pn.Code = nomcode.Botanical
	case pn.Type == parsed.Virus:
		pn.Code = nomcode.Virus
	case pn.Candidatus || pn.Strain != "":
		pn.Code = nomcode.Bacterial
	}
}
