// Package parser implements the staged pipeline that takes a raw
// name string into a structured ParsedName: cleaning, normalization,
// one composite structural match, authorship splitting, and the
// disambiguation heuristics around ranks and bracket authors.
package parser

import (
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/gnames/gnomen/ent/parsed"
	"github.com/gnames/gnomen/ent/rank"
	"github.com/gnames/gnomen/pkg/config"
)

// Engine holds the compiled grammar. All fields are read-only after
// New, one Engine serves any number of concurrent parses.
type Engine struct {
	timeout       time.Duration
	namePat       *regexp2.Regexp
	namePatFull   *regexp2.Regexp
	authorTeamPat *regexp2.Regexp
	latinEndings  *regexp2.Regexp
}

// New compiles the grammar with the configured match budget and
// Latin-endings vocabulary.
func New(cfg config.Config) *Engine {
	np := regexp2.MustCompile(namePattern, regexp2.None)
	np.MatchTimeout = cfg.Timeout
	npf := regexp2.MustCompile(namePattern+`$`, regexp2.None)
	npf.MatchTimeout = cfg.Timeout
	at := regexp2.MustCompile(authorTeamOnly, regexp2.None)
	at.MatchTimeout = cfg.Timeout
	return &Engine{
		timeout:       cfg.Timeout,
		namePat:       np,
		namePatFull:   npf,
		authorTeamPat: at,
		latinEndings:  compileLatinEndings(cfg.LatinEndings),
	}
}

// job is the unit of work for one name string. It owns one mutable
// ParsedName and is used by a single goroutine.
type job struct {
	eng              *Engine
	verbatim         string
	knownRank        rank.Rank
	pn               *parsed.ParsedName
	ignoreAuthorship bool
	// memorized manuscript epithet, e.g. the "A" of "forma A"
	msEpithet string
}

// Parse takes one name string into its structured form. The knownRank
// argument passes a rank known from an external source, Unranked when
// there is none. Unparsable names return a classified
// UnparsableError, an exceeded match budget returns a TimeoutError.
func (e *Engine) Parse(
	name string, knownRank rank.Rank,
) (*parsed.ParsedName, error) {
	j := &job{
		eng:       e,
		verbatim:  name,
		knownRank: knownRank,
		pn:        &parsed.ParsedName{Verbatim: name},
	}
	return j.run()
}

func (j *job) run() (*parsed.ParsedName, error) {
	name := j.preClean(j.verbatim)

	// known OTU formats bypass the grammar entirely
	if m := find(otuPat, name); m != nil {
		j.pn.SetUninomial(group(m, 1))
		j.pn.Type = parsed.OTU
		if j.knownRank.IsUndefined() {
			j.pn.Rank = rank.Species
		} else {
			j.pn.Rank = j.knownRank
		}
		j.pn.State = parsed.Complete
		return j.pn, nil
	}

	if err := j.parse(name); err != nil {
		return nil, err
	}
	return j.pn, nil
}

func (j *job) unparsable(t parsed.NameType) error {
	return &parsed.UnparsableError{Type: t, Name: j.verbatim}
}

func (j *job) timeout() error {
	return &parsed.TimeoutError{Name: j.verbatim, Budget: j.eng.timeout}
}

func (j *job) parse(name string) error {
	if match(extinctMarker, name) {
		j.pn.Extinct = true
		name = replFirst(extinctMarker, name, "")
	}

	// properly quoted Candidatus names, checked before quote cleaning
	if m := find(isCandidatusQuote, j.verbatim); m != nil {
		j.pn.Candidatus = true
		name = replFirst(isCandidatusQuote, j.verbatim, group(m, 2))
	}

	// modernize the outdated microbial xxxtype markers
	name = replAll(typeToVar, name, "${1}var")

	// a single uppercase letter after a forma marker is a manuscript
	// epithet, memorized and reinstated after the match
	if m := find(infraspecUpper, name); m != nil {
		j.msEpithet = group(m, 1)
		name = replFirst(infraspecUpper, name, "vulgaris")
		j.pn.Type = parsed.Informal
	}

	// placeholders in author or infrageneric position
	if m := find(removePlaceholderAuthor, name); m != nil {
		name = replFirst(removePlaceholderAuthor, name, " ${1}")
		j.pn.Type = parsed.Placeholder
	}
	if match(removePlaceholderInfrageneric, name) {
		name = replFirst(removePlaceholderInfrageneric, name, "")
		j.pn.Type = parsed.Placeholder
	}

	// a placeholder genus still leaves a parsable epithet
	if match(placeholderGenus, name) {
		name = replFirst(placeholderGenus, name, "? ")
		j.pn.Type = parsed.Placeholder
	}

	if match(placeholderPat, name) {
		return j.unparsable(parsed.Placeholder)
	}

	if match(isVirus, name) || match(isVirusUpper, name) {
		return j.unparsable(parsed.Virus)
	}

	// RNA/DNA gene or strain names parse on, flagged informal
	if match(isGene, name) {
		j.pn.Type = parsed.Informal
	}

	name = j.normalize(name)

	if name == "" {
		return j.unparsable(parsed.NoName)
	}

	// suprageneric rank prefix, e.g. "Fam. Pinaceae"
	if m := find(supraRankPrefix, name); m != nil {
		j.setRank(strings.ReplaceAll(group(m, 1), ".", ""))
		name = replFirst(supraRankPrefix, name, "")
	}

	// cultivars come before strong normalization, which removes the
	// quotes they need
	if m := find(cultivarGroupPat, name); m != nil {
		j.pn.SetCultivarEpithet(group(m, 1))
		cgroup := group(m, 2)
		name = replFirst(cultivarGroupPat, name, " ")
		if strings.EqualFold(cgroup, "grex") || strings.EqualFold(cgroup, "gx") {
			j.pn.Rank = rank.Grex
		} else {
			j.pn.Rank = rank.CultivarGroup
		}
	}
	if m := find(cultivarPat, name); m != nil {
		j.pn.SetCultivarEpithet(group(m, 2))
		name = replFirst(cultivarPat, name, "${1}")
		j.pn.Rank = rank.Cultivar
	}

	if match(noLetters, name) {
		return j.unparsable(parsed.NoName)
	}

	if match(hybridFormula, name) {
		return j.unparsable(parsed.HybridFormula)
	}

	if match(isCandidatus, name) {
		j.pn.Candidatus = true
		name = replFirst(isCandidatus, name, "")
	}

	// nom. illeg. and other nomenclatural status notes
	var notes []string
	for m := find(extractNomStatus, name); m != nil; m = find(extractNomStatus, name) {
		note := strings.TrimSpace(group(m, 1))
		if note != "" {
			notes = append(notes, note)
			// a rank inside the note, e.g. "var. nov.", sets the rank
			if rm := find(novRankMarker, note); rm != nil {
				j.setRank(group(rm, 1))
				j.pn.AddWarning(parsed.WarnNomStatusRank)
			}
		}
		name = replFirst(extractNomStatus, name, "")
	}
	if len(notes) > 0 {
		j.pn.NomenclaturalNotes = strings.Join(notes, " ")
	}

	// unpublished manuscript names
	if m := find(manuscriptNames, name); m != nil {
		j.pn.Type = parsed.Informal
		j.pn.AddRemark(group(m, 0))
		j.setRank(strings.Replace(group(m, 1), "indet", "sp", 1))
		name = replFirst(manuscriptNames, name, "")
	}
	if match(manuscriptSuffix, name) {
		j.pn.Type = parsed.Informal
		name = replFirst(manuscriptSuffix, name, "")
	}

	// sequence repository strain tails, e.g. "Advenella kashmirensis W13003"
	if m := find(strainPat, name); m != nil {
		name = replFirst(strainPat, name, "${1}")
		j.pn.Type = parsed.Informal
		j.pn.SetStrain(group(m, 2))
	}

	// sensu/sec references
	if m := find(extractSensu, name); m != nil {
		note := strings.NewReplacer("(", "", ")", "").Replace(group(m, 1))
		j.pn.TaxonomicNote = normNote(note)
		name = replFirst(extractSensu, name, "")
	}
	if m := find(extractRemarks, name); m != nil {
		j.pn.Remarks = strings.TrimSpace(group(m, 1))
		name = replFirst(extractRemarks, name, "")
	}

	// a rank marker at the end makes the name an indet. A trailing
	// "f." stays, it is far more often the author suffix filius.
	if m := find(rankMarkerAtEnd, name); m != nil &&
		!strings.HasSuffix(name, " f.") && !strings.HasSuffix(name, " f") {
		j.ignoreAuthorship = true
		if j.pn.CultivarEpithet == "" {
			j.pn.Type = parsed.Informal
			j.setRank(group(m, 2))
		}
		name = replAll(rankMarkerAtEnd, name, "")
	}

	// informal identification notes
	if m := find(replAff, name); m != nil {
		j.pn.Type = parsed.Informal
		j.pn.AddRemark(group(m, 0))
		name = replAll(replAff, name, "")
	}

	// bibliographic in-references
	if m := find(replInRef, name); m != nil {
		j.pn.AddRemark(normNote(group(m, 0)))
		name = replFirst(replInRef, name, "")
	}

	preparsingRank := j.pn.Rank

	nameStrong := j.normalizeStrong(name)

	if nameStrong == "" {
		// parsed-out remarks only, a placeholder when a rank is known
		if preparsingRank.IsUndefined() {
			return j.unparsable(parsed.NoName)
		}
		j.pn.State = parsed.Complete
		j.pn.Type = parsed.Placeholder
		return nil
	}

	ok, err := j.parseNormalizedName(nameStrong)
	if err != nil {
		return err
	}
	if !ok {
		// some virus vocabulary only shows once parsing failed
		if match(isVirusLate, nameStrong) {
			return j.unparsable(parsed.Virus)
		}
		if match(potentialName, name) {
			return j.unparsable(parsed.Scientific)
		}
		return j.unparsable(parsed.NoName)
	}

	if j.msEpithet != "" {
		j.pn.SetInfraspecificEpithet(j.msEpithet)
	}
	// a rank found during preparsing beats the parsed one
	if !preparsingRank.IsUndefined() {
		j.pn.Rank = preparsingRank
	}

	j.determineNameType(name)
	j.applyDoubtfulFlag()

	if j.pn.Rank.IsUndefined() {
		j.pn.Rank = rank.InferRank(
			j.pn.Uninomial, j.pn.Genus, j.pn.InfragenericEpithet,
			j.pn.SpecificEpithet, j.pn.InfraspecificEpithet,
		)
	}

	j.determineCode()
	return nil
}

// parseNormalizedName matches the strongly normalized name against
// the structural grammar and distributes the captured groups. A full
// span match is COMPLETE, a proper prefix match is PARTIAL with the
// tail preserved in Unparsed.
func (j *job) parseNormalizedName(name string) (bool, error) {
	// the end-anchored attempt comes first. Without it the lazy
	// intermediate-epithet group settles on a short prefix match and
	// four-parted names lose their authorship to the unparsed tail.
	m, err := j.eng.namePatFull.FindStringMatch(name)
	if err != nil {
		return false, j.timeout()
	}
	if m == nil {
		m, err = j.eng.namePat.FindStringMatch(name)
		if err != nil {
			return false, j.timeout()
		}
	}
	if m == nil {
		return false, nil
	}

	matched := m.String()
	if matched == name {
		j.pn.State = parsed.Complete
	} else {
		j.pn.State = parsed.Partial
		j.pn.Unparsed = strings.TrimSpace(name[len(matched):])
	}

	// #1 is either the genus of a bi/trinomial or a uninomial
	j.setUninomialOrGenus(m)

	var bracketSubrank bool
	if g2 := group(m, 2); g2 != "" {
		bracketSubrank = true
		j.pn.SetInfragenericEpithet(g2)
	} else if g4 := group(m, 4); g4 != "" {
		j.setRank(group(m, 3))
		j.pn.SetInfragenericEpithet(g4)
	}
	j.pn.SetSpecificEpithet(group(m, 5))

	// #6 is the discarded intermediate epithet of a four-parted name
	if g6 := group(m, 6); len(g6) > 1 && !strings.Contains(g6, "null") {
		j.pn.Rank = rank.InfrasubspecificName
		j.pn.AddWarning(parsed.WarnFourPartedName)
	}
	if g7 := group(m, 7); g7 != "" {
		j.setRank(g7)
	}
	j.pn.SetInfraspecificEpithet(group(m, 8))

	if g9 := group(m, 9); g9 != "" {
		j.setRank(g9)
		j.pn.SetInfraspecificEpithet(group(m, 10))
	}

	j.lookForIrregularRankMarker()

	// a rank known externally wins over a missing parsed one
	if !j.knownRank.IsUndefined() && j.pn.Rank.IsUndefined() {
		j.pn.Rank = j.knownRank
		if j.pn.Genus == "" && j.knownRank.IsInfrageneric() {
			j.pn.SetGenus(j.pn.Uninomial)
			j.pn.Uninomial = ""
		}
		if j.pn.IsIndetermined() {
			j.ignoreAuthorship = true
		}
	}

	if !j.ignoreAuthorship {
		if bracketSubrank && j.infragenericIsAuthor() {
			// an author rather than an infrageneric epithet, swap
			j.pn.BasionymAuthorship = newAuthorship(
				"", j.pn.InfragenericEpithet, "")
			j.pn.InfragenericEpithet = ""
			if j.pn.SpecificEpithet == "" {
				j.pn.Uninomial = j.pn.Genus
				j.pn.Genus = ""
			}
		} else {
			// #12/13/15 basionym ex authors, authors, year
			j.pn.BasionymAuthorship = newAuthorship(
				group(m, 12), group(m, 13), group(m, 15))
		}

		// #16/17/19 combination ex authors, authors, year
		j.pn.CombinationAuthorship = newAuthorship(
			group(m, 16), group(m, 17), group(m, 19))
		if g18 := group(m, 18); g18 != "" {
			j.pn.SanctioningAuthor = g18
		}
	}

	if err := j.checkEpithetVsAuthorPrefix(); err != nil {
		return false, err
	}
	return true, nil
}
