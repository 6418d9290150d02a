package parser

import (
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/gnames/gnomen/ent/rank"
)

// Character classes of letters allowed in name parts. They are wider
// than plain ASCII because historic names keep diacritics and
// ligatures.
const (
	nameLetters  = "A-ZÏËÖÜÄÉÈČÁÀÆŒ"
	lowerLetters = "a-zïëöüäåéèčáàæœ"
	// upper case unicode letters, not numerical
	authorUcLetters = nameLetters + `\p{Lu}`
	// lower case unicode letters, not numerical
	authorLcLetters = lowerLetters + `\p{Ll}-?`
)

// Author grammar fragments. Author tokens cover capitalized names and
// the usual lower case particles (van, de, la) plus suffixes like
// filius or junior. "ms" marks unpublished manuscript authors.
const (
	authorToken = `(?:\p{Lu}[\p{Lu}\p{Ll}'-]*` +
		`|al|f|fil|filius|hort|j|jr|jun|junior|sr|sen|senior|ms` +
		`|v|v[ao]n|d[aeiou]?|de[nrmls]?|degli|e|l[ae]s?|s|'?t|y` +
		`)\.?`
	author     = authorToken + `(?:[ '-]?` + authorToken + `)*`
	authorTeam = author + `(?:[&,;]+` + author + `)*`
	authorship = `(?:(` + authorTeam + `) ?\bex[. ])?` +
		`(` + authorTeam + `)` +
		// two sanctioning authors known for fungi
		`(?: *: *(Pers\.?|Fr\.?))?`

	yearDigits = `[12][0-9][0-9][0-9?]`
	yearLoose  = yearDigits + `[abcdh?]?(?:[/,-][0-9]{1,4})?`
)

const (
	epithetPrefixes        = `van|novae`
	unallowedEpithetEnding = `bacilliform|coliform|coryneform|cytoform` +
		`|chemoform|biovar|serovar|genomovar|agamovar|cultivar|genotype` +
		`|serotype|subtype|ribotype|isolate`
	epithet = `(?:[0-9]+-?|[doml]')?` +
		`(?:(?:` + epithetPrefixes + `) [a-z])?` +
		`[` + lowerLetters + `+-]{1,}(?<! d)[` + lowerLetters + `]` +
		`(?<!(?:\bex|\bl[ae]|\bv[ao]n|` + unallowedEpithetEnding + `))(?=\b)`
	monomial = `[` + nameLetters + `](?:\.|[` + lowerLetters + `]+)` +
		`(?:-[` + nameLetters + `]?[` + lowerLetters + `]+)?`

	notho = "notho"

	placeholderName = `(?:allocation|awaiting|deleted?|dummy` +
		`|incertae sedis|mixed|not assigned|not stated|place ?holder` +
		`|temp|tobedeleted|unaccepted|unallocated|unassigned|uncertain` +
		`|unclassified|uncultured|undetermined|unknown|unnamed|unplaced` +
		`|unspecified)`

	novRanks = `((?:[sS]ub)?(?:[fF]am|[gG]en|[sS]s?p(?:ec)?` +
		`|[vV]ar|[fF](?:orma?)?))`

	candidatus = `(Candidatus\s|Ca\.)`
)

// rankMarkersSpecies matches rank markers of infraspecific taxa, with
// an optional notho prefix. The lookbehind keeps "f. sp" from being
// read as species marker after a forma abbreviation.
var rankMarkersSpecies = `(?:` + notho + `)?(?:(?<!f[ .])sp|` +
	strings.Join(rank.MarkersInfraspecific(), "|") + `)`

// rankMarkerMicrobial matches markers of infrasubspecific microbial
// ranks with their dots.
var rankMarkerMicrobial = `(?:bv\.|ct\.|f\.sp\.|` + microbialAlternation() + `)`

func microbialAlternation() string {
	ms := make([]string, len(rank.MicrobialRanks))
	for i, r := range rank.MicrobialRanks {
		ms[i] = strings.ReplaceAll(r.Marker(), ".", `\.`)
	}
	return strings.Join(ms, "|")
}

// infrageneric matches either a bracketed subgenus or a rank marker
// followed by an infrageneric epithet.
var infrageneric = `(?:\(([` + nameLetters + `][` + lowerLetters + `-]+)\)` +
	`| (` + strings.Join(rank.MarkersInfrageneric(), "|") + `)` +
	`[. ]([` + nameLetters + `][` + lowerLetters + `-]+))`

var rankMarkerAll = `(` + notho + `)? *(` +
	strings.Join(rank.MarkersAll(), "|") + `)\.?`

// namePattern is the structural grammar of one name. Group numbers:
//
//	#1 monomial or genus, possibly a "?" placeholder
//	#2 bracketed infrageneric epithet
//	#3 infrageneric rank marker, #4 its epithet
//	#5 specific epithet
//	#6 discarded intermediate epithet of four-parted names
//	#7 infraspecific rank marker, #8 infraspecific epithet
//	#9 microbial rank marker, #10 its epithet
//	#11 the whole authorship block
//	#12-15 basionym ex authors/authors/sanctioning/year
//	#16-19 combination ex authors/authors/sanctioning/year
//
// It is anchored at the start. The engine first tries it with an
// added end anchor for a full-span match, then without one, where a
// proper prefix match produces a partial result with the tail
// preserved.
var namePattern = `^` +
	`(×?(?:\?|` + monomial + `))` +
	`(?:(?<!ceae)` + infrageneric + `)?` +
	`(?:(?:\b| )(×?` + epithet + `))?` +
	`(?:` +
	`( ` + epithet + `)??` +
	`(?:` +
	`(?: .+?)??` +
	` ?(` + rankMarkersSpecies + `)` +
	`)?` +
	`(?:[. ](×?"?` + epithet + `"?))` +
	`)?` +
	`(?: ` +
	`(` + rankMarkerMicrobial + `)[ .]` +
	`(\S+)` +
	`)?` +
	`([, ]?` +
	`(?:\(` +
	`(?:` + authorship + `)?` +
	`[, ]?(` + yearLoose + `)?` +
	`\))?` +
	`(?:` + authorship + `)?` +
	`(?: ?\(?,?(` + yearLoose + `)\)?)?` +
	`)`

var authorTeamOnly = `^` + authorTeam + `$`

var (
	hybridFormula = regexp2.MustCompile(`[. ]× `, regexp2.None)
	extinctMarker = regexp2.MustCompile(`†\s*`, regexp2.None)

	cultivarPat = regexp2.MustCompile(
		`(?:([. ])cv[. ])?["'] ?((?:[`+nameLetters+`]?[`+lowerLetters+
			`]+[- ]?){1,3}) ?["']`, regexp2.None)
	cultivarGroupPat = regexp2.MustCompile(
		`(?<!^)\b["']?((?:[`+nameLetters+`][`+lowerLetters+
			`]{2,}[- ]?){1,3})["']? (Group|Hybrids|Sort|[Gg]rex|gx)\b`,
		regexp2.None)

	infraspecUpper = regexp2.MustCompile(`(?<=forma? )([A-Z])\b`,
		regexp2.None)
	strainPat = regexp2.MustCompile(
		`([a-z]\.?) +([A-Z]+[ -]?(?!`+yearDigits+`(?:[^0-9]|$))[0-9]+T?)$`,
		regexp2.None)

	isVirus = regexp2.MustCompile(
		`virus(es)?\b|\b(viroid|(bacterio|viro)?phage(in|s)?`+
			`|(alpha|beta) ?satellites?|particles?|ictv$)\b`,
		regexp2.IgnoreCase)
	// NPV is a nuclear polyhedrosis virus, GV a granulovirus
	isVirusUpper = regexp2.MustCompile(`\b(:?[MS]?NP|G)V\b`, regexp2.None)
	isVirusLate  = regexp2.MustCompile(`(\b(vector)\b)`, regexp2.IgnoreCase)

	isGene = regexp2.MustCompile(`(RNA|DNA)[0-9]*(?:\b|_)`, regexp2.None)

	// SH000003.07FU and BOLD:AAA0003 style OTU identifiers
	otuPat = regexp2.MustCompile(
		`(BOLD:[0-9A-Z]{7}$|SH[0-9]{6}\.[0-9]{2}FU)`, regexp2.IgnoreCase)

	isCandidatus      = regexp2.MustCompile(candidatus, regexp2.None)
	isCandidatusQuote = regexp2.MustCompile(`"`+candidatus+`(.+)"`,
		regexp2.IgnoreCase)

	supraRankPrefix = regexp2.MustCompile(`^(`+
		strings.Join(append(rank.MarkersSuprageneric(),
			rank.MarkersInfrageneric()...), "|")+`)[\. ] *`, regexp2.None)
	rankMarkerAtEnd = regexp2.MustCompile(` (`+notho+`)? *(`+
		strings.Join(rank.MarkersAll(), "|")+`|bv\.|ct\.|f\.sp\.|`+
		microbialAlternation()+`)\.?`+
		// allow larva/adult life stage indicators
		` ?(?:Ad|Lv)?\.?$`, regexp2.None)
	rankMarkerOnly = regexp2.MustCompile(`^`+rankMarkerAll+`$`,
		regexp2.None)

	extractSensu = regexp2.MustCompile(` ?\b(`+
		`(?:(?:excl[. ](?:gen|sp|var)|mut.char|p.p)[. ])?`+
		`\(?(?:`+
		`s[. ](?:ampl|l|s|str)[. ]`+
		`|sensu (?:lat|strict|ampl)(?:[uo]|issimo)?`+
		`|(?:auct|emend|fide|non|nec|sec|sensu|according to)[. ][^)]*`+
		`)\)?)`, regexp2.None)
	novRankMarker    = regexp2.MustCompile(`(`+novRanks+`)`, regexp2.None)
	extractNomStatus = regexp2.MustCompile(`[;, ]?`+
		`\(?`+
		`\b(`+
		`(?:comb|`+novRanks+`)[. ]nov\b[. ]?(?:ined[. ])?`+
		`|ined[. ]`+
		`|nom(?:en)?[. ]`+
		`(?:utiq(?:ue)?[. ])?`+
		`(?:ambig|alter|alt|correct|cons|dubium|dub|herb|illeg|invalid`+
		`|inval|negatum|neg|novum|nov|nudum|nud|oblitum|obl|praeoccup`+
		`|prov|prot|transf|superfl|super|rejic|rej)\b[. ]?`+
		`(?:prop[. ]|proposed\b)?`+
		`)`+
		`\)?`, regexp2.None)
	extractRemarks = regexp2.MustCompile(`\s+(anon\.?)(\s.+)?$`,
		regexp2.None)

	commaAfterBasYear = regexp2.MustCompile(`(`+yearDigits+`)\s*\)\s*,`,
		regexp2.None)
	normApostrophes = regexp2.MustCompile("([`´‘’]+)",
		regexp2.None)
	normQuotes     = regexp2.MustCompile("([\"'`´]+)", regexp2.None)
	replGenusQuote = regexp2.MustCompile(`^' *(`+monomial+`) *'`,
		regexp2.None)
	replEnclosingQuote = regexp2.MustCompile(`^[',\s]+|[',\s]+$`,
		regexp2.None)
	normUppercaseWords = regexp2.MustCompile(`\b(\p{Lu})(\p{Lu}{2,})\b`,
		regexp2.None)
	normWhitespace = regexp2.MustCompile(`(?:\\[nr]|\s)+`, regexp2.None)
	replUnderscore = regexp2.MustCompile(`_+`, regexp2.None)

	normBracketsOpen  = regexp2.MustCompile(`\s*([{(\[])\s*,?\s*`, regexp2.None)
	normBracketsClose = regexp2.MustCompile(`\s*,?\s*([})\]])\s*`, regexp2.None)
	normBracketsOpenStrong  = regexp2.MustCompile(`( ?[{\[] ?)+`, regexp2.None)
	normBracketsCloseStrong = regexp2.MustCompile(`( ?[}\]] ?)+`, regexp2.None)

	normAnd      = regexp2.MustCompile(`\b *(and|et|und|\+|,&) *\b`, regexp2.None)
	normSubgenus = regexp2.MustCompile(
		`(`+monomial+`) (`+monomial+`) (`+epithet+`)`, regexp2.None)
	noQMarks = regexp2.MustCompile(`([`+authorLcLetters+`])\?+`,
		regexp2.None)
	normPunctuations = regexp2.MustCompile(
		`\s*([.,;:&(){}\[\]-])\s*\1*\s*`, regexp2.None)
	normImprintYear = regexp2.MustCompile(`(`+yearLoose+`)\s*`+
		`([(\[,]? *(?:not|imprint)? *"?`+yearLoose+`"?[)\]]?)`,
		regexp2.None)

	// √ó shows up in data as an utf8 mangled hybrid sign
	normHybridsGenus = regexp2.MustCompile(
		`^\s*(?:[+×xX]|√ó)\s*([`+nameLetters+`])`, regexp2.None)
	normHybridsEpith = regexp2.MustCompile(
		`^\s*(×?`+monomial+`)\s+(?:×|√ó|[xX]\s)\s*(`+epithet+`)`,
		regexp2.None)
	normHybridsForm = regexp2.MustCompile(`\b([×xX]|√ó) `, regexp2.None)

	normTfGenus = regexp2.MustCompile(
		`^([`+nameLetters+`])\(([`+lowerLetters+`-]+)\)\.? `, regexp2.None)
	replInRef = regexp2.MustCompile(`[, ]?\b(?:in|IN) (`+authorTeam+`)`,
		regexp2.None)
	replRankPrefixes = regexp2.MustCompile(`^(sub)?(fossil|`+
		strings.Join(rank.MarkersSuprageneric(), "|")+`)\.?\s+`,
		regexp2.IgnoreCase)

	manuscriptNames = regexp2.MustCompile(
		`\b(indet|spp?)[. ](?:nov\.)?[A-Z0-9][a-zA-Z0-9-]*(?:\(.+?\))?`,
		regexp2.None)
	manuscriptSuffix = regexp2.MustCompile(`\bms\.?$`, regexp2.None)
	replAff          = regexp2.MustCompile(`\b(undet|indet|aff|cf)[?.]?\b`,
		regexp2.IgnoreCase)
	noLetters = regexp2.MustCompile(`^[^a-zA-Z]+$`, regexp2.None)

	removePlaceholderAuthor = regexp2.MustCompile(
		`\b(?:unknown|unspecified|uncertain|\?)[, ] ?(`+yearLoose+`)$`,
		regexp2.IgnoreCase)
	placeholderGenus = regexp2.MustCompile(
		`^(In|Dummy|Missing|Temp|Unknown|Unplaced|Unspecified) (?=[a-z]+)\b`,
		regexp2.None)
	removePlaceholderInfrageneric = regexp2.MustCompile(
		`\b\( ?`+placeholderName+` ?\) `, regexp2.IgnoreCase)
	placeholderPat = regexp2.MustCompile(`\b`+placeholderName+`\b`,
		regexp2.IgnoreCase)

	doubtfulChars = regexp2.MustCompile("^["+authorUcLetters+
		authorLcLetters+"×\":;&*+\\s,.()\\[\\]/'`´0-9-†]+$", regexp2.None)
	doubtfulNull = regexp2.MustCompile(`\bnull\b`, regexp2.None)

	xmlEntityStrip  = regexp2.MustCompile(`&\s*([a-z]+)\s*;`, regexp2.None)
	ampersandEntity = regexp2.MustCompile(`& *amp +`, regexp2.None)
	xmlTags         = regexp2.MustCompile(`< */? *[a-zA-Z] *>`, regexp2.None)

	startingEpithet = regexp2.MustCompile(`^\s*(`+epithet+`)\b`,
		regexp2.None)
	formSpecialis = regexp2.MustCompile(`\bf\. *sp(?:ec)?\b`, regexp2.None)
	sensuLatu     = regexp2.MustCompile(`\bs\.l\.\b`, regexp2.None)

	// names still using the outdated xxxtype markers, e.g. serotype
	// instead of serovar
	typeToVar = regexp2.MustCompile(
		`\b(patho|bio|chemo|morpho|phago|sero)type\b`, regexp2.None)

	potentialName = regexp2.MustCompile(`^×?`+monomial+`\b`, regexp2.None)

	// gardener's "hort. ex" spelled in lower case
	normExHort = regexp2.MustCompile(`\b(?:hort|cv)[. ]ex `,
		regexp2.IgnoreCase)
	authorInitialSwap = regexp2.MustCompile(`^([^,]+) *, *([^,]+)$`,
		regexp2.None)

	spacedAuthorTeam = regexp2.MustCompile(
		`^(\p{Lu}\p{Ll}+ \p{Lu}+)(?: (\p{Lu}\p{Ll}+ \p{Lu}+))*$`,
		regexp2.None)
	spacedAuthor = regexp2.MustCompile(`(\p{Lu}\p{Ll}+) (\p{Lu}+)`,
		regexp2.None)

	noteSeparators = regexp2.MustCompile(`([,;])(?! )`, regexp2.None)
	noteDots       = regexp2.MustCompile(
		`(?:\.(?=`+yearDigits+`)|(?<=\b[a-z]{2,})\.(?! ))`, regexp2.None)
)

// match reports whether a pattern occurs anywhere in the string.
func match(re *regexp2.Regexp, s string) bool {
	ok, err := re.MatchString(s)
	return err == nil && ok
}

func find(re *regexp2.Regexp, s string) *regexp2.Match {
	m, err := re.FindStringMatch(s)
	if err != nil {
		return nil
	}
	return m
}

func replAll(re *regexp2.Regexp, s, repl string) string {
	res, err := re.Replace(s, repl, -1, -1)
	if err != nil {
		return s
	}
	return res
}

func replFirst(re *regexp2.Regexp, s, repl string) string {
	res, err := re.Replace(s, repl, -1, 1)
	if err != nil {
		return s
	}
	return res
}

func group(m *regexp2.Match, num int) string {
	if m == nil {
		return ""
	}
	g := m.GroupByNumber(num)
	if g == nil {
		return ""
	}
	return g.String()
}
