package parser

import (
	"html"
	"strings"
	"unicode"

	"github.com/dlclark/regexp2"
	"github.com/gnames/gnomen/ent/parsed"
	"github.com/gnames/gnomen/ent/rank"
)

// quote characters stripped from the edges of a raw name.
var edgeQuotes = []rune{'"', '\'', '“', '‘'}

// preClean does basic careful cleaning, trying to preserve all
// parsable name parts. It decodes HTML entities, drops XML tags,
// strips enclosing quotes and unifies apostrophes.
func (j *job) preClean(name string) string {
	// fix whitespace inside html entities before decoding
	name = replAll(xmlEntityStrip, name, "&${1};")
	unescaped := html.UnescapeString(name)
	if len(unescaped) < len(name) {
		j.pn.AddWarning(parsed.WarnHTMLEntities)
	}
	name = unescaped
	// badly formed ampersands missing the closing semicolon
	if match(ampersandEntity, name) {
		name = replAll(ampersandEntity, name, "&")
		j.pn.AddWarning(parsed.WarnHTMLEntities)
	}
	if match(xmlTags, name) {
		name = replAll(xmlTags, name, "")
		j.pn.AddWarning(parsed.WarnXMLTags)
	}

	name = strings.TrimSpace(name)
	// remove quotes at the beginning with their counterparts at the end
	for _, q := range edgeQuotes {
		rs := []rune(name)
		var idx int
		for idx < len(rs) && (rs[idx] == q || unicode.IsSpace(rs[idx])) {
			idx++
		}
		if idx == 0 || idx == len(rs) {
			continue
		}
		var end int
		for end < len(rs)-idx && rs[len(rs)-1-end] == q {
			end++
		}
		name = string(rs[idx : len(rs)-end])
	}
	name = replAll(normWhitespace, name, " ")
	name = replAll(normApostrophes, name, "'")
	return strings.TrimSpace(name)
}

// normalize carefully normalizes a name trying to keep the original
// as close as possible: two-dot rank idioms become compact tokens,
// imprint years vanish, punctuation loses adjacent whitespace,
// "and"/"et"/"und" unify to an ampersand, hybrid signs unify to the
// multiplication sign, and all-uppercase words get capitalized.
func (j *job) normalize(name string) string {
	// a misused inverted exclamation instead of the letter i
	name = strings.ReplaceAll(name, "¡", "i")

	name = replAll(formSpecialis, name, "fsp")
	name = replAll(sensuLatu, name, "sl")

	// imprint years repeat the real year in brackets, see ICZN 22A.2.3
	if match(normImprintYear, name) {
		name = replAll(normImprintYear, name, "${1}")
		j.pn.AddWarning(parsed.WarnImprintYear)
	}

	name = replAll(replUnderscore, name, " ")
	name = replAll(normPunctuations, name, "${1}")
	name = replAll(normAnd, name, "&")
	name = replFirst(commaAfterBasYear, name, "${1})")
	name = replAll(normBracketsOpen, name, "${1}")
	name = replAll(normBracketsClose, name, "${1}")
	name = replFirst(normHybridsGenus, name, "×${1}")
	name = replFirst(normHybridsEpith, name, "${1} ×${2}")
	name = replAll(normHybridsForm, name, " × ")
	name = capitalizeUpperWords(name)
	name = replAll(normWhitespace, name, " ")
	return strings.TrimSpace(name)
}

// normalizeStrong removes and rewrites more aggressively before the
// structural match: quotes unify and disappear, bracket variants all
// become parentheses, a placeholder "?" genus covers names starting
// with a bare epithet, and unmarked subgenera get their parentheses.
func (j *job) normalizeStrong(name string) string {
	name = replAll(normExHort, name, "hort.ex ")
	name = replAll(normQuotes, name, "'")
	name = replFirst(replGenusQuote, name, "${1} ")
	if match(replEnclosingQuote, name) {
		name = replAll(replEnclosingQuote, name, "")
		j.pn.AddWarning(parsed.WarnEnclosingQuotes)
	}

	// question marks after letters go away, after years they remain
	if match(noQMarks, name) {
		name = replAll(noQMarks, name, "${1}")
		j.pn.Doubtful = true
		j.pn.AddWarning(parsed.WarnQuestionMarks)
	}

	name = replAll(replRankPrefixes, name, "")
	// brackets inside the genus, the kind taxon finders produce
	name = replAll(normTfGenus, name, "${1}${2} ")
	name = replAll(normBracketsOpenStrong, name, "(")
	name = replAll(normBracketsCloseStrong, name, ")")

	if match(startingEpithet, name) {
		name = replFirst(startingEpithet, name, "? ${1}")
		j.pn.AddWarning(parsed.WarnMissingGenus)
	}

	// wrap an unmarked subgenus into parentheses, unless the third
	// word is a rank marker
	if m := find(normSubgenus, name); m != nil {
		if rank.InferMarker(group(m, 3)) == rank.Unranked {
			name = replAll(normSubgenus, name, "${1}(${2})${3}")
		}
	}

	name = replAll(normPunctuations, name, "${1}")
	name = replAll(normWhitespace, name, " ")
	return strings.TrimSpace(name)
}

// capitalizeUpperWords rewrites ABIES to Abies. Sources with
// uppercase-only authors are common.
func capitalizeUpperWords(name string) string {
	res, err := normUppercaseWords.ReplaceFunc(name,
		func(m regexp2.Match) string {
			return m.GroupByNumber(1).String() +
				strings.ToLower(m.GroupByNumber(2).String())
		}, -1, -1)
	if err != nil {
		return name
	}
	return res
}

// normNote cleans up spacing of an extracted note or reference.
func normNote(note string) string {
	note = replAll(noteSeparators, note, "${1} ")
	note = replAll(noteDots, note, ". ")
	note = strings.ReplaceAll(note, "&", " & ")
	note = replAll(normWhitespace, note, " ")
	return strings.TrimSpace(note)
}
