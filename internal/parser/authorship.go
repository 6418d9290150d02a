package parser

import (
	"strings"

	"github.com/gnames/gnomen/ent/parsed"
)

// newAuthorship assembles one authorship group from raw captured
// strings.
func newAuthorship(ex, authors, year string) parsed.Authorship {
	var a parsed.Authorship
	if authors != "" {
		a.Authors = splitTeam(authors)
	}
	if ex != "" {
		a.ExAuthors = splitTeam(ex)
	}
	a.Year = cleanYear(year)
	return a
}

// cleanYear drops degenerate one or two character year captures.
func cleanYear(year string) string {
	year = strings.TrimSpace(year)
	if len(year) > 2 {
		return year
	}
	return ""
}

// splitTeam splits a raw author team into single normalized authors.
// Semicolon-delimited teams may keep a comma inside one author name
// in the "Lastname, Initials" order, which gets swapped.
func splitTeam(team string) []string {
	if strings.Contains(team, ";") {
		var authors []string
		for _, a := range strings.Split(team, ";") {
			a = strings.TrimSpace(a)
			if a == "" {
				continue
			}
			if m := find(authorInitialSwap, a); m != nil {
				authors = append(authors,
					normAuthor(group(m, 2)+" "+group(m, 1), true))
			} else {
				authors = append(authors, normAuthor(a, false))
			}
		}
		return authors
	}

	if strings.ContainsAny(team, ",&") {
		var authors []string
		for _, a := range strings.FieldsFunc(normAuthor(team, false),
			func(r rune) bool { return r == ',' || r == '&' }) {
			a = strings.TrimSpace(a)
			if a != "" {
				authors = append(authors, a)
			}
		}
		return authors
	}

	// space delimited teams with the initials at the end of each
	// author, e.g. "Balsamo M Fregni E Tongiorgi MA"
	if match(spacedAuthorTeam, team) {
		var authors []string
		for m := find(spacedAuthor, team); m != nil; {
			var sb strings.Builder
			for _, initial := range group(m, 2) {
				sb.WriteRune(initial)
				sb.WriteByte('.')
			}
			sb.WriteString(group(m, 1))
			authors = append(authors, sb.String())
			next, err := spacedAuthor.FindNextMatch(m)
			if err != nil {
				break
			}
			m = next
		}
		return authors
	}

	return []string{normAuthor(team, false)}
}

// normAuthor normalizes one author string, removing whitespace
// around punctuation per the IPNI standard author form.
func normAuthor(author string, normPunctuation bool) string {
	if normPunctuation {
		author = replAll(normPunctuations, author, "${1}")
	}
	return strings.TrimSpace(author)
}
