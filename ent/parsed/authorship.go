package parsed

import "strings"

// Authorship keeps one authorship group of a name, either the
// combination authorship or the parenthesized basionym authorship.
type Authorship struct {
	// Authors are normalized author names in their original order.
	Authors []string
	// ExAuthors precede the "ex" in botanical citations.
	ExAuthors []string
	// Year is a 3 or 4 digit year, possibly with a suffix like
	// "1914a" or "1887?".
	Year string
}

// Exists reports whether the authorship carries any information.
func (a Authorship) Exists() bool {
	return len(a.Authors) > 0 || len(a.ExAuthors) > 0 || a.Year != ""
}

// String renders the authorship in citation order, ex-authors first.
func (a Authorship) String() string {
	var sb strings.Builder
	if len(a.ExAuthors) > 0 {
		sb.WriteString(joinAuthors(a.ExAuthors))
		sb.WriteString(" ex ")
	}
	sb.WriteString(joinAuthors(a.Authors))
	if a.Year != "" {
		if sb.Len() > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.Year)
	}
	return sb.String()
}

// joinAuthors joins author names with commas, the last one with an
// ampersand.
func joinAuthors(authors []string) string {
	switch {
	case len(authors) == 0:
		return ""
	case len(authors) == 1:
		return authors[0]
	default:
		last := len(authors) - 1
		return strings.Join(authors[:last], ", ") + " & " + authors[last]
	}
}
