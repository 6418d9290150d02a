package parser

import (
	_ "embed"
	"strings"

	"github.com/dlclark/regexp2"
)

// Word endings typical for Latin epithets. They drive the heuristic
// that tells a bracketed subgenus apart from a basionym author when
// no rank is known. The list is curated, overly short endings like
// "es" are left out because they misfire on author surnames.
//
//go:embed latin-endings.txt
var latinEndingsTxt string

// DefaultLatinEndings returns the built-in Latin epithet endings.
func DefaultLatinEndings() []string {
	lines := strings.Split(strings.TrimSpace(latinEndingsTxt), "\n")
	res := lines[:0]
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l != "" {
			res = append(res, l)
		}
	}
	return res
}

func compileLatinEndings(endings []string) *regexp2.Regexp {
	if len(endings) == 0 {
		endings = DefaultLatinEndings()
	}
	return regexp2.MustCompile(
		"("+strings.Join(endings, "|")+")$", regexp2.None,
	)
}
