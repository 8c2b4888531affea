package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds an identifier or document path to a comparable form:
// lower case, with separators ('_', '-', ' ', '.', '/', '@', '$') removed.
// CamelCase tags such as "k_points_IBZ" and "kPointsIbz" normalize alike.
func NormalizeIdent(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

func isSeparator(r rune) bool {
	switch r {
	case '_', '-', ' ', '.', '/', '@', '$':
		return true
	default:
		return false
	}
}
