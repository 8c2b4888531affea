package match

import (
	"cmp"
	"slices"
	"strings"
)

// DefaultThreshold is the minimum similarity for a name to be suggested.
const DefaultThreshold = 0.6

// Candidate is a scored suggestion.
type Candidate struct {
	Name  string
	Score float64
}

// Rank scores every candidate against name and returns those at or above
// threshold, best first. Ties keep lexical order.
func Rank(name string, candidates []string, threshold float64) []Candidate {
	var ranked []Candidate

	for _, c := range candidates {
		score := Similarity(name, c)
		if score < threshold {
			continue
		}

		ranked = append(ranked, Candidate{Name: c, Score: score})
	}

	slices.SortFunc(ranked, func(a, b Candidate) int {
		if byScore := cmp.Compare(b.Score, a.Score); byScore != 0 {
			return byScore
		}

		return strings.Compare(a.Name, b.Name)
	})

	return ranked
}

// Suggest returns up to limit candidate names close to name.
func Suggest(name string, candidates []string, limit int) []string {
	ranked := Rank(name, candidates, DefaultThreshold)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	names := make([]string, 0, len(ranked))
	for _, c := range ranked {
		names = append(names, c.Name)
	}

	return names
}
