package match

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
)

// MinSimilarity is the score a candidate needs to be suggested.
const MinSimilarity = 0.5

// Fold lowercases s and drops separators, so "Level_0", "level-0" and
// "Level0" compare equal.
func Fold(s string) string {
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
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}

// Closest returns up to limit candidates similar to name, best first. Ties
// keep candidate order. A candidate equal to name is never suggested.
func Closest(name string, candidates []string, limit int) []string {
	type scored struct {
		name  string
		score float64
	}

	var hits []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		if s := Similarity(name, c); s >= MinSimilarity {
			hits = append(hits, scored{name: c, score: s})
		}
	}

	slices.SortStableFunc(hits, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})

	out := make([]string, 0, min(limit, len(hits)))
	for _, h := range hits {
		if len(out) == limit {
			break
		}

		if !slices.Contains(out, h.name) {
			out = append(out, h.name)
		}
	}

	return out
}
