package lab

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// closest returns the candidate nearest to input by edit distance, if it is
// near enough to be a plausible typo.
func closest(input string, candidates []string) (string, bool) {
	in := strings.ToLower(strings.TrimSpace(input))
	if in == "" {
		return "", false
	}

	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(in, strings.ToLower(c))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || bestDist > maxTypoDistance(in) {
		return "", false
	}
	return best, true
}

func maxTypoDistance(s string) int {
	switch n := len(s); {
	case n < 3:
		return 0
	case n < 6:
		return 1
	default:
		return 2
	}
}

// sortedWords sorts words so ties in closest resolve the same way every run.
func sortedWords(words []string) []string {
	sort.Strings(words)
	return words
}
