package matcher

import "github.com/hbollon/go-edlib"

// Distance returns the Levenshtein distance between a and b, counted in runes.
func Distance(a, b string) int {
	if a == b {
		return 0
	}
	return edlib.LevenshteinDistance(a, b)
}
