package matcher

import "unicode/utf8"

// MinFuzzyLength is the shortest word FuzzyMatch will try to correct.
const MinFuzzyLength = 3

// MaxDistance is the edit tolerance for a word: one edit per three runes.
func MaxDistance(word string) int {
	return utf8.RuneCountInString(word) / 3
}

// FuzzyMatch returns the candidate closest to word within MaxDistance(word).
// Ties go to the candidate that comes first, so callers must pass candidates
// in a stable order.
func FuzzyMatch(word string, candidates []string) (string, bool) {
	wordLen := utf8.RuneCountInString(word)
	if wordLen < MinFuzzyLength {
		return "", false
	}

	maxDistance := wordLen / 3
	best := ""
	bestDist := maxDistance + 1

	for _, candidate := range candidates {
		// The length gap is a lower bound on the distance.
		if absInt(utf8.RuneCountInString(candidate)-wordLen) >= bestDist {
			continue
		}
		d := Distance(word, candidate)
		if d < bestDist {
			bestDist = d
			best = candidate
		}
	}

	if bestDist <= maxDistance {
		return best, true
	}
	return "", false
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
