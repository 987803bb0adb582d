package matcher_test

import (
	"math/rand"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/tayloree/shelfhelp/internal/catalog"
	"github.com/tayloree/shelfhelp/internal/matcher"
)

func referenceLevenshtein(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func referenceFuzzyMatch(word string, candidates []string) (string, bool) {
	if len(word) < 3 {
		return "", false
	}
	maxDistance := len(word) / 3
	best := ""
	bestDist := -1
	for _, c := range candidates {
		d := referenceLevenshtein(word, c)
		if d <= maxDistance && (bestDist < 0 || d < bestDist) {
			bestDist = d
			best = c
		}
	}
	return best, bestDist >= 0
}

func randomWord(rng *rand.Rand, maxLen int) string {
	const alphabet = "abcdeilmnoprst"
	n := rng.Intn(maxLen + 1)
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(buf)
}

func TestDistance_ReferenceEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for caseNum := 0; caseNum < 500; caseNum++ {
		a := randomWord(rng, 12)
		b := randomWord(rng, 12)

		got := matcher.Distance(a, b)
		assert.Equal(t, referenceLevenshtein(a, b), got, "Distance(%q, %q) case=%d", a, b, caseNum)
		assert.Equal(t, got, matcher.Distance(b, a), "symmetry for %q, %q", a, b)
		assert.Equal(t, 0, matcher.Distance(a, a), "identity for %q", a)
		assert.Equal(t, utf8.RuneCountInString(a), matcher.Distance("", a), "empty for %q", a)
	}
}

func TestFuzzyMatch_ReferenceEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	names := catalog.Default().Names()

	for caseNum := 0; caseNum < 500; caseNum++ {
		word := randomWord(rng, 10)
		if rng.Intn(2) == 0 {
			// Mutate a real name so matches are common.
			base := []byte(names[rng.Intn(len(names))])
			if len(base) > 0 {
				base[rng.Intn(len(base))] = "xyz"[rng.Intn(3)]
			}
			word = string(base)
		}

		got, gotOK := matcher.FuzzyMatch(word, names)
		want, wantOK := referenceFuzzyMatch(word, names)

		assert.Equal(t, wantOK, gotOK, "FuzzyMatch(%q) case=%d", word, caseNum)
		assert.Equal(t, want, got, "FuzzyMatch(%q) case=%d", word, caseNum)
		if gotOK {
			assert.LessOrEqual(t, matcher.Distance(word, got), matcher.MaxDistance(word))
		}
	}
}

func BenchmarkExtract_LongMessage(b *testing.B) {
	e := matcher.NewExtractor(catalog.Default(), nil)
	input := "I need aples, bananna, chiken, toilet paper, olive oil, milk, bred, cofee and some granola bars"

	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		_ = e.Extract(input)
	}
}
