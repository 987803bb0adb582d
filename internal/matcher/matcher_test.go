package matcher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tayloree/shelfhelp/internal/catalog"
	"github.com/tayloree/shelfhelp/internal/matcher"
)

func newExtractor() *matcher.Extractor {
	return matcher.NewExtractor(catalog.Default(), nil)
}

func TestDistance_KnownPairs(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"aples", "apple", 1},
		{"milk", "milk", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, matcher.Distance(tt.a, tt.b), "Distance(%q, %q)", tt.a, tt.b)
	}
}

func TestFuzzyMatch_CorrectsMisspelling(t *testing.T) {
	names := catalog.Default().Names()

	tests := []struct {
		word string
		want string
	}{
		{"aples", "apple"},
		{"chiken", "chicken"},
		{"bananna", "banana"},
		{"shampo", "shampoo"},
	}
	for _, tt := range tests {
		got, ok := matcher.FuzzyMatch(tt.word, names)
		require.True(t, ok, "FuzzyMatch(%q)", tt.word)
		assert.Equal(t, tt.want, got, "FuzzyMatch(%q)", tt.word)
	}
}

func TestFuzzyMatch_ShortWordsNeverMatch(t *testing.T) {
	for _, word := range []string{"", "a", "te", "ha"} {
		_, ok := matcher.FuzzyMatch(word, []string{word, "tea", "ham"})
		assert.False(t, ok, "FuzzyMatch(%q)", word)
	}
}

func TestFuzzyMatch_RespectsThreshold(t *testing.T) {
	_, ok := matcher.FuzzyMatch("abcdef", []string{"abcxyz"})
	assert.False(t, ok, "distance 3 exceeds floor(6/3)")

	got, ok := matcher.FuzzyMatch("abcdef", []string{"abcxyz", "abcdxy"})
	require.True(t, ok)
	assert.Equal(t, "abcdxy", got)

	_, ok = matcher.FuzzyMatch("xyz123", catalog.Default().Names())
	assert.False(t, ok)
}

func TestFuzzyMatch_FirstCandidateWinsTies(t *testing.T) {
	got, ok := matcher.FuzzyMatch("carx", []string{"cart", "card"})
	require.True(t, ok)
	assert.Equal(t, "cart", got)

	got, ok = matcher.FuzzyMatch("carx", []string{"card", "cart"})
	require.True(t, ok)
	assert.Equal(t, "card", got)
}

func TestFuzzyMatch_PrefersCloserOverEarlier(t *testing.T) {
	got, ok := matcher.FuzzyMatch("abcdef", []string{"abcdxy", "abcdex"})
	require.True(t, ok)
	assert.Equal(t, "abcdex", got)
}

func TestExtract_Scenarios(t *testing.T) {
	e := newExtractor()

	tests := []struct {
		input string
		want  []string
	}{
		{"I need toilet paper and rice", []string{"toilet paper", "rice"}},
		{"I need aples and milk", []string{"apple", "milk"}},
		{"xyz123", []string{"xyz123"}},
		{"Milk, bread, eggs!", []string{"milk", "bread", "eggs"}},
		{"frozen chicken and frozen fish", []string{"frozen chicken", "frozen fish"}},
		{"can I have a tuna can", []string{"tuna can"}},
		{"rice and ice cream", []string{"ice cream", "rice"}},
		{"apples", []string{"apples"}},
		{"a b c milk", []string{"milk"}},
		{"milk\u00a0bread", []string{"milk", "bread"}},
		{"milk\vbread", []string{"milk", "bread"}},
		{"milk\u2003bread\ufeffeggs", []string{"milk", "bread", "eggs"}},
		{"milk,,\t\nbread", []string{"milk", "bread"}},
		{"!!! ,,, ", nil},
		{"i need some", nil},
		{"", nil},
	}
	for _, tt := range tests {
		got := e.Extract(tt.input)
		if tt.want == nil {
			assert.Empty(t, got, "Extract(%q)", tt.input)
			continue
		}
		assert.Equal(t, tt.want, got, "Extract(%q)", tt.input)
	}
}

func TestExtract_CompoundsComeFirstInListOrder(t *testing.T) {
	e := newExtractor()

	got := e.Extract("milk, granola bars, olive oil and toilet paper")
	assert.Equal(t, []string{"toilet paper", "olive oil", "granola bars", "milk"}, got)
}

func TestExtract_SkipsTokensAlreadyCovered(t *testing.T) {
	e := newExtractor()

	assert.Equal(t, []string{"milk"}, e.Extract("milk milk"))
	assert.Equal(t, []string{"apple"}, e.Extract("aples apple"))
}

func TestExtract_OverlappingCompoundsAreAllKept(t *testing.T) {
	c, err := catalog.New([]catalog.Entry{
		{Name: "ice cream", Shelf: 9},
		{Name: "ice cream cake", Shelf: 9},
	}, nil)
	require.NoError(t, err)

	got := matcher.NewExtractor(c, nil).Extract("one ice cream cake please")
	assert.Equal(t, []string{"ice cream", "ice cream cake", "one", "please"}, got)
}

func TestExtract_ExactBeatsFuzzy(t *testing.T) {
	e := newExtractor()

	for _, name := range catalog.Default().Names() {
		if len(name) < 2 || containsSpace(name) || isStopword(name) {
			continue
		}
		got := e.Extract(name)
		require.NotEmpty(t, got, "Extract(%q)", name)
		assert.Equal(t, name, got[0], "Extract(%q)", name)
	}
}

func TestExtract_Idempotent(t *testing.T) {
	e := newExtractor()
	input := "I need aples, chiken and toilet paper"

	assert.Equal(t, e.Extract(input), e.Extract(input))
}

func TestExtractMatches_RecordsProvenance(t *testing.T) {
	e := newExtractor()

	got := e.ExtractMatches("olive oil, aples, milk and xyz123")
	require.Len(t, got, 4)
	assert.Equal(t, matcher.Match{Name: "olive oil", Token: "olive oil", Kind: matcher.MatchCompound}, got[0])
	assert.Equal(t, matcher.Match{Name: "apple", Token: "aples", Kind: matcher.MatchFuzzy}, got[1])
	assert.Equal(t, matcher.Match{Name: "milk", Token: "milk", Kind: matcher.MatchExact}, got[2])
	assert.Equal(t, matcher.Match{Name: "xyz123", Token: "xyz123", Kind: matcher.MatchUnknown}, got[3])
}

func TestNewExtractor_CustomStopwords(t *testing.T) {
	e := matcher.NewExtractor(catalog.Default(), []string{"PLEASE"})

	assert.Equal(t, []string{"milk"}, e.Extract("milk please"))
}

func TestResolve_OneToOneInOrder(t *testing.T) {
	items := matcher.Resolve(catalog.Default(), []string{"apple", "xyz123", "apple", "toilet paper"})

	assert.Equal(t, []matcher.ResolvedItem{
		{Product: "apple", Shelf: 1, Found: true},
		{Product: "xyz123", Shelf: 0, Found: false},
		{Product: "apple", Shelf: 1, Found: true},
		{Product: "toilet paper", Shelf: 5, Found: true},
	}, items)

	found, missing := matcher.Counts(items)
	assert.Equal(t, 3, found)
	assert.Equal(t, 1, missing)
}

func TestResolve_Empty(t *testing.T) {
	assert.Empty(t, matcher.Resolve(catalog.Default(), nil))
}

func TestSuggest(t *testing.T) {
	names := catalog.Default().Names()

	assert.Contains(t, matcher.Suggest("tpst", names, 3), "toothpaste")
	assert.Empty(t, matcher.Suggest("zzzq", names, 3))
	assert.Nil(t, matcher.Suggest("milk", names, 0))
	assert.Nil(t, matcher.Suggest("", names, 3))
	assert.LessOrEqual(t, len(matcher.Suggest("e", names, 2)), 2)
}

func TestMatchKind_String(t *testing.T) {
	assert.Equal(t, "compound", matcher.MatchCompound.String())
	assert.Equal(t, "fuzzy", matcher.MatchFuzzy.String())
	assert.Equal(t, "invalid", matcher.MatchKind(0).String())
}

func containsSpace(s string) bool {
	for _, r := range s {
		if r == ' ' {
			return true
		}
	}
	return false
}

func isStopword(s string) bool {
	for _, w := range matcher.DefaultStopwords() {
		if w == s {
			return true
		}
	}
	return false
}
