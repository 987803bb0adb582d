package matcher

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/tayloree/shelfhelp/internal/catalog"
)

var reNonWord = regexp.MustCompile(`[^\w\s]`)

// MatchKind records how an extracted name was produced.
type MatchKind int

const (
	// MatchCompound is a multi-word phrase found by substring containment.
	MatchCompound MatchKind = iota + 1
	// MatchExact is a token that is a catalog key.
	MatchExact
	// MatchFuzzy is a token corrected to the nearest catalog key.
	MatchFuzzy
	// MatchUnknown is a token kept as-is with no catalog match.
	MatchUnknown
)

func (k MatchKind) String() string {
	switch k {
	case MatchCompound:
		return "compound"
	case MatchExact:
		return "exact"
	case MatchFuzzy:
		return "fuzzy"
	case MatchUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// Match is one extracted name together with the token it came from.
type Match struct {
	Name  string
	Token string
	Kind  MatchKind
}

// Extractor pulls product names out of free text.
type Extractor struct {
	catalog   *catalog.Catalog
	names     []string
	compounds []string
	stopwords map[string]struct{}
}

// NewExtractor builds an extractor over c. A nil stopwords slice selects
// DefaultStopwords.
func NewExtractor(c *catalog.Catalog, stopwords []string) *Extractor {
	if stopwords == nil {
		stopwords = DefaultStopwords()
	}
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		set[strings.ToLower(w)] = struct{}{}
	}
	return &Extractor{
		catalog:   c,
		names:     c.Names(),
		compounds: c.Compounds(),
		stopwords: set,
	}
}

// Extract returns the extracted names in encounter order: compound phrases
// first, then word tokens left to right.
func (e *Extractor) Extract(text string) []string {
	matches := e.ExtractMatches(text)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Name
	}
	return out
}

// ExtractMatches is Extract with the provenance of every name.
func (e *Extractor) ExtractMatches(text string) []Match {
	lower := strings.ToLower(text)
	var out []Match

	for _, phrase := range e.compounds {
		if strings.Contains(lower, phrase) {
			out = append(out, Match{Name: phrase, Token: phrase, Kind: MatchCompound})
		}
	}

	for _, token := range e.tokens(lower) {
		clean := reNonWord.ReplaceAllString(token, "")
		if len(clean) < 2 {
			continue
		}
		if covered(out, clean) {
			continue
		}

		if e.catalog.Contains(clean) {
			out = append(out, Match{Name: clean, Token: clean, Kind: MatchExact})
			continue
		}
		if name, ok := FuzzyMatch(clean, e.names); ok {
			out = append(out, Match{Name: name, Token: clean, Kind: MatchFuzzy})
			continue
		}
		out = append(out, Match{Name: clean, Token: clean, Kind: MatchUnknown})
	}

	return out
}

// tokens splits on commas and Unicode whitespace (including NBSP and BOM)
// and drops stopwords. Stopwords are checked before punctuation is stripped.
func (e *Extractor) tokens(lower string) []string {
	parts := strings.FieldsFunc(lower, isSeparator)
	out := parts[:0]
	for _, p := range parts {
		if _, stop := e.stopwords[p]; stop {
			continue
		}
		out = append(out, p)
	}
	return out
}

func covered(matches []Match, token string) bool {
	for _, m := range matches {
		if strings.Contains(m.Name, token) {
			return true
		}
	}
	return false
}

func isSeparator(r rune) bool {
	return r == ',' || r == '\uFEFF' || unicode.IsSpace(r)
}
