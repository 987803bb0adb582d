package assistant

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tayloree/shelfhelp/internal/matcher"
)

// Summary renders the chat reply for a resolved list: found items with
// their shelves, then the items that could not be located.
func Summary(items []matcher.ResolvedItem) string {
	found, missing := matcher.Counts(items)

	var b strings.Builder
	fmt.Fprintf(&b, "I found %d item(s) in our store:\n\n", found)
	for _, item := range items {
		if item.Found {
			fmt.Fprintf(&b, "• %s → Shelf %d\n", Capitalize(item.Product), item.Shelf)
		}
	}

	if missing > 0 {
		b.WriteString("\nSorry, I couldn't locate these items:\n")
		for _, item := range items {
			if !item.Found {
				fmt.Fprintf(&b, "• %s (not found)\n", Capitalize(item.Product))
			}
		}
	}
	return b.String()
}

// Stats summarizes a list as total, found and missing counts.
type Stats struct {
	Total   int `json:"total"`
	Found   int `json:"found"`
	Missing int `json:"missing"`
}

// ListStats counts items by outcome.
func ListStats(items []matcher.ResolvedItem) Stats {
	found, missing := matcher.Counts(items)
	return Stats{Total: len(items), Found: found, Missing: missing}
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
