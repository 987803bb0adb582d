package matcher

import "github.com/tayloree/shelfhelp/internal/catalog"

// ResolvedItem is an extracted name paired with its shelf outcome. Shelf is
// zero when Found is false.
type ResolvedItem struct {
	Product string
	Shelf   int
	Found   bool
}

// Resolve looks up every name in c, one result per name in input order.
// Repeated names produce repeated items.
func Resolve(c *catalog.Catalog, names []string) []ResolvedItem {
	out := make([]ResolvedItem, 0, len(names))
	for _, name := range names {
		shelf, ok := c.Lookup(name)
		out = append(out, ResolvedItem{Product: name, Shelf: shelf, Found: ok})
	}
	return out
}

// Counts returns how many items were found and how many were not.
func Counts(items []ResolvedItem) (found, missing int) {
	for _, item := range items {
		if item.Found {
			found++
		} else {
			missing++
		}
	}
	return found, missing
}
