package export

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tayloree/shelfhelp/internal/assistant"
	"github.com/tayloree/shelfhelp/internal/matcher"
)

// ShelfGroup lists the found products that share a shelf.
type ShelfGroup struct {
	Shelf    int      `json:"shelf" yaml:"shelf"`
	Products []string `json:"products" yaml:"products"`
}

// ShelfPlan groups found items by shelf, ascending, so a shopper can walk
// the store in order. Missing items are left out.
func ShelfPlan(items []matcher.ResolvedItem) []ShelfGroup {
	byShelf := map[int][]string{}
	for _, item := range items {
		if !item.Found {
			continue
		}
		byShelf[item.Shelf] = append(byShelf[item.Shelf], item.Product)
	}

	out := make([]ShelfGroup, 0, len(byShelf))
	for shelf, products := range byShelf {
		out = append(out, ShelfGroup{Shelf: shelf, Products: products})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Shelf < out[j].Shelf })
	return out
}

// PrintView renders a printable page: timestamp, one row per item, then
// the shelf walk order.
func PrintView(items []matcher.ResolvedItem, now time.Time) (string, error) {
	if len(items) == 0 {
		return "", ErrEmptyList
	}

	width := 0
	for _, item := range items {
		if n := len(item.Product); n > width {
			width = n
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generated: %s\n", now.Format(TimestampLayout))
	b.WriteString(strings.Repeat("-", width+14) + "\n")
	for _, item := range items {
		status := "Not Found"
		if item.Found {
			status = fmt.Sprintf("Shelf %d", item.Shelf)
		}
		fmt.Fprintf(&b, "%-*s  %s\n", width, assistant.Capitalize(item.Product), status)
	}

	plan := ShelfPlan(items)
	if len(plan) > 0 {
		b.WriteString("\nRoute:\n")
		for _, group := range plan {
			names := make([]string, len(group.Products))
			for i, p := range group.Products {
				names[i] = assistant.Capitalize(p)
			}
			fmt.Fprintf(&b, "  Shelf %d: %s\n", group.Shelf, strings.Join(names, ", "))
		}
	}
	return b.String(), nil
}
