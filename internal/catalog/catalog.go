package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrEmptyName is returned when an entry has a blank product name.
	ErrEmptyName = errors.New("product name is empty")
	// ErrInvalidShelf is returned when an entry has a shelf number below 1.
	ErrInvalidShelf = errors.New("shelf number must be positive")
	// ErrDuplicateName is returned when two entries share a normalized name.
	ErrDuplicateName = errors.New("duplicate product name")
)

// Entry maps a lowercase product name to the shelf it lives on.
type Entry struct {
	Name  string `json:"name" yaml:"name" mapstructure:"name"`
	Shelf int    `json:"shelf" yaml:"shelf" mapstructure:"shelf"`
}

// Catalog is an immutable, ordered product-to-shelf table. Enumeration
// order is the order entries were supplied in, which keeps fuzzy tie-breaks
// deterministic.
type Catalog struct {
	entries   []Entry
	index     map[string]int
	compounds []string
	labels    map[int]string
}

// New validates entries and builds a catalog. Names are lowercased and
// trimmed. When compounds is nil, every multi-word product name is used as a
// compound phrase, in catalog order.
func New(entries []Entry, compounds []string) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}

	for i, e := range entries {
		name := NormalizeName(e.Name)
		if name == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyName)
		}
		if e.Shelf < 1 {
			return nil, fmt.Errorf("entry %q: %w (got %d)", name, ErrInvalidShelf, e.Shelf)
		}
		if _, ok := c.index[name]; ok {
			return nil, fmt.Errorf("entry %q: %w", name, ErrDuplicateName)
		}
		c.index[name] = e.Shelf
		c.entries = append(c.entries, Entry{Name: name, Shelf: e.Shelf})
	}

	if compounds == nil {
		for _, e := range c.entries {
			if strings.Contains(e.Name, " ") {
				c.compounds = append(c.compounds, e.Name)
			}
		}
		return c, nil
	}

	c.compounds = make([]string, 0, len(compounds))
	for _, phrase := range compounds {
		phrase = NormalizeName(phrase)
		if phrase == "" {
			continue
		}
		c.compounds = append(c.compounds, phrase)
	}
	return c, nil
}

// Lookup returns the shelf for name, if the catalog has it.
func (c *Catalog) Lookup(name string) (int, bool) {
	shelf, ok := c.index[name]
	return shelf, ok
}

// Contains reports whether name is a catalog key.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Names returns every product name in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}
	return names
}

// Compounds returns the multi-word phrases checked before tokenization.
func (c *Catalog) Compounds() []string {
	out := make([]string, len(c.compounds))
	copy(out, c.compounds)
	return out
}

// Len returns the number of product names.
func (c *Catalog) Len() int { return len(c.entries) }

// Shelf groups the product names stored on one shelf.
type Shelf struct {
	Number   int      `json:"shelf" yaml:"shelf"`
	Label    string   `json:"label,omitempty" yaml:"label,omitempty"`
	Products []string `json:"products" yaml:"products"`
}

// Shelves groups the catalog by shelf number, ascending. Products keep
// catalog order within a shelf.
func (c *Catalog) Shelves() []Shelf {
	byNumber := map[int]*Shelf{}
	for _, e := range c.entries {
		s, ok := byNumber[e.Shelf]
		if !ok {
			s = &Shelf{Number: e.Shelf, Label: c.labels[e.Shelf]}
			byNumber[e.Shelf] = s
		}
		s.Products = append(s.Products, e.Name)
	}

	out := make([]Shelf, 0, len(byNumber))
	for _, s := range byNumber {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// NormalizeName lowercases a product name and collapses inner whitespace.
func NormalizeName(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(raw)), " ")
}
