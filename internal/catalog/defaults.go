package catalog

var defaultEntries = []Entry{
	// Fresh produce
	{"apple", 1}, {"apples", 1}, {"banana", 1}, {"bananas", 1}, {"orange", 1}, {"oranges", 1},
	{"tomato", 1}, {"tomatoes", 1}, {"potato", 1}, {"potatoes", 1}, {"onion", 1}, {"onions", 1},
	{"carrot", 1}, {"carrots", 1}, {"lettuce", 1}, {"spinach", 1},

	// Dairy
	{"milk", 2}, {"cheese", 2}, {"butter", 2}, {"yogurt", 2}, {"yoghurt", 2}, {"cream", 2},
	{"egg", 2}, {"eggs", 2},

	// Bakery
	{"bread", 3}, {"cake", 3}, {"cookies", 3}, {"biscuits", 3}, {"muffin", 3}, {"muffins", 3},
	{"bagel", 3}, {"bagels", 3}, {"croissant", 3}, {"croissants", 3},

	// Meat & seafood
	{"chicken", 4}, {"beef", 4}, {"pork", 4}, {"fish", 4}, {"salmon", 4}, {"tuna", 4},
	{"shrimp", 4}, {"prawns", 4}, {"turkey", 4}, {"ham", 4},

	// Cleaning supplies
	{"detergent", 5}, {"soap", 5}, {"shampoo", 5}, {"toothpaste", 5}, {"tissue", 5}, {"tissues", 5},
	{"toilet paper", 5}, {"paper towels", 5}, {"bleach", 5}, {"dishwasher", 5},

	// Pantry
	{"rice", 6}, {"pasta", 6}, {"flour", 6}, {"sugar", 6}, {"salt", 6}, {"pepper", 6},
	{"oil", 6}, {"olive oil", 6}, {"vinegar", 6}, {"honey", 6},

	// Canned goods
	{"beans", 7}, {"soup", 7}, {"tomato sauce", 7}, {"corn", 7}, {"tuna can", 7},
	{"peas", 7}, {"mushrooms", 7}, {"pickles", 7},

	// Beverages
	{"water", 8}, {"juice", 8}, {"soda", 8}, {"cola", 8}, {"beer", 8}, {"wine", 8},
	{"coffee", 8}, {"tea", 8}, {"energy drink", 8},

	// Frozen
	{"ice cream", 9}, {"frozen pizza", 9}, {"frozen vegetables", 9}, {"frozen fruit", 9},
	{"frozen chicken", 9}, {"frozen fish", 9}, {"frozen dinner", 9},

	// Snacks
	{"chips", 10}, {"chocolate", 10}, {"candy", 10}, {"nuts", 10}, {"crackers", 10},
	{"popcorn", 10}, {"pretzels", 10}, {"granola bars", 10},
}

var defaultCompounds = []string{
	"toilet paper", "paper towels", "olive oil", "tomato sauce",
	"energy drink", "ice cream", "frozen pizza", "frozen vegetables",
	"frozen fruit", "frozen chicken", "frozen fish", "frozen dinner",
	"granola bars", "tuna can",
}

var defaultShelfLabels = map[int]string{
	1:  "Fresh Produce",
	2:  "Dairy",
	3:  "Bakery",
	4:  "Meat & Seafood",
	5:  "Cleaning Supplies",
	6:  "Pantry",
	7:  "Canned Goods",
	8:  "Beverages",
	9:  "Frozen Foods",
	10: "Snacks",
}

// DefaultEntries returns a copy of the built-in store layout.
func DefaultEntries() []Entry {
	out := make([]Entry, len(defaultEntries))
	copy(out, defaultEntries)
	return out
}

// DefaultCompounds returns a copy of the built-in compound phrase list.
func DefaultCompounds() []string {
	out := make([]string, len(defaultCompounds))
	copy(out, defaultCompounds)
	return out
}

// Default returns the built-in catalog with shelf labels.
func Default() *Catalog {
	c, err := New(defaultEntries, defaultCompounds)
	if err != nil {
		panic("catalog: invalid built-in entries: " + err.Error())
	}
	c.labels = defaultShelfLabels
	return c
}
