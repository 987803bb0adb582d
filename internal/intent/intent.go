package intent

import "strings"

// Category is a conversational intent that is answered without a product lookup.
type Category int

const (
	Greeting Category = iota + 1
	Thanks
	Help
)

func (c Category) String() string {
	switch c {
	case Greeting:
		return "greeting"
	case Thanks:
		return "thanks"
	case Help:
		return "help"
	default:
		return "unknown"
	}
}

// Response is the canned reply for a matched phrase.
type Response struct {
	Category Category
	Text     string
}

// Table maps a normalized phrase to its reply text.
type Table map[string]string

type categoryTable struct {
	category Category
	phrases  Table
}

// Matcher classifies input against ordered intent tables. Earlier tables
// win when a phrase appears in more than one.
type Matcher struct {
	tables []categoryTable
}

// NewMatcher builds a matcher that checks greeting, then thanks, then help.
func NewMatcher(greetings, thanks, help Table) *Matcher {
	return &Matcher{tables: []categoryTable{
		{category: Greeting, phrases: greetings},
		{category: Thanks, phrases: thanks},
		{category: Help, phrases: help},
	}}
}

// Default returns a matcher over the built-in phrase tables.
func Default() *Matcher {
	return NewMatcher(greetingResponses, thanksResponses, helpResponses)
}

// Classify lowercases and trims input and looks it up exactly. Inner
// whitespace is not collapsed.
func (m *Matcher) Classify(input string) (Response, bool) {
	key := Normalize(input)
	for _, t := range m.tables {
		if text, ok := t.phrases[key]; ok {
			return Response{Category: t.category, Text: text}, true
		}
	}
	return Response{}, false
}

// Normalize is the key transformation applied before table lookup.
func Normalize(input string) string {
	return strings.TrimSpace(strings.ToLower(input))
}
