// Package assistant runs the request cycle: intent check, product
// extraction and shelf resolution. Each call is a pure function of the input
// and the static catalog/tables; the shopping list lives in a caller-owned
// Session.
package assistant

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tayloree/shelfhelp/internal/catalog"
	"github.com/tayloree/shelfhelp/internal/intent"
	"github.com/tayloree/shelfhelp/internal/matcher"
)

// Kind tags the outcome of one request cycle.
type Kind int

const (
	// KindIntent is a canned greeting/thanks/help reply.
	KindIntent Kind = iota + 1
	// KindProducts carries a resolved item list.
	KindProducts
	// KindUnrecognized means no intent matched and nothing was extracted.
	KindUnrecognized
	// KindFailure means a collaborator failed and the cycle was recovered.
	KindFailure
)

func (k Kind) String() string {
	switch k {
	case KindIntent:
		return "intent"
	case KindProducts:
		return "products"
	case KindUnrecognized:
		return "unrecognized"
	case KindFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Reply is the renderable result of one request cycle.
type Reply struct {
	Kind     Kind
	Category intent.Category
	Text     string
	Items    []matcher.ResolvedItem
	// Hints maps unresolved product tokens to catalog names that look similar.
	Hints map[string][]string
}

// ProductExtractor turns free text into extracted names with provenance.
type ProductExtractor interface {
	ExtractMatches(text string) []matcher.Match
}

// Option configures an Assistant.
type Option func(*Assistant)

// WithLogger sets the logger used for per-request diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Assistant) { a.logger = l }
}

// WithIntents replaces the built-in intent tables.
func WithIntents(m *intent.Matcher) Option {
	return func(a *Assistant) { a.intents = m }
}

// WithExtractor replaces the catalog-backed extractor.
func WithExtractor(x ProductExtractor) Option {
	return func(a *Assistant) { a.extractor = x }
}

// WithHintLimit caps the number of hints per unresolved item; 0 disables hints.
func WithHintLimit(n int) Option {
	return func(a *Assistant) { a.hintLimit = n }
}

// Assistant answers one message at a time.
type Assistant struct {
	catalog   *catalog.Catalog
	names     []string
	intents   *intent.Matcher
	extractor ProductExtractor
	logger    zerolog.Logger
	hintLimit int
}

// New returns an assistant over c with the default intent tables and stopwords.
func New(c *catalog.Catalog, opts ...Option) *Assistant {
	a := &Assistant{
		catalog:   c,
		names:     c.Names(),
		intents:   intent.Default(),
		logger:    zerolog.Nop(),
		hintLimit: 3,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.extractor == nil {
		a.extractor = matcher.NewExtractor(c, nil)
	}
	return a
}

// Catalog returns the catalog the assistant resolves against.
func (a *Assistant) Catalog() *catalog.Catalog { return a.catalog }

// Respond classifies input and, when it is not a conversational intent,
// extracts and resolves products. It never panics: collaborator failures
// are logged and turned into a KindFailure reply.
func (a *Assistant) Respond(input string) (reply Reply) {
	log := a.logger.With().Str("request_id", uuid.NewString()).Logger()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("panic", fmt.Sprint(r)).Msg("request failed")
			reply = Reply{Kind: KindFailure, Text: ApologyMessage}
		}
	}()

	if resp, ok := a.intents.Classify(input); ok {
		log.Debug().Str("intent", resp.Category.String()).Msg("intent detected")
		return Reply{Kind: KindIntent, Category: resp.Category, Text: resp.Text}
	}

	matches := a.extractor.ExtractMatches(input)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if m.Kind == matcher.MatchFuzzy {
			log.Debug().Str("token", m.Token).Str("product", m.Name).Msg("fuzzy match")
		}
		names = append(names, m.Name)
	}
	log.Debug().Strs("products", names).Msg("extracted products")

	if len(names) == 0 {
		return Reply{Kind: KindUnrecognized, Text: UnrecognizedMessage}
	}

	items := matcher.Resolve(a.catalog, names)
	return Reply{
		Kind:  KindProducts,
		Text:  Summary(items),
		Items: items,
		Hints: a.hints(items),
	}
}

func (a *Assistant) hints(items []matcher.ResolvedItem) map[string][]string {
	if a.hintLimit <= 0 {
		return nil
	}
	var out map[string][]string
	for _, item := range items {
		if item.Found {
			continue
		}
		suggestions := matcher.Suggest(item.Product, a.names, a.hintLimit)
		if len(suggestions) == 0 {
			continue
		}
		if out == nil {
			out = make(map[string][]string)
		}
		out[item.Product] = suggestions
	}
	return out
}
