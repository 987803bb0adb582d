package assistant_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tayloree/shelfhelp/internal/assistant"
	"github.com/tayloree/shelfhelp/internal/catalog"
	"github.com/tayloree/shelfhelp/internal/intent"
	"github.com/tayloree/shelfhelp/internal/logging"
	"github.com/tayloree/shelfhelp/internal/matcher"
)

type panickingExtractor struct{}

func (panickingExtractor) ExtractMatches(string) []matcher.Match {
	panic("extractor exploded")
}

func TestRespond_Greeting(t *testing.T) {
	a := assistant.New(catalog.Default())

	reply := a.Respond("Hello ")
	assert.Equal(t, assistant.KindIntent, reply.Kind)
	assert.Equal(t, intent.Greeting, reply.Category)
	assert.Contains(t, reply.Text, "Welcome")
	assert.Empty(t, reply.Items)
}

func TestRespond_GreetingPrefixFallsThroughToProducts(t *testing.T) {
	a := assistant.New(catalog.Default())

	reply := a.Respond("hello there")
	assert.NotEqual(t, assistant.KindIntent, reply.Kind)
}

func TestRespond_FuzzyScenario(t *testing.T) {
	a := assistant.New(catalog.Default())

	reply := a.Respond("I need aples and milk")
	require.Equal(t, assistant.KindProducts, reply.Kind)
	assert.Equal(t, []matcher.ResolvedItem{
		{Product: "apple", Shelf: 1, Found: true},
		{Product: "milk", Shelf: 2, Found: true},
	}, reply.Items)
	assert.Equal(t, "I found 2 item(s) in our store:\n\n• Apple → Shelf 1\n• Milk → Shelf 2\n", reply.Text)
}

func TestRespond_UnresolvedScenario(t *testing.T) {
	a := assistant.New(catalog.Default())

	reply := a.Respond("xyz123")
	require.Equal(t, assistant.KindProducts, reply.Kind)
	assert.Equal(t, []matcher.ResolvedItem{{Product: "xyz123", Found: false}}, reply.Items)
	assert.Equal(t, assistant.Stats{Total: 1, Found: 0, Missing: 1}, assistant.ListStats(reply.Items))
	assert.Contains(t, reply.Text, "I found 0 item(s)")
	assert.Contains(t, reply.Text, "• Xyz123 (not found)")
}

func TestRespond_Unrecognized(t *testing.T) {
	a := assistant.New(catalog.Default())

	for _, input := range []string{"", "   ", "i need some", "!!!"} {
		reply := a.Respond(input)
		assert.Equal(t, assistant.KindUnrecognized, reply.Kind, "Respond(%q)", input)
		assert.Equal(t, assistant.UnrecognizedMessage, reply.Text)
	}
}

func TestRespond_HintsForUnresolvedItems(t *testing.T) {
	a := assistant.New(catalog.Default())

	reply := a.Respond("tpst")
	require.Equal(t, assistant.KindProducts, reply.Kind)
	assert.Contains(t, reply.Hints["tpst"], "toothpaste")

	noHints := assistant.New(catalog.Default(), assistant.WithHintLimit(0)).Respond("tpst")
	assert.Nil(t, noHints.Hints)
}

func TestRespond_RecoversFromPanics(t *testing.T) {
	var logs bytes.Buffer
	a := assistant.New(
		catalog.Default(),
		assistant.WithExtractor(panickingExtractor{}),
		assistant.WithLogger(logging.New(logging.Options{Level: "error", Format: "json", Output: &logs})),
	)

	reply := a.Respond("milk")
	assert.Equal(t, assistant.KindFailure, reply.Kind)
	assert.Equal(t, assistant.ApologyMessage, reply.Text)
	assert.Contains(t, logs.String(), "extractor exploded")
	assert.Contains(t, logs.String(), "request_id")

	// Intents are still answered before extraction runs.
	assert.Equal(t, assistant.KindIntent, a.Respond("thanks").Kind)
}

func TestRespond_LogsFuzzyCorrections(t *testing.T) {
	var logs bytes.Buffer
	a := assistant.New(
		catalog.Default(),
		assistant.WithLogger(logging.New(logging.Options{Level: "debug", Format: "json", Output: &logs})),
	)

	a.Respond("aples")
	assert.Contains(t, logs.String(), `"token":"aples"`)
	assert.Contains(t, logs.String(), `"product":"apple"`)
}

func TestRespond_CustomIntents(t *testing.T) {
	a := assistant.New(catalog.Default(), assistant.WithIntents(intent.NewMatcher(
		intent.Table{"ahoy": "Ahoy!"}, nil, nil,
	)))

	assert.Equal(t, "Ahoy!", a.Respond("AHOY").Text)
	assert.Equal(t, assistant.KindProducts, a.Respond("hello").Kind)
}

func TestRespond_Idempotent(t *testing.T) {
	a := assistant.New(catalog.Default())
	input := "I need toilet paper, bred and xyz123"

	assert.Equal(t, a.Respond(input), a.Respond(input))
}

func TestRespond_ConcurrentCallsAreIndependent(t *testing.T) {
	a := assistant.New(catalog.Default())
	want := a.Respond("I need toilet paper and rice")

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, a.Respond("I need toilet paper and rice"))
		}()
	}
	wg.Wait()
}

func TestSummary_FoundThenMissing(t *testing.T) {
	text := assistant.Summary([]matcher.ResolvedItem{
		{Product: "xyz", Found: false},
		{Product: "toilet paper", Shelf: 5, Found: true},
	})

	assert.Equal(t,
		"I found 1 item(s) in our store:\n\n• Toilet paper → Shelf 5\n\nSorry, I couldn't locate these items:\n• Xyz (not found)\n",
		text,
	)
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Apple", assistant.Capitalize("apple"))
	assert.Equal(t, "Ice cream", assistant.Capitalize("ice cream"))
	assert.Equal(t, "", assistant.Capitalize(""))
	assert.Equal(t, "Éclair", assistant.Capitalize("éclair"))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "products", assistant.KindProducts.String())
	assert.Equal(t, "unknown", assistant.Kind(0).String())
}
