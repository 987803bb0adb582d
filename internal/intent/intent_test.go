package intent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tayloree/shelfhelp/internal/intent"
)

func TestClassify_Categories(t *testing.T) {
	m := intent.Default()

	tests := []struct {
		input string
		want  intent.Category
	}{
		{"hello", intent.Greeting},
		{"Good Morning", intent.Greeting},
		{"what's up", intent.Greeting},
		{"thanks", intent.Thanks},
		{"THANK YOU", intent.Thanks},
		{"cheers", intent.Thanks},
		{"help", intent.Help},
		{"i need help", intent.Help},
		{"Can you help", intent.Help},
	}
	for _, tt := range tests {
		resp, ok := m.Classify(tt.input)
		require.True(t, ok, "Classify(%q)", tt.input)
		assert.Equal(t, tt.want, resp.Category, "Classify(%q)", tt.input)
		assert.NotEmpty(t, resp.Text)
	}
}

func TestClassify_NormalizesCaseAndOuterWhitespace(t *testing.T) {
	m := intent.Default()

	for _, input := range []string{"hello ", "HELLO", "  Hello\t"} {
		resp, ok := m.Classify(input)
		require.True(t, ok, "Classify(%q)", input)
		assert.Equal(t, intent.Greeting, resp.Category)
	}
}

func TestClassify_RequiresExactPhrase(t *testing.T) {
	m := intent.Default()

	for _, input := range []string{"hello there", "good  morning", "hi!", "", "   ", "I need apples"} {
		_, ok := m.Classify(input)
		assert.False(t, ok, "Classify(%q)", input)
	}
}

func TestClassify_PriorityOrder(t *testing.T) {
	m := intent.NewMatcher(
		intent.Table{"yo": "greeting reply"},
		intent.Table{"yo": "thanks reply", "ta": "thanks reply"},
		intent.Table{"ta": "help reply"},
	)

	resp, ok := m.Classify("yo")
	require.True(t, ok)
	assert.Equal(t, intent.Greeting, resp.Category)
	assert.Equal(t, "greeting reply", resp.Text)

	resp, ok = m.Classify("ta")
	require.True(t, ok)
	assert.Equal(t, intent.Thanks, resp.Category)
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "greeting", intent.Greeting.String())
	assert.Equal(t, "thanks", intent.Thanks.String())
	assert.Equal(t, "help", intent.Help.String())
	assert.Equal(t, "unknown", intent.Category(0).String())
}
