package matcher

var defaultStopwords = []string{
	"i", "need", "want", "to", "buy", "and", "the", "some", "a", "an",
	"can", "you", "help", "me", "find", "where", "is", "are", "do", "have",
}

// DefaultStopwords returns the words never treated as product tokens.
func DefaultStopwords() []string {
	out := make([]string, len(defaultStopwords))
	copy(out, defaultStopwords)
	return out
}
