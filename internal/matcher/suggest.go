package matcher

import "github.com/sahilm/fuzzy"

// Suggest returns up to limit names that contain token's characters in
// order, best match first. It is used to hint at alternatives for tokens
// that resolved to nothing.
func Suggest(token string, names []string, limit int) []string {
	if token == "" || limit <= 0 {
		return nil
	}

	matches := fuzzy.Find(token, names)
	if len(matches) == 0 {
		return nil
	}
	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}
	return out
}
