package scan

import (
	"sort"
	"strings"
)

// Normalize sorts tokens case-insensitively by text and collapses exact
// duplicates, keeping the line of first appearance. It is idempotent. An
// empty result is the "no tokens found" terminal state; callers skip the
// classification pipeline when they see it.
func Normalize(tokens []Token) []Token {
	first := make(map[string]int, len(tokens))
	for _, t := range tokens {
		if _, seen := first[t.Text]; !seen {
			first[t.Text] = t.Line
		}
	}

	out := make([]Token, 0, len(first))
	for text, line := range first {
		out = append(out, Token{Text: text, Line: line})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := strings.ToLower(out[i].Text), strings.ToLower(out[j].Text)
		if a == b {
			// Case-insensitive ties stay deterministic.
			return out[i].Text < out[j].Text
		}
		return a < b
	})
	return out
}
