package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	in := []Token{
		{Text: "echo", Line: 5},
		{Text: "Zeta", Line: 1},
		{Text: "alpha", Line: 2},
		{Text: "echo", Line: 9},
	}

	got := Normalize(in)

	assert.Equal(t, []Token{
		{Text: "alpha", Line: 2},
		{Text: "echo", Line: 5}, // first appearance wins
		{Text: "Zeta", Line: 1},
	}, got)
}

func TestNormalize_idempotent(t *testing.T) {
	in := []Token{
		{Text: "wget", Line: 3},
		{Text: "curl", Line: 1},
		{Text: "wget", Line: 8},
	}

	once := Normalize(in)
	twice := Normalize(once)

	assert.Equal(t, once, twice)
}

func TestNormalize_empty(t *testing.T) {
	assert.Empty(t, Normalize(nil))
	assert.Empty(t, Normalize([]Token{}))
}

func TestNormalize_caseInsensitiveOrderCaseSensitiveIdentity(t *testing.T) {
	in := []Token{
		{Text: "Echo", Line: 2},
		{Text: "echo", Line: 1},
	}

	got := Normalize(in)

	// Both spellings survive; they are distinct names to the classifier.
	assert.Len(t, got, 2)
	assert.Equal(t, "Echo", got[0].Text)
	assert.Equal(t, "echo", got[1].Text)
}
