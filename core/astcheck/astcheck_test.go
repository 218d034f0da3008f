package astcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	src := `#!/bin/bash
VAR=foo
run_tool --flag "$VAR"
for item in a b c; do
  echo "$item" | grep x
done
deploy() {
  rsync -a src/ dst/
}
deploy
`
	tokens, declared, err := Extract("script.sh", src)
	require.NoError(t, err)

	var got []string
	for _, tok := range tokens {
		got = append(got, tok.Text)
	}
	assert.Equal(t, []string{"run_tool", "echo", "grep", "rsync", "deploy"}, got)

	for _, want := range []string{"VAR", "item", "deploy"} {
		assert.True(t, declared.Contains(want), "missing %q", want)
	}
}

func TestExtract_dynamicCommandsSkipped(t *testing.T) {
	src := "CMD=ls\n\"$CMD\" -la\n${TOOL}x now\n"

	tokens, _, err := Extract("script.sh", src)
	require.NoError(t, err)

	// Computed command names cannot be audited.
	assert.Empty(t, tokens)
}

func TestExtract_heredocBodyIgnored(t *testing.T) {
	src := "cat <<EOF\nls -la\nwget http://example.com\nEOF\n"

	tokens, _, err := Extract("script.sh", src)
	require.NoError(t, err)

	var got []string
	for _, tok := range tokens {
		got = append(got, tok.Text)
	}
	assert.Equal(t, []string{"cat"}, got)
}

func TestExtract_quotedWordsAreData(t *testing.T) {
	tokens, _, err := Extract("script.sh", "echo \"hello world\"\n")
	require.NoError(t, err)

	require.Len(t, tokens, 1)
	assert.Equal(t, "echo", tokens[0].Text)
	assert.Equal(t, 1, tokens[0].Line)
}

func TestExtract_syntaxError(t *testing.T) {
	_, _, err := Extract("bad.sh", "do\n")
	assert.Error(t, err)
}

func TestExtract_singleLettersDropped(t *testing.T) {
	tokens, _, err := Extract("script.sh", "w\nuptime\n")
	require.NoError(t, err)

	require.Len(t, tokens, 1)
	assert.Equal(t, "uptime", tokens[0].Text)
}
