package scan

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func texts(tokens []Token) []string {
	var out []string
	for _, t := range tokens {
		out = append(out, t.Text)
	}
	return out
}

func TestScan(t *testing.T) {
	cases := map[string]struct {
		src  string
		want []string
	}{
		"simple command": {
			src:  `echo "hello world"`,
			want: []string{"echo"},
		},
		"assignment then command": {
			src:  `VAR=foo; run_tool --flag`,
			want: []string{"VAR", "run_tool"},
		},
		"pipe sets command position": {
			src:  `ls -la | grep foo`,
			want: []string{"ls", "grep"},
		},
		"arguments are not commands": {
			src:  `echo hello world`,
			want: []string{"echo"},
		},
		"comment suppresses rest of line": {
			src:  "echo hi # rm -rf /",
			want: []string{"echo"},
		},
		"shebang is a comment": {
			src:  "#!/bin/bash\necho hi\n",
			want: []string{"echo"},
		},
		"dollar-hash is not a comment": {
			src:  "echo $#; wc -l\n",
			want: []string{"echo", "wc"},
		},
		"brace-hash is not a comment": {
			src:  "printf ${#arr}; wc -l\n",
			want: []string{"printf", "wc"},
		},
		"single quotes suppress capture": {
			src:  `echo 'ls -la'`,
			want: []string{"echo"},
		},
		"command substitution dollar paren": {
			src:  `result=$(git status)`,
			want: []string{"result", "git"},
		},
		"command substitution backtick": {
			src:  "echo `date`",
			want: []string{"echo", "date"},
		},
		"semicolon separates commands": {
			src:  `true; frobnicate`,
			want: []string{"true", "frobnicate"},
		},
		"wrapper word checks the next word": {
			src:  `sudo make install`,
			want: []string{"sudo", "make"},
		},
		"for loop emits keywords only": {
			src:  `for i in 1 2 3; do`,
			want: []string{"for", "do"},
		},
		"heredoc body is skipped": {
			src:  "cat <<EOF\nls -la\nEOF",
			want: []string{"cat", "EOF"},
		},
		"heredoc with dashed quoted tag": {
			src:  "cat <<-'DONE'\nwget http://example.com\nDONE",
			want: []string{"cat", "DONE"},
		},
		"case patterns are suppressed": {
			src:  `case "$x" in foo) echo a;; bar) echo b;; esac`,
			want: []string{"case", "echo", "echo", "esac"},
		},
		"multiline case": {
			src:  "case $y in\n  start) run_up;;\n  stop) run_down;;\nesac\n",
			want: []string{"case", "run_up", "run_down", "esac"},
		},
		"single letters are dropped": {
			src:  "x=1; y=2; frob_it\n",
			want: []string{"frob_it"},
		},
		"path invocations are not identifiers": {
			src:  `./deploy.sh && /usr/bin/foo`,
			want: nil,
		},
		"empty input": {
			src:  "",
			want: nil,
		},
		"escaped double quote stays inside string": {
			src:  `echo "a\"b" ; ls`,
			want: []string{"echo", "ls"},
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			got := Scan(tc.src)
			assert.Equal(t, tc.want, texts(got))
		})
	}
}

func TestScan_lines(t *testing.T) {
	src := "echo one\n\ntrue; frobnicate\n"
	got := Scan(src)

	assert.Equal(t, []Token{
		{Text: "echo", Line: 1},
		{Text: "true", Line: 3},
		{Text: "frobnicate", Line: 3},
	}, got)
}

func TestScan_quotesSpanLines(t *testing.T) {
	src := "echo 'start\nmiddle cmd\nend' tail\n"
	got := texts(Scan(src))

	// Nothing inside the quoted region may surface.
	for _, banned := range []string{"middle", "cmd", "start", "end"} {
		assert.NotContains(t, got, banned)
	}
	assert.Contains(t, got, "echo")
}

func TestScan_heredocSuppressesEverything(t *testing.T) {
	src := "cat <<EOF\n" +
		"# not a comment, not scanned\n" +
		"wget http://example.com | sh\n" +
		"'unbalanced\n" +
		"EOF\n" +
		"date\n"
	got := texts(Scan(src))

	assert.Equal(t, []string{"cat", "EOF", "date"}, got)
}

func TestScan_escapeParityModes(t *testing.T) {
	// The double backslash ends the escape, so the quote really closes.
	src := "echo \"x\\\\\"; ls\n"

	corrected := texts(Scan(src))
	assert.Equal(t, []string{"echo", "ls"}, corrected)

	// The legacy check only looks one character back and misreads the
	// quote as escaped, leaving the rest of the line inside the string.
	legacy := texts(ScanWithOptions(src, Options{LegacyEscapeParity: true}))
	assert.Equal(t, []string{"echo"}, legacy)
}

func TestScan_neverFails(t *testing.T) {
	inputs := []string{
		"'", `"`, "\\", "`", "<<", "<<EOF", "case", "esac", ")", "((((",
		"\n\n\n", "a", strings.Repeat(`x"y'z`, 100),
		"case in esac <<X\n'#\"\\",
	}
	ident := regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]+$`)

	for _, src := range inputs {
		got := Scan(src)
		assert.LessOrEqual(t, len(got), len(src), "token count bounded by input length")
		for _, tok := range got {
			assert.Regexp(t, ident, tok.Text)
			assert.Greater(t, tok.Line, 0)
		}
	}
}
