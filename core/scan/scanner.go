// Package scan extracts candidate command names from shell script text.
//
// The scanner is a single-pass, character-level state machine. It tracks
// quoting, comments, here-documents and case patterns well enough to pick
// out the words that sit in command position, but it is deliberately not a
// shell parser: a fixed set of approximations is part of its contract and
// the tests pin their behavior, warts included.
package scan

import (
	"regexp"
	"strings"
)

// Token is a word captured in command position, annotated with the 1-based
// line it appeared on.
type Token struct {
	Text string `json:"text"`
	Line int    `json:"line"`
}

// Options adjust scanner heuristics.
type Options struct {
	// LegacyEscapeParity restores the historical quote-escape check that
	// only inspects the single character before a quote. Under it the
	// sequence backslash-backslash-quote is misread as an escaped quote
	// even though the first backslash consumes the second. The default
	// check counts the whole backslash run.
	LegacyEscapeParity bool
}

// wrapperWords run their next argument as a command, so the word after one
// is still checked even though it isn't in command position itself.
var wrapperWords = map[string]bool{
	"sudo":    true,
	"doas":    true,
	"time":    true,
	"nice":    true,
	"nohup":   true,
	"env":     true,
	"exec":    true,
	"command": true,
	"builtin": true,
	"xargs":   true,
}

// heredocOpen spots a here-document redirect with a fixed terminator word.
var heredocOpen = regexp.MustCompile(`<<-?[ \t]*\\?['"]?([A-Za-z_][A-Za-z0-9_]*)`)

// scanState is the mutable state threaded through one character walk.
// Exactly one exists per scan and nothing outside the scanner touches it.
type scanState struct {
	src   string
	index *lineIndex
	opts  Options

	line int // 0-based

	comment bool
	single  bool
	double  bool

	heredoc    bool
	heredocTag string
	pendingTag string // becomes heredocTag at the next newline

	inCase      bool
	pastPattern bool

	possibleCmd  bool
	afterWrapper bool
	firstOnLine  bool

	token     strings.Builder
	tokenLine int

	out []Token
}

// Scan walks src one character at a time and returns the words found in
// command position, in source order with duplicates preserved. It never
// fails: malformed input yields a best-effort, possibly empty, sequence.
func Scan(src string) []Token {
	return ScanWithOptions(src, Options{})
}

// ScanWithOptions is Scan with explicit heuristics options.
func ScanWithOptions(src string, opts Options) []Token {
	s := &scanState{
		src:         src,
		index:       newLineIndex(src),
		opts:        opts,
		firstOnLine: true,
	}

	for i := 0; i < len(src); i++ {
		if i == 0 || src[i-1] == '\n' {
			if s.startLine() {
				// Inside a here-document body: drop the whole line.
				if end := s.index.end(s.line); end > i {
					i = end - 1 // resume at the newline
					continue
				}
			}
		}

		c := src[i]

		if c == '\n' {
			s.endLine(i)
			continue
		}
		if s.comment {
			continue
		}

		if s.token.Len() > 0 {
			if isIdentChar(c) {
				s.token.WriteByte(c)
				continue
			}
			s.finishToken(i)
			// fall through: c still needs handling below
		}

		switch {
		case c == '#' && !s.single && !s.double:
			// $# and ${# are substitutions, not comment openers.
			if i == 0 || (src[i-1] != '$' && src[i-1] != '{') {
				s.comment = true
			}
		case c == '\'' && !s.double:
			if !s.escaped(i) {
				s.single = !s.single
			}
		case c == '"' && !s.single:
			if !s.escaped(i) {
				s.double = !s.double
			}
		case s.single || s.double:
			// String contents never produce tokens.
		case c == ';':
			s.possibleCmd = true
			if s.inCase {
				// The next word opens a fresh case pattern.
				s.pastPattern = false
			}
		case c == ' ' && i > 0 && src[i-1] == '|':
			s.possibleCmd = true
		case c == '(' && i > 0 && src[i-1] == '$':
			s.possibleCmd = true
		case c == '`':
			s.possibleCmd = true
		case c == ')' && s.inCase:
			s.pastPattern = true
			s.possibleCmd = true
		case isAlpha(c) && (s.possibleCmd || s.afterWrapper || s.firstOnLine):
			if i == 0 || !disqualifiesStart(src[i-1]) {
				s.token.WriteByte(c)
				s.tokenLine = s.line + 1
			}
		}
	}

	if s.token.Len() > 0 {
		s.finishToken(len(src))
	}
	return s.out
}

// startLine runs the once-per-line lookahead. It reports whether the line
// is here-document body text that must be skipped entirely.
func (s *scanState) startLine() (skip bool) {
	line := s.index.text(s.line)
	if s.heredoc {
		// A line beginning with the terminator closes the heredoc and is
		// scanned normally. Text after the terminator on the same line is
		// not validated; interpolated content that happens to look like
		// the terminator can end the block early.
		if strings.HasPrefix(line, s.heredocTag) {
			s.heredoc = false
			return false
		}
		return true
	}
	if m := heredocOpen.FindStringSubmatch(line); m != nil {
		s.pendingTag = m[1]
	}
	return false
}

// endLine finishes any open token, advances the line counter and resets
// the per-line flags. Quote flags persist: strings may span lines.
func (s *scanState) endLine(i int) {
	if s.token.Len() > 0 {
		s.finishToken(i)
	}
	s.line++
	s.comment = false
	s.possibleCmd = false
	s.pastPattern = false
	s.firstOnLine = true
	if s.pendingTag != "" {
		s.heredoc = true
		s.heredocTag = s.pendingTag
		s.pendingTag = ""
	}
}

// finishToken completes the in-progress token ending right before offset i.
func (s *scanState) finishToken(i int) {
	text := s.token.String()
	s.token.Reset()
	s.possibleCmd = false
	s.firstOnLine = false

	if len(text) <= 1 {
		// Single letters are mostly loop variables; drop them.
		s.afterWrapper = false
		return
	}

	switch text {
	case "case":
		s.inCase = true
	case "esac":
		// esac always closes the block and is always reported, even when
		// it sits left of a paren on its line.
		s.inCase = false
	}

	// Words before the first close paren of a case line are patterns, not
	// commands. Without a paren on the line the pattern leaks through.
	suppress := s.inCase && text != "case" && !s.pastPattern &&
		strings.Contains(s.restOfLine(i), ")")
	if !suppress {
		s.out = append(s.out, Token{Text: text, Line: s.tokenLine})
	}
	s.afterWrapper = wrapperWords[text]
}

// restOfLine returns the unscanned remainder of the current line.
func (s *scanState) restOfLine(i int) string {
	end := s.index.end(s.line)
	if i >= end {
		return ""
	}
	return s.src[i:end]
}

// escaped reports whether the character at offset i is escaped by a
// preceding backslash.
func (s *scanState) escaped(i int) bool {
	if s.opts.LegacyEscapeParity {
		return i > 0 && s.src[i-1] == '\\'
	}
	run := 0
	for j := i - 1; j >= 0 && s.src[j] == '\\'; j-- {
		run++
	}
	return run%2 == 1
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isAlpha(c) || (c >= '0' && c <= '9') || c == '_'
}

// disqualifiesStart reports characters that rule out a command start when
// they immediately precede a word: path and assignment contexts mostly.
func disqualifiesStart(c byte) bool {
	return isIdentChar(c) || strings.IndexByte("=/}:.-", c) >= 0
}
