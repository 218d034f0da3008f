package scan

import (
	"regexp"
	"sort"
	"strings"

	shlex "github.com/anmitsu/go-shlex"
)

// IdentifierSet holds names a script binds locally.
type IdentifierSet map[string]struct{}

func (s IdentifierSet) Add(name string) {
	s[name] = struct{}{}
}

func (s IdentifierSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the members sorted for stable output.
func (s IdentifierSet) Names() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

var (
	assignPattern  = regexp.MustCompile(`^[ \t]*([A-Za-z_][A-Za-z0-9_]*)=`)
	declarePattern = regexp.MustCompile(`^[ \t]*declare[ \t]+(?:-[A-Za-z]+[ \t]+)*([A-Za-z_][A-Za-z0-9_]*)=`)

	keywordPatterns = map[string]*regexp.Regexp{
		"for":      regexp.MustCompile(`(^|[ \t;])for[ \t]`),
		"function": regexp.MustCompile(`(^|[ \t;])function[ \t]`),
	}
)

// Prescan collects every identifier the script binds itself: plain
// assignments, declare'd names, for-loop variables and function names.
// Matching is line-local and ignores quote and comment context beyond a
// cheap prefix check, so a binding-shaped pattern inside a string is still
// collected. That trades extra suppressed names for simplicity, which is
// the safe direction for this report.
func Prescan(src string) IdentifierSet {
	ids := make(IdentifierSet)
	for _, line := range strings.Split(src, "\n") {
		if m := assignPattern.FindStringSubmatch(line); m != nil {
			ids.Add(m[1])
		}
		if m := declarePattern.FindStringSubmatch(line); m != nil {
			ids.Add(m[1])
		}
		collectKeywordBinding(ids, line, "for")
		collectKeywordBinding(ids, line, "function")
	}
	return ids
}

// collectKeywordBinding records the word following kw on the line, skipping
// lines where a comment or quote character appears before kw.
func collectKeywordBinding(ids IdentifierSet, line, kw string) {
	loc := keywordPatterns[kw].FindStringIndex(line)
	if loc == nil {
		return
	}
	idx := loc[0]
	if line[idx] != kw[0] {
		idx++ // skip the separator the pattern matched
	}
	if strings.ContainsAny(line[:idx], `#'"`) {
		return
	}
	words := splitWords(line[idx:])
	if len(words) < 2 {
		return
	}
	if name := identPrefix(words[1]); name != "" {
		ids.Add(name)
	}
}

// splitWords separates a line fragment into shell words, falling back to
// whitespace fields when quoting is unbalanced.
func splitWords(s string) []string {
	words, err := shlex.Split(s, true)
	if err != nil {
		return strings.Fields(s)
	}
	return words
}

// identPrefix returns the leading identifier of w, or "" when w doesn't
// start with a letter or underscore.
func identPrefix(w string) string {
	if w == "" || (!isAlpha(w[0]) && w[0] != '_') {
		return ""
	}
	for i := 1; i < len(w); i++ {
		if !isIdentChar(w[i]) {
			return w[:i]
		}
	}
	return w
}
