// Package astcheck extracts command names by parsing the script with a
// real shell grammar instead of the heuristic scanner. It is a distinct
// mode with its own accuracy profile: results intentionally differ from
// the scanner on inputs the scanner's documented approximations get wrong.
package astcheck

import (
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"github.com/shsift/shsift/core/scan"
)

// Extract parses src as bash and returns the invoked command names plus
// the identifiers the script binds (functions, assignments, loop
// variables). Unlike the scanner it can fail: a syntax error aborts the
// whole extraction.
func Extract(name, src string) ([]scan.Token, scan.IdentifierSet, error) {
	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))
	file, err := parser.Parse(strings.NewReader(src), name)
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", name, err)
	}

	var tokens []scan.Token
	declared := make(scan.IdentifierSet)

	syntax.Walk(file, func(node syntax.Node) bool {
		switch n := node.(type) {
		case *syntax.FuncDecl:
			declared.Add(n.Name.Value)
		case *syntax.Assign:
			if n.Name != nil {
				declared.Add(n.Name.Value)
			}
		case *syntax.WordIter:
			declared.Add(n.Name.Value)
		case *syntax.CallExpr:
			if len(n.Args) == 0 {
				break
			}
			word := n.Args[0]
			// Same noise rule as the scanner: one-letter names are dropped.
			if lit := staticWord(word); len(lit) > 1 {
				tokens = append(tokens, scan.Token{
					Text: lit,
					Line: int(word.Pos().Line()),
				})
			}
		}
		return true
	})
	return tokens, declared, nil
}

// staticWord resolves a word to a literal string, or "" when any part is
// dynamic (variables, substitutions, globs). Commands invoked through
// computed names cannot be audited and are skipped.
func staticWord(w *syntax.Word) string {
	var sb strings.Builder
	for _, part := range w.Parts {
		switch p := part.(type) {
		case *syntax.Lit:
			sb.WriteString(p.Value)
		case *syntax.SglQuoted:
			sb.WriteString(p.Value)
		default:
			return ""
		}
	}
	return sb.String()
}
