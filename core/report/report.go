// Package report renders audit results for people and for tooling.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/shsift/shsift/core/audit"
)

// Printer writes human-readable reports.
type Printer struct {
	w       io.Writer
	verbose bool

	good *color.Color
	bad  *color.Color
	dim  *color.Color
}

// NewPrinter builds a Printer. With colorize false the output is plain
// text regardless of terminal detection.
func NewPrinter(w io.Writer, colorize, verbose bool) *Printer {
	p := &Printer{
		w:       w,
		verbose: verbose,
		good:    color.New(color.FgGreen),
		bad:     color.New(color.FgRed, color.Bold),
		dim:     color.New(color.Faint),
	}
	if !colorize {
		p.good.DisableColor()
		p.bad.DisableColor()
		p.dim.DisableColor()
	}
	return p
}

// Print writes the report for one script.
func (p *Printer) Print(res *audit.Result) {
	switch res.Status {
	case audit.StatusNoTokens:
		p.dim.Fprintf(p.w, "%s: no commands found\n", res.Script)
	case audit.StatusClean:
		p.good.Fprintf(p.w, "%s: all %d %s resolved\n",
			res.Script, len(res.Commands), plural(len(res.Commands), "command"))
	case audit.StatusUnresolved:
		p.bad.Fprintf(p.w, "%s: %d unresolved %s\n",
			res.Script, len(res.Unresolved), plural(len(res.Unresolved), "command"))
		for _, t := range res.Unresolved {
			fmt.Fprintf(p.w, "  %s (line %d)\n", t.Text, t.Line)
		}
	}

	if p.verbose {
		for _, st := range res.Stages {
			p.dim.Fprintf(p.w, "  [%s] resolved %d, %d left\n",
				st.Set, st.Matched, st.Remaining)
		}
	}
}

// PrintError reports a script that could not be audited.
func (p *Printer) PrintError(err error) {
	p.bad.Fprintf(p.w, "error: %v\n", err)
}

// WriteJSON renders the results as an indented JSON array.
func WriteJSON(w io.Writer, results []*audit.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
