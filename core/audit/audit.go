// Package audit wires the prescanner, scanner, normalizer and
// classification pipeline into one script-level pass. Each audit is
// stateless end-to-end; nothing persists between scripts.
package audit

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/shsift/shsift/core/astcheck"
	"github.com/shsift/shsift/core/classify"
	"github.com/shsift/shsift/core/config"
	"github.com/shsift/shsift/core/scan"
)

// Status is the terminal state of one audit.
type Status int

const (
	// StatusNoTokens means the scan produced no candidate commands at all.
	StatusNoTokens Status = iota
	// StatusClean means every candidate resolved against a reference set.
	StatusClean
	// StatusUnresolved means some commands matched no reference set.
	StatusUnresolved
)

func (s Status) String() string {
	switch s {
	case StatusNoTokens:
		return "no-tokens"
	case StatusClean:
		return "clean"
	case StatusUnresolved:
		return "unresolved"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// MarshalJSON renders the status as its string form.
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", s.String())), nil
}

// InputError reports a script rejected before scanning: unreadable, empty
// or over the configured size limit.
type InputError struct {
	Path   string
	Reason string
	Err    error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// Engine names a command-extraction strategy.
type Engine string

const (
	EngineScanner Engine = "scanner"
	EngineAST     Engine = "ast"
)

// Options select per-run audit behavior.
type Options struct {
	Engine             Engine
	LegacyEscapeParity bool
}

// Result is the outcome of auditing one script.
type Result struct {
	Script string `json:"script"`
	Status Status `json:"status"`

	// Commands is the normalized candidate set the pipeline started from.
	Commands []scan.Token `json:"commands"`

	// Unresolved is the final remainder: names no reference set knew.
	Unresolved []scan.Token `json:"unresolved,omitempty"`

	Stages []classify.StageResult `json:"stages,omitempty"`
}

// Auditor runs audits against scripts on a filesystem.
type Auditor struct {
	fs   afero.Fs
	cfg  *config.Configuration
	opts Options
	log  *log.Logger
}

// New builds an Auditor. A nil logger discards debug output.
func New(fsys afero.Fs, cfg *config.Configuration, opts Options, logger *log.Logger) *Auditor {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Engine == "" {
		opts.Engine = Engine(cfg.Engine)
	}
	return &Auditor{fs: fsys, cfg: cfg, opts: opts, log: logger}
}

// Audit loads the script at path, enforces the size bound and audits it.
func (a *Auditor) Audit(path string) (*Result, error) {
	fi, err := a.fs.Stat(path)
	if err != nil {
		return nil, &InputError{Path: path, Reason: "not readable", Err: err}
	}
	if fi.Size() < 1 {
		return nil, &InputError{Path: path, Reason: "script is empty"}
	}
	if fi.Size() > a.cfg.MaxScriptBytes {
		return nil, &InputError{
			Path:   path,
			Reason: fmt.Sprintf("script is %d bytes, limit is %d", fi.Size(), a.cfg.MaxScriptBytes),
		}
	}

	data, err := afero.ReadFile(a.fs, path)
	if err != nil {
		return nil, &InputError{Path: path, Reason: "not readable", Err: err}
	}
	return a.AuditSource(path, string(data))
}

// AuditSource audits already-loaded script text. The caller is expected to
// have applied any size bound.
func (a *Auditor) AuditSource(name, src string) (*Result, error) {
	var (
		tokens   []scan.Token
		declared scan.IdentifierSet
	)
	switch a.opts.Engine {
	case EngineAST:
		var err error
		tokens, declared, err = astcheck.Extract(name, src)
		if err != nil {
			return nil, &InputError{Path: name, Reason: "bash syntax error", Err: err}
		}
	default:
		declared = scan.Prescan(src)
		tokens = scan.ScanWithOptions(src, scan.Options{
			LegacyEscapeParity: a.opts.LegacyEscapeParity,
		})
	}
	a.log.Debug("scan complete",
		"script", name, "engine", a.opts.Engine,
		"tokens", len(tokens), "declared", len(declared))

	normalized := scan.Normalize(tokens)
	res := &Result{Script: name, Commands: normalized}
	if len(normalized) == 0 {
		res.Status = StatusNoTokens
		return res, nil
	}

	// Declared identifiers always filter first; the configured sets follow.
	sets := append(
		[]classify.ReferenceSet{classify.NewReferenceSet("declared identifiers", declared.Names())},
		a.cfg.ReferenceSets()...,
	)
	remainder, stages := classify.Filter(normalized, sets)
	for _, st := range stages {
		a.log.Debug("classified", "script", name, "set", st.Set,
			"matched", st.Matched, "remaining", st.Remaining)
	}

	res.Stages = stages
	res.Unresolved = remainder
	if len(remainder) == 0 {
		res.Status = StatusClean
	} else {
		res.Status = StatusUnresolved
	}
	return res, nil
}
