// Package classify filters candidate command names through an ordered
// list of named reference sets. A name matching any set is permanently
// resolved; whatever survives every set is the tool's final answer.
package classify

import (
	"sort"

	"github.com/shsift/shsift/core/scan"
)

// ReferenceSet is a named collection of known command names. Membership is
// exact, case-sensitive string equality.
type ReferenceSet struct {
	name  string
	names map[string]struct{}
}

// NewReferenceSet builds a set from literal names. Duplicates collapse.
func NewReferenceSet(name string, names []string) ReferenceSet {
	set := ReferenceSet{name: name, names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		set.names[n] = struct{}{}
	}
	return set
}

func (r ReferenceSet) Name() string {
	return r.name
}

func (r ReferenceSet) Len() int {
	return len(r.names)
}

func (r ReferenceSet) Contains(name string) bool {
	_, ok := r.names[name]
	return ok
}

// Names returns the members sorted.
func (r ReferenceSet) Names() []string {
	out := make([]string, 0, len(r.names))
	for n := range r.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// StageResult records what a single reference set resolved.
type StageResult struct {
	Set       string `json:"set"`
	Matched   int    `json:"matched"`
	Remaining int    `json:"remaining"`
}

// Filter folds tokens through each reference set in order. The remainder
// only ever shrinks and keeps its input order; filtering stops early once
// nothing is left. Set order affects the per-stage tallies, never the
// final remainder.
func Filter(tokens []scan.Token, sets []ReferenceSet) ([]scan.Token, []StageResult) {
	remainder := make([]scan.Token, len(tokens))
	copy(remainder, tokens)

	stages := make([]StageResult, 0, len(sets))
	for _, set := range sets {
		if len(remainder) == 0 {
			break
		}
		kept := remainder[:0]
		for _, t := range remainder {
			if !set.Contains(t.Text) {
				kept = append(kept, t)
			}
		}
		stages = append(stages, StageResult{
			Set:       set.Name(),
			Matched:   len(remainder) - len(kept),
			Remaining: len(kept),
		})
		remainder = kept
	}
	return remainder, stages
}
