// Package program holds the emitted instruction sequence and its
// signal state, plus the speculative-branch-and-commit machinery
// (ProgramVersions) that set/copy discovery uses to try several
// candidate operation sequences and keep only the cheapest, committed
// via an explicit Finish() call at each scope.
package program

import (
	"lime/internal/arch"
	"lime/internal/state"
)

// Program is one architecture's emitted instruction stream and its
// committed signal state.
type Program struct {
	Arch         *arch.Architecture
	Instructions []arch.Operation
	State        *state.State
	Cost         arch.CostFunc
}

// New returns an empty program over a, using costFn to rank candidate
// sequences (arch.UnitCost if costFn is nil).
func New(a *arch.Architecture, costFn arch.CostFunc) *Program {
	if costFn == nil {
		costFn = arch.UnitCost
	}
	return &Program{Arch: a, State: state.New(), Cost: costFn}
}

func (p *Program) appendOps(ops []arch.Operation) { p.Instructions = append(p.Instructions, ops...) }
func (p *Program) applyDiff(d *state.Diff)        { d.ApplyTo(p.State) }

// TotalCost sums Cost over every emitted instruction.
func (p *Program) TotalCost() arch.Cost {
	total := arch.Cost(0)
	for _, op := range p.Instructions {
		total += p.Cost(op)
	}
	return total
}

// sink is satisfied by both *Program and *Version: the two places a
// finished set of candidate Versions can commit into.
type sink interface {
	appendOps(ops []arch.Operation)
	applyDiff(d *state.Diff)
}

// Versions collects candidate Version drafts competing to satisfy one
// synthesis goal (e.g. one call to synth.Set), and commits the
// cheapest saved candidate into its sink on Finish.
type Versions struct {
	arch       *arch.Architecture
	base       state.Like
	sink       sink
	cost       arch.CostFunc
	candidates []*Version
}

// NewVersions opens a branch-and-commit scope rooted at the program's
// committed state. Callers must defer Finish() (or call it explicitly)
// exactly once per scope.
func NewVersions(p *Program) *Versions {
	return &Versions{arch: p.Arch, base: p.State, sink: p, cost: p.Cost}
}

// Arch returns the architecture this scope is synthesizing against.
func (vs *Versions) Arch() *arch.Architecture { return vs.arch }

// New opens a fresh candidate draft, reading through the scope's base
// state until the draft diverges.
func (vs *Versions) New() *Version {
	v := &Version{versions: vs, diff: state.NewDiff(vs.base)}
	vs.candidates = append(vs.candidates, v)
	return v
}

// Finish picks the cheapest saved candidate (by total instruction
// cost, first-created wins ties), commits its operations and state
// edits into the scope's sink, and returns the committed operations
// (nil if no candidate was saved).
func (vs *Versions) Finish() []arch.Operation {
	var winner *Version
	var winnerCost arch.Cost
	for _, c := range vs.candidates {
		if !c.saved {
			continue
		}
		cost := c.cost(vs.cost)
		if winner == nil || cost < winnerCost {
			winner, winnerCost = c, cost
		}
	}
	if winner == nil {
		return nil
	}
	vs.sink.appendOps(winner.ops)
	vs.sink.applyDiff(winner.diff)
	return winner.ops
}

// Version is one candidate operation sequence plus the speculative
// state edits it depends on and produces.
type Version struct {
	versions *Versions
	diff     *state.Diff
	ops      []arch.Operation
	saved    bool
}

// State is this draft's read/write view: base state overlaid with
// whatever this draft (and any already-finished sub-branches) has set.
func (v *Version) State() *state.Diff { return v.diff }

// Append records one emitted operation on this draft.
func (v *Version) Append(op arch.Operation) { v.ops = append(v.ops, op) }

// Set records a speculative signal assignment on this draft.
func (v *Version) Set(c arch.Cell, sig *state.Signal) *state.Signal { return v.diff.Set(c, sig) }

// Save marks this draft as eligible to win Finish's cost comparison.
// An unsaved draft is discarded silently.
func (v *Version) Save() { v.saved = true }

// Branch opens a nested Versions scope layered on top of this draft.
// Finishing it (before any further Append on v) splices its winning
// candidate's operations into v ahead of whatever v.Append follows,
// and folds its state edits into v's own diff so later reads on v
// observe them. This is how copy discovery's speculative
// set()-then-copy composition works.
func (v *Version) Branch() *Versions {
	return &Versions{arch: v.versions.arch, base: v.diff, sink: v, cost: v.versions.cost}
}

func (v *Version) appendOps(ops []arch.Operation) { v.ops = append(v.ops, ops...) }
func (v *Version) applyDiff(d *state.Diff)        { d.ApplyTo(v.diff) }

func (v *Version) cost(costFn arch.CostFunc) arch.Cost {
	total := arch.Cost(0)
	for _, op := range v.ops {
		total += costFn(op)
	}
	return total
}
