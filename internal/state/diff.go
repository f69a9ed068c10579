package state

import "lime/internal/arch"

// Diff overlays a base Like mapping with speculative edits, without
// mutating the base. A present-but-nil override means "explicitly
// cleared"; an absent override means "defer to base". Diff can wrap
// either a *State or another *Diff, so speculative edits nest —
// needed for copy's recursive copy-via-override branching.
type Diff struct {
	base      Like
	overrides map[arch.Cell]*Signal
}

// NewDiff returns an empty overlay on top of base.
func NewDiff(base Like) *Diff {
	return &Diff{base: base, overrides: make(map[arch.Cell]*Signal)}
}

// Cell reads through the overlay, falling back to base.
func (d *Diff) Cell(c arch.Cell) (Signal, bool) {
	if ov, ok := d.overrides[c]; ok {
		if ov == nil {
			return 0, false
		}
		return *ov, true
	}
	return d.base.Cell(c)
}

// CellsWith unions base's cells holding sig (excluding any cell this
// overlay has touched, even if untouched in value) with the overlay's
// own cells now holding sig.
func (d *Diff) CellsWith(sig Signal) []arch.Cell {
	var result []arch.Cell
	for c, ov := range d.overrides {
		if ov != nil && *ov == sig {
			result = append(result, c)
		}
	}
	for _, c := range d.base.CellsWith(sig) {
		if _, touched := d.overrides[c]; !touched {
			result = append(result, c)
		}
	}
	return result
}

// Set records a speculative write, returning the signal c previously
// held under this overlay (nil to clear).
func (d *Diff) Set(c arch.Cell, sig *Signal) *Signal {
	prev, hadPrev := d.Cell(c)
	d.overrides[c] = sig
	if hadPrev {
		return &prev
	}
	return nil
}

// ApplyTo replays every recorded override onto target — either the
// committed State at the root of a synthesis call, or a parent Diff
// when this overlay came from Version.Branch.
func (d *Diff) ApplyTo(target Settable) {
	for c, ov := range d.overrides {
		target.Set(c, ov)
	}
}
