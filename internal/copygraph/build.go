package copygraph

import "lime/internal/arch"

// Build computes an architecture's full CopyGraph: every optimal
// set-constant template, then every optimal copy-between-cells
// template built on top of them. costFn defaults to arch.UnitCost.
func Build(a *arch.Architecture, costFn arch.CostFunc) *Graph {
	if costFn == nil {
		costFn = arch.UnitCost
	}
	g := New()
	findSetConstant(a, costFn, g)
	findCopyOperations(a, costFn, g)
	return g
}
