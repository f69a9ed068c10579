package copygraph

import "lime/internal/arch"

// Edge is one precomputed template: a cost and an operation sequence
// that, with FromVar/ToVar substituted for concrete cells, copies
// from into to (possibly inverted).
type Edge struct {
	Inverted bool
	Template []arch.Operation
	Cost     arch.Cost
}

// Instantiate substitutes the two placeholder cells with concrete
// ones, returning the ready-to-append operation sequence.
func (e Edge) Instantiate(from, to arch.Cell) []arch.Operation {
	mapOperand := func(o arch.Operand) arch.Operand {
		if o.Cell.Type == VarCellType {
			switch o.Cell.Index {
			case FromVar:
				return arch.Operand{Cell: from, Inverted: o.Inverted}
			case ToVar:
				return arch.Operand{Cell: to, Inverted: o.Inverted}
			default:
				panic("copygraph: invalid template variable index")
			}
		}
		return o
	}
	out := make([]arch.Operation, len(e.Template))
	for i, op := range e.Template {
		inputs := make([]arch.Operand, len(op.Inputs))
		for j, in := range op.Inputs {
			inputs[j] = mapOperand(in)
		}
		outputs := make([]arch.Operand, len(op.Outputs))
		for j, out2 := range op.Outputs {
			outputs[j] = mapOperand(out2)
		}
		out[i] = arch.Operation{Type: op.Type, Inputs: inputs, Outputs: outputs}
	}
	return out
}

type edgeKey struct {
	from, to Node
	inverted bool
}

// Graph is the precomputed set of optimal copy templates for one
// architecture, keyed by (from, to, inverted) at both type and
// cell granularity.
//
// This keeps exactly one cheapest edge per exact (from, to, inverted)
// key, which is sufficient for correctness (ConsiderEdge always
// displaces a costlier edge) but — unlike a dominance-pruning tree
// that additionally prunes a cell-level edge once a cheaper-or-equal
// type-level edge subsumes it — never reclaims the (bounded, since
// every architecture has finitely many cell types and cells relevant
// to copies) memory a
// dominated cell-level edge occupies. See DESIGN.md.
type Graph struct {
	edges map[edgeKey]Edge
}

// New returns an empty graph.
func New() *Graph { return &Graph{edges: make(map[edgeKey]Edge)} }

// ConsiderEdge records edge as the path from -> to if it is cheaper
// than whatever is already stored for that exact (from, to, inverted)
// key.
func (g *Graph) ConsiderEdge(from, to Node, edge Edge) {
	key := edgeKey{from, to, edge.Inverted}
	if existing, ok := g.edges[key]; ok && edge.Cost >= existing.Cost {
		return
	}
	g.edges[key] = edge
}

// Match is one result of AllOptimalEdgesMatching.
type Match struct {
	From, To Node
	Edge     Edge
}

// AllOptimalEdgesMatching looks up the best edge from `from` to `to`
// with the given inversion, preferring the most specific stored match
// (cell-to-cell, then cell-to-type, then type-to-cell, then
// type-to-type) and falling back through the others when a more
// specific one is absent.
func (g *Graph) AllOptimalEdgesMatching(from, to Node, inverted bool) (Match, bool) {
	fromCandidates := []Node{from}
	if fb, distinct := from.typeFallback(); distinct {
		fromCandidates = append(fromCandidates, fb)
	}
	toCandidates := []Node{to}
	if fb, distinct := to.typeFallback(); distinct {
		toCandidates = append(toCandidates, fb)
	}
	for _, f := range fromCandidates {
		for _, t := range toCandidates {
			if e, ok := g.edges[edgeKey{f, t, inverted}]; ok {
				return Match{From: f, To: t, Edge: e}, true
			}
		}
	}
	return Match{}, false
}
