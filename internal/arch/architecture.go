package arch

import "lime/internal/boolalg"

// Outputs is the list of operand families describing legal
// non-override output placements.
type Outputs struct {
	Families []Operands
}

// FitCell unions FitCell across every output family.
func (o Outputs) FitCell(c Cell) boolalg.Set {
	acc := boolalg.Empty
	for _, f := range o.Families {
		acc = acc.InsertAll(f.FitCell(c))
	}
	return acc
}

// SingleOperandTypes unions SingleOperandTypes across every output
// family — every representative OperandType that may occupy a lone
// output cell, used by copygraph's template discovery.
func (o Outputs) SingleOperandTypes() []OperandType {
	var result []OperandType
	for _, f := range o.Families {
		result = append(result, f.SingleOperandTypes()...)
	}
	return result
}

// ContainsNone reports whether this architecture declares no output
// placements at all — the condition under which input-override
// strategies (B) in set/copy discovery apply.
func (o Outputs) ContainsNone() bool { return len(o.Families) == 0 }

// Architecture is the immutable aggregate: the operation catalog plus
// output-placement rules, built once and shared read-only by every
// synthesis call (copygraph.Build, synth.Set, synth.Copy).
type Architecture struct {
	Name             string
	CellTypes        []CellType
	Operations       []OperationType
	Outputs          Outputs
	MaxVariadicArity int // 0 means DefaultMaxVariadicArity
}

// maxArity returns the configured variadic-expansion bound, defaulting
// when unset.
func (a *Architecture) maxArity() int {
	if a.MaxVariadicArity <= 0 {
		return DefaultMaxVariadicArity
	}
	return a.MaxVariadicArity
}

// Combinations is a small convenience wrapper so callers never need to
// thread maxArity through by hand.
func (a *Architecture) Combinations(o Operands) [][]OperandType {
	return o.Combinations(a.maxArity())
}
