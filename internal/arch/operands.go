package arch

import "lime/internal/boolalg"

// DefaultMaxVariadicArity bounds how large a synthetic combination
// Combinations synthesizes for a variadic (Nary) family. The
// original's Nary family is truly open-ended (a gate like FELIX's OR
// accepts any number of inputs); a Go implementation built around
// concrete combinations needs a finite search bound. Chosen generous
// enough for every bundled architecture's gates (none need more than
// a handful of inputs to reach a target) — see DESIGN.md for the
// rationale.
const DefaultMaxVariadicArity = 8

// OperandsKind tags which shape an Operands family has.
type OperandsKind uint8

const (
	Nary OperandsKind = iota
	Tuples
)

// NaryOperands is a family of alternative OperandTypes, any of which
// may occupy any position of a variadic operation.
type NaryOperands struct {
	Alternatives []OperandType
}

// Fit unions the fit of c against every alternative.
func (n NaryOperands) Fit(c Cell) boolalg.Set {
	acc := boolalg.Empty
	for _, alt := range n.Alternatives {
		if inv, ok := alt.Fit(c); ok {
			acc = acc.Insert(inv)
		}
	}
	return acc
}

func (n NaryOperands) tryFitConstant(hint boolalg.Hint) (bool, Operand, bool) {
	for _, alt := range n.Alternatives {
		if v, op, ok := alt.TryFitConstant(hint); ok {
			return v, op, true
		}
	}
	return false, Operand{}, false
}

// TupleOperands is a non-empty list of fixed, equal-arity tuples of
// OperandType.
type TupleOperands struct {
	Arity  int
	Tuples [][]OperandType
}

// NewTupleOperands validates that every tuple shares one arity.
func NewTupleOperands(tuples [][]OperandType) TupleOperands {
	if len(tuples) == 0 {
		panic("arch: TupleOperands requires at least one tuple")
	}
	arity := len(tuples[0])
	for _, t := range tuples {
		if len(t) != arity {
			panic("arch: all tuples in one TupleOperands family must share one arity")
		}
	}
	return TupleOperands{Arity: arity, Tuples: tuples}
}

// fitSingle only considers tuples of length 1 — the sense in which a
// TupleOperands family can describe a legal single-cell output
// placement.
func (t TupleOperands) fitSingle(c Cell) boolalg.Set {
	acc := boolalg.Empty
	for _, tup := range t.Tuples {
		if len(tup) == 1 {
			if inv, ok := tup[0].Fit(c); ok {
				acc = acc.Insert(inv)
			}
		}
	}
	return acc
}

// Operands is either a variadic Nary family or a fixed-arity Tuples
// family — the legal operand lists for one hardware operation.
type Operands struct {
	kind   OperandsKind
	nary   NaryOperands
	tuples TupleOperands
}

// NewNaryOperands builds a variadic operand family.
func NewNaryOperands(alternatives []OperandType) Operands {
	return Operands{kind: Nary, nary: NaryOperands{Alternatives: alternatives}}
}

// NewTupleOperandsFamily builds a fixed-arity operand family.
func NewTupleOperandsFamily(tuples [][]OperandType) Operands {
	return Operands{kind: Tuples, tuples: NewTupleOperands(tuples)}
}

// Kind reports which shape this family has.
func (o Operands) Kind() OperandsKind { return o.kind }

// Arity reports the family's fixed arity, or nil for a variadic Nary
// family.
func (o Operands) Arity() *int {
	if o.kind == Tuples {
		a := o.tuples.Arity
		return &a
	}
	return nil
}

// FitCell reports the polarities under which a single cell may
// legally occupy one slot of this family — used for output-placement
// and identity-polarity checks, not for multi-position combinations.
func (o Operands) FitCell(c Cell) boolalg.Set {
	if o.kind == Tuples {
		return o.tuples.fitSingle(c)
	}
	return o.nary.Fit(c)
}

// SingleOperandTypes enumerates the OperandTypes that can occupy a
// lone single-cell slot of this family: every Nary alternative, or
// every length-1 Tuples tuple's sole element.
func (o Operands) SingleOperandTypes() []OperandType {
	if o.kind == Nary {
		return o.nary.Alternatives
	}
	var result []OperandType
	for _, tup := range o.tuples.Tuples {
		if len(tup) == 1 {
			result = append(result, tup[0])
		}
	}
	return result
}

// TryFitConstant finds the first alternative (Nary) or is invalid
// (Tuples, which has no single-OperandType notion) that fits hint.
func (o Operands) TryFitConstant(hint boolalg.Hint) (bool, Operand, bool) {
	if o.kind == Nary {
		return o.nary.tryFitConstant(hint)
	}
	return false, Operand{}, false
}

// Combinations enumerates the concrete, fixed-length operand-type
// lists ("combos") discovery iterates over. A Tuples family yields
// its declared tuples verbatim. A Nary family is expanded into
// synthetic combos: for every alternative and every arity from 1 up
// to maxArity (DefaultMaxVariadicArity if maxArity <= 0), a combo that
// repeats that one alternative across every position.
func (o Operands) Combinations(maxArity int) [][]OperandType {
	if o.kind == Tuples {
		return o.tuples.Tuples
	}
	if maxArity <= 0 {
		maxArity = DefaultMaxVariadicArity
	}
	var combos [][]OperandType
	for _, alt := range o.nary.Alternatives {
		for arity := 1; arity <= maxArity; arity++ {
			combo := make([]OperandType, arity)
			for i := range combo {
				combo[i] = alt
			}
			combos = append(combos, combo)
		}
	}
	return combos
}
