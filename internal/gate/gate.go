// Package gate implements the incremental gate-evaluation algebra:
// AND, MAJ, and Constant gates evaluated under partially known inputs,
// each producing hints about the polarity the next input should take.
// A Function wraps a Gate with an output inverter.
package gate

import "lime/internal/boolalg"

// Kind identifies which gate a Gate value carries.
type Kind uint8

const (
	And Kind = iota
	Maj
	Constant
)

// Gate is a tagged value: And, Maj, or Constant(value). MAJ requires
// odd arity; this is checked at architecture-validation time, not here.
type Gate struct {
	kind     Kind
	constant bool
}

// NewAnd returns the AND gate.
func NewAnd() Gate { return Gate{kind: And} }

// NewMaj returns the MAJ gate.
func NewMaj() Gate { return Gate{kind: Maj} }

// NewConstant returns the Constant(c) gate.
func NewConstant(c bool) Gate { return Gate{kind: Constant, constant: c} }

// Kind reports which gate this is.
func (g Gate) Kind() Kind { return g.kind }

// ConstantValue reports the carried value for a Constant gate.
func (g Gate) ConstantValue() bool { return g.constant }

// Evaluation is the incremental evaluator state for one in-progress
// gate application, following a hint/hintID/add/evaluate protocol.
type Evaluation interface {
	// Hint reports the polarity the next input needs for the gate to
	// reach target, given the (possibly unknown) total arity. ok is
	// false when target is unreachable given inputs already added.
	Hint(arity *int, target bool) (hint boolalg.Hint, ok bool)

	// HintID reports the polarity the next input needs for the gate to
	// act as a (possibly inverted) identity over the inputs not yet
	// placed. identInverted, when non-nil, pins the required identity
	// polarity; nil allows either. ok is false when no such polarity
	// exists.
	HintID(arity *int, identInverted *bool) (hint boolalg.Hint, ok bool)

	// IDInverted reports, once all constant inputs are placed, whether
	// the gate now acts as an identity and under which inversion. ok is
	// false when it does not act as an identity.
	IDInverted() (inverted bool, ok bool)

	// Add stages a known input value.
	Add(v bool)

	// AddUnknown stages an input whose value is not yet known (a
	// variable slot participating in an identity match).
	AddUnknown()

	// Evaluate returns the gate's value, or ok=false if indeterminate
	// (e.g. MAJ with an even number of known inputs placed so far).
	Evaluate() (value bool, ok bool)
}

// Evaluate starts a fresh Evaluation for this gate.
func (g Gate) Evaluate() Evaluation {
	switch g.kind {
	case And:
		return newAndEval()
	case Maj:
		return newMajEval()
	default:
		return newConstEval(g.constant)
	}
}

// TryCompute drives candidate once per input slot (0..arity, or until
// evaluate() reaches target when arity is unknown), feeding it the
// current hint and collecting whatever result candidate returns for
// that slot. candidate returns the chosen input value, an arbitrary
// per-slot result, and whether it could satisfy the hint at all.
// TryCompute itself rejects a candidate's chosen value when the hint
// was a Require that disagrees with it. It returns the collected
// per-slot results, or ok=false if any step failed.
func (g Gate) TryCompute(target bool, arity *int, candidate func(i int, hint boolalg.Hint) (value bool, result any, ok bool)) ([]any, bool) {
	eval := g.Evaluate()
	var results []any
	for i := 0; ; i++ {
		if arity != nil && i == *arity {
			break
		}
		if arity == nil {
			if v, ok := eval.Evaluate(); ok && v == target {
				break
			}
		}
		hint, ok := eval.Hint(arity, target)
		if !ok {
			return nil, false
		}
		value, result, ok := candidate(i, hint)
		if !ok {
			return nil, false
		}
		if req, isReq := hint.IsRequire(); isReq && value != req {
			return nil, false
		}
		results = append(results, result)
		eval.Add(value)
	}
	if v, ok := eval.Evaluate(); !ok || v != target {
		panic("gate: TryCompute evaluator failed to reach target; architecture is malformed")
	}
	return results, true
}
