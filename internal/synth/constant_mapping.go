// Package synth implements the set-constant and copy-between-cells
// discovery procedures: ConstantMapping, the per-strategy search over
// an architecture's operation catalog, and the two exported entry
// points Set and Copy.
package synth

import (
	"lime/internal/arch"
	"lime/internal/boolalg"
	"lime/internal/gate"
)

// ConstantMapping drives a Function's evaluator plus a caller-supplied
// next-hint callback to fit successive OperandTypes to concrete
// constant operands, never reusing the same constant cell value twice
// within one tuple.
type ConstantMapping struct {
	Eval     *gate.FunctionEvaluation
	used     boolalg.Set
	nextHint func(eval *gate.FunctionEvaluation) (boolalg.Hint, bool)
}

// newConstantMapping is the shared constructor; callers use
// NewSetTarget or NewToIdent to supply the appropriate hint callback.
func newConstantMapping(fn gate.Function, nextHint func(eval *gate.FunctionEvaluation) (boolalg.Hint, bool)) *ConstantMapping {
	return &ConstantMapping{Eval: fn.Evaluate(), nextHint: nextHint}
}

// NewSetTarget drives the mapping toward the function evaluating to
// target (or, when target is nil, toward no constraint at all — used
// when an operation's output may be either polarity).
func NewSetTarget(fn gate.Function, arity int, target *bool) *ConstantMapping {
	return newConstantMapping(fn, func(eval *gate.FunctionEvaluation) (boolalg.Hint, bool) {
		if target == nil {
			return boolalg.Any, true
		}
		a := arity
		return eval.Hint(&a, *target)
	})
}

// NewToIdent drives the mapping toward the function acting as a
// (possibly inverted) identity over the positions left unfilled.
// inverted pins the required identity polarity, or nil to allow
// either.
func NewToIdent(fn gate.Function, arity int, inverted *bool) *ConstantMapping {
	return newConstantMapping(fn, func(eval *gate.FunctionEvaluation) (boolalg.Hint, bool) {
		a := arity
		return eval.HintID(&a, inverted)
	})
}

// MatchNext fits one more OperandType to a concrete constant operand,
// or reports ok=false when no constant satisfies both the evaluator's
// current hint and the no-reuse constraint.
func (m *ConstantMapping) MatchNext(ot arch.OperandType) (arch.Operand, bool) {
	var useHint boolalg.Hint
	switch m.used {
	case boolalg.All:
		return arch.Operand{}, false
	case boolalg.OnlyTrue, boolalg.OnlyFalse:
		cellValue := m.used == boolalg.OnlyTrue
		useHint = boolalg.Require((!cellValue) != ot.Inverted)
	default:
		useHint = boolalg.Any
	}

	hint, ok := m.nextHint(m.Eval)
	if !ok {
		return arch.Operand{}, false
	}
	combined, ok := hint.And(useHint)
	if !ok {
		return arch.Operand{}, false
	}
	value, operand, ok := ot.TryFitConstant(combined)
	if !ok {
		return arch.Operand{}, false
	}
	m.Eval.Add(value)
	m.used = m.used.Insert(value != ot.Inverted)
	return operand, true
}
