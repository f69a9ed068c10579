package gate

import "lime/internal/boolalg"

// Function is a Gate plus an output-inverter bit: the observable value
// is gate(...) XOR inverted.
type Function struct {
	Inverted bool
	Gate     Gate
}

// TryCompute delegates to the wrapped gate after XORing target by the
// function's inverter.
func (f Function) TryCompute(target bool, arity *int, candidate func(i int, hint boolalg.Hint) (value bool, result any, ok bool)) ([]any, bool) {
	return f.Gate.TryCompute(target != f.Inverted, arity, candidate)
}

// Evaluate starts a fresh FunctionEvaluation.
func (f Function) Evaluate() *FunctionEvaluation {
	return &FunctionEvaluation{inverted: f.Inverted, inner: f.Gate.Evaluate()}
}

// FunctionEvaluation wraps a Gate Evaluation, XORing every
// target/identity argument and result through the function's
// inverter. Add's argument is untouched: it is in the gate's own input
// domain, not the function's output domain.
type FunctionEvaluation struct {
	inverted bool
	inner    Evaluation
}

func (e *FunctionEvaluation) Hint(arity *int, target bool) (boolalg.Hint, bool) {
	return e.inner.Hint(arity, target != e.inverted)
}

func (e *FunctionEvaluation) HintID(arity *int, identInverted *bool) (boolalg.Hint, bool) {
	if identInverted == nil {
		return e.inner.HintID(arity, nil)
	}
	v := *identInverted != e.inverted
	return e.inner.HintID(arity, &v)
}

func (e *FunctionEvaluation) IDInverted() (bool, bool) {
	v, ok := e.inner.IDInverted()
	if !ok {
		return false, false
	}
	return v != e.inverted, true
}

func (e *FunctionEvaluation) Add(v bool) { e.inner.Add(v) }

func (e *FunctionEvaluation) AddUnknown() { e.inner.AddUnknown() }

func (e *FunctionEvaluation) Evaluate() (bool, bool) {
	v, ok := e.inner.Evaluate()
	if !ok {
		return false, false
	}
	return v != e.inverted, true
}
