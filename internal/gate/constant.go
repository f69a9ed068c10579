package gate

import "lime/internal/boolalg"

// constEval implements a Constant(c) gate: it ignores every input and
// always evaluates to c.
type constEval struct {
	value bool
}

func newConstEval(value bool) *constEval { return &constEval{value: value} }

func (e *constEval) Hint(_ *int, target bool) (boolalg.Hint, bool) {
	if e.value == target {
		return boolalg.Any, true
	}
	return boolalg.Hint{}, false
}

func (e *constEval) HintID(_ *int, _ *bool) (boolalg.Hint, bool) {
	// A constant gate is never an identity over anything.
	return boolalg.Hint{}, false
}

func (e *constEval) IDInverted() (bool, bool) { return false, false }

func (e *constEval) Add(bool) {}

func (e *constEval) AddUnknown() {}

func (e *constEval) Evaluate() (bool, bool) { return e.value, true }
