package gate

import "lime/internal/boolalg"

// andEval tracks AND(true, v1, v2, ...): value starts true and is
// conjuncted with every known input. An unknown input does not narrow
// value (AND(true,...,true,X) == X for the free slot X), so
// addUnknown leaves value untouched.
type andEval struct {
	count int
	value bool
}

func newAndEval() *andEval { return &andEval{value: true} }

func (e *andEval) Hint(arity *int, target bool) (boolalg.Hint, bool) {
	if target {
		if e.value {
			return boolalg.Require(true), true
		}
		return boolalg.Hint{}, false
	}
	if e.value {
		if arity != nil && e.count+1 == *arity {
			return boolalg.Require(false), true
		}
		return boolalg.Prefer(false), true
	}
	return boolalg.Any, true
}

func (e *andEval) HintID(_ *int, identInverted *bool) (boolalg.Hint, bool) {
	if identInverted != nil && *identInverted {
		// AND alone can never realize an inverted identity.
		return boolalg.Hint{}, false
	}
	if !e.value {
		// Already collapsed to the constant false function.
		return boolalg.Hint{}, false
	}
	return boolalg.Require(true), true
}

func (e *andEval) IDInverted() (bool, bool) {
	if e.value {
		return false, true
	}
	return false, false
}

func (e *andEval) Add(v bool) {
	e.count++
	e.value = e.value && v
}

func (e *andEval) AddUnknown() {
	e.count++
}

func (e *andEval) Evaluate() (bool, bool) {
	if e.count == 0 {
		return false, false
	}
	return e.value, true
}
