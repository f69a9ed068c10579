package gate

import "lime/internal/boolalg"

// majEval tracks MAJ over a growing set of known/unknown inputs via
// nums = [#false, #true, #unknown].
type majEval struct {
	nums [3]int
}

func newMajEval() *majEval { return &majEval{} }

func (e *majEval) count() int { return e.nums[0] + e.nums[1] + e.nums[2] }

func idx(target bool) int {
	if target {
		return 1
	}
	return 0
}

func (e *majEval) Hint(arity *int, target bool) (boolalg.Hint, bool) {
	if arity == nil {
		return boolalg.Prefer(target), true
	}
	numTarget := e.nums[idx(target)]
	requiredTarget := (*arity + 1) / 2 // ceil(arity/2)
	if numTarget >= requiredTarget {
		return boolalg.Any, true
	}
	missing := requiredTarget - numTarget
	leftover := *arity - e.count()
	switch {
	case leftover < missing:
		return boolalg.Hint{}, false
	case missing == leftover:
		return boolalg.Require(target), true
	default:
		return boolalg.Prefer(target), true
	}
}

func (e *majEval) HintID(arity *int, identInverted *bool) (boolalg.Hint, bool) {
	if (identInverted != nil && *identInverted) || e.nums[2] != 0 {
		return boolalg.Hint{}, false
	}
	if e.nums[0] == e.nums[1] {
		return boolalg.Any, true
	}
	if arity == nil {
		if e.nums[0] > e.nums[1] {
			return boolalg.Prefer(true), true
		}
		return boolalg.Prefer(false), true
	}
	if *arity == e.count()+1 {
		// next input is the last; unequal counts can never balance.
		return boolalg.Hint{}, false
	}
	leftover := *arity - e.count() - 1
	var delta int
	var min bool
	if e.nums[0] > e.nums[1] {
		delta, min = e.nums[0]-e.nums[1], true
	} else {
		delta, min = e.nums[1]-e.nums[0], false
	}
	switch {
	case leftover < delta:
		return boolalg.Hint{}, false
	case leftover == delta:
		return boolalg.Require(min), true
	default:
		return boolalg.Prefer(min), true
	}
}

func (e *majEval) IDInverted() (bool, bool) {
	if e.nums[0] == e.nums[1] && e.nums[2] == 0 {
		return false, true
	}
	return false, false
}

func (e *majEval) Add(v bool) {
	e.nums[idx(v)]++
}

func (e *majEval) AddUnknown() {
	e.nums[2]++
}

func (e *majEval) Evaluate() (bool, bool) {
	if e.count()%2 != 1 {
		return false, false
	}
	value := e.nums[1] > e.nums[0]
	diff := e.nums[idx(value)] - e.nums[idx(!value)]
	if diff <= e.nums[2] {
		return false, false
	}
	return value, true
}
