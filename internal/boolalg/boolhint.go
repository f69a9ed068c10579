package boolalg

// Hint is a polarity constraint over the next input value to a gate:
// Require(v) demands v, Prefer(v) nudges toward v but tolerates the
// opposite, Any imposes no constraint. The zero value is Any.
type Hint struct {
	kind  hintKind
	value bool
}

type hintKind uint8

const (
	hintAny hintKind = iota
	hintRequire
	hintPrefer
)

// Any is the identity element of And.
var Any = Hint{kind: hintAny}

// Require builds a Require(v) hint.
func Require(v bool) Hint { return Hint{kind: hintRequire, value: v} }

// Prefer builds a Prefer(v) hint.
func Prefer(v bool) Hint { return Hint{kind: hintPrefer, value: v} }

// IsAny reports whether h imposes no constraint.
func (h Hint) IsAny() bool { return h.kind == hintAny }

// IsRequire reports whether h is Require(v); ok is false otherwise.
func (h Hint) IsRequire() (v bool, ok bool) {
	return h.value, h.kind == hintRequire
}

// IsPrefer reports whether h is Prefer(v); ok is false otherwise.
func (h Hint) IsPrefer() (v bool, ok bool) {
	return h.value, h.kind == hintPrefer
}

// Value returns the underlying polarity for Require/Prefer hints, and
// false for Any (callers must check IsAny first when that distinction
// matters).
func (h Hint) Value() bool { return h.value }

// Map returns a hint with its carried polarity replaced by f(v); Any
// maps to Any. Mirrors generic-def's BoolHint::map, used to push a
// function's output-inverter through a hint before it reaches the gate.
func (h Hint) Map(f func(bool) bool) Hint {
	if h.kind == hintAny {
		return h
	}
	return Hint{kind: h.kind, value: f(h.value)}
}

// And computes the partial meet of two hints:
//
//	Require(v) ∧ Require(v) = Require(v); disagreeing Requires fail.
//	Require absorbs Prefer and Any.
//	Prefer(v) ∧ Prefer(v) = Prefer(v); disagreement demotes to Any.
//	Any is the identity.
//
// ok is false when the meet is undefined (conflicting Requires).
func (h Hint) And(other Hint) (result Hint, ok bool) {
	switch {
	case h.kind == hintAny:
		return other, true
	case other.kind == hintAny:
		return h, true
	case h.kind == hintRequire && other.kind == hintRequire:
		if h.value != other.value {
			return Hint{}, false
		}
		return h, true
	case h.kind == hintRequire:
		return h, true
	case other.kind == hintRequire:
		return other, true
	default: // both Prefer
		if h.value == other.value {
			return h, true
		}
		return Any, true
	}
}
