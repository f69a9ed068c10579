// Package boolalg implements the two small value algebras the rest of
// the synthesis engine is built on: BoolSet (a bounded lattice of
// possible boolean values) and BoolHint (a polarity constraint with a
// partial meet). Neither has any notion of cells, gates, or
// architectures; they are pure value types.
package boolalg

// Set is one of {}, {v}, or {true,false}. The zero value is the empty
// set. Union (Insert / InsertAll) is associative, commutative, and
// idempotent, so the three inhabitants form a bounded lattice with
// Empty at the bottom and All at the top.
type Set uint8

const (
	Empty Set = iota
	OnlyFalse
	OnlyTrue
	All
)

// Single returns the one-element set holding v.
func Single(v bool) Set {
	if v {
		return OnlyTrue
	}
	return OnlyFalse
}

// Insert returns the set with v unioned in.
func (s Set) Insert(v bool) Set {
	switch s {
	case Empty:
		return Single(v)
	case OnlyFalse:
		if v {
			return All
		}
		return s
	case OnlyTrue:
		if !v {
			return All
		}
		return s
	default:
		return All
	}
}

// InsertOptional unions in an optional value; a nil value leaves s unchanged.
func (s Set) InsertOptional(v *bool) Set {
	if v == nil {
		return s
	}
	return s.Insert(*v)
}

// InsertAll unions two sets.
func (s Set) InsertAll(other Set) Set {
	switch {
	case s == Empty:
		return other
	case other == Empty:
		return s
	case s == other:
		return s
	default:
		return All
	}
}

// Contains reports whether v is a member of s.
func (s Set) Contains(v bool) bool {
	switch s {
	case OnlyFalse:
		return !v
	case OnlyTrue:
		return v
	case All:
		return true
	default:
		return false
	}
}

// FromSets folds a sequence of sets via repeated InsertAll, starting
// from Empty — the Go equivalent of the Rust FromIterator<BoolSet> impl.
func FromSets(sets ...Set) Set {
	acc := Empty
	for _, s := range sets {
		acc = acc.InsertAll(s)
	}
	return acc
}
