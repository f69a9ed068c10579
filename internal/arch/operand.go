package arch

import "lime/internal/boolalg"

// OperandType describes "any cell of this type (optionally at this
// fixed index), consumed with this inverter polarity."
type OperandType struct {
	Type     CellType
	Inverted bool
	Index    *int // nil: any index of Type
}

// Fit reports the polarity under which cell satisfies ot, or
// ok=false if it does not.
func (ot OperandType) Fit(c Cell) (inverted bool, ok bool) {
	if ot.Type != c.Type {
		return false, false
	}
	if ot.Index != nil && *ot.Index != c.Index {
		return false, false
	}
	return ot.Inverted, true
}

// TryFitConstant is only meaningful when ot.Type is the constant
// pseudo-type. It XORs hint by ot.Inverted, then picks the chosen
// constant cell consistent with hint and any fixed index, returning
// the function-input-domain value chosen and the concrete Operand.
func (ot OperandType) TryFitConstant(hint boolalg.Hint) (value bool, operand Operand, ok bool) {
	if !ot.Type.Constant {
		return false, Operand{}, false
	}
	h := hint.Map(func(v bool) bool { return v != ot.Inverted })

	var chosen bool
	if ot.Index == nil {
		if req, isReq := h.IsRequire(); isReq {
			chosen = req
		} else if pref, isPref := h.IsPrefer(); isPref {
			chosen = pref
		} else {
			chosen = true
		}
	} else {
		i := *ot.Index
		if req, isReq := h.IsRequire(); isReq {
			if req != (i != 0) {
				return false, Operand{}, false
			}
			chosen = req
		} else {
			chosen = i != 0
		}
	}
	operand = Operand{Cell: ConstantCell(chosen), Inverted: ot.Inverted}
	return chosen != ot.Inverted, operand, true
}
