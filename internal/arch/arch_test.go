package arch

import (
	"testing"

	"lime/internal/boolalg"
)

func intp(i int) *int { return &i }

func TestCellFitAndIndex(t *testing.T) {
	d := CellType{Name: "D", Count: Unbounded}
	ot := OperandType{Type: d, Inverted: true, Index: intp(10)}

	if inv, ok := ot.Fit(NewCell(d, 10)); !ok || !inv {
		t.Errorf("expected fit to succeed with inverted=true, got ok=%v inv=%v", ok, inv)
	}
	if _, ok := ot.Fit(NewCell(d, 11)); ok {
		t.Error("expected fit to fail on mismatched fixed index")
	}
	other := CellType{Name: "T", Count: Unbounded}
	if _, ok := ot.Fit(NewCell(other, 10)); ok {
		t.Error("expected fit to fail on mismatched type")
	}
}

func TestConstantCellRoundTrip(t *testing.T) {
	c := ConstantCell(true)
	v, ok := c.ConstantValue()
	if !ok || !v {
		t.Fatalf("ConstantCell(true).ConstantValue() = %v, %v", v, ok)
	}
	c = ConstantCell(false)
	v, ok = c.ConstantValue()
	if !ok || v {
		t.Fatalf("ConstantCell(false).ConstantValue() = %v, %v", v, ok)
	}
}

func TestTryFitConstantAnyPicksTrue(t *testing.T) {
	ot := OperandType{Type: ConstantType}
	value, operand, ok := ot.TryFitConstant(boolalg.Any)
	if !ok || !value {
		t.Fatalf("TryFitConstant(Any) = %v, %v, %v", value, operand, ok)
	}
	if cv, _ := operand.Cell.ConstantValue(); !cv {
		t.Errorf("expected chosen cell to hold true, got %v", operand.Cell)
	}
}

func TestTryFitConstantFixedIndexConflictsWithRequire(t *testing.T) {
	idx := 0 // the false-constant cell
	ot := OperandType{Type: ConstantType, Index: intp(idx)}
	if _, _, ok := ot.TryFitConstant(boolalg.Require(true)); ok {
		t.Error("expected fixed index 0 (false) to conflict with Require(true)")
	}
	value, _, ok := ot.TryFitConstant(boolalg.Require(false))
	if !ok || value {
		t.Errorf("expected Require(false) to succeed with value=false, got %v, %v", value, ok)
	}
}

func TestTryFitConstantInvertedXorsHintAndResult(t *testing.T) {
	ot := OperandType{Type: ConstantType, Inverted: true}
	value, operand, ok := ot.TryFitConstant(boolalg.Require(true))
	if !ok {
		t.Fatal("expected TryFitConstant to succeed")
	}
	// hint requires function-input value true; inverted means the
	// underlying cell must hold false, and the returned value (also
	// function-input domain) must be true.
	if !value {
		t.Errorf("expected returned value true, got %v", value)
	}
	if cv, _ := operand.Cell.ConstantValue(); cv {
		t.Errorf("expected underlying cell to hold false, got %v", operand.Cell)
	}
}

func TestNaryOperandsFitUnion(t *testing.T) {
	d := CellType{Name: "D", Count: Unbounded}
	nary := NewNaryOperands([]OperandType{
		{Type: d},
		{Type: ConstantType, Inverted: true},
	})
	if got := nary.FitCell(NewCell(d, 3)); got != boolalg.OnlyFalse {
		t.Errorf("D cell fit = %v, want OnlyFalse (not inverted)", got)
	}
	if got := nary.FitCell(ConstantCell(true)); got != boolalg.OnlyTrue {
		t.Errorf("const(true) via inverted alt fit = %v, want OnlyTrue", got)
	}
}

func TestTupleOperandsFitSingleOnlyConsidersArityOne(t *testing.T) {
	d := CellType{Name: "D", Count: Unbounded}
	tuples := TupleOperands{Tuples: [][]OperandType{
		{{Type: d}},
		{{Type: d}, {Type: d, Inverted: true}},
	}}
	if got := tuples.fitSingle(NewCell(d, 0)); got != boolalg.OnlyFalse {
		t.Errorf("fit = %v, want OnlyFalse from the length-1 tuple only", got)
	}
}

func TestCombinationsNaryExpandsArities(t *testing.T) {
	d := CellType{Name: "D", Count: Unbounded}
	nary := NewNaryOperands([]OperandType{{Type: d}})
	combos := nary_Family(nary.nary).Combinations(3)
	if len(combos) != 3 {
		t.Fatalf("expected 3 synthetic combos (arities 1..3), got %d", len(combos))
	}
	for i, c := range combos {
		if len(c) != i+1 {
			t.Errorf("combo %d has length %d, want %d", i, len(c), i+1)
		}
	}
}

func nary_Family(n NaryOperands) Operands {
	return NewNaryOperands(n.Alternatives)
}

func TestOutputsFitCellUnion(t *testing.T) {
	d := CellType{Name: "D", Count: Unbounded}
	outputs := Outputs{Families: []Operands{
		NewNaryOperands([]OperandType{{Type: d}}),
	}}
	if got := outputs.FitCell(NewCell(d, 0)); got != boolalg.OnlyFalse {
		t.Errorf("FitCell = %v, want OnlyFalse", got)
	}
	if outputs.ContainsNone() {
		t.Error("non-empty Outputs should not ContainsNone")
	}
	if (Outputs{}).ContainsNone() != true {
		t.Error("empty Outputs should ContainsNone")
	}
}
