package archdsl

import (
	"strings"
	"testing"

	"lime/internal/diagnostics"
)

const ambitLike = `
cells (D;64, const;2)

operands (
	input = [D, !D],
	sense = [D],
)

operations (
	AND2 = (and(input)),
	TRUE_SET = (0 := true(sense)),
)

output (sense)
`

func TestLoadStringBuildsArchitecture(t *testing.T) {
	result, err := LoadString("ambit.lime", ambitLike)
	if err != nil {
		t.Fatalf("unexpected error: %v\ndiagnostics: %v", err, result.Diagnostics)
	}
	if result.Architecture == nil {
		t.Fatal("expected a built architecture")
	}
	if len(result.Architecture.CellTypes) != 2 {
		t.Fatalf("expected 2 cell types, got %d", len(result.Architecture.CellTypes))
	}
	if len(result.Architecture.Operations) != 2 {
		t.Fatalf("expected 2 operations, got %d", len(result.Architecture.Operations))
	}
	if len(result.Architecture.Outputs.Families) != 1 {
		t.Fatalf("expected 1 output family, got %d", len(result.Architecture.Outputs.Families))
	}
}

func TestLoadStringRejectsDuplicateCellType(t *testing.T) {
	src := `
cells (D;8, D;4)
operands ()
operations ()
output ()
`
	result, err := LoadString("dup.lime", src)
	if err == nil {
		t.Fatal("expected a validation error for a duplicate cell type")
	}
	if !hasCode(result.Diagnostics, diagnostics.ErrorDuplicateCellType) {
		t.Fatalf("expected %s among diagnostics, got %v", diagnostics.ErrorDuplicateCellType, result.Diagnostics)
	}
}

func TestLoadStringRejectsUnknownCellType(t *testing.T) {
	src := `
cells (D;8)
operands (input = [Bogus])
operations ()
output ()
`
	result, err := LoadString("unknown.lime", src)
	if err == nil {
		t.Fatal("expected a validation error for an unknown cell type")
	}
	if !hasCode(result.Diagnostics, diagnostics.ErrorUnknownCellType) {
		t.Fatalf("expected %s among diagnostics, got %v", diagnostics.ErrorUnknownCellType, result.Diagnostics)
	}
}

func TestLoadStringRejectsEvenArityMaj(t *testing.T) {
	src := `
cells (D;8)
operands (pair = [(D, D)])
operations (MAJ2 = (maj(pair)))
output ()
`
	result, err := LoadString("maj.lime", src)
	if err == nil {
		t.Fatal("expected a validation error for an even-arity maj")
	}
	if !hasCode(result.Diagnostics, diagnostics.ErrorMajEvenArity) {
		t.Fatalf("expected %s among diagnostics, got %v", diagnostics.ErrorMajEvenArity, result.Diagnostics)
	}
}

func TestLoadStringRejectsInvalidGateName(t *testing.T) {
	src := `
cells (D;8)
operands (input = [D])
operations (BOGUS = (nor(input)))
output ()
`
	_, err := LoadString("gate.lime", src)
	if err == nil {
		t.Fatal("expected a syntax error for an unrecognized gate token")
	}
}

func TestLoadStringReportsRealSourcePositions(t *testing.T) {
	src := "cells (D;8, D;4)\noperands ()\noperations ()\noutput ()\n"
	result, _ := LoadString("pos.lime", src)
	var dup diagnostics.Diagnostic
	found := false
	for _, d := range result.Diagnostics {
		if d.Code == diagnostics.ErrorDuplicateCellType {
			dup = d
			found = true
		}
	}
	if !found {
		t.Fatal("expected a duplicate cell type diagnostic")
	}
	if dup.Position.Line == 0 {
		t.Error("expected a non-zero line number attributed to the duplicate declaration")
	}
}

func hasCode(diags []diagnostics.Diagnostic, code string) bool {
	for _, d := range diags {
		if d.Code == code {
			return true
		}
	}
	return false
}

func TestArchitectureSatisfiesCombinations(t *testing.T) {
	result, err := LoadString("ambit2.lime", ambitLike)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := result.Architecture
	for _, op := range a.Operations {
		combos := a.Combinations(op.Input)
		if len(combos) == 0 {
			t.Errorf("operation %s produced no input combinations", op.Name)
		}
	}
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	_, err := Load("/nonexistent/path/does-not-exist.lime")
	if err == nil {
		t.Fatal("expected an error reading a nonexistent file")
	}
	if !strings.Contains(err.Error(), "archdsl") {
		t.Errorf("expected error to be wrapped with archdsl context, got: %v", err)
	}
}
