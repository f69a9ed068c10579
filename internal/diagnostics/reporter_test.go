package diagnostics

import (
	"strings"
	"testing"

	"github.com/alecthomas/participle/v2/lexer"
)

func TestFormatIncludesCodeMessageAndCaret(t *testing.T) {
	source := "cells (D)\noperands (BAD = [D, D])\n"
	r := NewReporter("arch.lime", source)
	d := DuplicateOperandFamily("BAD", lexer.Position{Filename: "arch.lime", Line: 2, Column: 11})

	out := r.Format(d)
	if !strings.Contains(out, ErrorDuplicateOperandFamily) {
		t.Errorf("expected formatted output to contain code %s, got:\n%s", ErrorDuplicateOperandFamily, out)
	}
	if !strings.Contains(out, "arch.lime:2:11") {
		t.Errorf("expected location line, got:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("expected a caret marker, got:\n%s", out)
	}
}

func TestUnknownCellTypeSuggestsSimilarName(t *testing.T) {
	d := UnknownCellType("Dd", lexer.Position{Line: 1, Column: 1}, []string{"D", "const"})
	if len(d.Suggestions) == 0 {
		t.Fatal("expected a did-you-mean suggestion for a near-miss name")
	}
}

func TestGetErrorCategoryBands(t *testing.T) {
	if GetErrorCategory(ErrorSyntax) != "Lexical/Grammar" {
		t.Errorf("expected L0001 in Lexical/Grammar band")
	}
	if GetErrorCategory(ErrorDuplicateCellType) != "Architecture Validation" {
		t.Errorf("expected L0100 in Architecture Validation band")
	}
}
