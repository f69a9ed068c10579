package program

import (
	"testing"

	"lime/internal/arch"
	"lime/internal/state"
)

var dType = arch.CellType{Name: "D", Count: arch.Unbounded}

func dummyOp(name string, n int) arch.Operation {
	return arch.Operation{
		Type:    &arch.OperationType{Name: name},
		Outputs: []arch.Operand{{Cell: arch.NewCell(dType, n)}},
	}
}

func TestVersionsCommitsCheapestSavedCandidate(t *testing.T) {
	p := New(nil, nil)
	vs := NewVersions(p)

	cheap := vs.New()
	cheap.Append(dummyOp("cheap", 0))
	cheap.Save()

	expensive := vs.New()
	expensive.Append(dummyOp("expensive-a", 1))
	expensive.Append(dummyOp("expensive-b", 2))
	expensive.Save()

	unsaved := vs.New()
	unsaved.Append(dummyOp("unsaved", 3))

	committed := vs.Finish()
	if len(committed) != 1 || committed[0].Type.Name != "cheap" {
		t.Fatalf("Finish() committed %v, want the single cheap op", committed)
	}
	if len(p.Instructions) != 1 {
		t.Fatalf("Program.Instructions = %v, want 1 op", p.Instructions)
	}
}

func TestVersionsNoSavedCandidateCommitsNothing(t *testing.T) {
	p := New(nil, nil)
	vs := NewVersions(p)
	v := vs.New()
	v.Append(dummyOp("discarded", 0))

	if got := vs.Finish(); got != nil {
		t.Fatalf("Finish() = %v, want nil", got)
	}
	if len(p.Instructions) != 0 {
		t.Fatalf("Program.Instructions = %v, want none", p.Instructions)
	}
}

func TestVersionStateIsolatedUntilSaved(t *testing.T) {
	p := New(nil, nil)
	c0 := arch.NewCell(dType, 0)
	vs := NewVersions(p)
	v := vs.New()
	sig := state.Signal(7)
	v.Set(c0, &sig)

	if _, ok := p.State.Cell(c0); ok {
		t.Error("draft writes must not be visible on committed state before Finish")
	}
	v.Save()
	vs.Finish()
	if got, ok := p.State.Cell(c0); !ok || got != sig {
		t.Fatalf("after Finish, p.State.Cell(c0) = %v, %v", got, ok)
	}
}

func TestBranchSplicesOpsAndFoldsState(t *testing.T) {
	p := New(nil, nil)
	c0 := arch.NewCell(dType, 0)
	vs := NewVersions(p)
	outer := vs.New()

	sub := outer.Branch()
	subV := sub.New()
	sig := state.Signal(9)
	subV.Set(c0, &sig)
	subV.Append(dummyOp("prep", 0))
	subV.Save()
	sub.Finish()

	outer.Append(dummyOp("main", 1))
	if got, _ := outer.State().Cell(c0); got != sig {
		t.Fatalf("outer draft must observe folded branch state, got %v", got)
	}
	outer.Save()
	vs.Finish()

	if len(p.Instructions) != 2 || p.Instructions[0].Type.Name != "prep" || p.Instructions[1].Type.Name != "main" {
		t.Fatalf("Instructions = %v, want [prep, main]", p.Instructions)
	}
	if got, ok := p.State.Cell(c0); !ok || got != sig {
		t.Fatalf("committed state missing branch edit: %v, %v", got, ok)
	}
}
