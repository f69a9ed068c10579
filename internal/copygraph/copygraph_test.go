package copygraph

import (
	"testing"

	"lime/internal/arch"
	"lime/internal/archlib"
	"lime/internal/gate"
)

var sense = arch.CellType{Name: "D", Count: arch.Unbounded}

// bufferArch is a tiny non-override architecture: a single BUFFER
// (identity) gate over one D input, writing its result to any D cell,
// plus an AND gate over two constants for set-constant discovery.
func bufferArch() *arch.Architecture {
	buffer := arch.OperationType{
		Name:     "BUFFER",
		Input:    arch.NewTupleOperandsFamily([][]arch.OperandType{{{Type: sense}}}),
		Override: arch.NoOverride(),
		Function: gate.Function{Gate: gate.NewAnd()},
	}
	and2 := arch.OperationType{
		Name:     "AND2",
		Input:    arch.NewTupleOperandsFamily([][]arch.OperandType{{{Type: arch.ConstantType}, {Type: arch.ConstantType}}}),
		Override: arch.NoOverride(),
		Function: gate.Function{Gate: gate.NewAnd()},
	}
	return &arch.Architecture{
		Name:       "buffer-test",
		CellTypes:  []arch.CellType{sense, arch.ConstantType},
		Operations: []arch.OperationType{buffer, and2},
		Outputs: arch.Outputs{Families: []arch.Operands{
			arch.NewNaryOperands([]arch.OperandType{{Type: sense}}),
		}},
	}
}

func TestBuildFindsCopyBetweenSenseCells(t *testing.T) {
	g := Build(bufferArch(), nil)

	match, ok := g.AllOptimalEdgesMatching(TypeNode(sense), TypeNode(sense), false)
	if !ok {
		t.Fatal("expected a non-inverted D->D copy template")
	}
	from := arch.NewCell(sense, 3)
	to := arch.NewCell(sense, 7)
	ops := match.Edge.Instantiate(from, to)
	if len(ops) != 1 || ops[0].Type.Name != "BUFFER" {
		t.Fatalf("expected a single BUFFER instantiation, got %v", ops)
	}
	if ops[0].Inputs[0].Cell != from {
		t.Errorf("expected instantiated input %v, got %v", from, ops[0].Inputs[0])
	}
	if ops[0].Outputs[0].Cell != to {
		t.Errorf("expected instantiated output %v, got %v", to, ops[0].Outputs[0])
	}
}

func TestBuildFindsSetConstantFromConstantPool(t *testing.T) {
	g := Build(bufferArch(), nil)

	match, ok := g.AllOptimalEdgesMatching(CellNode(arch.ConstantCell(false)), TypeNode(sense), false)
	if !ok {
		t.Fatal("expected a set-constant-false template registered from the false constant node")
	}
	if len(match.Edge.Template) == 0 {
		t.Fatal("expected a non-empty template")
	}
	if match.Edge.Template[0].Type.Name != "AND2" {
		t.Fatalf("expected the AND2-based set-constant template, got %v", match.Edge.Template)
	}
}

func TestConsiderEdgeKeepsCheapest(t *testing.T) {
	g := New()
	from, to := TypeNode(sense), TypeNode(sense)
	cheap := Edge{Cost: 1, Template: []arch.Operation{{}}}
	costly := Edge{Cost: 5, Template: []arch.Operation{{}, {}}}

	g.ConsiderEdge(from, to, costly)
	g.ConsiderEdge(from, to, cheap)
	match, ok := g.AllOptimalEdgesMatching(from, to, false)
	if !ok || match.Edge.Cost != 1 {
		t.Fatalf("expected the cheaper edge to win, got %+v ok=%v", match.Edge, ok)
	}

	g.ConsiderEdge(from, to, costly)
	match, _ = g.AllOptimalEdgesMatching(from, to, false)
	if match.Edge.Cost != 1 {
		t.Fatalf("a costlier edge must not displace a cheaper one, got cost %d", match.Edge.Cost)
	}
}

// TestBuildFelixHasCostOneDToDEdgeBothPolarities checks FELIX's copy
// graph for a cost-1 Type(D)->Type(D) edge in both polarities,
// realized via FELIX's non-destructive NOR/NAND2/OR catalog.
func TestBuildFelixHasCostOneDToDEdgeBothPolarities(t *testing.T) {
	a, err := archlib.Load("felix")
	if err != nil {
		t.Fatalf("archlib.Load(felix): %v", err)
	}
	d := arch.CellType{Name: "D", Count: arch.Unbounded}

	g := Build(a, nil)

	plain, ok := g.AllOptimalEdgesMatching(TypeNode(d), TypeNode(d), false)
	if !ok {
		t.Fatal("expected a non-inverted D->D copy edge")
	}
	if plain.Edge.Cost != 1 {
		t.Errorf("expected the non-inverted D->D edge to cost 1, got %d", plain.Edge.Cost)
	}

	inverted, ok := g.AllOptimalEdgesMatching(TypeNode(d), TypeNode(d), true)
	if !ok {
		t.Fatal("expected an inverted D->D copy edge")
	}
	if inverted.Edge.Cost != 1 {
		t.Errorf("expected the inverted D->D edge to cost 1, got %d", inverted.Edge.Cost)
	}
}
