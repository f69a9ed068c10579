// Package copygraph precomputes, once per architecture, every optimal
// "copy template" between cell types and concrete cells: a reusable
// operation sequence (possibly primed by a constant-setting prefix)
// that copies one cell into another, parameterized by two symbolic
// placeholder cells filled in at use time.
package copygraph

import "lime/internal/arch"

// VarCellType tags the two template placeholders a stored Edge's
// operations may reference: FromVar stands for the copy's source
// cell, ToVar for its destination. Edge.Instantiate replaces them with
// concrete cells, represented here as one more well-known sentinel
// CellType rather than a second generic cell-type parameter (the same
// flattening internal/arch already applies to CellType itself — see
// DESIGN.md).
var VarCellType = arch.CellType{Name: "$var", Count: 2}

const (
	FromVar = 0
	ToVar   = 1
)

func fromOperand(inverted bool) arch.Operand {
	return arch.Operand{Cell: arch.NewCell(VarCellType, FromVar), Inverted: inverted}
}

func toOperand(inverted bool) arch.Operand {
	return arch.Operand{Cell: arch.NewCell(VarCellType, ToVar), Inverted: inverted}
}

// Node names either a whole CellType (any cell of that type) or one
// concrete Cell of it — the two granularities edges are stored and
// queried at. The zero value is not a valid Node; use TypeNode/CellNode.
type Node struct {
	Type   arch.CellType
	Cell   int
	IsCell bool
}

// TypeNode returns the type-level node for t.
func TypeNode(t arch.CellType) Node { return Node{Type: t} }

// CellNode returns the cell-level node for c.
func CellNode(c arch.Cell) Node { return Node{Type: c.Type, Cell: c.Index, IsCell: true} }

// ForOperandType maps an OperandType to the node it names: a
// fixed-index OperandType names one cell; an any-index OperandType
// names its whole type.
func ForOperandType(ot arch.OperandType) Node {
	if ot.Index != nil {
		return Node{Type: ot.Type, Cell: *ot.Index, IsCell: true}
	}
	return Node{Type: ot.Type}
}

// typeFallback returns the type-level generalization of n, and
// whether n was itself a cell node (so the fallback is distinct).
func (n Node) typeFallback() (Node, bool) {
	if n.IsCell {
		return Node{Type: n.Type}, true
	}
	return n, false
}
