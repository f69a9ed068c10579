// Package grammar is the participle/v2 struct-tag grammar for the
// Architecture DSL: the textual form from which internal/archdsl
// builds arch.Architecture values. One struct per production, with
// tags carrying the literal grammar directly.
package grammar

import "github.com/alecthomas/participle/v2/lexer"

// File is one parsed `.lime` architecture description: a cell-type
// list, a table of named operand families, a table of named
// operations, and an optional output placement declaration — absent
// entirely for override-only architectures like IMPLY and PLiM, whose
// every operation destructively overwrites one of its own inputs.
type File struct {
	Cells      *CellsDecl      `@@`
	Operands   *OperandsDecl   `@@`
	Operations *OperationsDecl `@@`
	Output     *OutputDecl     `[ @@ ]`
}

// CellsDecl is `cells (name[;count], …)`.
type CellsDecl struct {
	Cells []*CellDecl `"cells" "(" [ @@ { "," @@ } [ "," ] ] ")"`
}

// CellDecl is one cell-type entry; a missing Count means variadic.
type CellDecl struct {
	Pos   lexer.Position
	Name  string `@Ident`
	Count *int   `[ ";" @Int ]`
}

// OperandsDecl is `operands (NAME = family, …)`.
type OperandsDecl struct {
	Families []*OperandFamilyDecl `"operands" "(" [ @@ { "," @@ } [ "," ] ] ")"`
}

// OperandFamilyDecl names one operand family. Elements determine its
// kind: if every element is a bare OperandType, the family is N-ary
// (any alternative may occupy any position); if any element is a
// parenthesized Tuple or a splice, the family is a fixed-arity tuple
// list, splices inlining another family's tuples in place.
type OperandFamilyDecl struct {
	Pos      lexer.Position
	Name     string                `@Ident "="`
	Elements []*OperandListElement `"[" @@ { "," @@ } [ "," ] "]"`
}

// OperandListElement is one member of an operand family's bracketed
// list: a splice of another family, a parenthesized tuple, or a bare
// operand type.
type OperandListElement struct {
	Pos     lexer.Position
	Splice  *string       `(   "." "." "." @Ident`
	Tuple   *TupleLiteral ` | @@`
	Operand *OperandType  ` | @@ )`
}

// TupleLiteral is a parenthesized, fixed-arity group of operand types.
type TupleLiteral struct {
	Operands []*OperandType `"(" @@ { "," @@ } [ "," ] ")"`
}

// OperandType is `[!] name [ [idx] ]`; name is a cell-type name or the
// literal boolean family `true`/`false`/`bool`.
type OperandType struct {
	Pos      lexer.Position
	Inverted bool   `[ @"!" ]`
	Name     string `@Ident`
	Index    *int   `[ "[" @Int "]" ]`
}

// OperationsDecl is `operations (NAME = (…), …)`.
type OperationsDecl struct {
	Operations []*OperationDecl `"operations" "(" [ @@ { "," @@ } [ "," ] ] ")"`
}

// OperationDecl is one operation catalog entry: an optional input
// override, and a gate function applied over a named operand family.
type OperationDecl struct {
	Pos      lexer.Position
	Name     string        `@Ident "=" "("`
	Override *OverrideDecl `[ @@ ":" "=" ]`
	Function *FunctionDecl `@@ ")"`
}

// OverrideDecl is `*` (every input destructively overwritten) or a
// fixed input index.
type OverrideDecl struct {
	All   bool `(   @"*"`
	Index *int ` | @Int )`
}

// FunctionDecl is `[!] gate(operands-name)`, gate one of
// and/maj/true/false.
type FunctionDecl struct {
	Pos         lexer.Position
	Inverted    bool   `[ @"!" ]`
	Gate        string `@( "and" | "maj" | "true" | "false" )`
	OperandsRef string `"(" @Ident ")"`
}

// OutputDecl is `output (names…)`, each name an operand family legal
// as a non-override output placement.
type OutputDecl struct {
	Families []*OutputFamilyRef `"output" "(" [ @@ { "," @@ } [ "," ] ] ")"`
}

// OutputFamilyRef is one named family entry in an `output (...)` list.
type OutputFamilyRef struct {
	Pos  lexer.Position
	Name string `@Ident`
}
