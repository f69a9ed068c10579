package diagnostics

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Builder provides a fluent interface for building Diagnostics with
// suggestions, notes, and help text.
type Builder struct {
	d Diagnostic
}

// NewError starts building an error-level Diagnostic.
func NewError(code, message string, pos lexer.Position) *Builder {
	return &Builder{d: Diagnostic{Level: Error, Code: code, Message: message, Position: pos, Length: 1}}
}

// NewWarning starts building a warning-level Diagnostic.
func NewWarning(code, message string, pos lexer.Position) *Builder {
	return &Builder{d: Diagnostic{Level: Warning, Code: code, Message: message, Position: pos, Length: 1}}
}

func (b *Builder) WithLength(length int) *Builder {
	b.d.Length = length
	return b
}

func (b *Builder) WithSuggestion(message string) *Builder {
	b.d.Suggestions = append(b.d.Suggestions, Suggestion{Message: message})
	return b
}

func (b *Builder) WithNote(note string) *Builder {
	b.d.Notes = append(b.d.Notes, note)
	return b
}

func (b *Builder) WithHelp(help string) *Builder {
	b.d.HelpText = help
	return b
}

func (b *Builder) Build() Diagnostic { return b.d }

// DuplicateCellType reports a cell type declared more than once.
func DuplicateCellType(name string, pos lexer.Position) Diagnostic {
	return NewError(ErrorDuplicateCellType, fmt.Sprintf("cell type %q is already declared", name), pos).
		WithNote("every cell type in a `cells (...)` declaration must have a unique name").
		Build()
}

// DuplicateOperandFamily reports an operand family declared more than
// once.
func DuplicateOperandFamily(name string, pos lexer.Position) Diagnostic {
	return NewError(ErrorDuplicateOperandFamily, fmt.Sprintf("operand family %q is already declared", name), pos).
		WithNote("every family in an `operands (...)` declaration must have a unique name").
		Build()
}

// DuplicateOperation reports an operation declared more than once.
func DuplicateOperation(name string, pos lexer.Position) Diagnostic {
	return NewError(ErrorDuplicateOperation, fmt.Sprintf("operation %q is already declared", name), pos).
		Build()
}

// UnknownCellType reports an operand type referencing an undeclared
// cell type, suggesting the closest declared name.
func UnknownCellType(name string, pos lexer.Position, declared []string) Diagnostic {
	b := NewError(ErrorUnknownCellType, fmt.Sprintf("cell type %q was never declared", name), pos).
		WithLength(len(name))
	if similar := findSimilarNames(name, declared); len(similar) > 0 {
		b = b.WithSuggestion(fmt.Sprintf("did you mean %s?", quoteJoin(similar)))
	}
	return b.WithHelp("operand types must name a cell type from `cells (...)`, or the literal boolean family true/false/bool").Build()
}

// UnknownOperandFamily reports a function or splice referencing an
// undeclared operand family.
func UnknownOperandFamily(name string, pos lexer.Position, declared []string) Diagnostic {
	b := NewError(ErrorUnknownOperandFamily, fmt.Sprintf("operand family %q was never declared", name), pos).
		WithLength(len(name))
	if similar := findSimilarNames(name, declared); len(similar) > 0 {
		b = b.WithSuggestion(fmt.Sprintf("did you mean %s?", quoteJoin(similar)))
	}
	return b.Build()
}

// ArityMismatch reports a TupleOperands family whose tuples don't all
// share one arity.
func ArityMismatch(family string, expected, actual int, pos lexer.Position) Diagnostic {
	return NewError(ErrorArityMismatch, fmt.Sprintf("tuple in family %q has arity %d, expected %d", family, actual, expected), pos).
		WithNote("every tuple within one operand family must have the same number of positions").
		Build()
}

// IndexOutOfBounds reports a fixed operand index exceeding its cell
// type's declared count.
func IndexOutOfBounds(cellType string, index, count int, pos lexer.Position) Diagnostic {
	return NewError(ErrorIndexOutOfBounds, fmt.Sprintf("index %d is out of bounds for cell type %q (count %d)", index, cellType, count), pos).
		Build()
}

// InvalidOverrideIndex reports an override index outside an
// operation's operand family arity.
func InvalidOverrideIndex(operation string, index, arity int, pos lexer.Position) Diagnostic {
	return NewError(ErrorInvalidOverrideIndex, fmt.Sprintf("operation %q overrides index %d, but its operand family has arity %d", operation, index, arity), pos).
		Build()
}

// InvalidGateName reports a function gate name that isn't
// and/maj/true/false.
func InvalidGateName(name string, pos lexer.Position) Diagnostic {
	return NewError(ErrorInvalidGateName, fmt.Sprintf("unknown gate %q", name), pos).
		WithHelp("gate must be one of: and, maj, true, false").
		Build()
}

// MajEvenArity reports a maj gate applied to an even-arity tuple
// family — majority has no well-defined tie-break for an even number
// of inputs.
func MajEvenArity(operation string, arity int, pos lexer.Position) Diagnostic {
	return NewError(ErrorMajEvenArity, fmt.Sprintf("operation %q applies maj to an even-arity (%d) operand family", operation, arity), pos).
		WithNote("majority gates require an odd number of inputs to avoid ties").
		Build()
}

// UnknownOutputFamily reports an `output (...)` entry naming an
// undeclared operand family.
func UnknownOutputFamily(name string, pos lexer.Position, declared []string) Diagnostic {
	b := NewError(ErrorUnknownOutputFamily, fmt.Sprintf("output family %q was never declared", name), pos)
	if similar := findSimilarNames(name, declared); len(similar) > 0 {
		b = b.WithSuggestion(fmt.Sprintf("did you mean %s?", quoteJoin(similar)))
	}
	return b.Build()
}

// SyntaxError reports source the grammar could not parse.
func SyntaxError(message string, pos lexer.Position) Diagnostic {
	return NewError(ErrorSyntax, message, pos).Build()
}

func quoteJoin(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	return strings.Join(quoted, ", ")
}

func findSimilarNames(target string, candidates []string) []string {
	var similar []string
	for _, c := range candidates {
		if levenshteinDistance(target, c) <= 2 {
			similar = append(similar, c)
		}
	}
	return similar
}

// levenshteinDistance is a small edit-distance helper used to suggest
// likely-intended names in diagnostics.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}
	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			matrix[i][j] = min3(matrix[i-1][j]+1, matrix[i][j-1]+1, matrix[i-1][j-1]+cost)
		}
	}
	return matrix[len(a)][len(b)]
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
