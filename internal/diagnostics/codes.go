package diagnostics

// Error codes for the lime Architecture DSL front end.
//
// Error code ranges:
// L0001-L0099: DSL lexical/grammar errors
// L0100-L0199: Architecture validation errors
// L0200-L0299: Reserved for future use
// L0800-L0899: Warning codes

const (
	// L0001: malformed DSL source the grammar could not parse at all.
	ErrorSyntax = "L0001"

	// L0100: duplicate cell-type name.
	ErrorDuplicateCellType = "L0100"

	// L0101: duplicate operand-family name.
	ErrorDuplicateOperandFamily = "L0101"

	// L0102: duplicate operation name.
	ErrorDuplicateOperation = "L0102"

	// L0103: operand type names a cell type that was never declared.
	ErrorUnknownCellType = "L0103"

	// L0104: function or splice references an operand family that was
	// never declared.
	ErrorUnknownOperandFamily = "L0104"

	// L0105: a TupleOperands family's tuples don't all share one arity.
	ErrorArityMismatch = "L0105"

	// L0106: a fixed operand index is out of bounds for its cell type's
	// declared count.
	ErrorIndexOutOfBounds = "L0106"

	// L0107: an override index names a position outside the operand
	// family's arity.
	ErrorInvalidOverrideIndex = "L0107"

	// L0108: function gate name isn't and/maj/true/false.
	ErrorInvalidGateName = "L0108"

	// L0109: a maj gate's operand family has an even fixed arity.
	ErrorMajEvenArity = "L0109"

	// L0110: `output` names a family that was never declared.
	ErrorUnknownOutputFamily = "L0110"
)

// GetErrorDescription returns a human-readable description of code.
func GetErrorDescription(code string) string {
	switch code {
	case ErrorSyntax:
		return "Architecture source does not match the DSL grammar"
	case ErrorDuplicateCellType:
		return "Cell type is declared more than once"
	case ErrorDuplicateOperandFamily:
		return "Operand family is declared more than once"
	case ErrorDuplicateOperation:
		return "Operation is declared more than once"
	case ErrorUnknownCellType:
		return "Operand type references an undeclared cell type"
	case ErrorUnknownOperandFamily:
		return "Reference to an undeclared operand family"
	case ErrorArityMismatch:
		return "Tuple operand family has tuples of differing arity"
	case ErrorIndexOutOfBounds:
		return "Fixed operand index exceeds its cell type's declared count"
	case ErrorInvalidOverrideIndex:
		return "Override index is outside the operand family's arity"
	case ErrorInvalidGateName:
		return "Gate name is not one of and, maj, true, false"
	case ErrorMajEvenArity:
		return "A maj gate's operand family has an even arity"
	case ErrorUnknownOutputFamily:
		return "Output declaration references an undeclared operand family"
	default:
		return "Unknown error code"
	}
}

// IsWarning reports whether code represents a warning rather than an
// error.
func IsWarning(code string) bool {
	return code >= "L0800" && code < "L0900"
}

// GetErrorCategory returns the category of code.
func GetErrorCategory(code string) string {
	switch {
	case code >= "L0001" && code < "L0100":
		return "Lexical/Grammar"
	case code >= "L0100" && code < "L0200":
		return "Architecture Validation"
	case code >= "L0800" && code < "L0900":
		return "Warning"
	default:
		return "Unknown"
	}
}
