package applsp

import (
	"github.com/alecthomas/participle/v2/lexer"

	"lime/internal/archdsl/grammar"
)

// SemanticToken represents a single LSP semantic token entry. Line and
// StartChar are 0-based positions. TokenType indexes SemanticTokenTypes;
// TokenModifiers is a bitmask over SemanticTokenModifiers.
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

func collectSemanticTokens(file *grammar.File) []SemanticToken {
	var tokens []SemanticToken
	if file == nil {
		return tokens
	}

	if file.Cells != nil {
		for _, c := range file.Cells.Cells {
			tokens = append(tokens, makeToken(c.Pos, c.Name, "namespace", 1))
		}
	}

	if file.Operands != nil {
		for _, f := range file.Operands.Families {
			tokens = append(tokens, makeToken(f.Pos, f.Name, "type", 1))
			for _, el := range f.Elements {
				tokens = append(tokens, operandListElementTokens(el)...)
			}
		}
	}

	if file.Operations != nil {
		for _, o := range file.Operations.Operations {
			tokens = append(tokens, makeToken(o.Pos, o.Name, "function", 1))
			if o.Override != nil && o.Override.Index != nil {
				tokens = append(tokens, makeToken(o.Pos, "", "number", 0))
			}
			if o.Function != nil {
				tokens = append(tokens, makeToken(o.Function.Pos, o.Function.Gate, "keyword", 0))
			}
		}
	}

	if file.Output != nil {
		for _, ref := range file.Output.Families {
			tokens = append(tokens, makeToken(ref.Pos, ref.Name, "type", 0))
		}
	}

	return tokens
}

func operandListElementTokens(el *grammar.OperandListElement) []SemanticToken {
	var tokens []SemanticToken
	switch {
	case el.Splice != nil:
		tokens = append(tokens, makeToken(el.Pos, *el.Splice, "type", 0))
	case el.Tuple != nil:
		for _, ot := range el.Tuple.Operands {
			tokens = append(tokens, operandTypeToken(ot))
		}
	case el.Operand != nil:
		tokens = append(tokens, operandTypeToken(el.Operand))
	}
	return tokens
}

func operandTypeToken(ot *grammar.OperandType) SemanticToken {
	kind := "namespace"
	if ot.Name == "true" || ot.Name == "false" || ot.Name == "bool" {
		kind = "keyword"
	}
	return makeToken(ot.Pos, ot.Name, kind, 0)
}

func makeToken(pos lexer.Position, value, tokenType string, decl int) SemanticToken {
	length := len(value)
	if length == 0 {
		length = 1
	}
	line := pos.Line - 1
	if line < 0 {
		line = 0
	}
	col := pos.Column - 1
	if col < 0 {
		col = 0
	}
	return SemanticToken{
		Line:           uint32(line),
		StartChar:      uint32(col),
		Length:         uint32(length),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: decl << indexOf("declaration", SemanticTokenModifiers),
	}
}

func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
