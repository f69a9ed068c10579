package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ArchLexer tokenizes `.lime` architecture source. Deliberately small:
// the Architecture DSL has no strings, floats, or nested comments —
// just identifiers, integers, and a handful of punctuation/operator
// tokens.
var ArchLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `//[^\n]*`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Int", `[0-9]+`, nil},
		{"Punctuation", `[().,;:=\[\]!*]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
