package grammar

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
)

// Parser builds *File values from `.lime` source.
var Parser = participle.MustBuild[File](
	participle.Lexer(ArchLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(4),
)

// ParseString parses src, attributing positions to filename.
func ParseString(filename, src string) (*File, error) {
	return Parser.ParseString(filename, src)
}

// ParseFile reads and parses the `.lime` source at path.
func ParseFile(path string) (*File, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseString(path, string(source))
}
