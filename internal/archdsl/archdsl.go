// Package archdsl wraps the Architecture DSL grammar (internal/archdsl/grammar)
// with a semantic validation pass: duplicate cell-type/operand-family/
// operation names, unknown family/cell-type references, tuple arity
// mismatches, out-of-bounds fixed indices, invalid gate names, and
// even-arity maj over a statically-known arity. internal/arch's own
// Architecture values only ever come from here (or from
// internal/archlib's bundled sources, or hand-built in tests) — the
// core synthesis packages never parse or validate DSL text
// themselves.
package archdsl

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"lime/internal/arch"
	"lime/internal/archdsl/grammar"
	"lime/internal/diagnostics"
)

// Result is Load/LoadString's full outcome: the built architecture (nil
// if validation found any error-level diagnostic), plus every
// diagnostic collected along the way (errors and warnings both).
type Result struct {
	Architecture *arch.Architecture
	Diagnostics  []diagnostics.Diagnostic
}

// Load reads, parses, and validates the `.lime` source at path.
func Load(path string) (Result, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("archdsl: reading %s: %w", path, err)
	}
	return LoadString(path, string(source))
}

// LoadString parses and validates src, attributing positions to
// filename.
func LoadString(filename, src string) (Result, error) {
	file, err := grammar.ParseString(filename, src)
	if err != nil {
		pos := lexer.Position{Filename: filename}
		msg := err.Error()
		if pe, ok := err.(participle.Error); ok {
			pos = pe.Position()
			msg = pe.Message()
		}
		d := diagnostics.SyntaxError(msg, pos)
		return Result{Diagnostics: []diagnostics.Diagnostic{d}}, fmt.Errorf("archdsl: %s", msg)
	}

	a, diags := build(file)
	hasError := false
	for _, d := range diags {
		if d.Level == diagnostics.Error {
			hasError = true
			break
		}
	}
	if hasError {
		return Result{Diagnostics: diags}, fmt.Errorf("archdsl: %d validation error(s) in %s", countErrors(diags), filename)
	}
	return Result{Architecture: a, Diagnostics: diags}, nil
}

func countErrors(diags []diagnostics.Diagnostic) int {
	n := 0
	for _, d := range diags {
		if d.Level == diagnostics.Error {
			n++
		}
	}
	return n
}
