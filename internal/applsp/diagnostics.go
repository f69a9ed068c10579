package applsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"lime/internal/diagnostics"
)

// ConvertDiagnostics transforms internal/archdsl validation diagnostics
// into LSP diagnostics for IDE display. These cover both grammar-level
// syntax errors and semantic validation failures (duplicate names,
// unknown references, arity mismatches, invalid overrides).
func ConvertDiagnostics(diags []diagnostics.Diagnostic) []protocol.Diagnostic {
	var out []protocol.Diagnostic
	for _, d := range diags {
		length := d.Length
		if length <= 0 {
			length = 1
		}
		out = append(out, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(max0(d.Position.Line - 1)),
					Character: uint32(max0(d.Position.Column - 1)),
				},
				End: protocol.Position{
					Line:      uint32(max0(d.Position.Line - 1)),
					Character: uint32(max0(d.Position.Column-1) + length),
				},
			},
			Severity: ptrSeverity(severityOf(d.Level)),
			Source:   ptrString("limedsl"),
			Message:  d.Code + ": " + d.Message,
		})
	}
	return out
}

func severityOf(level diagnostics.Level) protocol.DiagnosticSeverity {
	switch level {
	case diagnostics.Warning:
		return protocol.DiagnosticSeverityWarning
	case diagnostics.Note:
		return protocol.DiagnosticSeverityInformation
	case diagnostics.Help:
		return protocol.DiagnosticSeverityHint
	default:
		return protocol.DiagnosticSeverityError
	}
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity { return &s }
func ptrString(s string) *string                                           { return &s }
