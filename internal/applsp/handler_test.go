package applsp_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"lime/internal/applsp"
)

const sampleSource = `
cells (D;8)
operands (
	input = [D, !D],
)
operations (
	AND2 = (and(input)),
)
output (input)
`

func TestTextDocumentDidOpenReportsNoDiagnosticsForValidSource(t *testing.T) {
	handler := applsp.NewHandler()
	ctx := &glsp.Context{}

	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:  "file:///tmp/sample.lime",
			Text: sampleSource,
		},
	})
	require.NoError(t, err)
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	handler := applsp.NewHandler()
	ctx := &glsp.Context{}

	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:  "file:///tmp/sample2.lime",
			Text: sampleSource,
		},
	})
	require.NoError(t, err)

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///tmp/sample2.lime"},
	})
	require.NoError(t, err)
	require.NotNil(t, tokens)
	require.NotEmpty(t, tokens.Data)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.NotEmpty(t, decoded)

	counts := make(map[string]int)
	for _, tok := range decoded {
		counts[tok.Type]++
	}
	require.Greater(t, counts["namespace"], 0, "expected a namespace token for the cell type")
	require.Greater(t, counts["type"], 0, "expected a type token for the operand family")
	require.Greater(t, counts["function"], 0, "expected a function token for the operation name")
}

func TestTextDocumentDidCloseClearsCache(t *testing.T) {
	handler := applsp.NewHandler()
	ctx := &glsp.Context{}

	uri := protocol.DocumentUri("file:///tmp/sample3.lime")
	require.NoError(t, handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: sampleSource},
	}))
	require.NoError(t, handler.TextDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}))

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	require.Empty(t, tokens.Data, "expected no cached tokens after close")
}

type decodedToken struct {
	Line, Char, Length uint32
	Type               string
}

func decodeSemanticTokens(raw []uint32) ([]decodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}
	var decoded []decodedToken
	var line, char uint32
	for i := 0; i < len(raw); i += 5 {
		deltaLine, deltaStart, length, typeIdx := raw[i], raw[i+1], raw[i+2], raw[i+3]
		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}
		decoded = append(decoded, decodedToken{
			Line: line, Char: char, Length: length,
			Type: applsp.SemanticTokenTypes[typeIdx],
		})
	}
	return decoded, nil
}
