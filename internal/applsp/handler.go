// Package applsp implements the Architecture DSL's language server:
// diagnostics and semantic tokens for `.lime` source files, wiring a
// glsp/commonlog server up against internal/archdsl instead of a
// type-checker.
package applsp

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"lime/internal/archdsl"
	"lime/internal/archdsl/grammar"
)

// SemanticTokenTypes is the set of semantic token kinds this server
// reports, indexed by TextDocumentSemanticTokensFull's encoded tokens.
var SemanticTokenTypes = []string{
	"namespace", // cell type names
	"type",      // operand family names
	"function",  // operation names
	"keyword",   // gate names (and/maj/true/false)
	"number",    // index overrides of operations
	"operator",  // declared in the legend; no token of this kind is emitted
}

// SemanticTokenModifiers is the set of semantic token modifiers this
// server reports.
var SemanticTokenModifiers = []string{
	"declaration",
}

// Handler implements the LSP server handlers for the Architecture DSL.
type Handler struct {
	mu      sync.RWMutex
	content map[string]string
	files   map[string]*grammar.File
}

// NewHandler creates and returns a new Handler instance.
func NewHandler() *Handler {
	return &Handler{
		content: make(map[string]string),
		files:   make(map[string]*grammar.File),
	}
}

// Initialize responds to the LSP client's initialize request and
// advertises the server's capabilities.
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("lime-lsp: Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

// Initialized is called after the client completes initialization.
func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("lime-lsp: Initialized")
	return nil
}

// Shutdown handles the LSP shutdown request.
func (h *Handler) Shutdown(ctx *glsp.Context) error {
	log.Println("lime-lsp: Shutdown")
	return nil
}

// TextDocumentDidOpen handles file open notifications.
func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("lime-lsp: opened %s\n", params.TextDocument.URI)
	diags, err := h.reload(params.TextDocument.URI, params.TextDocument.Text)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", params.TextDocument.URI, err)
	}
	if len(diags) > 0 {
		publishDiagnostics(ctx, params.TextDocument.URI, diags)
	}
	return nil
}

// TextDocumentDidClose handles file close notifications.
func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("lime-lsp: closed %s\n", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, path)
	delete(h.files, path)

	return nil
}

// TextDocumentDidChange handles file change notifications by
// re-reading the document from disk rather than trusting incremental
// change events — simpler, and correct regardless of which sync mode
// a client actually honors.
func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Printf("lime-lsp: changed %s\n", params.TextDocument.URI)

	diags, err := h.reloadFromDisk(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to reload %s: %w", params.TextDocument.URI, err)
	}
	if len(diags) > 0 {
		publishDiagnostics(ctx, params.TextDocument.URI, diags)
	}
	return nil
}

// reloadFromDisk re-reads the document at uri from the filesystem and
// reloads it.
func (h *Handler) reloadFromDisk(uri protocol.DocumentUri) ([]protocol.Diagnostic, error) {
	path, err := uriToPath(uri)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return h.reload(uri, string(content))
}

// TextDocumentSemanticTokensFull handles semantic token requests for
// the entire document.
func (h *Handler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.RLock()
	file := h.files[path]
	h.mu.RUnlock()

	if file == nil {
		return &protocol.SemanticTokens{}, nil
	}

	tokens := collectSemanticTokens(file)

	var data []uint32
	var prevLine, prevStart uint32
	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}
		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))
		prevLine, prevStart = token.Line, token.StartChar
	}

	return &protocol.SemanticTokens{Data: data}, nil
}

// reload parses and validates text (attributed to the document at
// uri), caching the resulting AST for semantic tokens and returning
// every diagnostic the load produced.
func (h *Handler) reload(uri protocol.DocumentUri, text string) ([]protocol.Diagnostic, error) {
	path, err := uriToPath(uri)
	if err != nil {
		return nil, err
	}

	result, loadErr := archdsl.LoadString(path, text)

	h.mu.Lock()
	h.content[path] = text
	if file, parseErr := grammar.ParseString(path, text); parseErr == nil {
		h.files[path] = file
	}
	h.mu.Unlock()

	if loadErr != nil && result.Architecture == nil && len(result.Diagnostics) == 0 {
		// A parse failure with no diagnostics recorded is a bug in
		// LoadString's error path, not something to surface per-line.
		return nil, loadErr
	}

	return ConvertDiagnostics(result.Diagnostics), nil
}

func publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, diags []protocol.Diagnostic) {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diags,
	})
}

func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}
	return filepath.FromSlash(path), nil
}

func ptrBool(b bool) *bool { return &b }

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind { return &k }
