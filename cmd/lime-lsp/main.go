package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"lime/internal/applsp"
)

const lsName = "lime-lsp"

var (
	version = "0.1.0"
	handler protocol.Handler
)

func main() {
	commonlog.Configure(1, nil)

	limeHandler := applsp.NewHandler()

	handler = protocol.Handler{
		Initialize:                     limeHandler.Initialize,
		Initialized:                    limeHandler.Initialized,
		Shutdown:                       limeHandler.Shutdown,
		TextDocumentDidOpen:            limeHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           limeHandler.TextDocumentDidClose,
		TextDocumentDidChange:          limeHandler.TextDocumentDidChange,
		TextDocumentSemanticTokensFull: limeHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Printf("Starting lime-lsp server (v%s)...\n", version)

	if err := s.RunStdio(); err != nil {
		log.Println("Error starting lime-lsp server:", err)
		os.Exit(1)
	}
}
