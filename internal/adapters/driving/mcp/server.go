package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/quizbank/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Tool names.
const (
	ToolExtract  = "extract_questions"
	ToolValidate = "validate_bank"
)

// Server exposes question extraction and bank validation to MCP clients.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer creates a new MCP server with the given ports.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "quizbank",
		Version: Version,
	}

	s := &Server{
		ports: ports,
		server: mcp.NewServer(impl, &mcp.ServerOptions{
			Instructions: instructions(ports),
		}),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// instructions tells clients which tool to call for which job and how
// relative paths are resolved.
func instructions(ports *Ports) string {
	var b strings.Builder
	b.WriteString("quizbank turns exam documents exported from Word (.html/.htm, .docx, .txt) ")
	b.WriteString("into a JSON question bank and checks banks for defects.\n")
	fmt.Fprintf(&b, "- %s: parse a document; set dry_run to inspect questions without writing the bank.\n", ToolExtract)
	fmt.Fprintf(&b, "- %s: report critical errors and warnings, optionally writing the ids to hide.\n", ToolValidate)
	fmt.Fprintf(&b, "- %ssettings and %shistory/{extractions|validations} are read-only.\n", uriScheme, uriScheme)

	if ports.Settings == nil {
		b.WriteString("Paths are used as given.")
		return b.String()
	}
	settings := ports.Settings.Get()
	fmt.Fprintf(&b, "Relative input paths resolve against %s; bank names against %s.",
		settings.ProjectRoot, filepath.Join(settings.ProjectRoot, settings.DataDir))
	return b.String()
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	logger.Info("MCP server listening on stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP starts the MCP server over streamable HTTP on addr.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("MCP server shutdown: %v", err)
		}
	}()

	logger.Info("MCP server listening on http://%s", addr)
	if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
