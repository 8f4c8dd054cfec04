package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/quizbank/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can extract
and validate question banks.

Tools:
  extract_questions  extract a document into a question bank (or dry run)
  validate_bank      validate a question bank and suggest ids to hide

By default, the server communicates over stdio using JSON-RPC.
Use --port to start an HTTP server instead.

Examples:
  # Stdio mode (default)
  quizbank mcp serve

  # HTTP mode
  quizbank mcp serve --port 8080`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	s, err := loadServices()
	if err != nil {
		return err
	}

	server, err := newMCPServer(s)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}

func newMCPServer(s *Services) (*mcp.Server, error) {
	return mcp.NewServer(&mcp.Ports{
		Extraction: s.Extraction,
		Validation: s.Validation,
		History:    s.History,
		Settings:   s.Settings,
	})
}
