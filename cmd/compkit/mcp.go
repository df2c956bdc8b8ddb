package main

import (
	"compkit/internal/mcp"

	"github.com/spf13/cobra"
)

var mcpAPIURL string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server on stdio",
	Long: `Start the Model Context Protocol server. It speaks JSON-RPC 2.0 on
stdin/stdout and forwards tool calls to the compkit HTTP API.

Tools:
  - list_components
  - get_component_details
  - clone_frontend
  - generate_template
  - generate_landing_page

When the API is not running, tools answer with instructions the assistant can
follow by hand. This command is normally started by an MCP client.`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().StringVar(&mcpAPIURL, "api-url", "", "compkit API base URL (overrides config)")
}

func runMCP(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	if mcpAPIURL != "" {
		a.cfg.APIURL = mcpAPIURL
	}

	ctx, stop := signalContext()
	defer stop()

	return mcp.NewServer(a.cfg, a.logger).Start(ctx)
}
