package mcp

import (
	"context"
	"fmt"
	"io"
	"os"

	"compkit/internal/config"
	"compkit/internal/logging"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const serverName = "compkit"

// Server represents an MCP server instance using mcp-go
type Server struct {
	config    *config.Config
	logger    *logging.AppLogger
	client    *Client
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance with every tool registered.
func NewServer(cfg *config.Config, logger *logging.AppLogger) *Server {
	if logger == nil {
		logger = logging.GetDefault()
	}
	s := &Server{
		config: cfg,
		logger: logger,
		client: NewClient(cfg.APIURL, cfg.ClientTimeout),
	}

	s.mcpServer = server.NewMCPServer(serverName, cfg.Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	s.mcpServer.AddTools(s.tools()...)
	return s
}

// Start serves MCP over stdin/stdout until ctx is done or stdin closes.
func (s *Server) Start(ctx context.Context) error {
	return s.Serve(ctx, os.Stdin, os.Stdout)
}

// Serve serves MCP over the given streams.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	s.logger.Info("Starting MCP server", "api", s.client.BaseURL(), "tools", len(s.tools()))

	stdio := server.NewStdioServer(s.mcpServer)
	stdio.SetErrorLogger(s.logger.StandardLog())

	if err := stdio.Listen(ctx, in, out); err != nil && ctx.Err() == nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	s.logger.Info("MCP server stopped")
	return nil
}

func (s *Server) tools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("list_components",
				mcp.WithDescription("Search the UI component catalog (shadcn/ui, Magic UI, Aceternity UI). "+
					"Results are ranked by relevance to the query. Leave the query empty to list everything."),
				mcp.WithString("query", mcp.Description("Free-text search, e.g. \"button\" or \"animated text\"")),
				mcp.WithString("category", mcp.Description("Restrict to one category"),
					mcp.Enum("form", "layout", "navigation", "data", "feedback", "ai", "advanced-button", "text")),
				mcp.WithNumber("limit", mcp.Description("Maximum number of results (default all)")),
			),
			Handler: s.handleListComponents,
		},
		{
			Tool: mcp.NewTool("get_component_details",
				mcp.WithDescription("Installation command, import, usage example and documentation link for one component. "+
					"Accepts keys, aliases (\"modal\", \"btn\") and loose names."),
				mcp.WithString("componentName", mcp.Required(), mcp.Description("Component name or alias")),
				mcp.WithString("absolutePathToCurrentFile", mcp.Description("File the component will be used in")),
				mcp.WithString("absolutePathToProjectDirectory", mcp.Description("Project root, used to detect the package manager and import aliases")),
			),
			Handler: s.handleComponentDetails,
		},
		{
			Tool: mcp.NewTool("clone_frontend",
				mcp.WithDescription("Clone an existing website with UI components. Start with initial_analysis on the URL, "+
					"then compare_screenshots against your clone and follow iteration_guide until it matches."),
				mcp.WithString("requestType", mcp.Required(), mcp.Description("Workflow step"),
					mcp.Enum("initial_analysis", "component_suggestion", "compare_screenshots", "iteration_guide")),
				mcp.WithString("url", mcp.Description("initial_analysis: page to clone")),
				mcp.WithBoolean("fullPage", mcp.Description("Capture the whole scrollable page")),
				mcp.WithNumber("width", mcp.Description("Viewport width in pixels")),
				mcp.WithNumber("height", mcp.Description("Viewport height in pixels")),
				mcp.WithString("waitForSelector", mcp.Description("CSS selector to wait for before capturing")),
				mcp.WithNumber("delay", mcp.Description("Extra wait before capturing, in milliseconds")),
				mcp.WithString("analysis", mcp.Description("component_suggestion: description of the page")),
				mcp.WithString("originalUrl", mcp.Description("compare_screenshots: original page")),
				mcp.WithString("originalScreenshotId", mcp.Description("compare_screenshots: id from initial_analysis")),
				mcp.WithString("cloneUrl", mcp.Description("compare_screenshots: your clone")),
				mcp.WithNumber("iteration", mcp.Description("iteration_guide: current round, starting at 1")),
				mcp.WithString("feedback", mcp.Description("iteration_guide: what still differs")),
				mcp.WithNumber("maxIterations", mcp.Description("iteration_guide: round budget")),
			),
			Handler: s.handleClone,
		},
		{
			Tool: mcp.NewTool("generate_template",
				mcp.WithDescription("Plan a project template in four questions. Send the user's answer as message and "+
					"pass back the conversationState from the previous reply."),
				mcp.WithString("message", mcp.Required(), mcp.Description("The user's answer")),
				mcp.WithObject("conversationState", mcp.Description("State returned by the previous call; omit to start over")),
			),
			Handler: s.handleConversation("template"),
		},
		{
			Tool: mcp.NewTool("generate_landing_page",
				mcp.WithDescription("Plan a landing page in four questions. Send the user's answer as message and "+
					"pass back the conversationState from the previous reply."),
				mcp.WithString("message", mcp.Required(), mcp.Description("The user's answer")),
				mcp.WithObject("conversationState", mcp.Description("State returned by the previous call; omit to start over")),
			),
			Handler: s.handleConversation("landing"),
		},
	}
}
