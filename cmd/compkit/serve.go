package main

import (
	"fmt"

	"compkit/internal/api"
	"compkit/internal/clone"
	"compkit/internal/conversation"
	"compkit/internal/screenshot"

	"github.com/spf13/cobra"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the compkit HTTP API. It serves component search and details,
the clone-frontend workflow with headless screenshots, and the template and
landing page conversations. The MCP server forwards its tool calls here.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind to (overrides config)")
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("host") {
		a.cfg.Server.Host = serveHost
	}
	if servePort != "" {
		a.cfg.Server.Port = servePort
	}

	capturer, err := screenshot.NewCapturer(screenshot.NewChromeLauncher(a.cfg.Screenshot), a.cfg.Screenshot, a.logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := capturer.Close(); err != nil {
			a.logger.Warn("Failed to close browser", "error", err)
		}
	}()

	srv, err := api.NewServer(*a.cfg, api.Services{
		Catalog:  a.catalog,
		Clone:    clone.NewService(a.catalog, a.matcher, capturer, a.cfg.Clone.MaxIterations, a.logger),
		Template: conversation.NewTemplateFlow(a.catalog, a.matcher, a.logger),
		Landing:  conversation.NewLandingFlow(a.catalog, a.matcher, a.logger),
	}, a.logger)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "compkit API listening on http://%s\n", displayAddr(a.cfg.Server.Host, a.cfg.Server.Port))
	fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl+C to stop")
	return srv.ListenAndServe(ctx)
}

func displayAddr(host, port string) string {
	if host == "" {
		host = "localhost"
	}
	return host + ":" + port
}
