// Command compkit serves the component catalog, clone workflow and
// conversation generators over HTTP and MCP, and offers the same features
// from the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"compkit/internal/catalog"
	"compkit/internal/config"
	"compkit/internal/logging"
	"compkit/internal/patterns"
	"compkit/internal/render"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const version = "1.0.0"

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "compkit",
	Short: "compkit - shadcn/ui component toolkit",
	Long: `compkit looks up shadcn/ui, Magic UI and Aceternity components, suggests
components for a page, captures screenshots for cloning a frontend, and walks
you through planning a project template or landing page.

Run "compkit serve" for the HTTP API and "compkit mcp" for AI assistants.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate("compkit version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/compkit/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app holds what every command needs.
type app struct {
	cfg     *config.Config
	logger  *logging.AppLogger
	catalog *catalog.Catalog
	matcher *patterns.Matcher
}

func loadApp() (*app, error) {
	if configPath != "" {
		os.Setenv("COMPKIT_CONFIG", configPath)
	}

	logger := logging.NewAppLogger()
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if os.Getenv("DEBUG") == "" {
		level := cfg.LogLevel
		if logLevel != "" {
			level = logLevel
		}
		logger.SetLevel(logging.ParseLevel(level))
	}

	cat, err := catalog.LoadWithExtensions(cfg.Catalog.ExtensionsDir, logger)
	if err != nil {
		return nil, err
	}

	matcher := patterns.Default(logger)
	if err := matcher.Validate(cat); err != nil {
		logger.Warn("Pattern table references unknown components", "error", err)
	}

	logger.Debug("Configuration loaded", "path", config.ConfigPath(), "components", cat.Len())
	return &app{cfg: cfg, logger: logger, catalog: cat, matcher: matcher}, nil
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// newRenderer styles output for a terminal and falls back to plain text
// when stdout is redirected.
func newRenderer(plain bool) *render.Renderer {
	width := render.DefaultWidth
	tty := term.IsTerminal(int(os.Stdout.Fd()))
	if tty {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = min(w, 120)
		}
	}
	return render.New(render.Options{Width: width, Plain: plain || !tty})
}

// printMarkdown renders md to the command's output.
func printMarkdown(cmd *cobra.Command, a *app, r *render.Renderer, md string) {
	out, err := r.Markdown(md)
	if err != nil {
		a.logger.Warn("Falling back to plain output", "error", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
}
