package main

import (
	"compkit/internal/conversation"
	"compkit/internal/tui"
	"compkit/internal/tui/helpers"

	"github.com/spf13/cobra"
)

var outputDir string

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse components in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(tui.StateBrowse)
	},
}

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Plan a project template interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(tui.StateTemplate)
	},
}

var landingCmd = &cobra.Command{
	Use:   "landing",
	Short: "Plan a landing page interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(tui.StateLanding)
	},
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(tui.StateMenu)
	},
}

func init() {
	for _, c := range []*cobra.Command{templateCmd, landingCmd, uiCmd} {
		c.Flags().StringVar(&outputDir, "output-dir", "", "Directory results are saved to (default: current directory)")
	}
	rootCmd.AddCommand(browseCmd, templateCmd, landingCmd, uiCmd)
}

func runTUI(start tui.AppState) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	ctx := helpers.NewUIContext(0, 0, a.cfg, a.logger)
	ctx.Catalog = a.catalog
	ctx.Template = conversation.NewTemplateFlow(a.catalog, a.matcher, a.logger)
	ctx.Landing = conversation.NewLandingFlow(a.catalog, a.matcher, a.logger)
	ctx.Renderer = newRenderer(false)
	ctx.OutputDir = outputDir

	return tui.Run(ctx, start)
}
