package main

import (
	"path/filepath"
	"strings"

	"compkit/internal/catalog"

	"github.com/spf13/cobra"
)

var (
	detailsProject string
	detailsFile    string
	detailsPlain   bool
)

var detailsCmd = &cobra.Command{
	Use:   "details <component>",
	Short: "Show installation instructions for a component",
	Long: `Show the install command, import and usage for one component. Names,
keys and aliases are accepted ("modal" finds dialog). With --project the
instructions follow the project's package manager and import alias.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDetails,
}

func init() {
	rootCmd.AddCommand(detailsCmd)
	detailsCmd.Flags().StringVar(&detailsProject, "project", "", "Project directory to tailor the instructions to")
	detailsCmd.Flags().StringVar(&detailsFile, "file", "", "File the component will be used in")
	detailsCmd.Flags().BoolVar(&detailsPlain, "plain", false, "Plain text output without styling")
}

func runDetails(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	req := catalog.DetailsRequest{ComponentName: strings.Join(args, " ")}
	if detailsProject != "" {
		if req.ProjectDir, err = filepath.Abs(detailsProject); err != nil {
			return err
		}
	}
	if detailsFile != "" {
		if req.CurrentFile, err = filepath.Abs(detailsFile); err != nil {
			return err
		}
	}

	d := a.catalog.Details(req)
	if d.ProjectErr != nil {
		a.logger.Warn("Could not inspect project, using defaults", "dir", req.ProjectDir, "error", d.ProjectErr)
	}
	printMarkdown(cmd, a, newRenderer(detailsPlain), d.Markdown)
	return nil
}
