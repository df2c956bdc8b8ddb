package main

import (
	"fmt"
	"time"

	"compkit/internal/screenshot"
	"compkit/pkg/fileops"

	"github.com/spf13/cobra"
)

var (
	captureOut      string
	captureFullPage bool
	captureWidth    int
	captureHeight   int
	captureWaitFor  string
	captureDelay    time.Duration
	captureOutline  bool
)

var captureCmd = &cobra.Command{
	Use:   "capture <url>",
	Short: "Capture a screenshot of a page",
	Long: `Open a page in headless Chrome and save a PNG screenshot.

Examples:
  compkit capture https://example.com --out example.png
  compkit capture https://example.com --full-page --wait-for main --outline`,
	Args: cobra.ExactArgs(1),
	RunE: runCapture,
}

func init() {
	rootCmd.AddCommand(captureCmd)
	captureCmd.Flags().StringVarP(&captureOut, "out", "o", "screenshot.png", "Output PNG file")
	captureCmd.Flags().BoolVar(&captureFullPage, "full-page", false, "Capture the full scrollable page")
	captureCmd.Flags().IntVar(&captureWidth, "width", 0, "Viewport width (default from config)")
	captureCmd.Flags().IntVar(&captureHeight, "height", 0, "Viewport height (default from config)")
	captureCmd.Flags().StringVar(&captureWaitFor, "wait-for", "", "CSS selector to wait for before capturing")
	captureCmd.Flags().DurationVar(&captureDelay, "delay", 0, "Extra wait after load, e.g. 500ms")
	captureCmd.Flags().BoolVar(&captureOutline, "outline", false, "Print the page structure")
}

func runCapture(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	capturer, err := screenshot.NewCapturer(screenshot.NewChromeLauncher(a.cfg.Screenshot), a.cfg.Screenshot, a.logger)
	if err != nil {
		return err
	}
	defer capturer.Close()

	ctx, stop := signalContext()
	defer stop()

	c, err := capturer.Capture(ctx, args[0], screenshot.Options{
		FullPage:        captureFullPage,
		Width:           captureWidth,
		Height:          captureHeight,
		WaitForSelector: captureWaitFor,
		Delay:           captureDelay,
	})
	if err != nil {
		return err
	}

	png, err := c.PNG()
	if err != nil {
		return err
	}
	if err := fileops.AtomicWriteFile(captureOut, png, 0o644); err != nil {
		return fmt.Errorf("save screenshot: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%dx%d) to %s\n", c.URL, c.Width, c.Height, captureOut)

	if captureOutline && c.HTML != "" {
		outline, err := screenshot.ExtractOutline(c.HTML)
		if err != nil {
			a.logger.Warn("Could not read page structure", "error", err)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), outline.Text())
	}
	return nil
}
