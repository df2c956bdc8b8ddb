// Package testutil builds UI contexts and waits on teatest output for the TUI
// tests.
package testutil

import (
	"strings"
	"testing"
	"time"

	"compkit/internal/catalog"
	"compkit/internal/conversation"
	"compkit/internal/logging"
	"compkit/internal/patterns"
	"compkit/internal/render"
	"compkit/internal/tui/helpers"

	"github.com/charmbracelet/x/exp/teatest"
)

// NewContext returns a context with the built-in catalog, both flows and a
// plain renderer so output carries no styling.
func NewContext(t *testing.T, width, height int) helpers.UIContext {
	t.Helper()
	logger, _ := logging.NewTestLogger()
	cat := catalog.Default()
	matcher := patterns.Default(logger)

	ctx := helpers.NewUIContext(width, height, nil, logger)
	ctx.Catalog = cat
	ctx.Template = conversation.NewTemplateFlow(cat, matcher, logger)
	ctx.Landing = conversation.NewLandingFlow(cat, matcher, logger)
	ctx.Renderer = render.New(render.Options{Plain: true})
	ctx.OutputDir = t.TempDir()
	return ctx
}

// WaitForString waits until the program output contains s.
func WaitForString(t *testing.T, tm *teatest.TestModel, s string) {
	t.Helper()
	WaitForAll(t, tm, s)
}

// WaitForAll waits until one read of the program output contains every
// string. WaitFor consumes what it reads, so strings that land in the same
// frame must be checked together.
func WaitForAll(t *testing.T, tm *teatest.TestModel, ss ...string) {
	t.Helper()
	teatest.WaitFor(
		t,
		tm.Output(),
		func(b []byte) bool {
			out := string(b)
			for _, s := range ss {
				if !strings.Contains(out, s) {
					return false
				}
			}
			return true
		},
		teatest.WithCheckInterval(time.Millisecond*100),
		teatest.WithDuration(time.Second*3),
	)
}
