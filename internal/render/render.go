// Package render prints Markdown to the terminal, styled with glamour or as
// word-wrapped plain text.
package render

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/muesli/termenv"
)

const (
	DefaultWidth  = 80
	detectTimeout = 200 * time.Millisecond
)

// DetectStyle attempts to detect terminal background using termenv,
// but will respect GLAMOUR_STYLE if set to a concrete value (not "auto").
// A timeout ensures we never hang on terminals that don't respond.
func DetectStyle(timeout time.Duration) string {
	defaultStyle := "dark"

	style := os.Getenv("GLAMOUR_STYLE")
	if style != "" && style != "auto" {
		return style
	}

	ch := make(chan string, 1)
	go func() {
		out := termenv.NewOutput(os.Stdout)
		if out.HasDarkBackground() {
			ch <- "dark"
			return
		}
		ch <- "light"
	}()

	select {
	case s := <-ch:
		return s
	case <-time.After(timeout):
		return defaultStyle
	}
}

// Options configure a Renderer.
type Options struct {
	// Style is a glamour standard style; empty detects one.
	Style string
	Width int
	// Plain skips glamour and only wraps the text.
	Plain bool
}

// Renderer turns Markdown into terminal output.
type Renderer struct {
	style string
	width int
	plain bool
}

// New returns a Renderer. Style detection happens here, once.
func New(opts Options) *Renderer {
	r := &Renderer{style: opts.Style, width: opts.Width, plain: opts.Plain}
	if r.width <= 0 {
		r.width = DefaultWidth
	}
	if r.style == "" && !r.plain {
		r.style = DetectStyle(detectTimeout)
	}
	return r
}

// Width returns the wrap width.
func (r *Renderer) Width() int { return r.width }

// WithWidth returns a copy of r that wraps at width.
func (r *Renderer) WithWidth(width int) *Renderer {
	out := *r
	if width > 0 {
		out.width = width
	}
	return &out
}

// Plain reports whether glamour styling is off.
func (r *Renderer) Plain() bool { return r.plain }

// Style returns the glamour style in use, empty in plain mode.
func (r *Renderer) Style() string {
	if r.plain {
		return ""
	}
	return r.style
}

// Markdown renders md. If glamour fails, the wrapped plain text is returned
// together with the error.
func (r *Renderer) Markdown(md string) (string, error) {
	if r.plain {
		return Wrap(md, r.width), nil
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(r.width),
	)
	if err != nil {
		return Wrap(md, r.width), fmt.Errorf("create glamour renderer: %w", err)
	}
	out, err := tr.Render(md)
	if err != nil {
		return Wrap(md, r.width), fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// Wrap word-wraps text to width, keeping existing line breaks. Fenced code
// is left alone; words longer than width are hard-wrapped.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	inFence := false
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			out = append(out, line)
			continue
		}
		if inFence || strings.TrimSpace(line) == "" {
			out = append(out, line)
			continue
		}
		wrapped := wordwrap.String(line, width)
		out = append(out, wrap.String(wrapped, width))
	}
	return strings.Join(out, "\n")
}
