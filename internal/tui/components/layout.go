// Package components holds layout pieces shared by the TUI screens.
package components

import (
	"strings"

	"compkit/internal/render"
	"compkit/internal/tui/styles"

	tea "github.com/charmbracelet/bubbletea"
)

const minContentWidth = 40

type LayoutConfig struct {
	Title    string
	Subtitle string
	HelpText string
	MarginX  int
	MarginY  int
	MaxWidth int
}

// LayoutModel renders a titled screen with optional error and help lines.
type LayoutModel struct {
	config LayoutConfig
	width  int
	height int
	err    error
}

func NewLayout(config LayoutConfig) LayoutModel {
	return LayoutModel{config: withDefaults(config, LayoutConfig{MarginX: 2, MarginY: 1, MaxWidth: 100})}
}

func withDefaults(c, d LayoutConfig) LayoutConfig {
	if c.MarginX == 0 {
		c.MarginX = d.MarginX
	}
	if c.MarginY == 0 {
		c.MarginY = d.MarginY
	}
	if c.MaxWidth == 0 {
		c.MaxWidth = d.MaxWidth
	}
	return c
}

func (m LayoutModel) Update(msg tea.Msg) (LayoutModel, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// SetConfig replaces the texts; zero margins keep their current values.
func (m LayoutModel) SetConfig(config LayoutConfig) LayoutModel {
	m.config = withDefaults(config, m.config)
	return m
}

func (m LayoutModel) SetError(err error) LayoutModel {
	if err != nil {
		m.err = err
	}
	return m
}

func (m LayoutModel) ClearError() LayoutModel {
	m.err = nil
	return m
}

func (m LayoutModel) Error() error {
	return m.err
}

// Render lays out the title, subtitle, content, error and help sections.
// Content is expected to be wrapped already.
func (m LayoutModel) Render(content string) string {
	var sections []string
	width := m.ContentWidth()

	if m.config.Title != "" {
		sections = append(sections, styles.TitleStyle.Render(render.Wrap(m.config.Title, width)))
	}
	if m.config.Subtitle != "" {
		sections = append(sections, styles.SubtitleStyle.Render(render.Wrap(m.config.Subtitle, width)))
	}
	if content != "" {
		sections = append(sections, content)
	}
	if m.err != nil {
		sections = append(sections, styles.ErrorStyle.Render(render.Wrap("Error: "+m.err.Error(), width)))
	}
	if m.config.HelpText != "" {
		sections = append(sections, styles.HelpStyle.Render(render.Wrap(m.config.HelpText, width)))
	}

	return m.addMargins(strings.Join(sections, "\n\n"))
}

func (m LayoutModel) addMargins(content string) string {
	lines := strings.Split(content, "\n")
	marginLeft := strings.Repeat(" ", m.config.MarginX)
	for i, line := range lines {
		lines[i] = marginLeft + line
	}

	margin := strings.Repeat("\n", m.config.MarginY)
	return margin + strings.Join(lines, "\n") + margin
}

// ContentWidth is the usable width inside the margins, clamped to
// [40, MaxWidth].
func (m LayoutModel) ContentWidth() int {
	available := m.width - (m.config.MarginX * 2)
	if available > m.config.MaxWidth {
		return m.config.MaxWidth
	}
	if available < minContentWidth {
		return minContentWidth
	}
	return available
}

// ContentHeight reserves room for the title, subtitle and help sections.
func (m LayoutModel) ContentHeight() int {
	return max(m.height-(m.config.MarginY*2)-8, 5)
}

func (m LayoutModel) InputWidth() int {
	return min(max(m.ContentWidth()-8, 30), 80)
}
