// Package wizard walks a conversation flow in the terminal: one text input
// per question, then the generated Markdown in a scrollable viewport that can
// be saved to disk.
package wizard

import (
	"fmt"
	"path/filepath"

	"compkit/internal/conversation"
	"compkit/internal/logging"
	"compkit/internal/render"
	"compkit/internal/tui/components"
	"compkit/internal/tui/helpers"
	"compkit/internal/tui/styles"
	"compkit/pkg/fileops"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type (
	resultRenderedMsg struct {
		content string
	}

	savedMsg struct {
		path string
		err  error
	}
)

type Model struct {
	logger   *logging.AppLogger
	flow     *conversation.Flow
	renderer *render.Renderer
	layout   components.LayoutModel

	input    textinput.Model
	viewport viewport.Model

	state  *conversation.State
	prompt string
	result string
	done   bool

	outputDir string
	savedPath string
}

func New(ctx helpers.UIContext, flow *conversation.Flow) *Model {
	ti := textinput.New()
	ti.Placeholder = "Type your answer"
	ti.CharLimit = 500
	ti.Focus()

	renderer := ctx.Renderer
	if renderer == nil {
		renderer = render.New(render.Options{})
	}

	m := &Model{
		logger:    ctx.Logger,
		flow:      flow,
		renderer:  renderer,
		layout:    components.NewLayout(components.LayoutConfig{}),
		input:     ti,
		viewport:  viewport.New(ctx.Width, ctx.Height),
		prompt:    flow.Start(),
		outputDir: ctx.OutputDir,
	}
	if ctx.HasValidDimensions() {
		m.resize(tea.WindowSizeMsg{Width: ctx.Width, Height: ctx.Height})
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Result returns the generated Markdown once all questions are answered.
func (m *Model) Result() (string, bool) {
	return m.result, m.done
}

func (m *Model) resize(msg tea.WindowSizeMsg) {
	m.layout, _ = m.layout.Update(msg)
	m.input.Width = m.layout.InputWidth()
	m.viewport.Width = m.layout.ContentWidth()
	m.viewport.Height = m.layout.ContentHeight()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.logger.LogMessage(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)
		if m.done {
			return m, m.renderResult()
		}
		return m, nil

	case resultRenderedMsg:
		m.viewport.SetContent(msg.content)
		m.viewport.GotoTop()
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.layout = m.layout.SetError(msg.err)
			return m, nil
		}
		m.layout = m.layout.ClearError()
		m.savedPath = msg.path
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			m.logger.LogUserAction("wizard_back", m.flow.Name())
			return m, func() tea.Msg { return helpers.NavigateToMainMenuMsg{} }
		}
		if m.done {
			return m.updateDone(msg)
		}
		if msg.String() == "enter" {
			return m.submit()
		}
	}

	var cmd tea.Cmd
	if !m.done {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m *Model) submit() (tea.Model, tea.Cmd) {
	reply, err := m.flow.Advance(m.state, m.input.Value())
	if err != nil {
		m.layout = m.layout.SetError(err)
		return m, nil
	}
	m.layout = m.layout.ClearError()
	m.logger.LogUserAction("wizard_answer", fmt.Sprintf("%s step %d", m.flow.Name(), reply.State.CurrentStep))

	m.state = &reply.State
	m.input.Reset()
	if !reply.Complete {
		m.prompt = reply.Result
		return m, nil
	}

	m.done = true
	m.result = reply.Result
	m.input.Blur()
	return m, m.renderResult()
}

func (m *Model) updateDone(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s":
		return m, m.save()
	case "enter":
		return m, func() tea.Msg { return helpers.NavigateToMainMenuMsg{} }
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) renderResult() tea.Cmd {
	md := m.result
	renderer := m.renderer.WithWidth(m.viewport.Width)
	logger := m.logger
	return func() tea.Msg {
		out, err := renderer.Markdown(md)
		if err != nil {
			logger.Warn("Result rendering failed", "error", err)
		}
		return resultRenderedMsg{content: out}
	}
}

func (m *Model) save() tea.Cmd {
	path := filepath.Join(m.outputDir, m.flow.Name()+".md")
	data := []byte(m.result)
	logger := m.logger
	return func() tea.Msg {
		if err := fileops.AtomicWriteFile(path, data, 0o644); err != nil {
			logger.Error("Failed to save result", "path", path, "error", err)
			return savedMsg{err: fmt.Errorf("save %s: %w", path, err)}
		}
		logger.Info("Saved result", "path", path)
		return savedMsg{path: path}
	}
}

func (m *Model) View() string {
	if m.done {
		help := "↑/↓ scroll • s save • enter/esc back to menu"
		subtitle := "All questions answered"
		if m.savedPath != "" {
			subtitle = styles.SuccessStyle.Render("Saved to " + m.savedPath)
		}
		m.layout = m.layout.SetConfig(components.LayoutConfig{
			Title:    m.flow.Title(),
			Subtitle: subtitle,
			HelpText: help,
		})
		return m.layout.Render(m.viewport.View())
	}

	step := 0
	if m.state != nil {
		step = m.state.CurrentStep
	}
	m.layout = m.layout.SetConfig(components.LayoutConfig{
		Title:    m.flow.Title(),
		Subtitle: fmt.Sprintf("Step %d of %d", step+1, conversation.TotalSteps),
		HelpText: "enter to answer • esc back to menu • ctrl+c quit",
	})

	prompt := render.Wrap(m.prompt, m.layout.ContentWidth())
	return m.layout.Render(styles.NormalTextStyle.Render(prompt) + "\n" + styles.InputStyle.Render(m.input.View()))
}
