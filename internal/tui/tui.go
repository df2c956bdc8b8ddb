// Package tui provides the terminal user interface for compkit.
//
// The interface is built on Bubble Tea and Lip Gloss. A root MainModel shows
// a menu and hands control to one screen at a time:
//
//   - browse: filterable component list with a rendered installation preview
//   - wizard: the project template and landing page conversations
//
// Screens return to the menu by emitting helpers.NavigateToMainMenuMsg.
package tui

import (
	"compkit/internal/logging"
	"compkit/internal/tui/browse"
	"compkit/internal/tui/components"
	"compkit/internal/tui/helpers"
	"compkit/internal/tui/wizard"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// AppState is the screen the TUI is showing.
type AppState int

const (
	StateMenu AppState = iota
	StateBrowse
	StateTemplate
	StateLanding
	StateQuitting
)

func (s AppState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateBrowse:
		return "browse"
	case StateTemplate:
		return "template"
	case StateLanding:
		return "landing"
	case StateQuitting:
		return "quitting"
	}
	return "unknown"
}

type item struct {
	title       string
	description string
	state       AppState
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.description }
func (i item) FilterValue() string { return i.title }

// MainModel is the root model. Screens are created fresh on every visit.
type MainModel struct {
	ctx    helpers.UIContext
	logger *logging.AppLogger
	state  AppState

	menu   list.Model
	active tea.Model
	layout components.LayoutModel
}

// NewMainModel returns the root model starting at start. StateMenu shows the
// menu; any other state opens that screen directly.
func NewMainModel(ctx helpers.UIContext, start AppState) *MainModel {
	items := []list.Item{
		item{
			title:       "Browse components",
			description: "Search the catalog and preview install commands, imports and usage.",
			state:       StateBrowse,
		},
		item{
			title:       "Plan a project template",
			description: "Answer four questions and get a component plan for your project.",
			state:       StateTemplate,
		},
		item{
			title:       "Plan a landing page",
			description: "Answer four questions and get a section by section landing page plan.",
			state:       StateLanding,
		},
	}

	menu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	menu.SetShowTitle(false)
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(true)
	menu.SetShowHelp(false)
	menu.KeyMap.Quit.SetEnabled(false)

	m := &MainModel{
		ctx:    ctx,
		logger: ctx.Logger,
		state:  StateMenu,
		menu:   menu,
		layout: components.NewLayout(components.LayoutConfig{MarginX: 2, MarginY: 1, MaxWidth: 100}),
	}
	if start != StateMenu {
		m.open(start)
	}
	return m
}

// State returns the current screen.
func (m *MainModel) State() AppState { return m.state }

func (m *MainModel) Init() tea.Cmd {
	m.logger.Info("TUI started", "state", m.state.String())
	if m.active != nil {
		return m.active.Init()
	}
	return nil
}

// open swaps in a fresh screen for state. It returns false for states that
// have no screen.
func (m *MainModel) open(state AppState) bool {
	var screen tea.Model
	switch state {
	case StateBrowse:
		screen = browse.New(m.ctx)
	case StateTemplate, StateLanding:
		flow := m.ctx.Flow(state.String())
		if flow == nil {
			m.logger.Warn("No conversation flow configured", "flow", state.String())
			return false
		}
		screen = wizard.New(m.ctx, flow)
	default:
		return false
	}

	m.logger.LogStateTransition("MainModel", m.state.String(), state.String())
	m.active = screen
	m.state = state
	return true
}

func (m *MainModel) returnToMenu() {
	m.logger.LogStateTransition("MainModel", m.state.String(), StateMenu.String())
	m.state = StateMenu
	m.active = nil
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.layout, _ = m.layout.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ctx.Width = msg.Width
		m.ctx.Height = msg.Height
		m.menu.SetSize(max(msg.Width-4, 0), max(msg.Height-12, 0))
		if m.active != nil {
			var cmd tea.Cmd
			m.active, cmd = m.active.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.state = StateQuitting
			return m, tea.Quit
		}
		if m.state == StateMenu {
			return m.updateMenu(msg)
		}

	case helpers.NavigateToMainMenuMsg:
		m.returnToMenu()
		return m, nil
	}

	if m.state == StateMenu {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}
	if m.active != nil {
		var cmd tea.Cmd
		m.active, cmd = m.active.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *MainModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	filtering := m.menu.FilterState() == list.Filtering

	switch msg.String() {
	case "q":
		if !filtering {
			m.state = StateQuitting
			return m, tea.Quit
		}
	case "enter":
		if !filtering {
			selected, ok := m.menu.SelectedItem().(item)
			if !ok {
				return m, nil
			}
			m.logger.LogUserAction("menu_selection", selected.title)
			if !m.open(selected.state) {
				return m, nil
			}
			cmds := []tea.Cmd{m.active.Init()}
			if m.ctx.HasValidDimensions() {
				var cmd tea.Cmd
				m.active, cmd = m.active.Update(tea.WindowSizeMsg{Width: m.ctx.Width, Height: m.ctx.Height})
				cmds = append(cmds, cmd)
			}
			return m, tea.Batch(cmds...)
		}
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m *MainModel) View() string {
	switch {
	case m.state == StateQuitting:
		m.layout = m.layout.SetConfig(components.LayoutConfig{Title: "Goodbye!"})
		return m.layout.Render("")
	case m.active != nil:
		return m.active.View()
	}

	m.layout = m.layout.SetConfig(components.LayoutConfig{
		Title:    "compkit",
		Subtitle: "UI components for shadcn/ui projects",
		HelpText: "↑/↓ to navigate • enter to select • / to filter • q to quit",
	})
	return m.layout.Render(m.menu.View())
}

// Run starts the TUI on the terminal and blocks until it exits.
func Run(ctx helpers.UIContext, start AppState) error {
	p := tea.NewProgram(NewMainModel(ctx, start), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
