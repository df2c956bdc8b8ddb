// Package browse is the two-pane component browser: a filterable list of
// catalog entries next to a rendered preview of the selected component's
// installation instructions.
package browse

import (
	"fmt"
	"strconv"
	"strings"

	"compkit/internal/catalog"
	"compkit/internal/logging"
	"compkit/internal/render"
	"compkit/internal/tui/helpers"
	"compkit/internal/tui/styles"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru/v2"
)

const previewCacheSize = 128

type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Filter     key.Binding
	Format     key.Binding
	FocusLeft  key.Binding
	FocusRight key.Binding
	Back       key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Filter:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Format:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "toggle format")),
		FocusLeft:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "focus list")),
		FocusRight: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "focus preview")),
		Back:       key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q/esc", "back")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Filter, k.Format, k.FocusRight, k.FocusLeft, k.Back}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type componentItem struct {
	rec catalog.ComponentRecord
}

func (i componentItem) Title() string { return i.rec.DisplayName }
func (i componentItem) Description() string {
	return fmt.Sprintf("%s · %s", i.rec.Category, i.rec.Key)
}
func (i componentItem) FilterValue() string {
	return i.rec.DisplayName + " " + i.rec.Key + " " + strings.Join(i.rec.Tags, " ")
}

type focusedPane int

const (
	focusList focusedPane = iota
	focusPreview
)

// previewRenderedMsg carries a finished preview. Only the latest renderID is
// shown; older results are still cached.
type previewRenderedMsg struct {
	key      string
	content  string
	renderID uint64
}

type Model struct {
	logger   *logging.AppLogger
	renderer *render.Renderer

	list     list.Model
	viewport viewport.Model
	help     help.Model
	keys     KeyMap

	cache     *lru.Cache[string, string]
	renderID  uint64
	formatted bool
	focus     focusedPane

	width  int
	height int
}

func New(ctx helpers.UIContext) *Model {
	records := ctx.Catalog.Records()
	items := make([]list.Item, len(records))
	for i, r := range records {
		items[i] = componentItem{rec: r}
	}

	l := list.New(items, list.NewDefaultDelegate(), ctx.Width, ctx.Height)
	l.Title = "Components"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.KeyMap.Quit.SetEnabled(false)

	vp := viewport.New(ctx.Width, ctx.Height)
	vp.MouseWheelEnabled = true

	// Only fails for a non-positive size.
	cache, _ := lru.New[string, string](previewCacheSize)

	renderer := ctx.Renderer
	if renderer == nil {
		renderer = render.New(render.Options{})
	}

	return &Model{
		logger:    ctx.Logger,
		renderer:  renderer,
		list:      l,
		viewport:  vp,
		help:      help.New(),
		keys:      DefaultKeyMap(),
		cache:     cache,
		formatted: !renderer.Plain(),
		width:     ctx.Width,
		height:    ctx.Height,
	}
}

func (m *Model) Init() tea.Cmd {
	if rec, ok := m.Selected(); ok {
		return m.showPreview(rec)
	}
	return nil
}

// Selected returns the highlighted component.
func (m *Model) Selected() (catalog.ComponentRecord, bool) {
	it, ok := m.list.SelectedItem().(componentItem)
	if !ok {
		return catalog.ComponentRecord{}, false
	}
	return it.rec, true
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.logger.LogMessage(msg)

	var cmds []tea.Cmd
	before, _ := m.Selected()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		if rec, ok := m.Selected(); ok {
			return m, m.showPreview(rec)
		}
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case list.FilterMatchesMsg:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd

	case previewRenderedMsg:
		m.cache.Add(msg.key, msg.content)
		if msg.renderID == m.renderID {
			m.viewport.SetContent(msg.content)
			m.viewport.GotoTop()
		}
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			prev := m.list.FilterState()
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			cmds = append(cmds, cmd)
			if prev != m.list.FilterState() {
				if rec, ok := m.Selected(); ok {
					cmds = append(cmds, m.showPreview(rec))
				}
			}
			return m, tea.Batch(cmds...)
		}

		switch {
		case key.Matches(msg, m.keys.FocusRight):
			m.focus = focusPreview
			return m, nil
		case key.Matches(msg, m.keys.FocusLeft):
			m.focus = focusList
			return m, nil
		case key.Matches(msg, m.keys.Back):
			if m.list.FilterState() == list.FilterApplied && msg.String() == "esc" {
				m.list.ResetFilter()
				if rec, ok := m.Selected(); ok {
					return m, m.showPreview(rec)
				}
				return m, nil
			}
			m.logger.LogUserAction("browse_back", "")
			return m, func() tea.Msg { return helpers.NavigateToMainMenuMsg{} }
		case key.Matches(msg, m.keys.Format):
			m.formatted = !m.formatted
			m.logger.LogUserAction("browse_toggle_format", strconv.FormatBool(m.formatted))
			if rec, ok := m.Selected(); ok {
				return m, m.showPreview(rec)
			}
			return m, nil
		}

		if m.focus == focusPreview {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
	}

	if after, ok := m.Selected(); ok && after.Key != before.Key {
		cmds = append(cmds, m.showPreview(after))
	}
	return m, tea.Batch(cmds...)
}

// resize splits the width one third list, two thirds preview.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	frameW, frameH := styles.PaneStyle.GetFrameSize()
	const mainLeftMargin = 1
	avail := max(width-frameW*2-mainLeftMargin, 0)

	listWidth := max(avail/3, 20)
	vpWidth := max(avail-listWidth, 30)

	headerH := lipgloss.Height(m.header())
	helpH := lipgloss.Height(m.helpView())
	contentHeight := max(height-headerH-helpH-frameH, 5)

	m.list.SetSize(listWidth, contentHeight)
	m.viewport.Width = vpWidth
	m.viewport.Height = contentHeight
	m.logger.Debug("Browser resized", "width", width, "height", height, "list_width", listWidth, "viewport_width", vpWidth)
}

func (m *Model) cacheKey(rec catalog.ComponentRecord, width int) string {
	mode := "plain"
	if m.formatted {
		mode = "glamour"
	}
	return fmt.Sprintf("%s|%s|%d", rec.Key, mode, width)
}

// showPreview applies a cached preview or starts rendering one.
func (m *Model) showPreview(rec catalog.ComponentRecord) tea.Cmd {
	width := max(m.viewport.Width-2, 20)
	cacheKey := m.cacheKey(rec, width)
	m.renderID++

	if cached, ok := m.cache.Get(cacheKey); ok {
		m.viewport.SetContent(cached)
		m.viewport.GotoTop()
		return nil
	}

	m.viewport.SetContent("Rendering " + rec.DisplayName + "...")
	id := m.renderID
	formatted := m.formatted
	renderer := m.renderer.WithWidth(width)
	logger := m.logger

	return func() tea.Msg {
		md := catalog.InstallationMarkdown(rec, nil, "")
		content := render.Wrap(md, width)
		if formatted {
			out, err := renderer.Markdown(md)
			if err != nil {
				logger.Warn("Preview rendering failed", "component", rec.Key, "error", err)
			}
			content = out
		}
		return previewRenderedMsg{key: cacheKey, content: content, renderID: id}
	}
}

func (m *Model) header() string {
	title := styles.TitleStyle.Render("compkit · Browse components")
	sub := styles.SubtitleStyle.Render(fmt.Sprintf("%d components", len(m.list.Items())))
	return styles.HeaderContainerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, sub))
}

func (m *Model) helpView() string {
	return styles.HelpContainerStyle.Render(styles.HelpStyle.Render(m.help.View(m.keys)))
}

func (m *Model) View() string {
	listStyle := styles.PaneStyle
	vpStyle := styles.PaneStyle
	if m.focus == focusList {
		listStyle = styles.PaneFocusedStyle
	} else {
		vpStyle = styles.PaneFocusedStyle
	}

	listStyle = listStyle.Width(m.list.Width()).Height(m.list.Height())
	vpStyle = vpStyle.Width(m.viewport.Width).Height(m.viewport.Height)

	panes := lipgloss.JoinHorizontal(
		lipgloss.Top,
		listStyle.Render(m.list.View()),
		vpStyle.Render(m.viewport.View()),
	)
	panes = styles.MainContainerStyle.Render(panes)

	return lipgloss.JoinVertical(lipgloss.Left, m.header(), panes, m.helpView())
}
