package browse

import (
	"strings"
	"testing"

	"compkit/internal/tui/helpers"
	"compkit/internal/tui/testutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
)

func TestBrowse_PreviewFollowsSelection(t *testing.T) {
	ctx := testutil.NewContext(t, 120, 40)
	tm := teatest.NewTestModel(t, New(ctx), teatest.WithInitialTermSize(120, 40))

	testutil.WaitForString(t, tm, "npx shadcn@latest add button")

	tm.Send(tea.KeyMsg{Type: tea.KeyDown})
	testutil.WaitForString(t, tm, "npx shadcn@latest add input")
}

func TestBrowse_CachesPreviews(t *testing.T) {
	ctx := testutil.NewContext(t, 120, 40)
	m := New(ctx)

	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init should start rendering the first preview")
	}
	m.Update(cmd())

	if !strings.Contains(m.viewport.View(), "npx shadcn@latest add button") {
		t.Errorf("preview not applied:\n%s", m.viewport.View())
	}

	rec, ok := m.Selected()
	if !ok || rec.Key != "button" {
		t.Fatalf("expected button selected, got %q", rec.Key)
	}
	if m.showPreview(rec) != nil {
		t.Error("second preview of the same component should come from the cache")
	}
}

func TestBrowse_StaleRenderIgnored(t *testing.T) {
	ctx := testutil.NewContext(t, 120, 40)
	m := New(ctx)
	m.Init()

	m.Update(previewRenderedMsg{key: "old", content: "stale content", renderID: m.renderID - 1})
	if strings.Contains(m.viewport.View(), "stale content") {
		t.Error("stale render should not replace the preview")
	}
	if _, ok := m.cache.Get("old"); !ok {
		t.Error("stale render should still be cached")
	}
}

func TestBrowse_ToggleFormatRerenders(t *testing.T) {
	ctx := testutil.NewContext(t, 120, 40)
	m := New(ctx)
	m.Update(m.Init()())

	if m.formatted {
		t.Fatal("plain renderer should start unformatted")
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	if !m.formatted {
		t.Error("g should toggle formatting")
	}
	if cmd == nil {
		t.Error("toggling should render a preview that is not cached yet")
	}
}

func TestBrowse_BackNavigatesToMenu(t *testing.T) {
	ctx := testutil.NewContext(t, 120, 40)
	m := New(ctx)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
	} {
		_, cmd := m.Update(k)
		if cmd == nil {
			t.Fatalf("%s should return a command", k)
		}
		if _, ok := cmd().(helpers.NavigateToMainMenuMsg); !ok {
			t.Errorf("%s should navigate to the menu", k)
		}
	}
}

func TestBrowse_FocusRoutesKeys(t *testing.T) {
	ctx := testutil.NewContext(t, 120, 40)
	m := New(ctx)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.focus != focusPreview {
		t.Fatal("right should focus the preview")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if rec, _ := m.Selected(); rec.Key != "button" {
		t.Errorf("down in the preview should not move the list, selected %q", rec.Key)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if rec, _ := m.Selected(); rec.Key != "input" {
		t.Errorf("down in the list should select the next component, got %q", rec.Key)
	}
}
