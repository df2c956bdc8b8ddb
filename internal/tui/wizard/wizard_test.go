package wizard

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"compkit/internal/tui/helpers"
	"compkit/internal/tui/testutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
)

func answer(tm *teatest.TestModel, s string) {
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestWizard_CompleteTemplateFlow(t *testing.T) {
	ctx := testutil.NewContext(t, 100, 40)
	tm := teatest.NewTestModel(t, New(ctx, ctx.Template), teatest.WithInitialTermSize(100, 40))

	testutil.WaitForString(t, tm, "Question 1 of 4")

	// Empty answers are rejected.
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	testutil.WaitForString(t, tm, "Error: message is required")

	answer(tm, "SaaS dashboard")
	testutil.WaitForString(t, tm, "Question 2 of 4")
	answer(tm, "Developers")
	testutil.WaitForString(t, tm, "Question 3 of 4")
	answer(tm, "login form, settings")
	testutil.WaitForString(t, tm, "Question 4 of 4")
	answer(tm, "Minimal and clean")

	testutil.WaitForString(t, tm, "**Audience:** Developers")

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	testutil.WaitForString(t, tm, "Saved to")

	data, err := os.ReadFile(filepath.Join(ctx.OutputDir, "template.md"))
	if err != nil {
		t.Fatalf("result was not saved: %v", err)
	}
	if !strings.Contains(string(data), "**Style:** Minimal and clean") {
		t.Errorf("saved result missing style:\n%s", data)
	}
}

func TestWizard_SubmitAdvancesState(t *testing.T) {
	ctx := testutil.NewContext(t, 100, 40)
	m := New(ctx, ctx.Landing)

	answers := []string{"A fitness tracking app", "Students", "hero, pricing, faq", "Bold gradients"}
	for i, a := range answers {
		m.input.SetValue(a)
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if m.state == nil || m.state.CurrentStep != i+1 {
			t.Fatalf("after answer %d expected step %d, got %+v", i+1, i+1, m.state)
		}
		if m.input.Value() != "" {
			t.Error("input should be cleared after an answer")
		}
		if i < len(answers)-1 && cmd != nil {
			t.Error("only the last answer renders a result")
		}
		if i == len(answers)-1 && cmd == nil {
			t.Error("last answer should render the result")
		}
	}

	result, done := m.Result()
	if !done {
		t.Fatal("wizard should be done")
	}
	if !strings.Contains(result, "A fitness tracking app") {
		t.Errorf("result does not mention the product:\n%s", result)
	}
}

func TestWizard_EscNavigatesToMenu(t *testing.T) {
	ctx := testutil.NewContext(t, 100, 40)
	m := New(ctx, ctx.Template)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should return a command")
	}
	if _, ok := cmd().(helpers.NavigateToMainMenuMsg); !ok {
		t.Error("esc should navigate to the menu")
	}
}

func TestWizard_SaveError(t *testing.T) {
	ctx := testutil.NewContext(t, 100, 40)
	blocker := filepath.Join(ctx.OutputDir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	ctx.OutputDir = filepath.Join(blocker, "sub")

	m := New(ctx, ctx.Template)
	m.done = true
	m.result = "# Result"

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	m.Update(cmd())
	if m.layout.Error() == nil {
		t.Error("a failed save should be shown as an error")
	}
	if m.savedPath != "" {
		t.Error("savedPath should stay empty after a failed save")
	}
}
