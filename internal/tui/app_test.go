package tui

import (
	"path/filepath"
	"testing"

	"renoboard/internal/edit"
	"renoboard/internal/pipeline"
	"renoboard/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestApp(t *testing.T) App {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	pl, err := pipeline.New(st)
	if err != nil {
		t.Fatalf("pipeline.New: %v", err)
	}

	app := NewApp(pl)
	m, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m.(App)
}

func press(t *testing.T, app App, keys ...string) App {
	t.Helper()
	for _, k := range keys {
		var msg tea.Msg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ := app.Update(msg)
		app = m.(App)
	}
	return app
}

func TestTabNavigation(t *testing.T) {
	app := newTestApp(t)

	app = press(t, app, "w")
	if app.activeTab != tabWork {
		t.Fatalf("activeTab = %d, want %d", app.activeTab, tabWork)
	}

	app = press(t, app, "i")
	if app.activeTab != tabHistory {
		t.Fatalf("activeTab = %d, want %d", app.activeTab, tabHistory)
	}

	app = press(t, app, "tab")
	app = press(t, app, "l")
}

func TestCursorMovement(t *testing.T) {
	app := newTestApp(t)
	app = press(t, app, "s")

	n := len(app.res.Sections.Subsidies.Rows)
	if n < 2 {
		t.Fatalf("default record should have several subsidies, got %d", n)
	}

	app = press(t, app, "j", "j")
	if app.cursor() != 2 {
		t.Fatalf("cursor = %d, want 2", app.cursor())
	}

	app = press(t, app, "G")
	if app.cursor() != n-1 {
		t.Fatalf("cursor after G = %d, want %d", app.cursor(), n-1)
	}

	app = press(t, app, "g")
	if app.cursor() != 0 {
		t.Fatalf("cursor after g = %d, want 0", app.cursor())
	}
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	app := newTestApp(t)
	app = press(t, app, "w")

	before := len(app.pl.Record.WorkItems)
	target := app.visibleWork().Items[0].Name

	app = press(t, app, "x")
	if app.session == nil {
		t.Fatal("expected a pending delete session")
	}
	if got := app.session.DeleteLabel(); got != target {
		t.Fatalf("DeleteLabel = %q, want %q", got, target)
	}
	if len(app.pl.Record.WorkItems) != before {
		t.Fatal("record changed before confirmation")
	}

	// Declining keeps the item.
	app = press(t, app, "n")
	if app.session != nil {
		t.Fatal("session should be closed after declining")
	}
	if len(app.pl.Record.WorkItems) != before {
		t.Fatal("declined delete still removed the item")
	}

	// Confirming removes it and logs the change.
	app = press(t, app, "x", "y")
	if len(app.pl.Record.WorkItems) != before-1 {
		t.Fatalf("items = %d, want %d", len(app.pl.Record.WorkItems), before-1)
	}
	if len(app.res.History) == 0 {
		t.Fatal("delete should append a history entry")
	}
	if app.res.History[0].Description != "Deleted work item: "+target {
		t.Fatalf("history = %q", app.res.History[0].Description)
	}
}

func TestObjectivesFormOpensFromProjectTab(t *testing.T) {
	app := newTestApp(t)
	app = press(t, app, "p", "O")

	if app.session == nil {
		t.Fatal("O on the project tab should open an objectives session")
	}
	if got := app.session.Command().Kind; got != edit.KindObjective {
		t.Fatalf("session kind = %q, want %q", got, edit.KindObjective)
	}
	if app.editForm == nil {
		t.Fatal("objectives session should carry a form")
	}

	// O is a project-tab key only.
	app = press(t, app, "esc", "w", "O")
	if app.session != nil {
		t.Fatal("O should do nothing on the work tab")
	}
}

func TestCategoryFilterCycles(t *testing.T) {
	app := newTestApp(t)
	app = press(t, app, "w")

	if app.category != "" {
		t.Fatalf("filter should start empty, got %q", app.category)
	}

	seen := map[string]bool{}
	for i := 0; i < 8; i++ {
		app = press(t, app, "c")
		seen[app.category] = true
	}
	if !seen[""] {
		t.Fatal("cycling should come back to the unfiltered view")
	}
	if len(seen) < 3 {
		t.Fatalf("expected the cycle to visit several categories, saw %d", len(seen))
	}
}

func TestFilteredDeleteHitsRecordIndex(t *testing.T) {
	app := newTestApp(t)
	app = press(t, app, "w", "c") // first category filter

	w := app.visibleWork()
	if len(w.Items) == 0 {
		t.Skip("first category has no items in the default record")
	}
	target := w.Items[0].Name
	recordIdx := w.Items[0].Index

	app = press(t, app, "x")
	if app.session == nil {
		t.Fatal("expected a pending delete session")
	}
	if app.session.Command().Index != recordIdx {
		t.Fatalf("command index = %d, want record position %d",
			app.session.Command().Index, recordIdx)
	}
	if app.session.DeleteLabel() != target {
		t.Fatalf("DeleteLabel = %q, want %q", app.session.DeleteLabel(), target)
	}
}

func TestTooNarrowView(t *testing.T) {
	app := newTestApp(t)
	m, _ := app.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	app = m.(App)

	out := app.View()
	if out == "" {
		t.Fatal("narrow view should still render a message")
	}
}
