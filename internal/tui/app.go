// Package tui provides the interactive Bubble Tea dashboard for renoboard.
package tui

import (
	"fmt"
	"strings"

	"renoboard/internal/edit"
	"renoboard/internal/pipeline"
	"renoboard/internal/project"
	"renoboard/internal/tui/components"
	"renoboard/internal/tui/theme"
	"renoboard/internal/view"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Tab indexes, matching components.Tabs order.
const (
	tabDashboard = iota
	tabProject
	tabPurchase
	tabFinancing
	tabSubsidies
	tabWork
	tabMaterials
	tabBudget
	tabEnergy
	tabJournal
	tabHistory
)

// App is the root Bubble Tea model.
type App struct {
	pl  *pipeline.Pipeline
	res pipeline.Result

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Cursor per list tab
	cursors map[int]int

	// Category filter for the work and materials tabs ("" = all)
	category string

	// In-flight edit
	session  *edit.Session
	editForm *huh.Form

	notice string
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180

	minContentHeight = 5
)

// NewApp creates the TUI model over a loaded pipeline.
func NewApp(pl *pipeline.Pipeline) App {
	return App{
		pl:      pl,
		res:     pl.Refresh(),
		cursors: make(map[int]int),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// listLen returns the number of selectable rows on the active tab.
func (a App) listLen() int {
	switch a.activeTab {
	case tabSubsidies:
		return len(a.res.Sections.Subsidies.Rows)
	case tabWork:
		return len(a.visibleWork().Items)
	case tabMaterials:
		return len(a.visibleMaterials().Rows)
	case tabJournal:
		return len(a.res.Sections.Journal.Entries)
	case tabHistory:
		return len(a.res.History)
	}
	return 0
}

func (a App) cursor() int {
	c := a.cursors[a.activeTab]
	if n := a.listLen(); c >= n {
		c = n - 1
	}
	if c < 0 {
		c = 0
	}
	return c
}

// recordIndex maps the cursor on the active tab to the entity's position in
// the record, accounting for the category filter.
func (a App) recordIndex() int {
	c := a.cursor()
	switch a.activeTab {
	case tabWork:
		items := a.visibleWork().Items
		if c < len(items) {
			return items[c].Index
		}
	case tabMaterials:
		idx := a.visibleMaterials().Indexes
		if c < len(idx) {
			return idx[c]
		}
	default:
		return c
	}
	return 0
}

// commandForKey translates an edit key on the active tab into a command, or
// returns false when the tab has no edit affordance for that key.
func (a App) commandForKey(key string) (edit.Command, bool) {
	var kind edit.Kind
	switch a.activeTab {
	case tabProject:
		kind = edit.KindGeneral
	case tabPurchase:
		kind = edit.KindPurchase
	case tabFinancing:
		kind = edit.KindFinancing
	case tabSubsidies:
		kind = edit.KindSubsidy
	case tabWork:
		kind = edit.KindWork
	case tabMaterials:
		kind = edit.KindMaterial
	case tabEnergy:
		kind = edit.KindEnergy
	case tabJournal:
		kind = edit.KindJournal
	default:
		return edit.Command{}, false
	}

	switch key {
	case "enter":
		if kind.IsList() && a.listLen() == 0 {
			return edit.Command{}, false
		}
		return edit.Command{Kind: kind, Index: a.recordIndex(), Op: edit.OpEdit}, true
	case "a":
		if !kind.IsList() {
			return edit.Command{}, false
		}
		return edit.Command{Kind: kind, Op: edit.OpAdd}, true
	case "x":
		if !kind.IsList() || a.listLen() == 0 {
			return edit.Command{}, false
		}
		return edit.Command{Kind: kind, Index: a.recordIndex(), Op: edit.OpDelete}, true
	}
	return edit.Command{}, false
}

// Energy rating and objectives edits ride on dedicated keys rather than the
// tab's enter command.
func (a App) sectionCommand(key string) (edit.Command, bool) {
	if key == "E" && (a.activeTab == tabProject || a.activeTab == tabEnergy) {
		return edit.Command{Kind: edit.KindRating, Op: edit.OpEdit}, true
	}
	if key == "O" && a.activeTab == tabProject {
		return edit.Command{Kind: edit.KindObjective, Op: edit.OpEdit}, true
	}
	return edit.Command{}, false
}

func (a *App) openSession(cmd edit.Command) tea.Cmd {
	s, err := edit.Open(a.pl.Record, cmd)
	if err != nil {
		a.notice = err.Error()
		return nil
	}
	a.session = s
	if s.State() == edit.StateConfirming {
		a.editForm = nil
		return nil
	}
	a.editForm = buildForm(s)
	if a.width > 0 {
		a.editForm = a.editForm.WithWidth(formWidth(a.width)).WithHeight(a.height - 4)
	}
	return a.editForm.Init()
}

func (a *App) closeSession() {
	a.session = nil
	a.editForm = nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.editForm != nil {
			a.editForm = a.editForm.WithWidth(formWidth(msg.Width)).WithHeight(msg.Height - 4)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// Delete confirmation intercepts everything.
		if a.session != nil && a.session.State() == edit.StateConfirming {
			switch key {
			case "y", "Y", "enter":
				desc, err := a.session.ConfirmDelete()
				if err != nil {
					a.notice = err.Error()
				} else {
					a.res = a.pl.Commit(desc)
					a.notice = a.res.Notice
				}
				a.closeSession()
			case "n", "N", "esc", "q":
				a.session.Cancel()
				a.closeSession()
			}
			return a, nil
		}

		// An open form owns the keyboard.
		if a.editForm != nil {
			return a.updateForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		// List navigation on list tabs
		if n := a.listLen(); n > 0 {
			switch key {
			case "j", "down":
				if a.cursors[a.activeTab] < n-1 {
					a.cursors[a.activeTab]++
				}
				return a, nil
			case "k", "up":
				if a.cursors[a.activeTab] > 0 {
					a.cursors[a.activeTab]--
				}
				return a, nil
			case "g":
				a.cursors[a.activeTab] = 0
				return a, nil
			case "G":
				a.cursors[a.activeTab] = n - 1
				return a, nil
			}
		}

		// Category filter cycling on work/materials tabs
		if (a.activeTab == tabWork || a.activeTab == tabMaterials) && key == "c" {
			a.category = nextCategory(a.category)
			a.cursors[a.activeTab] = 0
			return a, nil
		}

		// Edit commands
		if cmd, ok := a.commandForKey(key); ok {
			return a, a.openSession(cmd)
		}
		if cmd, ok := a.sectionCommand(key); ok {
			return a, a.openSession(cmd)
		}

		if key == "q" {
			return a, tea.Quit
		}

		// Tab navigation
		switch key {
		case "left", "h":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right", "l", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
			}
		}
		return a, nil
	}

	if a.editForm != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.editForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.editForm = f
	}

	switch a.editForm.State {
	case huh.StateCompleted:
		desc, err := a.session.Commit()
		if err != nil {
			a.notice = err.Error()
		} else {
			a.res = a.pl.Commit(desc)
			a.notice = a.res.Notice
		}
		a.closeSession()
		return a, nil
	case huh.StateAborted:
		a.session.Cancel()
		a.closeSession()
		return a, nil
	}

	return a, cmd
}

// visibleWork applies the active category filter. The pre-rendered result
// holds the unfiltered section; filtered views are cheap to rebuild.
func (a App) visibleWork() view.WorkView {
	if a.category == "" {
		return a.res.Sections.Work
	}
	return view.RenderWork(a.pl.Record, a.category)
}

func (a App) visibleMaterials() view.MaterialsView {
	if a.category == "" {
		return a.res.Sections.Materials
	}
	return view.RenderMaterials(a.pl.Record, a.category)
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

func formWidth(w int) int {
	fw := w - 8
	if fw > 100 {
		fw = 100
	}
	if fw < 40 {
		fw = 40
	}
	return fw
}

func nextCategory(current string) string {
	if current == "" {
		return project.Categories[0]
	}
	for i, c := range project.Categories {
		if c == current {
			if i == len(project.Categories)-1 {
				return ""
			}
			return project.Categories[i+1]
		}
	}
	return ""
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.session != nil && a.session.State() == edit.StateConfirming {
		return a.viewConfirm()
	}
	if a.editForm != nil {
		return a.viewForm()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  renoboard needs at least %d columns.\n",
		a.width, minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewConfirm() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Red).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.Red).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Delete?"))
	b.WriteString("\n\n")
	b.WriteString(textStyle.Render(truncStr(a.session.DeleteLabel(), 50)))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("[y] delete   [n] keep"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()))
}

func (a App) viewForm() string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	title := " " + titleStyle.Render(formTitle(a.session.Command()))

	return lipgloss.JoinVertical(lipgloss.Left, title, a.editForm.View())
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	for _, bind := range []struct{ key, desc string }{
		{"d p u f s w", "Jump to tab (first row)"},
		{"m b e o i", "Jump to tab (second row)"},
		{"← → tab", "Previous / Next tab"},
		{"j k  g G", "Move in lists / first / last"},
	} {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-12s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Editing"))
	b.WriteString("\n")
	for _, bind := range []struct{ key, desc string }{
		{"enter", "Edit section / selected row"},
		{"a", "Add entry (list tabs)"},
		{"x", "Delete selected (asks to confirm)"},
		{"E", "Edit energy rating"},
		{"O", "Edit objectives (project tab)"},
		{"c", "Cycle category filter (work, materials)"},
		{"esc", "Cancel form"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	} {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-12s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	savedAt := ""
	if !a.res.SavedAt.IsZero() {
		savedAt = a.res.SavedAt.Format("15:04:05")
	}
	statusBar := components.RenderStatusBar(w, savedAt, truncStr(a.notice, 48))

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabDashboard:
		content = a.renderDashboardTab(cw)
	case tabProject:
		content = a.renderProjectTab(cw)
	case tabPurchase:
		content = a.renderPurchaseTab(cw)
	case tabFinancing:
		content = a.renderFinancingTab(cw)
	case tabSubsidies:
		content = a.renderSubsidiesTab(cw)
	case tabWork:
		content = a.renderWorkTab(cw)
	case tabMaterials:
		content = a.renderMaterialsTab(cw)
	case tabBudget:
		content = a.renderBudgetTab(cw)
	case tabEnergy:
		content = a.renderEnergyTab(cw)
	case tabJournal:
		content = a.renderJournalTab(cw)
	case tabHistory:
		content = a.renderHistoryTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
