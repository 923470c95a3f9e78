package tui

import (
	"strings"

	"renoboard/internal/tui/components"
	"renoboard/internal/tui/theme"
	"renoboard/internal/view"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderJournalTab(cw int) string {
	j := a.res.Sections.Journal

	var b strings.Builder
	b.WriteString(sectionTitle("Site journal"))
	b.WriteString("\n")

	if len(j.Entries) == 0 {
		b.WriteString(emptyHint("No entries yet. Press [a] to write one."))
		return b.String()
	}

	sel := a.cursor()
	for i, entry := range j.Entries {
		b.WriteString(renderJournalCard(entry, cw, i == sel))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderJournalCard(entry view.JournalCard, width int, selected bool) string {
	t := theme.Active

	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	tagStyle := lipgloss.NewStyle().Foreground(t.Cyan)

	var b strings.Builder
	if len(entry.Tags) > 0 {
		b.WriteString(tagStyle.Render("#" + strings.Join(entry.Tags, " #")))
		b.WriteString("\n")
	}
	b.WriteString(textStyle.Render(entry.Body))

	writeList := func(label string, items []string) {
		if len(items) == 0 {
			return
		}
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(label))
		for _, it := range items {
			b.WriteString("\n  · ")
			b.WriteString(textStyle.Render(it))
		}
	}
	writeList("Problems", entry.Problems)
	writeList("Solutions", entry.Solutions)
	writeList("Lessons", entry.Lessons)

	title := entry.Date + "  " + entry.Title
	if selected {
		return components.SelectedContentCard(title, b.String(), width)
	}
	return components.ContentCard(title, b.String(), width)
}

func (a App) renderHistoryTab(cw int) string {
	h := view.RenderHistory(a.res.History)

	var b strings.Builder
	b.WriteString(sectionTitle("Change log"))
	b.WriteString("\n")

	if len(h.Rows) == 0 {
		b.WriteString(emptyHint("No changes recorded yet."))
		return b.String()
	}

	b.WriteString(table([]string{"When", "What"}, h.Rows, a.cursor()))
	b.WriteString("\n")
	b.WriteString(dimText("  Newest first, capped at the last 50 changes"))
	return b.String()
}
