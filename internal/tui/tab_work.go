package tui

import (
	"strings"

	"renoboard/internal/tui/components"
	"renoboard/internal/tui/theme"
	"renoboard/internal/view"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderWorkTab(cw int) string {
	w := a.visibleWork()

	var b strings.Builder
	b.WriteString(sectionTitle("Work items" + filterSuffix(a.category)))
	b.WriteString("\n")

	if len(w.Items) == 0 {
		b.WriteString(emptyHint("Nothing here. Press [a] to add a work item or [c] to change the filter."))
		return b.String()
	}

	perRow := 2
	if a.isCompactLayout() {
		perRow = 1
	}
	widths := components.LayoutRow(cw, perRow)

	sel := a.cursor()
	var row []string
	for i, item := range w.Items {
		card := renderWorkCard(item, widths[i%perRow], i == sel)
		row = append(row, card)
		if len(row) == perRow {
			b.WriteString(components.CardRow(row))
			b.WriteString("\n")
			row = nil
		}
	}
	if len(row) > 0 {
		b.WriteString(components.CardRow(row))
		b.WriteString("\n")
	}
	b.WriteString(dimText("  [c] filter by category"))
	return b.String()
}

func renderWorkCard(item view.WorkItemCard, width int, selected bool) string {
	t := theme.Active
	inner := components.CardInnerWidth(width)

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(mutedStyle.Render(item.Category))
	if item.Contractor != "" {
		b.WriteString(dimStyle.Render("  ·  " + item.Contractor))
	}
	b.WriteString("\n")

	barW := inner - 8
	if barW > 40 {
		barW = 40
	}
	if barW < 10 {
		barW = 10
	}
	b.WriteString(components.ProgressBar(item.Progress/100, barW))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render(item.Band))
	b.WriteString("\n")

	b.WriteString(fieldLines([]view.Field{
		{Label: "Budget", Value: item.Budget},
		{Label: "Spent", Value: item.Spent + "  (" + item.Utilization + ")"},
		{Label: "Variance", Value: item.Variance},
	}))

	if item.Dates != "" {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(item.Dates))
	}

	if len(item.Subtasks) > 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Checklist  " + item.SubtaskNote))
		for _, st := range item.Subtasks {
			b.WriteString("\n ")
			b.WriteString(st.Marker)
			b.WriteString(" ")
			b.WriteString(st.Name)
		}
	}

	title := item.Name + "  " + item.ProgressPct
	if selected {
		return components.SelectedContentCard(title, b.String(), width)
	}
	return components.ContentCard(title, b.String(), width)
}

func (a App) renderMaterialsTab(cw int) string {
	m := a.visibleMaterials()

	var b strings.Builder
	b.WriteString(sectionTitle("Materials" + filterSuffix(a.category)))
	b.WriteString("\n")

	if len(m.Rows) == 0 {
		b.WriteString(emptyHint("Nothing here. Press [a] to add a material or [c] to change the filter."))
		return b.String()
	}

	b.WriteString(table(
		[]string{"Name", "Category", "Supplier", "Qty", "Unit", "Total", "Status"},
		m.Rows, a.cursor()))

	t := theme.Active
	b.WriteString("\n\n ")
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).Render("Total  "))
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render(m.Total))

	parts := make([]string, 0, len(m.StatusCounts))
	for _, f := range m.StatusCounts {
		parts = append(parts, f.Label+" "+f.Value)
	}
	b.WriteString("\n ")
	b.WriteString(dimText(strings.Join(parts, "   ")))
	b.WriteString("\n")
	b.WriteString(dimText("  [c] filter by category"))
	return b.String()
}

func filterSuffix(category string) string {
	if category == "" {
		return ""
	}
	return " — " + view.CategoryLabel(category)
}
