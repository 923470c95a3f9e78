package tui

import (
	"strings"

	"renoboard/internal/tui/components"
	"renoboard/internal/tui/theme"
	"renoboard/internal/view"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderPurchaseTab(cw int) string {
	p := a.res.Sections.Purchase

	half := cw / 2
	body := table([]string{"Item", "Amount", "Notes"}, p.Rows, -1)
	body += "\n\n " + lipgloss.NewStyle().Foreground(theme.Active.TextMuted).Render("Total  ") +
		lipgloss.NewStyle().Foreground(theme.Active.TextPrimary).Bold(true).Render(p.Total)
	left := components.ContentCard("Acquisition costs", body, half)

	inner := components.CardInnerWidth(cw - half)
	right := components.ContentCard("Breakdown",
		renderChartBars(a.res.Charts.PurchaseBreakdown, inner), cw-half)

	out := components.CardRow([]string{left, right})
	out += "\n" + dimText("  [enter] edit costs and line items")
	return out
}

func (a App) renderFinancingTab(cw int) string {
	f := a.res.Sections.Financing

	var b strings.Builder
	b.WriteString(metricCards(f.Cards, cw))
	b.WriteString("\n")

	// One card per credit, up to three per row.
	perRow := 3
	if a.isCompactLayout() {
		perRow = 2
	}
	var row []string
	flush := func() {
		if len(row) > 0 {
			b.WriteString(components.CardRow(row))
			b.WriteString("\n")
			row = nil
		}
	}
	widths := components.LayoutRow(cw, perRow)
	for i, c := range f.Credits {
		body := fieldLines(c.Summary)
		if len(c.Details) > 0 {
			body += "\n\n" + fieldLines(c.Details)
		}
		row = append(row, components.ContentCard(c.Title, body, widths[i%perRow]))
		if len(row) == perRow {
			flush()
		}
	}
	flush()

	inner := components.CardInnerWidth(cw)
	b.WriteString(components.ContentCard("Funding sources",
		renderChartBars(a.res.Charts.FinancingSplit, inner), cw))
	b.WriteString("\n")
	b.WriteString(dimText("  [enter] edit financing"))
	return b.String()
}

func (a App) renderSubsidiesTab(cw int) string {
	s := a.res.Sections.Subsidies

	var b strings.Builder
	b.WriteString(metricCards([]view.Card{
		{Label: "Requested", Value: s.Requested},
		{Label: "Received", Value: s.Received},
		{Label: "Pending", Value: s.Pending},
	}, cw))
	b.WriteString("\n")

	if len(s.Rows) == 0 {
		b.WriteString(emptyHint("No subsidies yet. Press [a] to add one."))
		return b.String()
	}

	b.WriteString(sectionTitle("Grants"))
	b.WriteString("\n")
	b.WriteString(table(
		[]string{"Name", "Issuer", "Requested", "Received", "Status"},
		s.Rows, a.cursor()))
	return b.String()
}
