package tui

import (
	"strings"

	"renoboard/internal/tui/components"
	"renoboard/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderDashboardTab(cw int) string {
	d := a.res.Sections.Dashboard
	charts := a.res.Charts

	var b strings.Builder
	b.WriteString(metricCards(d.Cards, cw))
	b.WriteString("\n")

	half := cw / 2
	left := components.ContentCard("Budget by category",
		table([]string{"Category", "Budget", "Spent", "Remaining"}, d.CategoryRows, -1),
		half)

	rightBody := renderChartBars(charts.BudgetByCategory, components.CardInnerWidth(cw-half))
	right := components.ContentCard("Spend", rightBody, cw-half)

	b.WriteString(components.CardRow([]string{left, right}))

	if d.NextMilestone != "" {
		t := theme.Active
		b.WriteString("\n ")
		b.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).Render("Next milestone: "))
		b.WriteString(lipgloss.NewStyle().Foreground(t.TextPrimary).Render(d.NextMilestone))
	}
	return b.String()
}

func (a App) renderBudgetTab(cw int) string {
	bv := a.res.Sections.Budget
	charts := a.res.Charts

	var b strings.Builder
	b.WriteString(metricCards(bv.Cards, cw))
	b.WriteString("\n")

	half := cw / 2
	left := components.ContentCard("Per category",
		table([]string{"Category", "Budget", "Spent", "Used"}, bv.CategoryRows, -1),
		half)

	inner := components.CardInnerWidth(cw - half)
	var chartBody strings.Builder
	if len(bv.Monthly) > 0 {
		chartBody.WriteString(components.BarChart(bv.Monthly, bv.Months, theme.Active.Blue, inner, 10))
		chartBody.WriteString("\n\n")
		chartBody.WriteString(dimText("Cumulative "))
		chartBody.WriteString(components.Sparkline(bv.Cumulative, theme.Active.Accent))
	} else {
		chartBody.WriteString(dimText("No monthly spend recorded"))
	}
	right := components.ContentCard("Monthly spend", chartBody.String(), cw-half)

	b.WriteString(components.CardRow([]string{left, right}))

	// Utilization gauges per category
	b.WriteString("\n")
	b.WriteString(sectionTitle("Utilization"))
	b.WriteString("\n")
	labelW := 0
	for _, row := range bv.CategoryRows {
		if w := lipgloss.Width(row[0]); w > labelW {
			labelW = w
		}
	}
	barW := cw - labelW - 12
	if barW > 50 {
		barW = 50
	}
	if barW < 10 {
		barW = 10
	}
	budgets := chartSeries(charts.BudgetByCategory, "Budget")
	spents := chartSeries(charts.BudgetByCategory, "Spent")
	for j, label := range charts.BudgetByCategory.Labels {
		pct := 0.0
		if j < len(budgets) && j < len(spents) && budgets[j] > 0 {
			pct = spents[j] / budgets[j]
		}
		b.WriteString(" ")
		b.WriteString(components.BudgetGauge(label, pct, labelW, barW))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
