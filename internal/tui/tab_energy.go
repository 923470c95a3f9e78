package tui

import (
	"strconv"
	"strings"

	"renoboard/internal/pipeline"
	"renoboard/internal/tui/components"
	"renoboard/internal/tui/theme"
	"renoboard/internal/view"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderEnergyTab(cw int) string {
	e := a.res.Sections.Energy

	half := cw / 2
	rating := components.ContentCard("Energy rating", renderRating(e.Rating), half)

	inner := components.CardInnerWidth(cw - half)
	chart := components.ContentCard("Before / after",
		renderBeforeAfter(a.res.Charts.EnergyBeforeAfter, inner), cw-half)

	var b strings.Builder
	b.WriteString(components.CardRow([]string{rating, chart}))
	b.WriteString("\n")

	savings := components.ContentCard("Estimated savings", kvOrHint(e.Savings), half)
	value := components.ContentCard("Property value", kvOrHint(e.Value), cw-half)
	b.WriteString(components.CardRow([]string{savings, value}))

	if len(e.Comparisons) > 0 {
		b.WriteString("\n")
		b.WriteString(sectionTitle("Option studies"))
		b.WriteString("\n")
		widths := components.LayoutRow(cw, 2)
		for _, c := range e.Comparisons {
			cards := make([]string, 2)
			for i, opt := range c.Options {
				cards[i] = renderComparisonOption(c.Title, opt, widths[i])
			}
			b.WriteString(components.CardRow(cards))
			b.WriteString("\n")
		}
	}

	b.WriteString(dimText("  [enter] edit figures   [E] edit rating"))
	return b.String()
}

// renderBeforeAfter draws the two rating series as paired horizontal bars.
func renderBeforeAfter(c pipeline.Chart, width int) string {
	t := theme.Active
	if len(c.Series) < 2 {
		return dimText("No data")
	}

	var rows []components.HBar
	for i, label := range c.Labels {
		for si, s := range c.Series {
			v := 0.0
			if i < len(s.Values) {
				v = s.Values[i]
			}
			color := t.Red
			if si == 1 {
				color = t.Green
			}
			rows = append(rows, components.HBar{
				Label: label + " " + s.Name,
				Value: v,
				Color: color,
			})
		}
	}
	return components.HBarChart(rows, width, func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	})
}

func kvOrHint(fields []view.Field) string {
	if len(fields) == 0 {
		return dimText("No figures yet")
	}
	return fieldLines(fields)
}

func renderComparisonOption(title string, opt view.ComparisonOptionView, width int) string {
	t := theme.Active

	var b strings.Builder
	for i, p := range opt.Points {
		if i > 0 {
			b.WriteString("\n")
		}
		color := t.TextDim
		switch p.Marker {
		case "+":
			color = t.Green
		case "-":
			color = t.Red
		}
		b.WriteString(lipgloss.NewStyle().Foreground(color).Render(p.Marker))
		b.WriteString(" ")
		b.WriteString(lipgloss.NewStyle().Foreground(t.TextPrimary).Render(p.Name))
	}

	name := title + ": " + opt.Name
	if opt.Selected {
		return components.SelectedContentCard(name+"  ✓ chosen", b.String(), width)
	}
	return components.ContentCard(name, b.String(), width)
}
