package tui

import (
	"fmt"
	"strings"

	"renoboard/internal/cli"
	"renoboard/internal/pipeline"
	"renoboard/internal/tui/components"
	"renoboard/internal/tui/theme"
	"renoboard/internal/view"

	"github.com/charmbracelet/lipgloss"
)

// Shared rendering helpers for the tab views. Each tab assembles cards and
// tables out of these; the per-tab files only decide what goes where.

func sectionTitle(s string) string {
	t := theme.Active
	return lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render(" " + s)
}

// metricCards renders a row of headline cards across the content width.
func metricCards(cards []view.Card, cw int) string {
	if len(cards) == 0 {
		return ""
	}
	structs := make([]struct{ Label, Value, Note string }, len(cards))
	for i, c := range cards {
		structs[i] = struct{ Label, Value, Note string }{c.Label, c.Value, c.Note}
	}
	return metricCardRow(structs, cw)
}

func metricCardRow(cards []struct{ Label, Value, Note string }, cw int) string {
	// Reuse the component layout; wrap to a second row when narrow.
	if cw < compactWidth && len(cards) > 2 {
		half := (len(cards) + 1) / 2
		top := metricCardRow(cards[:half], cw)
		bottom := metricCardRow(cards[half:], cw)
		return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
	}
	return components.MetricCardRow(cards, cw)
}

// table renders padded columns with a muted header. selected highlights one
// data row; pass -1 for none.
func table(headers []string, rows [][]string, selected int) string {
	t := theme.Active

	n := len(headers)
	widths := make([]int, n)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < n && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	headStyle := lipgloss.NewStyle().Foreground(t.TextDim).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)

	pad := func(row []string) string {
		parts := make([]string, n)
		for i := 0; i < n; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if i == 0 {
				parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
			} else {
				parts[i] = fmt.Sprintf("%*s", widths[i], cell)
			}
		}
		return strings.Join(parts, "  ")
	}

	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(headStyle.Render(pad(headers)))
	for i, row := range rows {
		b.WriteString("\n")
		if i == selected {
			b.WriteString(selStyle.Render("▸" + pad(row)))
		} else {
			b.WriteString(" ")
			b.WriteString(rowStyle.Render(pad(row)))
		}
	}
	return b.String()
}

// fieldLines renders label/value pairs in two aligned columns.
func fieldLines(fields []view.Field) string {
	t := theme.Active
	labelW := 0
	for _, f := range fields {
		if w := lipgloss.Width(f.Label); w > labelW {
			labelW = w
		}
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	lines := make([]string, len(fields))
	for i, f := range fields {
		lines[i] = labelStyle.Render(fmt.Sprintf("%-*s", labelW, f.Label)) +
			"  " + valueStyle.Render(f.Value)
	}
	return strings.Join(lines, "\n")
}

// chartSeries pulls one named series out of a chart, or nil.
func chartSeries(c pipeline.Chart, name string) []float64 {
	for _, s := range c.Series {
		if s.Name == name {
			return s.Values
		}
	}
	return nil
}

// renderChartBars draws a chart's last series as horizontal bars. For the
// budget chart that is the spent series, scaled against the largest value.
func renderChartBars(c pipeline.Chart, width int) string {
	if len(c.Series) == 0 || len(c.Labels) == 0 {
		return dimText("No data")
	}
	values := c.Series[len(c.Series)-1].Values
	rows := make([]components.HBar, 0, len(c.Labels))
	for i, label := range c.Labels {
		v := 0.0
		if i < len(values) {
			v = values[i]
		}
		rows = append(rows, components.HBar{Label: label, Value: v})
	}
	return components.HBarChart(rows, width, cli.FormatEuro)
}

func dimText(s string) string {
	return lipgloss.NewStyle().Foreground(theme.Active.TextDim).Render(s)
}

func emptyHint(s string) string {
	return "\n" + dimText("  "+s)
}
