package components

import (
	"strings"
	"testing"

	"renoboard/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so styles render deterministically in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
	theme.SetActive("flexoki-dark")
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	cases := []struct {
		total, n int
	}{
		{120, 3},
		{121, 3},
		{122, 3},
		{80, 1},
		{7, 4},
	}
	for _, tc := range cases {
		widths := LayoutRow(tc.total, tc.n)
		if len(widths) != tc.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", tc.total, tc.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tc.total, tc.n, sum)
		}
	}
	if LayoutRow(100, 0) != nil {
		t.Error("LayoutRow with n=0 should return nil")
	}
}

func TestCardRowMatchesTallestCard(t *testing.T) {
	short := ContentCard("Spent", "31 300 €", 24)
	tall := ContentCard("Work", "Insulation\nHeating\nElectrical\nPlumbing\nWindows", 24)

	shortLines := len(strings.Split(short, "\n"))
	tallLines := len(strings.Split(tall, "\n"))
	if shortLines >= tallLines {
		t.Fatalf("setup: short card (%d lines) should be shorter than tall (%d)", shortLines, tallLines)
	}

	joined := CardRow([]string{tall, short})
	if got := len(strings.Split(joined, "\n")); got != tallLines {
		t.Errorf("joined height = %d lines, want %d (the tallest card)", got, tallLines)
	}
}

func TestSelectedCardUsesAccentBorder(t *testing.T) {
	plain := ContentCard("Kitchen floor", "tiles", 30)
	selected := SelectedContentCard("Kitchen floor", "tiles", 30)

	if plain == selected {
		t.Error("selected card must render differently from the plain card")
	}
	if lipgloss.Width(plain) != lipgloss.Width(selected) {
		t.Errorf("selection must not change card width: %d vs %d",
			lipgloss.Width(plain), lipgloss.Width(selected))
	}
}

func TestSparkline(t *testing.T) {
	if Sparkline(nil, theme.Active.Blue) != "" {
		t.Error("empty series should render nothing")
	}

	out := Sparkline([]float64{0, 10, 20, 40}, theme.Active.Blue)
	if lipgloss.Width(out) != 4 {
		t.Errorf("sparkline width = %d, want one cell per value", lipgloss.Width(out))
	}
	// All-zero series must not divide by zero.
	if flat := Sparkline([]float64{0, 0, 0}, theme.Active.Blue); lipgloss.Width(flat) != 3 {
		t.Error("zero-valued series should still render")
	}
}

func TestHBarChartScalesToWidestRow(t *testing.T) {
	rows := []HBar{
		{Label: "Insulation", Value: 12000},
		{Label: "Heating", Value: 6000},
		{Label: "Finishes", Value: 0},
	}
	out := HBarChart(rows, 60, func(v float64) string { return "x" })
	lines := strings.Split(out, "\n")
	if len(lines) != len(rows) {
		t.Fatalf("lines = %d, want %d", len(lines), len(rows))
	}
	for _, line := range lines {
		if lipgloss.Width(line) > 60 {
			t.Errorf("row wider than chart: %d > 60", lipgloss.Width(line))
		}
	}
	if strings.Count(lines[0], "█") <= strings.Count(lines[1], "█") {
		t.Error("the largest value should get the longest bar")
	}
	if strings.Count(lines[2], "█") != 0 {
		t.Error("a zero value should get no bar")
	}
}

func TestBandColorThresholds(t *testing.T) {
	th := theme.Active
	cases := []struct {
		pct  float64
		want lipgloss.Color
	}{
		{1.0, th.Green},
		{0.75, th.Blue},
		{0.5, th.Blue},
		{0.3, th.Orange},
		{0.1, th.Red},
	}
	for _, tc := range cases {
		if got := BandColor(tc.pct); got != tc.want {
			t.Errorf("BandColor(%v) = %v, want %v", tc.pct, got, tc.want)
		}
	}
}

func TestBudgetGaugeShowsOverrun(t *testing.T) {
	out := BudgetGauge("Heating", 1.3, 10, 20)
	if !strings.Contains(out, "130%") {
		t.Errorf("gauge should show the real utilization past 100%%, got %q", out)
	}
	if !strings.Contains(out, "Heating") {
		t.Error("gauge should carry its label")
	}
}

func TestProgressBarClamps(t *testing.T) {
	over := ProgressBar(1.4, 10)
	if !strings.Contains(over, "140%") {
		t.Errorf("percentage text should not clamp, got %q", over)
	}
	if strings.Count(over, "█") != 10 {
		t.Errorf("fill should clamp to the bar width, got %d blocks", strings.Count(over, "█"))
	}
	under := ProgressBar(-0.2, 10)
	if strings.Count(under, "█") != 0 {
		t.Error("negative progress should render an empty bar")
	}
}
