package components

import (
	"renoboard/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left, the
// latest notice and save timestamp on the right.
func RenderStatusBar(width int, savedAt, notice string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	noticeStyle := lipgloss.NewStyle().
		Foreground(t.Accent)

	left := " [enter]edit  [a]dd  [x]delete  [?]help  [q]uit"
	right := ""
	if notice != "" {
		right = noticeStyle.Render(notice) + "  "
	}
	if savedAt != "" {
		right += "Saved " + savedAt + " "
	}

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
