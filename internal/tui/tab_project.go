package tui

import (
	"strings"

	"renoboard/internal/project"
	"renoboard/internal/tui/components"
	"renoboard/internal/tui/theme"
	"renoboard/internal/view"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderProjectTab(cw int) string {
	p := a.res.Sections.Project

	half := cw / 2
	facts := components.ContentCard("Property", fieldLines(p.Facts), half)
	rating := components.ContentCard("Energy rating", renderRating(p.Rating), cw-half)

	var b strings.Builder
	b.WriteString(components.CardRow([]string{facts, rating}))
	b.WriteString("\n")

	objectives := components.ContentCard("Objectives", renderObjectives(p.Objectives), half)
	timeline := components.ContentCard("Timeline", renderTimeline(p.Timeline), cw-half)
	b.WriteString(components.CardRow([]string{objectives, timeline}))
	b.WriteString("\n")
	b.WriteString(dimText("  [enter] edit property   [E] edit rating   [O] edit objectives"))
	return b.String()
}

// renderRating shows the before/after classes side by side with their figures.
func renderRating(r view.RatingView) string {
	t := theme.Active

	classStyle := func(class string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(ratingColor(class)).Bold(true)
	}
	arrow := lipgloss.NewStyle().Foreground(t.TextDim).Render("  →  ")

	var b strings.Builder
	b.WriteString(classStyle(r.BeforeClass).Render(" " + r.BeforeClass + " "))
	b.WriteString(arrow)
	b.WriteString(classStyle(r.AfterClass).Render(" " + r.AfterClass + " "))
	b.WriteString("\n\n")

	b.WriteString(dimText("Before"))
	b.WriteString("\n")
	b.WriteString(fieldLines(r.Before))
	b.WriteString("\n\n")
	b.WriteString(dimText("After"))
	b.WriteString("\n")
	b.WriteString(fieldLines(r.After))
	return b.String()
}

// ratingColor maps the letter grade to the usual green-to-red scale.
func ratingColor(class string) lipgloss.Color {
	t := theme.Active
	switch class {
	case "A", "B":
		return t.Green
	case "C", "D":
		return t.Yellow
	case "E":
		return t.Orange
	default:
		return t.Red
	}
}

func renderObjectives(objectives []project.Objective) string {
	if len(objectives) == 0 {
		return dimText("No objectives set")
	}
	t := theme.Active
	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	descStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	markStyle := lipgloss.NewStyle().Foreground(t.Accent)

	var b strings.Builder
	for i, o := range objectives {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(markStyle.Render("• "))
		b.WriteString(titleStyle.Render(o.Title))
		if o.Description != "" {
			b.WriteString("\n  ")
			b.WriteString(descStyle.Render(o.Description))
		}
	}
	return b.String()
}

func renderTimeline(rows []view.TimelineRow) string {
	if len(rows) == 0 {
		return dimText("No milestones")
	}
	t := theme.Active
	dateStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	descStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		marker := lipgloss.NewStyle().Foreground(timelineColor(row.Status)).Render(row.Marker)
		b.WriteString(marker)
		b.WriteString(" ")
		b.WriteString(dateStyle.Render(row.Date))
		b.WriteString("  ")
		b.WriteString(titleStyle.Render(row.Title))
		if row.Description != "" {
			b.WriteString("\n   ")
			b.WriteString(descStyle.Render(row.Description))
		}
	}
	return b.String()
}

func timelineColor(status string) lipgloss.Color {
	t := theme.Active
	switch status {
	case project.TimelineCompleted:
		return t.Green
	case project.TimelineActive:
		return t.Accent
	default:
		return t.TextDim
	}
}
