// Package view builds presentation data for each dashboard section from the
// project record. Rendering is pure: the same record always produces the
// same views, and every valid record produces output for every section.
package view

import (
	"renoboard/internal/cli"
	"renoboard/internal/derive"
	"renoboard/internal/project"
)

// Field is one label/value line of a card.
type Field struct {
	Label string
	Value string
}

// Card is a titled metric with an optional secondary note.
type Card struct {
	Label string
	Value string
	Note  string
}

// Sections holds the rendered views for every dashboard section.
type Sections struct {
	Dashboard DashboardView
	Project   ProjectView
	Purchase  PurchaseView
	Financing FinancingView
	Subsidies SubsidiesView
	Work      WorkView
	Materials MaterialsView
	Budget    BudgetView
	Energy    EnergyView
	Journal   JournalView
}

// Render builds all section views from the record. Work and materials are
// unfiltered; use RenderWork/RenderMaterials for a category-filtered view.
func Render(r *project.Record) Sections {
	return Sections{
		Dashboard: RenderDashboard(r),
		Project:   RenderProject(r),
		Purchase:  RenderPurchase(r),
		Financing: RenderFinancing(r),
		Subsidies: RenderSubsidies(r),
		Work:      RenderWork(r, ""),
		Materials: RenderMaterials(r, ""),
		Budget:    RenderBudget(r),
		Energy:    RenderEnergy(r),
		Journal:   RenderJournal(r),
	}
}

// DashboardView is the landing section: headline metrics plus a short
// per-category budget table and the next milestone.
type DashboardView struct {
	Cards         []Card
	CategoryRows  [][]string
	NextMilestone string
}

// RenderDashboard builds the overview section.
func RenderDashboard(r *project.Record) DashboardView {
	totals := derive.WorkTotals(r.WorkItems)

	progress := "—"
	band := derive.BandAtRisk
	if avg, ok := derive.AverageProgress(r.WorkItems); ok {
		progress = cli.FormatPercent0(avg)
		band = derive.ProgressBand(avg)
	}

	perArea := "—"
	if cpa, ok := derive.CostPerArea(r.WorkItems, r.General.LivingArea); ok {
		perArea = cli.FormatEuro(cpa) + "/m²"
	}

	cards := []Card{
		{Label: "Budget", Value: cli.FormatEuro(totals.Budget), Note: cli.FormatEuro(perAreaOrZero(totals.Budget, r.General.LivingArea)) + "/m² planned"},
		{Label: "Spent", Value: cli.FormatEuro(totals.Spent), Note: perArea},
		{Label: "Remaining", Value: cli.FormatEuro(totals.Remaining), Note: utilizationNote(totals)},
		{Label: "Progress", Value: progress, Note: band},
	}

	rows := make([][]string, 0, len(project.Categories))
	for _, cs := range derive.SpendByCategory(r.WorkItems) {
		rows = append(rows, []string{
			CategoryLabel(cs.Category),
			cli.FormatEuro(cs.Budget),
			cli.FormatEuro(cs.Spent),
			cli.FormatEuro(cs.Budget - cs.Spent),
		})
	}

	return DashboardView{
		Cards:         cards,
		CategoryRows:  rows,
		NextMilestone: nextMilestone(r.Timeline),
	}
}

func perAreaOrZero(total, area float64) float64 {
	if area <= 0 {
		return 0
	}
	return total / area
}

func utilizationNote(t derive.BudgetTotals) string {
	if t.Budget <= 0 {
		return ""
	}
	return cli.FormatPercent0(t.Spent/t.Budget*100) + " used"
}

func nextMilestone(events []project.TimelineEvent) string {
	for _, e := range events {
		if e.Status == project.TimelineActive {
			return e.Title + " (" + e.Date + ")"
		}
	}
	for _, e := range events {
		if e.Status == project.TimelinePending {
			return e.Title + " (" + e.Date + ")"
		}
	}
	return ""
}

// ProjectView is the property facts section with objectives and timeline.
type ProjectView struct {
	Facts      []Field
	Rating     RatingView
	Objectives []project.Objective
	Timeline   []TimelineRow
}

// RatingView is the before/after energy classification.
type RatingView struct {
	BeforeClass string
	AfterClass  string
	Before      []Field
	After       []Field
}

// TimelineRow is one milestone with a status marker.
type TimelineRow struct {
	Marker      string // "✓", "●" or "○"
	Date        string
	Title       string
	Description string
	Status      string
}

// RenderProject builds the project section.
func RenderProject(r *project.Record) ProjectView {
	g := r.General
	facts := []Field{
		{"Project", g.ProjectName},
		{"Type", g.PropertyType},
		{"Built", intOrDash(g.ConstructionYear)},
		{"Living area", cli.FormatArea(g.LivingArea)},
		{"Land area", cli.FormatArea(g.LandArea)},
		{"Rooms", intOrDash(g.Rooms)},
		{"Location", g.Location},
		{"Start", g.StartDate},
		{"Planned end", g.PlannedEndDate},
	}

	rating := RatingView{
		BeforeClass: r.Rating.Before.Class,
		AfterClass:  r.Rating.After.Class,
		Before:      ratingFields(r.Rating.Before),
		After:       ratingFields(r.Rating.After),
	}

	timeline := make([]TimelineRow, len(r.Timeline))
	for i, e := range r.Timeline {
		timeline[i] = TimelineRow{
			Marker:      timelineMarker(e.Status),
			Date:        e.Date,
			Title:       e.Title,
			Description: e.Description,
			Status:      e.Status,
		}
	}

	return ProjectView{
		Facts:      facts,
		Rating:     rating,
		Objectives: r.Objectives,
		Timeline:   timeline,
	}
}

func ratingFields(p project.RatingPoint) []Field {
	return []Field{
		{"Class", p.Class},
		{"Consumption", cli.FormatConsumption(p.Consumption)},
		{"Emissions", cli.FormatEmissions(p.Emissions)},
	}
}

func timelineMarker(status string) string {
	switch status {
	case project.TimelineCompleted:
		return "✓"
	case project.TimelineActive:
		return "●"
	default:
		return "○"
	}
}

func intOrDash(n int) string {
	if n == 0 {
		return "—"
	}
	return cli.FormatNumber(int64(n))
}
