package view

import (
	"renoboard/internal/cli"
	"renoboard/internal/derive"
	"renoboard/internal/project"
)

// WorkView is the work-item section, optionally filtered to one category.
type WorkView struct {
	Category string // wire value, "" for all
	Items    []WorkItemCard
}

// WorkItemCard is one rendered work package.
type WorkItemCard struct {
	Index       int // position in the unfiltered record list
	Name        string
	Category    string
	Color       string
	Progress    float64
	ProgressPct string
	Band        string
	Budget      string
	Spent       string
	Variance    string
	Utilization string
	Contractor  string
	Dates       string
	Subtasks    []SubtaskRow
	SubtaskNote string // "3/4 done"
}

// SubtaskRow is one checklist line.
type SubtaskRow struct {
	Marker string
	Name   string
}

// RenderWork builds the work section. The card Index always refers to the
// item's position in the full record list, so commands built from a
// filtered view still hit the right item.
func RenderWork(r *project.Record, category string) WorkView {
	var cards []WorkItemCard
	for i, w := range r.WorkItems {
		if category != "" && w.Category != category {
			continue
		}
		cards = append(cards, workCard(i, w))
	}
	return WorkView{Category: category, Items: cards}
}

func workCard(index int, w project.WorkItem) WorkItemCard {
	subtasks := make([]SubtaskRow, len(w.Subtasks))
	for i, st := range w.Subtasks {
		subtasks[i] = SubtaskRow{Marker: SubtaskMarker(st.Status), Name: st.Name}
	}
	done, total := derive.SubtaskCounts(w)

	note := ""
	if total > 0 {
		note = cli.FormatNumber(int64(done)) + "/" + cli.FormatNumber(int64(total)) + " done"
	}

	dates := w.StartDate
	if w.EndDate != "" {
		dates += " → " + w.EndDate
	}

	return WorkItemCard{
		Index:       index,
		Name:        w.Name,
		Category:    CategoryLabel(w.Category),
		Color:       w.Color,
		Progress:    w.Progress,
		ProgressPct: cli.FormatPercent0(w.Progress),
		Band:        derive.ProgressBand(w.Progress),
		Budget:      cli.FormatEuro(w.Budget),
		Spent:       cli.FormatEuro(w.Spent),
		Variance:    cli.FormatVariance(derive.Variance(w)),
		Utilization: cli.FormatPercent0(derive.UtilizationPct(w)),
		Contractor:  w.Contractor,
		Dates:       dates,
		Subtasks:    subtasks,
		SubtaskNote: note,
	}
}

// MaterialsView is the supply table, optionally filtered to one category.
type MaterialsView struct {
	Category     string
	Rows         [][]string
	Indexes      []int // record positions matching Rows
	Total        string
	StatusCounts []Field
}

// RenderMaterials builds the materials section.
func RenderMaterials(r *project.Record, category string) MaterialsView {
	var rows [][]string
	var indexes []int
	for i, m := range r.Materials {
		if category != "" && m.Category != category {
			continue
		}
		rows = append(rows, []string{
			m.Name,
			CategoryLabel(m.Category),
			m.Supplier,
			m.Quantity,
			cli.FormatEuro(m.UnitPrice),
			cli.FormatEuro(m.TotalPrice),
			MaterialStatusLabel(m.Status),
		})
		indexes = append(indexes, i)
	}

	counts := derive.CountMaterialsByStatus(r.Materials)
	statusFields := make([]Field, 0, len(project.MaterialStatuses))
	for _, st := range project.MaterialStatuses {
		statusFields = append(statusFields, Field{
			Label: MaterialStatusLabel(st),
			Value: cli.FormatNumber(int64(counts[st])),
		})
	}

	return MaterialsView{
		Category:     category,
		Rows:         rows,
		Indexes:      indexes,
		Total:        cli.FormatEuro(derive.MaterialsTotal(r.Materials)),
		StatusCounts: statusFields,
	}
}

// BudgetView is the budget section: totals, per-category breakdown and the
// monthly spend series for charting.
type BudgetView struct {
	Cards        []Card
	CategoryRows [][]string
	Months       []string
	Monthly      []float64
	Cumulative   []float64
}

// RenderBudget builds the budget section.
func RenderBudget(r *project.Record) BudgetView {
	totals := derive.WorkTotals(r.WorkItems)

	cards := []Card{
		{Label: "Total budget", Value: cli.FormatEuro(totals.Budget)},
		{Label: "Spent", Value: cli.FormatEuro(totals.Spent), Note: utilizationNote(totals)},
		{Label: "Remaining", Value: cli.FormatEuro(totals.Remaining)},
		{Label: "Materials", Value: cli.FormatEuro(derive.MaterialsTotal(r.Materials))},
	}

	var rows [][]string
	for _, cs := range derive.SpendByCategory(r.WorkItems) {
		pct := "—"
		if cs.Budget > 0 {
			pct = cli.FormatPercent0(cs.Spent / cs.Budget * 100)
		}
		rows = append(rows, []string{
			CategoryLabel(cs.Category),
			cli.FormatEuro(cs.Budget),
			cli.FormatEuro(cs.Spent),
			pct,
		})
	}

	months := make([]string, len(r.MonthlySpend))
	monthly := make([]float64, len(r.MonthlySpend))
	cumulative := make([]float64, len(r.MonthlySpend))
	for i, ms := range r.MonthlySpend {
		months[i] = ms.Month
		monthly[i] = ms.Amount
		cumulative[i] = ms.Cumulative
	}

	return BudgetView{
		Cards:        cards,
		CategoryRows: rows,
		Months:       months,
		Monthly:      monthly,
		Cumulative:   cumulative,
	}
}
