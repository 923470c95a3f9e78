package pipeline

import (
	"renoboard/internal/derive"
	"renoboard/internal/project"
	"renoboard/internal/view"
)

// Series is one named value row of a chart.
type Series struct {
	Name   string
	Values []float64
}

// Chart is plain numeric chart data: labels on one axis, one or more value
// series. The renderer that draws it is a sink; nothing here is visual.
type Chart struct {
	Title  string
	Labels []string
	Series []Series
}

// ChartSet holds every chart on the dashboard, rebuilt wholesale after each
// mutation from fresh derived data.
type ChartSet struct {
	BudgetByCategory  Chart
	MonthlySpend      Chart
	PurchaseBreakdown Chart
	FinancingSplit    Chart
	EnergyBeforeAfter Chart
}

// BuildCharts derives all chart data from the record.
func BuildCharts(r *project.Record) ChartSet {
	return ChartSet{
		BudgetByCategory:  budgetByCategory(r),
		MonthlySpend:      monthlySpend(r),
		PurchaseBreakdown: purchaseBreakdown(r),
		FinancingSplit:    financingSplit(r),
		EnergyBeforeAfter: energyBeforeAfter(r),
	}
}

func budgetByCategory(r *project.Record) Chart {
	spend := derive.SpendByCategory(r.WorkItems)
	labels := make([]string, len(spend))
	budget := make([]float64, len(spend))
	spent := make([]float64, len(spend))
	for i, cs := range spend {
		labels[i] = view.CategoryLabel(cs.Category)
		budget[i] = cs.Budget
		spent[i] = cs.Spent
	}
	return Chart{
		Title:  "Budget vs spent by category",
		Labels: labels,
		Series: []Series{
			{Name: "Budget", Values: budget},
			{Name: "Spent", Values: spent},
		},
	}
}

func monthlySpend(r *project.Record) Chart {
	labels := make([]string, len(r.MonthlySpend))
	monthly := make([]float64, len(r.MonthlySpend))
	cumulative := make([]float64, len(r.MonthlySpend))
	for i, ms := range r.MonthlySpend {
		labels[i] = ms.Month
		monthly[i] = ms.Amount
		cumulative[i] = ms.Cumulative
	}
	return Chart{
		Title:  "Monthly spend",
		Labels: labels,
		Series: []Series{
			{Name: "Monthly", Values: monthly},
			{Name: "Cumulative", Values: cumulative},
		},
	}
}

func purchaseBreakdown(r *project.Record) Chart {
	labels := make([]string, len(r.Purchase.LineItems))
	amounts := make([]float64, len(r.Purchase.LineItems))
	for i, li := range r.Purchase.LineItems {
		labels[i] = li.Label
		amounts[i] = li.Amount
	}
	return Chart{
		Title:  "Acquisition costs",
		Labels: labels,
		Series: []Series{{Name: "Amount", Values: amounts}},
	}
}

func financingSplit(r *project.Record) Chart {
	labels := []string{"Contribution"}
	values := []float64{r.Financing.Contribution}
	for _, c := range r.Financing.Credits {
		labels = append(labels, c.Type)
		values = append(values, c.Principal)
	}
	return Chart{
		Title:  "Funding sources",
		Labels: labels,
		Series: []Series{{Name: "Amount", Values: values}},
	}
}

func energyBeforeAfter(r *project.Record) Chart {
	return Chart{
		Title:  "Energy performance",
		Labels: []string{"Consumption kWh/m²/yr", "Emissions kgCO₂/m²/yr"},
		Series: []Series{
			{Name: "Before (" + r.Rating.Before.Class + ")", Values: []float64{r.Rating.Before.Consumption, r.Rating.Before.Emissions}},
			{Name: "After (" + r.Rating.After.Class + ")", Values: []float64{r.Rating.After.Consumption, r.Rating.After.Emissions}},
		},
	}
}
