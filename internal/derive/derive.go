// Package derive computes aggregates from the project record. Everything here
// is pure and stateless; callers recompute on every render.
package derive

import "renoboard/internal/project"

// BudgetTotals summarizes the work budget across all work items.
type BudgetTotals struct {
	Budget    float64
	Spent     float64
	Remaining float64
}

// WorkTotals sums budget and spend over the work items.
func WorkTotals(items []project.WorkItem) BudgetTotals {
	var t BudgetTotals
	for _, w := range items {
		t.Budget += w.Budget
		t.Spent += w.Spent
	}
	t.Remaining = t.Budget - t.Spent
	return t
}

// AverageProgress returns the mean progress over the work items. ok is false
// when the list is empty, where the mean is undefined.
func AverageProgress(items []project.WorkItem) (float64, bool) {
	if len(items) == 0 {
		return 0, false
	}
	var sum float64
	for _, w := range items {
		sum += w.Progress
	}
	return sum / float64(len(items)), true
}

// CostPerArea returns total spend divided by living area. ok is false when
// the area is zero or negative.
func CostPerArea(items []project.WorkItem, livingArea float64) (float64, bool) {
	if livingArea <= 0 {
		return 0, false
	}
	return WorkTotals(items).Spent / livingArea, true
}

// DebtRatio returns total monthly credit payments as a percentage of monthly
// income. ok is false when income is zero, where the ratio is undefined.
func DebtRatio(f project.Financing) (float64, bool) {
	if f.MonthlyIncome == 0 {
		return 0, false
	}
	return TotalMonthlyPayment(f.Credits) / f.MonthlyIncome * 100, true
}

// TotalBorrowed sums the credit principals.
func TotalBorrowed(credits []project.Credit) float64 {
	var sum float64
	for _, c := range credits {
		sum += c.Principal
	}
	return sum
}

// TotalMonthlyPayment sums the credit monthly payments.
func TotalMonthlyPayment(credits []project.Credit) float64 {
	var sum float64
	for _, c := range credits {
		sum += c.MonthlyPayment
	}
	return sum
}

// PurchaseTotal sums the purchase line-item amounts. The scalar purchase
// fields are deliberately ignored; the table total comes from line items
// alone.
func PurchaseTotal(p project.PurchaseCosts) float64 {
	var sum float64
	for _, li := range p.LineItems {
		sum += li.Amount
	}
	return sum
}

// SubsidyTotals summarizes the subsidy amounts.
type SubsidyTotals struct {
	Requested float64
	Received  float64
	Pending   float64
}

// SumSubsidies totals the requested and received amounts; Pending is the gap.
func SumSubsidies(subsidies []project.Subsidy) SubsidyTotals {
	var t SubsidyTotals
	for _, s := range subsidies {
		t.Requested += s.AmountRequested
		t.Received += s.AmountReceived
	}
	t.Pending = t.Requested - t.Received
	return t
}

// Variance returns spent minus budget for one work item. Positive means
// over budget.
func Variance(w project.WorkItem) float64 {
	return w.Spent - w.Budget
}

// UtilizationPct returns spend as a percentage of budget, or 0 when the
// budget is zero.
func UtilizationPct(w project.WorkItem) float64 {
	if w.Budget <= 0 {
		return 0
	}
	return w.Spent / w.Budget * 100
}

// Progress bands, from best to worst.
const (
	BandComplete  = "complete"
	BandOnTrack   = "on-track"
	BandAttention = "attention"
	BandAtRisk    = "at-risk"
)

// ProgressBand maps a progress percentage to its display band.
func ProgressBand(pct float64) string {
	switch {
	case pct >= 100:
		return BandComplete
	case pct >= 50:
		return BandOnTrack
	case pct >= 25:
		return BandAttention
	default:
		return BandAtRisk
	}
}

// MaterialsTotal sums the material total prices.
func MaterialsTotal(materials []project.Material) float64 {
	var sum float64
	for _, m := range materials {
		sum += m.TotalPrice
	}
	return sum
}

// CountMaterialsByStatus returns the number of materials per status, keyed by
// the wire status values.
func CountMaterialsByStatus(materials []project.Material) map[string]int {
	counts := make(map[string]int)
	for _, m := range materials {
		counts[m.Status]++
	}
	return counts
}

// FilterWorkByCategory returns the work items in the given category,
// preserving their original relative order. An empty category matches all.
func FilterWorkByCategory(items []project.WorkItem, category string) []project.WorkItem {
	if category == "" {
		return items
	}
	var out []project.WorkItem
	for _, w := range items {
		if w.Category == category {
			out = append(out, w)
		}
	}
	return out
}

// FilterMaterialsByCategory returns the materials in the given category,
// preserving their original relative order. An empty category matches all.
func FilterMaterialsByCategory(materials []project.Material, category string) []project.Material {
	if category == "" {
		return materials
	}
	var out []project.Material
	for _, m := range materials {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out
}

// CategorySpend is one category's share of the work budget.
type CategorySpend struct {
	Category string
	Budget   float64
	Spent    float64
}

// SpendByCategory totals budget and spend per category, in the fixed
// category order. Categories with no work items are included with zeros so
// chart axes stay stable.
func SpendByCategory(items []project.WorkItem) []CategorySpend {
	byCat := make(map[string]*CategorySpend, len(project.Categories))
	out := make([]CategorySpend, len(project.Categories))
	for i, c := range project.Categories {
		out[i] = CategorySpend{Category: c}
		byCat[c] = &out[i]
	}
	for _, w := range items {
		if cs, ok := byCat[w.Category]; ok {
			cs.Budget += w.Budget
			cs.Spent += w.Spent
		}
	}
	return out
}

// SubtaskCounts returns done and total subtask counts for one work item.
func SubtaskCounts(w project.WorkItem) (done, total int) {
	for _, st := range w.Subtasks {
		if st.Status == project.SubtaskDone {
			done++
		}
	}
	return done, len(w.Subtasks)
}
