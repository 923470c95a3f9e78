package derive

import (
	"math"
	"testing"

	"renoboard/internal/project"
)

func workFixture() []project.WorkItem {
	return []project.WorkItem{
		{Name: "Attic insulation", Category: "isolation", Budget: 8500, Spent: 7800, Progress: 100},
		{Name: "Wall insulation", Category: "isolation", Budget: 22000, Spent: 12000, Progress: 55},
		{Name: "Roof overhaul", Category: "toiture", Budget: 12000, Spent: 11500, Progress: 100},
	}
}

func TestWorkTotals(t *testing.T) {
	got := WorkTotals(workFixture())
	if got.Budget != 42500 {
		t.Errorf("Budget = %v, want 42500", got.Budget)
	}
	if got.Spent != 31300 {
		t.Errorf("Spent = %v, want 31300", got.Spent)
	}
	if got.Remaining != 11200 {
		t.Errorf("Remaining = %v, want 11200", got.Remaining)
	}
}

func TestAverageProgress(t *testing.T) {
	avg, ok := AverageProgress(workFixture())
	if !ok {
		t.Fatal("ok = false for non-empty list")
	}
	if want := 85.0; avg != want {
		t.Errorf("avg = %v, want %v", avg, want)
	}

	if _, ok := AverageProgress(nil); ok {
		t.Error("empty list must report undefined, not 0%")
	}
}

func TestDebtRatio(t *testing.T) {
	f := project.Financing{
		MonthlyIncome: 4200,
		Credits: []project.Credit{
			{MonthlyPayment: 1048},
			{MonthlyPayment: 0},
			{MonthlyPayment: 167},
			{MonthlyPayment: 46},
		},
	}
	ratio, ok := DebtRatio(f)
	if !ok {
		t.Fatal("ok = false for non-zero income")
	}
	// 1261 / 4200 * 100
	if want := 30.0238; math.Abs(ratio-want) > 0.01 {
		t.Errorf("ratio = %v, want %v", ratio, want)
	}

	f.MonthlyIncome = 0
	if _, ok := DebtRatio(f); ok {
		t.Error("zero income must report undefined")
	}
}

func TestCostPerArea(t *testing.T) {
	cpa, ok := CostPerArea(workFixture(), 120)
	if !ok || math.Abs(cpa-31300.0/120) > 1e-9 {
		t.Errorf("cpa = %v, ok = %v", cpa, ok)
	}
	if _, ok := CostPerArea(workFixture(), 0); ok {
		t.Error("zero area must report undefined")
	}
}

func TestPurchaseTotal(t *testing.T) {
	p := project.PurchaseCosts{
		Price: 999999, // scalar fields must not leak into the total
		LineItems: []project.PurchaseLineItem{
			{Amount: 185000},
			{Amount: 15540},
			{Amount: 9250},
		},
	}
	if got := PurchaseTotal(p); got != 209790 {
		t.Errorf("PurchaseTotal = %v, want 209790", got)
	}
}

func TestSumSubsidies(t *testing.T) {
	got := SumSubsidies([]project.Subsidy{
		{AmountRequested: 15000, AmountReceived: 15000},
		{AmountRequested: 3500, AmountReceived: 0},
	})
	if got.Requested != 18500 || got.Received != 15000 || got.Pending != 3500 {
		t.Errorf("got %+v", got)
	}
}

func TestVarianceAndUtilization(t *testing.T) {
	w := project.WorkItem{Budget: 8500, Spent: 9000}
	if v := Variance(w); v != 500 {
		t.Errorf("Variance = %v, want 500", v)
	}
	if u := UtilizationPct(w); math.Abs(u-9000.0/8500*100) > 1e-9 {
		t.Errorf("UtilizationPct = %v", u)
	}
	if u := UtilizationPct(project.WorkItem{Budget: 0, Spent: 100}); u != 0 {
		t.Errorf("zero budget utilization = %v, want 0", u)
	}
}

func TestProgressBand(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{120, BandComplete},
		{100, BandComplete},
		{99.9, BandOnTrack},
		{50, BandOnTrack},
		{49.9, BandAttention},
		{25, BandAttention},
		{24.9, BandAtRisk},
		{0, BandAtRisk},
	}
	for _, tt := range tests {
		if got := ProgressBand(tt.pct); got != tt.want {
			t.Errorf("ProgressBand(%v) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}

func TestFilterWorkByCategory(t *testing.T) {
	items := []project.WorkItem{
		{Name: "a", Category: "toiture"},
		{Name: "b", Category: "isolation"},
		{Name: "c", Category: "chauffage"},
		{Name: "d", Category: "plomberie"},
		{Name: "e", Category: "electricite"},
		{Name: "f", Category: "isolation"},
		{Name: "g", Category: "menuiseries"},
		{Name: "h", Category: "finitions"},
		{Name: "i", Category: "toiture"},
		{Name: "j", Category: "chauffage"},
	}
	got := FilterWorkByCategory(items, "isolation")
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Name != "b" || got[1].Name != "f" {
		t.Errorf("order = %q, %q; want original relative order", got[0].Name, got[1].Name)
	}

	if got := FilterWorkByCategory(items, ""); len(got) != len(items) {
		t.Errorf("empty category must match all, got %d", len(got))
	}
}

func TestSpendByCategory(t *testing.T) {
	got := SpendByCategory(workFixture())
	if len(got) != len(project.Categories) {
		t.Fatalf("len = %d, want %d", len(got), len(project.Categories))
	}
	if got[0].Category != "isolation" || got[0].Budget != 30500 || got[0].Spent != 19800 {
		t.Errorf("isolation = %+v", got[0])
	}
	// Category with no work items still present, zeroed.
	for _, cs := range got {
		if cs.Category == "plomberie" && (cs.Budget != 0 || cs.Spent != 0) {
			t.Errorf("plomberie = %+v, want zeros", cs)
		}
	}
}

func TestSubtaskCounts(t *testing.T) {
	w := project.WorkItem{Subtasks: []project.Subtask{
		{Status: project.SubtaskDone},
		{Status: project.SubtaskInProgress},
		{Status: project.SubtaskDone},
		{Status: project.SubtaskPending},
	}}
	done, total := SubtaskCounts(w)
	if done != 2 || total != 4 {
		t.Errorf("counts = %d/%d, want 2/4", done, total)
	}
}
