package pipeline

import (
	"encoding/json"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"renoboard/internal/project"
	"renoboard/internal/store"
)

func newTestPipeline(t *testing.T) *Pipeline {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "renoboard.db"))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	p, err := New(s)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}

func TestCommitPersistsAndLogs(t *testing.T) {
	p := newTestPipeline(t)
	p.Record.General.ProjectName = "Committed"

	res := p.Commit("Edited project info")
	if res.SaveErr != nil {
		t.Fatalf("SaveErr = %v", res.SaveErr)
	}
	if res.Notice != "Edited project info" {
		t.Errorf("Notice = %q", res.Notice)
	}
	if len(res.History) == 0 || res.History[0].Description != "Edited project info" {
		t.Errorf("History = %+v, want newest entry first", res.History)
	}
	if res.SavedAt.IsZero() {
		t.Error("SavedAt not stamped")
	}

	back, err := p.Store.LoadRecord()
	if err != nil {
		t.Fatalf("LoadRecord: %v", err)
	}
	if back.General.ProjectName != "Committed" {
		t.Error("commit did not persist the record")
	}
}

func TestCommitRerendersOnSaveFailure(t *testing.T) {
	p := newTestPipeline(t)
	_ = p.Store.Close() // force every subsequent save to fail

	p.Record.General.ProjectName = "Unsaved"
	res := p.Commit("Edited project info")
	if res.SaveErr == nil {
		t.Fatal("expected save failure on a closed store")
	}
	if !strings.HasPrefix(res.Notice, "Save failed") {
		t.Errorf("Notice = %q", res.Notice)
	}
	// Views still reflect the in-memory record.
	found := false
	for _, f := range res.Sections.Project.Facts {
		if f.Value == "Unsaved" {
			found = true
		}
	}
	if !found {
		t.Error("sections must re-render from the in-memory record despite the failed save")
	}
}

func TestRefreshMatchesCommitViews(t *testing.T) {
	p := newTestPipeline(t)
	a := p.Refresh()
	b := p.Refresh()
	if !reflect.DeepEqual(a.Sections, b.Sections) {
		t.Error("refresh must be deterministic for an unchanged record")
	}
	if !reflect.DeepEqual(a.Charts, b.Charts) {
		t.Error("charts must be deterministic for an unchanged record")
	}
}

func TestReset(t *testing.T) {
	p := newTestPipeline(t)
	p.Record.General.ProjectName = "Doomed"
	p.Commit("edit")

	res, err := p.Reset()
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if p.Record.General.ProjectName != project.DefaultRecord().General.ProjectName {
		t.Error("reset must reload the defaults")
	}
	if len(res.History) != 1 || res.History[0].Description != "edit" {
		t.Errorf("history after reset = %v, want the log untouched", res.History)
	}
}

func TestImportShallowMerge(t *testing.T) {
	p := newTestPipeline(t)
	before, _ := p.Record.Clone()

	general := before.General
	general.LivingArea = 150
	imp, _ := json.Marshal(map[string]any{"general": general})

	res, err := p.Import(imp)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if p.Record.General.LivingArea != 150 {
		t.Error("import did not apply the changed field")
	}
	if !reflect.DeepEqual(p.Record.WorkItems, before.WorkItems) {
		t.Error("import must not touch sections absent from the document")
	}
	if res.SaveErr != nil {
		t.Errorf("SaveErr = %v", res.SaveErr)
	}
}

func TestExport(t *testing.T) {
	p := newTestPipeline(t)
	now := time.Date(2025, 8, 31, 10, 0, 0, 0, time.UTC)
	data, name, err := p.Export(now)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if name != "renovation-2025-08-31.json" {
		t.Errorf("name = %q", name)
	}
	if !strings.HasPrefix(string(data), "{\n") {
		t.Error("export must be indented JSON")
	}
	var back project.Record
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("exported document does not parse: %v", err)
	}
	if !reflect.DeepEqual(&back, p.Record) {
		t.Error("export must round-trip the record")
	}
}

func TestBuildChartsShapes(t *testing.T) {
	r := project.DefaultRecord()
	cs := BuildCharts(r)

	if len(cs.BudgetByCategory.Labels) != len(project.Categories) {
		t.Errorf("BudgetByCategory labels = %d", len(cs.BudgetByCategory.Labels))
	}
	for _, s := range cs.BudgetByCategory.Series {
		if len(s.Values) != len(cs.BudgetByCategory.Labels) {
			t.Errorf("series %q length mismatch", s.Name)
		}
	}
	if len(cs.MonthlySpend.Labels) != len(r.MonthlySpend) {
		t.Errorf("MonthlySpend labels = %d", len(cs.MonthlySpend.Labels))
	}
	if got := len(cs.FinancingSplit.Labels); got != 1+len(r.Financing.Credits) {
		t.Errorf("FinancingSplit labels = %d", got)
	}
	if len(cs.EnergyBeforeAfter.Series) != 2 {
		t.Errorf("EnergyBeforeAfter series = %d", len(cs.EnergyBeforeAfter.Series))
	}
}
