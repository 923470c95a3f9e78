package view

import (
	"reflect"
	"testing"
	"time"

	"renoboard/internal/project"
	"renoboard/internal/store"
)

func TestRenderIsIdempotent(t *testing.T) {
	r := project.DefaultRecord()
	first := Render(r)
	second := Render(r)
	if !reflect.DeepEqual(first, second) {
		t.Error("rendering an unchanged record twice must yield identical output")
	}
}

func TestRenderTotalOnEmptyRecord(t *testing.T) {
	r := &project.Record{}
	s := Render(r)

	if len(s.Dashboard.Cards) == 0 {
		t.Error("dashboard must render cards for an empty record")
	}
	for _, c := range s.Dashboard.Cards {
		if c.Label == "Progress" && c.Value != "—" {
			t.Errorf("empty work list progress = %q, want placeholder", c.Value)
		}
	}
	for _, c := range s.Financing.Cards {
		if c.Label == "Debt ratio" && c.Value != "—" {
			t.Errorf("zero income debt ratio = %q, want placeholder", c.Value)
		}
	}
	if s.Purchase.Total != "€0" {
		t.Errorf("empty purchase total = %q", s.Purchase.Total)
	}
}

func TestRenderWorkFilterKeepsRecordIndexes(t *testing.T) {
	r := &project.Record{WorkItems: []project.WorkItem{
		{Name: "a", Category: "toiture"},
		{Name: "b", Category: "isolation"},
		{Name: "c", Category: "chauffage"},
		{Name: "d", Category: "isolation"},
	}}
	v := RenderWork(r, "isolation")
	if len(v.Items) != 2 {
		t.Fatalf("len = %d, want 2", len(v.Items))
	}
	if v.Items[0].Index != 1 || v.Items[1].Index != 3 {
		t.Errorf("indexes = %d, %d; want positions in the full list", v.Items[0].Index, v.Items[1].Index)
	}
	if v.Items[0].Name != "b" || v.Items[1].Name != "d" {
		t.Errorf("order = %q, %q; want original relative order", v.Items[0].Name, v.Items[1].Name)
	}
}

func TestRenderPurchaseTotalIgnoresScalars(t *testing.T) {
	r := &project.Record{Purchase: project.PurchaseCosts{
		Price: 500000,
		LineItems: []project.PurchaseLineItem{
			{Label: "x", Amount: 100},
			{Label: "y", Amount: 200},
		},
	}}
	if got := RenderPurchase(r).Total; got != "€300" {
		t.Errorf("Total = %q, want €300", got)
	}
}

func TestRenderWorkCard(t *testing.T) {
	r := &project.Record{WorkItems: []project.WorkItem{{
		Name: "Roof", Category: "toiture", Budget: 12000, Spent: 11500, Progress: 100,
		Subtasks: []project.Subtask{
			{Name: "x", Status: project.SubtaskDone},
			{Name: "y", Status: project.SubtaskPending},
		},
	}}}
	card := RenderWork(r, "").Items[0]
	if card.Band != "complete" {
		t.Errorf("Band = %q", card.Band)
	}
	if card.Variance != "-€500" {
		t.Errorf("Variance = %q, want -€500", card.Variance)
	}
	if card.SubtaskNote != "1/2 done" {
		t.Errorf("SubtaskNote = %q", card.SubtaskNote)
	}
	if card.Subtasks[0].Marker != "✓" || card.Subtasks[1].Marker != "○" {
		t.Errorf("markers = %q, %q", card.Subtasks[0].Marker, card.Subtasks[1].Marker)
	}
}

func TestRenderHistory(t *testing.T) {
	ts := time.Date(2025, 7, 12, 9, 30, 0, 0, time.UTC)
	v := RenderHistory([]store.HistoryEntry{{Timestamp: ts, Description: "Edited financing"}})
	if len(v.Rows) != 1 {
		t.Fatalf("rows = %d", len(v.Rows))
	}
	if v.Rows[0][1] != "Edited financing" {
		t.Errorf("row = %v", v.Rows[0])
	}
}

func TestLabels(t *testing.T) {
	if got := CategoryLabel("isolation"); got != "Insulation" {
		t.Errorf("CategoryLabel = %q", got)
	}
	if got := CategoryLabel("unknown"); got != "unknown" {
		t.Errorf("unknown category = %q, want passthrough", got)
	}
	if got := SubsidyStatusLabel(project.SubsidyPending); got != "Pending" {
		t.Errorf("SubsidyStatusLabel = %q", got)
	}
	if got := MaterialStatusLabel(project.MaterialQuoted); got != "Quoted" {
		t.Errorf("MaterialStatusLabel = %q", got)
	}
}
