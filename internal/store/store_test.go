package store

import (
	"fmt"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"renoboard/internal/project"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "renoboard.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoadRecordDefaultsWhenAbsent(t *testing.T) {
	s := openTestStore(t)
	r, err := s.LoadRecord()
	if err != nil {
		t.Fatalf("LoadRecord: %v", err)
	}
	if !reflect.DeepEqual(r, project.DefaultRecord()) {
		t.Error("absent slot must yield the default record")
	}
}

func TestRecordRoundTrip(t *testing.T) {
	s := openTestStore(t)

	r := project.DefaultRecord()
	r.General.ProjectName = "Round trip"
	r.WorkItems[0].Spent = 8100
	if err := s.SaveRecord(r); err != nil {
		t.Fatalf("SaveRecord: %v", err)
	}

	back, err := s.LoadRecord()
	if err != nil {
		t.Fatalf("LoadRecord: %v", err)
	}
	if !reflect.DeepEqual(r, back) {
		t.Error("record changed across a save/load cycle")
	}
}

func TestLoadRecordCorruptFallsBackToDefaults(t *testing.T) {
	s := openTestStore(t)
	if err := s.writeSlot(slotRecord, "{not valid json"); err != nil {
		t.Fatalf("writeSlot: %v", err)
	}
	r, err := s.LoadRecord()
	if err != nil {
		t.Fatalf("LoadRecord: %v", err)
	}
	if !reflect.DeepEqual(r, project.DefaultRecord()) {
		t.Error("corrupt slot must be treated as absent")
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)

	r := project.DefaultRecord()
	r.General.ProjectName = "Doomed"
	if err := s.SaveRecord(r); err != nil {
		t.Fatalf("SaveRecord: %v", err)
	}
	if err := s.AppendHistory(HistoryEntry{Timestamp: time.Now(), Description: "edit"}); err != nil {
		t.Fatalf("AppendHistory: %v", err)
	}

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	back, err := s.LoadRecord()
	if err != nil {
		t.Fatalf("LoadRecord: %v", err)
	}
	if back.General.ProjectName != project.DefaultRecord().General.ProjectName {
		t.Error("reset must revert to defaults")
	}

	// The change log is its own slot; reset leaves it alone.
	h, err := s.History()
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(h) != 1 || h[0].Description != "edit" {
		t.Errorf("history after reset = %v, want the log untouched", h)
	}
}

func TestClearHistory(t *testing.T) {
	s := openTestStore(t)

	if err := s.AppendHistory(HistoryEntry{Timestamp: time.Now(), Description: "edit"}); err != nil {
		t.Fatalf("AppendHistory: %v", err)
	}
	if err := s.SaveRecord(project.DefaultRecord()); err != nil {
		t.Fatalf("SaveRecord: %v", err)
	}

	if err := s.ClearHistory(); err != nil {
		t.Fatalf("ClearHistory: %v", err)
	}

	h, err := s.History()
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(h) != 0 {
		t.Errorf("history after clear = %d entries, want 0", len(h))
	}
	// The record slot is untouched.
	if _, err := s.LoadRecord(); err != nil {
		t.Fatalf("LoadRecord: %v", err)
	}
}

func TestHistoryCap(t *testing.T) {
	s := openTestStore(t)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 60; i++ {
		e := HistoryEntry{
			Timestamp:   base.Add(time.Duration(i) * time.Minute),
			Description: fmt.Sprintf("edit %d", i),
		}
		if err := s.AppendHistory(e); err != nil {
			t.Fatalf("AppendHistory %d: %v", i, err)
		}
	}

	h, err := s.History()
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(h) != HistoryMax {
		t.Fatalf("len = %d, want %d", len(h), HistoryMax)
	}
	if h[0].Description != "edit 59" {
		t.Errorf("newest = %q, want %q", h[0].Description, "edit 59")
	}
	if h[len(h)-1].Description != "edit 10" {
		t.Errorf("oldest kept = %q, want %q (entries 0-9 dropped)", h[len(h)-1].Description, "edit 10")
	}
}

func TestHistoryCorruptFallsBackToEmpty(t *testing.T) {
	s := openTestStore(t)
	if err := s.writeSlot(slotHistory, "[[["); err != nil {
		t.Fatalf("writeSlot: %v", err)
	}
	h, err := s.History()
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(h) != 0 {
		t.Errorf("corrupt history = %d entries, want 0", len(h))
	}
}
