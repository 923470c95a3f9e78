package project

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1250", 1250},
		{"1250.50", 1250.5},
		{"1 250,50", 1250.5},
		{"  42  ", 42},
		{"-300", -300},
		{"", 0},
		{"abc", 0},
		{"12abc", 0},
		{"NaN", 0},
		{"Inf", 0},
	}
	for _, tt := range tests {
		if got := ParseAmount(tt.in); got != tt.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClampProgress(t *testing.T) {
	if got := ClampProgress(-5); got != 0 {
		t.Errorf("ClampProgress(-5) = %v", got)
	}
	if got := ClampProgress(150); got != 100 {
		t.Errorf("ClampProgress(150) = %v", got)
	}
	if got := ClampProgress(55); got != 55 {
		t.Errorf("ClampProgress(55) = %v", got)
	}
}

func TestUpdateOutOfRange(t *testing.T) {
	r := &Record{Subsidies: []Subsidy{{Name: "one"}}}

	err := r.UpdateSubsidy(3, Subsidy{Name: "x"})
	var oor *OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("err = %v, want OutOfRangeError", err)
	}
	if oor.Index != 3 || oor.Len != 1 {
		t.Errorf("got %+v", oor)
	}
	if r.Subsidies[0].Name != "one" {
		t.Error("failed update must not touch the list")
	}

	if err := r.RemoveSubsidy(-1); err == nil {
		t.Error("negative index must fail")
	}
}

func TestAddRemove(t *testing.T) {
	r := &Record{}
	i := r.AddWorkItem(WorkItem{Name: "a"})
	j := r.AddWorkItem(WorkItem{Name: "b"})
	if i != 0 || j != 1 {
		t.Fatalf("indices = %d, %d", i, j)
	}
	if err := r.RemoveWorkItem(0); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(r.WorkItems) != 1 || r.WorkItems[0].Name != "b" {
		t.Errorf("WorkItems = %+v", r.WorkItems)
	}
}

func TestPrependJournal(t *testing.T) {
	r := &Record{Journal: []JournalEntry{{Title: "old"}}}
	r.PrependJournal(JournalEntry{Title: "new"})
	if r.Journal[0].Title != "new" || r.Journal[1].Title != "old" {
		t.Errorf("Journal order = %q, %q", r.Journal[0].Title, r.Journal[1].Title)
	}
}
