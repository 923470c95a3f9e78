package edit

import (
	"errors"
	"reflect"
	"testing"

	"renoboard/internal/project"
)

func TestCancelLeavesRecordUntouched(t *testing.T) {
	r := project.DefaultRecord()
	before, err := r.Clone()
	if err != nil {
		t.Fatalf("clone: %v", err)
	}

	s, err := Open(r, Command{Kind: KindWork, Index: 0, Op: OpEdit})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.Work.Name = "Scribbled over"
	s.Work.Budget = "999999"
	s.Work.AddSubtask()
	s.Cancel()

	if s.State() != StateClosed {
		t.Errorf("state = %v, want StateClosed", s.State())
	}
	if !reflect.DeepEqual(r, before) {
		t.Error("cancelled session must leave every record field untouched")
	}
}

func TestCommitAppliesAtomically(t *testing.T) {
	r := project.DefaultRecord()
	s, err := Open(r, Command{Kind: KindWork, Index: 1, Op: OpEdit})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.Work.Spent = "14 500,75"
	s.Work.Progress = "120" // clamped
	desc, err := s.Commit()
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if s.State() != StateCommitted {
		t.Errorf("state = %v, want StateCommitted", s.State())
	}
	if desc == "" {
		t.Error("commit must describe the change")
	}
	if got := r.WorkItems[1].Spent; got != 14500.75 {
		t.Errorf("Spent = %v, want lenient coercion to 14500.75", got)
	}
	if got := r.WorkItems[1].Progress; got != 100 {
		t.Errorf("Progress = %v, want clamp to 100", got)
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	r := project.DefaultRecord()
	n := len(r.Subsidies)

	s, err := Open(r, Command{Kind: KindSubsidy, Index: 2, Op: OpDelete})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.State() != StateConfirming {
		t.Fatalf("state = %v, want StateConfirming", s.State())
	}
	if len(r.Subsidies) != n {
		t.Fatal("opening a delete must not alter the list")
	}

	// Declining leaves the list unchanged.
	s.Cancel()
	if len(r.Subsidies) != n {
		t.Fatal("declined delete must leave the list unchanged")
	}

	// Accepting removes exactly the targeted entry.
	s, err = Open(r, Command{Kind: KindSubsidy, Index: 2, Op: OpDelete})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	target := s.DeleteLabel()
	if _, err := s.ConfirmDelete(); err != nil {
		t.Fatalf("ConfirmDelete: %v", err)
	}
	if len(r.Subsidies) != n-1 {
		t.Fatalf("len = %d, want %d", len(r.Subsidies), n-1)
	}
	for _, sub := range r.Subsidies {
		if sub.Name == target {
			t.Errorf("deleted subsidy %q still present", target)
		}
	}
}

func TestOpenRejectsBadIndex(t *testing.T) {
	r := project.DefaultRecord()
	_, err := Open(r, Command{Kind: KindMaterial, Index: 99, Op: OpEdit})
	var oor *project.OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("err = %v, want OutOfRangeError", err)
	}

	if _, err := Open(r, Command{Kind: KindJournal, Index: -1, Op: OpDelete}); err == nil {
		t.Error("negative delete index must fail at open")
	}
}

func TestAddJournalPrepends(t *testing.T) {
	r := project.DefaultRecord()
	first := r.Journal[0].Title

	s, err := Open(r, Command{Kind: KindJournal, Op: OpAdd})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.Journal.Title = "Newest entry"
	s.Journal.Tags = "isolation, general"
	s.Journal.Problems = "one\n\ntwo"
	if _, err := s.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if r.Journal[0].Title != "Newest entry" {
		t.Errorf("Journal[0] = %q, want new entry at the front", r.Journal[0].Title)
	}
	if r.Journal[1].Title != first {
		t.Error("existing entries must shift down, not disappear")
	}
	if got := r.Journal[0].Tags; !reflect.DeepEqual(got, []string{"isolation", "general"}) {
		t.Errorf("Tags = %v", got)
	}
	if got := r.Journal[0].Problems; !reflect.DeepEqual(got, []string{"one", "two"}) {
		t.Errorf("Problems = %v, want blank lines dropped", got)
	}
}

func TestCommitOutOfState(t *testing.T) {
	r := project.DefaultRecord()
	s, err := Open(r, Command{Kind: KindGeneral, Op: OpEdit})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.Cancel()
	if _, err := s.Commit(); !errors.Is(err, ErrNotOpen) {
		t.Errorf("err = %v, want ErrNotOpen", err)
	}
}

func TestStatusNormalization(t *testing.T) {
	r := project.DefaultRecord()
	s, err := Open(r, Command{Kind: KindSubsidy, Op: OpAdd})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.Subsidy.Name = "Test"
	s.Subsidy.Status = "bogus"
	if _, err := s.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	last := r.Subsidies[len(r.Subsidies)-1]
	if last.Status != project.SubsidyRequested {
		t.Errorf("Status = %q, want fallback %q", last.Status, project.SubsidyRequested)
	}
}

func TestObjectivesEditable(t *testing.T) {
	r := project.DefaultRecord()
	n := len(r.Objectives)
	if n == 0 {
		t.Fatal("default record should ship objectives")
	}

	s, err := Open(r, Command{Kind: KindObjective, Op: OpEdit})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.Objectives.Rows[0].Title = "Cut the heating bill"
	s.Objectives.AddRow()
	s.Objectives.Rows[n] = ObjectiveRow{Icon: "☀", Title: "Add a solar array"}

	desc, err := s.Commit()
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if desc != "Edited objectives" {
		t.Errorf("desc = %q", desc)
	}
	if r.Objectives[0].Title != "Cut the heating bill" {
		t.Errorf("Objectives[0] = %q, want the edited title", r.Objectives[0].Title)
	}
	if len(r.Objectives) != n+1 || r.Objectives[n].Title != "Add a solar array" {
		t.Errorf("Objectives = %d entries, want the new row appended", len(r.Objectives))
	}
}

func TestObjectivesBlankTitleRemovesRow(t *testing.T) {
	r := project.DefaultRecord()
	n := len(r.Objectives)
	if n < 2 {
		t.Fatal("default record should ship several objectives")
	}
	keep := r.Objectives[1].Title

	s, err := Open(r, Command{Kind: KindObjective, Op: OpEdit})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.Objectives.Rows[0].Title = "   "
	if _, err := s.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if len(r.Objectives) != n-1 {
		t.Fatalf("len = %d, want %d", len(r.Objectives), n-1)
	}
	if r.Objectives[0].Title != keep {
		t.Errorf("Objectives[0] = %q, want the later rows shifted up", r.Objectives[0].Title)
	}
}

func TestBlankedSubtaskRemovedWithReindex(t *testing.T) {
	r := project.DefaultRecord()
	s, err := Open(r, Command{Kind: KindWork, Op: OpAdd})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.Work.Name = "Attic conversion"
	for _, name := range []string{"first", "second", "third"} {
		s.Work.AddSubtask()
		s.Work.Subtasks[len(s.Work.Subtasks)-1].Name = name
	}
	s.Work.Subtasks[1].Name = "" // blanked row is a removal
	if _, err := s.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	got := r.WorkItems[len(r.WorkItems)-1].Subtasks
	if len(got) != 2 || got[0].Name != "first" || got[1].Name != "third" {
		t.Errorf("subtasks = %v, want the middle row gone and order kept", got)
	}
}

func TestRemoveRowsReindex(t *testing.T) {
	f := PurchaseForm{LineItems: []LineItemForm{
		{Label: "a"}, {Label: "b"}, {Label: "c"},
	}}
	f.RemoveLineItem(1)
	if len(f.LineItems) != 2 || f.LineItems[1].Label != "c" {
		t.Errorf("line items = %v, want b removed and c shifted to index 1", f.LineItems)
	}
	f.RemoveLineItem(99) // out of range is a no-op
	if len(f.LineItems) != 2 {
		t.Error("out-of-range remove must not change the list")
	}

	fin := FinancingForm{Credits: []CreditForm{{Type: "x"}, {Type: "y"}}}
	fin.RemoveCredit(0)
	if len(fin.Credits) != 1 || fin.Credits[0].Type != "y" {
		t.Errorf("credits = %v, want x removed", fin.Credits)
	}
}

func TestCreditDetailRows(t *testing.T) {
	r := project.DefaultRecord()
	s, err := Open(r, Command{Kind: KindFinancing, Op: OpEdit})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	c := &s.Financing.Credits[0]
	c.AddDetail()
	c.Details[len(c.Details)-1] = KVForm{Key: "Deferral", Value: "12 months"}
	if _, err := s.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if got, ok := r.Financing.Credits[0].Details.Get("Deferral"); !ok || got != "12 months" {
		t.Errorf("Details[Deferral] = %q, %v", got, ok)
	}
}

func TestFinancingFormDropsBlankCredits(t *testing.T) {
	r := project.DefaultRecord()
	s, err := Open(r, Command{Kind: KindFinancing, Op: OpEdit})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	n := len(s.Financing.Credits)
	s.Financing.AddCredit() // left blank
	if _, err := s.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if len(r.Financing.Credits) != n {
		t.Errorf("credits = %d, want blank block dropped (%d)", len(r.Financing.Credits), n)
	}
}
