package project

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// OutOfRangeError reports an index-based update or removal that fell outside
// the current list bounds. The original dashboard silently corrupted state
// here; callers of these ops must surface it instead.
type OutOfRangeError struct {
	List  string
	Index int
	Len   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s: index %d out of range (len %d)", e.List, e.Index, e.Len)
}

func checkIndex(list string, i, n int) error {
	if i < 0 || i >= n {
		return &OutOfRangeError{List: list, Index: i, Len: n}
	}
	return nil
}

// ParseAmount parses a numeric form field under the lenient-input policy:
// anything that is not a finite number coerces to 0. Comma decimals and
// stray whitespace are accepted since amounts are typed by hand.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ClampProgress restricts a progress percentage to [0,100].
func ClampProgress(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// AddSubsidy appends a subsidy and returns its index.
func (r *Record) AddSubsidy(s Subsidy) int {
	r.Subsidies = append(r.Subsidies, s)
	return len(r.Subsidies) - 1
}

// UpdateSubsidy replaces the subsidy at index i.
func (r *Record) UpdateSubsidy(i int, s Subsidy) error {
	if err := checkIndex("subsidies", i, len(r.Subsidies)); err != nil {
		return err
	}
	r.Subsidies[i] = s
	return nil
}

// RemoveSubsidy deletes the subsidy at index i.
func (r *Record) RemoveSubsidy(i int) error {
	if err := checkIndex("subsidies", i, len(r.Subsidies)); err != nil {
		return err
	}
	r.Subsidies = append(r.Subsidies[:i], r.Subsidies[i+1:]...)
	return nil
}

// AddWorkItem appends a work item and returns its index.
func (r *Record) AddWorkItem(w WorkItem) int {
	r.WorkItems = append(r.WorkItems, w)
	return len(r.WorkItems) - 1
}

// UpdateWorkItem replaces the work item at index i.
func (r *Record) UpdateWorkItem(i int, w WorkItem) error {
	if err := checkIndex("work items", i, len(r.WorkItems)); err != nil {
		return err
	}
	r.WorkItems[i] = w
	return nil
}

// RemoveWorkItem deletes the work item at index i.
func (r *Record) RemoveWorkItem(i int) error {
	if err := checkIndex("work items", i, len(r.WorkItems)); err != nil {
		return err
	}
	r.WorkItems = append(r.WorkItems[:i], r.WorkItems[i+1:]...)
	return nil
}

// AddMaterial appends a material and returns its index.
func (r *Record) AddMaterial(m Material) int {
	r.Materials = append(r.Materials, m)
	return len(r.Materials) - 1
}

// UpdateMaterial replaces the material at index i.
func (r *Record) UpdateMaterial(i int, m Material) error {
	if err := checkIndex("materials", i, len(r.Materials)); err != nil {
		return err
	}
	r.Materials[i] = m
	return nil
}

// RemoveMaterial deletes the material at index i.
func (r *Record) RemoveMaterial(i int) error {
	if err := checkIndex("materials", i, len(r.Materials)); err != nil {
		return err
	}
	r.Materials = append(r.Materials[:i], r.Materials[i+1:]...)
	return nil
}

// PrependJournal inserts a journal entry at the front (newest first).
func (r *Record) PrependJournal(j JournalEntry) {
	r.Journal = append([]JournalEntry{j}, r.Journal...)
}

// UpdateJournal replaces the journal entry at index i.
func (r *Record) UpdateJournal(i int, j JournalEntry) error {
	if err := checkIndex("journal", i, len(r.Journal)); err != nil {
		return err
	}
	r.Journal[i] = j
	return nil
}

// RemoveJournal deletes the journal entry at index i.
func (r *Record) RemoveJournal(i int) error {
	if err := checkIndex("journal", i, len(r.Journal)); err != nil {
		return err
	}
	r.Journal = append(r.Journal[:i], r.Journal[i+1:]...)
	return nil
}
