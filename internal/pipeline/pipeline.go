// Package pipeline orchestrates the save-and-rerender cycle: persist the
// record, log the change, rebuild every section view and chart, stamp the
// time. Each step is explicit so it can be tested on its own.
package pipeline

import (
	"encoding/json"
	"fmt"
	"time"

	"renoboard/internal/project"
	"renoboard/internal/store"
	"renoboard/internal/view"
)

// Pipeline owns the live record and its store.
type Pipeline struct {
	Store  *store.Store
	Record *project.Record
}

// Result is one full refresh of the presentation state.
type Result struct {
	Sections view.Sections
	Charts   ChartSet
	History  []store.HistoryEntry
	SavedAt  time.Time
	Notice   string
	SaveErr  error
}

// New loads the record from the store and returns a ready pipeline.
func New(s *store.Store) (*Pipeline, error) {
	r, err := s.LoadRecord()
	if err != nil {
		return nil, err
	}
	return &Pipeline{Store: s, Record: r}, nil
}

// Refresh rebuilds views and charts from the current record without saving.
func (p *Pipeline) Refresh() Result {
	history, _ := p.Store.History()
	return Result{
		Sections: view.Render(p.Record),
		Charts:   BuildCharts(p.Record),
		History:  history,
		SavedAt:  time.Now(),
	}
}

// Commit runs the full mutation cycle after an applied edit: save, append
// the history entry, re-render everything, rebuild charts, stamp the time.
// A failing save does not block the re-render; the record stays authoritative
// in memory and the failure is surfaced in the notice.
func (p *Pipeline) Commit(description string) Result {
	saveErr := p.Store.SaveRecord(p.Record)
	if saveErr == nil {
		// History rides on the same store; a failed append is not fatal
		// to the cycle either.
		_ = p.Store.AppendHistory(store.HistoryEntry{
			Timestamp:   time.Now(),
			Description: description,
		})
	}

	res := p.Refresh()
	res.SaveErr = saveErr
	if saveErr != nil {
		res.Notice = "Save failed: " + saveErr.Error()
	} else {
		res.Notice = description
	}
	return res
}

// Reset clears the stored record and reloads the defaults. The change log
// keeps its entries.
func (p *Pipeline) Reset() (Result, error) {
	if err := p.Store.Reset(); err != nil {
		return Result{}, err
	}
	r, err := p.Store.LoadRecord()
	if err != nil {
		return Result{}, err
	}
	p.Record = r
	res := p.Refresh()
	res.Notice = "Reset to defaults"
	return res, nil
}

// Import shallow-merges a backup document into the record and commits.
func (p *Pipeline) Import(data []byte) (Result, error) {
	if err := p.Record.Merge(data); err != nil {
		return Result{}, err
	}
	return p.Commit("Imported backup"), nil
}

// Export serializes the record as indented JSON and returns it with the
// conventional dated backup filename.
func (p *Pipeline) Export(now time.Time) ([]byte, string, error) {
	data, err := json.MarshalIndent(p.Record, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("export: %w", err)
	}
	name := fmt.Sprintf("renovation-%s.json", now.Format("2006-01-02"))
	return data, name, nil
}
