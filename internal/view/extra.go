package view

import (
	"renoboard/internal/project"
	"renoboard/internal/store"
)

// EnergyView is the energy-impact section: rating summary, comparisons and
// the two free-form figure blocks.
type EnergyView struct {
	Rating      RatingView
	Savings     []Field
	Value       []Field
	Comparisons []ComparisonView
}

// ComparisonView is one side-by-side option study.
type ComparisonView struct {
	Title   string
	Options [2]ComparisonOptionView
}

// ComparisonOptionView is one column of a comparison.
type ComparisonOptionView struct {
	Name     string
	Selected bool
	Points   []SubtaskRow // marker + text, same shape as a checklist line
}

// RenderEnergy builds the energy section.
func RenderEnergy(r *project.Record) EnergyView {
	v := EnergyView{
		Rating: RatingView{
			BeforeClass: r.Rating.Before.Class,
			AfterClass:  r.Rating.After.Class,
			Before:      ratingFields(r.Rating.Before),
			After:       ratingFields(r.Rating.After),
		},
		Savings: kvFields(r.Energy.Savings),
		Value:   kvFields(r.Energy.PropertyValue),
	}

	for _, c := range r.Comparisons {
		v.Comparisons = append(v.Comparisons, ComparisonView{
			Title: c.Title,
			Options: [2]ComparisonOptionView{
				comparisonOption(c.OptionA),
				comparisonOption(c.OptionB),
			},
		})
	}
	return v
}

func comparisonOption(o project.ComparisonOption) ComparisonOptionView {
	points := make([]SubtaskRow, len(o.Points))
	for i, p := range o.Points {
		points[i] = SubtaskRow{Marker: pointMarker(p.Icon), Name: p.Text}
	}
	return ComparisonOptionView{Name: o.Name, Selected: o.Selected, Points: points}
}

func pointMarker(icon string) string {
	switch icon {
	case "check":
		return "+"
	case "times":
		return "-"
	default:
		return "·"
	}
}

func kvFields(l project.KVList) []Field {
	fields := make([]Field, len(l))
	for i, kv := range l {
		fields[i] = Field{kv.Key, kv.Value}
	}
	return fields
}

// JournalView is the site diary, newest entry first.
type JournalView struct {
	Entries []JournalCard
}

// JournalCard is one rendered diary entry.
type JournalCard struct {
	Date      string
	Title     string
	Tags      []string
	Body      string
	Problems  []string
	Solutions []string
	Lessons   []string
}

// RenderJournal builds the journal section.
func RenderJournal(r *project.Record) JournalView {
	entries := make([]JournalCard, len(r.Journal))
	for i, j := range r.Journal {
		entries[i] = JournalCard{
			Date:      j.Date,
			Title:     j.Title,
			Tags:      j.Tags,
			Body:      j.Body,
			Problems:  j.Problems,
			Solutions: j.Solutions,
			Lessons:   j.Lessons,
		}
	}
	return JournalView{Entries: entries}
}

// HistoryView is the change log, newest first.
type HistoryView struct {
	Rows [][]string
}

// RenderHistory builds the history section from the stored log.
func RenderHistory(entries []store.HistoryEntry) HistoryView {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{
			e.Timestamp.Local().Format("2006-01-02 15:04"),
			e.Description,
		}
	}
	return HistoryView{Rows: rows}
}
