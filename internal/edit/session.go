package edit

import (
	"errors"
	"fmt"
	"time"

	"renoboard/internal/project"
)

// State tracks where a session sits in its lifecycle. A session moves
// Closed → FormOpen → Committed (or back to Closed on cancel); deletes go
// Closed → Confirming → Committed (or Closed on decline).
type State int

const (
	StateClosed State = iota
	StateFormOpen
	StateConfirming
	StateCommitted
)

// ErrNotOpen is returned when Commit or Cancel is called out of state.
var ErrNotOpen = errors.New("edit: session is not open")

// Session is one in-flight edit. The form buffers are transient: the record
// is only touched by a successful Commit or ConfirmDelete, so cancelling at
// any point leaves it exactly as it was.
type Session struct {
	record *project.Record
	cmd    Command
	state  State

	General    *GeneralForm
	Rating     *RatingForm
	Objectives *ObjectivesForm
	Purchase   *PurchaseForm
	Financing  *FinancingForm
	Subsidy    *SubsidyForm
	Work       *WorkForm
	Material   *MaterialForm
	Journal    *JournalForm
	Energy     *EnergyForm
}

// Open starts an edit session for the command against the record. For edits
// the buffer is loaded from the current entity; for adds it starts blank;
// for deletes the session opens in the confirmation state without a buffer.
func Open(r *project.Record, cmd Command) (*Session, error) {
	s := &Session{record: r, cmd: cmd}

	if cmd.Op == OpDelete {
		if !cmd.Kind.IsList() {
			return nil, fmt.Errorf("edit: %s cannot be deleted", cmd.Kind)
		}
		if err := checkListIndex(r, cmd); err != nil {
			return nil, err
		}
		s.state = StateConfirming
		return s, nil
	}

	if cmd.Op == OpAdd && !cmd.Kind.IsList() {
		return nil, fmt.Errorf("edit: %s is a singleton section", cmd.Kind)
	}
	if cmd.Op == OpEdit && cmd.Kind.IsList() {
		if err := checkListIndex(r, cmd); err != nil {
			return nil, err
		}
	}

	switch cmd.Kind {
	case KindGeneral:
		f := generalFormFrom(r.General)
		s.General = &f
	case KindRating:
		f := ratingFormFrom(r.Rating)
		s.Rating = &f
	case KindObjective:
		f := objectivesFormFrom(r.Objectives)
		s.Objectives = &f
	case KindPurchase:
		f := purchaseFormFrom(r.Purchase)
		s.Purchase = &f
	case KindFinancing:
		f := financingFormFrom(r.Financing)
		s.Financing = &f
	case KindEnergy:
		f := energyFormFrom(r.Energy)
		s.Energy = &f
	case KindSubsidy:
		f := SubsidyForm{Status: project.SubsidyRequested}
		if cmd.Op == OpEdit {
			f = subsidyFormFrom(r.Subsidies[cmd.Index])
		}
		s.Subsidy = &f
	case KindWork:
		f := WorkForm{Category: project.Categories[0], Progress: "0"}
		if cmd.Op == OpEdit {
			f = workFormFrom(r.WorkItems[cmd.Index])
		}
		s.Work = &f
	case KindMaterial:
		f := MaterialForm{Status: project.MaterialQuoted}
		if cmd.Op == OpEdit {
			f = materialFormFrom(r.Materials[cmd.Index])
		}
		s.Material = &f
	case KindJournal:
		f := JournalForm{Date: time.Now().Format("2006-01-02")}
		if cmd.Op == OpEdit {
			f = journalFormFrom(r.Journal[cmd.Index])
		}
		s.Journal = &f
	default:
		return nil, fmt.Errorf("edit: unknown entity kind %q", cmd.Kind)
	}

	s.state = StateFormOpen
	return s, nil
}

func checkListIndex(r *project.Record, cmd Command) error {
	var n int
	switch cmd.Kind {
	case KindSubsidy:
		n = len(r.Subsidies)
	case KindWork:
		n = len(r.WorkItems)
	case KindMaterial:
		n = len(r.Materials)
	case KindJournal:
		n = len(r.Journal)
	default:
		return fmt.Errorf("edit: %s is not a list entity", cmd.Kind)
	}
	if cmd.Index < 0 || cmd.Index >= n {
		return &project.OutOfRangeError{List: string(cmd.Kind), Index: cmd.Index, Len: n}
	}
	return nil
}

// State returns the session state.
func (s *Session) State() State { return s.state }

// Command returns the command the session was opened for.
func (s *Session) Command() Command { return s.cmd }

// Cancel abandons the session. The record is untouched.
func (s *Session) Cancel() {
	s.state = StateClosed
}

// Commit coerces the buffer and applies it to the record in one step.
// It returns a history description for the change log.
func (s *Session) Commit() (string, error) {
	if s.state != StateFormOpen {
		return "", ErrNotOpen
	}

	var desc string
	var err error
	switch s.cmd.Kind {
	case KindGeneral:
		s.record.General = s.General.apply()
		desc = "Edited project info"
	case KindRating:
		s.record.Rating = s.Rating.apply()
		desc = "Edited energy rating"
	case KindObjective:
		s.record.Objectives = s.Objectives.apply()
		desc = "Edited objectives"
	case KindPurchase:
		s.record.Purchase = s.Purchase.apply()
		desc = "Edited purchase costs"
	case KindFinancing:
		s.record.Financing = s.Financing.apply()
		desc = "Edited financing"
	case KindEnergy:
		s.record.Energy = s.Energy.apply()
		desc = "Edited energy impact"
	case KindSubsidy:
		sub := s.Subsidy.apply()
		if s.cmd.Op == OpAdd {
			s.record.AddSubsidy(sub)
			desc = "Added subsidy: " + sub.Name
		} else {
			err = s.record.UpdateSubsidy(s.cmd.Index, sub)
			desc = "Edited subsidy: " + sub.Name
		}
	case KindWork:
		w := s.Work.apply()
		if s.cmd.Op == OpAdd {
			s.record.AddWorkItem(w)
			desc = "Added work item: " + w.Name
		} else {
			err = s.record.UpdateWorkItem(s.cmd.Index, w)
			desc = "Edited work item: " + w.Name
		}
	case KindMaterial:
		m := s.Material.apply()
		if s.cmd.Op == OpAdd {
			s.record.AddMaterial(m)
			desc = "Added material: " + m.Name
		} else {
			err = s.record.UpdateMaterial(s.cmd.Index, m)
			desc = "Edited material: " + m.Name
		}
	case KindJournal:
		j := s.Journal.apply()
		if s.cmd.Op == OpAdd {
			s.record.PrependJournal(j)
			desc = "Added journal entry: " + j.Title
		} else {
			err = s.record.UpdateJournal(s.cmd.Index, j)
			desc = "Edited journal entry: " + j.Title
		}
	default:
		err = fmt.Errorf("edit: unknown entity kind %q", s.cmd.Kind)
	}
	if err != nil {
		return "", err
	}

	s.state = StateCommitted
	return desc, nil
}

// DeleteLabel names the entity pending deletion, for the confirm prompt.
func (s *Session) DeleteLabel() string {
	switch s.cmd.Kind {
	case KindSubsidy:
		return s.record.Subsidies[s.cmd.Index].Name
	case KindWork:
		return s.record.WorkItems[s.cmd.Index].Name
	case KindMaterial:
		return s.record.Materials[s.cmd.Index].Name
	case KindJournal:
		return s.record.Journal[s.cmd.Index].Title
	}
	return ""
}

// ConfirmDelete performs the pending deletion. It returns a history
// description for the change log.
func (s *Session) ConfirmDelete() (string, error) {
	if s.state != StateConfirming {
		return "", ErrNotOpen
	}

	label := s.DeleteLabel()
	var desc string
	var err error
	switch s.cmd.Kind {
	case KindSubsidy:
		err = s.record.RemoveSubsidy(s.cmd.Index)
		desc = "Deleted subsidy: " + label
	case KindWork:
		err = s.record.RemoveWorkItem(s.cmd.Index)
		desc = "Deleted work item: " + label
	case KindMaterial:
		err = s.record.RemoveMaterial(s.cmd.Index)
		desc = "Deleted material: " + label
	case KindJournal:
		err = s.record.RemoveJournal(s.cmd.Index)
		desc = "Deleted journal entry: " + label
	default:
		err = fmt.Errorf("edit: %s is not a list entity", s.cmd.Kind)
	}
	if err != nil {
		return "", err
	}

	s.state = StateCommitted
	return desc, nil
}
