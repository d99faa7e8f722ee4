package editor

import (
	"errors"
	"fmt"
	"maps"

	"github.com/Makepad-fr/todoboard/internal/model"
	"github.com/Makepad-fr/todoboard/internal/store/recordstore"
)

// Updater applies an edit. *recordstore.Store satisfies it.
type Updater interface {
	Update(id int, c model.Candidate) (bool, error)
}

// EditFlow edits a snapshot of one record. The store is untouched until a valid save.
type EditFlow struct {
	m      machine
	id     int
	draft  Draft
	errors map[string]string
}

// Open snapshots r and clears earlier field errors.
func (f *EditFlow) Open(r model.Record) error {
	if err := f.m.to(Open); err != nil {
		return err
	}
	f.id = r.ID
	f.draft = draftOf(r)
	f.errors = nil
	return nil
}

func (f *EditFlow) State() State { return f.m.state }

func (f *EditFlow) RecordID() int { return f.id }

func (f *EditFlow) Draft() Draft { return f.draft }

// FieldErrors returns the messages from the last rejected save, keyed by field.
func (f *EditFlow) FieldErrors() map[string]string { return maps.Clone(f.errors) }

func (f *EditFlow) SetOwnerID(s string) {
	if f.m.state == Open {
		f.draft.OwnerID = s
	}
}

func (f *EditFlow) SetTitle(s string) {
	if f.m.state == Open {
		f.draft.Title = s
	}
}

func (f *EditFlow) SetCompleted(b bool) {
	if f.m.state == Open {
		f.draft.Completed = b
	}
}

// Save writes the snapshot through u, which validates it. On rejection the
// flow stays open with field errors and the error is returned as reported by u.
func (f *EditFlow) Save(u Updater) error {
	if f.m.state != Open {
		return fmt.Errorf("%w: save while %s", ErrTransition, f.m.state)
	}
	if _, err := u.Update(f.id, f.draft.candidate()); err != nil {
		return f.reject(err)
	}
	if err := f.m.to(SubmittingValid); err != nil {
		return err
	}
	f.errors = nil
	return f.m.to(Closed)
}

func (f *EditFlow) reject(err error) error {
	if terr := f.m.to(SubmittingInvalid); terr != nil {
		return terr
	}
	var verr *recordstore.ValidationError
	if errors.As(err, &verr) {
		f.errors = maps.Clone(verr.Fields)
	} else {
		f.errors = map[string]string{"": err.Error()}
	}
	if terr := f.m.to(Open); terr != nil {
		return terr
	}
	return err
}

// Cancel discards the snapshot without validation.
func (f *EditFlow) Cancel() error {
	if err := f.m.to(Closed); err != nil {
		return err
	}
	f.draft = Draft{}
	f.errors = nil
	return nil
}
