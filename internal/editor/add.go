package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Makepad-fr/todoboard/internal/model"
	"github.com/Makepad-fr/todoboard/internal/store/recordstore"
)

// Adder inserts a new record. *recordstore.Store satisfies it.
type Adder interface {
	Add(c model.Candidate) (model.Record, error)
}

// Messages for the add row, one per rule, checked in this order.
const (
	MsgOwnerRequired = "User ID is required."
	MsgTitleRequired = "Title is required."
	MsgOwnerPositive = "User ID must be a positive number."
)

// AddError is the single blocking message of a rejected add.
type AddError struct {
	Field string
	Msg   string
}

func (e *AddError) Error() string { return e.Msg }

func (e *AddError) Unwrap() error { return recordstore.ErrInvalid }

// AddFlow collects a new record from blank inputs.
type AddFlow struct {
	m     machine
	draft Draft
	msg   string
}

// Open shows blank inputs (completed defaults to false).
func (f *AddFlow) Open() error {
	if err := f.m.to(Open); err != nil {
		return err
	}
	f.draft = Draft{}
	f.msg = ""
	return nil
}

func (f *AddFlow) State() State { return f.m.state }

func (f *AddFlow) Draft() Draft { return f.draft }

// Message is the blocking message from the last rejected save.
func (f *AddFlow) Message() string { return f.msg }

func (f *AddFlow) SetOwnerID(s string) {
	if f.m.state == Open {
		f.draft.OwnerID = s
	}
}

func (f *AddFlow) SetTitle(s string) {
	if f.m.state == Open {
		f.draft.Title = s
	}
}

func (f *AddFlow) SetCompleted(b bool) {
	if f.m.state == Open {
		f.draft.Completed = b
	}
}

// check applies the add-row rules and reports only the first one violated.
func (d Draft) check() *AddError {
	owner := strings.TrimSpace(d.OwnerID)
	if owner == "" {
		return &AddError{Field: recordstore.FieldOwnerID, Msg: MsgOwnerRequired}
	}
	if strings.TrimSpace(d.Title) == "" {
		return &AddError{Field: recordstore.FieldTitle, Msg: MsgTitleRequired}
	}
	if n, err := strconv.Atoi(owner); err != nil || n <= 0 {
		return &AddError{Field: recordstore.FieldOwnerID, Msg: MsgOwnerPositive}
	}
	return nil
}

// Save checks the inputs, inserts through a and closes the flow with blank inputs.
// A rejected save returns an *AddError and keeps the flow open.
func (f *AddFlow) Save(a Adder) (model.Record, error) {
	if f.m.state != Open {
		return model.Record{}, fmt.Errorf("%w: save while %s", ErrTransition, f.m.state)
	}
	if aerr := f.draft.check(); aerr != nil {
		return model.Record{}, f.reject(aerr)
	}
	rec, err := a.Add(f.draft.candidate())
	if err != nil {
		return model.Record{}, f.reject(err)
	}
	if err := f.m.to(SubmittingValid); err != nil {
		return model.Record{}, err
	}
	f.draft = Draft{}
	f.msg = ""
	return rec, f.m.to(Closed)
}

func (f *AddFlow) reject(err error) error {
	if terr := f.m.to(SubmittingInvalid); terr != nil {
		return terr
	}
	f.msg = err.Error()
	if terr := f.m.to(Open); terr != nil {
		return terr
	}
	return err
}

// Cancel closes the flow without validation.
func (f *AddFlow) Cancel() error {
	if err := f.m.to(Closed); err != nil {
		return err
	}
	f.msg = ""
	return nil
}
