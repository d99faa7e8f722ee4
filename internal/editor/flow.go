// Package editor holds the transient add and edit flows that sit between the
// table and the record store.
//
// Each flow is a small state machine:
//
//	Closed -> Open                  explicit trigger
//	Open   -> Closed                cancel, no validation
//	Open   -> SubmittingInvalid     save rejected
//	SubmittingInvalid -> Open       errors attached, flow stays open
//	Open   -> SubmittingValid       save accepted
//	SubmittingValid -> Closed       store written
//
// A Session owns at most one open flow at a time.
package editor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Makepad-fr/todoboard/internal/model"
)

type State int

const (
	Closed State = iota
	Open
	SubmittingInvalid
	SubmittingValid
)

func (s State) String() string {
	switch s {
	case Closed:
		return "CLOSED"
	case Open:
		return "OPEN"
	case SubmittingInvalid:
		return "SUBMITTING_INVALID"
	case SubmittingValid:
		return "SUBMITTING_VALID"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

var (
	ErrTransition = errors.New("invalid flow transition")
	ErrBusy       = errors.New("another flow is open")
)

type machine struct {
	state State
}

func (m *machine) to(next State) error {
	if !isAllowedTransition(m.state, next) {
		return fmt.Errorf("%w: %s -> %s", ErrTransition, m.state, next)
	}
	m.state = next
	return nil
}

func isAllowedTransition(from, to State) bool {
	switch from {
	case Closed:
		return to == Open
	case Open:
		return to == Closed || to == SubmittingInvalid || to == SubmittingValid
	case SubmittingInvalid:
		return to == Open
	case SubmittingValid:
		return to == Closed
	default:
		return false
	}
}

// Draft is the raw form content. OwnerID stays text until save.
type Draft struct {
	OwnerID   string
	Title     string
	Completed bool
}

func draftOf(r model.Record) Draft {
	return Draft{OwnerID: strconv.Itoa(r.OwnerID), Title: r.Title, Completed: r.Completed}
}

// parseOwnerID returns 0 for anything that is not a base-10 integer,
// which the store rejects like any other non-positive id.
func parseOwnerID(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func (d Draft) candidate() model.Candidate {
	return model.Candidate{OwnerID: parseOwnerID(d.OwnerID), Title: d.Title, Completed: d.Completed}
}

// Kind names which flow a Session has open.
type Kind int

const (
	None Kind = iota
	Adding
	Editing
)

type flow interface {
	State() State
	Cancel() error
}

// Session holds the single active flow, if any.
type Session struct {
	cur flow
}

func (s *Session) Active() Kind {
	if s.cur == nil || s.cur.State() == Closed {
		return None
	}
	switch s.cur.(type) {
	case *AddFlow:
		return Adding
	case *EditFlow:
		return Editing
	}
	return None
}

// OpenAdd starts a blank add flow.
func (s *Session) OpenAdd() (*AddFlow, error) {
	if s.Active() != None {
		return nil, ErrBusy
	}
	f := &AddFlow{}
	if err := f.Open(); err != nil {
		return nil, err
	}
	s.cur = f
	return f, nil
}

// OpenEdit starts an edit flow on a snapshot of r.
func (s *Session) OpenEdit(r model.Record) (*EditFlow, error) {
	if s.Active() != None {
		return nil, ErrBusy
	}
	f := &EditFlow{}
	if err := f.Open(r); err != nil {
		return nil, err
	}
	s.cur = f
	return f, nil
}

// Adding returns the open add flow or nil.
func (s *Session) Adding() *AddFlow {
	if s.Active() != Adding {
		return nil
	}
	return s.cur.(*AddFlow)
}

// Editing returns the open edit flow or nil.
func (s *Session) Editing() *EditFlow {
	if s.Active() != Editing {
		return nil
	}
	return s.cur.(*EditFlow)
}

// Cancel closes whichever flow is open.
func (s *Session) Cancel() {
	if s.Active() == None {
		return
	}
	_ = s.cur.Cancel()
}
