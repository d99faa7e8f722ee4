// Package recordstore holds the in-memory record collection behind the table.
//
// The collection is populated once from a Source and afterwards changes only
// through Add, Update, Remove and the title sort. Nothing is persisted.
// A Store is driven from a single update loop and is not safe for concurrent use.
package recordstore

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/Makepad-fr/todoboard/internal/model"
)

// Source supplies the initial collection.
type Source interface {
	Fetch(ctx context.Context) ([]model.Record, error)
}

// State is the load state of a Store.
type State int

const (
	StateLoading State = iota
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Direction is a title sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// ParseDirection accepts "asc" or "desc" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc":
		return Ascending, nil
	case "desc":
		return Descending, nil
	}
	return Ascending, fmt.Errorf("unknown sort direction %q (want asc or desc)", s)
}

type Store struct {
	records []model.Record
	state   State
	err     error
	sortDir Direction
}

// New returns an empty store in the loading state.
// The remembered sort direction starts at Ascending, so the first toggle sorts descending.
func New() *Store {
	return &Store{state: StateLoading, sortDir: Ascending}
}

// Load fetches from src and resolves the store to ready or failed.
func (s *Store) Load(ctx context.Context, src Source) error {
	recs, err := src.Fetch(ctx)
	if err != nil {
		s.Fail(err)
		return err
	}
	return s.Replace(recs)
}

// Replace installs the fetched collection and marks the store ready.
// It may succeed only once.
func (s *Store) Replace(recs []model.Record) error {
	if s.state == StateReady {
		return ErrAlreadyLoaded
	}
	s.records = slices.Clone(recs)
	if s.records == nil {
		s.records = []model.Record{}
	}
	s.state = StateReady
	s.err = nil
	return nil
}

// Fail records a load failure. A ready store ignores it.
func (s *Store) Fail(err error) {
	if s.state == StateReady {
		return
	}
	s.state = StateFailed
	s.err = err
}

func (s *Store) State() State { return s.state }

// Err is the load error when State is StateFailed.
func (s *Store) Err() error { return s.err }

// Records returns a copy of the current sequence.
func (s *Store) Records() []model.Record { return slices.Clone(s.records) }

func (s *Store) Len() int { return len(s.records) }

// At returns the record at position i.
func (s *Store) At(i int) (model.Record, bool) {
	if i < 0 || i >= len(s.records) {
		return model.Record{}, false
	}
	return s.records[i], true
}

// Get looks a record up by id.
func (s *Store) Get(id int) (model.Record, bool) {
	if i := s.index(id); i >= 0 {
		return s.records[i], true
	}
	return model.Record{}, false
}

// SortDirection is the remembered direction of the last sort.
func (s *Store) SortDirection() Direction { return s.sortDir }

// SortByTitle orders the current sequence by title using byte-wise comparison
// and remembers dir. Equal titles keep their relative order.
func (s *Store) SortByTitle(dir Direction) {
	s.sortDir = dir
	slices.SortStableFunc(s.records, func(a, b model.Record) int {
		c := strings.Compare(a.Title, b.Title)
		if dir == Descending {
			return -c
		}
		return c
	})
}

// ToggleSort flips the remembered direction, applies it to the current
// sequence and returns the new direction.
func (s *Store) ToggleSort() Direction {
	d := s.sortDir.Flip()
	s.SortByTitle(d)
	return d
}

// Add validates c, assigns the next id and prepends the new record.
func (s *Store) Add(c model.Candidate) (model.Record, error) {
	if err := Validate(c); err != nil {
		return model.Record{}, err
	}
	r := model.Record{
		OwnerID:   c.OwnerID,
		ID:        s.nextID(),
		Title:     strings.TrimSpace(c.Title),
		Completed: c.Completed,
	}
	s.records = slices.Insert(s.records, 0, r)
	return r, nil
}

// Update validates c and replaces the fields of record id in place.
// It reports whether a record with that id existed.
func (s *Store) Update(id int, c model.Candidate) (bool, error) {
	if err := Validate(c); err != nil {
		return false, err
	}
	i := s.index(id)
	if i < 0 {
		return false, nil
	}
	s.records[i] = model.Record{
		OwnerID:   c.OwnerID,
		ID:        id,
		Title:     strings.TrimSpace(c.Title),
		Completed: c.Completed,
	}
	return true, nil
}

// Remove deletes record id and reports whether it existed.
func (s *Store) Remove(id int) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.records = slices.Delete(s.records, i, i+1)
	return true
}

// Validate checks the two write invariants and reports every failing field.
func Validate(c model.Candidate) error {
	fields := map[string]string{}
	if c.OwnerID <= 0 {
		fields[FieldOwnerID] = MsgOwnerID
	}
	if strings.TrimSpace(c.Title) == "" {
		fields[FieldTitle] = MsgTitle
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (s *Store) nextID() int {
	maxID := 0
	for _, r := range s.records {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	return maxID + 1
}

func (s *Store) index(id int) int {
	return slices.IndexFunc(s.records, func(r model.Record) bool { return r.ID == id })
}
