package recordstore

import (
	"errors"
	"sort"
	"strings"
)

// Field names used as keys in ValidationError.
const (
	FieldOwnerID = "ownerId"
	FieldTitle   = "title"
)

// Field messages shown next to the offending inputs.
const (
	MsgOwnerID = "User ID is required and must be greater than zero."
	MsgTitle   = "Title must not be empty."
)

var (
	ErrInvalid       = errors.New("invalid record")
	ErrAlreadyLoaded = errors.New("records already loaded")
)

// ValidationError lists every field that failed, keyed by field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return ErrInvalid.Error()
	}
	names := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return ErrInvalid.Error() + ": " + strings.Join(names, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalid }

// Has reports whether field failed validation.
func (e *ValidationError) Has(field string) bool {
	if e == nil {
		return false
	}
	_, ok := e.Fields[field]
	return ok
}
