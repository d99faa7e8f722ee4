package jsonstore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/todoboard/internal/model"
)

// JSON codec for the remote todo list shape, plus a file-backed source
// that reads the same shape from disk. Read only; nothing is written back.

// Decode parses a JSON array of records. The body is trusted beyond parsing.
func Decode(r io.Reader) ([]model.Record, error) {
	var recs []model.Record
	if err := json.NewDecoder(r).Decode(&recs); err != nil {
		return nil, fmt.Errorf("json decode: %w", err)
	}
	if recs == nil {
		recs = []model.Record{}
	}
	return recs, nil
}

// Encode writes recs as indented JSON.
func Encode(w io.Writer, recs []model.Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(recs); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// EncodeYAML writes recs as a YAML sequence using the same field names.
func EncodeYAML(w io.Writer, recs []model.Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(recs); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return nil
}

// FileSource reads the record list from a local JSON file.
type FileSource struct {
	Path string
}

func (f FileSource) Fetch(ctx context.Context) ([]model.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	defer fh.Close()
	return Decode(fh)
}
