package jsonstore

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/todoboard/internal/model"
)

const sample = `[
  {"userId": 1, "id": 1, "title": "b", "completed": false},
  {"userId": 2, "id": 2, "title": "a", "completed": true, "extra": "ignored"}
]`

func TestDecode(t *testing.T) {
	recs, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, []model.Record{
		{OwnerID: 1, ID: 1, Title: "b"},
		{OwnerID: 2, ID: 2, Title: "a", Completed: true},
	}, recs)
}

func TestDecode_NullIsEmpty(t *testing.T) {
	recs, err := Decode(strings.NewReader("null"))
	require.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"not":"a list"}`))
	assert.ErrorContains(t, err, "json decode")
}

func TestEncode_UsesWireNames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, []model.Record{{OwnerID: 3, ID: 4, Title: "t", Completed: true}}))
	out := buf.String()
	for _, k := range []string{`"userId": 3`, `"id": 4`, `"title": "t"`, `"completed": true`} {
		assert.Contains(t, out, k)
	}
}

func TestEncodeYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeYAML(&buf, []model.Record{{OwnerID: 1, ID: 2, Title: "yaml me"}}))
	assert.Equal(t, "- userId: 1\n  id: 2\n  title: yaml me\n  completed: false\n", buf.String())
}

func TestFileSource(t *testing.T) {
	p := filepath.Join(t.TempDir(), "todos.json")
	require.NoError(t, os.WriteFile(p, []byte(sample), 0o644))

	recs, err := FileSource{Path: p}.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	_, err = FileSource{Path: filepath.Join(t.TempDir(), "missing.json")}.Fetch(context.Background())
	assert.ErrorContains(t, err, "read file")
}
