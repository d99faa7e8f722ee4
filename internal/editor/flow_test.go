package editor

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/todoboard/internal/model"
	"github.com/Makepad-fr/todoboard/internal/store/recordstore"
)

type fixture []model.Record

func (f fixture) Fetch(context.Context) ([]model.Record, error) { return f, nil }

func newStore(t *testing.T) *recordstore.Store {
	t.Helper()
	s := recordstore.New()
	require.NoError(t, s.Load(context.Background(), fixture{
		{OwnerID: 1, ID: 1, Title: "b", Completed: false},
		{OwnerID: 2, ID: 7, Title: "a", Completed: true},
	}))
	return s
}

func TestMachine_Transitions(t *testing.T) {
	m := machine{}
	require.NoError(t, m.to(Open))
	require.NoError(t, m.to(SubmittingInvalid))
	require.NoError(t, m.to(Open))
	require.NoError(t, m.to(SubmittingValid))
	require.NoError(t, m.to(Closed))

	err := m.to(SubmittingValid)
	assert.ErrorIs(t, err, ErrTransition)
	assert.Equal(t, "invalid flow transition: CLOSED -> SUBMITTING_VALID", err.Error())

	require.NoError(t, m.to(Open))
	assert.ErrorIs(t, m.to(Open), ErrTransition)
}

func TestEditFlow_SaveValid(t *testing.T) {
	s := newStore(t)
	rec, _ := s.Get(7)

	var sess Session
	f, err := sess.OpenEdit(rec)
	require.NoError(t, err)
	assert.Equal(t, Editing, sess.Active())
	assert.Equal(t, Draft{OwnerID: "2", Title: "a", Completed: true}, f.Draft())

	f.SetTitle("renamed")
	f.SetCompleted(false)
	// snapshot only: the store still has the old values
	got, _ := s.Get(7)
	assert.Equal(t, "a", got.Title)

	require.NoError(t, f.Save(s))
	assert.Equal(t, Closed, f.State())
	assert.Equal(t, None, sess.Active())

	got, _ = s.Get(7)
	assert.Equal(t, model.Record{OwnerID: 2, ID: 7, Title: "renamed"}, got)
	first, _ := s.At(0)
	assert.Equal(t, 1, first.ID)
}

func TestEditFlow_SaveInvalidStaysOpen(t *testing.T) {
	s := newStore(t)
	before := s.Records()
	rec, _ := s.Get(1)

	var sess Session
	f, err := sess.OpenEdit(rec)
	require.NoError(t, err)
	f.SetOwnerID("0")
	f.SetTitle("  ")

	err = f.Save(s)
	require.ErrorIs(t, err, recordstore.ErrInvalid)
	assert.Equal(t, Open, f.State())
	assert.Equal(t, map[string]string{
		recordstore.FieldOwnerID: recordstore.MsgOwnerID,
		recordstore.FieldTitle:   recordstore.MsgTitle,
	}, f.FieldErrors())
	assert.Empty(t, cmp.Diff(before, s.Records()))

	// fixing the fields clears the errors on the next save
	f.SetOwnerID("3")
	f.SetTitle("fixed")
	require.NoError(t, f.Save(s))
	assert.Nil(t, f.FieldErrors())
}

func TestEditFlow_CancelDiscards(t *testing.T) {
	s := newStore(t)
	before := s.Records()
	rec, _ := s.Get(1)

	var sess Session
	f, _ := sess.OpenEdit(rec)
	f.SetOwnerID("")
	require.Error(t, f.Save(s))
	sess.Cancel()

	assert.Equal(t, Closed, f.State())
	assert.Equal(t, None, sess.Active())
	assert.Empty(t, cmp.Diff(before, s.Records()))

	// reopening starts from a clean snapshot with no errors
	f, err := sess.OpenEdit(rec)
	require.NoError(t, err)
	assert.Empty(t, f.FieldErrors())
	assert.Equal(t, "1", f.Draft().OwnerID)
}

func TestEditFlow_SettersIgnoredWhenClosed(t *testing.T) {
	var f EditFlow
	f.SetTitle("x")
	assert.Equal(t, Draft{}, f.Draft())
	assert.ErrorIs(t, f.Save(newStore(t)), ErrTransition)
	assert.ErrorIs(t, f.Cancel(), ErrTransition)
}

func TestAddFlow_SaveValid(t *testing.T) {
	s := newStore(t)
	var sess Session
	f, err := sess.OpenAdd()
	require.NoError(t, err)
	assert.Equal(t, Draft{}, f.Draft())

	f.SetOwnerID("5")
	f.SetTitle("new")
	rec, err := f.Save(s)
	require.NoError(t, err)
	assert.Equal(t, model.Record{OwnerID: 5, ID: 8, Title: "new"}, rec)
	assert.Equal(t, Closed, f.State())
	assert.Equal(t, Draft{}, f.Draft())

	first, _ := s.At(0)
	assert.Equal(t, 8, first.ID)
}

func TestAddFlow_MessagePriority(t *testing.T) {
	cases := []struct {
		name  string
		draft Draft
		field string
		msg   string
	}{
		{"all missing", Draft{}, recordstore.FieldOwnerID, MsgOwnerRequired},
		{"title missing", Draft{OwnerID: "abc"}, recordstore.FieldTitle, MsgTitleRequired},
		{"non numeric", Draft{OwnerID: "abc", Title: "t"}, recordstore.FieldOwnerID, MsgOwnerPositive},
		{"zero", Draft{OwnerID: "0", Title: "x"}, recordstore.FieldOwnerID, MsgOwnerPositive},
		{"negative", Draft{OwnerID: "-2", Title: "x"}, recordstore.FieldOwnerID, MsgOwnerPositive},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newStore(t)
			before := s.Records()
			var sess Session
			f, _ := sess.OpenAdd()
			f.SetOwnerID(tc.draft.OwnerID)
			f.SetTitle(tc.draft.Title)

			_, err := f.Save(s)
			var aerr *AddError
			require.True(t, errors.As(err, &aerr))
			assert.Equal(t, tc.field, aerr.Field)
			assert.Equal(t, tc.msg, aerr.Msg)
			assert.Equal(t, tc.msg, f.Message())
			assert.ErrorIs(t, err, recordstore.ErrInvalid)
			assert.Equal(t, Open, f.State())
			assert.Equal(t, Adding, sess.Active())
			assert.Empty(t, cmp.Diff(before, s.Records()))
		})
	}
}

func TestOwnerIDRejectedAlikeInBothFlows(t *testing.T) {
	for _, owner := range []string{"0", "-1", "abc", "1.5"} {
		s := newStore(t)
		before := s.Records()
		var sess Session

		af, _ := sess.OpenAdd()
		af.SetOwnerID(owner)
		af.SetTitle("title")
		_, err := af.Save(s)
		var aerr *AddError
		require.ErrorAs(t, err, &aerr, "add owner %q", owner)
		assert.Equal(t, recordstore.FieldOwnerID, aerr.Field)
		sess.Cancel()

		rec, _ := s.Get(1)
		ef, err := sess.OpenEdit(rec)
		require.NoError(t, err)
		ef.SetOwnerID(owner)
		err = ef.Save(s)
		require.ErrorIs(t, err, recordstore.ErrInvalid, "edit owner %q", owner)
		assert.Contains(t, ef.FieldErrors(), recordstore.FieldOwnerID)

		assert.Empty(t, cmp.Diff(before, s.Records()))
	}
}

func TestSession_OneFlowAtATime(t *testing.T) {
	s := newStore(t)
	rec, _ := s.Get(1)
	var sess Session
	assert.Equal(t, None, sess.Active())
	assert.Nil(t, sess.Adding())
	assert.Nil(t, sess.Editing())

	af, err := sess.OpenAdd()
	require.NoError(t, err)
	_, err = sess.OpenEdit(rec)
	assert.ErrorIs(t, err, ErrBusy)
	_, err = sess.OpenAdd()
	assert.ErrorIs(t, err, ErrBusy)
	assert.Same(t, af, sess.Adding())

	require.NoError(t, af.Cancel())
	ef, err := sess.OpenEdit(rec)
	require.NoError(t, err)
	assert.Same(t, ef, sess.Editing())
	assert.Nil(t, sess.Adding())
}

func TestAddFlow_ReopenIsBlank(t *testing.T) {
	var sess Session
	f, _ := sess.OpenAdd()
	f.SetOwnerID("4")
	f.SetTitle("half typed")
	f.SetCompleted(true)
	sess.Cancel()

	f, err := sess.OpenAdd()
	require.NoError(t, err)
	assert.Equal(t, Draft{}, f.Draft())
}
