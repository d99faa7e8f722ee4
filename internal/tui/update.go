package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Makepad-fr/todoboard/internal/editor"
	"github.com/Makepad-fr/todoboard/internal/model"
	"github.com/Makepad-fr/todoboard/internal/store/recordstore"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = max(msg.Width, 0), max(msg.Height, 0)
		m.resize()
		return m, nil

	case loadedMsg:
		return m.applyLoad(msg), nil

	case spinner.TickMsg:
		if m.store.State() != recordstore.StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.store.State() != recordstore.StateReady {
			if key.Matches(msg, m.keys.Quit) {
				return m, tea.Quit
			}
			return m, nil
		}
		if m.pendingDelete != nil {
			return m.updateConfirm(msg)
		}
		switch m.session.Active() {
		case editor.Adding:
			return m.updateAdd(msg)
		case editor.Editing:
			return m.updateEdit(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) applyLoad(msg loadedMsg) Model {
	if msg.err != nil {
		m.store.Fail(msg.err)
		m.log.Error("load failed", zap.Error(msg.err))
		return m
	}
	if err := m.store.Replace(msg.recs); err != nil {
		m.log.Warn("late load ignored", zap.Error(err))
		return m
	}
	m.log.Info("records loaded", zap.Int("count", m.store.Len()))
	m.refresh()
	return m
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Sort):
		dir := m.store.ToggleSort()
		m.sorted = true
		m.status = fmt.Sprintf("sorted by title (%s)", dir)
		m.log.Debug("sorted", zap.Stringer("direction", dir))
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Add):
		f, err := m.session.OpenAdd()
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.form = newForm(f.Draft())
		m.alert = ""
		m.status = ""
		m.resize()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Edit):
		rec, ok := m.selected()
		if !ok {
			return m, nil
		}
		f, err := m.session.OpenEdit(rec)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.form = newForm(f.Draft())
		m.status = ""
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Delete):
		rec, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.pendingDelete = &rec
		m.status = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rec := *m.pendingDelete
	m.pendingDelete = nil
	if !key.Matches(msg, m.keys.Confirm) {
		m.status = "delete cancelled"
		return m, nil
	}
	if m.store.Remove(rec.ID) {
		m.status = fmt.Sprintf("deleted %q", rec.Title)
		m.log.Info("record removed", zap.Int("id", rec.ID))
	}
	m.refresh()
	return m, nil
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.session.Adding()
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.session.Cancel()
		m.alert = ""
		m.resize()
		return m, nil
	case key.Matches(msg, m.keys.Save):
		m.sync(f)
		rec, err := f.Save(m.store)
		if err != nil {
			m.alert = err.Error()
			m.log.Debug("add rejected", zap.Error(err))
			return m, nil
		}
		m.alert = ""
		m.status = fmt.Sprintf("added %q", rec.Title)
		m.log.Info("record added", zap.Int("id", rec.ID))
		m.refresh()
		m.table.SetCursor(0)
		m.resize()
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		m.form.next()
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		m.form.prev()
		return m, nil
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	m.sync(f)
	return m, cmd
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.session.Editing()
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.session.Cancel()
		return m, nil
	case key.Matches(msg, m.keys.Save):
		m.sync(f)
		if err := f.Save(m.store); err != nil {
			if !errors.Is(err, recordstore.ErrInvalid) {
				m.status = err.Error()
			}
			m.log.Debug("edit rejected", zap.Int("id", f.RecordID()), zap.Error(err))
			return m, nil
		}
		m.status = "saved"
		m.log.Info("record updated", zap.Int("id", f.RecordID()))
		m.refresh()
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		m.form.next()
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		m.form.prev()
		return m, nil
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	m.sync(f)
	return m, cmd
}

// drafter is the setter side shared by both flows.
type drafter interface {
	SetOwnerID(string)
	SetTitle(string)
	SetCompleted(bool)
}

func (m Model) sync(f drafter) {
	d := m.form.draft()
	f.SetOwnerID(d.OwnerID)
	f.SetTitle(d.Title)
	f.SetCompleted(d.Completed)
}

// refresh rebuilds the table rows from the store.
func (m *Model) refresh() {
	recs := m.store.Records()
	rows := make([]table.Row, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, row(r))
	}
	cur := m.table.Cursor()
	m.table.SetColumns(columns(m.width, m.sorted, m.store.SortDirection()))
	m.table.SetRows(rows)
	switch {
	case len(rows) == 0:
	case cur >= len(rows):
		m.table.SetCursor(len(rows) - 1)
	case cur < 0:
		m.table.SetCursor(0)
	}
}

func row(r model.Record) table.Row {
	return table.Row{model.RoleLabel(r.OwnerID), r.Title, model.YesNo(r.Completed), "edit · delete"}
}

func (m *Model) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	m.table.SetColumns(columns(m.width, m.sorted, m.store.SortDirection()))
	m.table.SetWidth(max(m.width-4, 20))
	// header, status line, help and frame; the add row takes four more
	h := m.height - 8
	if m.session.Active() == editor.Adding {
		h -= 4
	}
	m.table.SetHeight(max(h, 3))
	m.help.Width = m.width
}
