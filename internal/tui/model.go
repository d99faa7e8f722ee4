// Package tui is the interactive table over the record store.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Makepad-fr/todoboard/internal/editor"
	"github.com/Makepad-fr/todoboard/internal/model"
	"github.com/Makepad-fr/todoboard/internal/store/recordstore"
	"github.com/Makepad-fr/todoboard/internal/ui"
)

// loadedMsg carries the result of the single startup fetch.
type loadedMsg struct {
	recs []model.Record
	err  error
}

type Model struct {
	ctx    context.Context
	store  *recordstore.Store
	source recordstore.Source
	log    *zap.Logger

	session *editor.Session
	form    form
	alert   string // blocking message of a rejected add

	// pendingDelete is set while the y/n prompt is up.
	pendingDelete *model.Record

	table   table.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap

	sorted bool
	status string

	width, height int
}

// New builds the board. The store must still be loading; Init starts the fetch from src.
func New(ctx context.Context, store *recordstore.Store, src recordstore.Source, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	t := table.New(
		table.WithColumns(columns(80, false, recordstore.Ascending)),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(ui.Current().Border).
		BorderForeground(ui.Current().BorderColor).
		BorderBottom(true).
		Inherit(ui.Current().Header)
	st.Selected = ui.Current().Selected
	t.SetStyles(st)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = ui.Current().Accent

	return Model{
		ctx:     ctx,
		store:   store,
		source:  src,
		log:     log,
		session: &editor.Session{},
		table:   t,
		spinner: sp,
		help:    help.New(),
		keys:    defaultKeys(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch())
}

// fetch runs the one remote read off the update loop. Its result is applied
// in Update, so the store only ever changes on the loop.
func (m Model) fetch() tea.Cmd {
	ctx, src := m.ctx, m.source
	return func() tea.Msg {
		recs, err := src.Fetch(ctx)
		return loadedMsg{recs: recs, err: err}
	}
}

// Run starts the board full-screen and blocks until the user quits or ctx is done.
func Run(ctx context.Context, store *recordstore.Store, src recordstore.Source, log *zap.Logger) error {
	p := tea.NewProgram(New(ctx, store, src, log), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// selected returns the record under the table cursor.
func (m Model) selected() (model.Record, bool) {
	return m.store.At(m.table.Cursor())
}
