package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/todoboard/internal/editor"
	"github.com/Makepad-fr/todoboard/internal/model"
	"github.com/Makepad-fr/todoboard/internal/store/recordstore"
	"github.com/Makepad-fr/todoboard/internal/store/remote"
	"github.com/Makepad-fr/todoboard/internal/ui"
)

const (
	roleWidth      = 14
	completedWidth = 10
	actionsWidth   = 16
)

// columns sizes the title column to whatever the fixed columns leave over.
func columns(width int, sorted bool, dir recordstore.Direction) []table.Column {
	if width <= 0 {
		width = 80
	}
	title := "Title"
	if sorted {
		sym := ui.Current().SortAsc
		if dir == recordstore.Descending {
			sym = ui.Current().SortDesc
		}
		title += " " + sym
	}
	// cell padding is one column either side
	titleWidth := width - 4 - roleWidth - completedWidth - actionsWidth - 8
	return []table.Column{
		{Title: "Role", Width: roleWidth},
		{Title: title, Width: max(titleWidth, 12)},
		{Title: "Completed", Width: completedWidth},
		{Title: "Actions [a]+", Width: actionsWidth},
	}
}

func (m Model) View() string {
	t := ui.Current()
	switch m.store.State() {
	case recordstore.StateLoading:
		return m.center(m.spinner.View() + " Loading...")
	case recordstore.StateFailed:
		return m.center(t.Error.Render("Error: "+errorText(m.store.Err())) + "\n\n" +
			t.Muted.Render("press q to quit"))
	}

	if f := m.session.Editing(); f != nil {
		return m.center(m.modal(f))
	}

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	if f := m.session.Adding(); f != nil {
		b.WriteString(m.addRow(f))
		b.WriteString("\n")
	}
	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(m.footer())
	return ui.Frame(b.String())
}

func (m Model) header() string {
	t := ui.Current()
	recs := m.store.Records()
	done, pending := model.Stats(recs)
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render("Total"), len(recs),
	)
}

func (m Model) footer() string {
	t := ui.Current()
	var lines []string
	switch {
	case m.pendingDelete != nil:
		lines = append(lines, t.Error.Render("Are you sure you want to delete this item? (y/n)")+
			" "+t.Muted.Render(m.pendingDelete.Title))
	case m.status != "":
		lines = append(lines, t.Muted.Render(m.status))
	default:
		lines = append(lines, "")
	}
	if m.session.Active() == editor.Adding {
		lines = append(lines, m.help.View(formHelp{m.keys}))
	} else {
		lines = append(lines, m.help.View(browseHelp{m.keys}))
	}
	return strings.Join(lines, "\n")
}

// addRow is the inline row of inputs shown above the table.
func (m Model) addRow(f *editor.AddFlow) string {
	t := ui.Current()
	title := t.Title.Render("Add new item")
	if msg := f.Message(); msg != "" {
		title += "  " + t.Error.Render(msg)
	}
	cells := []string{
		m.cell("User ID", m.form.owner.View(), fieldOwner),
		m.cell("Title", m.form.title.View(), fieldTitle),
		m.cell("Completed", m.toggle(), fieldCompleted),
	}
	bar := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	return bar.Render(title + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, cells...))
}

// modal is the edit dialog with field errors under their inputs.
func (m Model) modal(f *editor.EditFlow) string {
	t := ui.Current()
	errs := f.FieldErrors()
	var b strings.Builder
	b.WriteString(t.Title.Render("Edit Item"))
	b.WriteString("\n\n")
	b.WriteString(m.labelled("User ID:", m.form.owner.View(), fieldOwner, errs[recordstore.FieldOwnerID]))
	b.WriteString(m.labelled("Title:", m.form.title.View(), fieldTitle, errs[recordstore.FieldTitle]))
	b.WriteString(m.labelled("Completed:", m.toggle(), fieldCompleted, ""))
	if other := errs[""]; other != "" {
		b.WriteString(t.Error.Render(other) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(formHelp{m.keys}))
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(1, 2).
		Width(56).
		Render(b.String())
}

func (m Model) labelled(label, input string, fl field, errMsg string) string {
	t := ui.Current()
	l := label
	if m.form.focus == fl {
		l = t.Accent.Render(label)
	}
	s := l + "\n" + input + "\n"
	if errMsg != "" {
		s += t.Error.Render(errMsg) + "\n"
	}
	return s + "\n"
}

func (m Model) cell(label, input string, fl field) string {
	t := ui.Current()
	l := t.Muted.Render(label)
	if m.form.focus == fl {
		l = t.Accent.Render(label)
	}
	return lipgloss.NewStyle().PaddingRight(3).Render(l + "\n" + input)
}

func (m Model) toggle() string {
	t := ui.Current()
	box := t.BoxUnchecked
	if m.form.completed {
		box = t.BoxChecked
	}
	s := box + " " + model.YesNo(m.form.completed)
	if m.form.focus == fieldCompleted {
		return t.Selected.Render(s)
	}
	return s
}

func (m Model) center(s string) string {
	if m.width == 0 || m.height == 0 {
		return s
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s)
}

// errorText is the one-line message shown on the error page.
func errorText(err error) string {
	if err == nil {
		return "unknown error"
	}
	if errors.Is(err, remote.ErrFetch) {
		return "Data could not be fetched"
	}
	return err.Error()
}
