package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/todoboard/internal/editor"
)

type field int

const (
	fieldOwner field = iota
	fieldTitle
	fieldCompleted
	fieldCount
)

// form is the set of inputs behind both the add row and the edit modal.
type form struct {
	owner     textinput.Model
	title     textinput.Model
	completed bool
	focus     field
}

func newForm(d editor.Draft) form {
	owner := textinput.New()
	owner.Prompt = ""
	owner.Placeholder = "User ID"
	owner.CharLimit = 9
	owner.Width = 10
	owner.SetValue(d.OwnerID)

	title := textinput.New()
	title.Prompt = ""
	title.Placeholder = "Title"
	title.CharLimit = 200
	title.Width = 40
	title.SetValue(d.Title)

	f := form{owner: owner, title: title, completed: d.Completed}
	f.setFocus(fieldOwner)
	return f
}

func (f *form) setFocus(fl field) {
	f.focus = fl
	f.owner.Blur()
	f.title.Blur()
	switch fl {
	case fieldOwner:
		f.owner.Focus()
		f.owner.CursorEnd()
	case fieldTitle:
		f.title.Focus()
		f.title.CursorEnd()
	}
}

func (f *form) next() { f.setFocus((f.focus + 1) % fieldCount) }

func (f *form) prev() { f.setFocus((f.focus + fieldCount - 1) % fieldCount) }

func (f form) draft() editor.Draft {
	return editor.Draft{OwnerID: f.owner.Value(), Title: f.title.Value(), Completed: f.completed}
}

// update routes a key to the focused input. The completed field is a Yes/No
// toggle flipped by space, left/right or y/n.
func (f form) update(msg tea.KeyMsg) (form, tea.Cmd) {
	var cmd tea.Cmd
	switch f.focus {
	case fieldOwner:
		f.owner, cmd = f.owner.Update(msg)
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldCompleted:
		switch msg.String() {
		case " ", "left", "right", "h", "l":
			f.completed = !f.completed
		case "y", "Y":
			f.completed = true
		case "n", "N":
			f.completed = false
		}
	}
	return f, cmd
}
