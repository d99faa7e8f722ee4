package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down     key.Binding
	Sort         key.Binding
	Add          key.Binding
	Edit         key.Binding
	Delete       key.Binding
	Quit         key.Binding
	NextField    key.Binding
	PrevField    key.Binding
	Save, Cancel key.Binding
	Confirm      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Sort:      key.NewBinding(key.WithKeys("s", "t"), key.WithHelp("s", "sort by title")),
		Add:       key.NewBinding(key.WithKeys("a", "+"), key.WithHelp("a", "add")),
		Edit:      key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Delete:    key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		NextField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Save:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Confirm:   key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "confirm")),
	}
}

// browseHelp is the help shown under the table.
type browseHelp struct{ keyMap }

func (k browseHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Sort, k.Add, k.Edit, k.Delete, k.Quit}
}

func (k browseHelp) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

// formHelp is the help shown while a flow is open.
type formHelp struct{ keyMap }

func (k formHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.PrevField, k.Save, k.Cancel}
}

func (k formHelp) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
