package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the notepad-level bindings. They are matched before the
// editor sees a key, so they take precedence over the editor's own bindings.
type KeyMap struct {
	New, Open, Save, SaveAs, Exit key.Binding

	Undo, Redo       key.Binding
	Cut, Copy, Paste key.Binding
	Delete           key.Binding
	SelectAll        key.Binding

	Menu key.Binding
	Blur key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		New:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("Ctrl+N", "new")),
		Open:   key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("Ctrl+O", "open")),
		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("Ctrl+S", "save")),
		SaveAs: key.NewBinding(key.WithKeys("f12", "alt+s"), key.WithHelp("F12", "save as")),
		Exit:   key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("Ctrl+Q", "exit")),

		Undo:      key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("Ctrl+Z", "undo")),
		Redo:      key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("Ctrl+Y", "redo")),
		Cut:       key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("Ctrl+X", "cut")),
		Copy:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("Ctrl+C", "copy")),
		Paste:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("Ctrl+V", "paste")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("Del", "delete")),
		SelectAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("Ctrl+A", "select all")),

		Menu: key.NewBinding(key.WithKeys("f10"), key.WithHelp("F10", "menu")),
		Blur: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave text")),
	}
}
