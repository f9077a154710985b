package dialog

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Prev, Next key.Binding
	Accept     key.Binding
	Cancel     key.Binding
	Filter     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev:   key.NewBinding(key.WithKeys("left", "shift+tab"), key.WithHelp("←", "previous")),
		Next:   key.NewBinding(key.WithKeys("right", "tab"), key.WithHelp("→", "next")),
		Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
		Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
		Filter: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "file type")),
	}
}
