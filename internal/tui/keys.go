package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	quit    key.Binding
	newItem key.Binding
	start   key.Binding
	delete  key.Binding
	report  key.Binding
	refresh key.Binding
	copy    key.Binding
	pause   key.Binding
	stop    key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	newItem: key.NewBinding(key.WithKeys("n")),
	start:   key.NewBinding(key.WithKeys("s")),
	delete:  key.NewBinding(key.WithKeys("d")),
	report:  key.NewBinding(key.WithKeys("r")),
	refresh: key.NewBinding(key.WithKeys("u")),
	copy:    key.NewBinding(key.WithKeys("c")),
	pause:   key.NewBinding(key.WithKeys("p")),
	stop:    key.NewBinding(key.WithKeys("s")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n")),
}
