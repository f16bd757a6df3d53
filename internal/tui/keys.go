package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	interrupt key.Binding
	newNote   key.Binding
	edit      key.Binding
	delete    key.Binding
	copy      key.Binding
	search    key.Binding
	nextTag   key.Binding
	prevTag   key.Binding
	clearTag  key.Binding
	buildInfo key.Binding
	save      key.Binding
	nextChip  key.Binding
	removeTag key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	interrupt: key.NewBinding(key.WithKeys("ctrl+c")),
	newNote:   key.NewBinding(key.WithKeys("n")),
	edit:      key.NewBinding(key.WithKeys("e", "enter")),
	delete:    key.NewBinding(key.WithKeys("d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	search:    key.NewBinding(key.WithKeys("/")),
	nextTag:   key.NewBinding(key.WithKeys("t")),
	prevTag:   key.NewBinding(key.WithKeys("T")),
	clearTag:  key.NewBinding(key.WithKeys("x")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	nextChip:  key.NewBinding(key.WithKeys("ctrl+t")),
	removeTag: key.NewBinding(key.WithKeys("ctrl+r")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
