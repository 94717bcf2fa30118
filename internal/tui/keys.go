package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	prevPage   key.Binding
	nextPage   key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	logout     key.Binding
	search     key.Binding
	refresh    key.Binding
	buy        key.Binding
	copy       key.Binding
	collection key.Binding
	luckyDraw  key.Binding
	roll       key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	prevPage:   key.NewBinding(key.WithKeys("left", "h")),
	nextPage:   key.NewBinding(key.WithKeys("right", "l")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	quit:       key.NewBinding(key.WithKeys("q")),
	logout:     key.NewBinding(key.WithKeys("x")),
	search:     key.NewBinding(key.WithKeys("/")),
	refresh:    key.NewBinding(key.WithKeys("r")),
	buy:        key.NewBinding(key.WithKeys("b")),
	copy:       key.NewBinding(key.WithKeys("c")),
	collection: key.NewBinding(key.WithKeys("o")),
	luckyDraw:  key.NewBinding(key.WithKeys("d")),
	roll:       key.NewBinding(key.WithKeys("enter", " ")),
}
