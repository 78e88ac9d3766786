package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit         key.Binding
	LineDown     key.Binding
	LineUp       key.Binding
	HalfPageDown key.Binding
	HalfPageUp   key.Binding
	NextPanel    key.Binding
	PrevPanel    key.Binding
	FirstPanel   key.Binding
	LastPanel    key.Binding
	Jump         key.Binding
	Search       key.Binding
	SearchNext   key.Binding
	CopyPanel    key.Binding
	ExportLayout key.Binding
	OpenHelp     key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	LineDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "scroll down"),
	),
	LineUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "scroll up"),
	),
	HalfPageDown: key.NewBinding(
		key.WithKeys("d", "pgdown"),
		key.WithHelp("d/pgdown", "half page down"),
	),
	HalfPageUp: key.NewBinding(
		key.WithKeys("u", "pgup"),
		key.WithHelp("u/pgup", "half page up"),
	),
	NextPanel: key.NewBinding(
		key.WithKeys(" ", "n", "right", "l"),
		key.WithHelp("space/n", "next panel"),
	),
	PrevPanel: key.NewBinding(
		key.WithKeys("N", "b", "left", "h"),
		key.WithHelp("N/b", "previous panel"),
	),
	FirstPanel: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g/home", "first panel"),
	),
	LastPanel: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G/end", "last panel"),
	),
	Jump: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "jump to panel number"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search panel text"),
	),
	SearchNext: key.NewBinding(
		key.WithKeys("ctrl+n"),
		key.WithHelp("ctrl+n", "next search match"),
	),
	CopyPanel: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy panel text"),
	),
	ExportLayout: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export layout"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Quit,
		k.LineDown,
		k.LineUp,
		k.HalfPageDown,
		k.HalfPageUp,
		k.NextPanel,
		k.PrevPanel,
		k.FirstPanel,
		k.LastPanel,
		k.Jump,
		k.Search,
		k.SearchNext,
		k.CopyPanel,
		k.ExportLayout,
	}
}
