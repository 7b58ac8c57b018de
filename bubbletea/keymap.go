package bubbletea

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the interactive diff selection viewer.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	ExpandUp     key.Binding
	ExpandDown   key.Binding
	ToggleMode   key.Binding
	Yank         key.Binding
	Stage        key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default vim-style key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "move down"),
		),
		ExpandUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K/shift+↑", "expand up"),
		),
		ExpandDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J/shift+↓", "expand down"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "toggle hunk/line mode"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yank selection"),
		),
		Stage: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stage selection"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "half page down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
