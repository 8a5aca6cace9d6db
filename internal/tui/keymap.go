package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the preview.
// It helps in managing and displaying help information.
type KeyMap struct {
	Prev key.Binding
	Next key.Binding
	Edit key.Binding
	Done key.Binding
	Copy key.Binding
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns a KeyMap with default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "previous variant"),
		),
		Next: key.NewBinding(
			key.WithKeys("l", "right", "tab"),
			key.WithHelp("→/l", "next variant"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "i"),
			key.WithHelp("e", "edit message"),
		),
		Done: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter/esc", "finish editing"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y", "y"),
			key.WithHelp("y", "copy as plain text"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Edit, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next},
		{k.Edit, k.Done},
		{k.Copy, k.Help, k.Quit},
	}
}
