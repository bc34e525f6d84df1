// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the registration session.
type KeyMap struct {
	NextField  key.Binding
	PrevField  key.Binding
	Submit     key.Binding
	ToggleMask key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab", "ctrl+n"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "ctrl+p"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		ToggleMask: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "show/hide password"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("ctrl+k", "pgup"),
			key.WithHelp("ctrl+k", "scroll list up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("ctrl+j", "pgdown"),
			key.WithHelp("ctrl+j", "scroll list down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}
