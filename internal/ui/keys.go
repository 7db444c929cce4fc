package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the list view. Which bindings are
// active depends on the focused pane.
type KeyMap struct {
	// List navigation.
	Up   key.Binding
	Down key.Binding

	// Item actions (list focus).
	Toggle key.Binding
	Edit   key.Binding
	Delete key.Binding

	// Focus switching between the new-item input and the list.
	FocusToggle key.Binding

	// Text entry (input and edit focus).
	Submit key.Binding
	Cancel key.Binding

	Quit      key.Binding // List focus only, so "q" can be typed.
	ForceQuit key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "x"),
		key.WithHelp("space", "toggle"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e", "u"),
		key.WithHelp("e", "update"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d", "delete"),
		key.WithHelp("d", "delete done"),
	),
	FocusToggle: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch focus"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}
