package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Actions
	Toggle  key.Binding
	Submit  key.Binding
	Review  key.Binding
	Orders  key.Binding
	Hours   key.Binding
	Confirm key.Binding
	Cancel  key.Binding

	// Settings
	PrecisionUp   key.Binding
	PrecisionDown key.Binding

	// Application
	Back       key.Binding
	Reset      key.Binding
	ToggleHelp key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),

		Toggle: key.NewBinding(
			key.WithKeys("x", " "),
			key.WithHelp("x/Space", "approve/deny row"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "submit"),
		),
		Review: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "manual review"),
		),
		Orders: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "load orders file"),
		),
		Hours: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "load timesheet file"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "cancel"),
		),

		PrecisionUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "widen tolerance"),
		),
		PrecisionDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "narrow tolerance"),
		),

		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "back"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("Ctrl+R", "reset session"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Orders, k.Hours, k.Submit, k.Review, k.ToggleHelp, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Orders, k.Hours, k.Submit, k.Review},
		{k.PrecisionUp, k.PrecisionDown, k.Reset},
		{k.ToggleHelp, k.Back, k.Quit},
	}
}
