package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines all keybindings for the demo screen
type keyMap struct {
	// Showing
	Show       key.Binding
	ShowStatic key.Binding
	ShowError  key.Binding

	// Hiding
	Hide        key.Binding
	HideNow     key.Binding
	SlowDismiss key.Binding

	// Bar behavior
	ToggleAutoHide key.Binding
	Activate       key.Binding

	Help key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Show: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "show"),
		),
		ShowStatic: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "show without animating"),
		),
		ShowError: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "show error with action"),
		),

		Hide: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hide"),
		),
		HideNow: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "hide immediately"),
		),
		SlowDismiss: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "hide over 1s"),
		),

		ToggleAutoHide: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "toggle auto-hide"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "click bar text"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns bindings for the short help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Show, k.ShowError, k.Hide, k.ToggleAutoHide, k.Activate, k.Help, k.Quit}
}

// FullHelp returns all bindings grouped for full help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Show, k.ShowStatic, k.ShowError},
		{k.Hide, k.HideNow, k.SlowDismiss},
		{k.ToggleAutoHide, k.Activate, k.Help, k.Quit},
	}
}
