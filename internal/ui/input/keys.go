package input

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds every binding of the presenter. It implements help.KeyMap.
type KeyMap struct {
	Next      key.Binding
	Prev      key.Binding
	PageDown  key.Binding
	PageUp    key.Binding
	First     key.Binding
	Last      key.Binding
	Jump      key.Binding
	LineDown  key.Binding
	LineUp    key.Binding
	HalfDown  key.Binding
	HalfUp    key.Binding
	Notes     key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("down", " ", "l", "right"),
			key.WithHelp("↓/space", "next slide"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up", "h", "left"),
			key.WithHelp("↑", "previous slide"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "next slide"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "previous slide"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "first slide"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "last slide"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump to slide"),
		),
		LineDown: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j/k", "scroll"),
		),
		LineUp: key.NewBinding(
			key.WithKeys("k"),
		),
		HalfDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d/u", "half page"),
		),
		HalfUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
		),
		Notes: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "speaker notes"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Help, k.Quit}
}

// FullHelp returns the bindings shown when help is expanded
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.PageDown, k.PageUp},
		{k.First, k.Last, k.Jump},
		{k.LineDown, k.HalfDown},
		{k.Notes, k.Help, k.Quit},
	}
}
