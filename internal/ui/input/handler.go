package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"slidedeck/internal/navigator"
	"slidedeck/internal/ui/input/types"
)

// Handler translates key presses into actions
type Handler struct {
	keys KeyMap
}

// New creates a handler with the default key map
func New() *Handler {
	return &Handler{keys: DefaultKeyMap()}
}

// KeyMap returns the bindings, for the help view
func (h *Handler) KeyMap() KeyMap { return h.keys }

// HandleKey maps a key message onto actions. Unbound keys produce none.
func (h *Handler) HandleKey(msg tea.KeyMsg) []types.Action {
	k := h.keys
	switch {
	case key.Matches(msg, k.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}

	case key.Matches(msg, k.PageDown):
		return []types.Action{types.NavigateAction{Key: navigator.KeyPageDown}}
	case key.Matches(msg, k.PageUp):
		return []types.Action{types.NavigateAction{Key: navigator.KeyPageUp}}
	case key.Matches(msg, k.Next):
		return []types.Action{types.NavigateAction{Key: navigator.KeyArrowDown}}
	case key.Matches(msg, k.Prev):
		return []types.Action{types.NavigateAction{Key: navigator.KeyArrowUp}}
	case key.Matches(msg, k.First):
		return []types.Action{types.NavigateAction{Key: navigator.KeyHome}}
	case key.Matches(msg, k.Last):
		return []types.Action{types.NavigateAction{Key: navigator.KeyEnd}}

	case key.Matches(msg, k.Jump):
		// keys are "1".."9"
		return []types.Action{types.SelectSlideAction{Index: int(msg.String()[0] - '1')}}

	case key.Matches(msg, k.LineDown):
		return []types.Action{types.ScrollAction{Lines: 1}}
	case key.Matches(msg, k.LineUp):
		return []types.Action{types.ScrollAction{Lines: -1}}
	case key.Matches(msg, k.HalfDown):
		return []types.Action{types.HalfPageAction{Down: true}}
	case key.Matches(msg, k.HalfUp):
		return []types.Action{types.HalfPageAction{Down: false}}

	case key.Matches(msg, k.Notes):
		return []types.Action{types.ShowNotesAction{}}
	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}
	}
	return nil
}
