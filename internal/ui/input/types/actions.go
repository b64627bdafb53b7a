package types

import "slidedeck/internal/navigator"

// Slide navigation actions, forwarded to the navigator
type NavigateAction struct {
	Key navigator.Key
}

func (a NavigateAction) Type() string { return "navigate" }

// SelectSlideAction jumps straight to a slide, like clicking its dot
type SelectSlideAction struct {
	Index int
}

func (a SelectSlideAction) Type() string { return "select_slide" }

// Free scrolling actions, handled as native scroll
type ScrollAction struct {
	Lines int // positive scrolls down
}

func (a ScrollAction) Type() string { return "scroll" }

type HalfPageAction struct {
	Down bool
}

func (a HalfPageAction) Type() string { return "half_page" }

type ShowNotesAction struct{}

func (a ShowNotesAction) Type() string { return "show_notes" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
