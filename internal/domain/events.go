package domain

import "time"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDeckLoaded         EventType = "DeckLoaded"
	EventTransitionStarted  EventType = "TransitionStarted"
	EventTransitionReleased EventType = "TransitionReleased"
	EventSlideChanged       EventType = "SlideChanged"
	EventScrollHintToggled  EventType = "ScrollHintToggled"
	EventError              EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ChangeSource identifies which input path changed the current slide
type ChangeSource string

const (
	SourceTransition ChangeSource = "transition" // programmatic, animated
	SourceScroll     ChangeSource = "scroll"     // free native scroll
)

// DeckLoadedEvent is emitted once the deck is ready
type DeckLoadedEvent struct {
	Title  string
	Slides int
	Path   string // empty for the embedded deck
}

func (e DeckLoadedEvent) Type() EventType { return EventDeckLoaded }

// TransitionStartedEvent is emitted when a transition takes the lock
type TransitionStartedEvent struct {
	From int
	To   int
}

func (e TransitionStartedEvent) Type() EventType { return EventTransitionStarted }

// TransitionReleasedEvent is emitted when the cool-down releases the lock
type TransitionReleasedEvent struct {
	Index int
	Held  time.Duration
}

func (e TransitionReleasedEvent) Type() EventType { return EventTransitionReleased }

// SlideChangedEvent is emitted whenever the current slide changes
type SlideChangedEvent struct {
	From   int
	To     int
	Source ChangeSource
}

func (e SlideChangedEvent) Type() EventType { return EventSlideChanged }

// ScrollHintToggledEvent is emitted when the scroll hint visibility changes
type ScrollHintToggledEvent struct {
	Visible bool
}

func (e ScrollHintToggledEvent) Type() EventType { return EventScrollHintToggled }

// ErrorEvent is emitted when a non-fatal error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
