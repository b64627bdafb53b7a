package ui

import (
	"time"
)

// timerFiredMsg carries a navigator timer callback onto the update loop
type timerFiredMsg struct {
	fn func()
}

// scrollFrameMsg advances the smooth scroll by one frame
type scrollFrameMsg time.Time

// entranceTickMsg advances entrance animations
type entranceTickMsg time.Time

// notesClosedMsg is sent when the notes pager exits
type notesClosedMsg struct {
	err error
}
