// Package clock provides the timer abstraction the navigator schedules its
// cool-down and debounce on.
//
// Callbacks are never run concurrently with the owning event loop: Manual runs
// them inside Advance, Real hands them over on a channel.
package clock

import "time"

// Timer is a scheduled callback that can be cancelled
type Timer interface {
	// Stop prevents the callback from running. It reports whether the timer
	// was still pending.
	Stop() bool
}

// Scheduler arms one-shot timers
type Scheduler interface {
	After(d time.Duration, fn func()) Timer
}
