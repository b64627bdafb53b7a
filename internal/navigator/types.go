package navigator

import (
	"time"

	"slidedeck/internal/domain"
)

// Presenter is the part of the presentation layer the navigator drives.
// All calls are fire-and-forget.
type Presenter interface {
	ScrollSlideIntoView(index int)
	SetIndicatorActive(index int)
	SetScrollHintVisibility(visible bool)
	PlayEntranceAnimations(index int)
}

// Layout exposes the document geometry, in whatever unit the presentation
// layer scrolls by (pixels in a browser, rows in a terminal).
type Layout interface {
	ScrollY() int
	ViewportHeight() int
	// SlideBounds returns the half-open vertical extent [top, bottom) of a slide
	SlideBounds(index int) (top, bottom int)
}

// Publisher receives navigation domain events
type Publisher interface {
	Publish(event domain.DomainEvent)
}

// Key is a navigation key, named after the DOM key values
type Key string

const (
	KeyArrowDown Key = "ArrowDown"
	KeyArrowUp   Key = "ArrowUp"
	KeyPageDown  Key = "PageDown"
	KeyPageUp    Key = "PageUp"
	KeyHome      Key = "Home"
	KeyEnd       Key = "End"
)

// Default timings and thresholds
const (
	DefaultCooldown       = 1000 * time.Millisecond
	DefaultWheelDebounce  = 100 * time.Millisecond
	DefaultEdgeTolerance  = 10
	DefaultSwipeThreshold = 50
)

type options struct {
	cooldown        time.Duration
	wheelDebounce   time.Duration
	edgeTolerance   int
	swipeThreshold  int
	resyncOnRelease bool
	publisher       Publisher
}

// Option configures a Navigator
type Option func(*options)

// WithCooldown sets the dead time after a transition
func WithCooldown(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.cooldown = d
		}
	}
}

// WithWheelDebounce sets the quiet period a wheel burst must reach before it is evaluated
func WithWheelDebounce(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.wheelDebounce = d
		}
	}
}

// WithEdgeTolerance sets how close to a slide edge the viewport must be for
// the wheel to change slides
func WithEdgeTolerance(units int) Option {
	return func(o *options) {
		if units >= 0 {
			o.edgeTolerance = units
		}
	}
}

// WithSwipeThreshold sets the minimum swipe distance
func WithSwipeThreshold(units int) Option {
	return func(o *options) {
		if units >= 0 {
			o.swipeThreshold = units
		}
	}
}

// WithResyncOnRelease re-runs the native scroll probe when the cool-down
// releases, catching scrolls that were ignored during the transition.
func WithResyncOnRelease(enabled bool) Option {
	return func(o *options) { o.resyncOnRelease = enabled }
}

// WithPublisher sets the sink for navigation events
func WithPublisher(p Publisher) Option {
	return func(o *options) { o.publisher = p }
}
