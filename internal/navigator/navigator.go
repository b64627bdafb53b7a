// Package navigator turns discrete and continuous input into slide
// transitions. A Navigator owns the current slide index and the transition
// lock; it is not safe for concurrent use and expects every call, including
// timer callbacks, to come from one event loop.
package navigator

import (
	"time"

	"slidedeck/internal/clock"
	"slidedeck/internal/domain"
)

// Navigator is the slide navigation state machine
type Navigator struct {
	count     int
	presenter Presenter
	layout    Layout
	sched     clock.Scheduler
	opts      options

	current       int
	transitioning bool
	hintVisible   bool
	wheelTimer    clock.Timer
	touchStartY   int
	lockedAt      time.Time
}

// New creates a navigator over count slides, starting at slide 0 with the
// scroll hint visible.
func New(count int, presenter Presenter, layout Layout, sched clock.Scheduler, opts ...Option) *Navigator {
	o := options{
		cooldown:       DefaultCooldown,
		wheelDebounce:  DefaultWheelDebounce,
		edgeTolerance:  DefaultEdgeTolerance,
		swipeThreshold: DefaultSwipeThreshold,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if count < 1 {
		count = 1
	}

	n := &Navigator{
		count:     count,
		presenter: presenter,
		layout:    layout,
		sched:     sched,
		opts:      o,
	}
	n.presenter.SetIndicatorActive(0)
	n.setHint(true)
	return n
}

// Current returns the current slide index
func (n *Navigator) Current() int { return n.current }

// Count returns the number of slides
func (n *Navigator) Count() int { return n.count }

// Transitioning reports whether a transition holds the lock
func (n *Navigator) Transitioning() bool { return n.transitioning }

// ScrollHintVisible reports the last hint visibility sent to the presenter
func (n *Navigator) ScrollHintVisible() bool { return n.hintVisible }

// Indicators returns one flag per slide, set only at the current index
func (n *Navigator) Indicators() []bool {
	out := make([]bool, n.count)
	out[n.current] = true
	return out
}

// GoToSlide starts an animated transition to index. Out-of-range targets and
// requests made while another transition holds the lock are dropped. It
// reports whether the transition started.
func (n *Navigator) GoToSlide(index int) bool {
	if index < 0 || index >= n.count || n.transitioning {
		return false
	}

	from := n.current
	n.transitioning = true
	n.lockedAt = time.Now()
	n.publish(domain.TransitionStartedEvent{From: from, To: index})

	n.presenter.ScrollSlideIntoView(index)
	n.setCurrent(index, domain.SourceTransition)

	// The lock is released on time whether or not the scroll finished
	n.sched.After(n.opts.cooldown, n.release)
	return true
}

// SelectIndicator jumps straight to index
func (n *Navigator) SelectIndicator(index int) bool {
	return n.GoToSlide(index)
}

func (n *Navigator) release() {
	n.transitioning = false
	n.publish(domain.TransitionReleasedEvent{Index: n.current, Held: time.Since(n.lockedAt)})
	if n.opts.resyncOnRelease {
		n.OnNativeScroll()
	}
}

// OnNativeScroll syncs the current slide with the scroll position, without
// scrolling. It is ignored while a transition holds the lock.
func (n *Navigator) OnNativeScroll() {
	if n.transitioning {
		return
	}

	probe := n.layout.ScrollY() + n.layout.ViewportHeight()/2
	for i := 0; i < n.count; i++ {
		top, bottom := n.layout.SlideBounds(i)
		if probe >= top && probe < bottom {
			if i != n.current {
				n.setCurrent(i, domain.SourceScroll)
			}
			return
		}
	}
}

// OnKeyPress maps a navigation key onto a transition. It reports whether the
// key is a navigation key, in which case the default scroll should be
// suppressed.
func (n *Navigator) OnKeyPress(key Key) bool {
	switch key {
	case KeyArrowDown, KeyPageDown, KeyArrowUp, KeyPageUp, KeyHome, KeyEnd:
	default:
		return false
	}
	if n.transitioning {
		return true
	}

	switch key {
	case KeyArrowDown, KeyPageDown:
		n.next()
	case KeyArrowUp, KeyPageUp:
		n.previous()
	case KeyHome:
		n.GoToSlide(0)
	case KeyEnd:
		n.GoToSlide(n.count - 1)
	}
	return true
}

// OnWheel debounces wheel ticks. Only the last tick of a burst is evaluated,
// once the wheel has been idle for the debounce period.
func (n *Navigator) OnWheel(deltaY int) {
	if n.wheelTimer != nil {
		n.wheelTimer.Stop()
	}
	n.wheelTimer = n.sched.After(n.opts.wheelDebounce, func() {
		n.wheelTimer = nil
		n.evaluateWheel(deltaY)
	})
}

func (n *Navigator) evaluateWheel(deltaY int) {
	if n.transitioning {
		return
	}

	scrollY := n.layout.ScrollY()
	top, bottom := n.layout.SlideBounds(n.current)
	tol := n.opts.edgeTolerance

	switch {
	case deltaY > 0 && scrollY+n.layout.ViewportHeight() >= bottom-tol:
		n.next()
	case deltaY < 0 && scrollY <= top+tol:
		n.previous()
	}
}

// OnTouchStart records where a swipe began
func (n *Navigator) OnTouchStart(y int) {
	n.touchStartY = y
}

// OnTouchEnd finishes a swipe. Swiping up advances, swiping down retreats;
// movements within the threshold are taps and ignored.
func (n *Navigator) OnTouchEnd(y int) {
	diff := n.touchStartY - y
	if abs(diff) <= n.opts.swipeThreshold || n.transitioning {
		return
	}
	if diff > 0 {
		n.next()
	} else {
		n.previous()
	}
}

func (n *Navigator) next() {
	if n.current < n.count-1 {
		n.GoToSlide(n.current + 1)
	}
}

func (n *Navigator) previous() {
	if n.current > 0 {
		n.GoToSlide(n.current - 1)
	}
}

func (n *Navigator) setCurrent(index int, source domain.ChangeSource) {
	from := n.current
	n.current = index
	n.presenter.SetIndicatorActive(index)
	n.setHint(index == 0)
	n.presenter.PlayEntranceAnimations(index)
	if from != index {
		n.publish(domain.SlideChangedEvent{From: from, To: index, Source: source})
	}
}

func (n *Navigator) setHint(visible bool) {
	n.presenter.SetScrollHintVisibility(visible)
	if n.hintVisible != visible {
		n.hintVisible = visible
		n.publish(domain.ScrollHintToggledEvent{Visible: visible})
	}
}

func (n *Navigator) publish(event domain.DomainEvent) {
	if n.opts.publisher != nil {
		n.opts.publisher.Publish(event)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
