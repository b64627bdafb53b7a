package clock

import (
	"sync/atomic"
	"time"
)

// Real arms wall-clock timers and delivers due callbacks on a channel. The
// owner drains C from its event loop and runs each callback there.
type Real struct {
	c chan func()
}

// NewReal creates a wall-clock scheduler with the given delivery buffer
func NewReal(buffer int) *Real {
	if buffer < 1 {
		buffer = 1
	}
	return &Real{c: make(chan func(), buffer)}
}

// C returns the channel due callbacks are delivered on
func (r *Real) C() <-chan func() { return r.c }

type realTimer struct {
	t       *time.Timer
	stopped atomic.Bool
}

// After schedules fn for delivery once d has elapsed
func (r *Real) After(d time.Duration, fn func()) Timer {
	rt := &realTimer{}
	rt.t = time.AfterFunc(d, func() {
		if rt.stopped.Load() {
			return
		}
		r.c <- func() {
			// Stop may have been called while the callback sat in the channel
			if !rt.stopped.Load() {
				fn()
			}
		}
	})
	return rt
}

// Stop cancels the timer, including a callback already waiting on the channel
func (t *realTimer) Stop() bool {
	if t.stopped.Swap(true) {
		return false
	}
	return t.t.Stop()
}
