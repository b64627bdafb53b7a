package clock

import (
	"sort"
	"time"
)

// Manual is a virtual-time scheduler. Nothing fires until Advance is called.
type Manual struct {
	now    time.Time
	seq    uint64
	timers []*manualTimer
}

type manualTimer struct {
	m       *Manual
	seq     uint64
	at      time.Time
	fn      func()
	stopped bool
	fired   bool
}

// NewManual creates a manual scheduler starting at the zero epoch
func NewManual() *Manual {
	return &Manual{now: time.Unix(0, 0)}
}

// Now returns the current virtual time
func (m *Manual) Now() time.Time { return m.now }

// After schedules fn to run once virtual time has advanced by d
func (m *Manual) After(d time.Duration, fn func()) Timer {
	m.seq++
	t := &manualTimer{m: m, seq: m.seq, at: m.now.Add(d), fn: fn}
	m.timers = append(m.timers, t)
	return t
}

// Stop cancels the timer
func (t *manualTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	t.m.remove(t)
	return true
}

// Pending returns the number of armed timers
func (m *Manual) Pending() int { return len(m.timers) }

// Advance moves virtual time forward by d, firing every timer that becomes
// due in deadline order. Timers armed by callbacks fire too if they fall
// inside the window.
func (m *Manual) Advance(d time.Duration) {
	end := m.now.Add(d)
	for {
		next := m.nextDue(end)
		if next == nil {
			break
		}
		m.now = next.at
		m.remove(next)
		next.fired = true
		next.fn()
	}
	m.now = end
}

func (m *Manual) nextDue(end time.Time) *manualTimer {
	if len(m.timers) == 0 {
		return nil
	}
	sort.SliceStable(m.timers, func(i, j int) bool {
		if m.timers[i].at.Equal(m.timers[j].at) {
			return m.timers[i].seq < m.timers[j].seq
		}
		return m.timers[i].at.Before(m.timers[j].at)
	})
	if m.timers[0].at.After(end) {
		return nil
	}
	return m.timers[0]
}

func (m *Manual) remove(t *manualTimer) {
	for i, other := range m.timers {
		if other == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return
		}
	}
}
