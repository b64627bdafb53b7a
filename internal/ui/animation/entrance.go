// Package animation tracks per-slide entrance animations: bullet points
// revealed one at a time and metrics counting up from zero. Every slide
// plays at most once.
package animation

import (
	"fmt"
	"math"
	"time"

	"slidedeck/internal/domain"
)

type run struct {
	start   time.Time
	points  int
	metrics int
}

// Entrances holds the entrance state of every slide that has played
type Entrances struct {
	interval time.Duration
	count    time.Duration
	runs     map[int]*run
}

// NewEntrances creates the tracker. interval is the delay between revealed
// points, count the duration of a metric count-up.
func NewEntrances(interval, count time.Duration) *Entrances {
	return &Entrances{
		interval: interval,
		count:    count,
		runs:     make(map[int]*run),
	}
}

// Start begins the entrance of slide index. It reports false if the slide has
// already played.
func (e *Entrances) Start(index int, s domain.Slide, now time.Time) bool {
	if _, ok := e.runs[index]; ok {
		return false
	}
	e.runs[index] = &run{start: now, points: len(s.Points), metrics: len(s.Metrics)}
	return true
}

// Played reports whether slide index has started its entrance
func (e *Entrances) Played(index int) bool {
	_, ok := e.runs[index]
	return ok
}

// VisiblePoints returns how many bullet points of slide index are revealed
func (e *Entrances) VisiblePoints(index int, now time.Time) int {
	r, ok := e.runs[index]
	if !ok {
		return 0
	}
	n := int(now.Sub(r.start)/e.interval) + 1
	if n > r.points {
		n = r.points
	}
	if n < 0 {
		n = 0
	}
	return n
}

// MetricProgress returns the eased count-up progress of slide index, 0..1
func (e *Entrances) MetricProgress(index int, now time.Time) float64 {
	r, ok := e.runs[index]
	if !ok {
		return 0
	}
	t := float64(now.Sub(r.start)) / float64(e.count)
	return EaseOutQuad(t)
}

// Active reports whether any entrance still has frames to play
func (e *Entrances) Active(now time.Time) bool {
	for _, r := range e.runs {
		elapsed := now.Sub(r.start)
		if r.points > 0 && elapsed < time.Duration(r.points-1)*e.interval {
			return true
		}
		if r.metrics > 0 && elapsed < e.count {
			return true
		}
	}
	return false
}

// EaseOutQuad decelerates towards 1. Input is clamped to [0, 1].
func EaseOutQuad(t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	return 1 - (1-t)*(1-t)
}

// FormatMetric renders a metric at the given progress
func FormatMetric(m domain.Metric, progress float64) string {
	v := m.Value * math.Max(0, math.Min(1, progress))
	if m.Decimal() {
		return fmt.Sprintf("%.1f%s", v, m.Suffix)
	}
	return fmt.Sprintf("%d%s", int64(math.Round(v)), m.Suffix)
}
