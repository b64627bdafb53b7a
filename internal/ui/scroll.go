package ui

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const frameRate = 60

// frameInterval is the delay between animation frames
var frameInterval = time.Second / frameRate

// scroller drives the viewport offset towards a target on a critically
// damped spring, the terminal stand-in for smooth scrollIntoView.
type scroller struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
	active bool
}

func newScroller() *scroller {
	return &scroller{
		spring: harmonica.NewSpring(harmonica.FPS(frameRate), 8.0, 1.0),
	}
}

// Start retargets the spring. Velocity carries over when already moving.
func (s *scroller) Start(from, to int) {
	if !s.active {
		s.pos = float64(from)
		s.vel = 0
	}
	s.target = float64(to)
	s.active = float64(from) != s.target || s.vel != 0
}

// Step advances one frame and returns the offset to show
func (s *scroller) Step() (offset int, done bool) {
	if !s.active {
		return int(s.target), true
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if math.Abs(s.pos-s.target) < 0.5 && math.Abs(s.vel) < 0.5 {
		s.pos, s.vel = s.target, 0
		s.active = false
		return int(s.target), true
	}
	return int(math.Round(s.pos)), false
}

// Stop abandons the animation where it is
func (s *scroller) Stop() {
	s.active = false
	s.vel = 0
}

// Active reports whether a scroll animation is running
func (s *scroller) Active() bool { return s.active }
