// Package scroller eases a continuous scroll value toward a target over a
// fixed duration.
package scroller

import (
	"math"
	"strings"
	"time"
)

// Tweener maps normalized time in [0,1] to normalized progress in [0,1].
type Tweener func(t float64) float64

func Linear(t float64) float64 { return t }

func Quadratic(t float64) float64 { return 1 - (1-t)*(1-t) }

func Cubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

func Sine(t float64) float64 { return math.Sin(t * math.Pi / 2) }

var tweeners = map[string]Tweener{
	"linear":    Linear,
	"quadratic": Quadratic,
	"cubic":     Cubic,
	"sine":      Sine,
}

// TweenerByName resolves a config name; unknown names give Quadratic.
func TweenerByName(name string) (Tweener, bool) {
	t, ok := tweeners[strings.ToLower(name)]
	if !ok {
		return Quadratic, false
	}
	return t, true
}

type Scroller struct {
	value     float64
	startPos  float64
	delta     float64
	startTime time.Duration
	starting  bool
	duration  time.Duration
	tweener   Tweener
}

func New(duration time.Duration, tweener Tweener) *Scroller {
	if tweener == nil {
		tweener = Quadratic
	}
	return &Scroller{duration: duration, tweener: tweener}
}

// ScrollTo starts easing from the current value to end. The scroll clock
// starts at the next Update, so an idle scroller does not skip ahead.
func (s *Scroller) ScrollTo(end float64) {
	delta := end - s.value
	if delta == 0 {
		s.delta = 0
		return
	}
	s.startPos = s.value
	s.delta = delta
	s.starting = true
}

// Update advances to now and reports whether the value moved, which
// includes the frame that lands on the target.
func (s *Scroller) Update(now time.Duration) bool {
	if s.delta == 0 {
		return false
	}
	if s.starting {
		s.startTime = now
		s.starting = false
	}
	elapsed := now - s.startTime
	if elapsed >= s.duration {
		s.value = s.startPos + s.delta
		s.delta = 0
		return true
	}
	p := s.tweener(float64(elapsed) / float64(s.duration))
	s.value = s.startPos + s.delta*p
	return true
}

func (s *Scroller) Value() float64 { return s.value }

// SetValue jumps to v and cancels any scroll in flight.
func (s *Scroller) SetValue(v float64) {
	s.value = v
	s.delta = 0
}

// Stop cancels scrolling at the current value.
func (s *Scroller) Stop() { s.delta = 0 }

func (s *Scroller) IsScrolling() bool { return s.delta != 0 }

func (s *Scroller) IsScrollingUp() bool { return s.delta < 0 }

func (s *Scroller) IsScrollingDown() bool { return s.delta > 0 }

func (s *Scroller) Duration() time.Duration { return s.duration }

func (s *Scroller) SetDuration(d time.Duration) { s.duration = d }

// Target is where the current scroll ends, or the value at rest.
func (s *Scroller) Target() float64 {
	if s.delta == 0 {
		return s.value
	}
	return s.startPos + s.delta
}
