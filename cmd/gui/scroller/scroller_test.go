package scroller

import (
	"math"
	"testing"
	"time"
)

func TestTweenerEndpoints(t *testing.T) {
	for name, tw := range tweeners {
		if math.Abs(tw(0)) > 1e-9 || math.Abs(tw(1)-1) > 1e-9 {
			t.Errorf("%s: tween(0)=%v tween(1)=%v", name, tw(0), tw(1))
		}
		prev := 0.0
		for i := 1; i <= 10; i++ {
			v := tw(float64(i) / 10)
			if v < prev {
				t.Errorf("%s not monotonic at %d", name, i)
			}
			prev = v
		}
	}
}

func TestTweenerByName(t *testing.T) {
	if _, ok := TweenerByName("Sine"); !ok {
		t.Errorf("sine not found")
	}
	if tw, ok := TweenerByName("bogus"); ok || tw == nil {
		t.Errorf("bogus name should fall back")
	}
}

func TestScrollConverges(t *testing.T) {
	s := New(200*time.Millisecond, Quadratic)
	s.Update(0)
	s.ScrollTo(500)
	if !s.IsScrollingDown() || s.IsScrollingUp() {
		t.Fatalf("direction wrong")
	}

	transitions := 0
	wasScrolling := s.IsScrolling()
	now := time.Duration(0)
	for frame := 0; frame < 100; frame++ {
		now += 16 * time.Millisecond
		s.Update(now)
		if wasScrolling && !s.IsScrolling() {
			transitions++
		}
		wasScrolling = s.IsScrolling()
	}
	if s.Value() != 500 {
		t.Errorf("value = %v, want 500", s.Value())
	}
	if transitions != 1 {
		t.Errorf("scrolling->idle transitions = %d, want 1", transitions)
	}
}

func TestScrollIntermediateValues(t *testing.T) {
	s := New(100*time.Millisecond, Linear)
	s.ScrollTo(-100)
	if !s.IsScrollingUp() {
		t.Fatalf("expected upward scroll")
	}
	// the clock starts at the first update, however late it comes
	if !s.Update(time.Second) || s.Value() != 0 {
		t.Fatalf("first update moved to %v", s.Value())
	}
	s.Update(time.Second + 50*time.Millisecond)
	if math.Abs(s.Value()+50) > 1e-6 {
		t.Errorf("halfway value = %v, want -50", s.Value())
	}
	if s.Target() != -100 {
		t.Errorf("Target() = %v", s.Target())
	}
}

func TestSetValueStopsScroll(t *testing.T) {
	s := New(time.Second, Linear)
	s.ScrollTo(100)
	s.SetValue(10)
	if s.IsScrolling() || s.Value() != 10 {
		t.Errorf("SetValue did not stop: %v %v", s.IsScrolling(), s.Value())
	}
}

func TestZeroDurationIsInstant(t *testing.T) {
	s := New(0, nil)
	s.ScrollTo(42)
	if !s.Update(0) {
		t.Errorf("the landing frame should report movement")
	}
	if s.IsScrolling() || s.Value() != 42 {
		t.Errorf("value = %v, scrolling %v", s.Value(), s.IsScrolling())
	}
	if s.Update(time.Millisecond) {
		t.Errorf("idle scroller reported movement")
	}
}

func TestLandingFrameReportsMovement(t *testing.T) {
	s := New(100*time.Millisecond, Linear)
	s.ScrollTo(10)
	var moved []bool
	for _, now := range []time.Duration{0, 50, 100, 150} {
		moved = append(moved, s.Update(now*time.Millisecond))
	}
	want := []bool{true, true, true, false}
	for i := range want {
		if moved[i] != want[i] {
			t.Errorf("update %d reported %v, want %v", i, moved[i], want[i])
		}
	}
	if s.Value() != 10 {
		t.Errorf("value = %v", s.Value())
	}
}
