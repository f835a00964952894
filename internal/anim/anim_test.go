package anim

import (
	"testing"
	"time"

	"github.com/san-kum/pulse/internal/heart"
	"github.com/san-kum/pulse/internal/palette"
)

func newTestAnimator(t *testing.T) *Animator {
	t.Helper()
	cycler, err := palette.NewCycler(1.2, 0)
	if err != nil {
		t.Fatal(err)
	}
	return New(heart.Points(12, 300), cycler, 350, 350)
}

func TestPhase_ToggleTwice(t *testing.T) {
	for _, start := range []Phase{Running, Paused} {
		if got := start.Toggle().Toggle(); got != start {
			t.Errorf("double toggle from %v gave %v", start, got)
		}
	}
}

func TestPhase_ClosedIsTerminal(t *testing.T) {
	p := Running.Close()
	if p != Closed {
		t.Fatalf("expected Closed, got %v", p)
	}
	if p.Toggle() != Closed {
		t.Error("toggle must not leave Closed")
	}
	if p.Close() != Closed {
		t.Error("close must not leave Closed")
	}
}

func TestFrame_Deterministic(t *testing.T) {
	a := newTestAnimator(t)

	f1 := a.Frame(3.7)
	f2 := a.Frame(3.7)

	if f1.Scale != f2.Scale || f1.Hue != f2.Hue || f1.Color != f2.Color {
		t.Fatal("same elapsed time must give the same frame state")
	}
	for i := range f1.Coords {
		if f1.Coords[i] != f2.Coords[i] {
			t.Fatalf("coordinate %d differs between identical frames", i)
		}
	}
}

func TestFrame_PauseDoesNotDrift(t *testing.T) {
	// Pausing freezes the clock sampling, not an accumulator: frames for
	// the same elapsed times match whether or not a pause happened between
	// them.
	a := newTestAnimator(t)

	direct := []Frame{a.Frame(1.0), a.Frame(2.0), a.Frame(3.0)}

	b := newTestAnimator(t)
	interrupted := []Frame{b.Frame(1.0)}
	_ = Running.Toggle() // pause
	_ = Paused.Toggle()  // resume
	interrupted = append(interrupted, b.Frame(2.0), b.Frame(3.0))

	for i := range direct {
		if direct[i].Scale != interrupted[i].Scale || direct[i].Hue != interrupted[i].Hue {
			t.Fatalf("frame %d drifted across a pause", i)
		}
	}
}

func TestFakeClock(t *testing.T) {
	c := &FakeClock{Wall: time.Date(2025, 2, 14, 12, 0, 0, 0, time.UTC)}

	c.Advance(1.5)
	if c.Elapsed() != 1.5 {
		t.Errorf("expected 1.5 elapsed, got %g", c.Elapsed())
	}
	if c.Now().Second() != 1 {
		t.Errorf("wall clock should advance with elapsed time, got %v", c.Now())
	}
}

func TestWallClock_Monotonic(t *testing.T) {
	c := NewWallClock()
	a := c.Elapsed()
	b := c.Elapsed()
	if b < a {
		t.Error("elapsed time went backwards")
	}
}
