// Package anim owns the animation lifecycle: a small tagged state machine
// plus the per-frame geometry/color computation, with the clock injected so
// frames are a deterministic function of elapsed time.
package anim

import (
	"time"

	"github.com/san-kum/pulse/internal/heart"
	"github.com/san-kum/pulse/internal/palette"
)

// Phase is the renderer lifecycle state.
type Phase int

const (
	Running Phase = iota
	Paused
	Closed
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "closed"
	}
}

// Toggle flips Running and Paused. Closed is terminal: once the window or
// terminal loop has shut down, nothing resurrects it.
func (p Phase) Toggle() Phase {
	switch p {
	case Running:
		return Paused
	case Paused:
		return Running
	default:
		return Closed
	}
}

// Close moves any phase to Closed.
func (p Phase) Close() Phase { return Closed }

// Clock abstracts elapsed wall time so tests can freeze it.
type Clock interface {
	// Elapsed is seconds since the clock's reference point.
	Elapsed() float64
	// Now is the wall time, used for snapshot file names.
	Now() time.Time
}

// WallClock measures from process start against the monotonic clock.
type WallClock struct{ start time.Time }

func NewWallClock() *WallClock          { return &WallClock{start: time.Now()} }
func (c *WallClock) Elapsed() float64   { return time.Since(c.start).Seconds() }
func (c *WallClock) Now() time.Time     { return time.Now() }

// FakeClock is a manually advanced clock for deterministic tests.
type FakeClock struct {
	T    float64
	Wall time.Time
}

func (c *FakeClock) Elapsed() float64 { return c.T }
func (c *FakeClock) Now() time.Time   { return c.Wall }
func (c *FakeClock) Advance(dt float64) {
	c.T += dt
	c.Wall = c.Wall.Add(time.Duration(dt * float64(time.Second)))
}

// Frame is everything a renderer needs for one redraw.
type Frame struct {
	Scale  float64
	Hue    float64
	Color  palette.RGB
	Glow   palette.RGB
	Coords []float64
}

// Animator binds the base outline to a color cycler. The outline is built
// once and never mutated; only the per-frame transform varies.
type Animator struct {
	base   []heart.Point
	cycler *palette.Cycler
	cx, cy float64
}

func New(base []heart.Point, cycler *palette.Cycler, cx, cy float64) *Animator {
	return &Animator{base: base, cycler: cycler, cx: cx, cy: cy}
}

// Frame computes the frame state for elapsed time t. Pure with respect to
// the animator: calling it twice with the same t gives identical frames.
func (a *Animator) Frame(t float64) Frame {
	scale := a.cycler.Pulse(t)
	return Frame{
		Scale:  scale,
		Hue:    a.cycler.Hue(t),
		Color:  a.cycler.Color(t),
		Glow:   a.cycler.Glow(t),
		Coords: heart.Transform(a.base, a.cx, a.cy, scale),
	}
}

// Pulse exposes the cycler's scale factor for callers that only need the
// heartbeat envelope (terminal renderer, audio).
func (a *Animator) Pulse(t float64) float64 { return a.cycler.Pulse(t) }
