// Package palette derives the per-frame pulse scale and color from elapsed
// time. Both are periodic functions of absolute elapsed seconds, never
// accumulated state, so a paused-and-resumed animation stays continuous.
package palette

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	pulseAmplitude = 0.12
	hueWobble      = 0.06
	saturation     = 0.85
	value          = 1.0
	glowLift       = 0.35
)

// Cycler computes pulse and color for a given elapsed time.
// Period is the heartbeat period in seconds and must be positive.
type Cycler struct {
	Period  float64
	BaseHue float64
}

// NewCycler validates the pulse period up front so renderers never divide
// by zero mid-frame.
func NewCycler(period, baseHue float64) (*Cycler, error) {
	if period <= 0 {
		return nil, fmt.Errorf("pulse period must be > 0, got %g", period)
	}
	return &Cycler{Period: period, BaseHue: baseHue}, nil
}

// Pulse returns the heartbeat scale factor, within [1−0.12, 1+0.12].
func (c *Cycler) Pulse(t float64) float64 {
	return 1.0 + pulseAmplitude*math.Sin(2*math.Pi*t/c.Period)
}

// Hue returns the current hue in [0, 1).
func (c *Cycler) Hue(t float64) float64 {
	h := math.Mod(c.BaseHue+hueWobble*math.Sin(0.5*t), 1.0)
	if h < 0 {
		h += 1.0
	}
	return h
}

// RGB is an 8-bit-per-channel color.
type RGB struct{ R, G, B uint8 }

// Hex renders the color as #rrggbb.
func (c RGB) Hex() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

// Color converts the hue at time t to RGB at fixed saturation/value.
func (c *Cycler) Color(t float64) RGB {
	return fromHSV(c.Hue(t), 0)
}

// Glow returns the brighter underlay variant: each channel lifted by 0.35
// and clamped before quantization, so glow channels never fall below base.
func (c *Cycler) Glow(t float64) RGB {
	return fromHSV(c.Hue(t), glowLift)
}

func fromHSV(hue, lift float64) RGB {
	col := colorful.Hsv(hue*360, saturation, value)
	return RGB{quant(col.R + lift), quant(col.G + lift), quant(col.B + lift)}
}

func quant(v float64) uint8 {
	if v > 1 {
		v = 1
	}
	return uint8(v*255 + 0.5)
}
