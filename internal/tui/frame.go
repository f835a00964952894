package tui

import (
	"strings"

	"github.com/san-kum/pulse/internal/heart"
)

// Frame rasterizes one W×H text frame of the implicit heart at the given
// pulse scale. Column i maps to x = (i − W/2)/(W/4), row j to
// y = (H/2 − j)/(H/4)·1.2 (rows print top-first, so j is flipped to keep
// the cusp pointing down); both divided by pulse so the shape breathes.
// Deterministic: same inputs, byte-identical output.
func Frame(w, h int, pulse float64) string {
	var sb strings.Builder
	sb.Grow((w + 1) * h)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			x := (float64(i) - float64(w)/2) / (float64(w) / 4) / pulse
			y := (float64(h)/2 - float64(j)) / (float64(h) / 4) * 1.2 / pulse
			if heart.Inside(x, y) {
				sb.WriteRune(heart.Glyph(x, y))
			} else {
				sb.WriteRune(heart.GlyphBlank)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
