package heart

import "math"

// Density glyphs for the terminal rasterizer, ordered dense to sparse.
const (
	GlyphDense  = '@'
	GlyphMedium = '*'
	GlyphSparse = '.'
	GlyphBlank  = ' '
)

// Inside reports whether (x, y) satisfies (x²+y²−1)³ − x²y³ ≤ 0, the
// implicit heart region in normalized coordinates. Even in x.
func Inside(x, y float64) bool {
	q := x*x + y*y - 1
	return q*q*q-x*x*y*y*y <= 0
}

// Glyph picks a fill character by distance from the shape's local origin,
// densest in the middle. Callers only use this for points inside the region.
func Glyph(x, y float64) rune {
	switch d := math.Hypot(x, y); {
	case d < 0.5:
		return GlyphDense
	case d < 0.9:
		return GlyphMedium
	default:
		return GlyphSparse
	}
}
