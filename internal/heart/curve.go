package heart

import "math"

// Point is a position in shape-local coordinates, y growing downward.
type Point struct{ X, Y float64 }

// Points samples the classic parametric heart
//
//	x(t) = 16 sin³t
//	y(t) = 13 cos t − 5 cos 2t − 2 cos 3t − cos 4t
//
// over one full period, scaled and with y negated so the cusp points down
// in screen coordinates. steps=0 yields an empty outline.
func Points(scale float64, steps int) []Point {
	pts := make([]Point, 0, steps)
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps) * 2 * math.Pi
		s := math.Sin(t)
		x := 16 * s * s * s
		y := 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)
		pts = append(pts, Point{x * scale, -y * scale})
	}
	return pts
}

// Transform maps an outline into screen space: each point becomes
// (cx + x·s, cy + y·s), flattened to x,y pairs in input order.
func Transform(pts []Point, cx, cy, s float64) []float64 {
	coords := make([]float64, 0, len(pts)*2)
	for _, p := range pts {
		coords = append(coords, cx+p.X*s, cy+p.Y*s)
	}
	return coords
}
