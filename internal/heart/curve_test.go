package heart

import (
	"math"
	"testing"
)

func TestPoints_Count(t *testing.T) {
	tests := []struct{ steps int }{{1}, {10}, {200}, {300}}
	for _, tt := range tests {
		pts := Points(1.0, tt.steps)
		if len(pts) != tt.steps {
			t.Errorf("steps %d: expected %d points, got %d", tt.steps, tt.steps, len(pts))
		}
	}
}

func TestPoints_Degenerate(t *testing.T) {
	if pts := Points(10, 0); len(pts) != 0 {
		t.Errorf("expected empty outline for 0 steps, got %d points", len(pts))
	}
}

func TestPoints_LinearScaling(t *testing.T) {
	a := Points(1.0, 100)
	b := Points(3.5, 100)

	for i := range a {
		if math.Abs(b[i].X-a[i].X*3.5) > 1e-9 || math.Abs(b[i].Y-a[i].Y*3.5) > 1e-9 {
			t.Fatalf("point %d does not scale linearly: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestPoints_YNegated(t *testing.T) {
	// The first sample is t=0: the cleft between the lobes, at (0, 5) in
	// math coordinates, so (0, -5) after the screen-space flip.
	pts := Points(1.0, 100)
	if pts[0].X != 0 {
		t.Errorf("expected x=0 at t=0, got %g", pts[0].X)
	}
	if math.Abs(pts[0].Y+5) > 1e-9 {
		t.Errorf("expected y=-5 at t=0, got %g", pts[0].Y)
	}
}

func TestTransform_Identity(t *testing.T) {
	pts := Points(2.0, 50)
	coords := Transform(pts, 0, 0, 1.0)

	if len(coords) != len(pts)*2 {
		t.Fatalf("expected %d coords, got %d", len(pts)*2, len(coords))
	}
	for i, p := range pts {
		if coords[i*2] != p.X || coords[i*2+1] != p.Y {
			t.Fatalf("identity transform changed point %d", i)
		}
	}
}

func TestTransform_TranslationAdditive(t *testing.T) {
	pts := Points(1.0, 50)

	for _, scale := range []float64{0.5, 1.0, 1.12} {
		base := Transform(pts, 0, 0, scale)
		moved := Transform(pts, 100, -40, scale)
		for i := 0; i < len(base); i += 2 {
			if math.Abs(moved[i]-(base[i]+100)) > 1e-9 || math.Abs(moved[i+1]-(base[i+1]-40)) > 1e-9 {
				t.Fatalf("scale %g: translation not purely additive at point %d", scale, i/2)
			}
		}
	}
}
