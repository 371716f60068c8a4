package foil

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approx(tol float64) cmp.Option {
	return cmpopts.EquateApprox(0, tol)
}

// transformed returns the points scaled, rotated by th radians, and then
// translated, simulating an arbitrarily posed digitization.
func transformed(pts []Point, scale, th float64, off Vec2) []Point {
	out := make([]Point, len(pts))
	for i, pt := range pts {
		out[i] = pt.Scale(scale).Rotate(th).Translate(off)
	}
	return out
}

// mustNACA generates a NACA 4-digit cloud or fails the test.
func mustNACA(t *testing.T, code string, n int) *Airfoil {
	t.Helper()
	f, err := NACA4(code, n)
	if err != nil {
		t.Fatalf("NACA4(%q, %d): %v", code, n, err)
	}
	return f
}

// circleLoop returns points on a circle of the given radius centered on the
// origin-shifted x-axis so that the loop starts and ends at the rightmost
// point, mimicking a closed blunt shape.
func circleLoop(radius float64, n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		th := 2 * math.Pi * float64(i) / float64(n-1)
		pts[i] = Pt(radius*math.Cos(th), radius*math.Sin(th))
	}
	return pts
}
