package foil

import (
	"fmt"
	"math"
)

// NACA4 generates the point cloud of a NACA 4-digit section with unit
// chord, such as "2412" or "0012", as a closed counter-clockwise loop of
// nPoints coordinates with cosine spacing in x. The closed-trailing-edge
// thickness polynomial is used, so the trailing-edge gap is zero.
//
// Symmetric sections (zero camber) are constructed with the mirror tag set.
// The generated cloud is raw: run it through [Airfoil.NormalizeAndRepanel]
// before analysis.
func NACA4(code string, nPoints int) (*Airfoil, error) {
	if len(code) != 4 {
		return nil, fmt.Errorf("foil: NACA 4-digit code must have 4 digits, got %q", code)
	}
	var m, p, t int
	if _, err := fmt.Sscanf(code, "%1d%1d%2d", &m, &p, &t); err != nil {
		return nil, fmt.Errorf("foil: malformed NACA 4-digit code %q", code)
	}
	if nPoints < 5 {
		return nil, fmt.Errorf("foil: NACA generation needs at least 5 points, got %d", nPoints)
	}
	camber := float64(m) / 100
	camberPos := float64(p) / 10
	thickness := float64(t) / 100
	if camber > 0 && camberPos == 0 {
		return nil, fmt.Errorf("foil: NACA code %q has camber but no camber position", code)
	}

	nTop, nBot := sideCounts(nPoints)
	upper := nacaSide(nTop, camber, camberPos, thickness, +1)
	lower := nacaSide(nBot, camber, camberPos, thickness, -1)

	pts := make([]Point, 0, nPoints)
	pts = append(pts, reversed(upper)...)
	pts = append(pts, lower[1:]...)

	name := "NACA " + code
	if camber == 0 {
		return NewMirrorAirfoil(name, pts), nil
	}
	return NewAirfoil(name, pts), nil
}

// nacaSide samples one surface, leading to trailing edge, with cosine
// spacing. sign selects the upper (+1) or lower (−1) surface.
func nacaSide(n int, m, p, t float64, sign float64) []Point {
	pts := make([]Point, n)
	for i := range pts {
		phi := math.Pi * float64(i) / float64(n-1)
		x := 0.5 * (1 - math.Cos(phi))
		yt := nacaThickness(t, x)
		yc, grad := nacaCamber(m, p, x)
		th := math.Atan(grad)
		pts[i] = Pt(
			x-sign*yt*math.Sin(th),
			yc+sign*yt*math.Cos(th),
		)
	}
	// The cosine samples hit the endpoints exactly; pin them against
	// trigonometric roundoff.
	pts[0] = Pt(0, 0)
	pts[n-1] = Pt(1, 0)
	return pts
}

// nacaThickness is the 4-digit thickness polynomial with the closed
// trailing-edge coefficient (−0.1036).
func nacaThickness(t, x float64) float64 {
	return 5 * t * (0.2969*math.Sqrt(x) -
		0.1260*x -
		0.3516*x*x +
		0.2843*x*x*x -
		0.1036*x*x*x*x)
}

// nacaCamber returns the mean-line height and slope of the 4-digit camber
// line at x.
func nacaCamber(m, p, x float64) (yc, grad float64) {
	if m == 0 {
		return 0, 0
	}
	if x < p {
		yc = m / (p * p) * (2*p*x - x*x)
		grad = 2 * m / (p * p) * (p - x)
	} else {
		yc = m / ((1 - p) * (1 - p)) * (1 - 2*p + 2*p*x - x*x)
		grad = 2 * m / ((1 - p) * (1 - p)) * (p - x)
	}
	return yc, grad
}
