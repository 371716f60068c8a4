package foil

import (
	"math"
	"sort"
)

// YAt returns the side's surface height at chordwise position x, linearly
// interpolated between samples. x outside the side's range clamps to the
// nearest endpoint.
func (s *Side) YAt(x float64) float64 {
	pts := s.Points
	n := len(pts)
	if x <= pts[0].X {
		return pts[0].Y
	}
	if x >= pts[n-1].X {
		return pts[n-1].Y
	}
	i := sort.Search(n, func(i int) bool { return pts[i].X >= x }) - 1
	t := (x - pts[i].X) / (pts[i+1].X - pts[i].X)
	return pts[i].Y + t*(pts[i+1].Y-pts[i].Y)
}

// Thickness returns the local thickness at chordwise position x, the
// distance between the upper and lower surface. The airfoil must have
// split sides.
func (f *Airfoil) Thickness(x float64) (float64, error) {
	if f.Top == nil || f.Bot == nil {
		return 0, ErrNoSides
	}
	return f.Top.YAt(x) - f.Bot.YAt(x), nil
}

// Camber returns the local mean-line height at chordwise position x. The
// airfoil must have split sides.
func (f *Airfoil) Camber(x float64) (float64, error) {
	if f.Top == nil || f.Bot == nil {
		return 0, ErrNoSides
	}
	return 0.5 * (f.Top.YAt(x) + f.Bot.YAt(x)), nil
}

// MaxThickness returns the maximum thickness and its chordwise position,
// evaluated at the upper side's sample stations. The airfoil must have
// split sides.
func (f *Airfoil) MaxThickness() (t, x float64, err error) {
	if f.Top == nil || f.Bot == nil {
		return 0, 0, ErrNoSides
	}
	for _, pt := range f.Top.Points {
		if d := pt.Y - f.Bot.YAt(pt.X); d > t {
			t = d
			x = pt.X
		}
	}
	return t, x, nil
}

// MaxCamber returns the mean-line height of largest magnitude and its
// chordwise position. The airfoil must have split sides.
func (f *Airfoil) MaxCamber() (c, x float64, err error) {
	if f.Top == nil || f.Bot == nil {
		return 0, 0, ErrNoSides
	}
	for _, pt := range f.Top.Points {
		if d := 0.5 * (pt.Y + f.Bot.YAt(pt.X)); math.Abs(d) > math.Abs(c) {
			c = d
			x = pt.X
		}
	}
	return c, x, nil
}
