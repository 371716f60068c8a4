package foil

import (
	"fmt"
	"slices"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Curve describes a smooth arc-length parametrized interpolant through an
// ordered coordinate sequence. The geometry pipeline consumes curves only
// through this interface, so the fitting primitive can be swapped out.
//
// The parameter domain is monotonically increasing with point index;
// evaluation outside the domain extrapolates and is numerically unstable,
// callers are expected to clamp.
type Curve interface {
	// Eval evaluates the curve position at parameter u.
	Eval(u float64) Point
	// Deriv evaluates the first derivative (tangent vector) at parameter u.
	Deriv(u float64) Vec2
	// Deriv2 evaluates the second derivative at parameter u.
	Deriv2(u float64) Vec2
	// Curvature returns the signed curvature at parameter u. The sign is
	// positive where the curve bends towards positive y, as on the upper
	// surface of an airfoil traversed trailing edge to leading edge.
	Curvature(u float64) float64
	// Domain returns the lower and upper bounds of the parameter range.
	Domain() (lo, hi float64)
	// Params returns the parameter value of every fit point, in increasing
	// order.
	Params() []float64
}

// Spline is a cubic interpolating spline through an ordered point sequence,
// parametrized by cumulative chordal length and with natural end
// conditions. It implements [Curve].
type Spline struct {
	u      []float64 // cumulative chord length per point
	pts    []Point
	mx, my []float64 // second derivatives of x(u) and y(u) at the knots
}

var _ Curve = (*Spline)(nil)

// FitSpline fits a parametric cubic spline through pts. At least three
// points are required, and consecutive points must not coincide.
func FitSpline(pts []Point) (*Spline, error) {
	n := len(pts)
	if n < 3 {
		return nil, fmt.Errorf("foil: spline fit needs at least 3 points, got %d", n)
	}
	u := make([]float64, n)
	for i := 1; i < n; i++ {
		d := pts[i].Distance(pts[i-1])
		if d == 0 {
			return nil, fmt.Errorf("foil: spline fit: points %d and %d coincide at %v", i-1, i, pts[i])
		}
		u[i] = d
	}
	floats.CumSum(u, u)

	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, pt := range pts {
		xs[i] = pt.X
		ys[i] = pt.Y
	}
	mx, err := splineMoments(u, xs)
	if err != nil {
		return nil, err
	}
	my, err := splineMoments(u, ys)
	if err != nil {
		return nil, err
	}
	return &Spline{
		u:   u,
		pts: slices.Clone(pts),
		mx:  mx,
		my:  my,
	}, nil
}

// splineMoments solves the tridiagonal system for the second derivatives of
// a natural cubic spline through (u, v).
func splineMoments(u, v []float64) ([]float64, error) {
	n := len(v)
	m := make([]float64, n)
	k := n - 2
	// Natural end conditions pin the boundary moments to zero, leaving a
	// k×k system for the interior ones.
	diag := make([]float64, k)
	sub := make([]float64, k-1)
	sup := make([]float64, k-1)
	rhs := make([]float64, k)
	for i := 1; i <= k; i++ {
		h0 := u[i] - u[i-1]
		h1 := u[i+1] - u[i]
		diag[i-1] = (h0 + h1) / 3
		if i > 1 {
			sub[i-2] = h0 / 6
		}
		if i < k {
			sup[i-1] = h1 / 6
		}
		rhs[i-1] = (v[i+1]-v[i])/h1 - (v[i]-v[i-1])/h0
	}
	a := mat.NewTridiag(k, sub, diag, sup)
	var sol mat.VecDense
	if err := a.SolveVecTo(&sol, false, mat.NewVecDense(k, rhs)); err != nil {
		return nil, fmt.Errorf("foil: spline fit: %w", err)
	}
	copy(m[1:n-1], sol.RawVector().Data)
	return m, nil
}

// segment returns the knot interval containing u, clamped to the domain.
func (s *Spline) segment(u float64) int {
	i := sort.SearchFloat64s(s.u, u) - 1
	return min(max(i, 0), len(s.u)-2)
}

// Eval evaluates the spline position at parameter u.
func (s *Spline) Eval(u float64) Point {
	i := s.segment(u)
	h := s.u[i+1] - s.u[i]
	a := (s.u[i+1] - u) / h
	b := (u - s.u[i]) / h
	ca := (a*a*a - a) * h * h / 6
	cb := (b*b*b - b) * h * h / 6
	return Point{
		X: a*s.pts[i].X + b*s.pts[i+1].X + ca*s.mx[i] + cb*s.mx[i+1],
		Y: a*s.pts[i].Y + b*s.pts[i+1].Y + ca*s.my[i] + cb*s.my[i+1],
	}
}

// Deriv evaluates the first derivative at parameter u.
func (s *Spline) Deriv(u float64) Vec2 {
	i := s.segment(u)
	h := s.u[i+1] - s.u[i]
	a := (s.u[i+1] - u) / h
	b := (u - s.u[i]) / h
	ca := (3*a*a - 1) * h / 6
	cb := (3*b*b - 1) * h / 6
	return Vec2{
		X: (s.pts[i+1].X-s.pts[i].X)/h - ca*s.mx[i] + cb*s.mx[i+1],
		Y: (s.pts[i+1].Y-s.pts[i].Y)/h - ca*s.my[i] + cb*s.my[i+1],
	}
}

// Deriv2 evaluates the second derivative at parameter u.
func (s *Spline) Deriv2(u float64) Vec2 {
	i := s.segment(u)
	h := s.u[i+1] - s.u[i]
	a := (s.u[i+1] - u) / h
	b := (u - s.u[i]) / h
	return Vec2{
		X: a*s.mx[i] + b*s.mx[i+1],
		Y: a*s.my[i] + b*s.my[i+1],
	}
}

// Curvature returns the signed curvature at parameter u.
//
// The chordal parametrization is close to, but not exactly, arc length, so
// the full quotient formula is used rather than assuming a unit-speed
// curve.
func (s *Spline) Curvature(u float64) float64 {
	d := s.Deriv(u)
	d2 := s.Deriv2(u)
	speed := d.Hypot()
	return d.Cross(d2) / (speed * speed * speed)
}

// Domain returns the parameter bounds of the spline.
func (s *Spline) Domain() (lo, hi float64) {
	return s.u[0], s.u[len(s.u)-1]
}

// Params returns a copy of the parameter value of every fit point.
func (s *Spline) Params() []float64 {
	return slices.Clone(s.u)
}
