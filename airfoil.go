package foil

import (
	"errors"
	"fmt"
	"slices"
)

// Fatal precondition violations surfaced by the geometry pipeline. They
// abort the operation that detected them; the airfoil is left unchanged.
var (
	// ErrLeadingEdgeOffOrigin reports a side split or symmetry operation on
	// an airfoil whose minimum-x point is not exactly at the origin.
	ErrLeadingEdgeOffOrigin = errors.New("foil: leading edge is not at the origin")
	// ErrNoSides reports an operation that requires previously split sides.
	ErrNoSides = errors.New("foil: airfoil has no sides, call SplitSides first")
	// ErrWinding reports a coordinate loop whose x direction does not
	// reverse exactly once.
	ErrWinding = errors.New("foil: x coordinates must reverse direction exactly once")
)

// Airfoil is an ordered sequence of coordinates forming a single closed
// loop, traversed counter-clockwise starting and ending at the trailing
// edge and passing through exactly one direction reversal in x, at the
// leading edge.
//
// An airfoil owns its coordinate slice; pipeline stages replace it
// wholesale rather than aliasing it across instances. The fitted curve is
// built lazily and invalidated whenever the coordinates change.
type Airfoil struct {
	// Name is a free-text label, commonly the first line of a coordinate
	// file.
	Name string
	// Points is the coordinate loop.
	Points []Point
	// Top and Bot are the upper and lower sides, ordered leading edge to
	// trailing edge. They are populated by [Airfoil.SplitSides] and derived
	// data; the loop in Points stays the ground truth.
	Top, Bot *Side

	// TopControls and BotControls optionally carry shape-control data from
	// a parametrized generator, one polyline per side. The geometry
	// pipeline never reads them, but [Airfoil.EnforceSymmetry] keeps them
	// consistent with the mirrored coordinates.
	TopControls, BotControls []Point

	mirror bool
	fit    *Spline
}

// NewAirfoil returns an airfoil with independently handled upper and lower
// sides.
func NewAirfoil(name string, pts []Point) *Airfoil {
	return &Airfoil{Name: name, Points: slices.Clone(pts)}
}

// NewMirrorAirfoil returns an airfoil whose lower side is by construction
// the mirror image of its upper side. Side-splitting operations derive the
// lower side from the upper one instead of reading the raw coordinates.
func NewMirrorAirfoil(name string, pts []Point) *Airfoil {
	return &Airfoil{Name: name, Points: slices.Clone(pts), mirror: true}
}

// Mirror reports whether the airfoil is tagged mirror-symmetric about the
// chord.
func (f *Airfoil) Mirror() bool {
	return f.mirror
}

// Fit returns the airfoil's fitted curve, building it if necessary.
func (f *Airfoil) Fit() (Curve, error) {
	if err := f.ensureFit(); err != nil {
		return nil, err
	}
	return f.fit, nil
}

func (f *Airfoil) ensureFit() error {
	if f.fit != nil {
		return nil
	}
	s, err := FitSpline(f.Points)
	if err != nil {
		return fmt.Errorf("%w (airfoil %q)", err, f.Name)
	}
	f.fit = s
	return nil
}

// setPoints replaces the coordinate loop and invalidates derived data.
func (f *Airfoil) setPoints(pts []Point) {
	f.Points = pts
	f.invalidate()
}

// invalidate drops the fitted curve and the split sides after a coordinate
// change; both are derived from the loop.
func (f *Airfoil) invalidate() {
	f.fit = nil
	f.Top = nil
	f.Bot = nil
}

// minXIndex returns the index of the sample with minimum x, the sample-level
// stand-in for the leading edge.
func (f *Airfoil) minXIndex() int {
	idx := 0
	for i, pt := range f.Points {
		if pt.X < f.Points[idx].X {
			idx = i
		}
	}
	return idx
}

// teMid returns the trailing-edge midpoint, the average of the first and
// last coordinate.
func (f *Airfoil) teMid() Point {
	return f.Points[0].Midpoint(f.Points[len(f.Points)-1])
}

// TEGap returns the trailing-edge gap, the distance between the first and
// last coordinate of the loop.
func (f *Airfoil) TEGap() float64 {
	return f.Points[0].Distance(f.Points[len(f.Points)-1])
}

// locateLE fits the curve if needed and locates the geometric leading edge,
// starting the search from the minimum-x sample.
func (f *Airfoil) locateLE() (LeadingEdge, error) {
	if err := f.ensureFit(); err != nil {
		return LeadingEdge{}, err
	}
	u0 := f.fit.Params()[f.minXIndex()]
	return LocateLeadingEdge(f.fit, f.teMid(), u0), nil
}

// LocateLE locates the geometric leading edge on the airfoil's fitted
// curve. See [LocateLeadingEdge].
func (f *Airfoil) LocateLE() (LeadingEdge, error) {
	return f.locateLE()
}

// checkLoop validates the closed-loop invariant: the x coordinate sequence
// must be monotonic except for exactly one direction reversal.
func checkLoop(pts []Point) error {
	if len(pts) < 5 {
		return fmt.Errorf("foil: %d points are too few for a closed airfoil loop", len(pts))
	}
	reversals := 0
	dir := 0
	for i := 1; i < len(pts); i++ {
		dx := pts[i].X - pts[i-1].X
		if dx == 0 {
			continue
		}
		d := 1
		if dx < 0 {
			d = -1
		}
		if dir != 0 && d != dir {
			reversals++
		}
		dir = d
	}
	if reversals != 1 {
		return fmt.Errorf("%w (found %d reversals)", ErrWinding, reversals)
	}
	return nil
}
