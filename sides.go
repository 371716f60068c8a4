package foil

import (
	"fmt"
	"slices"
)

// Side is one half of an airfoil loop, ordered leading edge to trailing
// edge, with the curvature of the fitted curve at every sample. Sides are
// derived data: they are regenerated from the parent airfoil and its curve
// fit, never edited as ground truth.
type Side struct {
	Name      string
	Points    []Point
	Curvature []float64
}

// SplitSides partitions the coordinate loop into upper and lower sides at
// the leading edge and computes per-point curvature from the fitted curve.
//
// The airfoil must already be normalized so that its minimum-x sample is
// exactly at the origin; otherwise [ErrLeadingEdgeOffOrigin] is returned.
// For a mirror-tagged airfoil with equally sized sides the lower side is
// derived from the upper one by negating y rather than read from the raw
// coordinates. An even loop puts its extra point on the upper side, so the
// sides have no index-wise correspondence and the lower one is read from
// the coordinates like an asymmetric one.
func (f *Airfoil) SplitSides() error {
	iLE := f.minXIndex()
	if f.Points[iLE] != Pt(0, 0) {
		return fmt.Errorf("%w (airfoil %q, nearest sample %v)",
			ErrLeadingEdgeOffOrigin, f.Name, f.Points[iLE])
	}
	if err := f.ensureFit(); err != nil {
		return err
	}

	params := f.fit.Params()
	curv := make([]float64, len(params))
	for i, u := range params {
		curv[i] = f.fit.Curvature(u)
	}

	// The loop runs trailing edge over the upper surface to the leading
	// edge and back; the upper slice is reversed so both sides run leading
	// to trailing edge.
	top := &Side{
		Name:      "Top",
		Points:    reversed(f.Points[:iLE+1]),
		Curvature: reversedFloats(curv[:iLE+1]),
	}
	var bot *Side
	if f.mirror && len(f.Points)-iLE == iLE+1 {
		bot = mirrored(top)
	} else {
		bot = &Side{
			Name:      "Bot",
			Points:    slices.Clone(f.Points[iLE:]),
			Curvature: slices.Clone(curv[iLE:]),
		}
	}
	f.Top = top
	f.Bot = bot
	return nil
}

// RebuildFromSides reassembles the coordinate loop from the Top and Bot
// sides, rebuilds the curve fit, and recomputes both sides' curvature from
// the unified fit, which keeps the curvature continuous across the leading
// edge.
func (f *Airfoil) RebuildFromSides() error {
	if f.Top == nil || f.Bot == nil {
		return fmt.Errorf("%w (airfoil %q)", ErrNoSides, f.Name)
	}
	top, bot := f.Top, f.Bot

	pts := reversed(top.Points)
	pts = append(pts, bot.Points[1:]...)
	f.setPoints(pts)
	if err := f.ensureFit(); err != nil {
		return err
	}

	params := f.fit.Params()
	iLE := len(top.Points) - 1
	top.Curvature = make([]float64, len(top.Points))
	for i := range top.Points {
		top.Curvature[i] = f.fit.Curvature(params[iLE-i])
	}
	bot.Curvature = make([]float64, len(bot.Points))
	for i := range bot.Points {
		bot.Curvature[i] = f.fit.Curvature(params[iLE+i])
	}
	f.Top = top
	f.Bot = bot
	return nil
}

// EnforceSymmetry forces the airfoil to be mirror-symmetric about the chord
// by overwriting the lower side with the negated upper side. The lower side
// takes the upper side's sample stations, so an airfoil whose sides were
// unevenly sized gains a point in the rebuilt loop. The mirror tag is set,
// shape-control data is mirrored along when present, and the loop and
// curvature are rebuilt via [Airfoil.RebuildFromSides].
//
// The airfoil must have split sides; see [Airfoil.SplitSides].
func (f *Airfoil) EnforceSymmetry() error {
	if f.Top == nil || f.Bot == nil {
		return fmt.Errorf("%w (airfoil %q)", ErrNoSides, f.Name)
	}
	f.Bot = mirrored(f.Top)
	f.mirror = true
	if f.TopControls != nil {
		f.BotControls = make([]Point, len(f.TopControls))
		for i, pt := range f.TopControls {
			f.BotControls[i] = Pt(pt.X, -pt.Y)
		}
	}
	return f.RebuildFromSides()
}

// mirrored returns the chord-mirrored image of a side.
func mirrored(s *Side) *Side {
	m := &Side{
		Name:      "Bot",
		Points:    make([]Point, len(s.Points)),
		Curvature: make([]float64, len(s.Curvature)),
	}
	for i, pt := range s.Points {
		m.Points[i] = Pt(pt.X, -pt.Y)
	}
	for i, c := range s.Curvature {
		m.Curvature[i] = -c
	}
	return m
}

func reversed(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, pt := range pts {
		out[len(pts)-1-i] = pt
	}
	return out
}

func reversedFloats(vs []float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[len(vs)-1-i] = v
	}
	return out
}
