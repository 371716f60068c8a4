package foil

import "fmt"

// PanelOptions configures repaneling. The zero value is invalid; start from
// [DefaultPanelOptions].
type PanelOptions struct {
	// NPoints is the total number of points of the resampled loop.
	NPoints int
	// LEBunch in [0, 1] controls point bunching at the leading edge.
	LEBunch float64
	// TEBunch in [0, 1] controls point bunching at the trailing edge.
	TEBunch float64
}

// DefaultPanelOptions returns panel options suitable for panel-method
// aerodynamic analysis.
func DefaultPanelOptions() PanelOptions {
	return PanelOptions{
		NPoints: 161,
		LEBunch: 0.86,
		TEBunch: 0.6,
	}
}

// Validate reports whether the options describe a usable panel
// distribution.
func (o PanelOptions) Validate() error {
	if o.NPoints < 5 {
		return fmt.Errorf("foil: repaneling needs at least 5 points, got %d", o.NPoints)
	}
	if o.LEBunch < 0 || o.LEBunch > 1 {
		return fmt.Errorf("foil: leading-edge bunching factor %g outside [0, 1]", o.LEBunch)
	}
	if o.TEBunch < 0 || o.TEBunch > 1 {
		return fmt.Errorf("foil: trailing-edge bunching factor %g outside [0, 1]", o.TEBunch)
	}
	return nil
}

// sideCounts splits a total point count between the upper and lower sides,
// which share the leading-edge point. An even panel count splits evenly; an
// odd one gives the upper side the extra point.
func sideCounts(n int) (top, bot int) {
	if n%2 == 0 {
		return n/2 + 1, n / 2
	}
	return (n + 1) / 2, (n + 1) / 2
}

// Repanel resamples the airfoil in place to exactly opts.NPoints points
// distributed per [PanelDistribution].
//
// The loop is split at the current leading-edge arc length. Each side gets
// its own distribution mapped into the corresponding parameter sub-range,
// trailing edge to leading edge for the upper side and leading edge to
// trailing edge for the lower one, so both sides bunch towards both the
// leading and trailing edge. The curve fit is rebuilt on the new
// coordinates.
func (f *Airfoil) Repanel(opts PanelOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	le, err := f.locateLE()
	if err != nil {
		return err
	}
	lo, hi := f.fit.Domain()

	nTop, nBot := sideCounts(opts.NPoints)
	dTop, err := PanelDistribution(nTop, opts.LEBunch, opts.TEBunch)
	if err != nil {
		return err
	}
	dBot, err := PanelDistribution(nBot, opts.LEBunch, opts.TEBunch)
	if err != nil {
		return err
	}

	pts := make([]Point, 0, opts.NPoints)
	// Upper side runs trailing edge to leading edge, so the leading-edge
	// bunched end of the distribution maps onto the start of the parameter
	// range walked backwards.
	for i := nTop - 1; i >= 0; i-- {
		u := le.U + dTop[i]*(lo-le.U)
		pts = append(pts, f.fit.Eval(u))
	}
	// Lower side, skipping the shared leading-edge point.
	for i := 1; i < nBot; i++ {
		u := le.U + dBot[i]*(hi-le.U)
		pts = append(pts, f.fit.Eval(u))
	}

	f.setPoints(pts)
	return f.ensureFit()
}
