package foil

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Panel distribution constants. The phase offsets control how much of the
// raw cosine bunching survives at each end of the distribution: a bunching
// factor of 1 keeps the full cosine density, a factor of 0 backs the phase
// window off the cosine extremum, flattening the spacing towards uniform.
// The trailing edge has a slightly tighter window than the leading edge at
// equal factors.
const (
	lePhaseWindow = 0.25 * math.Pi
	tePhaseWindow = 0.2 * math.Pi

	// A raw cosine distribution shrinks the trailing-edge panel roughly
	// quadratically with the panel count. The correction lifts the last
	// panel to a multiple of its cosine size (capped at a fraction of the
	// uniform panel size), then grows panel sizes geometrically towards the
	// leading edge until they rejoin the cosine sizes. The cosine sizes
	// grow faster than the geometric rate right at the trailing edge, so
	// the walk rejoins after a few panels.
	tePanelGrowth  = 1.2
	teFloorRatio   = 3.0
	teMaxFloorFrac = 0.25
)

// PanelDistribution returns n strictly increasing fractions in [0, 1], with
// the first exactly 0 and the last exactly 1, to be mapped onto an
// arc-length range when resampling a curve.
//
// The base distribution is cosine-like, concentrating points at both ends.
// leBunch and teBunch in [0, 1] control how strongly points bunch at the
// start and end respectively; 0 approaches uniform spacing and 1 keeps the
// full cosine density. The trailing-edge end is additionally corrected so
// its panels do not degenerate at high bunching factors: the last panel is
// held at a minimum size and panel sizes grow by a fixed factor per step
// moving away from it until the uncorrected cosine sizes take over again.
func PanelDistribution(n int, leBunch, teBunch float64) ([]float64, error) {
	if n < 3 {
		return nil, fmt.Errorf("foil: panel distribution needs at least 3 points, got %d", n)
	}
	if leBunch < 0 || leBunch > 1 {
		return nil, fmt.Errorf("foil: leading-edge bunching factor %g outside [0, 1]", leBunch)
	}
	if teBunch < 0 || teBunch > 1 {
		return nil, fmt.Errorf("foil: trailing-edge bunching factor %g outside [0, 1]", teBunch)
	}

	// Cosine base: phases spanning a sub-interval of [0, π], mapped through
	// u = (1 − cos φ)/2 and rescaled to [0, 1].
	phi0 := (1 - leBunch) * lePhaseWindow
	phi1 := math.Pi - (1-teBunch)*tePhaseWindow
	u := floats.Span(make([]float64, n), phi0, phi1)
	for i, phi := range u {
		u[i] = 0.5 * (1 - math.Cos(phi))
	}
	u0, u1 := u[0], u[n-1]
	for i := range u {
		u[i] = (u[i] - u0) / (u1 - u0)
	}

	// Trailing-edge panel floor.
	nPanels := n - 1
	du := make([]float64, nPanels)
	for i := range du {
		du[i] = u[i+1] - u[i]
	}
	duMin := min(teFloorRatio*du[nPanels-1], teMaxFloorFrac/float64(nPanels))
	if du[nPanels-1] < duMin {
		size := duMin
		for i := nPanels - 1; i >= 0; i-- {
			if du[i] >= size {
				// The cosine sizes have caught up; the rest of the
				// distribution stays untouched.
				break
			}
			du[i] = size
			size *= tePanelGrowth
		}
	}

	// Rebuild cumulative positions and renormalize so the endpoints are
	// exact regardless of the correction.
	u[0] = 0
	floats.CumSum(u[1:], du)
	total := u[n-1]
	for i := 1; i < n-1; i++ {
		u[i] /= total
	}
	u[n-1] = 1
	return u, nil
}
