package foil

// The leading edge is defined on the fitted curve, not on the samples: it
// is the point whose tangent is perpendicular to the vector from the
// trailing-edge midpoint. This keeps the definition independent of how the
// raw coordinates happen to be distributed.

const (
	leTolerance = 1e-10
	leMaxIter   = 50
)

// LeadingEdge is a located geometric leading edge.
type LeadingEdge struct {
	// U is the arc-length parameter of the leading edge on the curve.
	U float64
	// Pos is the curve position at U.
	Pos Point
	// Converged reports whether the search met its tolerance. When false,
	// U and Pos hold the best-effort fallback.
	Converged bool
}

// LocateLeadingEdge finds the parameter on c at which the tangent is
// perpendicular to the vector from teMid, the trailing-edge midpoint, to
// the curve point. u0 is the initial guess, conventionally the parameter of
// the sample with minimum x.
//
// The root of f(u) = tangent(u) · (point(u) − teMid) is found by damped
// Newton iteration, clamped into the interior of the parameter domain to
// avoid extrapolation instability near the endpoints. If the iteration does
// not converge within 50 steps, a warning is logged and the initial guess
// is returned as a best-effort result.
func LocateLeadingEdge(c Curve, teMid Point, u0 float64) LeadingEdge {
	lo, hi := c.Domain()
	params := c.Params()
	// Keep clear of the endpoint neighborhoods; half of the first and last
	// knot interval is enough to stay on well-conditioned segments.
	if n := len(params); n >= 2 {
		lo += 0.5 * (params[1] - params[0])
		hi -= 0.5 * (params[n-1] - params[n-2])
	}

	f := func(u float64) (float64, float64) {
		p := c.Eval(u)
		t := c.Deriv(u)
		d := p.Sub(teMid)
		return t.Dot(d), t.Hypot2() + d.Dot(c.Deriv2(u))
	}
	maxStep := 0.1 * (hi - lo)
	res := SolveNewton(f, u0, lo, hi, maxStep, leTolerance, leMaxIter)
	if !res.Converged {
		Logger().Warn("leading edge search did not converge, falling back to initial guess",
			"residual", res.Residual,
			"iterations", res.Iters,
		)
		u := clamp(u0, lo, hi)
		return LeadingEdge{U: u, Pos: c.Eval(u)}
	}
	return LeadingEdge{U: res.X, Pos: c.Eval(res.X), Converged: true}
}
