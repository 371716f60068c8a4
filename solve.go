package foil

import "math"

// RootResult is the outcome of a root search. When the search fails to
// converge, X holds the iterate with the smallest residual seen, so callers
// can degrade to a best-effort value without re-deriving it.
type RootResult struct {
	X         float64
	Residual  float64
	Iters     int
	Converged bool
}

// SolveNewton finds a zero crossing of f using damped Newton iteration.
//
// f must return the function value and its derivative at x. Every iterate
// is clamped into [lo, hi] before evaluation, and the Newton step is
// limited to maxStep, which keeps the iteration from shooting out of the
// region where f is well behaved. The search starts at x0 and stops when
// |f(x)| < tol or after maxIter iterations.
//
// Unlike a bracketing method, convergence is not guaranteed; inspect the
// Converged field of the result.
func SolveNewton(
	f func(x float64) (fx, dfx float64),
	x0 float64,
	lo, hi float64,
	maxStep float64,
	tol float64,
	maxIter int,
) RootResult {
	x := clamp(x0, lo, hi)
	best := RootResult{X: x, Residual: math.Inf(1)}
	for i := 0; i < maxIter; i++ {
		fx, dfx := f(x)
		r := math.Abs(fx)
		if r < best.Residual {
			best.X = x
			best.Residual = r
			best.Iters = i + 1
		}
		if r < tol {
			return RootResult{X: x, Residual: r, Iters: i + 1, Converged: true}
		}
		if dfx == 0 {
			break
		}
		step := fx / dfx
		if math.Abs(step) > maxStep {
			step = math.Copysign(maxStep, step)
		}
		x = clamp(x-step, lo, hi)
	}
	return best
}

func clamp(x, lo, hi float64) float64 {
	return min(max(x, lo), hi)
}
