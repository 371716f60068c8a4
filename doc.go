// Package foil prepares raw, arbitrarily digitized 2D airfoil point clouds
// for aerodynamic analysis and shape optimization.
//
// Given an ordered closed loop of coordinates, the package fits a smooth
// arc-length parametrized curve through the points, locates the exact
// geometric leading edge on that curve, moves the geometry into a canonical
// pose (leading edge at the origin, trailing edge at unit chord on the
// x-axis), and resamples the loop to a requested panel distribution with
// controllable point bunching at the leading and trailing edges.
//
// # Pipeline
//
// The usual entry point is [NormalizeAndRepanel], which alternates
// normalization and repaneling until the located leading edge converges to
// the origin, then splits the loop into upper and lower [Side]s with
// per-point curvature. The individual stages are available separately:
//
//   - [FitSpline] builds the parametric curve behind the [Curve] interface
//   - [LocateLeadingEdge] finds the parameter where the tangent is
//     perpendicular to the chord
//   - [PanelDistribution] produces the normalized panel spacing
//   - [Airfoil.Normalize], [Airfoil.Repanel], [Airfoil.SplitSides] transform
//     an airfoil in place
//
// # Coordinate convention
//
// An airfoil is a single closed loop traversed counter-clockwise, starting
// and ending at the trailing edge and passing through exactly one direction
// reversal in x (the leading edge). This is the common layout of coordinate
// files in the Selig mold; [ReadAirfoil] flips clockwise input
// automatically.
//
// # Leading edge
//
// The leading edge is defined geometrically, not as a sample point: it is
// the point on the fitted curve whose tangent is perpendicular to the
// vector from the trailing-edge midpoint. Normalizing once is therefore not
// enough, as repaneling after normalization shifts the samples and can
// reintroduce a small leading-edge offset; [NormalizeAndRepanel] iterates
// until the offset is negligible.
//
// # Warnings
//
// Numerically marginal geometries degrade gracefully: when an iteration cap
// is reached the pipeline continues with the best available result and
// reports the condition through the package logger. Logging is silent by
// default; call [SetLogger] to receive the warnings.
package foil
