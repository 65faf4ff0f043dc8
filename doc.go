// Package bezarc computes arc length and inverse arc length of parametric
// Bezier curves at arbitrary decimal precision.
//
// Overview:
//
//   - Every measurement runs inside an explicit core.Context that fixes the
//     significant-digit precision (50 by default), so results carry no
//     binary floating-point error and contexts at different precisions
//     coexist without shared state.
//   - Lengths come from adaptive Gauss-Legendre integration of the curve's
//     speed; the inverse map (length → parameter) from a Newton iteration
//     with bisection fallbacks around cusps and domain edges.
//   - Multi-segment paths stitch independent curves end to end, and a
//     precomputed lookup table answers approximate inversions in O(log n)
//     with optional exact refinement.
//
// The work is organized under focused subpackages:
//
//	core/       — precision contexts, control points, curve evaluation
//	quadrature/ — Gauss-Legendre rules computed at context precision
//	integrate/  — tolerance-driven adaptive subdivision
//	arclen/     — Length, Inverse, paths, and the lookup table
//	verify/     — independent cross-checks (bounds, additivity, roundtrip)
//
// When to use:
//
//   - Vector-graphics tooling that must place markers, dashes, or glyphs
//     at exact distances along paths.
//   - Animation and robotics timelines that need constant-speed traversal
//     of curved trajectories.
//   - Geometry pipelines where float64 arc length drift is unacceptable
//     and every digit has to be reproducible.
//
// Error handling:
//
//   - Malformed input fails fast with package-level sentinel errors
//     (errors.Is friendly), wrapped with context where useful.
//   - Numerical non-convergence is never an error: the inverse solver
//     reports Converged=false and the integrator degrades to its best
//     estimate at the depth cap, leaving the decision to the caller.
//
// See examples/ for end-to-end scenarios and each subpackage's doc.go for
// its contract.
package bezarc
