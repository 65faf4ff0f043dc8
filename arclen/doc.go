// SPDX-License-Identifier: MIT

// Package arclen measures Bezier curves: arc length over a parameter range,
// the inverse map from length back to parameter, multi-segment paths, and a
// sampled lookup table for fast approximate inversion.
//
// # Length
//
// Length integrates the curve's speed √(x′(t)²+y′(t)²) with the adaptive
// integrator, at the precision of the curve's core.Context. The parameter
// range is an unordered pair: a swapped range yields the same magnitude,
// and an empty range is exactly zero with no integration performed.
//
// # Inverse
//
// Inverse answers "at which t have I travelled length L?". Degenerate
// targets are settled before any iteration: a zero target is t=0, a target
// at or beyond the whole length clamps to t=1, and a zero-length curve
// reports Converged=false since no parameter can reach a positive target.
// Everything else runs a Newton iteration on f(t) = Length(0,t) − L with
// f′(t) = Speed(t), guarded two ways:
//
//   - Near-zero speed (below SpeedEpsilon, a cusp) makes Newton's division
//     meaningless, so the solver takes a bisection half-step toward the end
//     that shrinks the residual and skips the step-size check that round.
//   - A Newton step landing outside [0,1] is replaced by a bisection
//     half-step toward the violated endpoint, which keeps the iterate in
//     the parameter domain without ever rejecting progress outright.
//
// Running out of iterations is reported as Converged=false, never as an
// error; the Result always carries a recomputed Length(0,T) so callers can
// judge the approximation themselves.
//
// # Paths and tables
//
// PathLength and PathInverse stitch independent segments end to end:
// lengths add, and a global target is located by walking cumulative
// segment lengths, then solving the residual on the owning segment.
//
// NewTable samples cumulative length at uniform parameters once, after
// which T answers lookups with a binary search and linear interpolation
// between the bracketing rows, and TRefined feeds that approximation into
// Inverse as the initial guess. A built Table is immutable and safe for
// concurrent readers.
//
// All tolerances, depth bounds, and iteration budgets are functional
// options with package defaults; invalid inputs fail fast with sentinel
// errors wrapped for errors.Is.
package arclen
