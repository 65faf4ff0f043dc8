// SPDX-License-Identifier: MIT

// Package integrate provides the tolerance-driven adaptive integrator the
// arc-length layer is built on.
//
// # How it works
//
// Every interval is estimated twice, with the order-5 and order-10
// Gauss-Legendre rules; their disagreement |I5−I10| stands in for the local
// truncation error. An interval is accepted — as the order-10 estimate —
// only once
//
//	depth ≥ MinDepth  AND  (|I5−I10| < tolerance  OR  depth ≥ MaxDepth)
//
// and is otherwise split at its decimal midpoint, each half recursing at
// depth+1 with half the tolerance budget.
//
// MinDepth (default 3) forces that many subdivision levels even when the
// two rules agree immediately: at aligned or symmetric sample points the
// agreement can be coincidental, and a few forced splits make false
// convergence vanishingly unlikely. MaxDepth (default 50) is a hard cap and
// a documented degradation policy, not a failure: an interval still over
// tolerance at the cap returns its order-10 estimate silently, because a
// numerical answer of slightly reduced quality beats no answer for
// downstream geometry.
//
// Splitting the tolerance evenly between the halves is a heuristic budget
// split, not a proven bound — orders 5 and 10 are not an embedded
// Gauss-Kronrod pair. It is kept exactly as-is because the convergence
// behavior of every consumer is calibrated against it.
//
// # Bounds
//
// Recursion depth never exceeds MaxDepth, so the stack is bounded; the
// worst case costs O(2^MaxDepth) rule evaluations, reached only by
// integrands the rules cannot settle anywhere (the speed of a smooth
// Bezier settles within a handful of levels).
//
// The integrator is synchronous and allocation-light; there is no
// cancellation hook, so callers needing interruption wrap the call at a
// higher level.
package integrate
