// SPDX-License-Identifier: MIT

// Package core provides the two building blocks every other bezarc package
// consumes: an explicit arbitrary-precision computation context and an
// immutable Bezier curve.
//
// # Context
//
// All bezarc arithmetic runs on github.com/cockroachdb/apd decimals, and
// every operation that touches a decimal does so under a Context that fixes
// the working precision in significant digits:
//
//	ctx, err := core.NewContext(72)     // 72 significant digits
//	ctx := core.NewDefaultContext()     // DefaultPrecision (50)
//
// The context is passed around explicitly (usually riding inside a Curve),
// so several contexts at different precisions can coexist in one process
// without racing on global state. Precision below DefaultPrecision is
// allowed but degrades the convergence of the integration and root-finding
// layers, which are tuned for tolerances down to 1e-30.
//
// Textual inputs enter through Context.Parse/MustParse, which is the single
// normalization point: beyond it, the library deals in *apd.Decimal only.
//
// # Curve
//
// A Curve is an ordered, immutable sequence of at least two control points,
// each an (x,y) pair of decimals, implicitly a Bezier of degree count−1 over
// t ∈ [0,1]:
//
//	curve, err := core.NewCurve(ctx, []core.Point{
//		{X: ctx.New(0), Y: ctx.New(0)},
//		{X: ctx.New(0), Y: ctx.New(100)},
//		{X: ctx.New(100), Y: ctx.New(100)},
//		{X: ctx.New(100), Y: ctx.New(0)},
//	})
//
// NewCurve deep-copies and rounds every coordinate into the context, and all
// accessors return fresh copies, so a built curve can never be mutated from
// the outside and is safe to read concurrently.
//
// Evaluation uses the de Casteljau scheme for arbitrary degree:
//
//	Eval(t)            — point on the curve, O(n²) decimal operations
//	Derivative(t, k)   — k-th derivative vector via the k-fold hodograph
//	ChordLength()      — distance between the first and last control points
//	PolygonLength()    — control-polygon circumference (majorizes arc length)
//
// The chord and polygon measures bracket the true arc length from below and
// above; the verify package leans on that property.
//
// Errors are package-level sentinels (ErrNilContext, ErrTooFewPoints, …)
// matched with errors.Is.
package core
