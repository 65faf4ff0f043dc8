// SPDX-License-Identifier: MIT

// Package arclen: types.go — options, defaults, and sentinel errors.

package arclen

import (
	"errors"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/bezarc/core"
	"github.com/katalvlaran/bezarc/integrate"
)

// Defaults — single source of truth.
const (
	// DefaultTolerance bounds both the integration error of Length and the
	// residual/step convergence of Inverse.
	DefaultTolerance = "1e-30"

	// DefaultLengthTolerance is the integration tolerance for the length
	// evaluations the inverse solver performs internally.
	DefaultLengthTolerance = "1e-30"

	// DefaultMaxIterations is the Newton/bisection budget of Inverse.
	DefaultMaxIterations = 100

	// SpeedEpsilon is the near-zero speed threshold below which the solver
	// treats a point as a cusp and falls back to bisection.
	SpeedEpsilon = "1e-60"

	// DefaultTableSamples is the sample count NewTable assumes in the
	// package examples and verification tooling.
	DefaultTableSamples = 100
)

var (
	// ErrNilCurve is returned when an operation receives a nil curve.
	ErrNilCurve = errors.New("arclen: curve is nil")

	// ErrBadParam is returned when a range parameter is nil or not finite.
	ErrBadParam = errors.New("arclen: parameter must be a finite decimal")

	// ErrBadTolerance is returned when a tolerance is not a positive
	// finite decimal.
	ErrBadTolerance = errors.New("arclen: tolerance must be a positive finite decimal")

	// ErrBadDepth is returned when a depth bound is negative.
	ErrBadDepth = errors.New("arclen: depth bounds must be non-negative")

	// ErrBadIterations is returned when the iteration budget is below one.
	ErrBadIterations = errors.New("arclen: iteration budget must be at least one")

	// ErrBadGuess is returned when an initial guess is supplied but not
	// finite. Out-of-range guesses are clamped, not rejected.
	ErrBadGuess = errors.New("arclen: initial guess must be a finite decimal")

	// ErrBadTarget is returned when a target length is nil, non-finite or
	// negative.
	ErrBadTarget = errors.New("arclen: target length must be a finite non-negative decimal")

	// ErrEmptyPath is returned when a path operation receives no segments.
	ErrEmptyPath = errors.New("arclen: path has no segments")

	// ErrNilSegment is returned when a path contains a nil segment.
	ErrNilSegment = errors.New("arclen: path segment is nil")

	// ErrBadSampleCount is returned when NewTable is asked for fewer than
	// two samples, too few for binary search to bracket anything.
	ErrBadSampleCount = errors.New("arclen: table needs at least two samples")

	// ErrBadIndex is returned when a table row index is out of range.
	ErrBadIndex = errors.New("arclen: sample index out of range")
)

// two is shared by the bisection helpers; read-only.
var two = apd.New(2, 0)

// Options configures Length, Inverse, the path operations and table
// construction. Zero-value decimal fields mean "use the default resolved
// against the curve's context".
type Options struct {
	// T0 and T1 bound the Length integration range; nil means 0 and 1.
	// The pair is unordered and not restricted to [0,1].
	T0, T1 *apd.Decimal

	// Tolerance is the integration acceptance threshold for Length and
	// the convergence threshold (residual and step size) for Inverse.
	Tolerance *apd.Decimal

	// MaxDepth and MinDepth bound the adaptive subdivision.
	MaxDepth, MinDepth int

	// MaxIterations bounds the inverse solver loop.
	MaxIterations int

	// LengthTolerance is the integration tolerance used for the length
	// evaluations inside the inverse solver.
	LengthTolerance *apd.Decimal

	// InitialGuess seeds the inverse iteration; nil selects the
	// uniform-speed heuristic target/total. Clamped into [0,1].
	InitialGuess *apd.Decimal
}

// Option mutates Options before validation.
type Option func(*Options)

// DefaultOptions returns the documented defaults with all decimal fields
// unset (resolved against the curve's context at call time).
func DefaultOptions() Options {
	return Options{
		MaxDepth:      integrate.DefaultMaxDepth,
		MinDepth:      integrate.DefaultMinDepth,
		MaxIterations: DefaultMaxIterations,
	}
}

// WithRange bounds the Length integration range.
func WithRange(t0, t1 *apd.Decimal) Option {
	return func(o *Options) { o.T0, o.T1 = t0, t1 }
}

// WithTolerance sets the integration/convergence tolerance.
func WithTolerance(tol *apd.Decimal) Option {
	return func(o *Options) { o.Tolerance = tol }
}

// WithMaxDepth caps the adaptive subdivision.
func WithMaxDepth(depth int) Option {
	return func(o *Options) { o.MaxDepth = depth }
}

// WithMinDepth forces that many subdivision levels.
func WithMinDepth(depth int) Option {
	return func(o *Options) { o.MinDepth = depth }
}

// WithMaxIterations bounds the inverse solver loop.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithLengthTolerance sets the tolerance for lengths computed inside the
// inverse solver.
func WithLengthTolerance(tol *apd.Decimal) Option {
	return func(o *Options) { o.LengthTolerance = tol }
}

// WithInitialGuess seeds the inverse iteration.
func WithInitialGuess(t *apd.Decimal) Option {
	return func(o *Options) { o.InitialGuess = t }
}

// resolveOptions applies opts over defaults, fills unset decimals from the
// context, and validates the result.
func resolveOptions(ctx *core.Context, opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	var err error
	if o.T0 == nil {
		o.T0 = ctx.New(0)
	}
	if o.T1 == nil {
		o.T1 = ctx.New(1)
	}
	if o.Tolerance == nil {
		if o.Tolerance, err = ctx.Parse(DefaultTolerance); err != nil {
			return Options{}, err
		}
	}
	if o.LengthTolerance == nil {
		if o.LengthTolerance, err = ctx.Parse(DefaultLengthTolerance); err != nil {
			return Options{}, err
		}
	}
	if !core.IsFinite(o.T0) || !core.IsFinite(o.T1) {
		return Options{}, ErrBadParam
	}
	if !core.IsFinite(o.Tolerance) || o.Tolerance.Sign() <= 0 {
		return Options{}, ErrBadTolerance
	}
	if !core.IsFinite(o.LengthTolerance) || o.LengthTolerance.Sign() <= 0 {
		return Options{}, ErrBadTolerance
	}
	if o.MaxDepth < 0 || o.MinDepth < 0 {
		return Options{}, ErrBadDepth
	}
	if o.MaxIterations < 1 {
		return Options{}, ErrBadIterations
	}
	if o.InitialGuess != nil && !core.IsFinite(o.InitialGuess) {
		return Options{}, ErrBadGuess
	}
	return o, nil
}
