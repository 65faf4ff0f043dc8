// SPDX-License-Identifier: MIT

// Package verify: types.go — options, defaults, sentinels, and the report
// structs the checks return.

package verify

import (
	"errors"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/bezarc/core"
)

// Defaults — single source of truth.
const (
	// DefaultTolerance is the comparison slack of the checks. It is
	// looser than the integration tolerance underneath, so honest
	// rounding differences between independent methods never trip a
	// check.
	DefaultTolerance = "1e-25"

	// DefaultSamples is the piece count of the uniform chord sum.
	DefaultSamples = 100
)

var (
	// ErrNilCurve is returned when a check receives a nil curve.
	ErrNilCurve = errors.New("verify: curve is nil")

	// ErrNilTable is returned when the table check receives a nil table.
	ErrNilTable = errors.New("verify: table is nil")

	// ErrBadParam is returned when a split parameter is nil, non-finite
	// or outside [0,1].
	ErrBadParam = errors.New("verify: split parameter must be a finite decimal in [0,1]")

	// ErrBadTarget is returned when a roundtrip target is nil, non-finite
	// or negative.
	ErrBadTarget = errors.New("verify: target length must be a finite non-negative decimal")

	// ErrBadTolerance is returned when the tolerance is not a positive
	// finite decimal.
	ErrBadTolerance = errors.New("verify: tolerance must be a positive finite decimal")

	// ErrBadSamples is returned when the chord-sum piece count is below
	// one.
	ErrBadSamples = errors.New("verify: sample count must be at least one")
)

// Options configures the checks.
type Options struct {
	// Tolerance is the comparison slack; nil resolves to
	// DefaultTolerance in the curve's context.
	Tolerance *apd.Decimal

	// Samples is the uniform piece count of the chord-sum check.
	Samples int
}

// Option mutates Options before validation.
type Option func(*Options)

// DefaultOptions returns the documented defaults with Tolerance unset.
func DefaultOptions() Options {
	return Options{Samples: DefaultSamples}
}

// WithTolerance sets the comparison slack.
func WithTolerance(tol *apd.Decimal) Option {
	return func(o *Options) { o.Tolerance = tol }
}

// WithSamples sets the chord-sum piece count.
func WithSamples(n int) Option {
	return func(o *Options) { o.Samples = n }
}

// resolve applies opts over defaults and validates the result.
func resolve(ctx *core.Context, opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Tolerance == nil {
		tol, err := ctx.Parse(DefaultTolerance)
		if err != nil {
			return Options{}, err
		}
		o.Tolerance = tol
	}
	if !core.IsFinite(o.Tolerance) || o.Tolerance.Sign() <= 0 {
		return Options{}, ErrBadTolerance
	}
	if o.Samples < 1 {
		return Options{}, ErrBadSamples
	}
	return o, nil
}

// BoundsReport carries the chord ≤ arc ≤ polygon comparison.
type BoundsReport struct {
	Valid   bool
	Chord   *apd.Decimal
	Arc     *apd.Decimal
	Polygon *apd.Decimal
	Errors  []string
}

// SubdivisionReport compares the quadrature length against a uniform
// chord-sum approximation over Samples pieces.
type SubdivisionReport struct {
	Valid    bool
	Arc      *apd.Decimal
	ChordSum *apd.Decimal
	Samples  int
	Errors   []string
}

// AdditivityReport carries Length(0,t) + Length(t,1) against Length(0,1).
type AdditivityReport struct {
	Valid  bool
	Head   *apd.Decimal
	Tail   *apd.Decimal
	Whole  *apd.Decimal
	Gap    *apd.Decimal
	Errors []string
}

// RoundtripReport carries a length → parameter → length reproduction.
// Converged and Iterations mirror the inverse solve; Valid judges the
// reproduction gap only.
type RoundtripReport struct {
	Valid      bool
	Target     *apd.Decimal
	T          *apd.Decimal
	Recovered  *apd.Decimal
	Gap        *apd.Decimal
	Converged  bool
	Iterations int
	Errors     []string
}

// TableReport carries the lookup-table consistency verdict. Checked
// counts the individual comparisons performed.
type TableReport struct {
	Valid   bool
	Total   *apd.Decimal
	Direct  *apd.Decimal
	Checked int
	Errors  []string
}
