// SPDX-License-Identifier: MIT

// Package integrate: types.go — options, defaults, and sentinel errors.

package integrate

import (
	"errors"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/bezarc/core"
)

// Defaults — single source of truth.
const (
	// DefaultTolerance is the acceptance threshold for |I5−I10|, parsed
	// into the caller's context when no tolerance is supplied.
	DefaultTolerance = "1e-30"

	// DefaultMaxDepth caps the subdivision recursion.
	DefaultMaxDepth = 50

	// DefaultMinDepth forces that many subdivision levels before any
	// interval may be accepted.
	DefaultMinDepth = 3
)

var (
	// ErrNilContext is returned when Adaptive is called without a context.
	ErrNilContext = errors.New("integrate: context is nil")

	// ErrNilIntegrand is returned when Adaptive is called without an integrand.
	ErrNilIntegrand = errors.New("integrate: integrand is nil")

	// ErrBadInterval is returned when an interval bound is nil or not finite.
	ErrBadInterval = errors.New("integrate: interval bounds must be finite decimals")

	// ErrBadTolerance is returned when the tolerance is nil, non-finite,
	// zero or negative.
	ErrBadTolerance = errors.New("integrate: tolerance must be a positive finite decimal")

	// ErrBadDepth is returned when MaxDepth or MinDepth is negative.
	ErrBadDepth = errors.New("integrate: depth bounds must be non-negative")
)

// Options configures one Adaptive call. A nil Tolerance falls back to
// DefaultTolerance parsed into the calling context.
type Options struct {
	// Tolerance is the |I5−I10| acceptance threshold for the whole
	// interval; each subdivision halves the budget passed down.
	Tolerance *apd.Decimal

	// MaxDepth is the hard recursion cap (accept-at-cap, never an error).
	MaxDepth int

	// MinDepth is the forced number of subdivision levels.
	MinDepth int
}

// Option mutates Options before validation.
type Option func(*Options)

// DefaultOptions returns the documented defaults with Tolerance unset
// (resolved against the context at call time).
func DefaultOptions() Options {
	return Options{MaxDepth: DefaultMaxDepth, MinDepth: DefaultMinDepth}
}

// WithTolerance sets the acceptance threshold.
func WithTolerance(tol *apd.Decimal) Option {
	return func(o *Options) { o.Tolerance = tol }
}

// WithMaxDepth sets the recursion cap.
func WithMaxDepth(depth int) Option {
	return func(o *Options) { o.MaxDepth = depth }
}

// WithMinDepth sets the forced subdivision depth.
func WithMinDepth(depth int) Option {
	return func(o *Options) { o.MinDepth = depth }
}

// resolve applies opts over defaults, fills the tolerance from the context,
// and validates the result.
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
	if o.MaxDepth < 0 || o.MinDepth < 0 {
		return Options{}, ErrBadDepth
	}
	return o, nil
}
