// SPDX-License-Identifier: MIT

// Package core: context.go — the explicit precision context.
//
// A Context wraps an apd.Context configured with a fixed significant-digit
// precision. It is the only way bezarc code constructs decimals from
// anything other than another decimal, which keeps input normalization in
// one place.

package core

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// DefaultPrecision is the significant-digit precision NewDefaultContext
// configures. The integration and solver layers assume at least this much
// headroom above their 1e-30 default tolerances.
const DefaultPrecision uint32 = 50

var (
	// ErrZeroPrecision is returned when a context is requested with zero digits.
	ErrZeroPrecision = errors.New("core: precision must be at least 1 significant digit")

	// ErrUnparsable is returned when a decimal literal cannot be parsed.
	ErrUnparsable = errors.New("core: malformed decimal literal")

	// ErrZeroDenominator is returned by Quotient when den is zero.
	ErrZeroDenominator = errors.New("core: quotient denominator is zero")

	// ErrNotFinite is returned when a value or coordinate is NaN or ±Inf.
	ErrNotFinite = errors.New("core: value is not finite")
)

// Context carries the working precision for one family of computations.
// Contexts are immutable after construction and safe for concurrent use;
// independent contexts at different precisions may coexist freely.
type Context struct {
	base *apd.Context
}

// NewContext returns a context with the given precision in significant
// decimal digits. Returns ErrZeroPrecision when digits is 0.
func NewContext(digits uint32) (*Context, error) {
	if digits == 0 {
		return nil, ErrZeroPrecision
	}
	return &Context{base: apd.BaseContext.WithPrecision(digits)}, nil
}

// NewDefaultContext returns a context at DefaultPrecision.
func NewDefaultContext() *Context {
	ctx, err := NewContext(DefaultPrecision)
	if err != nil {
		// DefaultPrecision is a non-zero constant; this cannot fail.
		panic(err)
	}
	return ctx
}

// Precision reports the context's significant-digit precision.
func (c *Context) Precision() uint32 {
	return c.base.Precision
}

// Base exposes the underlying apd context for error-accumulating arithmetic
// via apd.MakeErrDecimal. Callers must treat it as read-only.
func (c *Context) Base() *apd.Context {
	return c.base
}

// New mints a fresh decimal holding the integer v. Integers always fit the
// context exactly, so no rounding is involved.
func (c *Context) New(v int64) *apd.Decimal {
	return apd.New(v, 0)
}

// Parse converts a decimal literal such as "0.5" or "1e-30" into a value
// rounded into the context. This is the normalization step for textual
// inputs; internal code only ever passes *apd.Decimal around.
func (c *Context) Parse(s string) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("core: parse %q: %w", s, ErrUnparsable)
	}
	if _, err = c.base.Round(d, d); err != nil {
		return nil, fmt.Errorf("core: round %q: %w", s, err)
	}
	return d, nil
}

// MustParse is Parse for trusted literals; it panics on malformed input.
func (c *Context) MustParse(s string) *apd.Decimal {
	d, err := c.Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Quotient mints num/den rounded into the context. Returns
// ErrZeroDenominator when den is 0.
func (c *Context) Quotient(num, den int64) (*apd.Decimal, error) {
	if den == 0 {
		return nil, ErrZeroDenominator
	}
	q := new(apd.Decimal)
	if _, err := c.base.Quo(q, apd.New(num, 0), apd.New(den, 0)); err != nil {
		return nil, fmt.Errorf("core: quotient %d/%d: %w", num, den, err)
	}
	return q, nil
}

// IsFinite reports whether d is a usable finite number: non-nil and neither
// NaN nor ±Inf.
func IsFinite(d *apd.Decimal) bool {
	return d != nil && d.Form == apd.Finite
}

// Clone returns an independent copy of d.
func Clone(d *apd.Decimal) *apd.Decimal {
	return new(apd.Decimal).Set(d)
}
