// SPDX-License-Identifier: MIT

// Package arclen: arclen.go — arc length over one parameter range.

package arclen

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/bezarc/core"
	"github.com/katalvlaran/bezarc/integrate"
)

// Length returns the arc length of c over the configured range, [0,1] when
// no WithRange option narrows it. The range is an unordered pair: a
// reversed range yields the same non-negative magnitude, and an empty
// range is exactly zero with no integration performed.
func Length(c *core.Curve, opts ...Option) (*apd.Decimal, error) {
	if c == nil {
		return nil, ErrNilCurve
	}
	o, err := resolveOptions(c.Context(), opts...)
	if err != nil {
		return nil, err
	}
	return lengthWith(c, o.T0, o.T1, o)
}

// lengthWith integrates speed between two already-validated parameters.
// All internal callers route length computations through here so the
// orientation rules live in exactly one place.
func lengthWith(c *core.Curve, t0, t1 *apd.Decimal, o Options) (*apd.Decimal, error) {
	switch t0.Cmp(t1) {
	case 0:
		return new(apd.Decimal), nil
	case 1:
		t0, t1 = t1, t0
	}
	return integrate.Adaptive(c.Context(), integrand(c), t0, t1,
		integrate.WithTolerance(o.Tolerance),
		integrate.WithMaxDepth(o.MaxDepth),
		integrate.WithMinDepth(o.MinDepth))
}
