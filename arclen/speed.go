// SPDX-License-Identifier: MIT

// Package arclen: speed.go — the arc-length integrand.

package arclen

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/bezarc/core"
	"github.com/katalvlaran/bezarc/quadrature"
)

// Speed returns the first-derivative magnitude √(x′(t)²+y′(t)²) at t.
//
// A near-zero result at a cusp is returned literally, not rounded up or
// special-cased here; the inverse solver owns the singularity handling.
func Speed(c *core.Curve, t *apd.Decimal) (*apd.Decimal, error) {
	if c == nil {
		return nil, ErrNilCurve
	}
	if !core.IsFinite(t) {
		return nil, ErrBadParam
	}
	d, err := c.Derivative(t, 1)
	if err != nil {
		return nil, err
	}
	origin := core.Point{X: new(apd.Decimal), Y: new(apd.Decimal)}
	return core.Distance(c.Context(), d, origin)
}

// integrand adapts a curve's speed to the quadrature callback shape.
func integrand(c *core.Curve) quadrature.Integrand {
	return func(t *apd.Decimal) (*apd.Decimal, error) {
		return Speed(c, t)
	}
}
