// SPDX-License-Identifier: MIT

// Package integrate: adaptive.go — the recursive subdivision worker.

package integrate

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/bezarc/core"
	"github.com/katalvlaran/bezarc/quadrature"
)

var two = apd.New(2, 0)

// Adaptive integrates f over [a,b] by recursive interval subdivision; see
// the package documentation for the acceptance rule and its rationale.
// The interval is oriented: a > b yields the negated integral.
//
// Errors cover invalid inputs and integrand failures only — running out of
// depth is a documented degradation, not an error.
func Adaptive(ctx *core.Context, f quadrature.Integrand, a, b *apd.Decimal, opts ...Option) (*apd.Decimal, error) {
	// 1) Entry validation; the recursion below trusts its inputs.
	if ctx == nil {
		return nil, ErrNilContext
	}
	if f == nil {
		return nil, ErrNilIntegrand
	}
	if !core.IsFinite(a) || !core.IsFinite(b) {
		return nil, ErrBadInterval
	}
	o, err := resolve(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return subdivide(ctx, f, a, b, o.Tolerance, o.MaxDepth, o.MinDepth, 0)
}

// subdivide estimates one interval and either accepts it or recurses on
// its halves. depth counts subdivision levels from the original call.
func subdivide(ctx *core.Context, f quadrature.Integrand, a, b, tol *apd.Decimal, maxDepth, minDepth, depth int) (*apd.Decimal, error) {
	// 1) Two estimates of the same interval.
	i5, err := quadrature.Evaluate(ctx, f, a, b, quadrature.Order5)
	if err != nil {
		return nil, err
	}
	i10, err := quadrature.Evaluate(ctx, f, a, b, quadrature.Order10)
	if err != nil {
		return nil, err
	}
	// 2) Their gap plays the role of the local error.
	ed := apd.MakeErrDecimal(ctx.Base())
	gap := new(apd.Decimal)
	ed.Sub(gap, i5, i10)
	ed.Abs(gap, gap)
	if err = ed.Err(); err != nil {
		return nil, fmt.Errorf("integrate: error estimate: %w", err)
	}
	// 3) Acceptance: enough forced depth, and either converged or capped.
	if depth >= minDepth && (gap.Cmp(tol) < 0 || depth >= maxDepth) {
		return i10, nil
	}
	// 4) Split the interval and the remaining error budget evenly.
	mid := new(apd.Decimal)
	halfTol := new(apd.Decimal)
	ed.Add(mid, a, b)
	ed.Quo(mid, mid, two)
	ed.Quo(halfTol, tol, two)
	if err = ed.Err(); err != nil {
		return nil, fmt.Errorf("integrate: split interval: %w", err)
	}
	left, err := subdivide(ctx, f, a, mid, halfTol, maxDepth, minDepth, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := subdivide(ctx, f, mid, b, halfTol, maxDepth, minDepth, depth+1)
	if err != nil {
		return nil, err
	}
	total := new(apd.Decimal)
	ed.Add(total, left, right)
	if err = ed.Err(); err != nil {
		return nil, fmt.Errorf("integrate: combine halves: %w", err)
	}
	return total, nil
}
