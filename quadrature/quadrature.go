// SPDX-License-Identifier: MIT

// Package quadrature: quadrature.go — the single-interval rule evaluator
// and the coefficient accessor.

package quadrature

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/bezarc/core"
)

// Evaluate approximates ∫ₐᵇ f with the fixed-order rule mapped onto [a,b].
// The interval is oriented: Evaluate(…, b, a, …) negates the result. When
// a == b the integral is exactly zero and f is never invoked, which also
// sidesteps the degenerate mapping.
//
// Exactness: an order-n rule integrates polynomials up to degree 2n−1
// exactly (up to context rounding); everything else carries truncation
// error, which the integrate package estimates by comparing the two orders.
func Evaluate(ctx *core.Context, f Integrand, a, b *apd.Decimal, order int) (*apd.Decimal, error) {
	// 1) Validation, cheapest first.
	if ctx == nil {
		return nil, ErrNilContext
	}
	if f == nil {
		return nil, ErrNilIntegrand
	}
	if order != Order5 && order != Order10 {
		return nil, fmt.Errorf("quadrature: order %d: %w", order, ErrUnsupportedOrder)
	}
	if !core.IsFinite(a) || !core.IsFinite(b) {
		return nil, ErrBadInterval
	}
	// 2) Zero-width interval.
	if a.Cmp(b) == 0 {
		return new(apd.Decimal), nil
	}
	r, err := ruleFor(ctx, order)
	if err != nil {
		return nil, err
	}
	// 3) Affine map [−1,1] → [a,b].
	ed := apd.MakeErrDecimal(ctx.Base())
	halfWidth := new(apd.Decimal)
	center := new(apd.Decimal)
	ed.Sub(halfWidth, b, a)
	ed.Quo(halfWidth, halfWidth, two)
	ed.Add(center, a, b)
	ed.Quo(center, center, two)

	// 4) Weighted sum over the mapped nodes.
	sum := new(apd.Decimal)
	x := new(apd.Decimal)
	term := new(apd.Decimal)
	for i := range r.nodes {
		ed.Mul(x, halfWidth, r.nodes[i])
		ed.Add(x, x, center)
		if err = ed.Err(); err != nil {
			return nil, fmt.Errorf("quadrature: map node %d: %w", i, err)
		}
		v, ferr := f(core.Clone(x))
		if ferr != nil {
			return nil, fmt.Errorf("quadrature: integrand at node %d: %w", i, ferr)
		}
		if !core.IsFinite(v) {
			return nil, fmt.Errorf("quadrature: integrand at node %d: %w", i, ErrNonFiniteValue)
		}
		ed.Mul(term, r.weights[i], v)
		ed.Add(sum, sum, term)
	}
	ed.Mul(sum, sum, halfWidth)
	if err = ed.Err(); err != nil {
		return nil, fmt.Errorf("quadrature: accumulate: %w", err)
	}
	return sum, nil
}

// Coefficients returns deep copies of the nodes and weights backing the
// order's rule at the context's precision. Nodes are ascending and exactly
// symmetric about 0; weights are positive, mirrored, and sum to 2 up to
// context rounding.
func Coefficients(ctx *core.Context, order int) (nodes, weights []*apd.Decimal, err error) {
	if ctx == nil {
		return nil, nil, ErrNilContext
	}
	if order != Order5 && order != Order10 {
		return nil, nil, fmt.Errorf("quadrature: order %d: %w", order, ErrUnsupportedOrder)
	}
	r, err := ruleFor(ctx, order)
	if err != nil {
		return nil, nil, err
	}
	nodes = make([]*apd.Decimal, len(r.nodes))
	weights = make([]*apd.Decimal, len(r.weights))
	for i := range r.nodes {
		nodes[i] = core.Clone(r.nodes[i])
		weights[i] = core.Clone(r.weights[i])
	}
	return nodes, weights, nil
}
