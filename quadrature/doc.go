// SPDX-License-Identifier: MIT

// Package quadrature implements fixed-order Gauss-Legendre integration over
// a single interval, at the precision of the caller's core.Context.
//
// # What
//
// Two rule orders are supported, 5 and 10. Evaluate approximates ∫ₐᵇ f by
// mapping the rule's nodes from [−1,1] onto [a,b]:
//
//	halfWidth = (b−a)/2
//	center    = (a+b)/2
//	sum       = Σ weightᵢ · f(center + halfWidth·nodeᵢ)
//	result    = sum · halfWidth
//
// A zero-width interval is exactly zero and f is never invoked for it. The
// interval is oriented: swapping a and b negates the result.
//
// # Why computed coefficients
//
// Published node/weight tables carry 16-ish digits — useless to a 50-digit
// context. Instead, the rule for a given (precision, order) pair is built on
// first use: each positive Legendre root is seeded with the float64
// Chebyshev-angle estimate and Newton-refined in decimal arithmetic at
// precision+10 guard digits, weights follow from wᵢ = 2/((1−xᵢ²)·P′ₙ(xᵢ)²),
// and the negative half is mirrored by exact negation (odd orders pin their
// middle node at exactly 0). Built rules are cached per (precision, order)
// behind an RWMutex and never mutated afterwards.
//
// Newton on Legendre roots converges quadratically, so even very high
// precisions settle in a handful of iterations; the order-5 closed forms
// serve as an independent cross-check in the tests.
//
// # Contract
//
//	Evaluate(ctx, f, a, b, order) (*apd.Decimal, error)
//	Coefficients(ctx, order)     (nodes, weights []*apd.Decimal, error)
//
// Errors are sentinels: ErrUnsupportedOrder for order ∉ {5,10},
// ErrNonFiniteValue when f yields nil/NaN/±Inf (a defect in the supplied
// integrand, not in this package), ErrBadInterval for non-finite bounds.
// Complexity: one Evaluate costs `order` integrand calls plus O(order)
// decimal operations; rule construction is O(order²·iterations) decimal
// operations, paid once per (precision, order).
package quadrature
