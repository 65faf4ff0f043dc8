// SPDX-License-Identifier: MIT

// Package quadrature: legendre.go — building and caching Gauss-Legendre
// rules at arbitrary decimal precision.
//
// Roots of the Legendre polynomial Pₙ are all simple and interior to
// (−1,1), and the Chebyshev-angle estimate cos(π(i−¼)/(n+½)) lands inside
// every root's Newton basin, so refinement is unconditionally stable.

package quadrature

import (
	"fmt"
	"math"
	"sync"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/bezarc/core"
)

// one and two are shared read-only constants; they are never used as an
// operation destination.
var (
	one = apd.New(1, 0)
	two = apd.New(2, 0)
)

// rule holds the coefficients of one (precision, order) pair. The slices
// and their decimals are read-only once the rule enters the cache.
type rule struct {
	nodes   []*apd.Decimal // ascending in (−1,1), exactly symmetric
	weights []*apd.Decimal // positive, mirrored, summing to 2
}

type ruleKey struct {
	precision uint32
	order     int
}

var (
	ruleMu    sync.RWMutex
	ruleCache = make(map[ruleKey]*rule)
)

// ruleFor returns the cached rule for the context's precision, building it
// on first use. Concurrent first callers may both build; they produce
// identical coefficients, so the last write wins harmlessly.
func ruleFor(ctx *core.Context, order int) (*rule, error) {
	key := ruleKey{precision: ctx.Precision(), order: order}
	ruleMu.RLock()
	r, ok := ruleCache[key]
	ruleMu.RUnlock()
	if ok {
		return r, nil
	}
	r, err := buildRule(ctx.Precision(), order)
	if err != nil {
		return nil, err
	}
	ruleMu.Lock()
	ruleCache[key] = r
	ruleMu.Unlock()
	return r, nil
}

// buildRule computes the order-point Gauss-Legendre rule at the given
// significant-digit precision.
//
//  1. Seed each positive root with the float64 Chebyshev-angle estimate.
//  2. Newton-refine the seed in decimal at precision+guardDigits.
//  3. Derive the weight wᵢ = 2/((1−xᵢ²)·P′ₙ(xᵢ)²).
//  4. Round both into the target precision and mirror them onto the
//     negative half by exact negation; odd orders get a middle node at
//     exactly 0 with its own weight.
func buildRule(precision uint32, order int) (*rule, error) {
	work := apd.BaseContext.WithPrecision(precision + guardDigits)
	target := apd.BaseContext.WithPrecision(precision)

	// Newton steps below this magnitude mean the root is settled to the
	// working precision (minus slack for rounding noise at the floor).
	thresh := apd.New(1, -int32(precision)-int32(guardDigits)+2)

	nodes := make([]*apd.Decimal, order)
	weights := make([]*apd.Decimal, order)

	for k := 0; k < order/2; k++ {
		// 1) Seed the k-th largest positive root.
		angle := math.Pi * (float64(k+1) - 0.25) / (float64(order) + 0.5)
		root := new(apd.Decimal)
		if _, err := root.SetFloat64(math.Cos(angle)); err != nil {
			return nil, fmt.Errorf("quadrature: seed root %d of order %d: %w", k, order, err)
		}
		// 2) Refine.
		if err := refineRoot(work, root, order, thresh); err != nil {
			return nil, err
		}
		// 3) Weight at the refined root.
		w, err := weightAt(work, root, order)
		if err != nil {
			return nil, err
		}
		// 4) Round into the target precision, then mirror exactly.
		node, err := roundInto(target, root)
		if err != nil {
			return nil, err
		}
		weight, err := roundInto(target, w)
		if err != nil {
			return nil, err
		}
		nodes[order-1-k] = node
		nodes[k] = new(apd.Decimal).Neg(node)
		weights[order-1-k] = weight
		weights[k] = core.Clone(weight)
	}

	if order%2 == 1 {
		mid := order / 2
		w, err := weightAt(work, new(apd.Decimal), order)
		if err != nil {
			return nil, err
		}
		weight, err := roundInto(target, w)
		if err != nil {
			return nil, err
		}
		nodes[mid] = new(apd.Decimal) // exactly zero
		weights[mid] = weight
	}

	return &rule{nodes: nodes, weights: weights}, nil
}

// refineRoot iterates x ← x − Pₙ(x)/P′ₙ(x) in place until the step falls
// below thresh.
func refineRoot(work *apd.Context, x *apd.Decimal, order int, thresh *apd.Decimal) error {
	ed := apd.MakeErrDecimal(work)
	pn := new(apd.Decimal)
	pn1 := new(apd.Decimal)
	deriv := new(apd.Decimal)
	step := new(apd.Decimal)
	for iter := 0; iter < rootIterationBudget; iter++ {
		legendrePair(&ed, pn, pn1, x, order)
		legendreDeriv(&ed, deriv, pn, pn1, x, order)
		ed.Quo(step, pn, deriv)
		ed.Sub(x, x, step)
		ed.Abs(step, step)
		if err := ed.Err(); err != nil {
			return fmt.Errorf("quadrature: refine root of order %d: %w", order, err)
		}
		if step.Cmp(thresh) < 0 {
			return nil
		}
	}
	return fmt.Errorf("quadrature: order %d: %w", order, ErrRootDivergence)
}

// legendrePair evaluates Pₙ and Pₙ₋₁ at x through the three-term
// recurrence (k+1)·P₊ = (2k+1)·x·Pₖ − k·Pₖ₋₁.
func legendrePair(ed *apd.ErrDecimal, pn, pn1, x *apd.Decimal, order int) {
	// prev = P₀ = 1, cur = P₁ = x.
	prev := apd.New(1, 0)
	cur := new(apd.Decimal).Set(x)
	ta, tb := new(apd.Decimal), new(apd.Decimal)
	for k := 1; k < order; k++ {
		ed.Mul(ta, x, cur)
		ed.Mul(ta, ta, apd.New(int64(2*k+1), 0))
		ed.Mul(tb, prev, apd.New(int64(k), 0))
		ed.Sub(ta, ta, tb)
		ed.Quo(ta, ta, apd.New(int64(k+1), 0))
		prev.Set(cur)
		cur.Set(ta)
	}
	pn.Set(cur)
	pn1.Set(prev)
}

// legendreDeriv evaluates P′ₙ(x) = n·(x·Pₙ − Pₙ₋₁)/(x²−1); valid for
// |x| < 1, which holds at every interior Legendre root and at 0.
func legendreDeriv(ed *apd.ErrDecimal, deriv, pn, pn1, x *apd.Decimal, order int) {
	num := new(apd.Decimal)
	den := new(apd.Decimal)
	ed.Mul(num, x, pn)
	ed.Sub(num, num, pn1)
	ed.Mul(num, num, apd.New(int64(order), 0))
	ed.Mul(den, x, x)
	ed.Sub(den, den, one)
	ed.Quo(deriv, num, den)
}

// weightAt computes 2/((1−x²)·P′ₙ(x)²) at working precision.
func weightAt(work *apd.Context, x *apd.Decimal, order int) (*apd.Decimal, error) {
	ed := apd.MakeErrDecimal(work)
	pn, pn1 := new(apd.Decimal), new(apd.Decimal)
	legendrePair(&ed, pn, pn1, x, order)
	deriv := new(apd.Decimal)
	legendreDeriv(&ed, deriv, pn, pn1, x, order)
	w := new(apd.Decimal)
	ed.Mul(w, x, x)
	ed.Sub(w, one, w)
	ed.Mul(deriv, deriv, deriv)
	ed.Mul(w, w, deriv)
	ed.Quo(w, two, w)
	if err := ed.Err(); err != nil {
		return nil, fmt.Errorf("quadrature: weight of order %d: %w", order, err)
	}
	return w, nil
}

// roundInto rounds d into a fresh decimal at the target context precision.
func roundInto(target *apd.Context, d *apd.Decimal) (*apd.Decimal, error) {
	out := new(apd.Decimal)
	if _, err := target.Round(out, d); err != nil {
		return nil, fmt.Errorf("quadrature: round coefficient: %w", err)
	}
	return out, nil
}
