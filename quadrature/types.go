// SPDX-License-Identifier: MIT

// Package quadrature: types.go — supported orders, the integrand contract,
// and sentinel errors.

package quadrature

import (
	"errors"

	"github.com/cockroachdb/apd/v3"
)

// Supported Gauss-Legendre rule orders.
const (
	Order5  = 5
	Order10 = 10
)

// guardDigits is the extra working precision the rule builder adds on top
// of the target context while refining Legendre roots, so that rounding the
// final coefficients into the target precision leaves no visible noise.
const guardDigits = 10

// rootIterationBudget bounds Newton refinement of one Legendre root.
// Convergence is quadratic from the float64 seed, so the budget is loose.
const rootIterationBudget = 64

// Integrand is the single-variable function Evaluate integrates. The
// parameter passed in is a private copy; implementations may keep or
// mutate it freely.
type Integrand func(t *apd.Decimal) (*apd.Decimal, error)

var (
	// ErrNilContext is returned when Evaluate is called without a context.
	ErrNilContext = errors.New("quadrature: context is nil")

	// ErrNilIntegrand is returned when Evaluate is called without an integrand.
	ErrNilIntegrand = errors.New("quadrature: integrand is nil")

	// ErrUnsupportedOrder is returned for any order other than 5 or 10.
	ErrUnsupportedOrder = errors.New("quadrature: unsupported rule order")

	// ErrBadInterval is returned when an interval bound is nil or not finite.
	ErrBadInterval = errors.New("quadrature: interval bounds must be finite decimals")

	// ErrNonFiniteValue is returned when the integrand produces nil, NaN or
	// ±Inf — a defect in the caller-supplied function, not in the rule.
	ErrNonFiniteValue = errors.New("quadrature: integrand returned a non-finite value")

	// ErrRootDivergence is returned if a Legendre root fails to settle
	// within the iteration budget. It indicates a broken seed, not user error.
	ErrRootDivergence = errors.New("quadrature: Legendre root refinement did not converge")
)
