// SPDX-License-Identifier: MIT

// Package arclen: inverse.go — the length-to-parameter solver.

package arclen

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/bezarc/core"
)

// Result reports one inverse solve.
type Result struct {
	// T is the parameter whose prefix length best matches the target.
	T *apd.Decimal

	// Length is the arc length from 0 to T, recomputed once the loop
	// settles so it is trustworthy even on a non-converged run.
	Length *apd.Decimal

	// Iterations counts the Newton/bisection passes that ran. The
	// pre-iteration shortcuts (zero target, clamp to the end) report 0.
	Iterations int

	// Converged reports whether a tolerance check stopped the loop.
	// False after budget exhaustion, and on a degenerate zero-length
	// curve asked for a positive target.
	Converged bool
}

// Inverse finds the parameter t whose arc length from 0 matches target.
// Exhausting the iteration budget is not an error; it is reported through
// Result.Converged so the caller decides whether the approximation serves.
func Inverse(c *core.Curve, target *apd.Decimal, opts ...Option) (Result, error) {
	if c == nil {
		return Result{}, ErrNilCurve
	}
	o, err := resolveOptions(c.Context(), opts...)
	if err != nil {
		return Result{}, err
	}
	return solve(c, target, o)
}

// solve runs the guarded Newton iteration with already-resolved options.
// The path and table layers call it directly to reuse their own Options.
func solve(c *core.Curve, target *apd.Decimal, o Options) (Result, error) {
	ctx := c.Context()
	if !core.IsFinite(target) || target.Sign() < 0 {
		return Result{}, ErrBadTarget
	}

	// 1) A zero target needs no machinery at all.
	if target.IsZero() {
		return Result{T: ctx.New(0), Length: new(apd.Decimal), Converged: true}, nil
	}

	// Lengths inside the solver run at their own integration tolerance.
	lo := o
	lo.Tolerance = o.LengthTolerance

	zero, one := ctx.New(0), ctx.New(1)
	total, err := lengthWith(c, zero, one, lo)
	if err != nil {
		return Result{}, err
	}

	// 2) A zero-length curve cannot reach a positive target; the end
	//    parameter is the best answer available.
	if total.IsZero() {
		return Result{T: ctx.New(1), Length: new(apd.Decimal)}, nil
	}

	// 3) At or beyond the whole length, clamp to the end.
	if target.Cmp(total) >= 0 {
		return Result{T: ctx.New(1), Length: core.Clone(total), Converged: true}, nil
	}

	eps, err := ctx.Parse(SpeedEpsilon)
	if err != nil {
		return Result{}, err
	}
	ed := apd.MakeErrDecimal(ctx.Base())

	// 4) Starting point: the caller's guess, else the uniform-speed
	//    estimate target/total. Either way clamped into [0,1].
	t := new(apd.Decimal)
	if o.InitialGuess != nil {
		t.Set(o.InitialGuess)
	} else {
		ed.Quo(t, target, total)
		if err = ed.Err(); err != nil {
			return Result{}, fmt.Errorf("arclen: initial estimate: %w", err)
		}
	}
	clamp01(t, zero, one)

	var (
		converged  bool
		iterations int
		f          = new(apd.Decimal)
		absF       = new(apd.Decimal)
		delta      = new(apd.Decimal)
		tNew       = new(apd.Decimal)
	)
	for iterations < o.MaxIterations {
		iterations++

		// 5) Residual of the prefix length against the target.
		cur, lerr := lengthWith(c, zero, t, lo)
		if lerr != nil {
			return Result{}, lerr
		}
		ed.Sub(f, cur, target)
		ed.Abs(absF, f)
		if err = ed.Err(); err != nil {
			return Result{}, fmt.Errorf("arclen: residual: %w", err)
		}
		if absF.Cmp(o.Tolerance) < 0 {
			converged = true
			break
		}

		// 6) Newton's slope is the speed at t.
		fPrime, serr := Speed(c, t)
		if serr != nil {
			return Result{}, serr
		}

		// 7) Cusp guard: with speed this small the division is
		//    meaningless, so bisect toward the end that shrinks the
		//    residual and skip the step-size check this round.
		if fPrime.Cmp(eps) < 0 {
			if f.Sign() < 0 {
				stepToward(&ed, t, one)
			} else {
				stepToward(&ed, t, zero)
			}
			if err = ed.Err(); err != nil {
				return Result{}, fmt.Errorf("arclen: bisection step: %w", err)
			}
			continue
		}

		// 8) Newton step, with out-of-domain landings replaced by a
		//    bisection half-step toward the violated endpoint.
		ed.Quo(delta, f, fPrime)
		ed.Sub(tNew, t, delta)
		switch {
		case tNew.Sign() < 0:
			stepToward(&ed, t, zero)
		case tNew.Cmp(one) > 0:
			stepToward(&ed, t, one)
		default:
			t.Set(tNew)
		}
		ed.Abs(delta, delta)
		if err = ed.Err(); err != nil {
			return Result{}, fmt.Errorf("arclen: newton step: %w", err)
		}
		if delta.Cmp(o.Tolerance) < 0 {
			converged = true
			break
		}
	}

	// 9) Report the length actually reached, converged or not.
	final, err := lengthWith(c, zero, t, lo)
	if err != nil {
		return Result{}, err
	}
	return Result{T: t, Length: final, Iterations: iterations, Converged: converged}, nil
}

// stepToward moves t half the remaining distance toward end, in place.
func stepToward(ed *apd.ErrDecimal, t, end *apd.Decimal) {
	step := new(apd.Decimal)
	ed.Sub(step, end, t)
	ed.Quo(step, step, two)
	ed.Add(t, t, step)
}

// clamp01 clamps t into [0,1] in place.
func clamp01(t, zero, one *apd.Decimal) {
	switch {
	case t.Cmp(zero) < 0:
		t.Set(zero)
	case t.Cmp(one) > 0:
		t.Set(one)
	}
}
