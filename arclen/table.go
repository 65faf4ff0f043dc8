// SPDX-License-Identifier: MIT

// Package arclen: table.go — the cumulative-length lookup table.

package arclen

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/bezarc/core"
)

// Sample is one (parameter, cumulative length) row of a Table.
type Sample struct {
	// T is the row's parameter in [0,1].
	T *apd.Decimal

	// Cumulative is the arc length from 0 to T.
	Cumulative *apd.Decimal
}

// Table is a precomputed monotonic arc length table over one curve.
// Rows sit at uniform parameters i/n for i = 0..n; cumulative lengths are
// non-decreasing, opening at (0,0) and closing at (1,total). A built
// table is immutable and safe for concurrent readers.
type Table struct {
	curve   *core.Curve
	samples []Sample
	total   *apd.Decimal
}

// NewTable integrates the curve once per sub-interval and accumulates the
// rows. sampleCount is the number of sub-intervals, at least 2 so a lookup
// always has a bracketing pair; the table holds sampleCount+1 rows.
func NewTable(c *core.Curve, sampleCount int, opts ...Option) (*Table, error) {
	if c == nil {
		return nil, ErrNilCurve
	}
	if sampleCount < 2 {
		return nil, fmt.Errorf("arclen: got %d: %w", sampleCount, ErrBadSampleCount)
	}
	ctx := c.Context()
	o, err := resolveOptions(ctx, opts...)
	if err != nil {
		return nil, err
	}

	ed := apd.MakeErrDecimal(ctx.Base())
	samples := make([]Sample, sampleCount+1)
	samples[0] = Sample{T: ctx.New(0), Cumulative: new(apd.Decimal)}
	running := new(apd.Decimal)
	prev := ctx.New(0)
	for i := 1; i <= sampleCount; i++ {
		ti, qerr := ctx.Quotient(int64(i), int64(sampleCount))
		if qerr != nil {
			return nil, qerr
		}
		seg, lerr := lengthWith(c, prev, ti, o)
		if lerr != nil {
			return nil, fmt.Errorf("arclen: table row %d: %w", i, lerr)
		}
		ed.Add(running, running, seg)
		if err = ed.Err(); err != nil {
			return nil, fmt.Errorf("arclen: table row %d: %w", i, err)
		}
		samples[i] = Sample{T: ti, Cumulative: core.Clone(running)}
		prev = ti
	}
	return &Table{curve: c, samples: samples, total: core.Clone(running)}, nil
}

// Curve returns the curve the table was built from.
func (tb *Table) Curve() *core.Curve {
	return tb.curve
}

// Total returns a copy of the cumulative length at t=1.
func (tb *Table) Total() *apd.Decimal {
	return core.Clone(tb.total)
}

// Len returns the number of rows, sampleCount+1.
func (tb *Table) Len() int {
	return len(tb.samples)
}

// At returns a copy of row i.
func (tb *Table) At(i int) (Sample, error) {
	if i < 0 || i >= len(tb.samples) {
		return Sample{}, fmt.Errorf("arclen: row %d of %d: %w", i, len(tb.samples), ErrBadIndex)
	}
	row := tb.samples[i]
	return Sample{T: core.Clone(row.T), Cumulative: core.Clone(row.Cumulative)}, nil
}

// T approximates the parameter whose prefix length is target. Targets at
// or below 0 return 0 and targets at or beyond the total return 1 without
// searching; anything else binary-searches the bracketing row pair and
// interpolates linearly between them. A flat bracket, where the length
// barely advances across a cusp, splits the parameter gap instead of
// dividing by the zero length span.
func (tb *Table) T(target *apd.Decimal) (*apd.Decimal, error) {
	ctx := tb.curve.Context()
	if !core.IsFinite(target) {
		return nil, ErrBadTarget
	}
	if target.Sign() <= 0 {
		return ctx.New(0), nil
	}
	if target.Cmp(tb.total) >= 0 {
		return ctx.New(1), nil
	}

	// 1) Narrow [lo,hi] to adjacent rows around the target.
	lo, hi := 0, len(tb.samples)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if tb.samples[mid].Cumulative.Cmp(target) <= 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	a, b := tb.samples[lo], tb.samples[hi]

	// 2) Interpolate within the bracket.
	ed := apd.MakeErrDecimal(ctx.Base())
	span := new(apd.Decimal)
	ed.Sub(span, b.Cumulative, a.Cumulative)
	t := new(apd.Decimal)
	if span.IsZero() {
		ed.Add(t, a.T, b.T)
		ed.Quo(t, t, two)
	} else {
		frac := new(apd.Decimal)
		ed.Sub(frac, target, a.Cumulative)
		ed.Quo(frac, frac, span)
		ed.Sub(t, b.T, a.T)
		ed.Mul(t, t, frac)
		ed.Add(t, a.T, t)
	}
	if err := ed.Err(); err != nil {
		return nil, fmt.Errorf("arclen: table lookup: %w", err)
	}
	return t, nil
}

// TRefined runs T for the fast approximation, then feeds it to the inverse
// solver as the initial guess for a full-precision answer. O(log n) to get
// close, Newton to finish.
func (tb *Table) TRefined(target *apd.Decimal, opts ...Option) (Result, error) {
	approx, err := tb.T(target)
	if err != nil {
		return Result{}, err
	}
	o, err := resolveOptions(tb.curve.Context(), opts...)
	if err != nil {
		return Result{}, err
	}
	o.InitialGuess = approx
	return solve(tb.curve, target, o)
}
