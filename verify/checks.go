// SPDX-License-Identifier: MIT

// Package verify: checks.go — the five independent cross-checks.

package verify

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/bezarc/arclen"
	"github.com/katalvlaran/bezarc/core"
)

// Bounds checks the Bezier majorization property: a curve is at least as
// long as its chord and no longer than its control polygon.
func Bounds(c *core.Curve, opts ...Option) (BoundsReport, error) {
	if c == nil {
		return BoundsReport{}, ErrNilCurve
	}
	ctx := c.Context()
	o, err := resolve(ctx, opts...)
	if err != nil {
		return BoundsReport{}, err
	}

	arc, err := arclen.Length(c)
	if err != nil {
		return BoundsReport{}, fmt.Errorf("verify: arc length: %w", err)
	}
	chord, err := c.ChordLength()
	if err != nil {
		return BoundsReport{}, fmt.Errorf("verify: chord length: %w", err)
	}
	poly, err := c.PolygonLength()
	if err != nil {
		return BoundsReport{}, fmt.Errorf("verify: polygon length: %w", err)
	}

	rep := BoundsReport{Chord: chord, Arc: arc, Polygon: poly}
	ed := apd.MakeErrDecimal(ctx.Base())
	excess := new(apd.Decimal)
	ed.Sub(excess, chord, arc)
	if excess.Cmp(o.Tolerance) > 0 {
		rep.Errors = append(rep.Errors,
			fmt.Sprintf("chord length %s exceeds arc length %s", chord, arc))
	}
	ed.Sub(excess, arc, poly)
	if excess.Cmp(o.Tolerance) > 0 {
		rep.Errors = append(rep.Errors,
			fmt.Sprintf("arc length %s exceeds control polygon length %s", arc, poly))
	}
	if err = ed.Err(); err != nil {
		return BoundsReport{}, fmt.Errorf("verify: bounds comparison: %w", err)
	}
	rep.Valid = len(rep.Errors) == 0
	return rep, nil
}

// Subdivision compares the quadrature length against a uniform chord-sum
// over Samples pieces. Any chord approximation undershoots the true
// length, so the arc must dominate the sum up to the tolerance.
func Subdivision(c *core.Curve, opts ...Option) (SubdivisionReport, error) {
	if c == nil {
		return SubdivisionReport{}, ErrNilCurve
	}
	ctx := c.Context()
	o, err := resolve(ctx, opts...)
	if err != nil {
		return SubdivisionReport{}, err
	}

	arc, err := arclen.Length(c)
	if err != nil {
		return SubdivisionReport{}, fmt.Errorf("verify: arc length: %w", err)
	}

	ed := apd.MakeErrDecimal(ctx.Base())
	sum := new(apd.Decimal)
	prev, err := c.Eval(ctx.New(0))
	if err != nil {
		return SubdivisionReport{}, fmt.Errorf("verify: chord sum: %w", err)
	}
	for i := 1; i <= o.Samples; i++ {
		ti, qerr := ctx.Quotient(int64(i), int64(o.Samples))
		if qerr != nil {
			return SubdivisionReport{}, qerr
		}
		p, eerr := c.Eval(ti)
		if eerr != nil {
			return SubdivisionReport{}, fmt.Errorf("verify: chord sum: %w", eerr)
		}
		d, derr := core.Distance(ctx, prev, p)
		if derr != nil {
			return SubdivisionReport{}, fmt.Errorf("verify: chord sum: %w", derr)
		}
		ed.Add(sum, sum, d)
		prev = p
	}
	if err = ed.Err(); err != nil {
		return SubdivisionReport{}, fmt.Errorf("verify: chord sum: %w", err)
	}

	rep := SubdivisionReport{Arc: arc, ChordSum: sum, Samples: o.Samples}
	excess := new(apd.Decimal)
	ed.Sub(excess, sum, arc)
	if err = ed.Err(); err != nil {
		return SubdivisionReport{}, fmt.Errorf("verify: chord comparison: %w", err)
	}
	if excess.Cmp(o.Tolerance) > 0 {
		rep.Errors = append(rep.Errors,
			fmt.Sprintf("chord sum %s exceeds arc length %s", sum, arc))
	}
	rep.Valid = len(rep.Errors) == 0
	return rep, nil
}

// Additivity checks Length(0,t) + Length(t,1) against Length(0,1).
func Additivity(c *core.Curve, t *apd.Decimal, opts ...Option) (AdditivityReport, error) {
	if c == nil {
		return AdditivityReport{}, ErrNilCurve
	}
	ctx := c.Context()
	o, err := resolve(ctx, opts...)
	if err != nil {
		return AdditivityReport{}, err
	}
	zero, one := ctx.New(0), ctx.New(1)
	if !core.IsFinite(t) || t.Sign() < 0 || t.Cmp(one) > 0 {
		return AdditivityReport{}, ErrBadParam
	}

	head, err := arclen.Length(c, arclen.WithRange(zero, t))
	if err != nil {
		return AdditivityReport{}, fmt.Errorf("verify: head length: %w", err)
	}
	tail, err := arclen.Length(c, arclen.WithRange(t, one))
	if err != nil {
		return AdditivityReport{}, fmt.Errorf("verify: tail length: %w", err)
	}
	whole, err := arclen.Length(c)
	if err != nil {
		return AdditivityReport{}, fmt.Errorf("verify: whole length: %w", err)
	}

	ed := apd.MakeErrDecimal(ctx.Base())
	gap := new(apd.Decimal)
	ed.Add(gap, head, tail)
	ed.Sub(gap, gap, whole)
	ed.Abs(gap, gap)
	if err = ed.Err(); err != nil {
		return AdditivityReport{}, fmt.Errorf("verify: additivity gap: %w", err)
	}

	rep := AdditivityReport{Head: head, Tail: tail, Whole: whole, Gap: gap}
	if gap.Cmp(o.Tolerance) > 0 {
		rep.Errors = append(rep.Errors,
			fmt.Sprintf("split at %s: %s + %s differs from %s by %s", t, head, tail, whole, gap))
	}
	rep.Valid = len(rep.Errors) == 0
	return rep, nil
}

// Roundtrip solves length → parameter and integrates back. Valid judges
// the reproduction gap; the solver's convergence is reported alongside so
// callers can distinguish an inaccurate answer from an unconverged one.
func Roundtrip(c *core.Curve, target *apd.Decimal, opts ...Option) (RoundtripReport, error) {
	if c == nil {
		return RoundtripReport{}, ErrNilCurve
	}
	ctx := c.Context()
	o, err := resolve(ctx, opts...)
	if err != nil {
		return RoundtripReport{}, err
	}
	if !core.IsFinite(target) || target.Sign() < 0 {
		return RoundtripReport{}, ErrBadTarget
	}

	res, err := arclen.Inverse(c, target)
	if err != nil {
		return RoundtripReport{}, fmt.Errorf("verify: inverse solve: %w", err)
	}
	recovered, err := arclen.Length(c, arclen.WithRange(ctx.New(0), res.T))
	if err != nil {
		return RoundtripReport{}, fmt.Errorf("verify: recovered length: %w", err)
	}

	ed := apd.MakeErrDecimal(ctx.Base())
	gap := new(apd.Decimal)
	ed.Sub(gap, recovered, target)
	ed.Abs(gap, gap)
	if err = ed.Err(); err != nil {
		return RoundtripReport{}, fmt.Errorf("verify: roundtrip gap: %w", err)
	}

	rep := RoundtripReport{
		Target:     core.Clone(target),
		T:          res.T,
		Recovered:  recovered,
		Gap:        gap,
		Converged:  res.Converged,
		Iterations: res.Iterations,
	}
	if gap.Cmp(o.Tolerance) > 0 {
		rep.Errors = append(rep.Errors,
			fmt.Sprintf("roundtrip of %s recovered %s, gap %s over tolerance %s",
				target, recovered, gap, o.Tolerance))
	}
	rep.Valid = len(rep.Errors) == 0
	return rep, nil
}

// Table checks a built lookup table: boundary rows, monotonicity, the
// stored total against a direct recomputation, and the lookup roundtrip
// at the quarter fractions, bounded by two rows' worth of length.
func Table(tb *arclen.Table, opts ...Option) (TableReport, error) {
	if tb == nil {
		return TableReport{}, ErrNilTable
	}
	ctx := tb.Curve().Context()
	o, err := resolve(ctx, opts...)
	if err != nil {
		return TableReport{}, err
	}

	rep := TableReport{Total: tb.Total()}
	ed := apd.MakeErrDecimal(ctx.Base())

	// 1) Boundary rows (0,0) and (1,total).
	first, err := tb.At(0)
	if err != nil {
		return TableReport{}, err
	}
	if !first.T.IsZero() || !first.Cumulative.IsZero() {
		rep.Errors = append(rep.Errors,
			fmt.Sprintf("first row (%s,%s) is not (0,0)", first.T, first.Cumulative))
	}
	rep.Checked++
	last, err := tb.At(tb.Len() - 1)
	if err != nil {
		return TableReport{}, err
	}
	if last.T.Cmp(ctx.New(1)) != 0 || last.Cumulative.Cmp(rep.Total) != 0 {
		rep.Errors = append(rep.Errors,
			fmt.Sprintf("last row (%s,%s) is not (1,%s)", last.T, last.Cumulative, rep.Total))
	}
	rep.Checked++

	// 2) Parameters ascend, cumulative lengths never decrease.
	prev := first
	for i := 1; i < tb.Len(); i++ {
		row, aerr := tb.At(i)
		if aerr != nil {
			return TableReport{}, aerr
		}
		if row.T.Cmp(prev.T) <= 0 {
			rep.Errors = append(rep.Errors,
				fmt.Sprintf("row %d: parameter %s does not ascend past %s", i, row.T, prev.T))
		}
		if row.Cumulative.Cmp(prev.Cumulative) < 0 {
			rep.Errors = append(rep.Errors,
				fmt.Sprintf("row %d: cumulative %s decreases below %s", i, row.Cumulative, prev.Cumulative))
		}
		rep.Checked++
		prev = row
	}

	// 3) Stored total against a direct recomputation.
	direct, err := arclen.Length(tb.Curve())
	if err != nil {
		return TableReport{}, fmt.Errorf("verify: direct length: %w", err)
	}
	rep.Direct = direct
	gap := new(apd.Decimal)
	ed.Sub(gap, rep.Total, direct)
	ed.Abs(gap, gap)
	if err = ed.Err(); err != nil {
		return TableReport{}, fmt.Errorf("verify: total comparison: %w", err)
	}
	if gap.Cmp(o.Tolerance) > 0 {
		rep.Errors = append(rep.Errors,
			fmt.Sprintf("table total %s differs from direct length %s by %s", rep.Total, direct, gap))
	}
	rep.Checked++

	// 4) Lookup roundtrip at ¼, ½, ¾ of the total, within two rows of
	//    length error.
	bound := new(apd.Decimal)
	ed.Quo(bound, rep.Total, apd.New(int64(tb.Len()-1), 0))
	ed.Mul(bound, bound, apd.New(2, 0))
	if err = ed.Err(); err != nil {
		return TableReport{}, fmt.Errorf("verify: lookup bound: %w", err)
	}
	for _, fr := range []struct{ num, den int64 }{{1, 4}, {1, 2}, {3, 4}} {
		share, qerr := ctx.Quotient(fr.num, fr.den)
		if qerr != nil {
			return TableReport{}, qerr
		}
		target := new(apd.Decimal)
		ed.Mul(target, rep.Total, share)
		if err = ed.Err(); err != nil {
			return TableReport{}, fmt.Errorf("verify: lookup target: %w", err)
		}
		approx, terr := tb.T(target)
		if terr != nil {
			return TableReport{}, fmt.Errorf("verify: lookup: %w", terr)
		}
		recovered, lerr := arclen.Length(tb.Curve(), arclen.WithRange(ctx.New(0), approx))
		if lerr != nil {
			return TableReport{}, fmt.Errorf("verify: lookup roundtrip: %w", lerr)
		}
		ed.Sub(gap, recovered, target)
		ed.Abs(gap, gap)
		if err = ed.Err(); err != nil {
			return TableReport{}, fmt.Errorf("verify: lookup gap: %w", err)
		}
		if gap.Cmp(bound) > 0 {
			rep.Errors = append(rep.Errors,
				fmt.Sprintf("lookup at %d/%d of total: gap %s over bound %s", fr.num, fr.den, gap, bound))
		}
		rep.Checked++
	}

	rep.Valid = len(rep.Errors) == 0
	return rep, nil
}
