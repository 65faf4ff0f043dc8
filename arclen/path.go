// SPDX-License-Identifier: MIT

// Package arclen: path.go — multi-segment stitching.

package arclen

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/bezarc/core"
)

// PathPosition locates a global arc length target on a segment sequence.
type PathPosition struct {
	// SegmentIndex is the segment that holds the located point.
	SegmentIndex int

	// T is the local parameter on that segment.
	T *apd.Decimal

	// Length is the cumulative arc length from the path start to the
	// located point, so walking Length along the path lands on (Segment,T).
	Length *apd.Decimal

	// Converged mirrors the residual solve on the owning segment; a
	// target beyond the path total clamps to the last endpoint and
	// reports true unless the whole path is degenerate.
	Converged bool
}

// PathLength returns the sum of the full arc lengths of all segments.
// Segments are independent curves; arithmetic across them runs in the
// first segment's context.
func PathLength(segments []*core.Curve, opts ...Option) (*apd.Decimal, error) {
	if len(segments) == 0 {
		return nil, ErrEmptyPath
	}
	for _, s := range segments {
		if s == nil {
			return nil, ErrNilSegment
		}
	}
	ctx := segments[0].Context()
	o, err := resolveOptions(ctx, opts...)
	if err != nil {
		return nil, err
	}

	ed := apd.MakeErrDecimal(ctx.Base())
	zero, one := ctx.New(0), ctx.New(1)
	total := new(apd.Decimal)
	for i, s := range segments {
		l, lerr := lengthWith(s, zero, one, o)
		if lerr != nil {
			return nil, fmt.Errorf("arclen: segment %d: %w", i, lerr)
		}
		ed.Add(total, total, l)
	}
	if err = ed.Err(); err != nil {
		return nil, fmt.Errorf("arclen: path sum: %w", err)
	}
	return total, nil
}

// PathInverse walks cumulative segment lengths until they reach target,
// then solves the residual on the owning segment. A target beyond the
// path total clamps to the last segment at t=1.
func PathInverse(segments []*core.Curve, target *apd.Decimal, opts ...Option) (PathPosition, error) {
	if len(segments) == 0 {
		return PathPosition{}, ErrEmptyPath
	}
	for _, s := range segments {
		if s == nil {
			return PathPosition{}, ErrNilSegment
		}
	}
	ctx := segments[0].Context()
	o, err := resolveOptions(ctx, opts...)
	if err != nil {
		return PathPosition{}, err
	}
	if !core.IsFinite(target) || target.Sign() < 0 {
		return PathPosition{}, ErrBadTarget
	}

	ed := apd.MakeErrDecimal(ctx.Base())
	zero, one := ctx.New(0), ctx.New(1)
	accumulated := new(apd.Decimal)
	reach := new(apd.Decimal)
	for i, s := range segments {
		segLen, lerr := lengthWith(s, zero, one, o)
		if lerr != nil {
			return PathPosition{}, fmt.Errorf("arclen: segment %d: %w", i, lerr)
		}
		ed.Add(reach, accumulated, segLen)
		if err = ed.Err(); err != nil {
			return PathPosition{}, fmt.Errorf("arclen: path walk: %w", err)
		}
		if reach.Cmp(target) >= 0 {
			// The target lands on this segment; solve its residual.
			// The guess heuristic restarts per segment.
			residual := new(apd.Decimal)
			ed.Sub(residual, target, accumulated)
			if err = ed.Err(); err != nil {
				return PathPosition{}, fmt.Errorf("arclen: residual: %w", err)
			}
			so := o
			so.InitialGuess = nil
			res, serr := solve(s, residual, so)
			if serr != nil {
				return PathPosition{}, fmt.Errorf("arclen: segment %d: %w", i, serr)
			}
			length := new(apd.Decimal)
			ed.Add(length, accumulated, res.Length)
			if err = ed.Err(); err != nil {
				return PathPosition{}, fmt.Errorf("arclen: path position: %w", err)
			}
			return PathPosition{
				SegmentIndex: i,
				T:            res.T,
				Length:       length,
				Converged:    res.Converged,
			}, nil
		}
		accumulated.Set(reach)
	}

	// Beyond the whole path; only a positive target on a fully
	// degenerate path reaches here unserved, and that reports false.
	return PathPosition{
		SegmentIndex: len(segments) - 1,
		T:            ctx.New(1),
		Length:       core.Clone(accumulated),
		Converged:    !accumulated.IsZero(),
	}, nil
}
