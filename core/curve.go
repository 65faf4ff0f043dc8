// SPDX-License-Identifier: MIT

// Package core: curve.go — de Casteljau evaluation, derivatives, and the
// two polygon measures bracketing arc length.

package core

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Eval returns the curve point at parameter t using the de Casteljau
// scheme, which stays numerically stable at any degree. Parameters outside
// [0,1] evaluate the polynomial extension of the curve.
//
// Complexity: O(n²) decimal operations for n control points.
func (c *Curve) Eval(t *apd.Decimal) (Point, error) {
	if err := checkParam(t); err != nil {
		return Point{}, err
	}
	return c.casteljau(c.points, t)
}

// Derivative returns the order-th derivative vector at t. The k-th
// hodograph control points are the k-fold forward differences scaled by
// the falling degree factors n(n−1)…(n−k+1); orders beyond the degree are
// identically the zero vector.
func (c *Curve) Derivative(t *apd.Decimal, order int) (Point, error) {
	if order < 1 {
		return Point{}, fmt.Errorf("core: derivative order %d: %w", order, ErrBadOrder)
	}
	if err := checkParam(t); err != nil {
		return Point{}, err
	}
	if order > c.Degree() {
		return Point{X: new(apd.Decimal), Y: new(apd.Decimal)}, nil
	}
	// Build the order-th hodograph: each pass differences the points and
	// scales by the current degree.
	ed := apd.MakeErrDecimal(c.ctx.base)
	pts := c.points
	for k := 0; k < order; k++ {
		scale := apd.New(int64(len(pts)-1), 0)
		next := make([]Point, len(pts)-1)
		for i := 0; i+1 < len(pts); i++ {
			x, y := new(apd.Decimal), new(apd.Decimal)
			ed.Sub(x, pts[i+1].X, pts[i].X)
			ed.Mul(x, x, scale)
			ed.Sub(y, pts[i+1].Y, pts[i].Y)
			ed.Mul(y, y, scale)
			next[i] = Point{X: x, Y: y}
		}
		pts = next
	}
	if err := ed.Err(); err != nil {
		return Point{}, fmt.Errorf("core: hodograph: %w", err)
	}
	return c.casteljau(pts, t)
}

// ChordLength returns the straight-line distance between the first and
// last control points — a lower bound on the arc length.
func (c *Curve) ChordLength() (*apd.Decimal, error) {
	return Distance(c.ctx, c.points[0], c.points[len(c.points)-1])
}

// PolygonLength returns the control-polygon circumference, the sum of
// consecutive control-point distances — an upper bound on the arc length.
func (c *Curve) PolygonLength() (*apd.Decimal, error) {
	ed := apd.MakeErrDecimal(c.ctx.base)
	total := new(apd.Decimal)
	for i := 0; i+1 < len(c.points); i++ {
		d, err := Distance(c.ctx, c.points[i], c.points[i+1])
		if err != nil {
			return nil, err
		}
		ed.Add(total, total, d)
	}
	if err := ed.Err(); err != nil {
		return nil, fmt.Errorf("core: polygon length: %w", err)
	}
	return total, nil
}

// Distance returns the Euclidean distance between two points under ctx.
func Distance(ctx *Context, p, q Point) (*apd.Decimal, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if p.X == nil || p.Y == nil || q.X == nil || q.Y == nil {
		return nil, ErrNilCoordinate
	}
	ed := apd.MakeErrDecimal(ctx.base)
	dx, dy := new(apd.Decimal), new(apd.Decimal)
	ed.Sub(dx, q.X, p.X)
	ed.Mul(dx, dx, dx)
	ed.Sub(dy, q.Y, p.Y)
	ed.Mul(dy, dy, dy)
	ed.Add(dx, dx, dy)
	ed.Sqrt(dx, dx)
	if err := ed.Err(); err != nil {
		return nil, fmt.Errorf("core: distance: %w", err)
	}
	return dx, nil
}

// casteljau runs the triangular interpolation over a working copy of pts:
// one level collapses p[i] into p[i] + t·(p[i+1]−p[i]). A single point
// (a degree-0 hodograph) is returned as-is.
func (c *Curve) casteljau(pts []Point, t *apd.Decimal) (Point, error) {
	work := make([]Point, len(pts))
	for i, p := range pts {
		work[i] = p.Clone()
	}
	ed := apd.MakeErrDecimal(c.ctx.base)
	diff := new(apd.Decimal)
	for level := len(work) - 1; level > 0; level-- {
		for i := 0; i < level; i++ {
			ed.Sub(diff, work[i+1].X, work[i].X)
			ed.Mul(diff, diff, t)
			ed.Add(work[i].X, work[i].X, diff)
			ed.Sub(diff, work[i+1].Y, work[i].Y)
			ed.Mul(diff, diff, t)
			ed.Add(work[i].Y, work[i].Y, diff)
		}
	}
	if err := ed.Err(); err != nil {
		return Point{}, fmt.Errorf("core: evaluate: %w", err)
	}
	return work[0], nil
}

// checkParam guards evaluation parameters.
func checkParam(t *apd.Decimal) error {
	if t == nil {
		return ErrNilParam
	}
	if !IsFinite(t) {
		return fmt.Errorf("core: parameter: %w", ErrNotFinite)
	}
	return nil
}
