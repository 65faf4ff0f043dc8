// SPDX-License-Identifier: MIT

// Package core: types.go — control points and the immutable Curve.

package core

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

var (
	// ErrNilContext is returned when a curve is built without a context.
	ErrNilContext = errors.New("core: context is nil")

	// ErrTooFewPoints is returned when fewer than 2 control points are supplied.
	ErrTooFewPoints = errors.New("core: curve needs at least 2 control points")

	// ErrNilCoordinate is returned when a control point carries a nil X or Y.
	ErrNilCoordinate = errors.New("core: control point has a nil coordinate")

	// ErrNilParam is returned when a curve is evaluated at a nil parameter.
	ErrNilParam = errors.New("core: parameter is nil")

	// ErrBadOrder is returned when a derivative order below 1 is requested.
	ErrBadOrder = errors.New("core: derivative order must be at least 1")
)

// Point is an (x,y) pair of arbitrary-precision decimals. Derivative
// results reuse the type as a displacement vector.
type Point struct {
	X *apd.Decimal
	Y *apd.Decimal
}

// Clone returns a deep copy of p.
func (p Point) Clone() Point {
	return Point{X: Clone(p.X), Y: Clone(p.Y)}
}

// Curve is an immutable Bezier curve of degree Len()−1 over t ∈ [0,1],
// bound to the precision context it was normalized into. Construction is
// the only mutation; a built curve is safe for concurrent readers.
type Curve struct {
	ctx    *Context
	points []Point // normalized deep copies; never handed out directly
}

// NewCurve builds a curve from at least two control points, deep-copying
// and rounding every coordinate into ctx. The input slice stays untouched
// and unreferenced.
func NewCurve(ctx *Context, points []Point) (*Curve, error) {
	// 1) Structural validation.
	if ctx == nil {
		return nil, ErrNilContext
	}
	if len(points) < 2 {
		return nil, fmt.Errorf("core: got %d control points: %w", len(points), ErrTooFewPoints)
	}
	// 2) Per-point validation + normalization into the context.
	norm := make([]Point, len(points))
	for i, p := range points {
		if p.X == nil || p.Y == nil {
			return nil, fmt.Errorf("core: control point %d: %w", i, ErrNilCoordinate)
		}
		if !IsFinite(p.X) || !IsFinite(p.Y) {
			return nil, fmt.Errorf("core: control point %d: %w", i, ErrNotFinite)
		}
		x, y := new(apd.Decimal), new(apd.Decimal)
		if _, err := ctx.base.Round(x, p.X); err != nil {
			return nil, fmt.Errorf("core: normalize control point %d: %w", i, err)
		}
		if _, err := ctx.base.Round(y, p.Y); err != nil {
			return nil, fmt.Errorf("core: normalize control point %d: %w", i, err)
		}
		norm[i] = Point{X: x, Y: y}
	}
	return &Curve{ctx: ctx, points: norm}, nil
}

// Context returns the precision context the curve was normalized into.
func (c *Curve) Context() *Context {
	return c.ctx
}

// Len returns the number of control points.
func (c *Curve) Len() int {
	return len(c.points)
}

// Degree returns the polynomial degree, Len()−1.
func (c *Curve) Degree() int {
	return len(c.points) - 1
}

// Points returns a deep copy of the control points.
func (c *Curve) Points() []Point {
	out := make([]Point, len(c.points))
	for i, p := range c.points {
		out[i] = p.Clone()
	}
	return out
}

// Start returns a copy of the first control point.
func (c *Curve) Start() Point {
	return c.points[0].Clone()
}

// End returns a copy of the last control point.
func (c *Curve) End() Point {
	return c.points[len(c.points)-1].Clone()
}
