package core_test

import (
	"fmt"

	"github.com/katalvlaran/bezarc/core"
)

// ExampleCurve_Eval evaluates a quadratic at its midpoint.
func ExampleCurve_Eval() {
	ctx := core.NewDefaultContext()
	curve, _ := core.NewCurve(ctx, []core.Point{
		{X: ctx.New(0), Y: ctx.New(0)},
		{X: ctx.New(10), Y: ctx.New(0)},
		{X: ctx.New(10), Y: ctx.New(10)},
	})
	p, _ := curve.Eval(ctx.MustParse("0.5"))
	x, _ := p.X.Float64()
	y, _ := p.Y.Float64()
	fmt.Printf("%.1f %.1f\n", x, y)
	// Output: 7.5 2.5
}

// ExampleCurve_ChordLength brackets a cubic's arc length from below.
func ExampleCurve_ChordLength() {
	ctx := core.NewDefaultContext()
	curve, _ := core.NewCurve(ctx, []core.Point{
		{X: ctx.New(0), Y: ctx.New(0)},
		{X: ctx.New(0), Y: ctx.New(100)},
		{X: ctx.New(100), Y: ctx.New(100)},
		{X: ctx.New(100), Y: ctx.New(0)},
	})
	chord, _ := curve.ChordLength()
	poly, _ := curve.PolygonLength()
	fmt.Println(chord, poly)
	// Output: 100 300
}
