// Package arclen_test shares curve fixtures between the length, inverse,
// path, and table tests. Closed forms are noted where a fixture has one,
// since most assertions lean on them.
package arclen_test

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bezarc/core"
)

// pt builds a control point from decimal literals.
func pt(t *testing.T, ctx *core.Context, x, y string) core.Point {
	t.Helper()
	return core.Point{X: ctx.MustParse(x), Y: ctx.MustParse(y)}
}

// curve builds a Bezier from literal coordinate pairs.
func curve(t *testing.T, ctx *core.Context, coords ...[2]string) *core.Curve {
	t.Helper()
	pts := make([]core.Point, len(coords))
	for i, c := range coords {
		pts[i] = pt(t, ctx, c[0], c[1])
	}
	c, err := core.NewCurve(ctx, pts)
	require.NoError(t, err)
	return c
}

// line is the degree-1 Bezier [[0,0],[10,0]]: speed 10, length 10t.
func line(t *testing.T, ctx *core.Context) *core.Curve {
	t.Helper()
	return curve(t, ctx, [2]string{"0", "0"}, [2]string{"10", "0"})
}

// diagonal is [[0,0],[3,4]]: length exactly 5.
func diagonal(t *testing.T, ctx *core.Context) *core.Curve {
	t.Helper()
	return curve(t, ctx, [2]string{"0", "0"}, [2]string{"3", "4"})
}

// arch is the cubic [[0,0],[0,100],[100,100],[100,0]]: chord 100, control
// polygon 300, symmetric about t=1/2.
func arch(t *testing.T, ctx *core.Context) *core.Curve {
	t.Helper()
	return curve(t, ctx,
		[2]string{"0", "0"}, [2]string{"0", "100"},
		[2]string{"100", "100"}, [2]string{"100", "0"})
}

// ramp is the cubic [[0,0],[0,0],[0,0],[100,0]]: x(t)=100t³, so the prefix
// length is 100t³ and the speed 300t² collapses to zero at t=0.
func ramp(t *testing.T, ctx *core.Context) *core.Curve {
	t.Helper()
	return curve(t, ctx,
		[2]string{"0", "0"}, [2]string{"0", "0"},
		[2]string{"0", "0"}, [2]string{"100", "0"})
}

// stall is the cubic [[0,0],[100,0],[100,0],[100,0]]: the prefix length is
// 100(1−(1−t)³) and the speed 300(1−t)² collapses to zero at t=1.
func stall(t *testing.T, ctx *core.Context) *core.Curve {
	t.Helper()
	return curve(t, ctx,
		[2]string{"0", "0"}, [2]string{"100", "0"},
		[2]string{"100", "0"}, [2]string{"100", "0"})
}

// degenerate is [[5,5],[5,5]]: zero speed and zero length everywhere.
func degenerate(t *testing.T, ctx *core.Context) *core.Curve {
	t.Helper()
	return curve(t, ctx, [2]string{"5", "5"}, [2]string{"5", "5"})
}

// requireWithin fails unless |got−want| < bound (decimal literals).
func requireWithin(t *testing.T, ctx *core.Context, got *apd.Decimal, want, bound string) {
	t.Helper()
	require.True(t, core.IsFinite(got), "got is not finite: %v", got)
	ed := apd.MakeErrDecimal(ctx.Base())
	diff := new(apd.Decimal)
	ed.Sub(diff, got, ctx.MustParse(want))
	ed.Abs(diff, diff)
	require.NoError(t, ed.Err())
	require.Negative(t, diff.Cmp(ctx.MustParse(bound)),
		"got %s, want %s within %s (diff %s)", got, want, bound, diff)
}
