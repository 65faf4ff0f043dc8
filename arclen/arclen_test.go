package arclen_test

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bezarc/arclen"
	"github.com/katalvlaran/bezarc/core"
)

func TestLength_StraightLine(t *testing.T) {
	ctx, err := core.NewContext(50)
	require.NoError(t, err)

	got, err := arclen.Length(line(t, ctx))
	require.NoError(t, err)
	requireWithin(t, ctx, got, "10", "1e-25")
}

func TestLength_DiagonalLine(t *testing.T) {
	ctx, err := core.NewContext(50)
	require.NoError(t, err)

	got, err := arclen.Length(diagonal(t, ctx))
	require.NoError(t, err)
	requireWithin(t, ctx, got, "5", "1e-25")
}

func TestLength_SubRange(t *testing.T) {
	ctx, err := core.NewContext(50)
	require.NoError(t, err)

	got, err := arclen.Length(line(t, ctx),
		arclen.WithRange(ctx.MustParse("0.25"), ctx.MustParse("0.75")))
	require.NoError(t, err)
	requireWithin(t, ctx, got, "5", "1e-25")
}

func TestLength_ReversedRangeEqualsForward(t *testing.T) {
	ctx, err := core.NewContext(50)
	require.NoError(t, err)
	c := arch(t, ctx)

	fwd, err := arclen.Length(c,
		arclen.WithRange(ctx.MustParse("0.2"), ctx.MustParse("0.7")))
	require.NoError(t, err)
	rev, err := arclen.Length(c,
		arclen.WithRange(ctx.MustParse("0.7"), ctx.MustParse("0.2")))
	require.NoError(t, err)

	assert.Zero(t, fwd.Cmp(rev), "swapped range must integrate identically")
}

func TestLength_EmptyRangeIsZero(t *testing.T) {
	ctx, err := core.NewContext(50)
	require.NoError(t, err)

	got, err := arclen.Length(arch(t, ctx),
		arclen.WithRange(ctx.MustParse("0.3"), ctx.MustParse("0.3")))
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestLength_DegenerateCurveIsZero(t *testing.T) {
	ctx, err := core.NewContext(50)
	require.NoError(t, err)

	got, err := arclen.Length(degenerate(t, ctx))
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestLength_ArchStaysWithinControlBounds(t *testing.T) {
	ctx, err := core.NewContext(50)
	require.NoError(t, err)
	c := arch(t, ctx)

	got, err := arclen.Length(c)
	require.NoError(t, err)
	chord, err := c.ChordLength()
	require.NoError(t, err)
	poly, err := c.PolygonLength()
	require.NoError(t, err)

	assert.Positive(t, got.Cmp(chord), "arc length must exceed the chord")
	assert.Negative(t, got.Cmp(poly), "arc length must stay under the control polygon")
}

func TestLength_Additivity(t *testing.T) {
	ctx, err := core.NewContext(50)
	require.NoError(t, err)
	c := arch(t, ctx)
	split := ctx.MustParse("0.37")

	head, err := arclen.Length(c, arclen.WithRange(ctx.New(0), split))
	require.NoError(t, err)
	tail, err := arclen.Length(c, arclen.WithRange(split, ctx.New(1)))
	require.NoError(t, err)
	whole, err := arclen.Length(c)
	require.NoError(t, err)

	ed := apd.MakeErrDecimal(ctx.Base())
	sum := new(apd.Decimal)
	ed.Add(sum, head, tail)
	require.NoError(t, ed.Err())
	requireWithin(t, ctx, sum, whole.String(), "1e-25")
}

func TestLength_Idempotent(t *testing.T) {
	ctx, err := core.NewContext(50)
	require.NoError(t, err)
	c := arch(t, ctx)

	first, err := arclen.Length(c)
	require.NoError(t, err)
	second, err := arclen.Length(c)
	require.NoError(t, err)
	assert.Zero(t, first.Cmp(second))
}

func TestLength_RangeBeyondUnitIntervalExtends(t *testing.T) {
	ctx, err := core.NewContext(50)
	require.NoError(t, err)

	// The polynomial extension of a line keeps its constant speed, so
	// three parameter units cover three times the length.
	got, err := arclen.Length(line(t, ctx),
		arclen.WithRange(ctx.MustParse("-1"), ctx.MustParse("2")))
	require.NoError(t, err)
	requireWithin(t, ctx, got, "30", "1e-25")
}

func TestLength_Validation(t *testing.T) {
	ctx, err := core.NewContext(50)
	require.NoError(t, err)
	c := line(t, ctx)
	inf := &apd.Decimal{Form: apd.Infinite}

	cases := []struct {
		name    string
		run     func() (*apd.Decimal, error)
		wantErr error
	}{
		{
			name:    "nil curve",
			run:     func() (*apd.Decimal, error) { return arclen.Length(nil) },
			wantErr: arclen.ErrNilCurve,
		},
		{
			name: "non-finite range",
			run: func() (*apd.Decimal, error) {
				return arclen.Length(c, arclen.WithRange(ctx.New(0), inf))
			},
			wantErr: arclen.ErrBadParam,
		},
		{
			name: "zero tolerance",
			run: func() (*apd.Decimal, error) {
				return arclen.Length(c, arclen.WithTolerance(ctx.New(0)))
			},
			wantErr: arclen.ErrBadTolerance,
		},
		{
			name: "negative depth",
			run: func() (*apd.Decimal, error) {
				return arclen.Length(c, arclen.WithMaxDepth(-1))
			},
			wantErr: arclen.ErrBadDepth,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.run()
			require.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, got)
		})
	}
}

func TestSpeed_LineIsConstant(t *testing.T) {
	ctx, err := core.NewContext(50)
	require.NoError(t, err)
	c := line(t, ctx)

	for _, at := range []string{"0", "0.25", "0.5", "1"} {
		got, err := arclen.Speed(c, ctx.MustParse(at))
		require.NoError(t, err)
		assert.Zero(t, got.Cmp(ctx.New(10)), "speed at t=%s", at)
	}
}

func TestSpeed_PythagoreanMagnitude(t *testing.T) {
	ctx, err := core.NewContext(50)
	require.NoError(t, err)

	// diagonal has derivative (3,4) everywhere, magnitude exactly 5.
	got, err := arclen.Speed(diagonal(t, ctx), ctx.MustParse("0.5"))
	require.NoError(t, err)
	assert.Zero(t, got.Cmp(ctx.New(5)))
}

func TestSpeed_CollapsesAtCusp(t *testing.T) {
	ctx, err := core.NewContext(50)
	require.NoError(t, err)

	got, err := arclen.Speed(ramp(t, ctx), ctx.New(0))
	require.NoError(t, err)
	assert.True(t, got.IsZero(), "cusp speed must be the literal zero, not an error")
}

func TestSpeed_Validation(t *testing.T) {
	ctx, err := core.NewContext(50)
	require.NoError(t, err)

	_, err = arclen.Speed(nil, ctx.New(0))
	require.ErrorIs(t, err, arclen.ErrNilCurve)

	_, err = arclen.Speed(line(t, ctx), &apd.Decimal{Form: apd.NaN})
	require.ErrorIs(t, err, arclen.ErrBadParam)
}
