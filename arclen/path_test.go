package arclen_test

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bezarc/arclen"
	"github.com/katalvlaran/bezarc/core"
)

// twoSegmentPath is a horizontal 10-unit line followed by a vertical
// 5-unit line, total length 15.
func twoSegmentPath(t *testing.T, ctx *core.Context) []*core.Curve {
	t.Helper()
	return []*core.Curve{
		curve(t, ctx, [2]string{"0", "0"}, [2]string{"10", "0"}),
		curve(t, ctx, [2]string{"10", "0"}, [2]string{"10", "5"}),
	}
}

func TestPathLength_SumsSegments(t *testing.T) {
	ctx, err := core.NewContext(50)
	require.NoError(t, err)

	got, err := arclen.PathLength(twoSegmentPath(t, ctx))
	require.NoError(t, err)
	requireWithin(t, ctx, got, "15", "1e-25")
}

func TestPathLength_SingleSegmentMatchesLength(t *testing.T) {
	ctx, err := core.NewContext(50)
	require.NoError(t, err)
	c := arch(t, ctx)

	direct, err := arclen.Length(c)
	require.NoError(t, err)
	viaPath, err := arclen.PathLength([]*core.Curve{c})
	require.NoError(t, err)
	assert.Zero(t, direct.Cmp(viaPath))
}

func TestPathInverse_LandsOnFirstSegment(t *testing.T) {
	ctx, err := core.NewContext(50)
	require.NoError(t, err)

	pos, err := arclen.PathInverse(twoSegmentPath(t, ctx), ctx.New(5))
	require.NoError(t, err)

	assert.Equal(t, 0, pos.SegmentIndex)
	requireWithin(t, ctx, pos.T, "0.5", "1e-40")
	requireWithin(t, ctx, pos.Length, "5", "1e-25")
	assert.True(t, pos.Converged)
}

func TestPathInverse_LandsOnSecondSegment(t *testing.T) {
	ctx, err := core.NewContext(50)
	require.NoError(t, err)

	// 12 units in: 10 on the first segment, residual 2 on the second
	// whose length is 5, so the local parameter is 0.4.
	pos, err := arclen.PathInverse(twoSegmentPath(t, ctx), ctx.New(12))
	require.NoError(t, err)

	assert.Equal(t, 1, pos.SegmentIndex)
	requireWithin(t, ctx, pos.T, "0.4", "1e-40")
	requireWithin(t, ctx, pos.Length, "12", "1e-25")
	assert.True(t, pos.Converged)
}

func TestPathInverse_ZeroTarget(t *testing.T) {
	ctx, err := core.NewContext(50)
	require.NoError(t, err)

	pos, err := arclen.PathInverse(twoSegmentPath(t, ctx), ctx.New(0))
	require.NoError(t, err)

	assert.Equal(t, 0, pos.SegmentIndex)
	assert.True(t, pos.T.IsZero())
	assert.True(t, pos.Length.IsZero())
	assert.True(t, pos.Converged)
}

func TestPathInverse_ClampsBeyondTotal(t *testing.T) {
	ctx, err := core.NewContext(50)
	require.NoError(t, err)

	pos, err := arclen.PathInverse(twoSegmentPath(t, ctx), ctx.New(20))
	require.NoError(t, err)

	assert.Equal(t, 1, pos.SegmentIndex)
	assert.Zero(t, pos.T.Cmp(ctx.New(1)))
	requireWithin(t, ctx, pos.Length, "15", "1e-25")
	assert.True(t, pos.Converged)
}

func TestPathInverse_DegeneratePath(t *testing.T) {
	ctx, err := core.NewContext(50)
	require.NoError(t, err)

	pos, err := arclen.PathInverse([]*core.Curve{degenerate(t, ctx)}, ctx.New(1))
	require.NoError(t, err)

	assert.Equal(t, 0, pos.SegmentIndex)
	assert.Zero(t, pos.T.Cmp(ctx.New(1)))
	assert.True(t, pos.Length.IsZero())
	assert.False(t, pos.Converged)
}

func TestPath_Validation(t *testing.T) {
	ctx, err := core.NewContext(50)
	require.NoError(t, err)
	segs := twoSegmentPath(t, ctx)

	_, err = arclen.PathLength(nil)
	require.ErrorIs(t, err, arclen.ErrEmptyPath)

	_, err = arclen.PathLength([]*core.Curve{segs[0], nil})
	require.ErrorIs(t, err, arclen.ErrNilSegment)

	_, err = arclen.PathInverse([]*core.Curve{}, ctx.New(1))
	require.ErrorIs(t, err, arclen.ErrEmptyPath)

	_, err = arclen.PathInverse([]*core.Curve{nil}, ctx.New(1))
	require.ErrorIs(t, err, arclen.ErrNilSegment)

	_, err = arclen.PathInverse(segs, ctx.New(-2))
	require.ErrorIs(t, err, arclen.ErrBadTarget)

	_, err = arclen.PathInverse(segs, &apd.Decimal{Form: apd.NaN})
	require.ErrorIs(t, err, arclen.ErrBadTarget)
}
