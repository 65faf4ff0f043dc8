// Package quadrature_test shares small decimal assertions between the
// coefficient and evaluator tests.
package quadrature_test

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bezarc/core"
)

// makeEd returns an error-accumulating wrapper over the context.
func makeEd(ctx *core.Context) *apd.ErrDecimal {
	ed := apd.MakeErrDecimal(ctx.Base())
	return &ed
}

// requireWithin fails unless |got−want| < bound (a decimal literal).
func requireWithin(t *testing.T, ctx *core.Context, got, want *apd.Decimal, bound string) {
	t.Helper()
	require.True(t, core.IsFinite(got), "got is not finite: %v", got)
	ed := apd.MakeErrDecimal(ctx.Base())
	diff := new(apd.Decimal)
	ed.Sub(diff, got, want)
	ed.Abs(diff, diff)
	require.NoError(t, ed.Err())
	require.Negative(t, diff.Cmp(ctx.MustParse(bound)),
		"got %s, want within %s of %s (diff %s)", got, bound, want, diff)
}
