package integrate_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/jmlaurent/polymc/integrate"
	"github.com/jmlaurent/polymc/poly"
)

func TestBoundingRectangle(t *testing.T) {

	t.Run("Quadratic", func(t *testing.T) {
		// x^2 - 4 over [0, 3]: p' = 2x vanishes at 0, so the extrema are
		// p(0) = -4 and p(3) = 5.
		p := poly.New([]float64{-4, 0, 1})
		rect, err := integrate.BoundingRectangle(p, 0, 3)
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(integrate.Rectangle{A: 0, B: 3, YMin: -4, YMax: 5}, rect))
		require.Equal(t, 27.0, rect.Area())
	})

	t.Run("Linear", func(t *testing.T) {
		// -x + 5 over [0, 5]: no interior critical point, extrema at the
		// endpoints, and the lower bound clamps to 0.
		p := poly.New([]float64{5, -1})
		rect, err := integrate.BoundingRectangle(p, 0, 5)
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(integrate.Rectangle{A: 0, B: 5, YMin: 0, YMax: 5}, rect))
	})

	t.Run("AlwaysContainsZero", func(t *testing.T) {
		// A strictly positive polynomial still gets YMin = 0 ...
		rect, err := integrate.BoundingRectangle(poly.New([]float64{2}), 0, 1)
		require.NoError(t, err)
		require.Equal(t, 0.0, rect.YMin)
		require.Equal(t, 2.0, rect.YMax)

		// ... and a strictly negative one YMax = 0.
		rect, err = integrate.BoundingRectangle(poly.New([]float64{-2}), 0, 1)
		require.NoError(t, err)
		require.Equal(t, -2.0, rect.YMin)
		require.Equal(t, 0.0, rect.YMax)
	})

	t.Run("ZeroPolynomial", func(t *testing.T) {
		rect, err := integrate.BoundingRectangle(poly.New([]float64{0}), -1, 1)
		require.NoError(t, err)
		require.Equal(t, 0.0, rect.Area())
		require.Equal(t, 2.0, rect.Width())
		require.Equal(t, 0.0, rect.Height())
	})

	t.Run("InteriorMaximum", func(t *testing.T) {
		// -x^2 + 4x over [0, 3] peaks at x = 2 with value 4, above both
		// endpoint values.
		p := poly.New([]float64{0, 4, -1})
		rect, err := integrate.BoundingRectangle(p, 0, 3)
		require.NoError(t, err)
		require.InDelta(t, 4.0, rect.YMax, 1e-9)
		require.Equal(t, 0.0, rect.YMin)
	})
}
