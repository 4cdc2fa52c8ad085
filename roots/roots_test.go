package roots_test

import (
	"math"
	"testing"

	"github.com/jmlaurent/polymc/roots"
	"github.com/stretchr/testify/require"
)

func TestReal(t *testing.T) {

	t.Run("Linear", func(t *testing.T) {
		// 2x
		rs, err := roots.Real([]float64{0, 2})
		require.NoError(t, err)
		require.Len(t, rs, 1)
		require.InDelta(t, 0.0, rs[0], 1e-12)
	})

	t.Run("Quadratic", func(t *testing.T) {
		// x^2 - 4
		rs, err := roots.Real([]float64{-4, 0, 1})
		require.NoError(t, err)
		require.Len(t, rs, 2)
		require.InDelta(t, -2.0, rs[0], 1e-9)
		require.InDelta(t, 2.0, rs[1], 1e-9)
	})

	t.Run("NoRealRoots", func(t *testing.T) {
		// x^2 + 1
		rs, err := roots.Real([]float64{1, 0, 1})
		require.NoError(t, err)
		require.Empty(t, rs)
	})

	t.Run("ZeroPolynomial", func(t *testing.T) {
		rs, err := roots.Real([]float64{0})
		require.NoError(t, err)
		require.Empty(t, rs)

		rs, err = roots.Real([]float64{0, 0, 0})
		require.NoError(t, err)
		require.Empty(t, rs)

		rs, err = roots.Real(nil)
		require.NoError(t, err)
		require.Empty(t, rs)
	})

	t.Run("Constant", func(t *testing.T) {
		rs, err := roots.Real([]float64{5})
		require.NoError(t, err)
		require.Empty(t, rs)
	})

	t.Run("TrailingZeros", func(t *testing.T) {
		// x - 1, padded with zero high-degree coefficients
		rs, err := roots.Real([]float64{-1, 1, 0, 0})
		require.NoError(t, err)
		require.Len(t, rs, 1)
		require.InDelta(t, 1.0, rs[0], 1e-9)
	})

	t.Run("Cubic", func(t *testing.T) {
		// x^3 - 6x^2 + 11x - 6 = (x-1)(x-2)(x-3)
		rs, err := roots.Real([]float64{-6, 11, -6, 1})
		require.NoError(t, err)
		require.Len(t, rs, 3)
		require.InDelta(t, 1.0, rs[0], 1e-6)
		require.InDelta(t, 2.0, rs[1], 1e-6)
		require.InDelta(t, 3.0, rs[2], 1e-6)
	})

	t.Run("HighDegree", func(t *testing.T) {
		// (x^2 - 1)^10 + small perturbations still factorizes without
		// crashing; here we only check degree 20 goes through and the
		// reported roots are near ±1.
		coeffs := make([]float64, 21)
		// Binomial expansion of (x^2 - 1)^10, constant term first.
		b := 1.0
		for k := 0; k <= 10; k++ {
			sign := 1.0
			if (10-k)%2 == 1 {
				sign = -1
			}
			coeffs[2*k] = sign * b
			b = b * float64(10-k) / float64(k+1)
		}
		rs, err := roots.Real(coeffs)
		require.NoError(t, err)
		for _, r := range rs {
			require.InDelta(t, 1.0, math.Abs(r), 0.2)
		}
	})
}
