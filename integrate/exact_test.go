package integrate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmlaurent/polymc/integrate"
	"github.com/jmlaurent/polymc/poly"
)

func TestExact(t *testing.T) {

	for _, tc := range []struct {
		name   string
		coeffs []float64
		a, b   float64
		want   float64
	}{
		{"Quadratic", []float64{-4, 0, 1}, 0, 3, -3},
		{"Linear", []float64{5, -1}, 0, 5, 12.5},
		{"Zero", []float64{0}, -10, 10, 0},
		{"OddSymmetric", []float64{0, 0, 0, 1}, -1, 1, 0},
		{"NegativeBounds", []float64{0, 0, 1}, -2, -1, 7.0 / 3.0},
		{"Constant", []float64{2.5}, 1, 3, 5},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, _ := integrate.Exact(poly.New(tc.coeffs), tc.a, tc.b).Float64()
			require.InDelta(t, tc.want, got, 1e-9)
		})
	}
}
