// Package roots computes the real roots of univariate polynomials with real
// coefficients, via the eigenvalues of the companion matrix.
package roots

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// ImagTol is the tolerance under which the imaginary part of an eigenvalue is
// considered numerical noise and the eigenvalue reported as a real root.
const ImagTol = 1e-9

// Real returns the real roots of the polynomial with the given coefficients,
// constant term first, sorted in ascending order. The zero polynomial and the
// empty polynomial have no isolated roots and return an empty slice, as does
// a non-zero constant.
//
// All roots (real and complex) are computed as the eigenvalues of the monic
// companion matrix and filtered to those with |imag| <= ImagTol. The
// companion matrix is the single place where the descending-degree
// convention of the eigenvalue routine meets the constant-term-first
// convention used everywhere else.
func Real(coeffs []float64) ([]float64, error) {

	n := len(coeffs)
	for n > 0 && coeffs[n-1] == 0 {
		n--
	}

	// Zero, empty or constant polynomial.
	if n < 2 {
		return []float64{}, nil
	}

	d := n - 1
	lead := coeffs[n-1]

	c := mat.NewDense(d, d, nil)
	for i := 1; i < d; i++ {
		c.Set(i, i-1, 1)
	}
	for i := 0; i < d; i++ {
		c.Set(i, d-1, -coeffs[i]/lead)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(c, mat.EigenNone); !ok {
		return nil, fmt.Errorf("roots: eigenvalue decomposition of the degree-%d companion matrix failed", d)
	}

	rs := make([]float64, 0, d)
	for _, v := range eig.Values(nil) {
		if math.Abs(imag(v)) <= ImagTol {
			rs = append(rs, real(v))
		}
	}

	sort.Float64s(rs)

	return rs, nil
}
