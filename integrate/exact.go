package integrate

import (
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"

	"github.com/jmlaurent/polymc/poly"
)

// exactPrec is the bit precision of the closed-form evaluation.
const exactPrec = 128

// Exact returns the closed-form value of the integral of p over [a, b],
// computed term by term as sum_i c_i * (b^{i+1} - a^{i+1}) / (i+1) with
// 128-bit floats. It is the reference value the estimator is measured
// against, both in tests and in the CLI output.
func Exact(p poly.Polynomial, a, b float64) *big.Float {

	sum := new(big.Float).SetPrec(exactPrec)

	for i, c := range p.Coeffs() {

		if c == 0 {
			continue
		}

		k := i + 1

		term := new(big.Float).Sub(powInt(b, k), powInt(a, k))
		term.Mul(term, new(big.Float).SetPrec(exactPrec).SetFloat64(c))
		term.Quo(term, new(big.Float).SetPrec(exactPrec).SetInt64(int64(k)))

		sum.Add(sum, term)
	}

	return sum
}

// powInt returns x^k as a big.Float. bigfloat.Pow only accepts a positive
// base, so the sign is peeled off and restored for odd exponents.
func powInt(x float64, k int) *big.Float {

	if x == 0 {
		return new(big.Float).SetPrec(exactPrec)
	}

	abs := new(big.Float).SetPrec(exactPrec).SetFloat64(math.Abs(x))
	r := bigfloat.Pow(abs, new(big.Float).SetPrec(exactPrec).SetInt64(int64(k)))

	if x < 0 && k%2 == 1 {
		r.Neg(r)
	}

	return r
}
