// Package poly implements univariate polynomials with real coefficients.
// Coefficients are stored constant term first: Coeffs[i] is the coefficient
// of x^i. Polynomials are immutable once constructed.
package poly

import (
	"fmt"
)

// Polynomial is a univariate polynomial p(x) = c0 + c1*x + ... + cn*x^n.
type Polynomial struct {
	coeffs []float64
}

// New creates a new Polynomial from the given coefficients, constant term
// first. The input slice is copied. New panics if coeffs is empty: the
// constant polynomial 0 is New([]float64{0}).
func New(coeffs []float64) Polynomial {
	if len(coeffs) == 0 {
		panic("poly: a polynomial needs at least one coefficient")
	}
	c := make([]float64, len(coeffs))
	copy(c, coeffs)
	return Polynomial{coeffs: c}
}

// Coeffs returns a copy of the coefficients, constant term first.
func (p Polynomial) Coeffs() []float64 {
	c := make([]float64, len(p.coeffs))
	copy(c, p.coeffs)
	return c
}

// Degree returns the degree of the polynomial, ignoring trailing zero
// coefficients. The zero polynomial has degree 0.
func (p Polynomial) Degree() int {
	for i := len(p.coeffs) - 1; i > 0; i-- {
		if p.coeffs[i] != 0 {
			return i
		}
	}
	return 0
}

// IsZero reports whether every coefficient is exactly zero.
func (p Polynomial) IsZero() bool {
	for _, c := range p.coeffs {
		if c != 0 {
			return false
		}
	}
	return true
}

// Evaluate returns p(x), computed with Horner's rule. NaN and Inf inputs
// propagate per IEEE-754.
func (p Polynomial) Evaluate(x float64) (y float64) {
	y = p.coeffs[len(p.coeffs)-1]
	for i := len(p.coeffs) - 2; i >= 0; i-- {
		y = y*x + p.coeffs[i]
	}
	return
}

// EvaluateSlice returns p(x) for every x in xs. The result has the same
// length as xs.
func (p Polynomial) EvaluateSlice(xs []float64) (ys []float64) {
	ys = make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = p.Evaluate(x)
	}
	return
}

// Derivative returns p'(x). The derivative of a constant is the zero
// polynomial [0].
func (p Polynomial) Derivative() Polynomial {
	if len(p.coeffs) < 2 {
		return Polynomial{coeffs: []float64{0}}
	}
	coeffs := make([]float64, len(p.coeffs)-1)
	for i := 1; i < len(p.coeffs); i++ {
		coeffs[i-1] = float64(i) * p.coeffs[i]
	}
	return Polynomial{coeffs: coeffs}
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	coeffs := make([]float64, n)
	for i := range coeffs {
		if i < len(p.coeffs) {
			coeffs[i] += p.coeffs[i]
		}
		if i < len(q.coeffs) {
			coeffs[i] += q.coeffs[i]
		}
	}
	return Polynomial{coeffs: coeffs}
}

// Scale returns s * p.
func (p Polynomial) Scale(s float64) Polynomial {
	coeffs := make([]float64, len(p.coeffs))
	for i, c := range p.coeffs {
		coeffs[i] = s * c
	}
	return Polynomial{coeffs: coeffs}
}

// Trim returns p with trailing zero coefficients dropped. At least one
// coefficient is always kept.
func (p Polynomial) Trim() Polynomial {
	i := len(p.coeffs)
	for i > 1 && p.coeffs[i-1] == 0 {
		i--
	}
	coeffs := make([]float64, i)
	copy(coeffs, p.coeffs[:i])
	return Polynomial{coeffs: coeffs}
}

func (p Polynomial) GoString() string {
	return fmt.Sprintf("poly.New(%#v)", p.coeffs)
}
