package poly

import (
	"fmt"
	"math"
	"strings"
)

// printTol is the magnitude under which a coefficient is considered zero for
// display purposes and its term skipped.
const printTol = 1e-9

// String formats the polynomial the usual way, highest degree first, e.g.
// "x^2 - 4" or "-2.5x^3 + x - 1". Coefficients with |c| < 1e-9 are skipped.
// The zero polynomial formats as "0".
func (p Polynomial) String() string {

	var sb strings.Builder

	for i := len(p.coeffs) - 1; i >= 0; i-- {

		c := p.coeffs[i]
		if math.Abs(c) < printTol {
			continue
		}

		switch {
		case sb.Len() == 0 && c < 0:
			sb.WriteString("-")
		case sb.Len() != 0 && c < 0:
			sb.WriteString(" - ")
		case sb.Len() != 0:
			sb.WriteString(" + ")
		}

		abs := math.Abs(c)
		if math.Abs(abs-1) >= printTol || i == 0 {
			sb.WriteString(formatCoeff(abs))
		}

		switch {
		case i == 1:
			sb.WriteString("x")
		case i > 1:
			sb.WriteString(fmt.Sprintf("x^%d", i))
		}
	}

	if sb.Len() == 0 {
		return "0"
	}

	return sb.String()
}

func formatCoeff(c float64) string {
	if c == math.Trunc(c) && math.Abs(c) < 1e15 {
		return fmt.Sprintf("%d", int64(c))
	}
	return fmt.Sprintf("%g", c)
}
