// Package integrate estimates the definite integral of a polynomial over a
// closed interval with a rejection-sampling Monte Carlo method: uniform
// samples are drawn from a rectangle bounding the graph of the polynomial and
// the x-axis, and the ratio of accepted samples scales the rectangle area
// into the integral estimate.
package integrate

import (
	"github.com/jmlaurent/polymc/poly"
	"github.com/jmlaurent/polymc/roots"
	"github.com/jmlaurent/polymc/utils"
)

// Point is a sample drawn from the bounding rectangle.
type Point struct {
	X, Y float64
}

// Rectangle is the axis-aligned sampling region: [A, B] horizontally and
// [YMin, YMax] vertically. YMin <= 0 <= YMax always holds, so the region
// covers both the positive and the negative area of the polynomial.
type Rectangle struct {
	A, B       float64
	YMin, YMax float64
}

// Width returns B - A.
func (r Rectangle) Width() float64 {
	return r.B - r.A
}

// Height returns YMax - YMin.
func (r Rectangle) Height() float64 {
	return r.YMax - r.YMin
}

// Area returns the area of the rectangle.
func (r Rectangle) Area() float64 {
	return r.Width() * r.Height()
}

// BoundingRectangle returns the tight rectangle over [a, b] that contains the
// graph of p and the x-axis. The vertical extent is taken over the values of
// p at the critical points: the two endpoints plus every real root of p' that
// falls inside [a, b], then clamped to include 0.
//
// Critical points are collected as a plain slice; duplicates (an endpoint
// that is also a root of p') are harmless since only the min and max of the
// evaluated values matter.
func BoundingRectangle(p poly.Polynomial, a, b float64) (Rectangle, error) {

	rs, err := roots.Real(p.Derivative().Coeffs())
	if err != nil {
		return Rectangle{}, err
	}

	critical := []float64{a, b}
	for _, r := range rs {
		if a <= r && r <= b {
			critical = append(critical, r)
		}
	}

	values := p.EvaluateSlice(critical)

	return Rectangle{
		A:    a,
		B:    b,
		YMin: utils.Min(0, utils.MinSlice(values)),
		YMax: utils.Max(0, utils.MaxSlice(values)),
	}, nil
}
