// Package utils implements small generic helpers shared across the module.
package utils

import (
	"golang.org/x/exp/constraints"
)

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a <= b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a >= b {
		return a
	}
	return b
}

// MinSlice returns the minimum value of the non-empty slice s.
func MinSlice[T constraints.Ordered](s []T) (m T) {
	m = s[0]
	for _, v := range s[1:] {
		m = Min(m, v)
	}
	return
}

// MaxSlice returns the maximum value of the non-empty slice s.
func MaxSlice[T constraints.Ordered](s []T) (m T) {
	m = s[0]
	for _, v := range s[1:] {
		m = Max(m, v)
	}
	return
}
