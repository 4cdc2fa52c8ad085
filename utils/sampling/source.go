package sampling

import (
	"encoding/binary"
)

// Source draws uniform float64 values from an underlying PRNG.
type Source struct {
	prng PRNG
	buf  [8]byte
}

// NewSource wraps prng into a uniform float64 source.
func NewSource(prng PRNG) *Source {
	return &Source{prng: prng}
}

// Float64 returns a uniform sample in [min, max].
func (s *Source) Float64(min, max float64) float64 {
	if _, err := s.prng.Read(s.buf[:]); err != nil {
		panic(err)
	}
	f := float64(binary.BigEndian.Uint64(s.buf[:])) / 1.8446744073709552e+19
	return min + f*(max-min)
}
