package sampling

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

const keySize = 32

// DeriveKey derives the sub-key of index i from a master key, by hashing the
// key together with the index under a fixed domain-separation label. Each
// worker of a parallel estimator run reads from a KeyedPRNG seeded with its
// own sub-key, so the full run stays deterministic for a given master key and
// worker count.
func DeriveKey(key []byte, i uint64) []byte {
	hasher := blake3.New()
	hasher.Write([]byte("polymc/sampling/worker"))
	hasher.Write(key)

	var index [8]byte
	binary.BigEndian.PutUint64(index[:], i)
	hasher.Write(index[:])

	sum := hasher.Sum(nil)
	return sum[:keySize]
}
