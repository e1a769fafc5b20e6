package symtable

import "github.com/cespare/xxhash/v2"

// HashFunc maps a key to a 64-bit hash. The table reduces it modulo its
// current capacity, so it must be deterministic.
type HashFunc func(key string) uint64

const hashMultiplier = 65599

// Polynomial is the default hash function. It accumulates
// h = h*65599 + b over every byte of the key, wrapping on overflow.
func Polynomial(key string) uint64 {
	var h uint64
	for i := 0; i < len(key); i++ {
		h = h*hashMultiplier + uint64(key[i])
	}

	return h
}

// XXHash hashes keys with xxHash64. It spreads similar keys better than
// Polynomial at a slightly higher cost for short keys.
func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}
