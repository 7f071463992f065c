// Package permute implements the passphrase-keyed shuffle used to scramble
// payload bit order and to choose the pixel traversal order in keyed mode.
//
// The passphrase is reduced to a Key with the djb2 string hash, and every
// operation seeds a fresh generator from that key, so the same passphrase
// always yields the same permutation. This is an obfuscation layer, not
// encryption.
package permute

import (
	"math/rand/v2"

	"github.com/joshuapare/stegkit/pkg/types"
)

// Key seeds the permutation generator.
type Key uint64

// KeyFrom derives a Key from passphrase with djb2 (h = h*33 + c, h0 = 5381)
// over its bytes.
func KeyFrom(passphrase string) Key {
	h := uint64(types.DJB2Seed)
	for i := 0; i < len(passphrase); i++ {
		h = h*33 + uint64(passphrase[i])
	}
	return Key(h)
}

// Rand returns a new generator seeded from k. Two generators from the same
// key produce the same sequence.
func (k Key) Rand() *rand.Rand {
	return rand.New(rand.NewPCG(uint64(k), uint64(k)^0x9e3779b97f4a7c15))
}

// draws returns the Fisher-Yates swap partners for positions [start, n):
// j[i] is uniform in [start, i], drawn for i from n-1 down to start.
func (k Key) draws(n, start int) []int {
	rng := k.Rand()
	j := make([]int, n)
	for i := n - 1; i >= start; i-- {
		j[i] = start + rng.IntN(i-start+1)
	}
	return j
}

// Forward shuffles s[start:] in place.
func Forward[T any](k Key, s []T, start int) {
	if start < 0 || start >= len(s) {
		return
	}
	j := k.draws(len(s), start)
	for i := len(s) - 1; i >= start; i-- {
		s[i], s[j[i]] = s[j[i]], s[i]
	}
}

// Inverse undoes Forward with the same key and start: the draws are
// replayed identically and the swaps applied in the opposite direction.
func Inverse[T any](k Key, s []T, start int) {
	if start < 0 || start >= len(s) {
		return
	}
	j := k.draws(len(s), start)
	for i := start; i < len(s); i++ {
		s[i], s[j[i]] = s[j[i]], s[i]
	}
}

// Indices returns the identity table of length n with positions [start, n)
// shuffled by Forward. Entry start+i is the pixel that carries payload bit i
// in keyed traversal.
func Indices(k Key, n, start int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	Forward(k, idx, start)
	return idx
}
