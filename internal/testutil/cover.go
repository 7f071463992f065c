// Package testutil provides cover-image fixtures shared by tests.
package testutil

import (
	"math/rand/v2"
	"path/filepath"
	"testing"

	"github.com/joshuapare/stegkit/internal/netpbm"
)

// Rand returns a deterministic generator for seed.
func Rand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x5eed))
}

// Pixels returns n samples in [0, maxval] drawn from seed.
func Pixels(seed uint64, n, maxval int) []int {
	rng := Rand(seed)
	out := make([]int, n)
	for i := range out {
		out[i] = rng.IntN(maxval + 1)
	}
	return out
}

// WriteCover writes a random w x h 8-bit image into a test temp dir and
// returns its path.
//
// Example:
//
//	cover := testutil.WriteCover(t, netpbm.PPM, 40, 30)
//	img, _ := netpbm.Read(cover)
func WriteCover(t *testing.T, format netpbm.Format, w, h int) string {
	t.Helper()
	img, err := netpbm.New(format, w, h, 255)
	if err != nil {
		t.Fatalf("netpbm.New: %v", err)
	}
	img.Pixels = Pixels(uint64(w)<<32|uint64(h), len(img.Pixels), 255)
	img.Comments = []string{"test cover"}

	ext := ".pgm"
	if format == netpbm.PPM {
		ext = ".ppm"
	}
	path := filepath.Join(t.TempDir(), "cover"+ext)
	if err := netpbm.Write(path, img); err != nil {
		t.Fatalf("netpbm.Write: %v", err)
	}
	return path
}
