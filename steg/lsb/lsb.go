// Package lsb writes and reads one payload bit per pixel LSB, visiting the
// pixels after the length prefix either in natural order or in a
// passphrase-permuted order.
package lsb

import (
	"fmt"
	"math/rand/v2"

	"github.com/joshuapare/stegkit/internal/pixel"
	"github.com/joshuapare/stegkit/pkg/types"
	"github.com/joshuapare/stegkit/steg/bitstream"
	"github.com/joshuapare/stegkit/steg/permute"
)

// Path maps payload bit i to the pixel index that carries it.
type Path struct {
	start int
	order []int // nil for sequential traversal
}

// Sequential visits pixels start, start+1, ...
func Sequential(start int) Path {
	return Path{start: start}
}

// Keyed visits the pixels of [start, dimension) in the order produced by
// permute.Indices for key.
func Keyed(key permute.Key, dimension, start int) Path {
	return Path{start: start, order: permute.Indices(key, dimension, start)}
}

// At returns the pixel index for payload bit i.
func (p Path) At(i int) int {
	if p.order == nil {
		return p.start + i
	}
	return p.order[p.start+i]
}

// Start returns the first pixel index available to the payload.
func (p Path) Start() int { return p.start }

func (p Path) check(dimension, n int) error {
	if p.order != nil && len(p.order) != dimension {
		return types.Errorf(types.ErrKindInvalidArgument,
			"lsb: traversal built for %d pixels used on %d", len(p.order), dimension)
	}
	if p.start < 0 || n > dimension-p.start {
		return &types.Error{
			Kind: types.ErrKindCapacity,
			Msg:  "lsb: payload does not fit",
			Err:  fmt.Errorf("%d bits, %d pixels after index %d", n, max(dimension-p.start, 0), p.start),
		}
	}
	return nil
}

// Embed sets the LSB of each pixel on path to the matching payload bit with
// the nudge rule and returns the number of pixels changed. Capacity is
// checked before any pixel is touched.
func Embed(pixels []int, maxIntensity int, payload bitstream.Bits, path Path, rng *rand.Rand) (int, error) {
	if err := path.check(len(pixels), len(payload)); err != nil {
		return 0, err
	}
	changed := 0
	for i, b := range payload {
		if pixel.Set(pixels, path.At(i), b, maxIntensity, rng) {
			changed++
		}
	}
	return changed, nil
}

// Extract reads payloadBits LSBs along path.
func Extract(pixels []int, payloadBits int, path Path) (bitstream.Bits, error) {
	if payloadBits < 0 {
		return nil, types.Errorf(types.ErrKindInvalidArgument, "lsb: negative payload length %d", payloadBits)
	}
	if err := path.check(len(pixels), payloadBits); err != nil {
		return nil, err
	}
	out := make(bitstream.Bits, payloadBits)
	for i := range out {
		out[i] = pixel.LSB(pixels[path.At(i)])
	}
	return out, nil
}
