// Package pixel implements the LSB read and the randomized ±1 nudge used by
// every embedder to set a pixel's least-significant bit.
package pixel

import (
	"math/rand/v2"

	"github.com/joshuapare/stegkit/pkg/types"
)

// LSB returns the least-significant bit of v.
func LSB(v int) uint8 { return uint8(v & 1) }

// Set makes the LSB of pixels[i] equal to bit using the nudge rule and
// reports whether the pixel changed.
//
// When the LSB already matches nothing happens. Otherwise one random bit is
// drawn from rng: 1 increments the pixel (decrements at maxIntensity), 0
// decrements it (increments at 0). The parity flips either way, and the
// direction of the visible change is not fixed.
func Set(pixels []int, i int, bit uint8, maxIntensity int, rng *rand.Rand) bool {
	v := pixels[i]
	if LSB(v) == bit&1 {
		return false
	}
	if rng.IntN(2) == 1 {
		if v != maxIntensity {
			v++
		} else {
			v--
		}
	} else {
		if v != 0 {
			v--
		} else {
			v++
		}
	}
	pixels[i] = v
	return true
}

// Validate checks that maxIntensity can absorb a nudge and that every pixel
// lies in [0, maxIntensity].
func Validate(pixels []int, maxIntensity int) error {
	if maxIntensity < 1 {
		return types.Errorf(types.ErrKindInvalidArgument,
			"pixel: max intensity %d leaves no room for an LSB change", maxIntensity)
	}
	for i, v := range pixels {
		if v < 0 || v > maxIntensity {
			return types.Errorf(types.ErrKindInvalidArgument,
				"pixel: value %d at index %d outside [0, %d]", v, i, maxIntensity)
		}
	}
	return nil
}
