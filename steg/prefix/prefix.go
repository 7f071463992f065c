// Package prefix embeds and reads the self-describing length header stored
// in the first LSBs of a cover image.
//
// The header occupies Length(dimension) pixels. Its value is
// payloadBits + Length(dimension), written big-endian and right-aligned, so a
// decoder that knows only the buffer size can locate the end of the payload.
package prefix

import (
	"math/rand/v2"

	"github.com/joshuapare/stegkit/internal/pixel"
	"github.com/joshuapare/stegkit/pkg/types"
	"github.com/joshuapare/stegkit/steg/bitstream"
)

// Header is the decoded length prefix.
type Header struct {
	Value  int // payloadBits + Length
	Length int // number of pixels the header occupies
}

// PayloadBits returns the number of payload bits following the header.
func (h Header) PayloadBits() int { return h.Value - h.Length }

// Length returns the prefix length for a buffer of dimension pixels:
// the minimal bit count representing dimension (32 -> 6, 31 -> 5).
func Length(dimension int) int {
	return bitstream.MinimalLen(dimension)
}

// Capacity returns the number of payload bits a buffer of dimension pixels
// can carry after its prefix. It is never negative.
func Capacity(dimension int) int {
	return max(dimension-Length(dimension), 0)
}

// Check reports CapacityExceeded when payloadBits cannot follow the prefix
// in a buffer of dimension pixels.
func Check(dimension, payloadBits int) error {
	if payloadBits < 0 {
		return types.Errorf(types.ErrKindInvalidArgument, "prefix: negative payload length %d", payloadBits)
	}
	if dimension < Length(dimension) || payloadBits > dimension-Length(dimension) {
		return &types.Error{
			Kind: types.ErrKindCapacity,
			Msg:  "prefix: payload does not fit",
			Err:  capacityDetail(dimension, payloadBits),
		}
	}
	return nil
}

// Embed writes the header for payloadBits into the first LSBs of pixels,
// nudging pixels whose LSB differs. Capacity is checked before any pixel is
// touched.
func Embed(pixels []int, maxIntensity, payloadBits int, rng *rand.Rand) (Header, error) {
	dimension := len(pixels)
	if err := Check(dimension, payloadBits); err != nil {
		return Header{}, err
	}

	length := Length(dimension)
	value := payloadBits + length
	valueBits, endBits := bitstream.MinimalBits(value)

	// Leading implicit zeros, then the value bits.
	lead := length - endBits
	for i := 0; i < lead; i++ {
		pixel.Set(pixels, i, 0, maxIntensity, rng)
	}
	for j, b := range valueBits {
		pixel.Set(pixels, lead+j, b, maxIntensity, rng)
	}

	return Header{Value: value, Length: length}, nil
}

// Read decodes the header from the first LSBs of pixels. It fails with
// ErrNoPayload when the value cannot describe a payload in this buffer.
func Read(pixels []int) (Header, error) {
	dimension := len(pixels)
	length := Length(dimension)
	if dimension < length {
		return Header{}, types.Errorf(types.ErrKindCapacity,
			"prefix: %d pixels cannot hold a %d-bit header", dimension, length)
	}

	raw := make(bitstream.Bits, length)
	for i := range raw {
		raw[i] = pixel.LSB(pixels[i])
	}
	h := Header{Value: int(bitstream.Uint(raw)), Length: length}

	if h.Value < length || h.Value > dimension {
		return Header{}, &types.Error{
			Kind: types.ErrKindCorrupt,
			Msg:  "prefix: no hidden payload",
			Err:  headerDetail(h, dimension),
		}
	}
	return h, nil
}
