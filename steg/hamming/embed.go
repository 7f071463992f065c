package hamming

import (
	"math/rand/v2"

	"github.com/joshuapare/stegkit/internal/buf"
	"github.com/joshuapare/stegkit/internal/pixel"
	"github.com/joshuapare/stegkit/pkg/types"
	"github.com/joshuapare/stegkit/steg/bitstream"
)

// Blocks returns the number of blocks needed for payloadBits message bits.
func (m *Matrix) Blocks(payloadBits int) int {
	return (payloadBits + m.rows - 1) / m.rows
}

// EmbedBlock hides msg (Rows() bits) in block, a window of Columns() pixels,
// flipping at most one LSB with the nudge rule. It reports whether a pixel
// changed.
func (m *Matrix) EmbedBlock(block []int, msg []uint8, maxIntensity int, rng *rand.Rand) (bool, error) {
	if len(block) != m.columns || len(msg) != m.rows {
		return false, types.Errorf(types.ErrKindInvalidArgument,
			"hamming: block of %d pixels and %d bits for (%d, %d) code",
			len(block), len(msg), m.rows, m.columns)
	}
	v := make([]uint8, m.columns)
	for j, p := range block {
		v[j] = pixel.LSB(p)
	}
	target := Add(m.Multiply(v), msg)
	if IsZero(target) {
		return false, nil
	}
	j, err := m.FindColumn(target)
	if err != nil {
		return false, err
	}
	return pixel.Set(block, j, v[j]^1, maxIntensity, rng), nil
}

// Embed hides payload in consecutive blocks starting at pixel start and
// returns the number of pixels changed. Every block must lie inside pixels;
// that is checked before any pixel is touched.
func Embed(pixels []int, maxIntensity, start int, payload bitstream.Bits, m *Matrix, rng *rand.Rand) (int, error) {
	blocks := m.Blocks(len(payload))
	if _, err := buf.CheckBlocks(len(pixels), start, blocks, m.columns); err != nil {
		return 0, types.Wrap(types.ErrKindCapacity, "hamming: payload does not fit", err)
	}

	changed := 0
	for i := 0; i < blocks; i++ {
		off := start + i*m.columns
		ok, err := m.EmbedBlock(pixels[off:off+m.columns], blockBits(payload, i, m.rows), maxIntensity, rng)
		if err != nil {
			return changed, err
		}
		if ok {
			changed++
		}
	}
	return changed, nil
}

// Extract recovers payloadBits message bits from the blocks starting at
// pixel start. Pixels past the end of the buffer read as LSB 1.
func Extract(pixels []int, start, payloadBits int, m *Matrix) (bitstream.Bits, error) {
	if payloadBits < 0 || start < 0 {
		return nil, types.Errorf(types.ErrKindInvalidArgument,
			"hamming: extract %d bits at %d", payloadBits, start)
	}
	blocks := m.Blocks(payloadBits)
	out := make(bitstream.Bits, 0, blocks*m.rows)
	v := make([]uint8, m.columns)
	for i := 0; i < blocks; i++ {
		off := start + i*m.columns
		for j := range v {
			if k := off + j; k < len(pixels) {
				v[j] = pixel.LSB(pixels[k])
			} else {
				v[j] = 1
			}
		}
		out = append(out, m.Multiply(v)...)
	}
	return out[:payloadBits], nil
}
