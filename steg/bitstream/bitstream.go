package bitstream

import (
	"bytes"
	"math/bits"

	"github.com/icza/bitio"
)

// Bits is an ordered sequence of single-bit values, each 0 or 1.
type Bits []uint8

// Len returns the number of bits.
func (b Bits) Len() int { return len(b) }

// Clone returns an independent copy of b.
func (b Bits) Clone() Bits {
	if b == nil {
		return nil
	}
	out := make(Bits, len(b))
	copy(out, b)
	return out
}

// FromBytes expands data into 8 bits per byte, most-significant bit first.
func FromBytes(data []byte) Bits {
	out := make(Bits, 0, len(data)*8)
	r := bitio.NewReader(bytes.NewReader(data))
	for {
		set, err := r.ReadBool()
		if err != nil {
			// io.EOF once every byte has been consumed.
			break
		}
		out = append(out, bit(set))
	}
	return out
}

// ToBytes groups bits into bytes of 8, most-significant bit first.
// A trailing group shorter than 8 bits is dropped; dropped reports its size.
func ToBytes(b Bits) (data []byte, dropped int) {
	whole := len(b) - len(b)%8
	var out bytes.Buffer
	out.Grow(whole / 8)
	w := bitio.NewWriter(&out)
	// Writes into a bytes.Buffer cannot fail.
	for _, v := range b[:whole] {
		_ = w.WriteBool(v&1 == 1)
	}
	_ = w.Close()
	return out.Bytes(), len(b) - whole
}

// MinimalLen returns the number of bits needed to represent n, i.e. the
// smallest k with 2^(k-1) <= n < 2^k. By convention MinimalLen(0) is 1 so
// that a zero value still occupies one bit. Negative n yields 0.
func MinimalLen(n int) int {
	if n < 0 {
		return 0
	}
	if n == 0 {
		return 1
	}
	return bits.Len(uint(n))
}

// MinimalBits returns n in big-endian binary using MinimalLen(n) bits, along
// with that length.
func MinimalBits(n int) (Bits, int) {
	length := MinimalLen(n)
	return PutUint(uint64(max(n, 0)), length), length
}

// PutUint returns the low width bits of v in big-endian order. Higher bits
// of v that do not fit are discarded.
func PutUint(v uint64, width int) Bits {
	out := make(Bits, width)
	for i := width - 1; i >= 0; i-- {
		out[i] = uint8(v & 1)
		v >>= 1
	}
	return out
}

// Uint interprets b as a big-endian unsigned integer.
func Uint(b Bits) uint64 {
	var v uint64
	for _, x := range b {
		v = v<<1 | uint64(x&1)
	}
	return v
}

func bit(set bool) uint8 {
	if set {
		return 1
	}
	return 0
}
