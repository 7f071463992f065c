package hamming

import (
	"fmt"

	"github.com/joshuapare/stegkit/pkg/types"
	"github.com/joshuapare/stegkit/steg/bitstream"
)

// Matrix is an immutable binary Hamming parity-check matrix. Column j
// (0-indexed) is the binary expansion of j+1, so columns are computed
// rather than stored.
type Matrix struct {
	rows    int
	columns int
}

// Generate builds the parity-check matrix with the given rows and columns.
// columns must equal 2^rows - 1 and rows must be at least 2.
func Generate(rows, columns int) (*Matrix, error) {
	if err := checkSize(rows, columns); err != nil {
		return nil, err
	}
	return &Matrix{rows: rows, columns: columns}, nil
}

func checkSize(rows, columns int) error {
	if rows < types.MinHammingRows || columns <= 2 {
		return types.Errorf(types.ErrKindInvalidArgument,
			"hamming: code (%d, %d) too small, use sequential embedding", rows, columns)
	}
	if rows > types.MaxHammingRows || columns != 1<<rows-1 {
		return types.Errorf(types.ErrKindInvalidArgument,
			"hamming: columns %d must equal 2^%d-1", columns, rows)
	}
	return nil
}

// Rows returns the number of message bits per block.
func (m *Matrix) Rows() int { return m.rows }

// Columns returns the number of pixels per block.
func (m *Matrix) Columns() int { return m.columns }

// Column returns column j (0-indexed), entry r being bit r of j+1.
func (m *Matrix) Column(j int) []uint8 {
	return m.expand(uint64(j + 1))
}

func (m *Matrix) expand(x uint64) []uint8 {
	out := make([]uint8, m.rows)
	for r := range out {
		out[r] = uint8(x >> r & 1)
	}
	return out
}

// Multiply returns the GF(2) product H·v. v must have Columns() entries;
// only the low bit of each entry is used.
func (m *Matrix) Multiply(v []uint8) []uint8 {
	if len(v) != m.columns {
		panic(fmt.Sprintf("hamming: multiply by %d-vector, want %d", len(v), m.columns))
	}
	// Summing columns over GF(2) is XOR of their indices.
	var s uint64
	for j, b := range v {
		if b&1 != 0 {
			s ^= uint64(j + 1)
		}
	}
	return m.expand(s)
}

// Add returns the component-wise XOR of a and b, which must be the same length.
func Add(a, b []uint8) []uint8 {
	if len(a) != len(b) {
		panic(fmt.Sprintf("hamming: add %d-vector to %d-vector", len(a), len(b)))
	}
	out := make([]uint8, len(a))
	for i := range a {
		out[i] = (a[i] ^ b[i]) & 1
	}
	return out
}

// IsZero reports whether every entry of v is 0.
func IsZero(v []uint8) bool {
	for _, x := range v {
		if x&1 != 0 {
			return false
		}
	}
	return true
}

// FindColumn returns the 0-indexed column equal to target. A nonzero target
// of length Rows() always matches; anything else is an invariant violation.
func (m *Matrix) FindColumn(target []uint8) (int, error) {
	var t uint64
	for r, b := range target {
		t |= uint64(b&1) << r
	}
	if len(target) != m.rows || t == 0 {
		return 0, &types.Error{
			Kind: types.ErrKindInternal,
			Msg:  "hamming: syndrome matches no column",
			Err:  fmt.Errorf("target %v in (%d, %d) matrix", target, m.rows, m.columns),
		}
	}
	return int(t - 1), nil
}

// BestSize chooses (rows, columns) for payloadBits message bits spread over
// capacityBits pixels. It starts at rows=2 and grows rows while the capacity
// ⌊capacityBits/columns⌋·rows exceeds the payload, then steps back once if
// the last candidate falls short. columns ≤ 2 means syndrome coding cannot
// hold the payload.
func BestSize(capacityBits, payloadBits int) (rows, columns int) {
	capacityBits = max(capacityBits, 0)
	rows = types.MinHammingRows
	columns = 1<<rows - 1
	capacity := capacityBits / columns * rows

	for capacity > payloadBits && rows < types.MaxHammingRows {
		rows++
		columns = 1<<rows - 1
		capacity = capacityBits / columns * rows
	}

	if capacity < payloadBits {
		rows--
		columns = 1<<rows - 1
	}
	return rows, columns
}

// Capacity returns the number of message bits (rows, columns) coding can hide
// in capacityBits pixels.
func Capacity(capacityBits, rows, columns int) int {
	if columns <= 0 {
		return 0
	}
	return max(capacityBits, 0) / columns * rows
}

func blockBits(b bitstream.Bits, i, rows int) []uint8 {
	msg := make([]uint8, rows)
	for r := range msg {
		k := i*rows + r
		if k < len(b) {
			msg[r] = b[k] & 1
		} else {
			msg[r] = 1
		}
	}
	return msg
}
