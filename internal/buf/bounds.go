package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies two non-negative ints, returning ok = false when
// the result would overflow int or either operand is negative.
// Image dimensions (width * height * channels) go through this.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// CheckBlocks validates that count blocks of blockSize elements fit in a
// buffer of bufLen elements starting at offset. Returns the end offset if
// valid, or an error describing the specific failure (overflow or out of
// bounds).
//
//	end, err := buf.CheckBlocks(len(pixels), prefixLen, blocks, columns)
//	if err != nil {
//	    return fmt.Errorf("hamming: %w", err)
//	}
func CheckBlocks(bufLen, offset, count, blockSize int) (int, error) {
	if offset < 0 {
		return 0, fmt.Errorf("negative offset: %d", offset)
	}
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}
	if blockSize < 0 {
		return 0, fmt.Errorf("negative block size: %d", blockSize)
	}

	total, ok := MulOverflowSafe(count, blockSize)
	if !ok {
		return 0, fmt.Errorf("overflow: count=%d * blockSize=%d", count, blockSize)
	}

	end, ok := AddOverflowSafe(offset, total)
	if !ok {
		return 0, fmt.Errorf("overflow: offset=%d + size=%d", offset, total)
	}

	if end > bufLen {
		return 0, fmt.Errorf("bounds: end=%d > len=%d", end, bufLen)
	}

	return end, nil
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice[T any](b []T, off, n int) ([]T, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}
