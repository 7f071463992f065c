// Package buf contains bounds-checked arithmetic and sample decoding helpers
// shared by the codec and the pixel-map reader.
package buf

import "encoding/binary"

// U16BE reads a big-endian uint16 from b. Returns 0 when b is too short.
// Pixel maps with maxval above 255 store each sample this way.
func U16BE(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

// PutU16BE writes v to b in big-endian order. b must hold at least 2 bytes.
func PutU16BE(b []byte, v uint16) {
	binary.BigEndian.PutUint16(b, v)
}

// SampleSize returns the number of bytes per sample for a pixel map with the
// given maxval: 1 below 256, 2 otherwise.
func SampleSize(maxval int) int {
	if maxval < 256 {
		return 1
	}
	return 2
}
