// Package bitstream converts between byte buffers and bit sequences and
// encodes the fixed-size file-extension suffix carried after a file payload.
//
// # Bit order
//
// Every byte expands to 8 bits, most-significant bit first:
//
//	0x41 ('A') -> [0 1 0 0 0 0 0 1]
//
// ToBytes is the exact inverse for streams whose length is a multiple of 8.
// A trailing group shorter than 8 bits is dropped, never zero-padded, and
// its size is reported to the caller.
//
// # Extension suffix
//
// In file mode the payload bits are followed by a 40-bit field holding up to
// four extension characters (the leading '.' is implied) as Windows-1252
// bytes, zero-padded to five bytes:
//
//	".txt" -> 't' 'x' 't' 0x00 0x00
//	".c"   -> 'c' 0x00 0x00 0x00 0x00
//
// # Minimal representations
//
// MinimalBits(n) is the big-endian binary form of n using exactly as many
// bits as n needs. The length prefix of a cover image is sized with it.
package bitstream
