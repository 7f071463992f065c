// Package hamming implements matrix embedding with binary Hamming codes
// (syndrome coding).
//
// # Overview
//
// A parity-check matrix H with r rows has 2^r - 1 columns; column j
// (1-indexed) is the r-bit binary expansion of j, least-significant bit in
// row 0. Every nonzero r-bit vector appears exactly once, so any nonzero
// syndrome names exactly one column.
//
// To hide r message bits m in a block v of 2^r - 1 pixel LSBs:
//
//	s = H·v          (GF(2))
//	t = s + m        (XOR)
//	t == 0  -> v already encodes m, nothing changes
//	t != 0  -> flip the LSB at the column equal to t; now H·v' = m
//
// Decoding needs no side information: H·v' is the message.
//
// # Block layout
//
// Blocks follow the length prefix back to back, block i covering pixels
// [start + i*columns, start + (i+1)*columns). ⌈n/rows⌉ blocks carry n bits.
//
// Padding rule: message positions past the payload end read as 1, and on
// extraction pixel positions past the buffer end read as LSB 1. The last
// block's syndrome therefore depends on this rule; extraction truncates to
// the declared payload length.
//
// # Choosing the code size
//
// BestSize favors the largest r (fewest changed pixels per hidden bit) whose
// capacity ⌊capacityBits/columns⌋·r still holds the payload. A result with
// columns ≤ 2 means the payload is too large for syndrome coding and the
// caller falls back to one bit per pixel.
package hamming
