// Package steg hides byte payloads in the least-significant bits of a pixel
// intensity buffer and recovers them.
//
// # Layout
//
// Every stego image starts with a length prefix (package prefix) in the first
// prefix.Length(dimension) pixel LSBs. The payload bits follow, placed by
// one of three modes:
//
//   - ModeSequential: one bit per pixel, pixels in natural order.
//   - ModeKeyed: one bit per pixel, pixels in a passphrase-permuted order.
//   - ModeHamming: syndrome coding, rows bits per 2^rows-1 pixel block with at
//     most one changed pixel per block. When the payload is too large for a
//     useful code the encoder falls back to sequential placement; the decoder
//     derives the same decision from the prefix.
//
// Independently of the mode, the payload bit order itself may be scrambled
// with a second passphrase (Options.PermutationKey).
//
// In file mode a 40-bit extension suffix follows the payload bytes and is
// covered by the bit permutation.
//
// # Usage
//
//	pixels, maxval := img.Pixels, img.MaxVal
//	rep, err := steg.Encode([]byte("hello"), pixels, maxval, steg.Options{
//	    Mode:         types.ModeKeyed,
//	    TraversalKey: "walk",
//	})
//	if err != nil {
//	    return err
//	}
//
//	msg, err := steg.Decode(pixels, steg.Options{Mode: types.ModeKeyed, TraversalKey: "walk"})
//
// Encode validates everything it can before touching a pixel: intensity
// range, mode, extension and capacity failures leave the buffer unchanged.
package steg
