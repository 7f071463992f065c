// Package mmfile exposes a cover image file as a read-only byte slice,
// memory-mapped where the platform supports it.
//
// The returned release function must be called once the caller no longer
// needs the bytes; slices into the mapping are invalid afterwards. Decoders
// copy samples out of the mapping, so the mapping can be released as soon as
// decoding finishes.
package mmfile
