// Package types defines the shared vocabulary of stegkit: typed errors with
// stable categories, the embedding modes, and the fixed sizes of the layouts
// written into a cover image.
//
// Design goals:
//   - Typed errors so callers branch on intent rather than text.
//   - No package-level state; every random source is passed explicitly.
//   - Validation before mutation; a failed encode leaves the pixels untouched.
//
// This package has no dependencies beyond the standard library.
package types
