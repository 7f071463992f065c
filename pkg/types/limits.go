package types

// ============================================================================
// Layout constants
// ============================================================================
// These sizes are part of the bit-exact layouts written into a cover image.
// Changing any of them breaks interoperability with existing stego images.

const (
	// ExtensionSuffixBytes is the size of the file-extension field appended
	// after the payload in file mode.
	ExtensionSuffixBytes = 5

	// ExtensionSuffixBits is ExtensionSuffixBytes in bits (40).
	ExtensionSuffixBits = ExtensionSuffixBytes * 8

	// MaxExtensionLen is the longest accepted extension, dot included.
	MaxExtensionLen = 5

	// DJB2Seed is the initial value of the passphrase hash.
	DJB2Seed = 5381

	// MinHammingRows is the smallest useful syndrome code (3 pixels per 2 bits).
	MinHammingRows = 2

	// MaxHammingRows bounds the code-size search so 1<<rows never overflows.
	MaxHammingRows = 62
)
