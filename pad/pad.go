// Package pad implements the block-padding family: ISO7816-4, PKCS#7,
// TBC (trailing-bit-complement), and ANSI X.923.
package pad

// Padding is the common contract every scheme in this package implements.
// Add fills block[offset:] with the padding convention; Length recovers
// the original pad byte count from a fully padded block.
type Padding interface {
	// Name returns the padding scheme's name.
	Name() string
	// Add fills block[offset:len(block)] with this scheme's padding.
	// offset must be in [0, len(block)].
	Add(block []byte, offset int) error
	// Length returns the number of padding bytes in block, as added by
	// Add starting at the offset Add was called with.
	Length(block []byte) (int, error)
}
