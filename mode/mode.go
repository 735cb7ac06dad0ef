// Package mode implements the cipher-mode family: CTR, ICM, CBC, CFB,
// OFB, ECB, and the GCM-style AEAD, each driving a block.Cipher.
package mode

import (
	"github.com/lukw00heck/CEX/block"
	"github.com/lukw00heck/CEX/internal/api"
)

// Mode is the common streaming-transform contract every cipher mode in
// this package implements.
type Mode interface {
	// Name returns the mode's algorithm name.
	Name() string
	// BlockSize returns the underlying cipher's block width.
	BlockSize() int
	// IsEncryption reports the direction Initialize was called with.
	IsEncryption() bool
	// IsInitialized reports whether Initialize has completed.
	IsInitialized() bool
	// Initialize binds this mode to cipher and sets up chaining/counter
	// state from key.Nonce. CTR, ICM, CBC, CFB and OFB require key.Nonce
	// to be BlockSize() bytes; GCM requires a 12-byte nonce; ECB ignores
	// key.Nonce.
	Initialize(cipher block.Cipher, encryption bool, key api.SymmetricKey) error
	// Transform processes length bytes of in[inOff:] into out[outOff:].
	// CTR, ICM and GCM accept any length. CBC, ECB, CFB and OFB process
	// whole blocks only: length must be a multiple of BlockSize(), and
	// api.ErrInvalidArgument is returned otherwise.
	Transform(in []byte, inOff int, out []byte, outOff int, length int) error
	// ParallelOptions returns this mode's parallel-execution profile.
	ParallelOptions() *ParallelOptions
	// Reset scrubs chaining/counter state.
	Reset()
}

// AEAD extends Mode with authenticated-encryption bookkeeping.
type AEAD interface {
	Mode
	// UpdateAAD feeds associated data into the running MAC. Must be
	// called, if at all, before the first Transform call.
	UpdateAAD(aad []byte) error
	// Finalize computes the authentication tag into out[outOff:] and
	// returns the number of bytes written (TagSize()). Must be called
	// exactly once, after all Transform calls.
	Finalize(out []byte, outOff int) (int, error)
	// Verify reports whether tag matches the tag Finalize would produce,
	// compared in constant time.
	Verify(tag []byte) bool
	// TagSize returns the authentication tag length in bytes.
	TagSize() int
}

// ParallelOptions is the parallel-execution profile a mode exposes:
// block count per loop, an L1-cache-sized maximum, and an explicit enable
// flag. Per spec.md §4.2, parallelism never changes outputs; every mode
// in this package runs its scalar path regardless of these values today,
// but carries the struct so a future SIMD bulk-transform backend
// (internal/hardware-gated, as block.Cipher's Transform512/1024/2048
// already plan for) has a home.
type ParallelOptions struct {
	BlockCount int
	L1Max      int
	Enabled    bool
}

// DefaultParallelOptions returns a conservative profile: disabled, 8
// blocks per loop, a 32KiB L1 budget.
func DefaultParallelOptions() *ParallelOptions {
	return &ParallelOptions{BlockCount: 8, L1Max: 32 * 1024, Enabled: false}
}
