// Package block implements the block-cipher family: the common Cipher
// contract, and two algorithms (RHX, a Rijndael/AES-family cipher, and
// SHX, a Serpent-family cipher), each supporting a standard fixed key
// schedule and an HKDF-driven extended schedule.
package block

import "github.com/lukw00heck/CEX/internal/api"

// Cipher is the block-cipher contract every algorithm in this package
// implements. After a successful Initialize, Transform/EncryptBlock/
// DecryptBlock never fail; they always overwrite BlockSize() bytes of
// output.
type Cipher interface {
	// Name returns the cipher's algorithm name.
	Name() string
	// BlockSize returns the cipher's block width in bytes.
	BlockSize() int
	// LegalKeySizes returns the key sizes this cipher accepts.
	LegalKeySizes() []api.SymmetricKeySize
	// LegalRounds returns the round counts this cipher accepts.
	LegalRounds() []int
	// Rounds returns the number of rounds this instance was built with.
	Rounds() int
	// DistributionCodeMax returns the maximum Info length usable as the
	// extended schedule's HKDF personalization string.
	DistributionCodeMax() int
	// IsEncryption reports the direction Initialize was called with.
	IsEncryption() bool
	// IsInitialized reports whether Initialize has completed successfully.
	IsInitialized() bool
	// Initialize sets up the round-key schedule for encryption or
	// decryption from key. Returns api.ErrInvalidKey if key.Key's length
	// is not in LegalKeySizes(), or if key.Info exceeds
	// DistributionCodeMax() under the extended schedule.
	Initialize(encryption bool, key api.SymmetricKey) error
	// EncryptBlock encrypts one BlockSize()-byte block.
	EncryptBlock(in []byte, inOff int, out []byte, outOff int)
	// DecryptBlock decrypts one BlockSize()-byte block.
	DecryptBlock(in []byte, inOff int, out []byte, outOff int)
	// Transform dispatches to EncryptBlock or DecryptBlock depending on
	// the direction Initialize was called with.
	Transform(in []byte, inOff int, out []byte, outOff int)
	// Transform512 processes 512 bits (64 bytes; 4 blocks for a 16-byte
	// block cipher) of input in one call; a scalar fallback loop over
	// Transform today, the lane width internal/hardware's capability
	// snapshot gates a future SIMD backend for.
	Transform512(in []byte, inOff int, out []byte, outOff int)
	// Transform1024 processes 1024 bits (128 bytes; 8 blocks for a
	// 16-byte block cipher) of input.
	Transform1024(in []byte, inOff int, out []byte, outOff int)
	// Transform2048 processes 2048 bits (256 bytes; 16 blocks for a
	// 16-byte block cipher) of input.
	Transform2048(in []byte, inOff int, out []byte, outOff int)
	// Reset scrubs the round-key schedule and any other secret state.
	Reset()
}

// transformBulk runs count BlockSize()-sized Transform calls starting at
// inOff/outOff, the scalar-fallback lane every Transform512/1024/2048
// shares.
func transformBulk(c Cipher, in []byte, inOff int, out []byte, outOff int, totalBits int) {
	n := (totalBits / 8) / c.BlockSize()
	bs := c.BlockSize()
	for i := 0; i < n; i++ {
		c.Transform(in, inOff+i*bs, out, outOff+i*bs)
	}
}
