package kdf

import (
	"hash"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 wraps golang.org/x/crypto/pbkdf2's Key derivation (password-based,
// HMAC-driven, iteration-count stretched) behind the package's streaming
// Kdf contract. Named in spec.md's system-overview KDF list alongside
// KDF2/HKDF/SHAKE.
type PBKDF2 struct {
	password []byte
	salt     []byte
	iter     int
	newHash  func() hash.Hash

	cache    []byte
	cachePos int
}

// NewPBKDF2 constructs a PBKDF2 generator over password/salt with the
// given iteration count and underlying HMAC hash.
func NewPBKDF2(newHash func() hash.Hash, password, salt []byte, iter int) *PBKDF2 {
	return &PBKDF2{password: password, salt: salt, iter: iter, newHash: newHash}
}

// Generate writes length bytes into out[outOff:]. PBKDF2's reference
// implementation derives its whole output in one call, so Generate draws
// length bytes from a cache covering the requested span. When a call needs
// more bytes than are cached, the whole span is re-derived from scratch;
// the bytes already cached keep their values.
func (k *PBKDF2) Generate(out []byte, outOff, length int) (int, error) {
	need := k.cachePos + length
	if need > len(k.cache) {
		k.cache = pbkdf2.Key(k.password, k.salt, k.iter, need, k.newHash)
	}
	n := copy(out[outOff:outOff+length], k.cache[k.cachePos:need])
	k.cachePos += n
	return n, nil
}

// Reset rewinds the output cursor; the derived cache is kept so a
// subsequent Generate need not re-run the expensive iteration count.
func (k *PBKDF2) Reset() { k.cachePos = 0 }
