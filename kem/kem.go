// Package kem implements the AEAD envelope CEX wraps around a
// post-quantum key-encapsulation mechanism's shared secret. The KEM's
// own lattice/code-based math is an external collaborator supplied by
// github.com/cloudflare/circl/kem; this package only derives a
// symmetric key from the shared secret and seals/opens a caller payload
// under it.
package kem

import (
	"github.com/cloudflare/circl/kem"

	"github.com/lukw00heck/CEX/block"
	"github.com/lukw00heck/CEX/digest"
	"github.com/lukw00heck/CEX/internal/api"
	"github.com/lukw00heck/CEX/mode"
	"github.com/lukw00heck/CEX/prng"
)

const (
	tagSize     = 16
	nonceSize   = 12
	aeadKeySize = 32
)

// Envelope seals a caller payload under a fresh shared secret drawn
// from a circl/kem.Scheme. Output format is kemCt || nonce || ciphertext
// || tag, where kemCt is the scheme's own encapsulation.
type Envelope struct {
	scheme    kem.Scheme
	keyDigest digest.Digest
	rng       prng.Prng
	newCipher func() block.Cipher
}

// NewEnvelope constructs an Envelope over scheme, deriving its AEAD key
// from the KEM shared secret via keyDigest and drawing nonces from rng.
func NewEnvelope(scheme kem.Scheme, keyDigest digest.Digest, rng prng.Prng, newCipher func() block.Cipher) *Envelope {
	return &Envelope{scheme: scheme, keyDigest: keyDigest, rng: rng, newCipher: newCipher}
}

// deriveKey hashes the KEM shared secret down to aeadKeySize bytes
// through the configured digest, matching spec.md §4.7's "derive a
// symmetric key from the KEM's secret via the configured digest."
func (e *Envelope) deriveKey(sharedSecret []byte) []byte {
	e.keyDigest.Reset()
	e.keyDigest.Write(sharedSecret)
	sum := e.keyDigest.Sum(nil)
	if len(sum) >= aeadKeySize {
		return sum[:aeadKeySize]
	}
	out := make([]byte, aeadKeySize)
	copy(out, sum)
	return out
}

// GenerateKeyPair delegates directly to the wrapped scheme.
func (e *Envelope) GenerateKeyPair() (kem.PublicKey, kem.PrivateKey, error) {
	return e.scheme.GenerateKeyPair()
}

// Seal encapsulates a fresh shared secret against pk, derives an AEAD
// key from it, and seals plaintext under a random nonce. The returned
// blob is ct || nonce || ciphertext || tag; ct is the KEM's own
// encapsulation and varies in length per scheme, so Open must be handed
// the full blob alongside sk.
func (e *Envelope) Seal(pk kem.PublicKey, plaintext, aad []byte) ([]byte, error) {
	kemCt, sharedSecret, err := e.scheme.Encapsulate(pk)
	if err != nil {
		return nil, api.New("kem.Envelope", api.Unsupported, err.Error())
	}
	defer zero(sharedSecret)

	key := e.deriveKey(sharedSecret)
	defer zero(key)

	nonce := make([]byte, nonceSize)
	if err := e.rng.NextBytes(nonce); err != nil {
		return nil, err
	}

	g := mode.NewGCM()
	sealed, err := g.Seal(nil, key, nonce, plaintext, aad, e.newCipher())
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(kemCt)+len(nonce)+len(sealed))
	out = append(out, kemCt...)
	out = append(out, nonce...)
	out = append(out, sealed...)
	return out, nil
}

// Open decapsulates the leading KEM ciphertext with sk, rederives the
// AEAD key, and opens the trailing nonce||ciphertext||tag. Any tag
// mismatch returns api.AuthenticationFailure without emitting plaintext.
func (e *Envelope) Open(sk kem.PrivateKey, blob, aad []byte) ([]byte, error) {
	kemCtSize := e.scheme.CiphertextSize()
	if len(blob) < kemCtSize+nonceSize+tagSize {
		return nil, api.New("kem.Envelope", api.InvalidArgument, "blob shorter than KEM ciphertext + nonce + tag")
	}
	kemCt := blob[:kemCtSize]
	nonce := blob[kemCtSize : kemCtSize+nonceSize]
	sealed := blob[kemCtSize+nonceSize:]

	sharedSecret, err := e.scheme.Decapsulate(sk, kemCt)
	if err != nil {
		return nil, api.New("kem.Envelope", api.AuthenticationFailure, err.Error())
	}
	defer zero(sharedSecret)

	key := e.deriveKey(sharedSecret)
	defer zero(key)

	g := mode.NewGCM()
	return g.Open(nil, key, nonce, sealed, aad, e.newCipher())
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
