// Package kdf implements the key-derivation family: KDF2, HKDF, PBKDF2 and
// a SHAKE/cSHAKE-based KDF, each driven by one digest.Digest and exposing
// a common streaming Generate contract.
package kdf

import "github.com/lukw00heck/CEX/internal/api"

// Kdf is the common key-derivation contract.
type Kdf interface {
	// Generate writes length bytes of derived key material into
	// out[outOff:], returning the number of bytes written.
	Generate(out []byte, outOff, length int) (int, error)
	// Reset clears internal counters/buffers so Generate starts over.
	Reset()
}

func originErr(origin string, kind api.Kind, detail string) error {
	return api.New(origin, kind, detail)
}

// Aliases used across this package's Kind arguments for brevity.
const (
	invalidKey      = api.InvalidKey
	invalidArgument = api.InvalidArgument
	exhausted       = api.Exhausted
)
