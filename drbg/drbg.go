// Package drbg implements the deterministic random bit generator family:
// CSG (a cSHAKE sponge), BCG (block-cipher CTR), HCG (NIST SP 800-90A
// Hash_DRBG) and HMG (NIST SP 800-90A HMAC_DRBG).
package drbg

import "github.com/lukw00heck/CEX/provider"

// Drbg is the common contract every generator in this package implements.
type Drbg interface {
	// Name returns the generator's algorithm name.
	Name() string
	// Initialize seeds the generator from seed (entropy), nonce, and an
	// optional personalization string info.
	Initialize(seed, nonce, info []byte) error
	// Generate fills out[outOff:outOff+length] with pseudo-random bytes.
	// CSG, HCG and HMG return api.ErrExhausted once an output or request
	// limit is exceeded, or once the reseed threshold is reached with no
	// provider configured. BCG has no output limit and never returns
	// api.ErrExhausted.
	Generate(out []byte, outOff, length int) (int, error)
	// Update mixes additional caller-supplied entropy into the running
	// state without fully reseeding.
	Update(seed []byte) error
	// Reseed draws fresh entropy from p and reinitializes internal state,
	// resetting the output/reseed counters.
	Reseed(p provider.Provider) error
	// Reset scrubs all secret state.
	Reset()
}
