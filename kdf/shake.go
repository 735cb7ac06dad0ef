package kdf

import "github.com/lukw00heck/CEX/digest"

// SHAKE is the SHAKE/cSHAKE-based KDF: it absorbs a key (and, if N or S
// are supplied, switches to cSHAKE's customized domain separation) and
// squeezes derived bytes on demand. golang.org/x/crypto/sha3's
// NewShake256/NewCShake256 already implement the bytepad/encode_string
// framing and 0x1F/0x04 domain separation spec.md §4.4 describes, so this
// type is a thin Kdf-contract wrapper rather than a reimplementation.
type SHAKE struct {
	xof     digest.XOF
	initial digest.XOF
	started bool
}

// NewSHAKE256 constructs a SHAKE-based Kdf. If customization or funcName
// is non-empty, the underlying primitive is cSHAKE256; otherwise it is
// plain SHAKE256.
func NewSHAKE256(key, customization, funcName []byte) *SHAKE {
	var xof digest.XOF
	if len(customization) > 0 || len(funcName) > 0 {
		xof = digest.NewCShake256(funcName, customization)
	} else {
		xof = digest.NewShake256()
	}
	xof.Write(key)
	return &SHAKE{xof: xof, initial: xof.Clone()}
}

// Generate squeezes length bytes into out[outOff:]. Calls are cumulative:
// successive Generate calls continue squeezing rather than restarting.
func (k *SHAKE) Generate(out []byte, outOff, length int) (int, error) {
	return k.xof.Read(out[outOff : outOff+length])
}

// Reset restores the sponge to its state just after the key was absorbed,
// so the next Generate squeezes from the start of the output stream again.
func (k *SHAKE) Reset() { k.xof = k.initial.Clone() }
