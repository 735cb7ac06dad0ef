// Package digest provides the message-digest family: a common contract
// implemented by SHA-2, SHA-3/Keccak, SHAKE, Blake2 and Skein, each usable
// anywhere the kdf/drbg packages need an underlying hash or XOF.
package digest

import "hash"

// Digest is the common contract every fixed-output digest in this package
// implements. It is a superset of hash.Hash with a Name for enumeration
// and logging.
type Digest interface {
	hash.Hash
	Name() string
}

// XOF is the common contract for extendable-output functions (SHAKE,
// cSHAKE): output is squeezed on demand via Read rather than fixed by Sum.
type XOF interface {
	Name() string
	Write(p []byte) (int, error)
	Read(p []byte) (int, error)
	Reset()
	Clone() XOF
}
