package digest

import (
	"golang.org/x/crypto/sha3"
)

// NewSHA3_256 returns a SHA3-256 Digest.
func NewSHA3_256() Digest { return &namedHash{Hash: sha3.New256(), name: "SHA3-256"} }

// NewSHA3_512 returns a SHA3-512 Digest.
func NewSHA3_512() Digest { return &namedHash{Hash: sha3.New512(), name: "SHA3-512"} }

type shakeXOF struct {
	sha3.ShakeHash
	name string
}

func (s *shakeXOF) Name() string { return s.name }

func (s *shakeXOF) Clone() XOF {
	return &shakeXOF{ShakeHash: s.ShakeHash.Clone(), name: s.name}
}

// NewShake128 returns a SHAKE128 XOF.
func NewShake128() XOF { return &shakeXOF{ShakeHash: sha3.NewShake128(), name: "SHAKE128"} }

// NewShake256 returns a SHAKE256 XOF.
func NewShake256() XOF { return &shakeXOF{ShakeHash: sha3.NewShake256(), name: "SHAKE256"} }

// NewCShake128 returns a cSHAKE128 XOF customized with function-name N and
// customization string S. When both N and S are empty, cSHAKE128 is
// defined to be identical to SHAKE128.
func NewCShake128(n, s []byte) XOF {
	return &shakeXOF{ShakeHash: sha3.NewCShake128(n, s), name: "cSHAKE128"}
}

// NewCShake256 returns a cSHAKE256 XOF customized with function-name N and
// customization string S.
func NewCShake256(n, s []byte) XOF {
	return &shakeXOF{ShakeHash: sha3.NewCShake256(n, s), name: "cSHAKE256"}
}
