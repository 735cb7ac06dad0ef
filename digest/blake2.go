package digest

import (
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
)

// NewBlake2b256 returns an unkeyed Blake2b-256 Digest.
func NewBlake2b256() Digest {
	h, err := blake2b.New256(nil)
	if err != nil {
		// blake2b.New256(nil) only fails for an invalid key length; nil is
		// always valid, so this path is unreachable.
		panic(err)
	}
	return &namedHash{Hash: h, name: "BLAKE2b-256"}
}

// NewBlake2b512 returns an unkeyed Blake2b-512 Digest.
func NewBlake2b512() Digest {
	h, err := blake2b.New512(nil)
	if err != nil {
		panic(err)
	}
	return &namedHash{Hash: h, name: "BLAKE2b-512"}
}

// NewBlake2s256 returns an unkeyed Blake2s-256 Digest.
func NewBlake2s256() Digest {
	h, err := blake2s.New256(nil)
	if err != nil {
		panic(err)
	}
	return &namedHash{Hash: h, name: "BLAKE2s-256"}
}
