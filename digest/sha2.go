package digest

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"
)

type namedHash struct {
	hash.Hash
	name string
}

func (n *namedHash) Name() string { return n.name }

// NewSHA256 returns a SHA-256 Digest (stdlib crypto/sha256).
func NewSHA256() Digest { return &namedHash{Hash: sha256.New(), name: "SHA256"} }

// NewSHA512 returns a SHA-512 Digest (stdlib crypto/sha512).
func NewSHA512() Digest { return &namedHash{Hash: sha512.New(), name: "SHA512"} }
