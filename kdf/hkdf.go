package kdf

import (
	"crypto/hmac"
	"hash"
)

// HKDF implements RFC 5869: Extract (PRK = HMAC(salt, key)) followed by
// Expand (T_i = HMAC(PRK, T_{i-1} || info || i)), exposed as a streaming
// Generate rather than golang.org/x/crypto/hkdf's io.Reader, since this
// engine's Kdf contract wants an explicit bytes-written count. The Expand
// step is otherwise the same construction x/crypto/hkdf implements.
type HKDF struct {
	newHash func() hash.Hash
	prk     []byte
	info    []byte

	prev     []byte
	counter  byte
	cache    []byte
	cachePos int
	emitted  int
}

// NewHKDF runs Extract(salt, key) and returns an HKDF ready to Expand with
// info. Per RFC 5869 §2.2, a nil salt is replaced with a zero-filled
// hash-length string. Per spec.md §4.4, Extract is skipped (PRK = key
// directly) when key is already exactly one hash block long and no salt
// was supplied.
func NewHKDF(newHash func() hash.Hash, key, salt, info []byte) *HKDF {
	h := newHash()
	blockSize := h.Size()

	var prk []byte
	if salt == nil && len(key) == blockSize {
		prk = append([]byte(nil), key...)
	} else {
		if salt == nil {
			salt = make([]byte, blockSize)
		}
		mac := hmac.New(newHash, salt)
		mac.Write(key)
		prk = mac.Sum(nil)
	}

	return &HKDF{newHash: newHash, prk: prk, info: info}
}

// Generate writes length bytes of Expand output into out[outOff:].
func (k *HKDF) Generate(out []byte, outOff, length int) (int, error) {
	maxLen := 255 * len(k.prk)
	if k.emitted+length > maxLen {
		return 0, originErr("kdf.HKDF", exhausted, "requested output exceeds 255*hash_size")
	}

	written := 0
	for written < length {
		if k.cachePos == len(k.cache) {
			k.expandNext()
		}
		n := copy(out[outOff+written:outOff+length], k.cache[k.cachePos:])
		k.cachePos += n
		written += n
	}
	k.emitted += written
	return written, nil
}

func (k *HKDF) expandNext() {
	k.counter++
	mac := hmac.New(k.newHash, k.prk)
	mac.Write(k.prev)
	mac.Write(k.info)
	mac.Write([]byte{k.counter})
	k.prev = mac.Sum(nil)
	k.cache = k.prev
	k.cachePos = 0
}

// Reset rewinds Expand to T_0, keeping the extracted PRK and info.
func (k *HKDF) Reset() {
	k.prev = nil
	k.counter = 0
	k.cache = nil
	k.cachePos = 0
	k.emitted = 0
}
