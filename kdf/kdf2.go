package kdf

import (
	"encoding/binary"

	"github.com/lukw00heck/CEX/digest"
)

// KDF2 is the counter-mode digest KDF: for counter c = 1, 2, ..., it emits
// digest(key || c_be32 || salt[||info]) bytes until the requested length
// is met, capped at 255 digest-sized blocks per instance.
type KDF2 struct {
	d        digest.Digest
	key      []byte
	salt     []byte
	counter  uint32
	cache    []byte
	cachePos int
	emitted  int
}

// NewKDF2 constructs a KDF2 over key, driven by d. key must be at least
// d.Size() bytes.
func NewKDF2(d digest.Digest, key []byte) (*KDF2, error) {
	if len(key) < d.Size() {
		return nil, originErr("kdf.KDF2", invalidKey, "key shorter than digest size")
	}
	return &KDF2{d: d, key: append([]byte(nil), key...), counter: 1}, nil
}

// NewKDF2WithSalt constructs a KDF2 over key and salt (optionally with
// info appended to the salt). salt must be at least 4 bytes.
func NewKDF2WithSalt(d digest.Digest, key, salt, info []byte) (*KDF2, error) {
	if len(key) < d.Size() {
		return nil, originErr("kdf.KDF2", invalidKey, "key shorter than digest size")
	}
	if len(salt) < 4 {
		return nil, originErr("kdf.KDF2", invalidArgument, "salt shorter than 4 bytes")
	}
	s := append([]byte(nil), salt...)
	s = append(s, info...)
	return &KDF2{d: d, key: append([]byte(nil), key...), salt: s, counter: 1}, nil
}

// maxBytes is the 255 * digest_size output cap.
func (k *KDF2) maxBytes() int { return 255 * k.d.Size() }

// Generate writes length bytes into out[outOff:]. Returns api.ErrExhausted
// wrapped once more than maxBytes() total has been requested across the
// lifetime of this instance.
func (k *KDF2) Generate(out []byte, outOff, length int) (int, error) {
	if k.emitted+length > k.maxBytes() {
		return 0, originErr("kdf.KDF2", exhausted, "requested output exceeds 255*digest_size")
	}

	written := 0
	for written < length {
		if k.cachePos == len(k.cache) {
			k.refill()
		}
		n := copy(out[outOff+written:outOff+length], k.cache[k.cachePos:])
		k.cachePos += n
		written += n
	}
	k.emitted += written
	return written, nil
}

func (k *KDF2) refill() {
	k.d.Reset()
	k.d.Write(k.key)
	var ctr [4]byte
	binary.BigEndian.PutUint32(ctr[:], k.counter)
	k.d.Write(ctr[:])
	if k.salt != nil {
		k.d.Write(k.salt)
	}
	k.cache = k.d.Sum(nil)
	k.cachePos = 0
	k.counter++
}

// Reset rewinds the counter and emitted-byte accounting.
func (k *KDF2) Reset() {
	k.counter = 1
	k.cache = nil
	k.cachePos = 0
	k.emitted = 0
}
