package digest

import "github.com/lukw00heck/CEX/memutil"

const (
	skeinBlockBytes = 64
	skeinTypeCfg    = 4
	skeinTypeMsg    = 48
	skeinTypeOut    = 63
)

// ubi is one Unique Block Iteration chain: it processes an arbitrary
// length message under a running chaining value using Threefish-512 as
// the compression function, the construction Skein-512 builds its digest
// from.
type ubi struct {
	chain   [8]uint64
	buf     []byte
	bytesIn uint64
	typ     uint64
}

func newUBI(chain [8]uint64, typ uint64) *ubi {
	return &ubi{chain: chain, typ: typ}
}

func (u *ubi) update(p []byte) {
	u.buf = append(u.buf, p...)
	for len(u.buf) > skeinBlockBytes {
		u.absorbBlock(u.buf[:skeinBlockBytes], false)
		u.buf = u.buf[skeinBlockBytes:]
	}
}

// final processes the last (possibly short, zero-padded) block and
// returns the resulting chaining value.
func (u *ubi) final() [8]uint64 {
	first := u.bytesIn == 0
	block := make([]byte, skeinBlockBytes)
	copy(block, u.buf)
	u.bytesIn += uint64(len(u.buf))

	tweak := u.tweakWord(true, first)
	var words [8]uint64
	for i := 0; i < 8; i++ {
		words[i] = memutil.BytesToLE64(block[i*8:])
	}
	out := threefish512Encrypt(u.chain, tweak, words)
	for i := range out {
		out[i] ^= words[i]
	}
	return out
}

func (u *ubi) absorbBlock(block []byte, last bool) {
	first := u.bytesIn == 0
	u.bytesIn += uint64(len(block))

	tweak := u.tweakWord(last, first)
	var words [8]uint64
	for i := 0; i < 8; i++ {
		words[i] = memutil.BytesToLE64(block[i*8:])
	}
	out := threefish512Encrypt(u.chain, tweak, words)
	for i := range out {
		out[i] ^= words[i]
	}
	u.chain = out
}

func (u *ubi) tweakWord(final, first bool) [2]uint64 {
	t1 := u.typ << 56
	if first {
		t1 |= 1 << 62
	}
	if final {
		t1 |= 1 << 63
	}
	return [2]uint64{u.bytesIn, t1}
}

// Skein512 implements the Skein-512 tweakable-hash-family digest,
// producing a fixed 64-byte (512-bit) output via Threefish-512-based UBI
// chaining, following the public Skein v1.3 specification.
type Skein512 struct {
	msg []byte
}

// NewSkein512 returns a fresh Skein-512 Digest.
func NewSkein512() Digest { return &Skein512{} }

// Name returns "Skein-512".
func (*Skein512) Name() string { return "Skein-512" }

// Size returns 64, the digest output length in bytes.
func (*Skein512) Size() int { return 64 }

// BlockSize returns 64, Threefish-512's block width in bytes.
func (*Skein512) BlockSize() int { return skeinBlockBytes }

// Write appends p to the pending message.
func (s *Skein512) Write(p []byte) (int, error) {
	s.msg = append(s.msg, p...)
	return len(p), nil
}

// Reset clears the pending message.
func (s *Skein512) Reset() { s.msg = nil }

// Sum appends the Skein-512 digest of the bytes written so far to b.
func (s *Skein512) Sum(b []byte) []byte {
	cfg := configChain(uint64(s.Size() * 8))

	msgChain := newUBI(cfg, skeinTypeMsg)
	msgChain.update(s.msg)
	g1 := msgChain.final()

	outChain := newUBI(g1, skeinTypeOut)
	ctr := make([]byte, 8)
	outChain.update(ctr)
	g2 := outChain.final()

	out := make([]byte, s.Size())
	for i := 0; i < 8; i++ {
		memutil.LE64ToBytes(g2[i], out[i*8:])
	}
	return append(b, out...)
}

// configChain computes the chaining value produced by UBI-processing the
// 32-byte Skein configuration string (schema, version, output length)
// under an all-zero initial chain, the first stage of every Skein digest.
func configChain(outputBits uint64) [8]uint64 {
	const schemaID = 0x33414853 // "SHA3" little-endian, Skein's schema tag
	const version = 1

	cfg := make([]byte, skeinBlockBytes)
	word0 := uint64(schemaID) | (uint64(version) << 32)
	memutil.LE64ToBytes(word0, cfg[0:])
	memutil.LE64ToBytes(outputBits, cfg[8:])

	var zero [8]uint64
	cfgChain := newUBI(zero, skeinTypeCfg)
	cfgChain.bytesIn = 0
	// The configuration block is always exactly one full Threefish block;
	// absorb it directly as the final block of its own UBI chain.
	return cfgChain.final2(cfg)
}

// final2 processes block as the sole (first and final) block of the
// chain, used for the fixed-size configuration string. The tweak position
// is the 32-byte length of the configuration string, not of the
// zero-padded block.
func (u *ubi) final2(block []byte) [8]uint64 {
	u.bytesIn = 32
	tweak := u.tweakWord(true, true)
	var words [8]uint64
	for i := 0; i < 8; i++ {
		words[i] = memutil.BytesToLE64(block[i*8:])
	}
	out := threefish512Encrypt(u.chain, tweak, words)
	for i := range out {
		out[i] ^= words[i]
	}
	return out
}
