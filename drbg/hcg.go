package drbg

import (
	"crypto/sha256"
	"encoding/binary"
	"math/big"

	"github.com/lukw00heck/CEX/internal/api"
	"github.com/lukw00heck/CEX/provider"
)

// hcgSeedLen is the NIST SP 800-90A seedlen for SHA-256 (440 bits).
const hcgSeedLen = 55

const hcgReseedInterval = 1 << 48

// HCG is the Hash_DRBG family member named alongside CSG/BCG/HMG in
// spec.md §2 but not detailed in §4.5/4.6; supplied per the expansion
// rule from NIST SP 800-90A §10.1.1. Like HMG, no Hash_DRBG package
// exists in the retrieved corpus, so this is grounded directly on the
// NIST algorithm over stdlib crypto/sha256 rather than a corpus file.
type HCG struct {
	v, c []byte
	seed *big.Int
	mod  *big.Int

	provider      provider.Provider
	reseedCounter uint64
}

// NewHCG constructs a Hash_DRBG over SHA-256.
func NewHCG(p provider.Provider) *HCG {
	mod := new(big.Int).Lsh(big.NewInt(1), hcgSeedLen*8)
	return &HCG{mod: mod, provider: p}
}

func (g *HCG) Name() string { return "HCG" }

func hashSum(data []byte) []byte {
	h := sha256.Sum256(data)
	return h[:]
}

// hashDF is the Hash_df derivation function (NIST SP 800-90A §10.3.1),
// producing exactly noOfBytes of output from inputString.
func hashDF(inputString []byte, noOfBytes int) []byte {
	var out []byte
	outLen := sha256.Size
	iterations := (noOfBytes + outLen - 1) / outLen
	var lenBits [4]byte
	binary.BigEndian.PutUint32(lenBits[:], uint32(noOfBytes*8))
	for i := 1; i <= iterations; i++ {
		block := append([]byte{byte(i)}, lenBits[:]...)
		block = append(block, inputString...)
		out = append(out, hashSum(block)...)
	}
	return out[:noOfBytes]
}

func (g *HCG) addMod(a []byte, b *big.Int) []byte {
	x := new(big.Int).SetBytes(a)
	x.Add(x, b)
	x.Mod(x, g.mod)
	return leftPad(x.Bytes(), len(a))
}

func leftPad(b []byte, n int) []byte {
	if len(b) >= n {
		return b[len(b)-n:]
	}
	out := make([]byte, n)
	copy(out[n-len(b):], b)
	return out
}

func (g *HCG) Initialize(seed, nonce, info []byte) error {
	seedMaterial := append(append(append([]byte(nil), seed...), nonce...), info...)
	g.v = hashDF(seedMaterial, hcgSeedLen)
	cInput := append([]byte{0x00}, g.v...)
	g.c = hashDF(cInput, hcgSeedLen)
	g.reseedCounter = 1
	return nil
}

// hashgen produces requestedBytes of output by repeatedly hashing an
// incrementing copy of V, per NIST SP 800-90A §10.1.1.4.
func (g *HCG) hashgen(requestedBytes int) []byte {
	data := append([]byte(nil), g.v...)
	var w []byte
	for len(w) < requestedBytes {
		w = append(w, hashSum(data)...)
		data = g.addMod(data, big.NewInt(1))
	}
	return w[:requestedBytes]
}

func (g *HCG) Generate(out []byte, outOff, length int) (int, error) {
	if g.v == nil {
		return 0, api.New("drbg.HCG", api.InvalidState, "generate before initialize")
	}
	if g.reseedCounter > hcgReseedInterval {
		if g.provider == nil {
			return 0, api.New("drbg.HCG", api.Exhausted, "reseed interval exceeded with no provider configured")
		}
		if err := g.Reseed(g.provider); err != nil {
			return 0, err
		}
	}

	returned := g.hashgen(length)
	copy(out[outOff:outOff+length], returned)

	h := hashSum(append([]byte{0x03}, g.v...))
	sum := new(big.Int).SetBytes(g.v)
	sum.Add(sum, new(big.Int).SetBytes(h))
	sum.Add(sum, new(big.Int).SetBytes(g.c))
	sum.Add(sum, new(big.Int).SetUint64(g.reseedCounter))
	sum.Mod(sum, g.mod)
	g.v = leftPad(sum.Bytes(), hcgSeedLen)
	g.reseedCounter++
	return length, nil
}

func (g *HCG) Update(additionalInput []byte) error {
	if g.v == nil {
		return api.New("drbg.HCG", api.InvalidState, "update before initialize")
	}
	if len(additionalInput) == 0 {
		return nil
	}
	w := hashSum(append(append([]byte{0x02}, g.v...), additionalInput...))
	g.v = g.addMod(g.v, new(big.Int).SetBytes(w))
	return nil
}

func (g *HCG) Reseed(p provider.Provider) error {
	if p == nil {
		return api.New("drbg.HCG", api.EntropyFailure, "no provider configured")
	}
	entropy := make([]byte, hcgSeedLen)
	if err := p.Generate(entropy); err != nil {
		return err
	}
	seedMaterial := append(append([]byte{0x01}, g.v...), entropy...)
	g.v = hashDF(seedMaterial, hcgSeedLen)
	cInput := append([]byte{0x00}, g.v...)
	g.c = hashDF(cInput, hcgSeedLen)
	g.reseedCounter = 1
	return nil
}

func (g *HCG) Reset() {
	zeroBytesIfAny(g.v)
	zeroBytesIfAny(g.c)
	g.v = nil
	g.c = nil
	g.reseedCounter = 0
}
