package drbg

import (
	"crypto/hmac"
	"crypto/sha256"
	"hash"

	"github.com/lukw00heck/CEX/internal/api"
	"github.com/lukw00heck/CEX/provider"
)

// HMG is the HMAC_DRBG family member named alongside CSG/BCG/HCG in
// spec.md §2 but not detailed in §4.5/4.6; supplied per the expansion
// rule from NIST SP 800-90A §10.1.2, since no DRBG/HMAC_DRBG package
// exists anywhere in the retrieved corpus to ground an implementation
// on directly. It reuses this module's own digest/HMAC stack (stdlib
// crypto/hmac over crypto/sha256) rather than hand-rolling HMAC.
type HMG struct {
	newHash func() hash.Hash
	k, v    []byte
	outLen  int

	provider      provider.Provider
	reseedCounter uint64
}

const hmgReseedInterval = 1 << 48

// NewHMG constructs an HMAC_DRBG over SHA-256.
func NewHMG(p provider.Provider) *HMG {
	return &HMG{newHash: sha256.New, outLen: sha256.Size, provider: p}
}

func (g *HMG) Name() string { return "HMG" }

func (g *HMG) hmacSum(key, data []byte) []byte {
	mac := hmac.New(g.newHash, key)
	mac.Write(data)
	return mac.Sum(nil)
}

func (g *HMG) update(providedData []byte) {
	input := append(append([]byte(nil), g.v...), 0x00)
	input = append(input, providedData...)
	g.k = g.hmacSum(g.k, input)
	g.v = g.hmacSum(g.k, g.v)
	if len(providedData) == 0 {
		return
	}
	input = append(append([]byte(nil), g.v...), 0x01)
	input = append(input, providedData...)
	g.k = g.hmacSum(g.k, input)
	g.v = g.hmacSum(g.k, g.v)
}

func (g *HMG) Initialize(seed, nonce, info []byte) error {
	g.k = make([]byte, g.outLen)
	g.v = make([]byte, g.outLen)
	for i := range g.v {
		g.v[i] = 0x01
	}
	seedMaterial := append(append(append([]byte(nil), seed...), nonce...), info...)
	g.update(seedMaterial)
	g.reseedCounter = 1
	return nil
}

func (g *HMG) Generate(out []byte, outOff, length int) (int, error) {
	if g.k == nil {
		return 0, api.New("drbg.HMG", api.InvalidState, "generate before initialize")
	}
	if g.reseedCounter > hmgReseedInterval {
		if g.provider == nil {
			return 0, api.New("drbg.HMG", api.Exhausted, "reseed interval exceeded with no provider configured")
		}
		if err := g.Reseed(g.provider); err != nil {
			return 0, err
		}
	}

	produced := 0
	for produced < length {
		g.v = g.hmacSum(g.k, g.v)
		n := copy(out[outOff+produced:outOff+length], g.v)
		produced += n
	}
	g.update(nil)
	g.reseedCounter++
	return length, nil
}

func (g *HMG) Update(seed []byte) error {
	if g.k == nil {
		return api.New("drbg.HMG", api.InvalidState, "update before initialize")
	}
	g.update(seed)
	return nil
}

func (g *HMG) Reseed(p provider.Provider) error {
	if p == nil {
		return api.New("drbg.HMG", api.EntropyFailure, "no provider configured")
	}
	entropy := make([]byte, g.outLen)
	if err := p.Generate(entropy); err != nil {
		return err
	}
	g.update(entropy)
	g.reseedCounter = 1
	return nil
}

func (g *HMG) Reset() {
	zeroBytesIfAny(g.k)
	zeroBytesIfAny(g.v)
	g.k = nil
	g.v = nil
	g.reseedCounter = 0
}
