package drbg

import (
	"github.com/lukw00heck/CEX/digest"
	"github.com/lukw00heck/CEX/internal/api"
	"github.com/lukw00heck/CEX/provider"
)

const (
	csgMaxOutput  = 1 << 45
	csgMaxRequest = 1 << 16
	csgMaxReseed  = 1 << 29
)

// CSG is the sponge DRBG: a cSHAKE256 sponge absorbs the seed (customized
// with nonce/info when supplied) and squeezes output on demand via
// golang.org/x/crypto/sha3's ShakeHash, standing in for the five parallel
// 25-lane Keccak state arrays spec.md describes — the sponge's internal
// state, not this type's fields.
//
// ShakeHash panics ("sha3: Write after Read") if Write is called after any
// Read has squeezed output, so Update/Reseed cannot absorb into g.xof
// directly once Generate has run. Instead this type retains the seed
// material it has absorbed so far and re-keys by building a fresh sponge
// over (retained material || new bytes) whenever it needs to re-absorb.
type CSG struct {
	xof      digest.XOF
	provider provider.Provider
	nonce    []byte
	info     []byte
	seed     []byte

	totalOut      uint64
	reseedCounter uint64
}

// NewCSG constructs a CSG that reseeds from p once csgMaxReseed bytes have
// been squeezed without an intervening Reseed. p may be nil, in which case
// exceeding the reseed threshold returns Exhausted instead of reseeding.
func NewCSG(p provider.Provider) *CSG {
	return &CSG{provider: p}
}

func (g *CSG) Name() string { return "CSG" }

func (g *CSG) newSponge() digest.XOF {
	if len(g.nonce) == 0 && len(g.info) == 0 {
		return digest.NewShake256()
	}
	return digest.NewCShake256(g.info, g.nonce)
}

// Initialize absorbs seed, customized by nonce (cSHAKE's S string) and
// info (cSHAKE's N string) when either is non-empty; with neither, this
// is plain SHAKE256.
func (g *CSG) Initialize(seed, nonce, info []byte) error {
	g.nonce = append([]byte(nil), nonce...)
	g.info = append([]byte(nil), info...)
	g.seed = append([]byte(nil), seed...)

	g.xof = g.newSponge()
	if _, err := g.xof.Write(g.seed); err != nil {
		return api.New("drbg.CSG", api.EntropyFailure, err.Error())
	}
	g.totalOut = 0
	g.reseedCounter = 0
	return nil
}

func (g *CSG) Generate(out []byte, outOff, length int) (int, error) {
	if g.xof == nil {
		return 0, api.New("drbg.CSG", api.InvalidState, "generate before initialize")
	}
	if length > csgMaxRequest {
		return 0, api.New("drbg.CSG", api.Exhausted, "request exceeds MAX_REQUEST")
	}
	if g.totalOut+uint64(length) > csgMaxOutput {
		return 0, api.New("drbg.CSG", api.Exhausted, "lifetime output exceeds MAX_OUTPUT")
	}
	if g.reseedCounter+uint64(length) >= csgMaxReseed {
		if g.provider == nil {
			return 0, api.New("drbg.CSG", api.Exhausted, "MAX_RESEED reached with no provider configured")
		}
		if err := g.Reseed(g.provider); err != nil {
			return 0, err
		}
	}

	n, err := g.xof.Read(out[outOff : outOff+length])
	if err != nil {
		return n, api.New("drbg.CSG", api.EntropyFailure, err.Error())
	}
	g.totalOut += uint64(n)
	g.reseedCounter += uint64(n)
	return n, nil
}

// Update re-keys the sponge over (retained seed material || seed), since
// the underlying ShakeHash cannot be written to once it has squeezed
// output.
func (g *CSG) Update(seed []byte) error {
	if g.xof == nil {
		return api.New("drbg.CSG", api.InvalidState, "update before initialize")
	}
	g.seed = append(g.seed, seed...)
	g.xof = g.newSponge()
	if _, err := g.xof.Write(g.seed); err != nil {
		return api.New("drbg.CSG", api.EntropyFailure, err.Error())
	}
	return nil
}

func (g *CSG) Reseed(p provider.Provider) error {
	if p == nil {
		return api.New("drbg.CSG", api.EntropyFailure, "no provider configured")
	}
	buf := make([]byte, 64)
	if err := p.Generate(buf); err != nil {
		return err
	}
	if err := g.Update(buf); err != nil {
		return err
	}
	g.reseedCounter = 0
	return nil
}

func (g *CSG) Reset() {
	zeroBytesIfAny(g.seed)
	g.xof = nil
	g.nonce = nil
	g.info = nil
	g.seed = nil
	g.totalOut = 0
	g.reseedCounter = 0
}
