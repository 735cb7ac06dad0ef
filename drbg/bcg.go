package drbg

import (
	"github.com/lukw00heck/CEX/block"
	"github.com/lukw00heck/CEX/internal/api"
	"github.com/lukw00heck/CEX/provider"
)

const bcgReseedThreshold = 1 << 24 // bytes generated before a configured provider is consulted

// BCG is the counter DRBG: it wraps a block cipher in CTR mode and
// exposes the Drbg contract. generate emits E_K(ctr) blocks
// concatenated; BCR (in the prng package) buffers this output for
// NextUint16/32/64-style consumption.
type BCG struct {
	newCipher func() block.Cipher
	cipher    block.Cipher
	counter   []byte
	keystream []byte
	ksUsed    int

	provider      provider.Provider
	totalOut      uint64
	reseedCounter uint64
}

// NewBCG constructs a BCG that mints a fresh block.Cipher instance from
// newCipher on each Initialize/Reseed (round-key schedules are not
// reusable across keys). p may be nil; Reseed then returns EntropyFailure.
func NewBCG(newCipher func() block.Cipher, p provider.Provider) *BCG {
	return &BCG{newCipher: newCipher, provider: p}
}

func (g *BCG) Name() string { return "BCG" }

func (g *BCG) Initialize(seed, nonce, info []byte) error {
	g.cipher = g.newCipher()
	bs := g.cipher.BlockSize()
	if len(nonce) != bs {
		return api.New("drbg.BCG", api.InvalidKey, "nonce must be block_size bytes")
	}
	if err := g.cipher.Initialize(true, api.SymmetricKey{Key: seed, Nonce: nonce, Info: info}); err != nil {
		return err
	}
	g.counter = append([]byte(nil), nonce...)
	g.keystream = make([]byte, bs)
	g.ksUsed = bs
	g.totalOut = 0
	g.reseedCounter = 0
	return nil
}

func (g *BCG) Generate(out []byte, outOff, length int) (int, error) {
	if g.cipher == nil {
		return 0, api.New("drbg.BCG", api.InvalidState, "generate before initialize")
	}
	if g.reseedCounter+uint64(length) >= bcgReseedThreshold {
		if g.provider != nil {
			if err := g.Reseed(g.provider); err != nil {
				return 0, err
			}
		}
	}

	bs := g.cipher.BlockSize()
	for i := 0; i < length; i++ {
		if g.ksUsed == bs {
			g.cipher.EncryptBlock(g.counter, 0, g.keystream, 0)
			incrementCounterBE(g.counter)
			g.ksUsed = 0
		}
		out[outOff+i] = g.keystream[g.ksUsed]
		g.ksUsed++
	}
	g.totalOut += uint64(length)
	g.reseedCounter += uint64(length)
	return length, nil
}

func incrementCounterBE(counter []byte) {
	for i := len(counter) - 1; i >= 0; i-- {
		counter[i]++
		if counter[i] != 0 {
			break
		}
	}
}

// Update XORs seed into the counter register, perturbing the keystream
// without re-keying the cipher.
func (g *BCG) Update(seed []byte) error {
	if g.cipher == nil {
		return api.New("drbg.BCG", api.InvalidState, "update before initialize")
	}
	for i, b := range seed {
		g.counter[i%len(g.counter)] ^= b
	}
	g.ksUsed = g.cipher.BlockSize()
	return nil
}

// Reseed draws a fresh key and counter register from p and rebuilds the
// cipher's round-key schedule from scratch.
func (g *BCG) Reseed(p provider.Provider) error {
	if p == nil {
		return api.New("drbg.BCG", api.EntropyFailure, "no provider configured")
	}
	bs := g.cipher.BlockSize()
	keySize := g.cipher.LegalKeySizes()[0].KeySize
	seed := make([]byte, keySize)
	nonce := make([]byte, bs)
	if err := p.Generate(seed); err != nil {
		return err
	}
	if err := p.Generate(nonce); err != nil {
		return err
	}
	return g.Initialize(seed, nonce, nil)
}

func (g *BCG) Reset() {
	zeroBytesIfAny(g.counter)
	zeroBytesIfAny(g.keystream)
	g.cipher = nil
	g.totalOut = 0
	g.reseedCounter = 0
}

func zeroBytesIfAny(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
