package prng

import (
	"encoding/binary"

	"github.com/lukw00heck/CEX/block"
	"github.com/lukw00heck/CEX/drbg"
	"github.com/lukw00heck/CEX/internal/api"
	"github.com/lukw00heck/CEX/provider"
)

// bufferDef is BUFFER_DEF from original_source/CEX/BCR.h: the number of
// keystream bytes Bcr draws from its BCG per refill.
const bufferDef = 4096

// Bcr is a convenience Prng wiring a block cipher through a drbg.BCG
// counter DRBG, buffering bufferDef bytes at a time and slicing
// little-endian integers off the buffer, refilling when exhausted.
type Bcr struct {
	bcg    *drbg.BCG
	buffer []byte
	pos    int
}

// NewBcr constructs a Bcr seeded from seed/nonce, minting fresh
// newCipher() instances as the BCG reseeds.
func NewBcr(newCipher func() block.Cipher, seed, nonce []byte, p provider.Provider) (*Bcr, error) {
	g := drbg.NewBCG(newCipher, p)
	if err := g.Initialize(seed, nonce, nil); err != nil {
		return nil, err
	}
	b := &Bcr{bcg: g, buffer: make([]byte, bufferDef), pos: bufferDef}
	return b, nil
}

func (b *Bcr) Name() string { return "BCR" }

func (b *Bcr) refill() error {
	_, err := b.bcg.Generate(b.buffer, 0, len(b.buffer))
	if err != nil {
		return err
	}
	b.pos = 0
	return nil
}

func (b *Bcr) NextBytes(out []byte) error {
	n := 0
	for n < len(out) {
		if b.pos == len(b.buffer) {
			if err := b.refill(); err != nil {
				return err
			}
		}
		avail := len(b.buffer) - b.pos
		need := len(out) - n
		take := avail
		if take > need {
			take = need
		}
		copy(out[n:n+take], b.buffer[b.pos:b.pos+take])
		b.pos += take
		n += take
	}
	return nil
}

func (b *Bcr) NextUint16() (uint16, error) {
	var buf [2]byte
	if err := b.NextBytes(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

func (b *Bcr) NextUint32() (uint32, error) {
	var buf [4]byte
	if err := b.NextBytes(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func (b *Bcr) NextUint64() (uint64, error) {
	var buf [8]byte
	if err := b.NextBytes(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

func (b *Bcr) NextRange(bound uint32) (uint32, error) {
	if bound == 0 {
		return 0, api.New("prng.Bcr", api.InvalidArgument, "bound must be positive")
	}
	limit := ^uint32(0) - (^uint32(0) % bound)
	for {
		v, err := b.NextUint32()
		if err != nil {
			return 0, err
		}
		if v < limit {
			return v % bound, nil
		}
	}
}

func (b *Bcr) Reset() {
	b.bcg.Reset()
	zeroBytes(b.buffer)
	b.pos = len(b.buffer)
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
