// Package prng implements the pseudo-random number generator family: a
// generic wrapper over any drbg.Drbg, and Bcr, a buffered convenience
// constructor over a block-cipher-backed counter DRBG.
package prng

import (
	"encoding/binary"

	"github.com/lukw00heck/CEX/drbg"
	"github.com/lukw00heck/CEX/internal/api"
)

// Prng is the common contract every generator in this package implements.
type Prng interface {
	Name() string
	NextUint16() (uint16, error)
	NextUint32() (uint32, error)
	NextUint64() (uint64, error)
	// NextBytes fills b with output.
	NextBytes(b []byte) error
	// NextRange returns a uniform value in [0, bound) by rejection
	// sampling over NextUint32, avoiding modulo bias.
	NextRange(bound uint32) (uint32, error)
	Reset()
}

// Generic is a Prng built directly over any drbg.Drbg, with no internal
// buffering beyond what a single Generate call produces.
type Generic struct {
	name string
	gen  drbg.Drbg
}

// NewGeneric wraps an already-initialized drbg.Drbg as a Prng.
func NewGeneric(name string, gen drbg.Drbg) *Generic {
	return &Generic{name: name, gen: gen}
}

func (p *Generic) Name() string { return p.name }

func (p *Generic) NextBytes(b []byte) error {
	_, err := p.gen.Generate(b, 0, len(b))
	return err
}

func (p *Generic) NextUint16() (uint16, error) {
	var b [2]byte
	if err := p.NextBytes(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b[:]), nil
}

func (p *Generic) NextUint32() (uint32, error) {
	var b [4]byte
	if err := p.NextBytes(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

func (p *Generic) NextUint64() (uint64, error) {
	var b [8]byte
	if err := p.NextBytes(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// NextRange returns a uniform value in [0, bound) by rejection sampling,
// redrawing whenever the drawn value would introduce modulo bias.
func (p *Generic) NextRange(bound uint32) (uint32, error) {
	if bound == 0 {
		return 0, api.New("prng.Generic", api.InvalidArgument, "bound must be positive")
	}
	limit := (^uint32(0) - (^uint32(0) % bound))
	for {
		v, err := p.NextUint32()
		if err != nil {
			return 0, err
		}
		if v < limit {
			return v % bound, nil
		}
	}
}

func (p *Generic) Reset() { p.gen.Reset() }
