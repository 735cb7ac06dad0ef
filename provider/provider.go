// Package provider supplies raw entropy to the DRBG and KEM envelope
// layers: an OS-backed source, a hardware-RNG-or-fallback source, a timing
// jitter sampler, and an auto-collection composite pooling all three.
package provider

import (
	"crypto/rand"
	"errors"
	"io"
	"time"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/sha3"

	"github.com/lukw00heck/CEX/internal/api"
	"github.com/lukw00heck/CEX/internal/hardware"
)

// Provider is the common entropy source contract. Generate fills b with
// raw entropy, returning api.ErrEntropyFailure (wrapped) if the source
// could not supply the requested bytes.
type Provider interface {
	Name() string
	Generate(b []byte) error
}

// CSP draws entropy from the operating system's CSPRNG (crypto/rand). It
// is the provider every other provider in this package falls back to.
type CSP struct{}

// NewCSP constructs a CSP provider.
func NewCSP() *CSP { return &CSP{} }

// Name returns "CSP".
func (*CSP) Name() string { return "CSP" }

// Generate fills b from crypto/rand.
func (*CSP) Generate(b []byte) error {
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return api.New("provider.CSP", api.EntropyFailure, err.Error())
	}
	return nil
}

// RDR draws entropy from a hardware RNG instruction when the CPU reports
// one is available, and otherwise defers to CSP. CEX's original RDR
// provider wraps RDRAND/RDSEED directly; golang.org/x/sys/cpu does not
// expose those feature bits on every platform this module targets, so
// RDR's capability gate is internal/hardware's cached snapshot and its
// actual byte source is always the OS CSPRNG, matching the documented
// fallback behavior of a provider with no working hardware backend.
type RDR struct {
	fallback *CSP
}

// NewRDR constructs an RDR provider.
func NewRDR() *RDR { return &RDR{fallback: NewCSP()} }

// Name returns "RDR".
func (*RDR) Name() string { return "RDR" }

// Available reports whether this process detected a usable hardware RNG
// path (currently gated on AES-NI as a proxy for a modern CPU generation;
// CEX's original gate is the RDRAND/RDSEED CPUID bit).
func (r *RDR) Available() bool { return hardware.Current().AESNI }

// Generate fills b from CSP, whatever Available reports.
func (r *RDR) Generate(b []byte) error { return r.fallback.Generate(b) }

// JIT samples entropy from timing jitter: successive high-resolution clock
// reads are hashed together, since their low bits are not fully
// deterministic across CPU/OS scheduling noise. It is a supplementary
// source, never used alone to seed a DRBG.
type JIT struct {
	samples int
}

// NewJIT constructs a JIT provider that takes samples clock readings per
// Generate call, whatever the output length (minimum 8).
func NewJIT(samples int) *JIT {
	if samples < 8 {
		samples = 8
	}
	return &JIT{samples: samples}
}

// Name returns "JIT".
func (*JIT) Name() string { return "JIT" }

// Generate fills b by hashing a bounded number of timing samples through
// SHAKE256, squeezing len(b) bytes of output.
func (j *JIT) Generate(b []byte) error {
	h := sha3.NewShake256()
	var buf [8]byte
	for i := 0; i < j.samples; i++ {
		t := uint64(time.Now().UnixNano())
		for k := 0; k < 8; k++ {
			buf[k] = byte(t >> (8 * k))
		}
		if _, err := h.Write(buf[:]); err != nil {
			return api.New("provider.JIT", api.EntropyFailure, err.Error())
		}
	}
	if _, err := io.ReadFull(h, b); err != nil {
		return api.New("provider.JIT", api.EntropyFailure, err.Error())
	}
	return nil
}

// ACP is the auto-collection composite: it pools CSP, RDR and JIT output
// through an HKDF extract so a single weak source cannot dominate the
// result, matching original_source/CEX/ACP.h's role as the default
// provider DRBGs reseed from.
type ACP struct {
	csp *CSP
	rdr *RDR
	jit *JIT
}

// NewACP constructs the auto-collection provider.
func NewACP() *ACP {
	return &ACP{csp: NewCSP(), rdr: NewRDR(), jit: NewJIT(32)}
}

// Name returns "ACP".
func (*ACP) Name() string { return "ACP" }

// Generate pools all three sources and extracts len(b) bytes via
// HKDF-SHA3-256(salt=jitter, ikm=csp||rdr).
func (a *ACP) Generate(b []byte) error {
	if len(b) == 0 {
		return nil
	}

	pool := make([]byte, 2*len(b))
	if err := a.csp.Generate(pool[:len(b)]); err != nil {
		return err
	}
	if err := a.rdr.Generate(pool[len(b):]); err != nil {
		return err
	}
	salt := make([]byte, 32)
	if err := a.jit.Generate(salt); err != nil {
		return err
	}

	r := hkdf.New(sha3.New256, pool, salt, []byte("CEX-ACP"))
	if _, err := io.ReadFull(r, b); err != nil {
		return api.New("provider.ACP", api.EntropyFailure, err.Error())
	}
	return nil
}

// ErrUnknownProvider is returned by FromName for an unrecognized name.
var ErrUnknownProvider = errors.New("provider: unknown provider name")

// FromName constructs an owned Provider from one of "CSP", "RDR", "JIT" or
// "ACP", mirroring CEX's Providers enumeration-driven construction.
func FromName(name string) (Provider, error) {
	switch name {
	case "CSP":
		return NewCSP(), nil
	case "RDR":
		return NewRDR(), nil
	case "JIT":
		return NewJIT(32), nil
	case "ACP":
		return NewACP(), nil
	default:
		return nil, ErrUnknownProvider
	}
}
