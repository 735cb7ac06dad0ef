package mode

import (
	"github.com/lukw00heck/CEX/block"
	"github.com/lukw00heck/CEX/internal/api"
)

// ECB is electronic codebook mode: each block is transformed
// independently, with no chaining state. Provided for the FIPS-197
// known-answer test and as a building block for other modes; it carries
// no confidentiality guarantee for multi-block messages.
type ECB struct {
	cipher      block.Cipher
	encryption  bool
	initialized bool
	opts        *ParallelOptions
}

// NewECB constructs an uninitialized ECB mode.
func NewECB() *ECB {
	return &ECB{opts: DefaultParallelOptions()}
}

func (m *ECB) Name() string { return "ECB" }
func (m *ECB) BlockSize() int {
	if m.cipher == nil {
		return 0
	}
	return m.cipher.BlockSize()
}
func (m *ECB) IsEncryption() bool                { return m.encryption }
func (m *ECB) IsInitialized() bool               { return m.initialized }
func (m *ECB) ParallelOptions() *ParallelOptions { return m.opts }

func (m *ECB) Initialize(cipher block.Cipher, encryption bool, key api.SymmetricKey) error {
	if err := cipher.Initialize(encryption, key); err != nil {
		return err
	}
	m.cipher = cipher
	m.encryption = encryption
	m.initialized = true
	return nil
}

func (m *ECB) Transform(in []byte, inOff int, out []byte, outOff int, length int) error {
	if !m.initialized {
		return api.New("mode.ECB", api.InvalidState, "transform before initialize")
	}
	bs := m.cipher.BlockSize()
	if length%bs != 0 {
		return api.New("mode.ECB", api.InvalidArgument, "length not a block_size multiple")
	}
	for off := 0; off < length; off += bs {
		m.cipher.Transform(in, inOff+off, out, outOff+off)
	}
	return nil
}

func (m *ECB) Reset() {
	m.initialized = false
}
