package mode

import (
	"github.com/lukw00heck/CEX/block"
	"github.com/lukw00heck/CEX/internal/api"
)

// OFB is output feedback mode: the register is re-encrypted each block
// instead of fed back from ciphertext, so encryption and decryption are
// the same operation.
type OFB struct {
	cipher      block.Cipher
	register    []byte
	encryption  bool
	initialized bool
	opts        *ParallelOptions
}

// NewOFB constructs an uninitialized OFB mode.
func NewOFB() *OFB {
	return &OFB{opts: DefaultParallelOptions()}
}

func (m *OFB) Name() string { return "OFB" }
func (m *OFB) BlockSize() int {
	if m.cipher == nil {
		return 0
	}
	return m.cipher.BlockSize()
}
func (m *OFB) IsEncryption() bool                { return m.encryption }
func (m *OFB) IsInitialized() bool               { return m.initialized }
func (m *OFB) ParallelOptions() *ParallelOptions { return m.opts }

func (m *OFB) Initialize(cipher block.Cipher, encryption bool, key api.SymmetricKey) error {
	bs := cipher.BlockSize()
	if len(key.Nonce) != bs {
		return api.New("mode.OFB", api.InvalidKey, "nonce must be block_size bytes")
	}
	if err := cipher.Initialize(true, key); err != nil {
		return err
	}
	m.cipher = cipher
	m.register = append([]byte(nil), key.Nonce...)
	m.encryption = encryption
	m.initialized = true
	return nil
}

func (m *OFB) Transform(in []byte, inOff int, out []byte, outOff int, length int) error {
	if !m.initialized {
		return api.New("mode.OFB", api.InvalidState, "transform before initialize")
	}
	bs := m.cipher.BlockSize()
	if length%bs != 0 {
		return api.New("mode.OFB", api.InvalidArgument, "length not a block_size multiple")
	}
	for off := 0; off < length; off += bs {
		m.cipher.EncryptBlock(m.register, 0, m.register, 0)
		for i := 0; i < bs; i++ {
			out[outOff+off+i] = in[inOff+off+i] ^ m.register[i]
		}
	}
	return nil
}

func (m *OFB) Reset() {
	zeroBytes(m.register)
	m.initialized = false
}
