package mode

import (
	"github.com/lukw00heck/CEX/block"
	"github.com/lukw00heck/CEX/internal/api"
)

// CFB is full-block cipher feedback mode: feedback register and segment
// size both equal the cipher's block size. Encryption: c_i = p_i XOR
// E_K(c_{i-1}); decryption: p_i = c_i XOR E_K(c_{i-1}).
type CFB struct {
	cipher      block.Cipher
	register    []byte
	encryption  bool
	initialized bool
	opts        *ParallelOptions
}

// NewCFB constructs an uninitialized CFB mode.
func NewCFB() *CFB {
	return &CFB{opts: DefaultParallelOptions()}
}

func (m *CFB) Name() string { return "CFB" }
func (m *CFB) BlockSize() int {
	if m.cipher == nil {
		return 0
	}
	return m.cipher.BlockSize()
}
func (m *CFB) IsEncryption() bool                { return m.encryption }
func (m *CFB) IsInitialized() bool               { return m.initialized }
func (m *CFB) ParallelOptions() *ParallelOptions { return m.opts }

func (m *CFB) Initialize(cipher block.Cipher, encryption bool, key api.SymmetricKey) error {
	bs := cipher.BlockSize()
	if len(key.Nonce) != bs {
		return api.New("mode.CFB", api.InvalidKey, "nonce must be block_size bytes")
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

func (m *CFB) Transform(in []byte, inOff int, out []byte, outOff int, length int) error {
	if !m.initialized {
		return api.New("mode.CFB", api.InvalidState, "transform before initialize")
	}
	bs := m.cipher.BlockSize()
	if length%bs != 0 {
		return api.New("mode.CFB", api.InvalidArgument, "length not a block_size multiple")
	}
	buf := make([]byte, bs)
	for off := 0; off < length; off += bs {
		m.cipher.EncryptBlock(m.register, 0, buf, 0)
		if m.encryption {
			for i := 0; i < bs; i++ {
				out[outOff+off+i] = in[inOff+off+i] ^ buf[i]
			}
			copy(m.register, out[outOff+off:outOff+off+bs])
		} else {
			ct := in[inOff+off : inOff+off+bs]
			for i := 0; i < bs; i++ {
				out[outOff+off+i] = ct[i] ^ buf[i]
			}
			copy(m.register, ct)
		}
	}
	return nil
}

func (m *CFB) Reset() {
	zeroBytes(m.register)
	m.initialized = false
}
