package mode

import (
	"github.com/lukw00heck/CEX/block"
	"github.com/lukw00heck/CEX/internal/api"
)

// CBC is cipher-block-chaining mode. Encryption: c_i = E_K(p_i XOR
// c_{i-1}), c_0 = IV. Decryption: p_i = D_K(c_i) XOR c_{i-1}.
type CBC struct {
	cipher      block.Cipher
	register    []byte
	encryption  bool
	initialized bool
	opts        *ParallelOptions
}

// NewCBC constructs an uninitialized CBC mode.
func NewCBC() *CBC {
	return &CBC{opts: DefaultParallelOptions()}
}

func (m *CBC) Name() string { return "CBC" }
func (m *CBC) BlockSize() int {
	if m.cipher == nil {
		return 0
	}
	return m.cipher.BlockSize()
}
func (m *CBC) IsEncryption() bool                { return m.encryption }
func (m *CBC) IsInitialized() bool               { return m.initialized }
func (m *CBC) ParallelOptions() *ParallelOptions { return m.opts }

func (m *CBC) Initialize(cipher block.Cipher, encryption bool, key api.SymmetricKey) error {
	bs := cipher.BlockSize()
	if len(key.Nonce) != bs {
		return api.New("mode.CBC", api.InvalidKey, "nonce must be block_size bytes")
	}
	if err := cipher.Initialize(encryption, key); err != nil {
		return err
	}
	m.cipher = cipher
	m.register = append([]byte(nil), key.Nonce...)
	m.encryption = encryption
	m.initialized = true
	return nil
}

func (m *CBC) Transform(in []byte, inOff int, out []byte, outOff int, length int) error {
	if !m.initialized {
		return api.New("mode.CBC", api.InvalidState, "transform before initialize")
	}
	bs := m.cipher.BlockSize()
	if length%bs != 0 {
		return api.New("mode.CBC", api.InvalidArgument, "length not a block_size multiple")
	}
	if m.encryption {
		return m.encrypt(in, inOff, out, outOff, length, bs)
	}
	return m.decrypt(in, inOff, out, outOff, length, bs)
}

func (m *CBC) encrypt(in []byte, inOff int, out []byte, outOff int, length, bs int) error {
	buf := make([]byte, bs)
	for off := 0; off < length; off += bs {
		for i := 0; i < bs; i++ {
			buf[i] = in[inOff+off+i] ^ m.register[i]
		}
		m.cipher.EncryptBlock(buf, 0, out, outOff+off)
		copy(m.register, out[outOff+off:outOff+off+bs])
	}
	return nil
}

func (m *CBC) decrypt(in []byte, inOff int, out []byte, outOff int, length, bs int) error {
	prev := append([]byte(nil), m.register...)
	buf := make([]byte, bs)
	for off := 0; off < length; off += bs {
		ct := in[inOff+off : inOff+off+bs]
		m.cipher.DecryptBlock(ct, 0, buf, 0)
		for i := 0; i < bs; i++ {
			out[outOff+off+i] = buf[i] ^ prev[i]
		}
		copy(prev, ct)
	}
	copy(m.register, prev)
	return nil
}

func (m *CBC) Reset() {
	zeroBytes(m.register)
	m.initialized = false
}
