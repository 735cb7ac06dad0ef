package mode

import (
	"github.com/lukw00heck/CEX/block"
	"github.com/lukw00heck/CEX/internal/api"
)

// CTR is counter mode: keystream block i is E_K(counter_i), ciphertext is
// plaintext XOR keystream. The counter register is the IV incremented as
// a big-endian integer, one step per block.
type CTR struct {
	cipher      block.Cipher
	counter     []byte
	keystream   []byte
	ksUsed      int
	encryption  bool
	initialized bool
	opts        *ParallelOptions
}

// NewCTR constructs an uninitialized CTR mode.
func NewCTR() *CTR {
	return &CTR{opts: DefaultParallelOptions()}
}

func (m *CTR) Name() string  { return "CTR" }
func (m *CTR) BlockSize() int {
	if m.cipher == nil {
		return 0
	}
	return m.cipher.BlockSize()
}
func (m *CTR) IsEncryption() bool  { return m.encryption }
func (m *CTR) IsInitialized() bool { return m.initialized }
func (m *CTR) ParallelOptions() *ParallelOptions { return m.opts }

func (m *CTR) Initialize(cipher block.Cipher, encryption bool, key api.SymmetricKey) error {
	bs := cipher.BlockSize()
	if len(key.Nonce) != bs {
		return api.New("mode.CTR", api.InvalidKey, "nonce must be block_size bytes")
	}
	if err := cipher.Initialize(true, key); err != nil {
		return err
	}
	m.cipher = cipher
	m.counter = append([]byte(nil), key.Nonce...)
	m.keystream = make([]byte, bs)
	m.ksUsed = bs
	m.encryption = encryption
	m.initialized = true
	return nil
}

func incrementBE(counter []byte) {
	for i := len(counter) - 1; i >= 0; i-- {
		counter[i]++
		if counter[i] != 0 {
			break
		}
	}
}

func (m *CTR) Transform(in []byte, inOff int, out []byte, outOff int, length int) error {
	if !m.initialized {
		return api.New("mode.CTR", api.InvalidState, "transform before initialize")
	}
	bs := m.cipher.BlockSize()
	for i := 0; i < length; i++ {
		if m.ksUsed == bs {
			m.cipher.EncryptBlock(m.counter, 0, m.keystream, 0)
			incrementBE(m.counter)
			m.ksUsed = 0
		}
		out[outOff+i] = in[inOff+i] ^ m.keystream[m.ksUsed]
		m.ksUsed++
	}
	return nil
}

func (m *CTR) Reset() {
	zeroBytes(m.counter)
	zeroBytes(m.keystream)
	m.initialized = false
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
