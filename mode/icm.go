package mode

import (
	"encoding/binary"

	"github.com/lukw00heck/CEX/block"
	"github.com/lukw00heck/CEX/internal/api"
)

// ICM is integer-counter mode: like CTR, but only the low 64 bits of the
// counter register are incremented, as a little-endian integer; the high
// 64 bits stay a fixed prefix taken from the nonce.
type ICM struct {
	cipher      block.Cipher
	counter     []byte
	keystream   []byte
	ksUsed      int
	encryption  bool
	initialized bool
	opts        *ParallelOptions
}

// NewICM constructs an uninitialized ICM mode.
func NewICM() *ICM {
	return &ICM{opts: DefaultParallelOptions()}
}

func (m *ICM) Name() string { return "ICM" }
func (m *ICM) BlockSize() int {
	if m.cipher == nil {
		return 0
	}
	return m.cipher.BlockSize()
}
func (m *ICM) IsEncryption() bool                { return m.encryption }
func (m *ICM) IsInitialized() bool               { return m.initialized }
func (m *ICM) ParallelOptions() *ParallelOptions { return m.opts }

func (m *ICM) Initialize(cipher block.Cipher, encryption bool, key api.SymmetricKey) error {
	bs := cipher.BlockSize()
	if len(key.Nonce) != bs || bs < 16 {
		return api.New("mode.ICM", api.InvalidKey, "nonce must be block_size bytes, block_size >= 16")
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

func (m *ICM) incrementLow64() {
	half := len(m.counter) / 2
	low := binary.LittleEndian.Uint64(m.counter[half:])
	low++
	binary.LittleEndian.PutUint64(m.counter[half:], low)
}

func (m *ICM) Transform(in []byte, inOff int, out []byte, outOff int, length int) error {
	if !m.initialized {
		return api.New("mode.ICM", api.InvalidState, "transform before initialize")
	}
	bs := m.cipher.BlockSize()
	for i := 0; i < length; i++ {
		if m.ksUsed == bs {
			m.cipher.EncryptBlock(m.counter, 0, m.keystream, 0)
			m.incrementLow64()
			m.ksUsed = 0
		}
		out[outOff+i] = in[inOff+i] ^ m.keystream[m.ksUsed]
		m.ksUsed++
	}
	return nil
}

func (m *ICM) Reset() {
	zeroBytes(m.counter)
	zeroBytes(m.keystream)
	m.initialized = false
}
