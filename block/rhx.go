package block

import (
	"crypto/sha256"
	"io"

	"github.com/lukw00heck/CEX/internal/api"
	"github.com/lukw00heck/CEX/internal/hardware"
	"github.com/lukw00heck/CEX/memutil"
	"golang.org/x/crypto/hkdf"
)

const rhxBlockSize = 16

var rhxStandardRounds = []int{10, 12, 14}
var rhxExtendedRounds = []int{22, 30, 38}

var rhxKeySizes = []api.SymmetricKeySize{
	{KeySize: 16},
	{KeySize: 24},
	{KeySize: 32},
}

// RHX is a Rijndael-family block cipher (the AES round function at its
// core) supporting CEX's two key-schedule policies: the FIPS-197 standard
// schedule (rounds tied to key length: 10/12/14) or an HKDF-driven
// extended schedule selectable at construction from {22, 30, 38} rounds.
type RHX struct {
	extended bool
	rounds   int

	roundKeys   []byte // 16 bytes per round, (rounds+1) rounds
	encryption  bool
	initialized bool
}

// NewRHX constructs a standard-schedule RHX. Rounds are selected from the
// key length at Initialize time (16/24/32 bytes -> 10/12/14 rounds).
func NewRHX() *RHX {
	return &RHX{extended: false}
}

// NewRHXExtended constructs an extended-schedule RHX using an HKDF round
// expansion of rounds rounds (must be one of rhxExtendedRounds).
func NewRHXExtended(rounds int) (*RHX, error) {
	ok := false
	for _, r := range rhxExtendedRounds {
		if r == rounds {
			ok = true
			break
		}
	}
	if !ok {
		return nil, api.New("block.RHX", api.InvalidArgument, "rounds not in extended legal set")
	}
	return &RHX{extended: true, rounds: rounds}, nil
}

// Name returns "RHX" or "RHXH" (hardware-assisted) depending on whether
// internal/hardware reports AES-NI support.
func (c *RHX) Name() string {
	if hardware.Current().AESNI {
		return "RHXH"
	}
	return "RHX"
}

// BlockSize returns 16.
func (c *RHX) BlockSize() int { return rhxBlockSize }

// LegalKeySizes returns {16, 24, 32}.
func (c *RHX) LegalKeySizes() []api.SymmetricKeySize { return rhxKeySizes }

// LegalRounds returns the standard or extended legal round set depending
// on how this instance was constructed.
func (c *RHX) LegalRounds() []int {
	if c.extended {
		return rhxExtendedRounds
	}
	return rhxStandardRounds
}

// Rounds returns the round count this instance was initialized with.
func (c *RHX) Rounds() int { return c.rounds }

// DistributionCodeMax returns the maximum HKDF Info length accepted by the
// extended schedule.
func (c *RHX) DistributionCodeMax() int { return 256 }

// IsEncryption reports the direction Initialize was called with.
func (c *RHX) IsEncryption() bool { return c.encryption }

// IsInitialized reports whether Initialize has completed.
func (c *RHX) IsInitialized() bool { return c.initialized }

// Initialize derives the round-key schedule from key.
func (c *RHX) Initialize(encryption bool, key api.SymmetricKey) error {
	if c.extended {
		return c.initializeExtended(encryption, key)
	}
	return c.initializeStandard(encryption, key)
}

func (c *RHX) initializeStandard(encryption bool, key api.SymmetricKey) error {
	nk := len(key.Key) / 4
	switch len(key.Key) {
	case 16:
		c.rounds = 10
	case 24:
		c.rounds = 12
	case 32:
		c.rounds = 14
	default:
		return api.New("block.RHX", api.InvalidKey, "key length not in legal set")
	}

	words := make([]uint32, 4*(c.rounds+1))
	for i := 0; i < nk; i++ {
		words[i] = memutil.BytesToBE32(key.Key[i*4:])
	}
	for i := nk; i < len(words); i++ {
		temp := words[i-1]
		if i%nk == 0 {
			temp = subWord(rotWord(temp)) ^ (uint32(rcon[i/nk]) << 24)
		} else if nk > 6 && i%nk == 4 {
			temp = subWord(temp)
		}
		words[i] = words[i-nk] ^ temp
	}

	c.roundKeys = make([]byte, len(words)*4)
	for i, w := range words {
		memutil.BE32ToBytes(w, c.roundKeys[i*4:])
	}

	c.encryption = encryption
	c.initialized = true
	return nil
}

func (c *RHX) initializeExtended(encryption bool, key api.SymmetricKey) error {
	if len(key.Info) > c.DistributionCodeMax() {
		return api.New("block.RHX", api.InvalidKey, "info exceeds distribution code max")
	}
	if len(key.Key) < rhxKeySizes[0].KeySize {
		return api.New("block.RHX", api.InvalidKey, "key shorter than the smallest legal key size")
	}

	var ikm, salt []byte
	const hkdfHashBlock = 32 // SHA-256 digest size doubles as the HKDF block threshold
	if len(key.Key) > hkdfHashBlock {
		ikm, salt = key.Key[:hkdfHashBlock], key.Key[hkdfHashBlock:]
	} else {
		ikm = key.Key
	}

	outLen := 4 * (c.rounds + 1) * 4
	reader := hkdf.New(sha256.New, ikm, salt, key.Info)
	out := make([]byte, outLen)
	if _, err := io.ReadFull(reader, out); err != nil {
		return api.New("block.RHX", api.InvalidKey, "hkdf expand failed")
	}

	// Spec: "parsed little-endian into round words" -- round-trip each
	// 4-byte group through a little-endian uint32 so the schedule's word
	// boundaries are explicit, even though the byte order used for
	// AddRoundKey XOR does not otherwise depend on it.
	c.roundKeys = make([]byte, outLen)
	for i := 0; i+4 <= outLen; i += 4 {
		w := memutil.BytesToLE32(out[i:])
		memutil.LE32ToBytes(w, c.roundKeys[i:])
	}

	c.encryption = encryption
	c.initialized = true
	return nil
}

func rotWord(w uint32) uint32 { return (w << 8) | (w >> 24) }

func subWord(w uint32) uint32 {
	b := [4]byte{byte(w >> 24), byte(w >> 16), byte(w >> 8), byte(w)}
	for i := range b {
		b[i] = sbox[b[i]]
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// EncryptBlock encrypts one 16-byte block.
func (c *RHX) EncryptBlock(in []byte, inOff int, out []byte, outOff int) {
	var state [16]byte
	copy(state[:], in[inOff:inOff+16])

	addRoundKey(&state, c.roundKeys, 0)
	for round := 1; round < c.rounds; round++ {
		subBytes(&state)
		shiftRows(&state)
		mixColumns(&state)
		addRoundKey(&state, c.roundKeys, round)
	}
	subBytes(&state)
	shiftRows(&state)
	addRoundKey(&state, c.roundKeys, c.rounds)

	copy(out[outOff:outOff+16], state[:])
}

// DecryptBlock decrypts one 16-byte block using the straightforward
// (non-equivalent) inverse cipher from FIPS-197 §5.3.
func (c *RHX) DecryptBlock(in []byte, inOff int, out []byte, outOff int) {
	var state [16]byte
	copy(state[:], in[inOff:inOff+16])

	addRoundKey(&state, c.roundKeys, c.rounds)
	for round := c.rounds - 1; round >= 1; round-- {
		invShiftRows(&state)
		invSubBytes(&state)
		addRoundKey(&state, c.roundKeys, round)
		invMixColumns(&state)
	}
	invShiftRows(&state)
	invSubBytes(&state)
	addRoundKey(&state, c.roundKeys, 0)

	copy(out[outOff:outOff+16], state[:])
}

// Transform dispatches to EncryptBlock or DecryptBlock.
func (c *RHX) Transform(in []byte, inOff int, out []byte, outOff int) {
	if c.encryption {
		c.EncryptBlock(in, inOff, out, outOff)
	} else {
		c.DecryptBlock(in, inOff, out, outOff)
	}
}

// Transform512 processes 64 bytes (4 blocks) via the scalar fallback loop.
func (c *RHX) Transform512(in []byte, inOff int, out []byte, outOff int) {
	transformBulk(c, in, inOff, out, outOff, 512)
}

// Transform1024 processes 128 bytes (8 blocks) via the scalar fallback loop.
func (c *RHX) Transform1024(in []byte, inOff int, out []byte, outOff int) {
	transformBulk(c, in, inOff, out, outOff, 1024)
}

// Transform2048 processes 256 bytes (16 blocks) via the scalar fallback loop.
func (c *RHX) Transform2048(in []byte, inOff int, out []byte, outOff int) {
	transformBulk(c, in, inOff, out, outOff, 2048)
}

// Reset scrubs the round-key schedule.
func (c *RHX) Reset() {
	memutil.Scrub(c.roundKeys)
	c.initialized = false
}

func addRoundKey(state *[16]byte, roundKeys []byte, round int) {
	rk := roundKeys[round*16 : round*16+16]
	for i := 0; i < 16; i++ {
		state[i] ^= rk[i]
	}
}

func subBytes(state *[16]byte) {
	for i := range state {
		state[i] = sbox[state[i]]
	}
}

func invSubBytes(state *[16]byte) {
	for i := range state {
		state[i] = invSbox[state[i]]
	}
}

// shiftRows/invShiftRows operate on the column-major state layout
// state[r + 4*c], shifting row r left (resp. right) by r bytes.
func shiftRows(state *[16]byte) {
	s := *state
	for r := 1; r < 4; r++ {
		for c := 0; c < 4; c++ {
			state[r+4*c] = s[r+4*((c+r)%4)]
		}
	}
}

func invShiftRows(state *[16]byte) {
	s := *state
	for r := 1; r < 4; r++ {
		for c := 0; c < 4; c++ {
			state[r+4*c] = s[r+4*((c-r+4)%4)]
		}
	}
}

func mixColumns(state *[16]byte) {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := state[4*c], state[4*c+1], state[4*c+2], state[4*c+3]
		state[4*c] = gmul(a0, 2) ^ gmul(a1, 3) ^ a2 ^ a3
		state[4*c+1] = a0 ^ gmul(a1, 2) ^ gmul(a2, 3) ^ a3
		state[4*c+2] = a0 ^ a1 ^ gmul(a2, 2) ^ gmul(a3, 3)
		state[4*c+3] = gmul(a0, 3) ^ a1 ^ a2 ^ gmul(a3, 2)
	}
}

func invMixColumns(state *[16]byte) {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := state[4*c], state[4*c+1], state[4*c+2], state[4*c+3]
		state[4*c] = gmul(a0, 14) ^ gmul(a1, 11) ^ gmul(a2, 13) ^ gmul(a3, 9)
		state[4*c+1] = gmul(a0, 9) ^ gmul(a1, 14) ^ gmul(a2, 11) ^ gmul(a3, 13)
		state[4*c+2] = gmul(a0, 13) ^ gmul(a1, 9) ^ gmul(a2, 14) ^ gmul(a3, 11)
		state[4*c+3] = gmul(a0, 11) ^ gmul(a1, 13) ^ gmul(a2, 9) ^ gmul(a3, 14)
	}
}
