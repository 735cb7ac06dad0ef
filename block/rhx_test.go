package block

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lukw00heck/CEX/internal/api"
)

// TestRHX_FIPS197_AES256_ECB_AllZero is spec.md §8 scenario 1: K = 32 zero
// bytes, P = 16 zero bytes encrypted under standard-schedule AES-256 ECB.
func TestRHX_FIPS197_AES256_ECB_AllZero(t *testing.T) {
	require := require.New(t)

	c := NewRHX()
	key := api.SymmetricKey{Key: make([]byte, 32)}
	require.NoError(c.Initialize(true, key))
	require.Equal(14, c.Rounds())

	pt := make([]byte, 16)
	ct := make([]byte, 16)
	c.EncryptBlock(pt, 0, ct, 0)

	want := []byte{
		0xdc, 0x95, 0xc0, 0x78, 0xa2, 0x40, 0x89, 0x89,
		0xad, 0x48, 0xa2, 0x14, 0x92, 0x84, 0x20, 0x87,
	}
	require.Equal(want, ct)
}

func TestRHX_EncryptDecryptRoundTrip(t *testing.T) {
	require := require.New(t)

	for _, keyLen := range []int{16, 24, 32} {
		key := api.SymmetricKey{Key: bytes.Repeat([]byte{0x42}, keyLen)}

		enc := NewRHX()
		require.NoError(enc.Initialize(true, key))
		dec := NewRHX()
		require.NoError(dec.Initialize(false, key))

		pt := bytes.Repeat([]byte{0x24}, 16)
		ct := make([]byte, 16)
		rt := make([]byte, 16)

		enc.EncryptBlock(pt, 0, ct, 0)
		dec.DecryptBlock(ct, 0, rt, 0)
		require.Equal(pt, rt)
	}
}

func TestRHX_RejectsIllegalKeySize(t *testing.T) {
	require := require.New(t)

	c := NewRHX()
	err := c.Initialize(true, api.SymmetricKey{Key: make([]byte, 20)})
	require.Error(err)
}

func TestRHX_ExtendedSchedule(t *testing.T) {
	require := require.New(t)

	enc, err := NewRHXExtended(22)
	require.NoError(err)
	dec, err := NewRHXExtended(22)
	require.NoError(err)

	key := api.SymmetricKey{Key: bytes.Repeat([]byte{0x11}, 32), Info: []byte("distribution-code")}
	require.NoError(enc.Initialize(true, key))
	require.NoError(dec.Initialize(false, key))

	pt := bytes.Repeat([]byte{0x99}, 16)
	ct := make([]byte, 16)
	rt := make([]byte, 16)
	enc.EncryptBlock(pt, 0, ct, 0)
	dec.DecryptBlock(ct, 0, rt, 0)
	require.Equal(pt, rt)
	require.NotEqual(pt, ct)
}

func TestRHX_ExtendedRejectsBadRounds(t *testing.T) {
	require := require.New(t)
	_, err := NewRHXExtended(13)
	require.Error(err)
}

func TestRHX_Transform1024MatchesPerBlock(t *testing.T) {
	require := require.New(t)

	key := api.SymmetricKey{Key: bytes.Repeat([]byte{0x07}, 16)}
	c := NewRHX()
	require.NoError(c.Initialize(true, key))

	pt := bytes.Repeat([]byte{0xab}, 128)
	bulk := make([]byte, 128)
	c.Transform1024(pt, 0, bulk, 0)

	seq := make([]byte, 128)
	for i := 0; i < 8; i++ {
		c.EncryptBlock(pt, i*16, seq, i*16)
	}
	require.Equal(seq, bulk)
}
