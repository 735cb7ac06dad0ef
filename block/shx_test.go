package block

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lukw00heck/CEX/internal/api"
)

func TestSHX_EncryptDecryptRoundTrip(t *testing.T) {
	require := require.New(t)

	for _, keyLen := range []int{16, 24, 32} {
		key := api.SymmetricKey{Key: bytes.Repeat([]byte{0x5a}, keyLen)}

		enc := NewSHX()
		require.NoError(enc.Initialize(true, key))
		dec := NewSHX()
		require.NoError(dec.Initialize(false, key))
		require.Equal(enc.Rounds(), dec.Rounds())

		pt := bytes.Repeat([]byte{0x3c}, 16)
		ct := make([]byte, 16)
		rt := make([]byte, 16)

		enc.EncryptBlock(pt, 0, ct, 0)
		require.NotEqual(pt, ct)
		dec.DecryptBlock(ct, 0, rt, 0)
		require.Equal(pt, rt)
	}
}

func TestSHX_32ByteKeyPromotesToFortyRounds(t *testing.T) {
	require := require.New(t)

	c := NewSHX()
	require.NoError(c.Initialize(true, api.SymmetricKey{Key: make([]byte, 32)}))
	require.Equal(40, c.Rounds())
}

func TestSHX_RejectsIllegalKeySize(t *testing.T) {
	require := require.New(t)

	c := NewSHX()
	err := c.Initialize(true, api.SymmetricKey{Key: make([]byte, 20)})
	require.Error(err)
}

func TestSHX_Avalanche(t *testing.T) {
	require := require.New(t)

	key := api.SymmetricKey{Key: bytes.Repeat([]byte{0x01}, 16)}
	enc := NewSHX()
	require.NoError(enc.Initialize(true, key))

	pt1 := make([]byte, 16)
	pt2 := make([]byte, 16)
	pt2[0] = 0x01

	ct1 := make([]byte, 16)
	ct2 := make([]byte, 16)
	enc.EncryptBlock(pt1, 0, ct1, 0)
	enc.EncryptBlock(pt2, 0, ct2, 0)

	diffBits := 0
	for i := range ct1 {
		diff := ct1[i] ^ ct2[i]
		for diff != 0 {
			diffBits += int(diff & 1)
			diff >>= 1
		}
	}
	require.Greater(diffBits, 20)
}

func TestSHX_ExtendedSchedule(t *testing.T) {
	require := require.New(t)

	enc, err := NewSHXExtended(48)
	require.NoError(err)
	dec, err := NewSHXExtended(48)
	require.NoError(err)

	key := api.SymmetricKey{Key: bytes.Repeat([]byte{0x22}, 24), Info: []byte("shx-distribution-code")}
	require.NoError(enc.Initialize(true, key))
	require.NoError(dec.Initialize(false, key))

	pt := bytes.Repeat([]byte{0x77}, 16)
	ct := make([]byte, 16)
	rt := make([]byte, 16)
	enc.EncryptBlock(pt, 0, ct, 0)
	dec.DecryptBlock(ct, 0, rt, 0)
	require.Equal(pt, rt)
}

func TestSHX_ExtendedRejectsBadRounds(t *testing.T) {
	require := require.New(t)
	_, err := NewSHXExtended(33)
	require.Error(err)
}
