package kdf

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lukw00heck/CEX/digest"
)

func TestHKDF_RFC5869_Test1(t *testing.T) {
	require := require.New(t)

	ikm := bytes.Repeat([]byte{0x0b}, 22)
	salt, _ := hex.DecodeString("000102030405060708090a0b0c")
	info, _ := hex.DecodeString("f0f1f2f3f4f5f6f7f8f9")

	h := NewHKDF(sha256.New, ikm, salt, info)
	out := make([]byte, 42)
	n, err := h.Generate(out, 0, 42)
	require.NoError(err)
	require.Equal(42, n)

	want, _ := hex.DecodeString("3cb25f25faacd57a90434f64d0362f2a2d2d0a90cf1a5a4c5db02d56ecc4c5bf34007208d5b887185865")
	require.Equal(want, out)
}

func TestKDF2_ExhaustsAtCap(t *testing.T) {
	require := require.New(t)

	d := digest.NewSHA256()
	k, err := NewKDF2(d, bytes.Repeat([]byte{1}, d.Size()))
	require.NoError(err)

	buf := make([]byte, 255*d.Size())
	_, err = k.Generate(buf, 0, len(buf))
	require.NoError(err)

	_, err = k.Generate(make([]byte, 1), 0, 1)
	require.Error(err)
}

func TestKDF2_RejectsShortKey(t *testing.T) {
	require := require.New(t)

	d := digest.NewSHA256()
	_, err := NewKDF2(d, []byte{1, 2, 3})
	require.Error(err)
}

func TestKDF2_RejectsShortSalt(t *testing.T) {
	require := require.New(t)

	d := digest.NewSHA256()
	_, err := NewKDF2WithSalt(d, bytes.Repeat([]byte{1}, d.Size()), []byte{1, 2}, nil)
	require.Error(err)
}

func TestPBKDF2Deterministic(t *testing.T) {
	require := require.New(t)

	k1 := NewPBKDF2(sha256.New, []byte("password"), []byte("salt"), 1000)
	out1 := make([]byte, 32)
	_, err := k1.Generate(out1, 0, 32)
	require.NoError(err)

	k2 := NewPBKDF2(sha256.New, []byte("password"), []byte("salt"), 1000)
	out2 := make([]byte, 32)
	_, err = k2.Generate(out2, 0, 32)
	require.NoError(err)

	require.Equal(out1, out2)
}

func TestSHAKEKdf(t *testing.T) {
	require := require.New(t)

	k := NewSHAKE256([]byte("key material"), nil, nil)
	out := make([]byte, 64)
	n, err := k.Generate(out, 0, 64)
	require.NoError(err)
	require.Equal(64, n)
	require.NotEqual(make([]byte, 64), out)
}
