package mode

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lukw00heck/CEX/block"
	"github.com/lukw00heck/CEX/internal/api"
)

func TestCTR_RoundTrip(t *testing.T) {
	require := require.New(t)

	key := api.SymmetricKey{Key: bytes.Repeat([]byte{0x2a}, 16), Nonce: make([]byte, 16)}
	pt := bytes.Repeat([]byte{0x55}, 100)

	encCipher := block.NewRHX()
	enc := NewCTR()
	require.NoError(enc.Initialize(encCipher, true, key))
	ct := make([]byte, len(pt))
	require.NoError(enc.Transform(pt, 0, ct, 0, len(pt)))
	require.NotEqual(pt, ct)

	decCipher := block.NewRHX()
	dec := NewCTR()
	require.NoError(dec.Initialize(decCipher, false, key))
	rt := make([]byte, len(ct))
	require.NoError(dec.Transform(ct, 0, rt, 0, len(ct)))
	require.Equal(pt, rt)
}

func TestICM_RoundTrip(t *testing.T) {
	require := require.New(t)

	key := api.SymmetricKey{Key: bytes.Repeat([]byte{0x11}, 16), Nonce: bytes.Repeat([]byte{0x00}, 16)}
	pt := bytes.Repeat([]byte{0x7f}, 40)

	enc := NewICM()
	require.NoError(enc.Initialize(block.NewRHX(), true, key))
	ct := make([]byte, len(pt))
	require.NoError(enc.Transform(pt, 0, ct, 0, len(pt)))

	dec := NewICM()
	require.NoError(dec.Initialize(block.NewRHX(), false, key))
	rt := make([]byte, len(ct))
	require.NoError(dec.Transform(ct, 0, rt, 0, len(ct)))
	require.Equal(pt, rt)
}

func TestCBC_RoundTrip(t *testing.T) {
	require := require.New(t)

	key := api.SymmetricKey{Key: bytes.Repeat([]byte{0x33}, 16), Nonce: make([]byte, 16)}
	pt := bytes.Repeat([]byte{0x01}, 64)

	enc := NewCBC()
	require.NoError(enc.Initialize(block.NewRHX(), true, key))
	ct := make([]byte, len(pt))
	require.NoError(enc.Transform(pt, 0, ct, 0, len(pt)))

	dec := NewCBC()
	require.NoError(dec.Initialize(block.NewRHX(), false, key))
	rt := make([]byte, len(ct))
	require.NoError(dec.Transform(ct, 0, rt, 0, len(ct)))
	require.Equal(pt, rt)
}

func TestCBC_RejectsNonBlockMultiple(t *testing.T) {
	require := require.New(t)

	key := api.SymmetricKey{Key: bytes.Repeat([]byte{0x33}, 16), Nonce: make([]byte, 16)}
	enc := NewCBC()
	require.NoError(enc.Initialize(block.NewRHX(), true, key))
	err := enc.Transform(make([]byte, 17), 0, make([]byte, 17), 0, 17)
	require.Error(err)
}

func TestCFB_RoundTrip(t *testing.T) {
	require := require.New(t)

	key := api.SymmetricKey{Key: bytes.Repeat([]byte{0x44}, 16), Nonce: make([]byte, 16)}
	pt := bytes.Repeat([]byte{0x02}, 48)

	enc := NewCFB()
	require.NoError(enc.Initialize(block.NewRHX(), true, key))
	ct := make([]byte, len(pt))
	require.NoError(enc.Transform(pt, 0, ct, 0, len(pt)))

	dec := NewCFB()
	require.NoError(dec.Initialize(block.NewRHX(), false, key))
	rt := make([]byte, len(ct))
	require.NoError(dec.Transform(ct, 0, rt, 0, len(ct)))
	require.Equal(pt, rt)
}

func TestOFB_RoundTrip(t *testing.T) {
	require := require.New(t)

	key := api.SymmetricKey{Key: bytes.Repeat([]byte{0x55}, 16), Nonce: make([]byte, 16)}
	pt := bytes.Repeat([]byte{0x03}, 48)

	enc := NewOFB()
	require.NoError(enc.Initialize(block.NewRHX(), true, key))
	ct := make([]byte, len(pt))
	require.NoError(enc.Transform(pt, 0, ct, 0, len(pt)))

	dec := NewOFB()
	require.NoError(dec.Initialize(block.NewRHX(), false, key))
	rt := make([]byte, len(ct))
	require.NoError(dec.Transform(ct, 0, rt, 0, len(ct)))
	require.Equal(pt, rt)
}

func TestECB_RoundTrip(t *testing.T) {
	require := require.New(t)

	key := api.SymmetricKey{Key: bytes.Repeat([]byte{0x66}, 16)}
	pt := bytes.Repeat([]byte{0x04}, 32)

	enc := NewECB()
	require.NoError(enc.Initialize(block.NewRHX(), true, key))
	ct := make([]byte, len(pt))
	require.NoError(enc.Transform(pt, 0, ct, 0, len(pt)))

	dec := NewECB()
	require.NoError(dec.Initialize(block.NewRHX(), false, key))
	rt := make([]byte, len(ct))
	require.NoError(dec.Transform(ct, 0, rt, 0, len(ct)))
	require.Equal(pt, rt)
}

// TestGCM_EmptyInputKAT is spec.md §8 scenario 4: K=N=AAD=P=empty,
// N=00x12 -> tag 58e2fccefa7e3061367f1d57a4e7455a.
func TestGCM_EmptyInputKAT(t *testing.T) {
	require := require.New(t)

	key := make([]byte, 16)
	nonce := make([]byte, 12)

	g := NewGCM()
	ct, err := g.Seal(nil, key, nonce, nil, nil, block.NewRHX())
	require.NoError(err)
	require.Len(ct, 16)

	want, _ := hex.DecodeString("58e2fccefa7e3061367f1d57a4e7455a")
	require.Equal(want, ct)
}

func TestGCM_RoundTripWithAAD(t *testing.T) {
	require := require.New(t)

	key := bytes.Repeat([]byte{0x77}, 16)
	nonce := bytes.Repeat([]byte{0x01}, 12)
	aad := []byte("header")
	pt := []byte("the quick brown fox")

	sealer := NewGCM()
	ct, err := sealer.Seal(nil, key, nonce, pt, aad, block.NewRHX())
	require.NoError(err)

	opener := NewGCM()
	got, err := opener.Open(nil, key, nonce, ct, aad, block.NewRHX())
	require.NoError(err)
	require.Equal(pt, got)
}

func TestGCM_TamperedTagFailsClosed(t *testing.T) {
	require := require.New(t)

	key := bytes.Repeat([]byte{0x88}, 16)
	nonce := bytes.Repeat([]byte{0x02}, 12)
	pt := []byte("secret payload")

	sealer := NewGCM()
	ct, err := sealer.Seal(nil, key, nonce, pt, nil, block.NewRHX())
	require.NoError(err)
	ct[len(ct)-1] ^= 0xff

	opener := NewGCM()
	_, err = opener.Open(nil, key, nonce, ct, nil, block.NewRHX())
	require.Error(err)
	var apiErr *api.Error
	require.ErrorAs(err, &apiErr)
	require.Equal(api.AuthenticationFailure, apiErr.Kind)
}
