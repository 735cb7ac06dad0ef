package kem_test

import (
	"testing"

	circlkem "github.com/cloudflare/circl/kem"
	"github.com/cloudflare/circl/kem/schemes"
	"github.com/stretchr/testify/require"

	"github.com/lukw00heck/CEX/block"
	"github.com/lukw00heck/CEX/digest"
	"github.com/lukw00heck/CEX/drbg"
	"github.com/lukw00heck/CEX/kem"
	"github.com/lukw00heck/CEX/prng"
)

func newTestEnvelope(t *testing.T, scheme circlkem.Scheme, seed []byte) *kem.Envelope {
	t.Helper()
	g := drbg.NewCSG(nil)
	require.NoError(t, g.Initialize(seed, nil, nil))
	rng := prng.NewGeneric("CSG", g)
	return kem.NewEnvelope(scheme, digest.NewSHA256(), rng, func() block.Cipher { return block.NewRHX() })
}

func TestEnvelope_SealOpenRoundTrip(t *testing.T) {
	require := require.New(t)

	scheme := schemes.ByName("Kyber768")
	require.NotNil(scheme)

	pk, sk, err := scheme.GenerateKeyPair()
	require.NoError(err)

	env := newTestEnvelope(t, scheme, []byte("envelope round trip seed"))

	plaintext := []byte("the shared secret protects this payload")
	aad := []byte("associated metadata")

	blob, err := env.Seal(pk, plaintext, aad)
	require.NoError(err)

	recovered, err := env.Open(sk, blob, aad)
	require.NoError(err)
	require.Equal(plaintext, recovered)
}

func TestEnvelope_TamperedBlobFailsClosed(t *testing.T) {
	require := require.New(t)

	scheme := schemes.ByName("Kyber768")
	require.NotNil(scheme)

	pk, sk, err := scheme.GenerateKeyPair()
	require.NoError(err)

	env := newTestEnvelope(t, scheme, []byte("tamper seed"))

	blob, err := env.Seal(pk, []byte("payload"), nil)
	require.NoError(err)

	blob[len(blob)-1] ^= 0xFF

	_, err = env.Open(sk, blob, nil)
	require.Error(err)
}

func TestEnvelope_WrongAADFailsClosed(t *testing.T) {
	require := require.New(t)

	scheme := schemes.ByName("Kyber768")
	require.NotNil(scheme)

	pk, sk, err := scheme.GenerateKeyPair()
	require.NoError(err)

	env := newTestEnvelope(t, scheme, []byte("aad seed"))

	blob, err := env.Seal(pk, []byte("payload"), []byte("correct aad"))
	require.NoError(err)

	_, err = env.Open(sk, blob, []byte("wrong aad"))
	require.Error(err)
}
