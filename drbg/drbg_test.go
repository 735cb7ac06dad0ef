package drbg

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lukw00heck/CEX/block"
)

func TestCSG_DeterministicWithoutProvider(t *testing.T) {
	require := require.New(t)

	seed := []byte("deterministic seed material")

	g1 := NewCSG(nil)
	require.NoError(g1.Initialize(seed, nil, nil))
	out1 := make([]byte, 64)
	_, err := g1.Generate(out1, 0, 64)
	require.NoError(err)

	g2 := NewCSG(nil)
	require.NoError(g2.Initialize(seed, nil, nil))
	out2 := make([]byte, 64)
	_, err = g2.Generate(out2, 0, 64)
	require.NoError(err)

	require.Equal(out1, out2)
}

func TestCSG_RejectsOversizedRequest(t *testing.T) {
	require := require.New(t)

	g := NewCSG(nil)
	require.NoError(g.Initialize([]byte("seed"), nil, nil))
	_, err := g.Generate(make([]byte, csgMaxRequest+1), 0, csgMaxRequest+1)
	require.Error(err)
}

func TestCSG_CustomizedDiffersFromPlain(t *testing.T) {
	require := require.New(t)

	seed := []byte("same seed")

	plain := NewCSG(nil)
	require.NoError(plain.Initialize(seed, nil, nil))
	out1 := make([]byte, 32)
	_, err := plain.Generate(out1, 0, 32)
	require.NoError(err)

	customized := NewCSG(nil)
	require.NoError(customized.Initialize(seed, []byte("nonce"), []byte("info")))
	out2 := make([]byte, 32)
	_, err = customized.Generate(out2, 0, 32)
	require.NoError(err)

	require.NotEqual(out1, out2)
}

func TestBCG_DeterministicWithoutProvider(t *testing.T) {
	require := require.New(t)

	seed := make([]byte, 16)
	nonce := make([]byte, 16)
	for i := range seed {
		seed[i] = byte(i)
	}

	g1 := NewBCG(func() block.Cipher { return block.NewRHX() }, nil)
	require.NoError(g1.Initialize(seed, nonce, nil))
	out1 := make([]byte, 80)
	_, err := g1.Generate(out1, 0, 80)
	require.NoError(err)

	g2 := NewBCG(func() block.Cipher { return block.NewRHX() }, nil)
	require.NoError(g2.Initialize(seed, nonce, nil))
	out2 := make([]byte, 80)
	_, err = g2.Generate(out2, 0, 80)
	require.NoError(err)

	require.Equal(out1, out2)
}

func TestHMG_DeterministicWithoutProvider(t *testing.T) {
	require := require.New(t)

	seed := []byte("hmac-drbg-seed-material")

	g1 := NewHMG(nil)
	require.NoError(g1.Initialize(seed, nil, nil))
	out1 := make([]byte, 48)
	_, err := g1.Generate(out1, 0, 48)
	require.NoError(err)

	g2 := NewHMG(nil)
	require.NoError(g2.Initialize(seed, nil, nil))
	out2 := make([]byte, 48)
	_, err = g2.Generate(out2, 0, 48)
	require.NoError(err)

	require.Equal(out1, out2)

	out3 := make([]byte, 48)
	_, err = g1.Generate(out3, 0, 48)
	require.NoError(err)
	require.NotEqual(out1, out3)
}

func TestHCG_DeterministicWithoutProvider(t *testing.T) {
	require := require.New(t)

	seed := []byte("hash-drbg-seed-material")

	g1 := NewHCG(nil)
	require.NoError(g1.Initialize(seed, nil, nil))
	out1 := make([]byte, 48)
	_, err := g1.Generate(out1, 0, 48)
	require.NoError(err)

	g2 := NewHCG(nil)
	require.NoError(g2.Initialize(seed, nil, nil))
	out2 := make([]byte, 48)
	_, err = g2.Generate(out2, 0, 48)
	require.NoError(err)

	require.Equal(out1, out2)

	out3 := make([]byte, 48)
	_, err = g1.Generate(out3, 0, 48)
	require.NoError(err)
	require.NotEqual(out1, out3)
}
