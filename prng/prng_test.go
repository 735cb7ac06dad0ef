package prng

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lukw00heck/CEX/block"
	"github.com/lukw00heck/CEX/drbg"
)

func TestGeneric_NextUint64Deterministic(t *testing.T) {
	require := require.New(t)

	seed := []byte("prng determinism seed")

	g1 := drbg.NewCSG(nil)
	require.NoError(g1.Initialize(seed, nil, nil))
	p1 := NewGeneric("CSG", g1)

	g2 := drbg.NewCSG(nil)
	require.NoError(g2.Initialize(seed, nil, nil))
	p2 := NewGeneric("CSG", g2)

	v1, err := p1.NextUint64()
	require.NoError(err)
	v2, err := p2.NextUint64()
	require.NoError(err)
	require.Equal(v1, v2)
}

func TestGeneric_NextRangeWithinBound(t *testing.T) {
	require := require.New(t)

	g := drbg.NewCSG(nil)
	require.NoError(g.Initialize([]byte("range seed"), nil, nil))
	p := NewGeneric("CSG", g)

	for i := 0; i < 200; i++ {
		v, err := p.NextRange(37)
		require.NoError(err)
		require.Less(v, uint32(37))
	}
}

func TestBcr_RefillsAcrossBufferBoundary(t *testing.T) {
	require := require.New(t)

	seed := make([]byte, 16)
	nonce := make([]byte, 16)
	b, err := NewBcr(func() block.Cipher { return block.NewRHX() }, seed, nonce, nil)
	require.NoError(err)

	out := make([]byte, bufferDef+100)
	require.NoError(b.NextBytes(out))

	allZero := true
	for _, c := range out {
		if c != 0 {
			allZero = false
			break
		}
	}
	require.False(allZero)
}

func TestBcr_Deterministic(t *testing.T) {
	require := require.New(t)

	seed := make([]byte, 16)
	nonce := make([]byte, 16)

	b1, err := NewBcr(func() block.Cipher { return block.NewRHX() }, seed, nonce, nil)
	require.NoError(err)
	b2, err := NewBcr(func() block.Cipher { return block.NewRHX() }, seed, nonce, nil)
	require.NoError(err)

	out1 := make([]byte, 10)
	out2 := make([]byte, 10)
	require.NoError(b1.NextBytes(out1))
	require.NoError(b2.NextBytes(out2))
	require.Equal(out1, out2)
}
