package provider

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCSPGenerate(t *testing.T) {
	require := require.New(t)

	p := NewCSP()
	require.Equal("CSP", p.Name())

	a := make([]byte, 32)
	b := make([]byte, 32)
	require.NoError(p.Generate(a))
	require.NoError(p.Generate(b))
	require.False(bytes.Equal(a, b), "two draws should not collide")
}

func TestJITGenerateDeterministicLength(t *testing.T) {
	require := require.New(t)

	p := NewJIT(16)
	out := make([]byte, 64)
	require.NoError(p.Generate(out))
	require.NotEqual(make([]byte, 64), out)
}

func TestACPGenerate(t *testing.T) {
	require := require.New(t)

	p := NewACP()
	require.Equal("ACP", p.Name())

	a := make([]byte, 48)
	require.NoError(p.Generate(a))

	b := make([]byte, 48)
	require.NoError(p.Generate(b))
	require.False(bytes.Equal(a, b))
}

func TestFromName(t *testing.T) {
	require := require.New(t)

	for _, name := range []string{"CSP", "RDR", "JIT", "ACP"} {
		p, err := FromName(name)
		require.NoError(err)
		require.Equal(name, p.Name())
	}

	_, err := FromName("nope")
	require.ErrorIs(err, ErrUnknownProvider)
}
