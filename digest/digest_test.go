package digest

import (
	"encoding/hex"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSHA3_256_EmptyKAT(t *testing.T) {
	require := require.New(t)

	d := NewSHA3_256()
	sum := d.Sum(nil)
	want, _ := hex.DecodeString("a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a")
	require.Equal(want, sum)
}

func TestSHAKE256_EmptyKAT(t *testing.T) {
	require := require.New(t)

	x := NewShake256()
	out := make([]byte, 32)
	_, err := io.ReadFull(x, out)
	require.NoError(err)

	want, _ := hex.DecodeString("46b9dd2b0ba88d13233b3feb743eeb243fcd52ea62b81b82b50c27646ed5762f")
	require.Equal(want, out)
}

func TestBlake2bDeterministic(t *testing.T) {
	require := require.New(t)

	d1 := NewBlake2b256()
	d1.Write([]byte("hello"))
	d2 := NewBlake2b256()
	d2.Write([]byte("hello"))
	require.Equal(d1.Sum(nil), d2.Sum(nil))
	require.Len(d1.Sum(nil), 32)
}

func TestSkein512RoundTripProperties(t *testing.T) {
	require := require.New(t)

	empty := NewSkein512().Sum(nil)
	require.Len(empty, 64)

	a := NewSkein512()
	a.Write([]byte("the quick brown fox"))
	sumA := a.Sum(nil)

	b := NewSkein512()
	b.Write([]byte("the quick brown fox"))
	sumB := b.Sum(nil)
	require.Equal(sumA, sumB, "Skein-512 must be deterministic")
	require.NotEqual(empty, sumA, "non-empty input must differ from empty digest")

	c := NewSkein512()
	c.Write([]byte("the quick brown fo"))
	c.Write([]byte("x"))
	sumC := c.Sum(nil)
	require.Equal(sumA, sumC, "split writes must match a single write")

	d := NewSkein512()
	d.Write([]byte("the quick brown fox."))
	sumD := d.Sum(nil)
	require.NotEqual(sumA, sumD, "changing the message must change the digest")
}
