package memutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackUnpack32(t *testing.T) {
	require := require.New(t)

	var buf [4]byte
	LE32ToBytes(0x01020304, buf[:])
	require.Equal(uint32(0x01020304), BytesToLE32(buf[:]))

	BE32ToBytes(0x01020304, buf[:])
	require.Equal(uint32(0x01020304), BytesToBE32(buf[:]))
	require.Equal([4]byte{0x01, 0x02, 0x03, 0x04}, buf)
}

func TestConstantTimeCompare(t *testing.T) {
	require := require.New(t)

	require.True(ConstantTimeCompare([]byte("abc"), []byte("abc")))
	require.False(ConstantTimeCompare([]byte("abc"), []byte("abd")))
	require.False(ConstantTimeCompare([]byte("abc"), []byte("ab")))
}

func TestScrub(t *testing.T) {
	require := require.New(t)

	b := []byte{1, 2, 3, 4}
	Scrub(b)
	require.Equal([]byte{0, 0, 0, 0}, b)
}

func TestRotate(t *testing.T) {
	require := require.New(t)

	require.Equal(uint32(0x00000003), RotateLeft32(0x80000001, 1))
	require.Equal(RotateLeft32(0x80000001, 1), RotateRight32(0x80000001, 31))
}

func TestCopyRawVsPacked(t *testing.T) {
	require := require.New(t)

	raw := make([]byte, 4)
	n := CopyRaw(raw, []byte{9, 8, 7, 6})
	require.Equal(4, n)
	require.Equal([]byte{9, 8, 7, 6}, raw)

	packed := make([]byte, 8)
	n = PackUint32sLE(packed, []uint32{0x01020304, 0x05060708})
	require.Equal(8, n)
	require.Equal([]byte{0x04, 0x03, 0x02, 0x01, 0x08, 0x07, 0x06, 0x05}, packed)
}
