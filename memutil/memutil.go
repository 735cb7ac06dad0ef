// Package memutil collects the endian-safe byte/word helpers every family
// in the engine is built on: packing and unpacking fixed-width integers,
// constant-time comparison, secret scrubbing, rotation, and the raw-vs-packed
// copy distinction resolved from the original StreamWriter::Write ambiguity.
package memutil

import (
	"crypto/subtle"
	"encoding/binary"
	"math/bits"
)

// LE32ToBytes packs w into dst[0:4], little-endian.
func LE32ToBytes(w uint32, dst []byte) { binary.LittleEndian.PutUint32(dst, w) }

// BytesToLE32 unpacks a little-endian uint32 from src[0:4].
func BytesToLE32(src []byte) uint32 { return binary.LittleEndian.Uint32(src) }

// BE32ToBytes packs w into dst[0:4], big-endian.
func BE32ToBytes(w uint32, dst []byte) { binary.BigEndian.PutUint32(dst, w) }

// BytesToBE32 unpacks a big-endian uint32 from src[0:4].
func BytesToBE32(src []byte) uint32 { return binary.BigEndian.Uint32(src) }

// LE64ToBytes packs w into dst[0:8], little-endian.
func LE64ToBytes(w uint64, dst []byte) { binary.LittleEndian.PutUint64(dst, w) }

// BytesToLE64 unpacks a little-endian uint64 from src[0:8].
func BytesToLE64(src []byte) uint64 { return binary.LittleEndian.Uint64(src) }

// BE64ToBytes packs w into dst[0:8], big-endian.
func BE64ToBytes(w uint64, dst []byte) { binary.BigEndian.PutUint64(dst, w) }

// BytesToBE64 unpacks a big-endian uint64 from src[0:8].
func BytesToBE64(src []byte) uint64 { return binary.BigEndian.Uint64(src) }

// Words4LE unpacks 16 bytes of src into 4 little-endian uint32 words,
// the shape block cipher round-key schedules consume.
func Words4LE(src []byte) [4]uint32 {
	var w [4]uint32
	for i := range w {
		w[i] = BytesToLE32(src[i*4:])
	}
	return w
}

// ConstantTimeCompare reports whether a and b are equal, in time
// independent of where they first differ. Used for AEAD tag verification.
func ConstantTimeCompare(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// Scrub zero-fills b. block.RHX's Reset calls this on its round keys; the
// other packages' Reset methods zero their buffers with local helpers.
func Scrub(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// ScrubWords zero-fills a []uint32 round-key schedule.
func ScrubWords(w []uint32) {
	for i := range w {
		w[i] = 0
	}
}

// RotateLeft32 rotates w left by n bits.
func RotateLeft32(w uint32, n int) uint32 { return bits.RotateLeft32(w, n) }

// RotateRight32 rotates w right by n bits.
func RotateRight32(w uint32, n int) uint32 { return bits.RotateLeft32(w, -n) }

// Min returns the smaller of a and b.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// CopyRaw copies src into dst byte-for-byte, for element types whose size
// is 1 byte (e.g. a []byte view of counters). This resolves the first arm
// of the StreamWriter::Write(Array, off, n) ambiguity: single-byte element
// arrays are copied verbatim, never byte-swapped.
func CopyRaw(dst, src []byte) int {
	return copy(dst, src)
}

// PackUint32sLE packs src, a slice of 32-bit words, into dst as contiguous
// little-endian bytes. This resolves the second arm of the StreamWriter
// ambiguity: wider element types are packed little-endian rather than
// copied as raw machine words, so the output is portable across endianness.
func PackUint32sLE(dst []byte, src []uint32) int {
	n := 0
	for _, w := range src {
		if n+4 > len(dst) {
			break
		}
		LE32ToBytes(w, dst[n:])
		n += 4
	}
	return n
}

// PackUint64sLE packs src, a slice of 64-bit words, into dst as contiguous
// little-endian bytes.
func PackUint64sLE(dst []byte, src []uint64) int {
	n := 0
	for _, w := range src {
		if n+8 > len(dst) {
			break
		}
		LE64ToBytes(w, dst[n:])
		n += 8
	}
	return n
}
