package mode

// ghash is the GF(2^128) polynomial MAC GCM authenticates with: a running
// accumulator multiplied by the hash subkey H = E_K(0^16) after each
// padded 16-byte block of associated data and ciphertext, reduced modulo
// the NIST SP 800-38D field polynomial x^128 + x^7 + x^2 + x + 1.
type ghash struct {
	h [16]byte
	x [16]byte
}

func newGHASH(h [16]byte) *ghash {
	return &ghash{h: h}
}

// block XORs a full or zero-padded-final 16-byte chunk into the
// accumulator and reduces by multiplying with H.
func (g *ghash) block(b []byte) {
	var v [16]byte
	copy(v[:], b)
	for i := range g.x {
		g.x[i] ^= v[i]
	}
	g.x = gfMul(g.x, g.h)
}

// update absorbs data, zero-padding the final partial block per GHASH's
// definition (NIST SP 800-38D §6.4).
func (g *ghash) update(data []byte) {
	for len(data) >= 16 {
		g.block(data[:16])
		data = data[16:]
	}
	if len(data) > 0 {
		var last [16]byte
		copy(last[:], data)
		g.block(last[:])
	}
}

func (g *ghash) sum() [16]byte { return g.x }

// gfMul multiplies x and y in GF(2^128) using the standard shift-and-add
// algorithm over the bit-reflected representation NIST SP 800-38D uses:
// bits are numbered MSB-first within each byte, and the field's reduction
// constant 0xE1 is applied to the top byte on each right shift whose
// shifted-out bit was set.
func gfMul(x, y [16]byte) [16]byte {
	var z, v [16]byte
	v = y
	for i := 0; i < 128; i++ {
		bit := (x[i/8] >> uint(7-i%8)) & 1
		if bit == 1 {
			for j := range z {
				z[j] ^= v[j]
			}
		}
		lsb := v[15] & 1
		for j := 15; j > 0; j-- {
			v[j] = (v[j] >> 1) | (v[j-1] << 7)
		}
		v[0] >>= 1
		if lsb == 1 {
			v[0] ^= 0xe1
		}
	}
	return z
}
