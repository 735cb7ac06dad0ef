package digest

import "math/bits"

// threefish512Rounds is the full 72-round Threefish-512 tweakable block
// cipher, the cipher Skein's Unique Block Iteration chains are built from.
const threefish512Rounds = 72

// threefish512Rotations are the MIX rotation constants for Threefish-512,
// indexed [round mod 8][mix pair], per the Skein v1.3 specification.
var threefish512Rotations = [8][4]uint{
	{46, 36, 19, 37},
	{33, 27, 14, 42},
	{17, 49, 36, 39},
	{44, 9, 54, 56},
	{39, 30, 34, 24},
	{13, 50, 10, 17},
	{25, 29, 39, 43},
	{8, 35, 56, 22},
}

// threefish512Permute is the word permutation applied after every round's
// four MIX operations.
var threefish512Permute = [8]int{2, 1, 4, 7, 6, 5, 0, 3}

const threefishC240 = 0x1BD11BDAA9FC1A22

// threefish512Encrypt encrypts one 64-byte block under key (8 words) and
// tweak (2 words), returning the 8-word ciphertext.
func threefish512Encrypt(key [8]uint64, tweak [2]uint64, block [8]uint64) [8]uint64 {
	var k [9]uint64
	var t [3]uint64
	parity := uint64(threefishC240)
	for i := 0; i < 8; i++ {
		k[i] = key[i]
		parity ^= key[i]
	}
	k[8] = parity
	t[0] = tweak[0]
	t[1] = tweak[1]
	t[2] = t[0] ^ t[1]

	state := block
	addSubkey(&state, k, t, 0)

	for d := 0; d < threefish512Rounds; d++ {
		rot := threefish512Rotations[d%8]
		mix(&state[0], &state[1], rot[0])
		mix(&state[2], &state[3], rot[1])
		mix(&state[4], &state[5], rot[2])
		mix(&state[6], &state[7], rot[3])
		state = permuteWords(state)

		if d%4 == 3 {
			addSubkey(&state, k, t, (d+1)/4)
		}
	}

	return state
}

func mix(a, b *uint64, rot uint) {
	*a = *a + *b
	*b = bits.RotateLeft64(*b, int(rot)) ^ *a
}

func permuteWords(in [8]uint64) [8]uint64 {
	var out [8]uint64
	for i, p := range threefish512Permute {
		out[i] = in[p]
	}
	return out
}

func addSubkey(state *[8]uint64, k [9]uint64, t [3]uint64, s int) {
	for i := 0; i < 5; i++ {
		state[i] += k[(s+i)%9]
	}
	state[5] += k[(s+5)%9] + t[s%3]
	state[6] += k[(s+6)%9] + t[(s+1)%3]
	state[7] += k[(s+7)%9] + uint64(s)
}
