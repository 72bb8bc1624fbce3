// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argon2hard

// blamka is the Argon2 variant of the BLAKE2b mixing function G: it adds an
// fBlaMka term (twice the 32-bit-truncated product of the two inputs being
// combined) before each rotation, which is what makes the compression
// function depend on full-width multiplication rather than only XOR/add/rotate.
func blamka(a, b, c, d uint64) (uint64, uint64, uint64, uint64) {
	a += b + 2*uint64(uint32(a))*uint64(uint32(b))
	d = rotr64(d^a, 32)
	c += d + 2*uint64(uint32(c))*uint64(uint32(d))
	b = rotr64(b^c, 24)

	a += b + 2*uint64(uint32(a))*uint64(uint32(b))
	d = rotr64(d^a, 16)
	c += d + 2*uint64(uint32(c))*uint64(uint32(d))
	b = rotr64(b^c, 63)

	return a, b, c, d
}

func rotr64(x uint64, n uint) uint64 {
	return (x >> n) | (x << (64 - n))
}

// blamkaRound applies one BLAKE2b round (four column mixes, then four
// diagonal mixes) to a 16-word group of a block.
func blamkaRound(v []uint64) {
	v[0], v[4], v[8], v[12] = blamka(v[0], v[4], v[8], v[12])
	v[1], v[5], v[9], v[13] = blamka(v[1], v[5], v[9], v[13])
	v[2], v[6], v[10], v[14] = blamka(v[2], v[6], v[10], v[14])
	v[3], v[7], v[11], v[15] = blamka(v[3], v[7], v[11], v[15])

	v[0], v[5], v[10], v[15] = blamka(v[0], v[5], v[10], v[15])
	v[1], v[6], v[11], v[12] = blamka(v[1], v[6], v[11], v[12])
	v[2], v[7], v[8], v[13] = blamka(v[2], v[7], v[8], v[13])
	v[3], v[4], v[9], v[14] = blamka(v[3], v[4], v[9], v[14])
}

// permute applies P (8 rounds over the column-groups, then 8 rounds over the
// row-groups) to r in place, per RFC 9106 §3.5.
func permute(r *block) {
	for i := 0; i < blockLength; i += 16 {
		blamkaRound(r[i : i+16])
	}

	for i := 0; i < 8; i++ {
		v := [16]uint64{
			r[2*i+0], r[2*i+1],
			r[2*i+16], r[2*i+17],
			r[2*i+32], r[2*i+33],
			r[2*i+48], r[2*i+49],
			r[2*i+64], r[2*i+65],
			r[2*i+80], r[2*i+81],
			r[2*i+96], r[2*i+97],
			r[2*i+112], r[2*i+113],
		}
		blamkaRound(v[:])
		r[2*i+0], r[2*i+1] = v[0], v[1]
		r[2*i+16], r[2*i+17] = v[2], v[3]
		r[2*i+32], r[2*i+33] = v[4], v[5]
		r[2*i+48], r[2*i+49] = v[6], v[7]
		r[2*i+64], r[2*i+65] = v[8], v[9]
		r[2*i+80], r[2*i+81] = v[10], v[11]
		r[2*i+96], r[2*i+97] = v[12], v[13]
		r[2*i+112], r[2*i+113] = v[14], v[15]
	}
}

// compress is the Argon2 compression function G(prev, ref) -> out. When
// withXor is false (pass 0) out is fully overwritten; when true (pass >= 1)
// out is XORed with the freshly-computed compression result, which is how
// later passes fold new material into the same arena slot instead of
// allocating a second arena.
func compress(prev, ref, out *block, withXor bool) {
	var r, q block
	r.xorOf(prev, ref)
	q.set(&r)

	permute(&r)

	r.xor(&q)

	if withXor {
		r.xor(out)
	}
	out.set(&r)
}
