// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argon2hard

// addressGenerator produces the pseudo-random 64-bit address words Argon2i
// needs for one segment. It holds the synthetic input block I (pass, lane,
// slice, memory size, time cost, addressing mode, and a running counter in
// I[6]) plus the two scratch blocks the double-compress step needs, so that
// one generator, allocated once per fillSegment call, serves every block of
// that segment.
type addressGenerator struct {
	input     block
	addresses block
	zero      block
	cursor    int // position within the 128-word addresses block
}

// newAddressGenerator builds a generator for the given position, ready to
// emit pseudo-random words for indices 0..segmentLength-1 of that segment.
func newAddressGenerator(pass, lane, slice uint32, memoryBlockCount, timeCost uint32, addressing Addressing) *addressGenerator {
	g := &addressGenerator{}
	g.input[0] = uint64(pass)
	g.input[1] = uint64(lane)
	g.input[2] = uint64(slice)
	g.input[3] = uint64(memoryBlockCount)
	g.input[4] = uint64(timeCost)
	g.input[5] = uint64(addressing)
	// g.input[6] is the block counter, incremented lazily before first use.
	return g
}

// next returns the pseudo-random word for the i-th block of the segment
// (i is the 0-based, ever-increasing position within the segment; the
// address block is generated on the first call, even when that call starts
// past index 0, and refreshed whenever i reaches a multiple of 128).
func (g *addressGenerator) next(i int) uint64 {
	if i%blockLength == 0 || g.input[6] == 0 {
		g.input[6]++
		compress(&g.zero, &g.input, &g.addresses, false)
		compress(&g.zero, &g.addresses, &g.addresses, false)
	}
	return g.addresses[i%blockLength]
}
