// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argon2hard

// syncPoints is the number of segments (and the number of reads barriers)
// within one pass over the memory matrix.
const syncPoints = 4

// arena is the flat memory matrix B, logically laneLength*lanes blocks
// indexed as block lane*laneLength+offset.
type arena []block

// fillSegment fills one (pass, lane, slice) segment in place, sweeping its
// segmentLength blocks and, for each, picking a reference block via the
// indexer and folding it and the previous block together with compress.
//
// Reads outside the current segment are the only cross-lane memory access
// this function performs, and the pass orchestrator guarantees they only
// ever land in slices that have already finished.
func fillSegment(mem arena, cfg resolvedParams, pass, lane, slice uint32) {
	var gen *addressGenerator
	if cfg.addressing == Argon2i {
		gen = newAddressGenerator(pass, lane, slice, cfg.memoryBlockCount, cfg.timeCost, cfg.addressing)
	}

	startingIndex := uint32(0)
	if pass == 0 && slice == 0 {
		startingIndex = 2
	}

	laneLength := cfg.laneLength
	segmentLength := cfg.segmentLength

	cur := lane*laneLength + slice*segmentLength + startingIndex
	var prev uint32
	if cur%laneLength == 0 {
		prev = cur + laneLength - 1
	} else {
		prev = cur - 1
	}

	for i := startingIndex; i < segmentLength; i++ {
		if cur%laneLength == 1 {
			prev = cur - 1
		}

		var pseudoRand uint64
		if cfg.addressing == Argon2i {
			pseudoRand = gen.next(int(i))
		} else {
			pseudoRand = mem[prev][0]
		}

		j1 := uint32(pseudoRand)
		j2 := uint32(pseudoRand >> 32)

		var refLane uint32
		if pass == 0 && slice == 0 {
			refLane = lane
		} else {
			refLane = j2 % cfg.lanes
		}
		sameLane := refLane == lane

		pos := position{pass: pass, lane: lane, slice: slice, index: i}
		refIndex := indexAlpha(pos, j1, sameLane, segmentLength, laneLength, syncPoints)

		refOffset := refLane*laneLength + refIndex
		compress(&mem[prev], &mem[refOffset], &mem[cur], pass != 0)

		cur++
		prev++
	}
}
