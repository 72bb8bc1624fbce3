// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argon2hard

// position locates one block within the (pass, lane, slice, index) space of
// the memory matrix. index is local to the segment (0 <= index < segmentLength).
type position struct {
	pass  uint32
	lane  uint32
	slice uint32
	index uint32
}

// indexAlpha maps a position plus the low 32 bits of a pseudo-random word
// (j1) to an absolute block offset within the referenced lane, following
// Argon2's quadratic windowing rule (RFC 9106 §3.4): the reference area size
// W depends on how much of the lane has been written so far, and the
// pseudo-random value is mapped onto it with a bias toward recent blocks.
func indexAlpha(pos position, j1 uint32, sameLane bool, segmentLength, laneLength, syncPoints uint32) uint32 {
	var windowSize uint32

	switch {
	case pos.pass == 0 && pos.slice == 0:
		windowSize = pos.index - 1

	case pos.pass == 0:
		if sameLane {
			windowSize = pos.slice*segmentLength + pos.index - 1
		} else if pos.index == 0 {
			windowSize = pos.slice*segmentLength - 1
		} else {
			windowSize = pos.slice * segmentLength
		}

	default:
		if sameLane {
			windowSize = laneLength - segmentLength + pos.index - 1
		} else if pos.index == 0 {
			windowSize = laneLength - segmentLength - 1
		} else {
			windowSize = laneLength - segmentLength
		}
	}

	x := (uint64(j1) * uint64(j1)) >> 32
	y := (uint64(windowSize) * x) >> 32
	rel := uint64(windowSize) - 1 - y

	var start uint32
	if pos.pass != 0 {
		if pos.slice != syncPoints-1 {
			start = (pos.slice + 1) * segmentLength
		}
	}

	return uint32((uint64(start) + rel) % uint64(laneLength))
}
