// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argon2hard

// extractTag XORs the last block of every lane into an accumulator and
// stretches the serialized result to hashLength bytes via H'.
func extractTag(mem arena, cfg resolvedParams) []byte {
	acc := mem[cfg.laneLength-1]
	for lane := uint32(1); lane < cfg.lanes; lane++ {
		acc.xor(&mem[lane*cfg.laneLength+cfg.laneLength-1])
	}

	serialized := make([]byte, blockSize)
	acc.storeLE(serialized)

	return hPrime(serialized, int(cfg.hashLength))
}
