// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argon2hard

import "encoding/binary"

// blockLength is the number of uint64 words in an Argon2 block (128 words =
// 1024 bytes).
const blockLength = 128

// blockSize is the byte size of a block.
const blockSize = blockLength * 8

// block is the atomic 1024-byte read/write unit of the Argon2 memory matrix,
// held as 128 little-endian uint64 words rather than raw bytes since every
// operation on it (xor, the BLaMka mix, the final accumulator) works
// word-at-a-time.
type block [blockLength]uint64

// zero clears b to the all-zero block.
func (b *block) zero() {
	for i := range b {
		b[i] = 0
	}
}

// set copies src into b.
func (b *block) set(src *block) {
	*b = *src
}

// xor updates b in place to b ^= other.
func (b *block) xor(other *block) {
	for i := range b {
		b[i] ^= other[i]
	}
}

// xorOf sets b = left ^ right, leaving left and right untouched.
func (b *block) xorOf(left, right *block) {
	for i := range b {
		b[i] = left[i] ^ right[i]
	}
}

// loadLE decodes 1024 little-endian bytes into b.
func (b *block) loadLE(data []byte) {
	for i := range b {
		b[i] = binary.LittleEndian.Uint64(data[i*8:])
	}
}

// storeLE encodes b as 1024 little-endian bytes into data, which must be at
// least blockSize long.
func (b *block) storeLE(data []byte) {
	for i, v := range b {
		binary.LittleEndian.PutUint64(data[i*8:], v)
	}
}
