// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argon2hard

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// version is the Argon2 version byte this package implements (RFC 9106
// calls it 0x13, version 1.3 — the only version the RFC test vectors exist
// for).
const version = 0x13

// preHashInputs bundles the byte-string inputs that feed H0, so computeH0's
// signature doesn't grow every time a new optional field is added.
type preHashInputs struct {
	secret  []byte
	salt    []byte
	ad      []byte
	message []byte
}

// computeH0 builds the 64-byte Argon2 pre-hash from the cost parameters and
// the four optional input buffers. A missing buffer still contributes its
// (zero) length field — H0 never depends on whether an input was nil or
// simply empty.
func computeH0(cfg resolvedParams, in preHashInputs) [64]byte {
	h, err := blake2b.New512(nil)
	if err != nil {
		panic("argon2hard: blake2b-512 unavailable: " + err.Error())
	}

	var u32 [4]byte
	putU32 := func(v uint32) {
		binary.LittleEndian.PutUint32(u32[:], v)
		h.Write(u32[:])
	}
	putField := func(b []byte) {
		putU32(uint32(len(b)))
		if len(b) > 0 {
			h.Write(b)
		}
	}

	putU32(cfg.lanes)
	putU32(cfg.hashLength)
	putU32(memoryCostKiB(cfg))
	putU32(cfg.timeCost)
	putU32(version)
	putU32(uint32(cfg.addressing))

	putField(in.message)
	putField(in.salt)
	putField(in.secret)
	putField(in.ad)

	var out [64]byte
	h.Sum(out[:0])
	return out
}

// memoryCostKiB recovers the (already-normalized) memory cost in KiB from
// the resolved block counts, since the pre-hash encodes memoryCost, not
// memoryBlockCount/laneLength directly.
func memoryCostKiB(cfg resolvedParams) uint32 {
	return cfg.laneLength * cfg.lanes
}

// hPrime is Argon2's variable-length hash H': for outLen<=64
// it is a single BLAKE2b call with that digest size; for longer outputs it
// chains 64-byte BLAKE2b digests, emitting the first 32 bytes of each link
// except the last, which is emitted in full at whatever size (33..64 bytes)
// lands the total exactly on outLen.
func hPrime(input []byte, outLen int) []byte {
	var lenPrefix [4]byte
	binary.LittleEndian.PutUint32(lenPrefix[:], uint32(outLen))

	if outLen <= 64 {
		h := newBlake2bHash(outLen * 8)
		h.update(lenPrefix[:])
		h.update(input)
		return h.finalize(make([]byte, 0, outLen))
	}

	out := make([]byte, outLen)

	h64 := newBlake2bHash(512)
	h64.update(lenPrefix[:])
	h64.update(input)
	v := h64.finalize(make([]byte, 0, 64))

	copied := copy(out, v[:32])

	for outLen-copied > 64 {
		h64.reset()
		h64.update(v)
		v = h64.finalize(v[:0])
		copied += copy(out[copied:], v[:32])
	}

	remaining := outLen - copied
	last := newBlake2bHash(remaining * 8)
	last.update(v)
	finalChunk := last.finalize(make([]byte, 0, remaining))
	copy(out[copied:], finalChunk)

	return out
}

// seedFirstBlocks fills B[lane][0] and B[lane][1] for every lane from H0:
// each is a 1024-byte H' expansion of H0 || u32(blockIndex) || u32(lane).
func seedFirstBlocks(mem arena, cfg resolvedParams, h0 [64]byte) {
	var seed [72]byte
	copy(seed[:64], h0[:])

	for lane := uint32(0); lane < cfg.lanes; lane++ {
		binary.LittleEndian.PutUint32(seed[68:], lane)

		binary.LittleEndian.PutUint32(seed[64:], 0)
		b0 := hPrime(seed[:], blockSize)
		mem[lane*cfg.laneLength+0].loadLE(b0)

		binary.LittleEndian.PutUint32(seed[64:], 1)
		b1 := hPrime(seed[:], blockSize)
		mem[lane*cfg.laneLength+1].loadLE(b1)
	}
}
