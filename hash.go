// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argon2hard

import (
	"hash"

	"golang.org/x/crypto/blake2b"
)

// blake2bHash adapts golang.org/x/crypto/blake2b's hash.Hash to a small
// streaming update/finalize/reset contract, with output length expressed
// in bits (1..512). This package only ever asks for byte-aligned lengths,
// so the bits-to-bytes mapping below never truncates.
type blake2bHash struct {
	h          hash.Hash
	outputBits int
}

// newBlake2bHash constructs a BLAKE2b instance producing outputBits bits of
// digest (must be a multiple of 8, between 8 and 512 inclusive).
func newBlake2bHash(outputBits int) *blake2bHash {
	h, err := blake2b.New(outputBits/8, nil)
	if err != nil {
		// outputBits is always derived from this package's own constants and
		// call sites, never from caller input, so a construction failure here
		// is a programming error, not a reportable condition.
		panic("argon2hard: invalid blake2b output size: " + err.Error())
	}
	return &blake2bHash{h: h, outputBits: outputBits}
}

func (b *blake2bHash) update(p []byte) {
	b.h.Write(p)
}

// finalize writes the digest into out[:outputBits/8] and returns it.
func (b *blake2bHash) finalize(out []byte) []byte {
	return b.h.Sum(out[:0])
}

func (b *blake2bHash) reset() {
	b.h.Reset()
}
