// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argon2hard

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/crypto/blake2b"
)

// rfcVector mirrors the RFC 9106 §5.1/§5.2 test parameters.
func rfcVector(t *testing.T, addressing Addressing, hashLength uint32) []byte {
	t.Helper()

	secret := bytes.Repeat([]byte{0x03}, 8)
	salt := bytes.Repeat([]byte{0x02}, 16)
	ad := bytes.Repeat([]byte{0x04}, 12)
	message := bytes.Repeat([]byte{0x01}, 32)

	e, err := New(secret, salt, ad)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer e.Dispose()

	if err := e.UpdateBlock(message, 0, len(message)); err != nil {
		t.Fatalf("UpdateBlock: %v", err)
	}

	e.SetConfig(Config{
		Addressing: addressing,
		HashLength: hashLength,
		MemoryCost: 32,
		TimeCost:   3,
		Lanes:      4,
		Threads:    1,
	})

	out := make([]byte, hashLength)
	if err := e.Finalize(out, 0); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	return out
}

// S1: RFC 9106 §5.1 Argon2d test vector.
func TestRFCVectorArgon2d(t *testing.T) {
	got := rfcVector(t, Argon2d, 32)
	want, _ := hex.DecodeString("512b391b6f1162975371d30919734294f868e3be3984f3c1a13a4db9fabe4acb")
	if !bytes.Equal(got, want) {
		t.Fatalf("Argon2d tag = %x, want %x", got, want)
	}
}

// S2: RFC 9106 §5.2 Argon2i test vector.
func TestRFCVectorArgon2i(t *testing.T) {
	got := rfcVector(t, Argon2i, 32)
	want, _ := hex.DecodeString("c814d9d1dc7f37aa13f0d77f2494bda1c8de6b016dd388d29952a4c4672b6ce8")
	if !bytes.Equal(got, want) {
		t.Fatalf("Argon2i tag = %x, want %x", got, want)
	}
}

// S3: thread count must not change the tag.
func TestThreadInvariance(t *testing.T) {
	secret := bytes.Repeat([]byte{0x03}, 8)
	salt := bytes.Repeat([]byte{0x02}, 16)
	ad := bytes.Repeat([]byte{0x04}, 12)
	message := bytes.Repeat([]byte{0x01}, 32)

	run := func(threads uint32) []byte {
		e, err := New(secret, salt, ad)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		defer e.Dispose()
		if err := e.UpdateBlock(message, 0, len(message)); err != nil {
			t.Fatalf("UpdateBlock: %v", err)
		}
		e.SetConfig(Config{
			Addressing: Argon2d,
			HashLength: 32,
			MemoryCost: 32,
			TimeCost:   3,
			Lanes:      4,
			Threads:    threads,
		})
		out := make([]byte, 32)
		if err := e.Finalize(out, 0); err != nil {
			t.Fatalf("Finalize: %v", err)
		}
		return out
	}

	want := run(1)
	for _, threads := range []uint32{2, 3, 4} {
		got := run(threads)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("threads=%d tag differs from threads=1 (-want +got):\n%s", threads, diff)
		}
	}
}

// S4: memoryCost below the 2*syncPoints*lanes floor normalizes to the floor.
func TestMemoryNormalization(t *testing.T) {
	secret := bytes.Repeat([]byte{0x03}, 8)
	salt := bytes.Repeat([]byte{0x02}, 16)
	ad := bytes.Repeat([]byte{0x04}, 12)
	message := bytes.Repeat([]byte{0x01}, 32)

	run := func(memoryCost uint32) []byte {
		e, err := New(secret, salt, ad)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		defer e.Dispose()
		if err := e.UpdateBlock(message, 0, len(message)); err != nil {
			t.Fatalf("UpdateBlock: %v", err)
		}
		e.SetConfig(Config{
			Addressing: Argon2d,
			HashLength: 32,
			MemoryCost: memoryCost,
			TimeCost:   3,
			Lanes:      4,
			Threads:    1,
		})
		out := make([]byte, 32)
		if err := e.Finalize(out, 0); err != nil {
			t.Fatalf("Finalize: %v", err)
		}
		return out
	}

	want := run(32)
	got := run(1)
	if !bytes.Equal(got, want) {
		t.Fatalf("memoryCost=1 tag = %x, want %x (same as memoryCost=32)", got, want)
	}
}

// S6: with no Update calls, nil associated data and empty associated data
// both encode as a zero-length field (only its u32(0) length prefix), so
// they must produce the same tag.
func TestEmptyMessageAndAD(t *testing.T) {
	secret := bytes.Repeat([]byte{0x03}, 8)
	salt := bytes.Repeat([]byte{0x02}, 16)

	e, err := New(secret, salt, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer e.Dispose()

	e.SetConfig(Config{
		Addressing: Argon2i,
		HashLength: 32,
		MemoryCost: 32,
		TimeCost:   3,
		Lanes:      4,
		Threads:    1,
	})

	out := make([]byte, 32)
	if err := e.Finalize(out, 0); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	// Re-running with ad explicitly set to an empty, non-nil slice must
	// produce the same tag: nil and empty both encode as length 0.
	e2, _ := New(secret, salt, []byte{})
	defer e2.Dispose()
	e2.SetConfig(e.cfg)
	out2 := make([]byte, 32)
	if err := e2.Finalize(out2, 0); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	if !bytes.Equal(out, out2) {
		t.Fatalf("nil ad and empty ad produced different tags: %x vs %x", out, out2)
	}
}

// P1: determinism across independent runs with identical inputs.
func TestDeterminism(t *testing.T) {
	a := rfcVector(t, Argon2d, 32)
	b := rfcVector(t, Argon2d, 32)
	if !bytes.Equal(a, b) {
		t.Fatalf("two identical runs produced different tags")
	}
}

// P2: flipping a single bit of the secret changes the tag (smoke test, not
// a cryptographic proof).
func TestParameterSensitivity(t *testing.T) {
	base := bytes.Repeat([]byte{0x03}, 8)
	salt := bytes.Repeat([]byte{0x02}, 16)

	baseline := func(secret []byte) []byte {
		e, err := New(secret, salt, nil)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		defer e.Dispose()
		e.SetConfig(Config{Addressing: Argon2d, HashLength: 32, MemoryCost: 32, TimeCost: 3, Lanes: 4, Threads: 1})
		out := make([]byte, 32)
		if err := e.Finalize(out, 0); err != nil {
			t.Fatalf("Finalize: %v", err)
		}
		return out
	}

	want := baseline(base)

	flipped := append([]byte(nil), base...)
	flipped[0] ^= 0x01
	got := baseline(flipped)

	if bytes.Equal(want, got) {
		t.Fatalf("flipping a secret bit did not change the tag")
	}
}

// P6: Finalize writes exactly hashLength bytes and does not touch bytes
// beyond the requested window.
func TestOutputLengthLaw(t *testing.T) {
	secret := bytes.Repeat([]byte{0x03}, 8)
	salt := bytes.Repeat([]byte{0x02}, 16)

	e, err := New(secret, salt, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer e.Dispose()
	e.SetConfig(Config{Addressing: Argon2i, HashLength: 20, MemoryCost: 32, TimeCost: 3, Lanes: 4, Threads: 1})

	out := bytes.Repeat([]byte{0xAA}, 64)
	sentinel := append([]byte(nil), out[5+20:]...)

	if err := e.Finalize(out, 5); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	if !bytes.Equal(out[5+20:], sentinel) {
		t.Fatalf("Finalize wrote past the requested hashLength window")
	}
	if bytes.Equal(out[5:5+20], bytes.Repeat([]byte{0xAA}, 20)) {
		t.Fatalf("Finalize did not write into the requested window")
	}
}

// S5: for outLen > 64, hPrime's first chain link is the plain BLAKE2b-512
// digest of u32le(outLen) || input, and only its first 32 bytes are
// emitted into the output.
func TestLongOutputFirstChunk(t *testing.T) {
	const outLen = 112
	input := bytes.Repeat([]byte{0x01}, 72)

	out := hPrime(input, outLen)
	if len(out) != outLen {
		t.Fatalf("len(hPrime(...)) = %d, want %d", len(out), outLen)
	}

	var lenPrefix [4]byte
	binary.LittleEndian.PutUint32(lenPrefix[:], uint32(outLen))
	want := blake2b.Sum512(append(append([]byte(nil), lenPrefix[:]...), input...))

	if !bytes.Equal(out[:32], want[:32]) {
		t.Fatalf("hPrime first chunk = %x, want %x", out[:32], want[:32])
	}
}

// Disposing an engine must zero its secret buffer.
func TestDisposeZeroesSecret(t *testing.T) {
	secret := bytes.Repeat([]byte{0x42}, 16)
	salt := bytes.Repeat([]byte{0x02}, 16)

	e, err := New(secret, salt, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// Snapshot the backing array before Dispose: Release zeroes it in place
	// and then forgets it (sets the Buffer's slice to nil), so reading
	// e.secret.Bytes() after Dispose would always see nil.
	shared := e.secret.Bytes()
	e.Dispose()

	for i, v := range shared {
		if v != 0 {
			t.Fatalf("byte %d of secret buffer not zeroed after Dispose: %#x", i, v)
		}
	}
}

// P5: after Dispose, the arena's backing blocks are all zero.
func TestDisposeZeroesArena(t *testing.T) {
	e, err := New(bytes.Repeat([]byte{0x07}, 8), bytes.Repeat([]byte{0x02}, 16), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e.SetConfig(Config{Addressing: Argon2d, HashLength: 32, MemoryCost: 32, TimeCost: 1, Lanes: 4, Threads: 1})

	out := make([]byte, 32)
	if err := e.Finalize(out, 0); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	shared := e.mem
	if len(shared) == 0 {
		t.Fatalf("arena is empty after Finalize")
	}
	e.Dispose()

	var zero block
	for i := range shared {
		if shared[i] != zero {
			t.Fatalf("block %d of arena not zeroed after Dispose", i)
		}
	}
}

func TestUpdateAfterDisposeFails(t *testing.T) {
	e, err := New([]byte("s"), bytes.Repeat([]byte{0}, 8), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e.Dispose()
	if err := e.Update('x'); err == nil {
		t.Fatalf("Update after Dispose should fail")
	}
}

func TestConstructValidation(t *testing.T) {
	if _, err := New(nil, bytes.Repeat([]byte{0}, 8), nil); err == nil {
		t.Fatalf("New with nil secret should fail")
	}
	if _, err := New([]byte("s"), nil, nil); err == nil {
		t.Fatalf("New with nil salt should fail")
	}
	if _, err := New([]byte("s"), []byte("short"), nil); err == nil {
		t.Fatalf("New with short salt should fail")
	}
}
