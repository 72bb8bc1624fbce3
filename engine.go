// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argon2hard

import (
	"fmt"

	"github.com/vaultkit/argon2hard/internal/secretmem"
)

// Config holds the cost parameters an Engine runs with. The zero value is
// not usable directly — construct one with DefaultConfig and adjust the
// fields that matter, the way most of this package's callers will.
type Config struct {
	// Addressing selects Argon2d or Argon2i. Argon2id is not implemented.
	Addressing Addressing
	// HashLength is the tag length in bytes; must be >= 4.
	HashLength uint32
	// MemoryCost is the requested memory size in KiB. It is silently
	// raised to 2*4*Lanes if lower.
	MemoryCost uint32
	// TimeCost is the number of passes over memory.
	TimeCost uint32
	// Lanes is the degree of parallelism baked into the derivation itself
	// (changes the output). Must be > 0.
	Lanes uint32
	// Threads bounds how many lanes are processed concurrently; it does
	// not change the output — thread count is not part of the tag.
	// Must be > 0.
	Threads uint32
}

// DefaultConfig returns conservative, RFC-9106-aligned parameters: Argon2i,
// a 32-byte tag, 64 MiB of memory, 3 passes, 4 lanes run on up to 4
// goroutines.
func DefaultConfig() Config {
	return Config{
		Addressing: Argon2i,
		HashLength: 32,
		MemoryCost: 64 * 1024,
		TimeCost:   3,
		Lanes:      4,
		Threads:    4,
	}
}

// engineState tracks the Engine lifecycle:
// Configured -> Updating -> Finalized -> Disposed.
type engineState int

const (
	stateConfigured engineState = iota
	stateUpdating
	stateFinalized
	stateDisposed
)

// Engine is the stateful facade over the fill pipeline: it owns the
// configuration, the secret/salt/associated-data/message buffers, and the
// memory arena, and exposes the update/finalize/dispose lifecycle.
//
// An Engine is not safe for concurrent use by multiple goroutines.
type Engine struct {
	cfg Config

	secret *secretmem.Buffer
	salt   []byte
	ad     []byte

	message []byte
	mem     arena

	state engineState
}

// New constructs an Engine in the Configured state, taking ownership of
// secret (copied into a pinned, zero-on-dispose buffer) and mirroring salt
// and ad. secret and salt must be non-nil; salt must be at least 8 bytes.
// ad may be nil or empty. The returned Engine starts with DefaultConfig;
// adjust cfg.Addressing/HashLength/MemoryCost/TimeCost/Lanes/Threads before
// calling Finalize.
func New(secret, salt, ad []byte) (*Engine, error) {
	if secret == nil {
		return nil, fmt.Errorf("%w: secret must not be nil", ErrInvalidArgument)
	}
	if salt == nil {
		return nil, fmt.Errorf("%w: salt must not be nil", ErrInvalidArgument)
	}
	if len(salt) < minSaltLength {
		return nil, fmt.Errorf("%w: salt must be at least %d bytes, got %d", ErrInvalidArgument, minSaltLength, len(salt))
	}

	secretBuf := secretmem.Acquire(len(secret))
	copy(secretBuf.Bytes(), secret)

	e := &Engine{
		cfg:    DefaultConfig(),
		secret: secretBuf,
		salt:   append([]byte(nil), salt...),
		state:  stateConfigured,
	}
	if ad != nil {
		e.ad = append([]byte(nil), ad...)
	}
	return e, nil
}

// Config returns the engine's current cost parameters.
func (e *Engine) Config() Config { return e.cfg }

// SetConfig replaces the engine's cost parameters. Values are not validated
// until Finalize.
func (e *Engine) SetConfig(cfg Config) { e.cfg = cfg }

// Update appends a single byte to the message accumulator.
func (e *Engine) Update(b byte) error {
	if e.state == stateDisposed {
		return fmt.Errorf("%w: engine has been disposed", ErrState)
	}
	e.message = append(e.message, b)
	e.state = stateUpdating
	return nil
}

// UpdateBlock appends buf[off:off+length] to the message accumulator.
func (e *Engine) UpdateBlock(buf []byte, off, length int) error {
	if e.state == stateDisposed {
		return fmt.Errorf("%w: engine has been disposed", ErrState)
	}
	if off < 0 || length < 0 || off+length > len(buf) {
		return fmt.Errorf("%w: slice [%d:%d+%d] out of range for buffer of length %d", ErrOutOfRange, off, off, length, len(buf))
	}
	e.message = append(e.message, buf[off:off+length]...)
	e.state = stateUpdating
	return nil
}

// Finalize validates the engine's configuration, runs the full fill
// pipeline (pre-hash, memory fill, tag extraction), and writes
// cfg.HashLength bytes into out[off:off+cfg.HashLength]. The message
// accumulator is cleared
// afterwards; the secret, salt, associated-data and configuration persist
// and Finalize may be called again, each time against a freshly allocated
// arena.
func (e *Engine) Finalize(out []byte, off int) error {
	if e.state == stateDisposed {
		return fmt.Errorf("%w: engine has been disposed", ErrState)
	}
	if out == nil {
		return fmt.Errorf("%w: output buffer must not be nil", ErrInvalidArgument)
	}
	if err := validate(e.cfg, e.secret.Bytes(), e.salt); err != nil {
		return err
	}
	if off < 0 || off+int(e.cfg.HashLength) > len(out) {
		return fmt.Errorf("%w: output slice [%d:%d+%d] out of range for buffer of length %d", ErrOutOfRange, off, off, e.cfg.HashLength, len(out))
	}

	resolved := resolveParams(e.cfg)

	e.disposeArena()
	e.mem = make(arena, resolved.memoryBlockCount)

	h0 := computeH0(resolved, preHashInputs{
		secret:  e.secret.Bytes(),
		salt:    e.salt,
		ad:      e.ad,
		message: e.message,
	})
	seedFirstBlocks(e.mem, resolved, h0)
	runPasses(e.mem, resolved)
	tag := extractTag(e.mem, resolved)

	copy(out[off:], tag)
	clearBytes(e.message)
	e.message = e.message[:0]
	e.state = stateFinalized
	return nil
}

// Reset clears the message accumulator and disposes the arena, keeping the
// secret, salt, associated data and configuration intact.
func (e *Engine) Reset() {
	clearBytes(e.message)
	e.message = e.message[:0]
	e.disposeArena()
	if e.state != stateDisposed {
		e.state = stateConfigured
	}
}

// Dispose zeroes and releases the arena, the secret buffer and the
// associated-data mirror, and the message accumulator. An Engine must not
// be used after Dispose.
func (e *Engine) Dispose() {
	e.disposeArena()
	e.secret.Release()
	clearBytes(e.salt)
	clearBytes(e.ad)
	clearBytes(e.message)
	e.salt = nil
	e.ad = nil
	e.message = nil
	e.state = stateDisposed
}

func (e *Engine) disposeArena() {
	for i := range e.mem {
		e.mem[i].zero()
	}
	e.mem = nil
}

func clearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// resolveParams normalizes a Config into the derived sizes the fill
// pipeline operates on: memoryCost is raised to 2*syncPoints*lanes if
// lower, then segmentLength and laneLength fall out of integer division.
func resolveParams(cfg Config) resolvedParams {
	memoryCost := cfg.MemoryCost
	floor := 2 * syncPoints * cfg.Lanes
	if memoryCost < floor {
		memoryCost = floor
	}

	segmentLength := memoryCost / (cfg.Lanes * syncPoints)
	laneLength := segmentLength * syncPoints

	return resolvedParams{
		addressing:       cfg.Addressing,
		hashLength:       cfg.HashLength,
		lanes:            cfg.Lanes,
		threads:          cfg.Threads,
		timeCost:         cfg.TimeCost,
		segmentLength:    segmentLength,
		laneLength:       laneLength,
		memoryBlockCount: laneLength * cfg.Lanes,
	}
}
