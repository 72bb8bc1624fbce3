// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argon2hard

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Callers should test against these with errors.Is,
// not against the wrapped message.
var (
	// ErrInvalidArgument covers a nil/too-short input that the caller
	// supplied directly: missing secret, missing salt, salt shorter than
	// 8 bytes, nil output buffer.
	ErrInvalidArgument = errors.New("argon2hard: invalid argument")

	// ErrOutOfRange covers an offset or length outside a caller buffer, or
	// a non-positive/undersized cost parameter.
	ErrOutOfRange = errors.New("argon2hard: out of range")

	// ErrState covers use of an Engine after Dispose.
	ErrState = errors.New("argon2hard: invalid state")
)

const minSaltLength = 8
const minHashLength = 4

// validate checks a Config plus the secret/salt pair and returns the first
// violation it finds, wrapped with the offending field name.
func validate(cfg Config, secret, salt []byte) error {
	if secret == nil {
		return fmt.Errorf("%w: secret must not be nil", ErrInvalidArgument)
	}
	if salt == nil {
		return fmt.Errorf("%w: salt must not be nil", ErrInvalidArgument)
	}
	if len(salt) < minSaltLength {
		return fmt.Errorf("%w: salt must be at least %d bytes, got %d", ErrInvalidArgument, minSaltLength, len(salt))
	}
	if cfg.Lanes == 0 {
		return fmt.Errorf("%w: lanes must be > 0", ErrOutOfRange)
	}
	if cfg.Threads == 0 {
		return fmt.Errorf("%w: threads must be > 0", ErrOutOfRange)
	}
	if cfg.TimeCost == 0 {
		return fmt.Errorf("%w: timeCost must be > 0", ErrOutOfRange)
	}
	if cfg.MemoryCost == 0 {
		return fmt.Errorf("%w: memoryCost must be > 0", ErrOutOfRange)
	}
	if cfg.HashLength < minHashLength {
		return fmt.Errorf("%w: hashLength must be >= %d, got %d", ErrOutOfRange, minHashLength, cfg.HashLength)
	}
	return nil
}
