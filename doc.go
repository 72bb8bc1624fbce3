// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argon2hard implements the Argon2 memory-hard function defined in
// RFC 9106, in its Argon2d (data-dependent addressing) and Argon2i
// (data-independent addressing) variants.
//
// The package is built in two layers: a set of unexported functions that run
// the memory-filling pipeline over an arena passed in by their caller
// (block.go, compress.go, address.go, index.go, segment.go, orchestrator.go,
// prehash.go, finalize.go), and the exported, stateful Engine (engine.go)
// that owns that arena plus the secret, salt, associated-data and message
// buffers and exposes the construct/update/finalize/dispose lifecycle. Only
// the Engine layer (with Config and Addressing) is part of the public API.
//
// Argon2id, the $argon2...$ encoded string format, constant-time secret
// comparison, parameter autotuning and streaming tag output are not
// implemented by this package.
package argon2hard
