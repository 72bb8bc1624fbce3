// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argon2hard_test

import (
	"encoding/hex"
	"fmt"

	"github.com/vaultkit/argon2hard"
)

func ExampleEngine() {
	secret := []byte("correct horse battery staple")
	salt := []byte("some long enough salt")

	e, err := argon2hard.New(secret, salt, nil)
	if err != nil {
		panic(err)
	}
	defer e.Dispose()

	cfg := argon2hard.DefaultConfig()
	cfg.Addressing = argon2hard.Argon2i
	cfg.MemoryCost = 64 * 1024
	cfg.TimeCost = 2
	cfg.Lanes = 2
	cfg.Threads = 2
	e.SetConfig(cfg)

	tag := make([]byte, cfg.HashLength)
	if err := e.Finalize(tag, 0); err != nil {
		panic(err)
	}

	fmt.Println(len(hex.EncodeToString(tag)))
	// Output:
	// 64
}
