// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argon2hard

import "sync"

// Addressing selects how a lane's reference blocks are chosen while filling
// memory. It is also the wire value written into the pre-hash: 0 for
// Argon2d, 1 for Argon2i.
type Addressing uint32

const (
	// Argon2d uses data-dependent addressing: the reference block is chosen
	// from the content of the previous block, which is fast but makes the
	// access pattern observable to anyone who can watch memory addresses.
	Argon2d Addressing = 0
	// Argon2i uses data-independent addressing: the reference block is
	// chosen from a pseudo-random stream that depends only on the
	// position being filled, not on any data, trading some resistance to
	// brute-force trade-off attacks for immunity to cache-timing side
	// channels.
	Argon2i Addressing = 1
)

// resolvedParams is the normalized, validated form of a Config: every
// derived size (segmentLength, laneLength, memoryBlockCount) has already
// been computed once, so the fill pipeline never recomputes them.
type resolvedParams struct {
	addressing       Addressing
	hashLength       uint32
	lanes            uint32
	threads          uint32
	timeCost         uint32
	segmentLength    uint32
	laneLength       uint32
	memoryBlockCount uint32
}

// runPasses executes timeCost passes of syncPoints slices each, dispatching
// the per-lane segment fills for a slice across up to min(threads, lanes)
// workers and joining before the next slice starts. The join is the barrier
// that bounds every cross-lane read performed during a slice to blocks
// written by some earlier, now-complete slice.
func runPasses(mem arena, cfg resolvedParams) {
	workers := cfg.threads
	if workers > cfg.lanes {
		workers = cfg.lanes
	}

	for pass := uint32(0); pass < cfg.timeCost; pass++ {
		for slice := uint32(0); slice < syncPoints; slice++ {
			if workers <= 1 {
				for lane := uint32(0); lane < cfg.lanes; lane++ {
					fillSegment(mem, cfg, pass, lane, slice)
				}
				continue
			}

			lanes := make(chan uint32)
			var wg sync.WaitGroup
			for w := uint32(0); w < workers; w++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for lane := range lanes {
						fillSegment(mem, cfg, pass, lane, slice)
					}
				}()
			}
			for lane := uint32(0); lane < cfg.lanes; lane++ {
				lanes <- lane
			}
			close(lanes)
			wg.Wait()
		}
	}
}
