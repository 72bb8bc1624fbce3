// Package secretmem provides a pinned, zero-on-release byte buffer for
// holding key material outside the garbage-collected heap's normal
// lifetime guarantees.
//
// A Buffer is acquired with a fixed capacity, written to directly through
// Bytes, and wiped with Release. Pinning (best-effort mlock on platforms
// that support it) keeps the pages out of swap; it is not a substitute for
// zeroing, which is unconditional.
package secretmem

import "sync"

// Buffer is a byte slice that is pinned in memory (where the platform
// supports it) and guaranteed to be zeroed before its backing array is
// released.
type Buffer struct {
	mu       sync.Mutex
	data     []byte
	pinned   bool
	released bool
}

// Acquire allocates a Buffer of exactly n bytes and attempts to pin it.
// Pinning failures are not reported: a buffer that could not be pinned is
// still safe to use, just not guaranteed to stay out of swap.
func Acquire(n int) *Buffer {
	b := &Buffer{data: make([]byte, n)}
	if n > 0 {
		b.pinned = lock(b.data)
	}
	return b
}

// Bytes returns the buffer's backing slice for the caller to read or write
// directly. The returned slice is only valid until Release.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data
}

// Pinned reports whether the OS successfully locked this buffer's pages.
func (b *Buffer) Pinned() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pinned
}

// Release zeroes the buffer's contents, unpins it, and detaches the backing
// array so a subsequent Bytes call returns nil. Release is safe to call
// more than once.
func (b *Buffer) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.released {
		return
	}
	for i := range b.data {
		b.data[i] = 0
	}
	if b.pinned {
		unlock(b.data)
		b.pinned = false
	}
	b.data = nil
	b.released = true
}
