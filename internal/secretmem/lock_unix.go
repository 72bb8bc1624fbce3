//go:build linux || darwin || freebsd || openbsd || netbsd

package secretmem

import "golang.org/x/sys/unix"

// lock pins data's pages with mlock so they are never swapped out. It
// returns false (not an error) if the OS refuses — callers fall back to an
// unpinned buffer, since pinning is an optional hardening layer, not a
// correctness requirement.
func lock(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	return unix.Mlock(data) == nil
}

func unlock(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Munlock(data)
}
