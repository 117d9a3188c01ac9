//go:build !(darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package madvise

import "unsafe"

// madvise is compiled into a no-op on platforms without a memory-advisory
// facility (Windows has no madvise equivalent).
func madvise(addr unsafe.Pointer, length uintptr, advice AccessPattern) error {
	_ = addr
	_ = length
	_ = advice
	return nil
}
