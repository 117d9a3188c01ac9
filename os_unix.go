//go:build darwin || dragonfly || freebsd || netbsd || openbsd || solaris

package madvise

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

func madvise(addr unsafe.Pointer, length uintptr, advice AccessPattern) error {
	b := unsafe.Slice((*byte)(addr), length)
	if err := unix.Madvise(b, int(advice)); err != nil {
		return os.NewSyscallError("madvise", err)
	}
	return nil
}
