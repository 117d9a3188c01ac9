package madvise

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// madvise invokes the syscall directly so the address reaches the kernel
// unchanged even for zero-length ranges; the unix.Madvise wrapper
// substitutes its own base pointer for empty slices.
func madvise(addr unsafe.Pointer, length uintptr, advice AccessPattern) error {
	_, _, errno := unix.Syscall(unix.SYS_MADVISE, uintptr(addr), length, uintptr(advice))
	if errno != 0 {
		return os.NewSyscallError("madvise", errno)
	}
	return nil
}
