package madvise

import "unsafe"

// AccessPattern hints to the kernel how a range of memory will be accessed.
//
// On unix-like targets each value is the platform's madvise advice code.
// Values are comparable and usable as map keys.
type AccessPattern int

// Advise hints the kernel about the expected access pattern for the memory
// backing b. It derives the start address and length from the slice and
// forwards them to Madvise. A slice structurally satisfies Madvise's
// allocated-and-initialized contract, so Advise is safe on any byte slice.
//
// The contents of b are never modified; only kernel-side paging metadata
// changes. On targets without a memory-advisory facility Advise does
// nothing and returns nil.
func Advise(b []byte, advice AccessPattern) error {
	return Madvise(unsafe.Pointer(unsafe.SliceData(b)), uintptr(len(b)), advice)
}

// Madvise issues the platform's memory-advisory call over the length bytes
// starting at addr.
//
// The caller must guarantee that addr is non-nil and that the full range is
// validly allocated and initialized. No validation is performed; violating
// the contract is undefined behavior at the platform level, not a
// recoverable error. Zero-length ranges are passed through (success on
// common unix kernels). Prefer Advise, which discharges these obligations
// for byte slices.
//
// The result is a faithful pass-through of the kernel's: failures (for
// example an unaligned start on Linux, or advice the mapping type does not
// support) surface as an *os.SyscallError wrapping the errno, captured
// immediately after the call returns. On targets without a
// memory-advisory facility Madvise does nothing and returns nil.
func Madvise(addr unsafe.Pointer, length uintptr, advice AccessPattern) error {
	return madvise(addr, length, advice)
}
