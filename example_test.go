package madvise_test

import (
	"runtime"
	"unsafe"

	"github.com/hupe1980/madvise"
)

// Example demonstrates hinting the kernel before a sequential pass over a
// buffer. Advisory failure is a lost optimization, never a correctness
// problem, so many callers simply ignore it.
func Example() {
	buf := make([]byte, 1024)

	_ = madvise.Advise(buf, madvise.AccessSequential)

	for i := range buf {
		buf[i]++
	}
}

// ExampleMadvise shows the raw entry point for callers holding only an
// address and a length. The caller vouches that the full range is allocated
// and initialized.
func ExampleMadvise() {
	buf := make([]byte, 1024)

	ptr := unsafe.Pointer(unsafe.SliceData(buf))
	_ = madvise.Madvise(ptr, uintptr(len(buf)), madvise.AccessWillNeed)
	runtime.KeepAlive(buf)
}
