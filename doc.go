// Package madvise lets a program hint the kernel about how a range of
// memory will be accessed, wrapping the operating system's madvise(2)
// facility.
//
// # Overview
//
// The kernel tunes paging and readahead per mapping using heuristics that
// assume a mixed access pattern. When the caller knows better (say, a single
// sequential pass over a large mapping, or purely random lookups), announcing
// the pattern up front lets the kernel prefetch more aggressively, disable
// readahead, or reclaim pages early. The hint is purely advisory: it never
// moves, copies, or mutates memory, and a failed hint never affects program
// correctness.
//
// # Usage
//
//	buf := make([]byte, 1<<20)
//	if err := madvise.Advise(buf, madvise.AccessSequential); err != nil {
//		// Advisory failure is a lost optimization, not an error most
//		// programs need to act on.
//	}
//
// Advise is the safe surface: it derives the address and length from the
// slice, which already guarantees the range is allocated and initialized.
// Madvise is the raw entry point for callers holding only a pointer and a
// length; it performs no validation and places the allocated-and-initialized
// obligation on the caller.
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSDs, Solaris): issues the real madvise(2) call
//     and passes its result through unchanged.
//   - Everything else (Windows has no madvise equivalent): both entry points
//     compile into no-ops that always succeed.
//
// The split is selected at build time via build tags, not probed at runtime.
//
// # Thread Safety
//
// The package holds no state. Concurrent calls from any number of
// goroutines, over disjoint or overlapping ranges, need no coordination;
// overlapping hints resolve at the kernel's discretion.
package madvise
