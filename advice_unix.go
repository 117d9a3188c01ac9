//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package madvise

import "golang.org/x/sys/unix"

// Advice codes, bound to the kernel's madvise(2) constants.
const (
	// AccessNormal restores the default paging behavior for the range.
	AccessNormal = AccessPattern(unix.MADV_NORMAL)
	// AccessSequential expects sequential access; the kernel may read ahead
	// aggressively and drop pages soon after they are read.
	AccessSequential = AccessPattern(unix.MADV_SEQUENTIAL)
	// AccessRandom expects random access; the kernel may disable readahead.
	AccessRandom = AccessPattern(unix.MADV_RANDOM)
	// AccessDontNeed marks the range as not needed soon; the kernel may
	// reclaim its pages.
	AccessDontNeed = AccessPattern(unix.MADV_DONTNEED)
	// AccessWillNeed marks the range as needed soon; the kernel may
	// prefetch its pages.
	AccessWillNeed = AccessPattern(unix.MADV_WILLNEED)
)
