//go:build !(darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package madvise

// Advice codes. This platform has no memory-advisory facility, so the
// values are private to the package and never reach a kernel.
const (
	AccessNormal AccessPattern = iota
	AccessSequential
	AccessRandom
	AccessDontNeed
	AccessWillNeed
)
