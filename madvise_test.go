package madvise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allPatterns enumerates every advice value the package defines.
var allPatterns = []AccessPattern{
	AccessNormal,
	AccessSequential,
	AccessRandom,
	AccessDontNeed,
	AccessWillNeed,
}

func TestAccessPattern_Distinct(t *testing.T) {
	seen := make(map[AccessPattern]struct{}, len(allPatterns))
	for _, p := range allPatterns {
		seen[p] = struct{}{}
	}
	assert.Len(t, seen, len(allPatterns))
}

func TestAdvise_NilSlice(t *testing.T) {
	for _, p := range allPatterns {
		require.NoError(t, Advise(nil, p))
	}
}
