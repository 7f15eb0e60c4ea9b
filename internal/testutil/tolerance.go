package testutil

import (
	"math"

	"github.com/stretchr/testify/require"
)

// RequireSliceNearlyEqual fails unless got and want have equal length and
// every element pair differs by at most eps.
func RequireSliceNearlyEqual(t require.TestingT, got, want []float64, eps float64) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	require.Len(t, got, len(want))
	for i := range got {
		if d := math.Abs(got[i] - want[i]); d > eps {
			require.FailNowf(t, "slice mismatch", "index %d: got %v, want %v (diff %g > %g)", i, got[i], want[i], d, eps)
		}
	}
}

// RequireFinite fails if any element is NaN or infinite.
func RequireFinite(t require.TestingT, data []float64) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			require.FailNowf(t, "non-finite sample", "index %d: %v", i, v)
		}
	}
}
