// Package registry selects block-processing kernels for the biquad and
// one-pole engines based on detected CPU features.
package registry

import (
	"cmp"
	"slices"
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Coefficients are second-order transfer coefficients (a0 normalized to 1).
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// FirstOrderCoefficients are one-pole transfer coefficients (a0 normalized to 1).
type FirstOrderCoefficients struct {
	B0, B1 float64
	A1     float64
}

// ProcessBlockFn processes buf in-place with one DF-II-T biquad section and
// returns the updated state.
type ProcessBlockFn func(c Coefficients, s1, s2 float64, buf []float64) (newS1, newS2 float64)

// ProcessFirstOrderBlockFn processes buf in-place with one DF-II-T one-pole
// section and returns the updated state.
type ProcessFirstOrderBlockFn func(c FirstOrderCoefficients, s float64, buf []float64) float64

// OpEntry is one registered kernel implementation.
type OpEntry struct {
	Name                   string
	SIMDLevel              cpu.SIMDLevel
	Priority               int
	ProcessBlock           ProcessBlockFn
	ProcessFirstOrderBlock ProcessFirstOrderBlockFn
}

// OpRegistry stores available implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default kernel registry populated by the arch packages.
var Global = &OpRegistry{}

// Register adds an implementation entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority implementation supported by features,
// or nil if none matches.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		slices.SortStableFunc(r.entries, func(a, b OpEntry) int {
			return cmp.Compare(b.Priority, a.Priority)
		})
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// ListEntries returns a copy of entries for tests/debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.entries)
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
