package biquad

import (
	"sync"

	archregistry "github.com/cwbudde/algo-iir/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// Coefficients holds the transfer function coefficients for a single
// second-order section. a0 is normalized to 1 and not stored.
//
// The sign convention follows Direct Form II Transposed:
//
//	y  = B0*x + s1
//	s1 = B1*x - A1*y + s2
//	s2 = B2*x - A2*y
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// Identity returns the pass-through coefficient set H(z) = 1.
func Identity() Coefficients {
	return Coefficients{B0: 1}
}

// Section is a single biquad filter with coefficients and internal state.
// It implements Direct Form II Transposed processing.
type Section struct {
	coeffs Coefficients

	s1, s2 float64
}

var (
	processBlockImpl           archregistry.ProcessBlockFn
	processFirstOrderBlockImpl archregistry.ProcessFirstOrderBlockFn
	kernelInitOnce             sync.Once
)

// NewSection returns a Section initialized with the given coefficients
// and zero state.
func NewSection(c Coefficients) *Section {
	return &Section{coeffs: c}
}

// Coefficients returns the current coefficient set.
func (s *Section) Coefficients() Coefficients {
	return s.coeffs
}

// SetCoefficients replaces the coefficient set without touching the state.
// Switching a running filter produces at most a short transient.
func (s *Section) SetCoefficients(c Coefficients) {
	s.coeffs = c
}

// ProcessSample filters one input sample and returns the output.
func (s *Section) ProcessSample(x float64) float64 {
	c := &s.coeffs
	y := c.B0*x + s.s1
	s.s1 = c.B1*x - c.A1*y + s.s2
	s.s2 = c.B2*x - c.A2*y

	return y
}

// ProcessBlock filters a block of samples in-place. Zero-alloc.
func (s *Section) ProcessBlock(buf []float64) {
	kernelInitOnce.Do(initKernels)

	c := archregistry.Coefficients{
		B0: s.coeffs.B0,
		B1: s.coeffs.B1,
		B2: s.coeffs.B2,
		A1: s.coeffs.A1,
		A2: s.coeffs.A2,
	}

	s.s1, s.s2 = processBlockImpl(c, s.s1, s.s2, buf)
}

// ProcessBlockTo filters src into dst. dst must be at least as long as src.
// Zero-alloc.
func (s *Section) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = s.ProcessSample(x)
	}
}

// Reset clears the state to zero.
func (s *Section) Reset() {
	s.s1 = 0
	s.s2 = 0
}

// State returns the current state [s1, s2].
func (s *Section) State() [2]float64 {
	return [2]float64{s.s1, s.s2}
}

// SetState restores a previously saved state.
func (s *Section) SetState(state [2]float64) {
	s.s1 = state[0]
	s.s2 = state[1]
}

func initKernels() {
	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("biquad: no block kernel registered (missing generic fallback?)")
	}

	if entry.ProcessBlock == nil || entry.ProcessFirstOrderBlock == nil {
		panic("biquad: selected kernel " + entry.Name + " is incomplete")
	}

	processBlockImpl = entry.ProcessBlock
	processFirstOrderBlockImpl = entry.ProcessFirstOrderBlock
}
