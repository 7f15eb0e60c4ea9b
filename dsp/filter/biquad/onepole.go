package biquad

import archregistry "github.com/cwbudde/algo-iir/dsp/filter/biquad/internal/arch/registry"

// FirstOrderCoefficients holds the coefficients of a one-pole section
//
//	H(z) = (B0 + B1*z^-1) / (1 + A1*z^-1)
//
// processed in Direct Form II Transposed:
//
//	y = B0*x + s
//	s = B1*x - A1*y
type FirstOrderCoefficients struct {
	B0, B1 float64
	A1     float64
}

// Biquad returns the same transfer function as a second-order set with
// B2 = A2 = 0.
func (c FirstOrderCoefficients) Biquad() Coefficients {
	return Coefficients{B0: c.B0, B1: c.B1, A1: c.A1}
}

// OnePole is a first-order filter with a single state scalar.
type OnePole struct {
	coeffs FirstOrderCoefficients

	s float64
}

// NewOnePole returns a OnePole initialized with c and zero state.
func NewOnePole(c FirstOrderCoefficients) *OnePole {
	return &OnePole{coeffs: c}
}

// Coefficients returns the current coefficient set.
func (p *OnePole) Coefficients() FirstOrderCoefficients {
	return p.coeffs
}

// SetCoefficients replaces the coefficient set without touching the state.
func (p *OnePole) SetCoefficients(c FirstOrderCoefficients) {
	p.coeffs = c
}

// ProcessSample filters one input sample and returns the output.
func (p *OnePole) ProcessSample(x float64) float64 {
	y := p.coeffs.B0*x + p.s
	p.s = p.coeffs.B1*x - p.coeffs.A1*y

	return y
}

// ProcessBlock filters a block of samples in-place. Zero-alloc.
func (p *OnePole) ProcessBlock(buf []float64) {
	kernelInitOnce.Do(initKernels)

	c := archregistry.FirstOrderCoefficients{
		B0: p.coeffs.B0,
		B1: p.coeffs.B1,
		A1: p.coeffs.A1,
	}

	p.s = processFirstOrderBlockImpl(c, p.s, buf)
}

// Reset clears the state to zero.
func (p *OnePole) Reset() {
	p.s = 0
}

// State returns the current state scalar.
func (p *OnePole) State() float64 {
	return p.s
}

// SetState restores a previously saved state.
func (p *OnePole) SetState(state float64) {
	p.s = state
}
