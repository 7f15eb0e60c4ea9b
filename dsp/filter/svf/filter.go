package svf

import (
	"fmt"

	"github.com/cwbudde/algo-iir/dsp/filter/design"
)

// State holds the integrator memories of a state-variable filter.
// OnePole uses IC1 only.
type State struct {
	IC1 float64
	IC2 float64
}

// Outputs are the simultaneous taps of one second-order update.
type Outputs struct {
	Low   float64
	Band  float64
	High  float64
	Notch float64
}

// Filter is a second-order TPT state-variable filter.
type Filter struct {
	coeffs Coefficients
	ic1    float64
	ic2    float64
}

// New creates a tap-oriented filter for LowPass, HighPass, BandPass or Notch.
// Use [Design] with [NewFromCoefficients] for the gain and all-pass families.
func New(t design.FilterType, freq, q, sampleRate float64) (*Filter, error) {
	switch t {
	case design.LowPass, design.HighPass, design.BandPass, design.Notch:
	default:
		return nil, fmt.Errorf("svf: New supports lowpass, highpass, bandpass and notch, got %v: %w", t, design.ErrInvalidParameter)
	}

	c, err := Design(t, sampleRate, freq, 0, q)
	if err != nil {
		return nil, err
	}

	return NewFromCoefficients(c), nil
}

// NewFromCoefficients creates a filter with zeroed state.
func NewFromCoefficients(c Coefficients) *Filter {
	return &Filter{coeffs: c}
}

// Coefficients returns the active coefficients.
func (f *Filter) Coefficients() Coefficients {
	return f.coeffs
}

// SetCoefficients swaps coefficients without touching the integrators.
func (f *Filter) SetCoefficients(c Coefficients) {
	f.coeffs = c
}

// SetParams redesigns the filter at a new frequency and Q, keeping the
// family, sample rate, gain and integrator state.
func (f *Filter) SetParams(freq, q float64) error {
	p := f.coeffs.params
	if !p.valid() {
		return fmt.Errorf("svf: filter has no design parameters to retune: %w", design.ErrInvalidParameter)
	}

	c, err := Design(f.coeffs.Type, p.sampleRate, freq, p.gainDB, q)
	if err != nil {
		return err
	}

	f.coeffs = c

	return nil
}

// SetFrequency retunes the cutoff or center frequency.
func (f *Filter) SetFrequency(freq float64) error {
	return f.SetParams(freq, f.coeffs.params.q)
}

// SetGain changes the gain of a Bell or shelf filter.
func (f *Filter) SetGain(gainDB float64) error {
	p := f.coeffs.params
	if !p.valid() {
		return fmt.Errorf("svf: filter has no design parameters to retune: %w", design.ErrInvalidParameter)
	}

	c, err := Design(f.coeffs.Type, p.sampleRate, p.freq, gainDB, p.q)
	if err != nil {
		return err
	}

	f.coeffs = c

	return nil
}

func (f *Filter) tick(x float64) (v1, v2 float64) {
	c := &f.coeffs
	v3 := x - f.ic2
	v1 = c.A1*f.ic1 + c.A2*v3
	v2 = f.ic2 + c.A2*f.ic1 + c.A3*v3
	f.ic1 = 2*v1 - f.ic1
	f.ic2 = 2*v2 - f.ic2

	return v1, v2
}

// Process advances the filter by one sample and returns every tap.
func (f *Filter) Process(x float64) Outputs {
	v1, v2 := f.tick(x)
	k := f.coeffs.K

	return Outputs{
		Low:   v2,
		Band:  v1,
		High:  x - k*v1 - v2,
		Notch: x - k*v1,
	}
}

// ProcessSample advances the filter and returns the family output
// M0*x + M1*band + M2*low.
func (f *Filter) ProcessSample(x float64) float64 {
	v1, v2 := f.tick(x)
	c := &f.coeffs

	return c.M0*x + c.M1*v1 + c.M2*v2
}

// ProcessBlock filters buf in place.
func (f *Filter) ProcessBlock(buf []float64) {
	c := f.coeffs
	ic1, ic2 := f.ic1, f.ic2

	for i, x := range buf {
		v3 := x - ic2
		v1 := c.A1*ic1 + c.A2*v3
		v2 := ic2 + c.A2*ic1 + c.A3*v3
		ic1 = 2*v1 - ic1
		ic2 = 2*v2 - ic2
		buf[i] = c.M0*x + c.M1*v1 + c.M2*v2
	}

	f.ic1, f.ic2 = ic1, ic2
}

// Reset clears the integrators.
func (f *Filter) Reset() {
	f.ic1 = 0
	f.ic2 = 0
}

// State returns the integrator memories.
func (f *Filter) State() State {
	return State{IC1: f.ic1, IC2: f.ic2}
}

// SetState restores integrator memories saved with State.
func (f *Filter) SetState(s State) {
	f.ic1 = s.IC1
	f.ic2 = s.IC2
}
