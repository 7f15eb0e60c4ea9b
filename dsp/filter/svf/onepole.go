package svf

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/design"
)

// OnePoleCoefficients holds one first-order SVF design. G is the prewarped
// integrator gain, A1 = G/(1+G), and the output is M0*x + M1*low.
type OnePoleCoefficients struct {
	Type design.FilterType

	G  float64
	A1 float64
	M0 float64
	M1 float64
}

// OnePoleOutputs are the taps of one first-order update.
type OnePoleOutputs struct {
	Low  float64
	High float64
}

// DesignOnePole computes first-order SVF coefficients for LowPass, HighPass,
// AllPass, LowShelf or HighShelf. Shelf gain uses G = 10^(gainDB/20).
func DesignOnePole(t design.FilterType, sampleRate, freq, gainDB float64) (OnePoleCoefficients, error) {
	if !t.SupportsFirstOrder() {
		return OnePoleCoefficients{}, fmt.Errorf("svf: %v has no first-order form: %w", t, design.ErrInvalidParameter)
	}
	if err := design.ValidateFrequency(freq, sampleRate); err != nil {
		return OnePoleCoefficients{}, err
	}
	if err := design.ValidateGain(gainDB); err != nil {
		return OnePoleCoefficients{}, err
	}

	g := math.Tan(math.Pi * freq / sampleRate)
	gain := core.DBToLinear(core.Clamp(gainDB, -design.MaxGainDB, design.MaxGainDB))

	var m0, m1 float64

	switch t {
	case design.LowPass:
		m0, m1 = 0, 1
	case design.HighPass:
		m0, m1 = 1, -1
	case design.AllPass:
		m0, m1 = 1, -2
	case design.LowShelf:
		g /= math.Sqrt(gain)
		m0, m1 = 1, gain-1
	default:
		g *= math.Sqrt(gain)
		m0, m1 = gain, 1-gain
	}

	return OnePoleCoefficients{
		Type: t,
		G:    g,
		A1:   g / (1 + g),
		M0:   m0,
		M1:   m1,
	}, nil
}

// FirstOrder returns the DF-II-T one-pole coefficients with the same
// transfer function.
func (c OnePoleCoefficients) FirstOrder() biquad.FirstOrderCoefficients {
	g := c.G
	d := 1 + g

	return biquad.FirstOrderCoefficients{
		B0: (c.M0*d + c.M1*g) / d,
		B1: (c.M0*(g-1) + c.M1*g) / d,
		A1: (g - 1) / d,
	}
}

// Response returns H(e^{jw}) at freqHz.
func (c OnePoleCoefficients) Response(freqHz, sampleRate float64) complex128 {
	return c.FirstOrder().Response(freqHz, sampleRate)
}

// MagnitudeDB returns the magnitude response in dB at freqHz.
func (c OnePoleCoefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return c.FirstOrder().MagnitudeDB(freqHz, sampleRate)
}

// OnePole is a first-order TPT filter.
type OnePole struct {
	coeffs OnePoleCoefficients
	s      float64
}

// NewOnePole creates a first-order filter with zeroed state.
func NewOnePole(c OnePoleCoefficients) *OnePole {
	return &OnePole{coeffs: c}
}

// Coefficients returns the active coefficients.
func (p *OnePole) Coefficients() OnePoleCoefficients {
	return p.coeffs
}

// SetCoefficients swaps coefficients without touching the integrator.
func (p *OnePole) SetCoefficients(c OnePoleCoefficients) {
	p.coeffs = c
}

func (p *OnePole) tick(x float64) float64 {
	v1 := p.coeffs.A1 * (x - p.s)
	v2 := v1 + p.s
	p.s = v2 + v1

	return v2
}

// Process advances the filter by one sample and returns both taps.
func (p *OnePole) Process(x float64) OnePoleOutputs {
	low := p.tick(x)

	return OnePoleOutputs{Low: low, High: x - low}
}

// ProcessSample advances the filter and returns M0*x + M1*low.
func (p *OnePole) ProcessSample(x float64) float64 {
	low := p.tick(x)

	return p.coeffs.M0*x + p.coeffs.M1*low
}

// ProcessBlock filters buf in place.
func (p *OnePole) ProcessBlock(buf []float64) {
	c := p.coeffs
	s := p.s

	for i, x := range buf {
		v1 := c.A1 * (x - s)
		v2 := v1 + s
		s = v2 + v1
		buf[i] = c.M0*x + c.M1*v2
	}

	p.s = s
}

// Reset clears the integrator.
func (p *OnePole) Reset() {
	p.s = 0
}

// State returns the integrator memory in IC1.
func (p *OnePole) State() State {
	return State{IC1: p.s}
}

// SetState restores the integrator memory from IC1.
func (p *OnePole) SetState(s State) {
	p.s = s.IC1
}
