package svf

import (
	"math"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/design"
)

// Coefficients holds one second-order SVF design.
//
// G is the prewarped integrator gain tan(pi*f/fs) (warped by the shelf
// amplitude for shelves), K the damping 1/Q, A1..A3 the update gains and
// M0..M2 the output mix applied to the input, band and low taps.
type Coefficients struct {
	Type design.FilterType

	G, K       float64
	A1, A2, A3 float64
	M0, M1, M2 float64

	params params
}

// params records the arguments a Coefficients value was designed from so a
// Filter can be retuned.
type params struct {
	sampleRate float64
	freq       float64
	gainDB     float64
	q          float64
}

func (p params) valid() bool {
	return p.sampleRate > 0
}

// Design computes second-order SVF coefficients for family t.
// Arguments are validated exactly as in [design.Synthesize].
func Design(t design.FilterType, sampleRate, freq, gainDB, q float64) (Coefficients, error) {
	if err := design.Validate(t, sampleRate, freq, gainDB, q); err != nil {
		return Coefficients{}, err
	}

	g := math.Tan(math.Pi * freq / sampleRate)
	k := 1 / core.Clamp(q, design.MinQ, design.MaxQ)
	a := core.DBToShelfAmplitude(core.Clamp(gainDB, -design.MaxGainDB, design.MaxGainDB))

	var m0, m1, m2 float64

	switch t {
	case design.LowPass:
		m0, m1, m2 = 0, 0, 1
	case design.HighPass:
		m0, m1, m2 = 1, -k, -1
	case design.BandPass:
		m0, m1, m2 = 0, 1, 0
	case design.Notch:
		m0, m1, m2 = 1, -k, 0
	case design.AllPass:
		m0, m1, m2 = 1, -2*k, 0
	case design.Bell:
		k /= a
		m0, m1, m2 = 1, k*(a*a-1), 0
	case design.LowShelf:
		g /= math.Sqrt(a)
		m0, m1, m2 = 1, k*(a-1), a*a-1
	case design.HighShelf:
		g *= math.Sqrt(a)
		m0, m1, m2 = a*a, k*(1-a)*a, 1-a*a
	}

	a1 := 1 / (1 + g*(g+k))
	a2 := g * a1

	return Coefficients{
		Type: t,
		G:    g,
		K:    k,
		A1:   a1,
		A2:   a2,
		A3:   g * a2,
		M0:   m0,
		M1:   m1,
		M2:   m2,
		params: params{
			sampleRate: sampleRate,
			freq:       freq,
			gainDB:     gainDB,
			q:          q,
		},
	}, nil
}

// Biquad returns the DF-II-T coefficients with the same transfer function.
func (c Coefficients) Biquad() biquad.Coefficients {
	g, k := c.G, c.K
	g2 := g * g
	a0 := 1 + g*k + g2
	a2 := 1 - g*k + g2

	return biquad.Coefficients{
		B0: (c.M0*a0 + c.M1*g + c.M2*g2) / a0,
		B1: (c.M0*(2*g2-2) + 2*c.M2*g2) / a0,
		B2: (c.M0*a2 - c.M1*g + c.M2*g2) / a0,
		A1: (2*g2 - 2) / a0,
		A2: a2 / a0,
	}
}

// Response returns H(e^{jw}) at freqHz.
func (c Coefficients) Response(freqHz, sampleRate float64) complex128 {
	return c.Biquad().Response(freqHz, sampleRate)
}

// MagnitudeDB returns the magnitude response in dB at freqHz.
func (c Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return c.Biquad().MagnitudeDB(freqHz, sampleRate)
}
