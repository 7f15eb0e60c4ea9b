package design

import (
	"math"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
)

const (
	// MinQ and MaxQ bound the quality factor after validation.
	MinQ = 1e-3
	MaxQ = 1e3

	// MaxGainDB bounds the magnitude of shelf and bell gains.
	MaxGainDB = 120.0
)

// DefaultQ is the Butterworth quality factor.
const DefaultQ = 1 / math.Sqrt2

// Synthesize returns RBJ cookbook biquad coefficients for family t.
//
// freq is the cutoff or center frequency in Hz and must lie in
// (0, sampleRate/2). gainDB is used only by Bell, LowShelf and HighShelf.
// The result is normalized so that a0 = 1.
func Synthesize(t FilterType, sampleRate, freq, gainDB, q float64) (biquad.Coefficients, error) {
	if err := Validate(t, sampleRate, freq, gainDB, q); err != nil {
		return biquad.Coefficients{}, err
	}

	p := newParams(sampleRate, freq, gainDB, q)

	switch t {
	case LowPass:
		return p.lowpass(), nil
	case HighPass:
		return p.highpass(), nil
	case BandPass:
		return p.bandpass(), nil
	case Notch:
		return p.notch(), nil
	case AllPass:
		return p.allpass(), nil
	case Bell:
		return p.bell(), nil
	case LowShelf:
		return p.lowShelf(), nil
	default:
		return p.highShelf(), nil
	}
}

// params holds the shared intermediate values of one cookbook design.
type params struct {
	w0    float64
	cw    float64
	sw    float64
	q     float64
	alpha float64
	a     float64
}

func newParams(sampleRate, freq, gainDB, q float64) params {
	w0 := 2 * math.Pi * freq / sampleRate
	q = clampQ(q)
	sw := math.Sin(w0)

	return params{
		w0:    w0,
		cw:    math.Cos(w0),
		sw:    sw,
		q:     q,
		alpha: sw / (2 * q),
		a:     core.DBToShelfAmplitude(clampGain(gainDB)),
	}
}

func clampQ(q float64) float64 {
	return core.Clamp(q, MinQ, MaxQ)
}

func clampGain(gainDB float64) float64 {
	return core.Clamp(gainDB, -MaxGainDB, MaxGainDB)
}

func (p params) lowpass() biquad.Coefficients {
	b1 := 1 - p.cw
	b0 := b1 / 2

	return normalizeBiquad(b0, b1, b0, 1+p.alpha, -2*p.cw, 1-p.alpha)
}

func (p params) highpass() biquad.Coefficients {
	b1 := -(1 + p.cw)
	b0 := -b1 / 2

	return normalizeBiquad(b0, b1, b0, 1+p.alpha, -2*p.cw, 1-p.alpha)
}

// bandpass is the constant-skirt-gain variant; peak gain equals q.
func (p params) bandpass() biquad.Coefficients {
	b0 := p.sw / 2

	return normalizeBiquad(b0, 0, -b0, 1+p.alpha, -2*p.cw, 1-p.alpha)
}

func (p params) notch() biquad.Coefficients {
	return normalizeBiquad(1, -2*p.cw, 1, 1+p.alpha, -2*p.cw, 1-p.alpha)
}

func (p params) allpass() biquad.Coefficients {
	return normalizeBiquad(1-p.alpha, -2*p.cw, 1+p.alpha, 1+p.alpha, -2*p.cw, 1-p.alpha)
}

func (p params) bell() biquad.Coefficients {
	a := p.a

	return normalizeBiquad(
		1+p.alpha*a, -2*p.cw, 1-p.alpha*a,
		1+p.alpha/a, -2*p.cw, 1-p.alpha/a,
	)
}

func (p params) lowShelf() biquad.Coefficients {
	a := p.a
	beta := 2 * math.Sqrt(a) * p.alpha

	b0 := a * ((a + 1) - (a-1)*p.cw + beta)
	b1 := 2 * a * ((a - 1) - (a+1)*p.cw)
	b2 := a * ((a + 1) - (a-1)*p.cw - beta)
	a0 := (a + 1) + (a-1)*p.cw + beta
	a1 := -2 * ((a - 1) + (a+1)*p.cw)
	a2 := (a + 1) + (a-1)*p.cw - beta

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

func (p params) highShelf() biquad.Coefficients {
	a := p.a
	beta := 2 * math.Sqrt(a) * p.alpha

	b0 := a * ((a + 1) + (a-1)*p.cw + beta)
	b1 := -2 * a * ((a - 1) + (a+1)*p.cw)
	b2 := a * ((a + 1) + (a-1)*p.cw - beta)
	a0 := (a + 1) - (a-1)*p.cw + beta
	a1 := 2 * ((a - 1) - (a+1)*p.cw)
	a2 := (a + 1) - (a-1)*p.cw - beta

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}
