package response

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

var (
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive and finite")
	ErrEmptyFrequencies  = errors.New("response: frequency list is empty")
	ErrFrequencyRange    = errors.New("response: frequency must be in [0, sampleRate/2]")
	ErrEmptyImpulse      = errors.New("response: impulse response is empty")
)

// Responder is implemented by every coefficient type that can report its
// complex frequency response.
type Responder interface {
	Response(freqHz, sampleRate float64) complex128
}

// Sample is one point of a frequency response.
type Sample struct {
	Frequency   float64
	MagnitudeDB float64
	Phase       float64
}

// Evaluate returns 20*log10|H| and arg H in (-pi, pi] at freq.
func Evaluate(r Responder, freq, sampleRate float64) (magnitudeDB, phase float64) {
	h := r.Response(freq, sampleRate)

	return 20 * math.Log10(cmplx.Abs(h)), cmplx.Phase(h)
}

// Sweep evaluates r at every frequency in freqs. Phase is unwrapped
// continuously along the list, so freqs should be monotonic.
func Sweep(r Responder, freqs []float64, sampleRate float64) ([]Sample, error) {
	if err := validateSampleRate(sampleRate); err != nil {
		return nil, err
	}
	if len(freqs) == 0 {
		return nil, ErrEmptyFrequencies
	}

	nyquist := sampleRate / 2
	re := make([]float64, len(freqs))
	im := make([]float64, len(freqs))
	phase := make([]float64, len(freqs))

	for i, f := range freqs {
		if f < 0 || f > nyquist || math.IsNaN(f) {
			return nil, fmt.Errorf("%w: %g", ErrFrequencyRange, f)
		}

		h := r.Response(f, sampleRate)
		re[i], im[i] = real(h), imag(h)
		phase[i] = cmplx.Phase(h)
	}

	mag := make([]float64, len(freqs))
	vecmath.Magnitude(mag, re, im)

	out := make([]Sample, len(freqs))
	for i, p := range unwrap(phase) {
		out[i] = Sample{
			Frequency:   freqs[i],
			MagnitudeDB: 20 * math.Log10(mag[i]),
			Phase:       p,
		}
	}

	return out, nil
}

// GroupDelay returns -dphi/dw in samples for every point of an unwrapped
// sweep, using centered differences inside and one-sided differences at the
// ends. Frequencies need not be evenly spaced.
func GroupDelay(samples []Sample, sampleRate float64) ([]float64, error) {
	if err := validateSampleRate(sampleRate); err != nil {
		return nil, err
	}
	if len(samples) < 2 {
		return nil, fmt.Errorf("response: group delay requires at least 2 points: %d", len(samples))
	}

	w := func(i int) float64 { return 2 * math.Pi * samples[i].Frequency / sampleRate }
	out := make([]float64, len(samples))
	last := len(samples) - 1

	for i := range samples {
		lo, hi := i-1, i+1
		if i == 0 {
			lo = 0
		}
		if i == last {
			hi = last
		}

		dw := w(hi) - w(lo)
		if dw == 0 {
			return nil, fmt.Errorf("response: group delay needs distinct frequencies at index %d", i)
		}
		out[i] = -(samples[hi].Phase - samples[lo].Phase) / dw
	}

	return out, nil
}

// LogFrequencies returns n logarithmically spaced frequencies from lo to hi
// inclusive.
func LogFrequencies(lo, hi float64, n int) ([]float64, error) {
	if n < 2 || lo <= 0 || hi <= lo || math.IsInf(hi, 0) {
		return nil, fmt.Errorf("response: log grid needs 0 < lo < hi and n >= 2: lo=%g hi=%g n=%d", lo, hi, n)
	}

	return pinEnds(floats.LogSpan(make([]float64, n), lo, hi), lo, hi), nil
}

// LinearFrequencies returns n evenly spaced frequencies from lo to hi
// inclusive.
func LinearFrequencies(lo, hi float64, n int) ([]float64, error) {
	if n < 2 || lo < 0 || hi <= lo || math.IsInf(hi, 0) {
		return nil, fmt.Errorf("response: linear grid needs 0 <= lo < hi and n >= 2: lo=%g hi=%g n=%d", lo, hi, n)
	}

	return pinEnds(floats.Span(make([]float64, n), lo, hi), lo, hi), nil
}

// pinEnds sets the grid endpoints to lo and hi exactly.
func pinEnds(grid []float64, lo, hi float64) []float64 {
	grid[0] = lo
	grid[len(grid)-1] = hi

	return grid
}

func validateSampleRate(sampleRate float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidSampleRate, sampleRate)
	}

	return nil
}
