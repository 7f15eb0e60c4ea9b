package response

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"
)

// FromImpulse measures the frequency response of an impulse response.
//
// ir is zero-padded to the next power of two N, which samples the same
// response on a finer grid. The result holds N/2+1 samples at the bin
// frequencies k*sampleRate/N with unwrapped phase.
func FromImpulse(ir []float64, sampleRate float64) ([]Sample, error) {
	if err := validateSampleRate(sampleRate); err != nil {
		return nil, err
	}
	if len(ir) == 0 {
		return nil, ErrEmptyImpulse
	}

	fftSize := nextPowerOf2(len(ir))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for i, v := range ir {
		padded[i] = complex(v, 0)
	}

	bins := make([]complex128, fftSize)
	if err := plan.Forward(bins, padded); err != nil {
		return nil, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	half := fftSize/2 + 1
	out := make([]Sample, half)
	phase := make([]float64, half)
	for k := range out {
		h := bins[k]
		out[k].Frequency = float64(k) * sampleRate / float64(fftSize)
		out[k].MagnitudeDB = 20 * math.Log10(cmplx.Abs(h))
		phase[k] = cmplx.Phase(h)
	}

	for k, p := range unwrap(phase) {
		out[k].Phase = p
	}

	return out, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}

func unwrap(phase []float64) []float64 {
	out := make([]float64, len(phase))
	if len(phase) == 0 {
		return out
	}

	out[0] = phase[0]
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		switch d := phase[i] - phase[i-1]; {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}
		out[i] = phase[i] + offset
	}

	return out
}
