package design

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
)

// SupportsFirstOrder reports whether t has a one-pole realization.
func (t FilterType) SupportsFirstOrder() bool {
	switch t {
	case LowPass, HighPass, AllPass, LowShelf, HighShelf:
		return true
	default:
		return false
	}
}

// SynthesizeFirstOrder returns bilinear one-pole coefficients for family t.
//
// Only LowPass, HighPass, AllPass, LowShelf and HighShelf have a first-order
// form. The shelf corner sits at the geometric mean of the two plateaus, and
// the shelf gain G = 10^(gainDB/20) is reached exactly at DC (LowShelf) or
// Nyquist (HighShelf). AllPass is 1 - 2*LowPass: gain -1 at DC and +1 at
// Nyquist.
func SynthesizeFirstOrder(t FilterType, sampleRate, freq, gainDB float64) (biquad.FirstOrderCoefficients, error) {
	if err := validateType(t); err != nil {
		return biquad.FirstOrderCoefficients{}, err
	}
	if !t.SupportsFirstOrder() {
		return biquad.FirstOrderCoefficients{}, fmt.Errorf("design: %v has no first-order form: %w", t, ErrInvalidParameter)
	}
	if err := ValidateFrequency(freq, sampleRate); err != nil {
		return biquad.FirstOrderCoefficients{}, err
	}
	if err := ValidateGain(gainDB); err != nil {
		return biquad.FirstOrderCoefficients{}, err
	}

	k := math.Tan(math.Pi * freq / sampleRate)
	g := core.DBToLinear(clampGain(gainDB))

	switch t {
	case LowPass:
		b := k / (1 + k)
		return biquad.FirstOrderCoefficients{B0: b, B1: b, A1: (k - 1) / (k + 1)}, nil
	case HighPass:
		b := 1 / (1 + k)
		return biquad.FirstOrderCoefficients{B0: b, B1: -b, A1: (k - 1) / (k + 1)}, nil
	case AllPass:
		a1 := (k - 1) / (k + 1)
		return biquad.FirstOrderCoefficients{B0: -a1, B1: -1, A1: a1}, nil
	case LowShelf:
		k /= math.Sqrt(g)
		return biquad.FirstOrderCoefficients{
			B0: (1 + g*k) / (1 + k),
			B1: (g*k - 1) / (1 + k),
			A1: (k - 1) / (k + 1),
		}, nil
	default:
		k *= math.Sqrt(g)
		return biquad.FirstOrderCoefficients{
			B0: (g + k) / (1 + k),
			B1: (k - g) / (1 + k),
			A1: (k - 1) / (k + 1),
		}, nil
	}
}
