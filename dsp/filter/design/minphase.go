package design

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
)

// SynthesizeMinimumPhase returns a biquad with the same magnitude response as
// [Synthesize] whose zeros all satisfy |z| <= 1.
//
// LowPass, HighPass, BandPass and Notch already have their zeros on the unit
// circle and are returned unchanged. AllPass reduces to the identity, since
// reflecting both zeros onto the poles cancels the section. Bell and the two
// shelves are built from the analog prototype roots: each root is mapped
// through the prewarped bilinear transform, zeros outside the unit circle are
// reflected to 1/conj(z) with compensating gain |z|, and the overall gain is
// the product of the bilinear factors.
func SynthesizeMinimumPhase(t FilterType, sampleRate, freq, gainDB, q float64) (biquad.Coefficients, error) {
	if err := Validate(t, sampleRate, freq, gainDB, q); err != nil {
		return biquad.Coefficients{}, err
	}

	switch t {
	case LowPass, HighPass, BandPass, Notch:
		return Synthesize(t, sampleRate, freq, gainDB, q)
	case AllPass:
		return biquad.Identity(), nil
	}

	p := newParams(sampleRate, freq, gainDB, q)
	a := p.a
	sa := math.Sqrt(a)

	// scale is the cookbook gain factor in front of the prototype ratio.
	var num, den [3]float64
	var scale float64

	switch t {
	case Bell:
		num = [3]float64{1, a / p.q, 1}
		den = [3]float64{1, 1 / (a * p.q), 1}
		scale = 1
	case LowShelf:
		num = [3]float64{1, sa / p.q, a}
		den = [3]float64{a, sa / p.q, 1}
		scale = a
	default:
		num = [3]float64{a, sa / p.q, 1}
		den = [3]float64{1, sa / p.q, a}
		scale = a
	}

	c := 1 / math.Tan(p.w0/2)

	// Each analog factor (s - r) maps to (c - r)(1 - z_r z^-1)/(1 + z^-1),
	// so the digital gain is the product of the (c - r) terms.
	gain := complex(scale*num[0]/den[0], 0)

	var zeros, poles [2]complex128
	s1, s2 := analogRoots(num)
	for i, s := range [2]complex128{s1, s2} {
		gain *= complex(c, 0) - s
		z, r := reflectInside(bilinearRoot(s, c))
		gain *= complex(r, 0)
		zeros[i] = z
	}
	s1, s2 = analogRoots(den)
	for i, s := range [2]complex128{s1, s2} {
		gain /= complex(c, 0) - s
		poles[i] = bilinearRoot(s, c)
	}

	g := real(gain)

	return biquad.Coefficients{
		B0: g,
		B1: -g * real(zeros[0]+zeros[1]),
		B2: g * real(zeros[0]*zeros[1]),
		A1: -real(poles[0] + poles[1]),
		A2: real(poles[0] * poles[1]),
	}, nil
}

// analogRoots returns the roots of p[0]*s^2 + p[1]*s + p[2]. Real roots use
// the cancellation-free form q = -(b + sign(b)*sqrt(d))/2.
func analogRoots(p [3]float64) (complex128, complex128) {
	a, b, c := p[0], p[1], p[2]
	d := b*b - 4*a*c

	if d < 0 {
		re := -b / (2 * a)
		im := math.Sqrt(-d) / (2 * a)
		return complex(re, im), complex(re, -im)
	}

	q := -(b + math.Copysign(math.Sqrt(d), b)) / 2
	if q == 0 {
		return 0, 0
	}

	return complex(q/a, 0), complex(c/q, 0)
}

// bilinearRoot maps an s-plane root to the z-plane with z = (c+s)/(c-s).
func bilinearRoot(s complex128, c float64) complex128 {
	cc := complex(c, 0)
	return (cc + s) / (cc - s)
}

// reflectInside moves a root outside the unit circle to 1/conj(z) and
// returns the factor |z| that keeps the magnitude response unchanged.
func reflectInside(z complex128) (complex128, float64) {
	if r := cmplx.Abs(z); r > 1 {
		return 1 / cmplx.Conj(z), r
	}

	return z, 1
}
