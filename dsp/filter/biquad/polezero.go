package biquad

import (
	"math"
	"math/cmplx"
)

// PoleZeroPair stores the two poles and two zeros of one biquad section.
// For first-order sections, the second pole/zero is 0.
type PoleZeroPair struct {
	Poles [2]complex128
	Zeros [2]complex128
}

// Poles returns the z-plane poles of the section denominator:
//
//	1 + A1*z^-1 + A2*z^-2 = 0
func (c Coefficients) Poles() [2]complex128 {
	return quadraticRoots(1, c.A1, c.A2)
}

// Zeros returns the z-plane zeros of the section numerator:
//
//	B0 + B1*z^-1 + B2*z^-2 = 0
func (c Coefficients) Zeros() [2]complex128 {
	return quadraticRoots(c.B0, c.B1, c.B2)
}

// PoleZeroPair returns both poles and zeros for a single section.
func (c Coefficients) PoleZeroPair() PoleZeroPair {
	return PoleZeroPair{
		Poles: c.Poles(),
		Zeros: c.Zeros(),
	}
}

// IsStable reports whether both poles lie strictly inside the unit circle,
// using the stability triangle |A2| < 1 and |A1| < 1 + A2.
func (c Coefficients) IsStable() bool {
	return math.Abs(c.A2) < 1 && math.Abs(c.A1) < 1+c.A2
}

// MaxZeroRadius returns the largest |zero| of the numerator.
func (c Coefficients) MaxZeroRadius() float64 {
	z := c.Zeros()
	return math.Max(cmplx.Abs(z[0]), cmplx.Abs(z[1]))
}

// IsMinimumPhase reports whether the section is stable and every zero
// satisfies |zero| <= 1+tol.
func (c Coefficients) IsMinimumPhase(tol float64) bool {
	return c.IsStable() && c.MaxZeroRadius() <= 1+tol
}

// Pole returns the z-plane pole -A1 of the one-pole section.
func (c FirstOrderCoefficients) Pole() float64 {
	return -c.A1
}

// Zero returns the z-plane zero -B1/B0, or 0 when the numerator is a pure
// delay or empty.
func (c FirstOrderCoefficients) Zero() float64 {
	if c.B0 == 0 {
		return 0
	}

	return -c.B1 / c.B0
}

// IsStable reports whether |A1| < 1.
func (c FirstOrderCoefficients) IsStable() bool {
	return math.Abs(c.A1) < 1
}

func quadraticRoots(a, b, c float64) [2]complex128 {
	if a == 0 {
		if b == 0 {
			return [2]complex128{}
		}

		return [2]complex128{complex(-c/b, 0), 0}
	}

	discriminant := complex(b*b-4*a*c, 0)
	sqrtDiscriminant := cmplx.Sqrt(discriminant)
	den := complex(2*a, 0)

	return [2]complex128{
		(-complex(b, 0) + sqrtDiscriminant) / den,
		(-complex(b, 0) - sqrtDiscriminant) / den,
	}
}
