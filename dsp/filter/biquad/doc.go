// Package biquad provides the recursive processing engines and analysis
// methods for one- and two-pole IIR filters.
//
// [Coefficients] describes a second-order section
//
//	H(z) = (B0 + B1*z^-1 + B2*z^-2) / (1 + A1*z^-1 + A2*z^-2)
//
// and [FirstOrderCoefficients] its one-pole reduction. A [Section] or
// [OnePole] pairs a coefficient set with its Direct Form II Transposed state
// and is processed one sample at a time (or in place, block-wise).
//
// Coefficients are immutable values. Replacing them on a running engine is a
// single struct assignment and keeps the state, so a control thread can hand
// a new set to the audio thread through any pointer-swap discipline of its
// choosing. The engines themselves are not safe for concurrent use.
//
// This package provides the runtime and analysis only. Coefficient synthesis
// lives in dsp/filter/design.
package biquad
