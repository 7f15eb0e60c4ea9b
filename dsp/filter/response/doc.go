// Package response evaluates and measures frequency responses of the filters
// in dsp/filter.
//
// Anything with a Response(freqHz, sampleRate) complex128 method is a
// [Responder]: biquad and one-pole coefficients as well as the
// state-variable designs. [Evaluate] returns magnitude and wrapped phase at a
// single frequency, [Sweep] evaluates a grid with continuously unwrapped
// phase, and [FromImpulse] measures the response of a recorded impulse
// response through an FFT.
//
// The substitution z^-1 = e^{-jw} is used throughout, which matches the sign
// convention of the forward DFT.
package response
