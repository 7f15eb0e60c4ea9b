// Package design synthesizes normalized IIR coefficients for the eight
// standard audio filter families.
//
// [Synthesize] returns RBJ cookbook biquads, [SynthesizeFirstOrder] returns
// bilinear one-pole sections, and [SynthesizeMinimumPhase] returns biquads
// whose zeros all lie on or inside the unit circle. Results are consumed by
// dsp/filter/biquad for processing and dsp/filter/response for analysis.
//
// All synthesizers validate their inputs and report problems as errors
// wrapping [ErrInvalidParameter].
package design
