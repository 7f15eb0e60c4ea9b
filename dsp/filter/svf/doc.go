// Package svf implements topology-preserving-transform state-variable
// filters.
//
// A second-order [Filter] produces low-pass, band-pass, high-pass and notch
// taps from a single integrator update, and mixes them into any of the eight
// families of dsp/filter/design. Its two integrator memories are independent
// of the coefficients, so cutoff and Q can be changed between samples without
// the transients a direct-form biquad shows under the same modulation.
//
// [OnePole] is the first-order counterpart with low-pass and high-pass taps.
//
// Every coefficient set converts to the equivalent DF-II-T coefficients of
// dsp/filter/biquad for response analysis.
package svf
