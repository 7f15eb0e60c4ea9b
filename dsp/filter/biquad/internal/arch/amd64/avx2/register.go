//go:build amd64 && !purego

// Package avx2 registers 4x-unrolled scalar kernels selected on AVX2-capable
// CPUs.
package avx2

import (
	"github.com/cwbudde/algo-iir/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:                   "avx2",
		SIMDLevel:              cpu.SIMDAVX2,
		Priority:               20,
		ProcessBlock:           processBlock,
		ProcessFirstOrderBlock: processFirstOrderBlock,
	})
}

// TODO: replace with an explicit AVX2 asm kernel once a transposed
// multi-channel layout exists; a single recursion cannot be vectorized.
func processBlock(c registry.Coefficients, s1, s2 float64, buf []float64) (newS1, newS2 float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	i := 0
	n := len(buf)
	for ; i+3 < n; i += 4 {
		x0 := buf[i]
		y0 := b0*x0 + s1
		s1n0 := b1*x0 - a1*y0 + s2
		s2n0 := b2*x0 - a2*y0

		x1 := buf[i+1]
		y1 := b0*x1 + s1n0
		s1n1 := b1*x1 - a1*y1 + s2n0
		s2n1 := b2*x1 - a2*y1

		x2 := buf[i+2]
		y2 := b0*x2 + s1n1
		s1n2 := b1*x2 - a1*y2 + s2n1
		s2n2 := b2*x2 - a2*y2

		x3 := buf[i+3]
		y3 := b0*x3 + s1n2
		s1 = b1*x3 - a1*y3 + s2n2
		s2 = b2*x3 - a2*y3

		buf[i] = y0
		buf[i+1] = y1
		buf[i+2] = y2
		buf[i+3] = y3
	}

	for ; i < n; i++ {
		x := buf[i]
		y := b0*x + s1
		s1 = b1*x - a1*y + s2
		s2 = b2*x - a2*y
		buf[i] = y
	}

	return s1, s2
}

func processFirstOrderBlock(c registry.FirstOrderCoefficients, s float64, buf []float64) float64 {
	b0, b1, a1 := c.B0, c.B1, c.A1

	i := 0
	n := len(buf)
	for ; i+3 < n; i += 4 {
		y0 := b0*buf[i] + s
		s = b1*buf[i] - a1*y0

		y1 := b0*buf[i+1] + s
		s = b1*buf[i+1] - a1*y1

		y2 := b0*buf[i+2] + s
		s = b1*buf[i+2] - a1*y2

		y3 := b0*buf[i+3] + s
		s = b1*buf[i+3] - a1*y3

		buf[i], buf[i+1], buf[i+2], buf[i+3] = y0, y1, y2, y3
	}

	for ; i < n; i++ {
		x := buf[i]
		y := b0*x + s
		s = b1*x - a1*y
		buf[i] = y
	}

	return s
}
