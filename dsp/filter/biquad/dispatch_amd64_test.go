//go:build amd64 && !purego

package biquad

import (
	"sync"
	"testing"

	archregistry "github.com/cwbudde/algo-iir/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func resetKernelDispatchForTest() {
	processBlockImpl = nil
	processFirstOrderBlockImpl = nil
	kernelInitOnce = sync.Once{}
}

func TestProcessBlockDispatch_AMD64Modes(t *testing.T) {
	tests := []struct {
		name     string
		features cpu.Features
		wantImpl string
	}{
		{
			name: "generic-forced",
			features: cpu.Features{
				ForceGeneric: true,
				Architecture: "amd64",
			},
			wantImpl: "generic",
		},
		{
			name: "sse2-only",
			features: cpu.Features{
				HasSSE2:      true,
				HasAVX2:      false,
				Architecture: "amd64",
			},
			wantImpl: "generic",
		},
		{
			name: "avx2",
			features: cpu.Features{
				HasSSE2:      true,
				HasAVX2:      true,
				Architecture: "amd64",
			},
			wantImpl: "avx2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu.SetForcedFeatures(tt.features)
			defer cpu.ResetDetection()

			resetKernelDispatchForTest()
			defer resetKernelDispatchForTest()

			entry := archregistry.Global.Lookup(cpu.DetectFeatures())
			if entry == nil {
				t.Fatal("Lookup returned nil")
			}
			if entry.Name != tt.wantImpl {
				t.Fatalf("expected %q, got %q", tt.wantImpl, entry.Name)
			}

			input := []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8, -0.1}

			sRef := NewSection(lowpassish)
			sGot := NewSection(lowpassish)
			ref := make([]float64, len(input))
			for i, x := range input {
				ref[i] = sRef.ProcessSample(x)
			}
			got := append([]float64(nil), input...)
			sGot.ProcessBlock(got)
			for i := range got {
				if !almostEqual(got[i], ref[i], eps) {
					t.Fatalf("biquad sample %d mismatch: got %.15f, want %.15f", i, got[i], ref[i])
				}
			}

			pRef := NewOnePole(onePoleLP)
			pGot := NewOnePole(onePoleLP)
			for i, x := range input {
				ref[i] = pRef.ProcessSample(x)
			}
			got = append(got[:0], input...)
			pGot.ProcessBlock(got)
			for i := range got {
				if !almostEqual(got[i], ref[i], eps) {
					t.Fatalf("one-pole sample %d mismatch: got %.15f, want %.15f", i, got[i], ref[i])
				}
			}
		})
	}
}
