package design_test

import (
	"fmt"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/design"
)

func ExampleSynthesize() {
	coeffs, err := design.Synthesize(design.LowPass, 48000, 1000, 0, design.DefaultQ)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("stable=%v\n", coeffs.IsStable())
	fmt.Printf("cutoff:  %.2f dB\n", coeffs.MagnitudeDB(1000, 48000))
	// Output:
	// stable=true
	// cutoff:  -3.01 dB
}

func ExampleSynthesize_bell() {
	coeffs, _ := design.Synthesize(design.Bell, 48000, 2500, 6, 1.4)
	s := biquad.NewSection(coeffs)
	impulse := s.ImpulseResponse(4)

	fmt.Printf("h[0]=%.4f\n", impulse[0])
	fmt.Printf("center: %.2f dB\n", coeffs.MagnitudeDB(2500, 48000))
	// Output:
	// h[0]=1.0748
	// center: 6.00 dB
}

func ExampleSynthesize_invalid() {
	_, err := design.Synthesize(design.HighPass, 48000, 30000, 0, 1)
	fmt.Println(err)
	// Output:
	// design: frequency must be in (0, 24000): 30000: invalid filter parameter
}

func ExampleSynthesizeFirstOrder() {
	coeffs, _ := design.SynthesizeFirstOrder(design.LowShelf, 48000, 200, -6)

	fmt.Printf("DC:      %.2f dB\n", coeffs.MagnitudeDB(0, 48000))
	fmt.Printf("corner:  %.2f dB\n", coeffs.MagnitudeDB(200, 48000))
	// Output:
	// DC:      -6.00 dB
	// corner:  -3.00 dB
}

func ExampleSynthesizeMinimumPhase() {
	coeffs, _ := design.SynthesizeMinimumPhase(design.HighShelf, 48000, 4000, 9, design.DefaultQ)

	fmt.Printf("minimum phase=%v\n", coeffs.IsMinimumPhase(1e-9))
	// Output:
	// minimum phase=true
}

func ExampleParseFilterType() {
	ft, _ := design.ParseFilterType("Peaking")
	fmt.Println(ft, ft.HasGain())
	// Output:
	// bell true
}
