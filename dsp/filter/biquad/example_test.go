package biquad_test

import (
	"fmt"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/design"
)

func ExampleSection_ProcessSample() {
	c, err := design.Synthesize(design.LowPass, 48000, 1000, 0, design.DefaultQ)
	if err != nil {
		fmt.Println(err)
		return
	}
	s := biquad.NewSection(c)

	// Process an impulse.
	for i := range 6 {
		var x float64
		if i == 0 {
			x = 1
		}

		y := s.ProcessSample(x)
		fmt.Printf("y[%d] = %.6f\n", i, y)
	}
	// Output:
	// y[0] = 0.003916
	// y[1] = 0.014941
	// y[2] = 0.027785
	// y[3] = 0.038024
	// y[4] = 0.045936
	// y[5] = 0.051792
}

func ExampleSection_ProcessBlock() {
	c, err := design.Synthesize(design.LowPass, 48000, 1000, 0, design.DefaultQ)
	if err != nil {
		fmt.Println(err)
		return
	}
	s := biquad.NewSection(c)
	buf := []float64{1, 0, 0, 0}
	s.ProcessBlock(buf)

	fmt.Printf("block: %.4f %.4f %.4f %.4f\n", buf[0], buf[1], buf[2], buf[3])
	fmt.Printf("cutoff: %+.2f dB\n", c.MagnitudeDB(1000, 48000))
	// Output:
	// block: 0.0039 0.0149 0.0278 0.0380
	// cutoff: -3.01 dB
}

func ExampleOnePole_ProcessSample() {
	p := biquad.NewOnePole(biquad.FirstOrderCoefficients{B0: 0.2, B1: 0.2, A1: -0.6})

	// Step response converges to the unity DC gain.
	var y float64
	for range 64 {
		y = p.ProcessSample(1)
	}
	fmt.Printf("dc=%.4f step=%.4f\n", p.Coefficients().DCGain(), y)
	// Output:
	// dc=1.0000 step=1.0000
}

func ExampleCoefficients_MagnitudeDB() {
	sr := 48000.0
	c, err := design.Synthesize(design.Bell, sr, 1000, 6, 1)
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, freq := range []float64{100, 1000, 10000, 20000} {
		db := c.MagnitudeDB(freq, sr)
		fmt.Printf("%6.0f Hz: %+.2f dB\n", freq, db)
	}
	// Output:
	//    100 Hz: +0.07 dB
	//   1000 Hz: +6.00 dB
	//  10000 Hz: +0.05 dB
	//  20000 Hz: +0.00 dB
}

func ExampleCoefficients_PoleZeroPair() {
	c, err := design.Synthesize(design.Notch, 48000, 1000, 0, 2)
	if err != nil {
		fmt.Println(err)
		return
	}

	pair := c.PoleZeroPair()
	fmt.Printf("poles: %.4f%+.4fi, %.4f%+.4fi\n",
		real(pair.Poles[0]), imag(pair.Poles[0]),
		real(pair.Poles[1]), imag(pair.Poles[1]))
	fmt.Printf("zeros: %.4f%+.4fi, %.4f%+.4fi\n",
		real(pair.Zeros[0]), imag(pair.Zeros[0]),
		real(pair.Zeros[1]), imag(pair.Zeros[1]))
	fmt.Printf("stable=%v max|zero|=%.4f\n", c.IsStable(), c.MaxZeroRadius())
	// Output:
	// poles: 0.9601+0.1224i, 0.9601-0.1224i
	// zeros: 0.9914+0.1305i, 0.9914-0.1305i
	// stable=true max|zero|=1.0000
}
