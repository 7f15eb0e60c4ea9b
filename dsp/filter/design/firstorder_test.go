package design

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
)

func mustFirstOrder(t *testing.T, ft FilterType, sr, f, gain float64) biquad.FirstOrderCoefficients {
	t.Helper()
	c, err := SynthesizeFirstOrder(ft, sr, f, gain)
	if err != nil {
		t.Fatalf("SynthesizeFirstOrder(%v): %v", ft, err)
	}
	return c
}

func TestSynthesizeFirstOrder_Shapes(t *testing.T) {
	sr := 48000.0
	f := 1000.0

	lp := mustFirstOrder(t, LowPass, sr, f, 0)
	if !almostEqual(lp.DCGain(), 1, 1e-12) || !almostEqual(lp.NyquistGain(), 0, 1e-12) {
		t.Fatalf("lowpass DC=%v Nyquist=%v", lp.DCGain(), lp.NyquistGain())
	}
	if got := lp.MagnitudeDB(f, sr); !almostEqual(got, -3.0103, 1e-3) {
		t.Fatalf("lowpass cutoff=%v dB", got)
	}

	hp := mustFirstOrder(t, HighPass, sr, f, 0)
	if !almostEqual(hp.DCGain(), 0, 1e-12) || !almostEqual(math.Abs(hp.NyquistGain()), 1, 1e-12) {
		t.Fatalf("highpass DC=%v Nyquist=%v", hp.DCGain(), hp.NyquistGain())
	}
	if got := hp.MagnitudeDB(f, sr); !almostEqual(got, -3.0103, 1e-3) {
		t.Fatalf("highpass cutoff=%v dB", got)
	}

	ap := mustFirstOrder(t, AllPass, sr, f, 0)
	if !almostEqual(ap.DCGain(), -1, 1e-12) || !almostEqual(ap.NyquistGain(), 1, 1e-12) {
		t.Fatalf("allpass DC=%v Nyquist=%v", ap.DCGain(), ap.NyquistGain())
	}
	for _, probe := range []float64{20, 500, 1000, 5000, 20000} {
		if got := ap.MagnitudeDB(probe, sr); !almostEqual(got, 0, 1e-9) {
			t.Fatalf("allpass |H(%v)|=%v dB", probe, got)
		}
	}
	if got := ap.Phase(f, sr); !almostEqual(got, math.Pi/2, 1e-9) {
		t.Fatalf("allpass phase at corner=%v, want pi/2", got)
	}

	lpAt := lp.Response(f, sr)
	apAt := ap.Response(f, sr)
	if d := apAt - (1 - 2*lpAt); math.Hypot(real(d), imag(d)) > 1e-12 {
		t.Fatalf("allpass=%v, want 1-2*lowpass=%v", apAt, 1-2*lpAt)
	}
}

func TestSynthesizeFirstOrder_Shelves(t *testing.T) {
	sr := 48000.0
	f := 2000.0

	for _, g := range []float64{-12, -3, 3, 12} {
		ls := mustFirstOrder(t, LowShelf, sr, f, g)
		if got := 20 * math.Log10(ls.DCGain()); !almostEqual(got, g, 1e-9) {
			t.Fatalf("low shelf %v dB: DC=%v dB", g, got)
		}
		if !almostEqual(ls.NyquistGain(), 1, 1e-9) {
			t.Fatalf("low shelf %v dB: Nyquist=%v", g, ls.NyquistGain())
		}
		if got := ls.MagnitudeDB(f, sr); !almostEqual(got, g/2, 1e-9) {
			t.Fatalf("low shelf %v dB: corner=%v dB, want half gain", g, got)
		}

		hs := mustFirstOrder(t, HighShelf, sr, f, g)
		if got := 20 * math.Log10(math.Abs(hs.NyquistGain())); !almostEqual(got, g, 1e-9) {
			t.Fatalf("high shelf %v dB: Nyquist=%v dB", g, got)
		}
		if !almostEqual(hs.DCGain(), 1, 1e-9) {
			t.Fatalf("high shelf %v dB: DC=%v", g, hs.DCGain())
		}
		if got := hs.MagnitudeDB(f, sr); !almostEqual(got, g/2, 1e-9) {
			t.Fatalf("high shelf %v dB: corner=%v dB, want half gain", g, got)
		}
	}
}

func TestSynthesizeFirstOrder_ZeroGainIsIdentity(t *testing.T) {
	for _, ft := range []FilterType{LowShelf, HighShelf} {
		c := mustFirstOrder(t, ft, 48000, 700, 0)
		if c.B0 != 1 || c.B1 != c.A1 {
			t.Fatalf("%v: not an identity: %#v", ft, c)
		}
	}
}

func TestSynthesizeFirstOrder_Stable(t *testing.T) {
	for _, ft := range Types() {
		if !ft.SupportsFirstOrder() {
			continue
		}
		for _, sr := range []float64{8000, 48000, 192000} {
			for _, f := range []float64{1, 100, sr / 4, 0.49 * sr} {
				for _, g := range []float64{-40, 0, 40} {
					c := mustFirstOrder(t, ft, sr, f, g)
					if !c.IsStable() {
						t.Fatalf("%v sr=%v f=%v g=%v unstable: %#v", ft, sr, f, g, c)
					}
				}
			}
		}
	}
}

func TestSynthesizeFirstOrder_Errors(t *testing.T) {
	for _, ft := range []FilterType{BandPass, Notch, Bell, FilterType(99)} {
		if _, err := SynthesizeFirstOrder(ft, 48000, 1000, 0); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("%v: err=%v", ft, err)
		}
	}
	if _, err := SynthesizeFirstOrder(LowPass, 48000, 24000, 0); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("nyquist: err=%v", err)
	}
	if _, err := SynthesizeFirstOrder(LowShelf, 48000, 1000, math.NaN()); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("NaN gain: err=%v", err)
	}
}
