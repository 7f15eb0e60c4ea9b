package svf

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/design"
	"github.com/cwbudde/algo-iir/internal/testutil"
)

var onePoleFamilies = []design.FilterType{
	design.LowPass, design.HighPass, design.AllPass, design.LowShelf, design.HighShelf,
}

func TestDesignOnePole_MatchesBilinear(t *testing.T) {
	for _, ft := range onePoleFamilies {
		for _, f := range []float64{30, 700, 5000, 20000} {
			for _, g := range []float64{-12, 0, 9} {
				want, err := design.SynthesizeFirstOrder(ft, 48000, f, g)
				require.NoError(t, err)

				c, err := DesignOnePole(ft, 48000, f, g)
				require.NoError(t, err)

				got := c.FirstOrder()
				require.InDeltaf(t, want.B0, got.B0, 1e-12, "%v f=%v g=%v B0", ft, f, g)
				require.InDeltaf(t, want.B1, got.B1, 1e-12, "%v f=%v g=%v B1", ft, f, g)
				require.InDeltaf(t, want.A1, got.A1, 1e-12, "%v f=%v g=%v A1", ft, f, g)
			}
		}
	}
}

func TestOnePole_MatchesDirectForm(t *testing.T) {
	input := testutil.DeterministicNoise(23, 1, 2048)

	for _, ft := range onePoleFamilies {
		c, err := DesignOnePole(ft, 48000, 1200, 6)
		require.NoError(t, err)

		p := NewOnePole(c)
		ref := biquad.NewOnePole(c.FirstOrder())
		for i, x := range input {
			require.InDeltaf(t, ref.ProcessSample(x), p.ProcessSample(x), 1e-9, "%v sample %d", ft, i)
		}
	}
}

func TestOnePole_TapsComplement(t *testing.T) {
	c, err := DesignOnePole(design.LowPass, 48000, 900, 0)
	require.NoError(t, err)
	p := NewOnePole(c)

	for i, x := range testutil.DeterministicNoise(29, 1, 512) {
		o := p.Process(x)
		require.InDeltaf(t, x, o.Low+o.High, 1e-12, "sample %d", i)
	}
}

func TestOnePole_AllPassGain(t *testing.T) {
	c, err := DesignOnePole(design.AllPass, 48000, 1000, 0)
	require.NoError(t, err)

	fo := c.FirstOrder()
	require.InDelta(t, -1, fo.DCGain(), 1e-12)
	require.InDelta(t, 1, fo.NyquistGain(), 1e-12)
	for _, probe := range []float64{10, 1000, 15000} {
		require.InDelta(t, 0, c.MagnitudeDB(probe, 48000), 1e-9)
	}

	p := NewOnePole(c)
	lp := NewOnePole(OnePoleCoefficients{Type: design.LowPass, G: c.G, A1: c.A1, M1: 1})
	var y float64
	for i, x := range testutil.DeterministicNoise(37, 1, 256) {
		y = p.ProcessSample(x)
		require.InDeltaf(t, x-2*lp.ProcessSample(x), y, 1e-12, "sample %d", i)
	}

	p.Reset()
	for i := 0; i < 20000; i++ {
		y = p.ProcessSample(1)
	}
	require.InDelta(t, -1, y, 1e-9)
}

func TestOnePole_DCSettlesAndRetunes(t *testing.T) {
	lo, err := DesignOnePole(design.LowPass, 48000, 100, 0)
	require.NoError(t, err)
	hi, err := DesignOnePole(design.LowPass, 48000, 10000, 0)
	require.NoError(t, err)

	p := NewOnePole(lo)
	for i := 0; i < 20000; i++ {
		p.ProcessSample(1)
	}
	p.SetCoefficients(hi)
	require.InDelta(t, 1, p.ProcessSample(1), 1e-9)
}

func TestOnePole_BlockStateReset(t *testing.T) {
	c, err := DesignOnePole(design.HighShelf, 48000, 3000, 6)
	require.NoError(t, err)
	input := testutil.DeterministicNoise(31, 1, 333)

	a := NewOnePole(c)
	want := make([]float64, len(input))
	for i, x := range input {
		want[i] = a.ProcessSample(x)
	}

	b := NewOnePole(c)
	got := append([]float64(nil), input...)
	b.ProcessBlock(got)
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)

	saved := b.State()
	require.Zero(t, saved.IC2)
	next := b.ProcessSample(0.1)
	b.SetState(saved)
	require.Equal(t, next, b.ProcessSample(0.1))

	b.Reset()
	require.Equal(t, State{}, b.State())
}

func TestDesignOnePole_Errors(t *testing.T) {
	for _, ft := range []design.FilterType{design.BandPass, design.Notch, design.Bell} {
		_, err := DesignOnePole(ft, 48000, 1000, 0)
		require.ErrorIs(t, err, design.ErrInvalidParameter)
	}
	_, err := DesignOnePole(design.LowPass, 48000, 0, 0)
	require.ErrorIs(t, err, design.ErrInvalidParameter)
	_, err = DesignOnePole(design.LowPass, 0, 1000, 0)
	require.ErrorIs(t, err, design.ErrInvalidParameter)
}
