// Command bode prints the frequency response of one synthesized filter.
//
// Usage:
//
//	bode [flags]
//
// Examples:
//
//	bode -type lowpass -freq 1000
//	bode -type bell -freq 2500 -gain 6 -q 1.4 -points 48
//	bode -type highshelf -gain -9 -minphase
//	bode -type lowshelf -order 1 -engine svf -gain 6
//	bode -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/design"
	"github.com/cwbudde/algo-iir/dsp/filter/response"
	"github.com/cwbudde/algo-iir/dsp/filter/svf"
)

type config struct {
	typeName   string
	sampleRate float64
	freq       float64
	gainDB     float64
	q          float64
	order      int
	minPhase   bool
	engine     string
	points     int
	minFreq    float64
	maxFreq    float64
}

// filterInfo is what the report needs from a synthesized filter.
type filterInfo struct {
	responder  response.Responder
	coeffLine  string
	stable     bool
	zeroRadius float64
}

var errUsage = errors.New("bode: invalid arguments")

func main() {
	var cfg config

	flag.StringVar(&cfg.typeName, "type", "lowpass", "filter family (use -list to see available)")
	flag.Float64Var(&cfg.sampleRate, "fs", 48000, "sample rate in Hz")
	flag.Float64Var(&cfg.freq, "freq", 1000, "cutoff or center frequency in Hz")
	flag.Float64Var(&cfg.gainDB, "gain", 0, "gain in dB for bell and shelf families")
	flag.Float64Var(&cfg.q, "q", design.DefaultQ, "quality factor (second order only)")
	flag.IntVar(&cfg.order, "order", 2, "filter order: 1 or 2")
	flag.BoolVar(&cfg.minPhase, "minphase", false, "use the minimum-phase synthesizer (biquad engine, order 2)")
	flag.StringVar(&cfg.engine, "engine", "biquad", "coefficient engine: biquad or svf")
	flag.IntVar(&cfg.points, "points", 32, "number of log-spaced frequencies")
	flag.Float64Var(&cfg.minFreq, "min", 20, "lowest frequency in Hz")
	flag.Float64Var(&cfg.maxFreq, "max", 20000, "highest frequency in Hz (clipped to Nyquist)")
	list := flag.Bool("list", false, "list available filter families")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: bode [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints coefficients, stability and a magnitude/phase/group-delay table\n")
		fmt.Fprintf(os.Stderr, "for one synthesized filter.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  bode -type bell -freq 2500 -gain 6 -q 1.4\n")
		fmt.Fprintf(os.Stderr, "  bode -type lowshelf -order 1 -engine svf -gain 6\n")
	}
	flag.Parse()

	if *list {
		printList(os.Stdout)
		return
	}

	if err := run(cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
}

func printList(w io.Writer) {
	for _, t := range design.Types() {
		orders := "2"
		if t.SupportsFirstOrder() {
			orders = "1,2"
		}
		fmt.Fprintf(w, "%s\torder %s\n", t, orders)
	}
}

func run(cfg config, w io.Writer) error {
	ft, err := design.ParseFilterType(cfg.typeName)
	if err != nil {
		return err
	}

	info, err := synthesize(ft, cfg)
	if err != nil {
		return err
	}

	maxFreq := math.Min(cfg.maxFreq, cfg.sampleRate/2)
	freqs, err := response.LogFrequencies(cfg.minFreq, maxFreq, cfg.points)
	if err != nil {
		return err
	}

	samples, err := response.Sweep(info.responder, freqs, cfg.sampleRate)
	if err != nil {
		return err
	}

	gd, err := response.GroupDelay(samples, cfg.sampleRate)
	if err != nil {
		return err
	}

	return printReport(w, ft, cfg, info, samples, gd)
}

func synthesize(ft design.FilterType, cfg config) (filterInfo, error) {
	switch {
	case cfg.order != 1 && cfg.order != 2:
		return filterInfo{}, fmt.Errorf("%w: order must be 1 or 2, got %d", errUsage, cfg.order)
	case cfg.engine != "biquad" && cfg.engine != "svf":
		return filterInfo{}, fmt.Errorf("%w: unknown engine %q", errUsage, cfg.engine)
	case cfg.minPhase && (cfg.order != 2 || cfg.engine != "biquad"):
		return filterInfo{}, fmt.Errorf("%w: -minphase requires -order 2 -engine biquad", errUsage)
	}

	if cfg.order == 1 {
		var c biquad.FirstOrderCoefficients
		if cfg.engine == "svf" {
			sc, err := svf.DesignOnePole(ft, cfg.sampleRate, cfg.freq, cfg.gainDB)
			if err != nil {
				return filterInfo{}, err
			}
			c = sc.FirstOrder()
		} else {
			var err error
			if c, err = design.SynthesizeFirstOrder(ft, cfg.sampleRate, cfg.freq, cfg.gainDB); err != nil {
				return filterInfo{}, err
			}
		}

		return filterInfo{
			responder:  c,
			coeffLine:  fmt.Sprintf("b0=%.12g b1=%.12g a1=%.12g", c.B0, c.B1, c.A1),
			stable:     c.IsStable(),
			zeroRadius: math.Abs(c.Zero()),
		}, nil
	}

	var c biquad.Coefficients
	var err error
	switch {
	case cfg.engine == "svf":
		var sc svf.Coefficients
		if sc, err = svf.Design(ft, cfg.sampleRate, cfg.freq, cfg.gainDB, cfg.q); err == nil {
			c = sc.Biquad()
		}
	case cfg.minPhase:
		c, err = design.SynthesizeMinimumPhase(ft, cfg.sampleRate, cfg.freq, cfg.gainDB, cfg.q)
	default:
		c, err = design.Synthesize(ft, cfg.sampleRate, cfg.freq, cfg.gainDB, cfg.q)
	}
	if err != nil {
		return filterInfo{}, err
	}

	return filterInfo{
		responder:  c,
		coeffLine:  fmt.Sprintf("b0=%.12g b1=%.12g b2=%.12g a1=%.12g a2=%.12g", c.B0, c.B1, c.B2, c.A1, c.A2),
		stable:     c.IsStable(),
		zeroRadius: c.MaxZeroRadius(),
	}, nil
}

func printReport(w io.Writer, ft design.FilterType, cfg config, info filterInfo, samples []response.Sample, gd []float64) error {
	fmt.Fprintf(w, "%s order=%d engine=%s fs=%g freq=%g", ft, cfg.order, cfg.engine, cfg.sampleRate, cfg.freq)
	if ft.HasGain() {
		fmt.Fprintf(w, " gain=%gdB", cfg.gainDB)
	}
	if cfg.order == 2 {
		fmt.Fprintf(w, " q=%g", cfg.q)
	}
	if cfg.minPhase {
		fmt.Fprint(w, " minphase")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, info.coeffLine)
	fmt.Fprintf(w, "stable=%v max|zero|=%.6f\n", info.stable, info.zeroRadius)

	dcDB, _ := response.Evaluate(info.responder, 0, cfg.sampleRate)
	nyq := info.responder.Response(cfg.sampleRate/2, cfg.sampleRate)
	fmt.Fprintf(w, "DC=%.2fdB Nyquist=%.2fdB\n\n", dcDB, 20*math.Log10(cmplx.Abs(nyq)))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Freq [Hz]\tMag [dB]\tPhase [deg]\tGroup Delay [samples]\n")
	fmt.Fprintf(tw, "---------\t--------\t-----------\t---------------------\n")
	for i, s := range samples {
		fmt.Fprintf(tw, "%.1f\t%.3f\t%.2f\t%.3f\n", s.Frequency, s.MagnitudeDB, s.Phase*180/math.Pi, gd[i])
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("bode: failed to flush output: %w", err)
	}

	return nil
}
