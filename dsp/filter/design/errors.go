package design

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is wrapped by every validation error returned from
// this package and from dsp/filter/svf.
var ErrInvalidParameter = errors.New("invalid filter parameter")

// ValidateSampleRate checks that sampleRate is positive and finite.
func ValidateSampleRate(sampleRate float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("design: sample rate must be > 0 and finite: %g: %w", sampleRate, ErrInvalidParameter)
	}

	return nil
}

// ValidateFrequency checks that freq lies strictly between 0 and Nyquist.
func ValidateFrequency(freq, sampleRate float64) error {
	if err := ValidateSampleRate(sampleRate); err != nil {
		return err
	}

	if freq <= 0 || freq >= sampleRate/2 || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return fmt.Errorf("design: frequency must be in (0, %g): %g: %w", sampleRate/2, freq, ErrInvalidParameter)
	}

	return nil
}

// ValidateQ checks that q is positive and finite.
func ValidateQ(q float64) error {
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return fmt.Errorf("design: q must be > 0 and finite: %g: %w", q, ErrInvalidParameter)
	}

	return nil
}

// ValidateGain checks that gainDB is finite.
func ValidateGain(gainDB float64) error {
	if math.IsNaN(gainDB) || math.IsInf(gainDB, 0) {
		return fmt.Errorf("design: gain must be finite: %g: %w", gainDB, ErrInvalidParameter)
	}

	return nil
}

func validateType(t FilterType) error {
	if !t.Valid() {
		return fmt.Errorf("design: unknown filter type %v: %w", t, ErrInvalidParameter)
	}

	return nil
}

// Validate runs every second-order parameter check and returns the first
// failure.
func Validate(t FilterType, sampleRate, freq, gainDB, q float64) error {
	if err := validateType(t); err != nil {
		return err
	}
	if err := ValidateFrequency(freq, sampleRate); err != nil {
		return err
	}
	if err := ValidateQ(q); err != nil {
		return err
	}

	return ValidateGain(gainDB)
}
