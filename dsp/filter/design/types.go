package design

import (
	"fmt"
	"strings"
)

// FilterType selects a filter family.
type FilterType int

const (
	LowPass FilterType = iota
	HighPass
	BandPass
	Notch
	AllPass
	Bell
	LowShelf
	HighShelf
)

var typeNames = [...]string{
	LowPass:   "lowpass",
	HighPass:  "highpass",
	BandPass:  "bandpass",
	Notch:     "notch",
	AllPass:   "allpass",
	Bell:      "bell",
	LowShelf:  "lowshelf",
	HighShelf: "highshelf",
}

var typeAliases = map[string]FilterType{
	"lp":      LowPass,
	"hp":      HighPass,
	"bp":      BandPass,
	"ap":      AllPass,
	"peak":    Bell,
	"peaking": Bell,
	"ls":      LowShelf,
	"hs":      HighShelf,
}

// Types returns every supported filter family in declaration order.
func Types() []FilterType {
	return []FilterType{LowPass, HighPass, BandPass, Notch, AllPass, Bell, LowShelf, HighShelf}
}

// Valid reports whether t names a known family.
func (t FilterType) Valid() bool {
	return t >= LowPass && t <= HighShelf
}

// HasGain reports whether the family uses the gain parameter.
func (t FilterType) HasGain() bool {
	return t == Bell || t == LowShelf || t == HighShelf
}

func (t FilterType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("FilterType(%d)", int(t))
	}

	return typeNames[t]
}

// ParseFilterType maps a case-insensitive family name to its FilterType.
// Hyphens and underscores are ignored, so "low-shelf" and "LOW_SHELF" both
// parse as LowShelf.
func ParseFilterType(name string) (FilterType, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)

	for i, n := range typeNames {
		if n == key {
			return FilterType(i), nil
		}
	}

	if t, ok := typeAliases[key]; ok {
		return t, nil
	}

	return 0, fmt.Errorf("design: unknown filter type %q: %w", name, ErrInvalidParameter)
}
