// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"fmt"
	"math"
)

// Space identifies an RGB working space: a set of primaries, a native
// reference white and a companding function. The zero value is [SRGB].
type Space int32

const (
	SRGB Space = iota
	AdobeRGB1998
	AppleRGB
	BestRGB
	BetaRGB
	BruceRGB
	CIERGB
	ColorMatchRGB
	DonRGB4
	ECIRGBv2
	EktaSpacePS5
	NTSCRGB
	PALSECAMRGB
	ProPhotoRGB
	SMPTECRGB
	WideGamutRGB
)

// Companding is the kind of nonlinear encoding a [Space] applies
// between linear light and its stored component values.
type Companding int32

const (
	// CompandingGamma is a plain power law x^γ.
	CompandingGamma Companding = iota
	// CompandingSRGB is the piecewise sRGB curve.
	CompandingSRGB
	// CompandingLStar is the L* curve of ECI RGB v2.
	CompandingLStar
)

type spaceInfo struct {
	name       string
	white      White
	companding Companding
	gamma      float64
}

var spaces = [...]spaceInfo{
	SRGB:          {"sRGB", WhiteD65, CompandingSRGB, 0},
	AdobeRGB1998:  {"Adobe RGB (1998)", WhiteD65, CompandingGamma, 2.2},
	AppleRGB:      {"Apple RGB", WhiteD65, CompandingGamma, 1.8},
	BestRGB:       {"Best RGB", WhiteD50, CompandingGamma, 2.2},
	BetaRGB:       {"Beta RGB", WhiteD50, CompandingGamma, 2.2},
	BruceRGB:      {"Bruce RGB", WhiteD65, CompandingGamma, 2.2},
	CIERGB:        {"CIE RGB", WhiteE, CompandingGamma, 2.2},
	ColorMatchRGB: {"ColorMatch RGB", WhiteD50, CompandingGamma, 1.8},
	DonRGB4:       {"Don RGB 4", WhiteD50, CompandingGamma, 2.2},
	ECIRGBv2:      {"ECI RGB v2", WhiteD50, CompandingLStar, 0},
	EktaSpacePS5:  {"Ekta Space PS5", WhiteD50, CompandingGamma, 2.2},
	NTSCRGB:       {"NTSC RGB", WhiteC, CompandingGamma, 2.2},
	PALSECAMRGB:   {"PAL / SECAM", WhiteD65, CompandingGamma, 2.2},
	ProPhotoRGB:   {"ProPhoto RGB", WhiteD50, CompandingGamma, 1.8},
	SMPTECRGB:     {"SMPTE-C RGB", WhiteD65, CompandingGamma, 2.2},
	WideGamutRGB:  {"Wide Gamut RGB", WhiteD50, CompandingGamma, 2.2},
}

func (s Space) info() spaceInfo {
	if s < 0 || int(s) >= len(spaces) {
		return spaces[SRGB]
	}
	return spaces[s]
}

// Name returns the human readable name of the space, e.g. "Adobe RGB (1998)".
func (s Space) Name() string {
	return s.info().name
}

// NativeWhite returns the reference white the space is defined against.
func (s Space) NativeWhite() White {
	return s.info().white
}

// Companding returns the companding function used by the space.
func (s Space) Companding() Companding {
	return s.info().companding
}

// Gamma returns the power-law exponent of the space. It returns
// [ErrMissingGamma] for spaces that use sRGB or L* companding.
func (s Space) Gamma() (float64, error) {
	inf := s.info()
	if inf.companding != CompandingGamma || inf.gamma == 0 {
		return 0, fmt.Errorf("cie.Space.Gamma: %w: %s", ErrMissingGamma, s)
	}
	return inf.gamma, nil
}

// ToLinear removes the companding of the space from the given
// component in [0, 1], returning linear light.
func (s Space) ToLinear(v float64) (float64, error) {
	switch s.Companding() {
	case CompandingSRGB:
		return SRGBToLinearComp(v), nil
	case CompandingLStar:
		return LStarToLinearComp(v), nil
	}
	g, err := s.Gamma()
	if err != nil {
		return 0, err
	}
	return math.Pow(v, g), nil
}

// FromLinear applies the companding of the space to the given
// linear light component in [0, 1].
func (s Space) FromLinear(v float64) (float64, error) {
	switch s.Companding() {
	case CompandingSRGB:
		return SRGBFromLinearComp(v), nil
	case CompandingLStar:
		return LStarFromLinearComp(v), nil
	}
	g, err := s.Gamma()
	if err != nil {
		return 0, err
	}
	return math.Pow(v, 1/g), nil
}
