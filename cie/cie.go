// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie holds the reference data of the CIE colorimetric system
// used by the converters: RGB working spaces with their companding and
// RGB <-> XYZ matrices, reference white points, and the primitive
// transforms between XYZ, xyY, L*a*b* and L*u*v*.
//
// All tables are package-level values that are never mutated after
// initialization, so everything here is safe for concurrent use.
package cie

import (
	"errors"
	"math"
)

// CIE constants, in their exact rational form.
const (
	// Epsilon is the CIE ε constant (216/24389, about 0.008856)
	// separating the linear and cube-root segments of the L* curve.
	Epsilon = 216.0 / 24389.0

	// Kappa is the CIE κ constant (24389/27, about 903.3), the slope
	// of the linear segment of the L* curve.
	Kappa = 24389.0 / 27.0
)

var (
	// ErrUnsupportedCombination is returned when no prepared matrices
	// exist for a color space and reference white pair.
	ErrUnsupportedCombination = errors.New("unsupported color space and reference white combination")

	// ErrMissingGamma is returned when a power-law gamma is requested
	// for a color space that uses a different companding function.
	ErrMissingGamma = errors.New("color space has no gamma")

	// ErrUnknownSpace is returned when a color space identifier is not recognized.
	ErrUnknownSpace = errors.New("unknown color space")

	// ErrUnknownWhite is returned when a reference white identifier is not recognized.
	ErrUnknownWhite = errors.New("unknown reference white")
)

// LabCompress is the compressive function f(t) of the CIE L*a*b* and
// L*u*v* definitions, applied to a component already divided by
// the reference white.
func LabCompress(t float64) float64 {
	if t > Epsilon {
		return math.Cbrt(t)
	}
	return (Kappa*t + 16) / 116
}

// LabUncompress is the inverse of [LabCompress] for the X and Z
// components: it tests the cubed value against [Epsilon].
func LabUncompress(f float64) float64 {
	f3 := f * f * f
	if f3 > Epsilon {
		return f3
	}
	return (116*f - 16) / Kappa
}

// LToY returns the relative luminance Y (0-1) for the given L* (0-100).
// The branch compares L* against κε, which is not the same test as
// the one in [LabUncompress].
func LToY(l float64) float64 {
	if l > Kappa*Epsilon {
		fy := (l + 16) / 116
		return fy * fy * fy
	}
	return l / Kappa
}

// YToL returns L* (0-100) for the given relative luminance Y (0-1).
func YToL(y float64) float64 {
	if y > Epsilon {
		return 116*math.Cbrt(y) - 16
	}
	return Kappa * y
}
