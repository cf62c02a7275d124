// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

// SRGBToLinearComp converts an sRGB companded component in [0, 1]
// to linear light: the linear segment applies up to 0.04045.
func SRGBToLinearComp(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp converts a linear light component in [0, 1]
// to the sRGB companded value: the linear segment applies up to 0.0031308.
func SRGBFromLinearComp(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return math.Pow(v, 1/2.4)*1.055 - 0.055
}

// SRGBToLinear converts sRGB companded r, g, b in [0, 1] to linear light.
func SRGBToLinear(r, g, b float64) (rl, gl, bl float64) {
	return SRGBToLinearComp(r), SRGBToLinearComp(g), SRGBToLinearComp(b)
}

// SRGBFromLinear converts linear light r, g, b in [0, 1] to sRGB companded values.
func SRGBFromLinear(rl, gl, bl float64) (r, g, b float64) {
	return SRGBFromLinearComp(rl), SRGBFromLinearComp(gl), SRGBFromLinearComp(bl)
}

// LStarToLinearComp converts an L* companded component in [0, 1] to
// linear light. The threshold 0.08 is on the companded side (κε/100).
func LStarToLinearComp(v float64) float64 {
	if v <= 0.08 {
		return 100 * v / Kappa
	}
	f := (v + 0.16) / 1.16
	return f * f * f
}

// LStarFromLinearComp converts a linear light component in [0, 1] to
// its L* companded value. The threshold is [Epsilon] on the linear side.
func LStarFromLinearComp(v float64) float64 {
	if v <= Epsilon {
		return v * Kappa / 100
	}
	return 1.16*math.Cbrt(v) - 0.16
}
