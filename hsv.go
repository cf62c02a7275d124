// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorconv

import (
	"fmt"
	"math"

	"cogentcore.org/colorconv/base/num"
)

// HSV is a hue, saturation, value color. H is in degrees [0, 360);
// S, V and the alpha A are percentages [0, 100].
type HSV struct {
	H, S, V, A float64
}

// HSL is a hue, saturation, lightness color. H is in degrees [0, 360);
// S, L and the alpha A are percentages [0, 100].
type HSL struct {
	H, S, L, A float64
}

// HSI is a hue, saturation, intensity color. H is in degrees [0, 360);
// S, I and the alpha A are percentages [0, 100].
type HSI struct {
	H, S, I, A float64
}

func (c HSV) Kind() Kind { return KindHSV }
func (c HSL) Kind() Kind { return KindHSL }
func (c HSI) Kind() Kind { return KindHSI }

func (c HSV) String() string { return fmt.Sprintf("hsv(%g, %g, %g, %g)", c.H, c.S, c.V, c.A) }
func (c HSL) String() string { return fmt.Sprintf("hsl(%g, %g, %g, %g)", c.H, c.S, c.L, c.A) }
func (c HSI) String() string { return fmt.Sprintf("hsi(%g, %g, %g, %g)", c.H, c.S, c.I, c.A) }

// RotateHue returns the color with its hue rotated by the given
// number of degrees, wrapped into [0, 360).
func (c HSV) RotateHue(degrees float64) HSV {
	c.H = num.WrapHue(c.H + degrees)
	return c
}

// RotateHue returns the color with its hue rotated by the given
// number of degrees, wrapped into [0, 360).
func (c HSL) RotateHue(degrees float64) HSL {
	c.H = num.WrapHue(c.H + degrees)
	return c
}

// RotateHue returns the color with its hue rotated by the given
// number of degrees, wrapped into [0, 360).
func (c HSI) RotateHue(degrees float64) HSI {
	c.H = num.WrapHue(c.H + degrees)
	return c
}

// hexHue returns the hexagonal hue in degrees of the given unit RGB
// channels, with max and chroma as already computed. The sector is chosen
// by the first channel equal to max, in the order R, G, B.
func hexHue(r, g, b, mx, chroma float64) float64 {
	if chroma == 0 {
		return 0
	}
	var h float64
	switch mx {
	case r:
		h = num.Fmod((g-b)/chroma, 6)
	case g:
		h = (b-r)/chroma + 2
	default:
		h = (r-g)/chroma + 4
	}
	return num.WrapHue(h * 60)
}

// roundHue rounds the hue if requested, keeping it in [0, 360).
func roundHue(h float64, round bool) float64 {
	return num.WrapHue(num.RoundIf(h, round))
}

// pct converts a unit value to a clamped, optionally rounded percentage.
func pct(v float64, round bool) float64 {
	return num.RoundIf(num.Clamp(v, 0, 1)*100, round)
}

// unitPct converts a percentage to a clamped unit value.
func unitPct(v float64) float64 {
	return num.Clamp(v, 0, 100) / 100
}

// hueSector returns the unit RGB channels, before the lightness offset m
// is added, for the given hue, chroma and secondary component x.
func hueSector(h, chroma, x float64) (r, g, b float64) {
	switch {
	case h < 60:
		return chroma, x, 0
	case h < 120:
		return x, chroma, 0
	case h < 180:
		return 0, chroma, x
	case h < 240:
		return 0, x, chroma
	case h < 300:
		return x, 0, chroma
	default:
		return chroma, 0, x
	}
}

// hueX returns the secondary component factor 1 - |(h/60) mod 2 - 1|.
func hueX(h float64) float64 {
	return 1 - math.Abs(num.Fmod(h/60, 2)-1)
}

// RGBToHSV converts an RGB color to HSV. V is the largest channel as a
// percentage of the channel range, independent of the bit depth.
func RGBToHSV(c RGB, o Options) HSV {
	r, g, b, a := c.unit()
	mx := max(r, g, b)
	chroma := mx - min(r, g, b)
	var s float64
	if chroma != 0 {
		s = chroma / mx
	}
	return HSV{
		H: roundHue(hexHue(r, g, b, mx, chroma), o.Round),
		S: pct(s, o.Round),
		V: pct(mx, o.Round),
		A: pct(a, o.Round),
	}
}

// HSVToRGB converts an HSV color to RGB at the bit depth of the
// options (8 if unspecified).
func HSVToRGB(c HSV, o Options) RGB {
	h := num.WrapHue(c.H)
	s, v := unitPct(c.S), unitPct(c.V)
	chroma := v * s
	r, g, b := hueSector(h, chroma, chroma*hueX(h))
	m := v - chroma
	return rgbFromUnit(r+m, g+m, b+m, unitPct(c.A), o.bitDepth(DefaultBitDepth), o.Round)
}

// RGBToHSL converts an RGB color to HSL.
func RGBToHSL(c RGB, o Options) HSL {
	r, g, b, a := c.unit()
	mx, mn := max(r, g, b), min(r, g, b)
	chroma := mx - mn
	l := (mx + mn) / 2
	var s float64
	if chroma != 0 {
		s = chroma / (1 - math.Abs(2*l-1))
	}
	return HSL{
		H: roundHue(hexHue(r, g, b, mx, chroma), o.Round),
		S: pct(s, o.Round),
		L: pct(l, o.Round),
		A: pct(a, o.Round),
	}
}

// HSLToRGB converts an HSL color to RGB at the bit depth of the
// options (8 if unspecified).
func HSLToRGB(c HSL, o Options) RGB {
	h := num.WrapHue(c.H)
	s, l := unitPct(c.S), unitPct(c.L)
	chroma := (1 - math.Abs(2*l-1)) * s
	r, g, b := hueSector(h, chroma, chroma*hueX(h))
	m := l - chroma/2
	return rgbFromUnit(r+m, g+m, b+m, unitPct(c.A), o.bitDepth(DefaultBitDepth), o.Round)
}

// RGBToHSI converts an RGB color to HSI. Saturation is 0 both for
// achromatic colors and for black.
func RGBToHSI(c RGB, o Options) HSI {
	r, g, b, a := c.unit()
	mx, mn := max(r, g, b), min(r, g, b)
	chroma := mx - mn
	i := (r + g + b) / 3
	var s float64
	if chroma != 0 && i != 0 {
		s = 1 - mn/i
	}
	return HSI{
		H: roundHue(hexHue(r, g, b, mx, chroma), o.Round),
		S: pct(s, o.Round),
		I: pct(i, o.Round),
		A: pct(a, o.Round),
	}
}

// HSIToRGB converts an HSI color to RGB at the bit depth of the
// options (8 if unspecified).
func HSIToRGB(c HSI, o Options) RGB {
	h := num.WrapHue(c.H)
	s, i := unitPct(c.S), unitPct(c.I)
	z := hueX(h)
	chroma := 3 * i * s / (1 + z)
	r, g, b := hueSector(h, chroma, chroma*z)
	m := i * (1 - s)
	return rgbFromUnit(r+m, g+m, b+m, unitPct(c.A), o.bitDepth(DefaultBitDepth), o.Round)
}
