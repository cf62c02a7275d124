// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorconv

import (
	"math"

	"cogentcore.org/colorconv/base/num"
	"cogentcore.org/colorconv/cie"
)

// Nanometers is the wavelength of a monochromatic light. Wavelengths
// outside 380-780 nm are black. It can only be converted from.
type Nanometers float64

// Kelvin is the color temperature of a black body radiator, meaningful
// in [MinKelvin, MaxKelvin]. It can only be converted from.
type Kelvin float64

// Color temperature range of [Kelvin] conversions.
const (
	MinKelvin Kelvin = 1000
	MaxKelvin Kelvin = 40000
)

func (n Nanometers) Kind() Kind { return KindNanometers }
func (k Kelvin) Kind() Kind     { return KindKelvin }

// wavelengthRamp returns the unit RGB ramp of the band containing nm.
// The 490-510 nm band has no ramp and is black.
func wavelengthRamp(nm float64) (r, g, b float64) {
	switch {
	case nm >= 380 && nm < 440:
		return -(nm - 440) / (440 - 380), 0, 1
	case nm >= 440 && nm < 490:
		return 0, (nm - 440) / (490 - 440), 1
	case nm >= 510 && nm < 580:
		return (nm - 510) / (580 - 510), 1, 0
	case nm >= 580 && nm < 645:
		return 1, -(nm - 645) / (645 - 580), 0
	case nm >= 645 && nm < 781:
		return 1, 0, 0
	}
	return 0, 0, 0
}

// wavelengthFalloff is the intensity factor tapering the ends of
// the visible spectrum.
func wavelengthFalloff(nm float64) float64 {
	switch {
	case nm >= 380 && nm < 420:
		return 0.3 + 0.7*(nm-380)/(420-380)
	case nm >= 420 && nm < 701:
		return 1
	case nm >= 701 && nm < 781:
		return 0.3 + 0.7*(780-nm)/(780-700)
	}
	return 0
}

// NanometersToRGB returns an approximation of the opaque RGB color of
// monochromatic light, at the bit depth of the options (8 if unspecified).
// The gamma of the options applies to the nonzero channels.
func NanometersToRGB(n Nanometers, o Options) RGB {
	nm := float64(n)
	r, g, b := wavelengthRamp(nm)
	f := wavelengthFalloff(nm)
	gamma := o.Resolve().Gamma
	ch := func(v float64) float64 {
		if v == 0 {
			return 0
		}
		return math.Pow(v*f, gamma)
	}
	return rgbFromUnit(ch(r), ch(g), ch(b), 1, o.bitDepth(DefaultBitDepth), o.Round)
}

// Chromaticities of the Rec.709 (sRGB) primaries and the D65 white
// that black body colors are projected on.
var (
	kelvinPrimaries = [3][2]float64{{0.64, 0.33}, {0.30, 0.60}, {0.15, 0.06}}
	kelvinWhite     = [2]float64{0.3127, 0.3290}
)

// chromaToRGB solves for the linear RGB amounts of the given primaries
// that produce the chromaticity xc, yc, zc, with the white balanced to
// equal amounts, using the adjugate (Cramer's rule) of the primary matrix.
func chromaToRGB(xc, yc, zc float64) (r, g, b float64) {
	p := kelvinPrimaries
	xr, yr := p[0][0], p[0][1]
	xg, yg := p[1][0], p[1][1]
	xb, yb := p[2][0], p[2][1]
	zr, zg, zb := 1-xr-yr, 1-xg-yg, 1-xb-yb
	xw, yw := kelvinWhite[0], kelvinWhite[1]
	zw := 1 - xw - yw

	rx, ry, rz := yg*zb-yb*zg, xb*zg-xg*zb, xg*yb-xb*yg
	gx, gy, gz := yb*zr-yr*zb, xr*zb-xb*zr, xb*yr-xr*yb
	bx, by, bz := yr*zg-yg*zr, xg*zr-xr*zg, xr*yg-xg*yr

	rw := (rx*xw + ry*yw + rz*zw) / yw
	gw := (gx*xw + gy*yw + gz*zw) / yw
	bw := (bx*xw + by*yw + bz*zw) / yw

	r = (rx*xc + ry*yc + rz*zc) / rw
	g = (gx*xc + gy*yc + gz*zc) / gw
	b = (bx*xc + by*yc + bz*zc) / bw
	return
}

// KelvinToRGB returns the opaque RGB color of a black body at the given
// temperature, clamped to [MinKelvin, MaxKelvin], at the bit depth of the
// options (8 if unspecified). Planck's law is integrated against the
// CIE 1931 color matching functions, projected onto the sRGB primaries
// and normalized so that the brightest channel is full scale.
func KelvinToRGB(k Kelvin, o Options) RGB {
	t := float64(num.Clamp(k, MinKelvin, MaxKelvin))
	xc, yc, zc := cie.SpectrumToXYZ(func(nm float64) float64 {
		return cie.PlanckRadiance(nm, t)
	})
	r, g, b := chromaToRGB(xc, yc, zc)
	r, g, b = num.Clamp(r, 0, 1), num.Clamp(g, 0, 1), num.Clamp(b, 0, 1)
	if mx := max(r, g, b); mx > 0 {
		r, g, b = r/mx, g/mx, b/mx
	}
	r, g, b = cie.SRGBFromLinear(r, g, b)
	return rgbFromUnit(r, g, b, 1, o.bitDepth(DefaultBitDepth), o.Round)
}

// KelvinToRGBEmpirical returns the opaque RGB color of a black body using
// piecewise logarithmic and power fits of the black body curve, valid in
// [MinKelvin, MaxKelvin].
//
// Deprecated: use [KelvinToRGB], which integrates the spectrum.
func KelvinToRGBEmpirical(k Kelvin, o Options) RGB {
	t := float64(num.Clamp(k, MinKelvin, MaxKelvin)) / 100
	var r, g, b float64
	if t <= 66 {
		r = 255
		g = 99.4708025861*math.Log(t) - 161.1195681661
	} else {
		r = 329.698727446 * math.Pow(t-60, -0.1332047592)
		g = 288.1221695283 * math.Pow(t-60, -0.0755148492)
	}
	switch {
	case t >= 66:
		b = 255
	case t <= 19:
		b = 0
	default:
		b = 138.5177312231*math.Log(t-10) - 305.0447927307
	}
	return rgbFromUnit(r/255, g/255, b/255, 1, o.bitDepth(DefaultBitDepth), o.Round)
}
