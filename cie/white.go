// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "golang.org/x/image/math/f64"

// White identifies a reference white (illuminant, CIE 1931 2° observer).
// The zero value is [WhiteD65].
type White int32

const (
	// WhiteD65 is noon daylight, the white of sRGB.
	WhiteD65 White = iota
	// WhiteD50 is horizon light, the ICC profile connection white.
	WhiteD50
	// WhiteA is incandescent / tungsten light.
	WhiteA
	// WhiteB is direct noon sunlight (obsolete).
	WhiteB
	// WhiteC is average north sky daylight (obsolete), the white of NTSC.
	WhiteC
	// WhiteD55 is mid-morning / mid-afternoon daylight.
	WhiteD55
	// WhiteD75 is north sky daylight.
	WhiteD75
	// WhiteE is the equal energy white.
	WhiteE
	// WhiteF2 is cool white fluorescent light.
	WhiteF2
	// WhiteF7 is D65 simulator fluorescent light.
	WhiteF7
	// WhiteF11 is Philips TL84 fluorescent light.
	WhiteF11
)

// whitePoints are the XYZ tristimulus values of each [White],
// normalized so that Y = 1.
var whitePoints = [...]f64.Vec3{
	WhiteD65: {0.95047, 1, 1.08883},
	WhiteD50: {0.96422, 1, 0.82521},
	WhiteA:   {1.09850, 1, 0.35585},
	WhiteB:   {0.99072, 1, 0.85223},
	WhiteC:   {0.98074, 1, 1.18232},
	WhiteD55: {0.95682, 1, 0.92149},
	WhiteD75: {0.94972, 1, 1.22638},
	WhiteE:   {1, 1, 1},
	WhiteF2:  {0.99186, 1, 0.67393},
	WhiteF7:  {0.95041, 1, 1.08747},
	WhiteF11: {1.00962, 1, 0.64350},
}

// XYZ returns the tristimulus values of the reference white (Y = 1).
func (w White) XYZ() f64.Vec3 {
	if w < 0 || int(w) >= len(whitePoints) {
		return whitePoints[WhiteD65]
	}
	return whitePoints[w]
}

// Chromaticity returns the xy chromaticity coordinates of the reference white.
func (w White) Chromaticity() (x, y float64) {
	v := w.XYZ()
	s := v[0] + v[1] + v[2]
	return v[0] / s, v[1] / s
}
