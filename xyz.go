// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorconv

import (
	"fmt"
	"math"

	"cogentcore.org/colorconv/base/num"
	"cogentcore.org/colorconv/cie"
)

// XYZ is a CIE 1931 tristimulus color relative to its reference white
// (the white has Y = 1). Space is the RGB working space it was derived
// from or is to be displayed in. The zero Space and White are sRGB and D65.
type XYZ struct {
	X, Y, Z float64
	Space   cie.Space
	White   cie.White
}

// XYY is a CIE xyY color: the X and Y chromaticity coordinates
// (x + y <= 1) and the luminance Lum, which equals [XYZ.Y].
type XYY struct {
	X, Y, Lum float64
	Space     cie.Space
	White     cie.White
}

// Lab is a CIE L*a*b* color with L in [0, 100].
type Lab struct {
	L, A, B float64
	Space   cie.Space
	White   cie.White
}

// Luv is a CIE L*u*v* color with L in [0, 100].
type Luv struct {
	L, U, V float64
	Space   cie.Space
	White   cie.White
}

func (c XYZ) Kind() Kind { return KindXYZ }
func (c XYY) Kind() Kind { return KindXYY }
func (c Lab) Kind() Kind { return KindLab }
func (c Luv) Kind() Kind { return KindLuv }

func (c XYZ) String() string {
	return fmt.Sprintf("xyz(%g, %g, %g)@%s/%s", c.X, c.Y, c.Z, c.Space, c.White)
}

func (c XYY) String() string {
	return fmt.Sprintf("xyy(%g, %g, %g)@%s/%s", c.X, c.Y, c.Lum, c.Space, c.White)
}

func (c Lab) String() string {
	return fmt.Sprintf("lab(%g, %g, %g)@%s/%s", c.L, c.A, c.B, c.Space, c.White)
}

func (c Luv) String() string {
	return fmt.Sprintf("luv(%g, %g, %g)@%s/%s", c.L, c.U, c.V, c.Space, c.White)
}

// cieTarget resolves the color space and reference white of a CIE
// conversion whose source has the given space and white: the options
// override them when set. It returns an error if the options name an
// unknown space or white.
func cieTarget(fn string, s cie.Space, w cie.White, o Options) (cie.Space, cie.White, error) {
	s, w, err := o.spaceWhite(s, w)
	if err != nil {
		return s, w, logConfigError(fmt.Errorf("colorconv.%s: %w", fn, err))
	}
	return s, w, nil
}

// adapted returns the XYZ adapted to the given white.
func (c XYZ) adapted(w cie.White) XYZ {
	if c.White == w {
		return c
	}
	x, y, z := cie.Adapt(c.X, c.Y, c.Z, c.White, w)
	return XYZ{x, y, z, c.Space, w}
}

// clampXYZ clamps negative and NaN components to 0.
func clampXYZ(x, y, z float64) (float64, float64, float64) {
	inf := math.Inf(1)
	return num.Clamp(x, 0, inf), num.Clamp(y, 0, inf), num.Clamp(z, 0, inf)
}

// RGBToXYZ converts an RGB color in the color space of the options
// (sRGB if unspecified) to XYZ relative to the reference white of the
// options (D65 if unspecified). Alpha is dropped.
func RGBToXYZ(c RGB, o Options) (XYZ, error) {
	s, w, err := cieTarget("RGBToXYZ", cie.SRGB, cie.WhiteD65, o)
	if err != nil {
		return XYZ{}, err
	}
	m, err := cie.LookupMatrices(s, w)
	if err != nil {
		return XYZ{}, logConfigError(fmt.Errorf("colorconv.RGBToXYZ: %w", err))
	}
	r, g, b, _ := c.unit()
	var lin [3]float64
	for i, v := range [3]float64{r, g, b} {
		if lin[i], err = s.ToLinear(v); err != nil {
			return XYZ{}, logConfigError(fmt.Errorf("colorconv.RGBToXYZ: %w", err))
		}
	}
	x, y, z := clampXYZ(cie.MulVec(m.RGBToXYZ, lin[0], lin[1], lin[2]))
	return XYZ{x, y, z, s, w}, nil
}

// XYZToRGB converts an XYZ color to an opaque RGB color at the bit depth
// of the options (8 if unspecified). The color space and reference white
// are those of the color unless the options give them; the color is
// chromatically adapted when the reference white differs.
func XYZToRGB(c XYZ, o Options) (RGB, error) {
	s, w, err := cieTarget("XYZToRGB", c.Space, c.White, o)
	if err != nil {
		return RGB{}, err
	}
	m, err := cie.LookupMatrices(s, w)
	if err != nil {
		return RGB{}, logConfigError(fmt.Errorf("colorconv.XYZToRGB: %w", err))
	}
	a := c.adapted(w)
	r, g, b := cie.MulVec(m.XYZToRGB, a.X, a.Y, a.Z)
	var ch [3]float64
	for i, v := range [3]float64{r, g, b} {
		if ch[i], err = s.FromLinear(num.Clamp(v, 0, 1)); err != nil {
			return RGB{}, logConfigError(fmt.Errorf("colorconv.XYZToRGB: %w", err))
		}
	}
	return rgbFromUnit(ch[0], ch[1], ch[2], 1, o.bitDepth(DefaultBitDepth), o.Round), nil
}

// XYZToXYZ returns the color with the space and reference white of the
// options, chromatically adapting it with the Bradford transform when
// the reference white changes.
func XYZToXYZ(c XYZ, o Options) (XYZ, error) {
	s, w, err := cieTarget("XYZToXYZ", c.Space, c.White, o)
	if err != nil {
		return XYZ{}, err
	}
	a := c.adapted(w)
	a.Space = s
	return a, nil
}

// XYZToXYY converts an XYZ color to xyY. Black takes the chromaticity
// of the reference white.
func XYZToXYY(c XYZ, o Options) (XYY, error) {
	a, err := XYZToXYZ(c, o)
	if err != nil {
		return XYY{}, err
	}
	x, y, lum := cie.XYZToXYY(a.X, a.Y, a.Z, a.White.XYZ())
	return XYY{x, y, lum, a.Space, a.White}, nil
}

// XYYToXYZ converts an xyY color to XYZ.
func XYYToXYZ(c XYY, o Options) (XYZ, error) {
	x, y, z := clampXYZ(cie.XYYToXYZ(c.X, c.Y, c.Lum))
	return XYZToXYZ(XYZ{x, y, z, c.Space, c.White}, o)
}

// XYZToLab converts an XYZ color to L*a*b*.
func XYZToLab(c XYZ, o Options) (Lab, error) {
	a, err := XYZToXYZ(c, o)
	if err != nil {
		return Lab{}, err
	}
	l, aa, b := cie.XYZToLab(a.X, a.Y, a.Z, a.White.XYZ())
	return Lab{num.Clamp(l, 0, 100), aa, b, a.Space, a.White}, nil
}

// LabToXYZ converts an L*a*b* color to XYZ.
func LabToXYZ(c Lab, o Options) (XYZ, error) {
	x, y, z := clampXYZ(cie.LabToXYZ(num.Clamp(c.L, 0, 100), c.A, c.B, c.White.XYZ()))
	return XYZToXYZ(XYZ{x, y, z, c.Space, c.White}, o)
}

// XYZToLuv converts an XYZ color to L*u*v*.
func XYZToLuv(c XYZ, o Options) (Luv, error) {
	a, err := XYZToXYZ(c, o)
	if err != nil {
		return Luv{}, err
	}
	l, u, v := cie.XYZToLuv(a.X, a.Y, a.Z, a.White.XYZ())
	return Luv{num.Clamp(l, 0, 100), u, v, a.Space, a.White}, nil
}

// LuvToXYZ converts an L*u*v* color to XYZ.
func LuvToXYZ(c Luv, o Options) (XYZ, error) {
	x, y, z := clampXYZ(cie.LuvToXYZ(num.Clamp(c.L, 0, 100), c.U, c.V, c.White.XYZ()))
	return XYZToXYZ(XYZ{x, y, z, c.Space, c.White}, o)
}

// RGBToXYY converts an RGB color to xyY through XYZ.
func RGBToXYY(c RGB, o Options) (XYY, error) {
	x, err := RGBToXYZ(c, o)
	if err != nil {
		return XYY{}, err
	}
	return XYZToXYY(x, o)
}

// XYYToRGB converts an xyY color to RGB through XYZ.
func XYYToRGB(c XYY, o Options) (RGB, error) {
	x, err := XYYToXYZ(c, o)
	if err != nil {
		return RGB{}, err
	}
	return XYZToRGB(x, o)
}

// RGBToLab converts an RGB color to L*a*b* through XYZ.
func RGBToLab(c RGB, o Options) (Lab, error) {
	x, err := RGBToXYZ(c, o)
	if err != nil {
		return Lab{}, err
	}
	return XYZToLab(x, o)
}

// LabToRGB converts an L*a*b* color to RGB through XYZ.
func LabToRGB(c Lab, o Options) (RGB, error) {
	x, err := LabToXYZ(c, o)
	if err != nil {
		return RGB{}, err
	}
	return XYZToRGB(x, o)
}

// RGBToLuv converts an RGB color to L*u*v* through XYZ.
func RGBToLuv(c RGB, o Options) (Luv, error) {
	x, err := RGBToXYZ(c, o)
	if err != nil {
		return Luv{}, err
	}
	return XYZToLuv(x, o)
}

// LuvToRGB converts an L*u*v* color to RGB through XYZ.
func LuvToRGB(c Luv, o Options) (RGB, error) {
	x, err := LuvToXYZ(c, o)
	if err != nil {
		return RGB{}, err
	}
	return XYZToRGB(x, o)
}
