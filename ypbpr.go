// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorconv

import (
	"fmt"

	"cogentcore.org/colorconv/base/num"
)

// Common luma coefficients for [WithLuma].
const (
	Rec601Kb  = 0.114
	Rec601Kr  = 0.299
	Rec709Kb  = 0.0722
	Rec709Kr  = 0.2126
	Rec2020Kb = 0.0593
	Rec2020Kr = 0.2627
)

// YPbPr is an analog component video color: luma Y in [0, 1] and the
// scaled color differences Pb and Pr in [-0.5, 0.5], defined by the
// luma coefficients Kb and Kr (Kg = 1 - Kb - Kr).
type YPbPr struct {
	Y, Pb, Pr float64
	Kb, Kr    float64
}

// YCbCr is a digital component video color: [YPbPr] scaled into the
// legal ranges [YLower, YUpper] for luma and [CLower, CUpper] for chroma.
type YCbCr struct {
	Y, Cb, Cr      float64
	Kb, Kr         float64
	YLower, YUpper float64
	CLower, CUpper float64
}

// JPEGYCbCr is the full range YCbCr of JPEG (JFIF): fixed ITU-R BT.601
// coefficients, each channel in [0, 255] and chroma centered at 128.
type JPEGYCbCr struct {
	Y, Cb, Cr float64
}

func (c YPbPr) Kind() Kind     { return KindYPbPr }
func (c YCbCr) Kind() Kind     { return KindYCbCr }
func (c JPEGYCbCr) Kind() Kind { return KindJPEGYCbCr }

func (c YPbPr) String() string {
	return fmt.Sprintf("ypbpr(%g, %g, %g)", c.Y, c.Pb, c.Pr)
}

func (c YCbCr) String() string {
	return fmt.Sprintf("ycbcr(%g, %g, %g)", c.Y, c.Cb, c.Cr)
}

func (c JPEGYCbCr) String() string {
	return fmt.Sprintf("jpegycbcr(%g, %g, %g)", c.Y, c.Cb, c.Cr)
}

// luma returns the luma coefficients of the options, falling back on
// kb and kr, and validates them.
func luma(fn string, kb, kr float64, o Options) (float64, float64, error) {
	if o.Kb != 0 || o.Kr != 0 {
		kb, kr = o.Kb, o.Kr
	}
	if kb == 0 && kr == 0 {
		return 0, 0, logConfigError(fmt.Errorf("colorconv.%s: %w", fn, ErrMissingLuma))
	}
	if kb < 0 || kr < 0 || kb >= 1 || kr >= 1 || kb+kr > 1 {
		return 0, 0, logConfigError(fmt.Errorf("colorconv.%s: %w: kb=%g kr=%g", fn, ErrInvalidLuma, kb, kr))
	}
	return kb, kr, nil
}

// RGBToYPbPr converts an RGB color to YPbPr with the luma coefficients
// of the options, which are required. Alpha is dropped.
func RGBToYPbPr(c RGB, o Options) (YPbPr, error) {
	kb, kr, err := luma("RGBToYPbPr", 0, 0, o)
	if err != nil {
		return YPbPr{}, err
	}
	r, g, b, _ := c.unit()
	y := kr*r + (1-kb-kr)*g + kb*b
	pb := 0.5 * (b - y) / (1 - kb)
	pr := 0.5 * (r - y) / (1 - kr)
	return YPbPr{
		Y:  num.Clamp(y, 0, 1),
		Pb: num.Clamp(pb, -0.5, 0.5),
		Pr: num.Clamp(pr, -0.5, 0.5),
		Kb: kb,
		Kr: kr,
	}, nil
}

// YPbPrToRGB converts a YPbPr color to an opaque RGB color at the bit
// depth of the options (8 if unspecified). The luma coefficients are
// those of the options if given, else those of the color. Coefficients
// that leave Kg = 0 cannot be inverted and are an error.
func YPbPrToRGB(c YPbPr, o Options) (RGB, error) {
	kb, kr, err := luma("YPbPrToRGB", c.Kb, c.Kr, o)
	if err != nil {
		return RGB{}, err
	}
	kg := 1 - kb - kr
	if kg <= 0 {
		return RGB{}, logConfigError(fmt.Errorf("colorconv.YPbPrToRGB: %w: kb=%g kr=%g", ErrInvalidLuma, kb, kr))
	}
	y := num.Clamp(c.Y, 0, 1)
	pb, pr := num.Clamp(c.Pb, -0.5, 0.5), num.Clamp(c.Pr, -0.5, 0.5)
	r := y + 2*(1-kr)*pr
	b := y + 2*(1-kb)*pb
	g := (y - kr*r - kb*b) / kg
	return rgbFromUnit(r, g, b, 1, o.bitDepth(DefaultBitDepth), o.Round), nil
}

// bounds returns the YCbCr bounds of the color, or those of the options
// when the color has none.
func (c YCbCr) bounds(o Options) (yl, yu, cl, cu float64) {
	r := o.Resolve()
	yl, yu, cl, cu = c.YLower, c.YUpper, c.CLower, c.CUpper
	if yl == 0 && yu == 0 {
		yl, yu = r.YLower, r.YUpper
	}
	if cl == 0 && cu == 0 {
		cl, cu = r.CLower, r.CUpper
	}
	return
}

// YPbPrToYCbCr scales a YPbPr color into the YCbCr legal ranges of the
// options (16-235 for luma and 16-240 for chroma by default).
func YPbPrToYCbCr(c YPbPr, o Options) YCbCr {
	r := o.Resolve()
	y := num.ScaleRange(num.Clamp(c.Y, 0, 1), 0, 1, r.YLower, r.YUpper, o.Round)
	cb := num.ScaleRange(num.Clamp(c.Pb, -0.5, 0.5), -0.5, 0.5, r.CLower, r.CUpper, o.Round)
	cr := num.ScaleRange(num.Clamp(c.Pr, -0.5, 0.5), -0.5, 0.5, r.CLower, r.CUpper, o.Round)
	return YCbCr{
		Y: y, Cb: cb, Cr: cr,
		Kb: c.Kb, Kr: c.Kr,
		YLower: r.YLower, YUpper: r.YUpper,
		CLower: r.CLower, CUpper: r.CUpper,
	}
}

// YCbCrToYPbPr scales a YCbCr color out of its legal ranges back to
// YPbPr. Values outside the ranges are clamped.
func YCbCrToYPbPr(c YCbCr, o Options) YPbPr {
	yl, yu, cl, cu := c.bounds(o)
	y := num.ScaleRange(num.Clamp(c.Y, yl, yu), yl, yu, 0, 1, false)
	pb := num.ScaleRange(num.Clamp(c.Cb, cl, cu), cl, cu, -0.5, 0.5, false)
	pr := num.ScaleRange(num.Clamp(c.Cr, cl, cu), cl, cu, -0.5, 0.5, false)
	return YPbPr{y, pb, pr, c.Kb, c.Kr}
}

// RGBToYCbCr converts an RGB color to YCbCr through YPbPr.
func RGBToYCbCr(c RGB, o Options) (YCbCr, error) {
	p, err := RGBToYPbPr(c, o)
	if err != nil {
		return YCbCr{}, err
	}
	return YPbPrToYCbCr(p, o), nil
}

// YCbCrToRGB converts a YCbCr color to RGB through YPbPr.
func YCbCrToRGB(c YCbCr, o Options) (RGB, error) {
	return YPbPrToRGB(YCbCrToYPbPr(c, o), o)
}

// RGBToJPEGYCbCr converts an RGB color to JPEG full range YCbCr.
// Alpha is dropped.
func RGBToJPEGYCbCr(c RGB, o Options) JPEGYCbCr {
	r, g, b, _ := c.unit()
	r, g, b = r*255, g*255, b*255
	y := 0.299*r + 0.587*g + 0.114*b
	cb := 128 - 0.168736*r - 0.331264*g + 0.5*b
	cr := 128 + 0.5*r - 0.418688*g - 0.081312*b
	ch := func(v float64) float64 { return num.RoundIf(num.Clamp(v, 0, 255), o.Round) }
	return JPEGYCbCr{ch(y), ch(cb), ch(cr)}
}

// JPEGYCbCrToRGB converts a JPEG full range YCbCr color to an opaque
// RGB color at the bit depth of the options (8 if unspecified).
func JPEGYCbCrToRGB(c JPEGYCbCr, o Options) RGB {
	y := num.Clamp(c.Y, 0, 255)
	cb, cr := num.Clamp(c.Cb, 0, 255)-128, num.Clamp(c.Cr, 0, 255)-128
	r := y + 1.402*cr
	g := y - 0.344136*cb - 0.714136*cr
	b := y + 1.772*cb
	return rgbFromUnit(r/255, g/255, b/255, 1, o.bitDepth(DefaultBitDepth), o.Round)
}
