// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorconv

import (
	"fmt"

	"cogentcore.org/colorconv/base/num"
	"cogentcore.org/colorconv/cie"
	"golang.org/x/image/math/f64"
)

// Fractional YIQ chroma limits.
const (
	YIQMaxI = 0.5957
	YIQMaxQ = 0.5226
)

// YIQ is an NTSC luma and chroma color. When Normalized is true,
// Y is in [0, 255] and I and Q in [-128, 128]; otherwise Y is in [0, 1],
// I in [-YIQMaxI, YIQMaxI] and Q in [-YIQMaxQ, YIQMaxQ].
type YIQ struct {
	Y, I, Q float64

	// Normalized is whether the channels use the integer scaled ranges.
	Normalized bool
}

func (c YIQ) Kind() Kind { return KindYIQ }

func (c YIQ) String() string {
	return fmt.Sprintf("yiq(%g, %g, %g, normalized=%t)", c.Y, c.I, c.Q, c.Normalized)
}

var (
	rgbToYIQ = f64.Mat3{
		0.299, 0.587, 0.114,
		0.5959, -0.2746, -0.3213,
		0.2115, -0.5227, 0.3112,
	}
	yiqToRGB = f64.Mat3{
		1, 0.9560502264, 0.6207549413,
		1, -0.2720523437, -0.6472057135,
		1, -1.1067043153, 1.7044212837,
	}
)

// fractional returns the channels on the fractional scale, clamped.
func (c YIQ) fractional() (y, i, q float64) {
	y, i, q = c.Y, c.I, c.Q
	if c.Normalized {
		y /= 255
		i = num.ScaleRange(i, -128, 128, -YIQMaxI, YIQMaxI, false)
		q = num.ScaleRange(q, -128, 128, -YIQMaxQ, YIQMaxQ, false)
	}
	return num.Clamp(y, 0, 1), num.Clamp(i, -YIQMaxI, YIQMaxI), num.Clamp(q, -YIQMaxQ, YIQMaxQ)
}

// yiqFromFractional returns a [YIQ] in the representation selected
// by the options from clamped fractional channels.
func yiqFromFractional(y, i, q float64, o Options) YIQ {
	y, i, q = num.Clamp(y, 0, 1), num.Clamp(i, -YIQMaxI, YIQMaxI), num.Clamp(q, -YIQMaxQ, YIQMaxQ)
	if !o.Normalized {
		return YIQ{y, i, q, false}
	}
	return YIQ{
		Y:          num.RoundIf(y*255, o.Round),
		I:          num.ScaleRange(i, -YIQMaxI, YIQMaxI, -128, 128, o.Round),
		Q:          num.ScaleRange(q, -YIQMaxQ, YIQMaxQ, -128, 128, o.Round),
		Normalized: true,
	}
}

// RGBToYIQ converts an RGB color to YIQ, normalized or fractional as
// selected by the options. Alpha is dropped.
func RGBToYIQ(c RGB, o Options) YIQ {
	r, g, b, _ := c.unit()
	y, i, q := cie.MulVec(rgbToYIQ, r, g, b)
	return yiqFromFractional(y, i, q, o)
}

// YIQToRGB converts a YIQ color to an opaque RGB color at the bit
// depth of the options (8 if unspecified).
func YIQToRGB(c YIQ, o Options) RGB {
	y, i, q := c.fractional()
	r, g, b := cie.MulVec(yiqToRGB, y, i, q)
	return rgbFromUnit(r, g, b, 1, o.bitDepth(DefaultBitDepth), o.Round)
}

// YIQToYIQ converts between the normalized and fractional representations.
func YIQToYIQ(c YIQ, o Options) YIQ {
	y, i, q := c.fractional()
	return yiqFromFractional(y, i, q, o)
}
