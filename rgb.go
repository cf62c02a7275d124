// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorconv

import (
	"fmt"
	"image/color"

	"cogentcore.org/colorconv/base/num"
)

// DefaultBitDepth is the bit depth of RGB values when none is given.
const DefaultBitDepth = 8

// RGB is a device RGB color with an alpha channel. Each channel,
// alpha included, is in [0, Max], where Max = 2^BitDepth - 1.
// A zero BitDepth means [DefaultBitDepth].
type RGB struct {
	R, G, B, A float64

	// BitDepth is the number of bits per channel.
	BitDepth int
}

// NewRGB returns a new opaque 8-bit [RGB] color.
func NewRGB(r, g, b float64) RGB {
	return RGB{r, g, b, 255, DefaultBitDepth}
}

// NewRGBA returns a new [RGB] color with the given alpha and bit depth.
func NewRGBA(r, g, b, a float64, bitDepth int) RGB {
	return RGB{r, g, b, a, bitDepth}
}

func (c RGB) Kind() Kind { return KindRGB }

func (c RGB) depth() int {
	if c.BitDepth <= 0 {
		return DefaultBitDepth
	}
	return c.BitDepth
}

// Max returns the largest channel value of the color's bit depth.
func (c RGB) Max() float64 {
	return num.MaxValue(c.depth())
}

// unit returns the channels scaled into [0, 1] and clamped.
func (c RGB) unit() (r, g, b, a float64) {
	m := c.Max()
	return num.Clamp(c.R/m, 0, 1), num.Clamp(c.G/m, 0, 1), num.Clamp(c.B/m, 0, 1), num.Clamp(c.A/m, 0, 1)
}

// rgbFromUnit returns an [RGB] color at the given bit depth from
// channels in [0, 1], clamping them and rounding if requested.
func rgbFromUnit(r, g, b, a float64, bitDepth int, round bool) RGB {
	m := num.MaxValue(bitDepth)
	ch := func(v float64) float64 {
		return num.RoundIf(num.Clamp(v, 0, 1)*m, round)
	}
	return RGB{ch(r), ch(g), ch(b), ch(a), bitDepth}
}

// ToBitDepth returns the color rescaled to the given bit depth,
// with channels rounded to integers.
func (c RGB) ToBitDepth(bitDepth int) RGB {
	r, g, b, a := c.unit()
	return rgbFromUnit(r, g, b, a, bitDepth, true)
}

// String returns the color in the form rgba(r, g, b, a)@bitDepth.
func (c RGB) String() string {
	return fmt.Sprintf("rgba(%g, %g, %g, %g)@%d", c.R, c.G, c.B, c.A, c.depth())
}

// RGBToRGB returns the color at the bit depth of the options (or its own
// bit depth if unspecified), clamped into range and rounded if requested.
func RGBToRGB(c RGB, o Options) RGB {
	r, g, b, a := c.unit()
	return rgbFromUnit(r, g, b, a, o.bitDepth(c.depth()), o.Round)
}

// RGBA implements [color.Color], returning alpha premultiplied
// 16-bit channels.
func (c RGB) RGBA() (r, g, b, a uint32) {
	ur, ug, ub, ua := c.unit()
	n := color.NRGBA64{
		R: uint16(ur*0xffff + 0.5),
		G: uint16(ug*0xffff + 0.5),
		B: uint16(ub*0xffff + 0.5),
		A: uint16(ua*0xffff + 0.5),
	}
	return n.RGBA()
}

// RGBModel is the [color.Model] for 8-bit [RGB] colors.
var RGBModel = color.ModelFunc(func(c color.Color) color.Color {
	return FromColor(c)
})

// FromColor returns the given standard library color as an 8-bit [RGB].
func FromColor(c color.Color) RGB {
	if rc, ok := c.(RGB); ok {
		return rc.ToBitDepth(DefaultBitDepth)
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{float64(n.R), float64(n.G), float64(n.B), float64(n.A), DefaultBitDepth}
}
