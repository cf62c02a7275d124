// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorconv

import "cogentcore.org/colorconv/base/num"

// Blend returns the per channel linear interpolation of the given
// colors, alpha included: amount 0 gives a and amount 1 gives b.
// The amount is clamped to [0, 1]. The result has the bit depth of a
// and its channels are rounded.
func Blend(a, b RGB, amount float64) RGB {
	return LerpRGB(a, b, amount, DefaultOptions())
}

// LerpRGB is [Blend] with rounding controlled by the options. b is
// first rescaled to the bit depth of a.
func LerpRGB(a, b RGB, amount float64, o Options) RGB {
	t := num.Clamp(amount, 0, 1)
	ar, ag, ab, aa := a.unit()
	br, bg, bb, ba := b.unit()
	return rgbFromUnit(
		num.Lerp(ar, br, t),
		num.Lerp(ag, bg, t),
		num.Lerp(ab, bb, t),
		num.Lerp(aa, ba, t),
		a.depth(), o.Round)
}

// BlendColors converts the given colors to RGB and blends them
// with [LerpRGB]. The result has the bit depth of the options, or 8.
func BlendColors(a, b Color, amount float64, opts ...Option) (RGB, error) {
	o := NewOptions(opts...)
	ra, err := ConvertTo[RGB](a, WithOptions(o), WithRound(false))
	if err != nil {
		return RGB{}, err
	}
	rb, err := ConvertTo[RGB](b, WithOptions(o), WithRound(false))
	if err != nil {
		return RGB{}, err
	}
	ra = RGBToRGB(ra, Options{BitDepth: o.bitDepth(ra.depth())})
	return LerpRGB(ra, rb, amount, o), nil
}
