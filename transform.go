// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorconv

import "cogentcore.org/colorconv/base/num"

// Lighten returns a color that is lighter by the
// given absolute HSL lightness amount (0-100, ranges enforced)
func (c HSL) Lighten(amount float64) HSL {
	c.L = num.Clamp(c.L+amount, 0, 100)
	return c
}

// Darken returns a color that is darker by the
// given absolute HSL lightness amount (0-100, ranges enforced)
func (c HSL) Darken(amount float64) HSL {
	c.L = num.Clamp(c.L-amount, 0, 100)
	return c
}

// Highlight returns a color that is lighter or darker by the
// given absolute HSL lightness amount (0-100, ranges enforced),
// making the color darker if it is light (lightness >= 50) and
// lighter otherwise. It is the opposite of [HSL.Samelight].
func (c HSL) Highlight(amount float64) HSL {
	if c.L >= 50 {
		return c.Darken(amount)
	}
	return c.Lighten(amount)
}

// Samelight returns a color that is lighter or darker by the
// given absolute HSL lightness amount (0-100, ranges enforced),
// making the color lighter if it is light (lightness >= 50) and
// darker otherwise. It is the opposite of [HSL.Highlight].
func (c HSL) Samelight(amount float64) HSL {
	if c.L >= 50 {
		return c.Lighten(amount)
	}
	return c.Darken(amount)
}

// Saturate returns a color that is more saturated by the
// given absolute HSL saturation amount (0-100, ranges enforced)
func (c HSL) Saturate(amount float64) HSL {
	c.S = num.Clamp(c.S+amount, 0, 100)
	return c
}

// Desaturate returns a color that is less saturated by the
// given absolute HSL saturation amount (0-100, ranges enforced)
func (c HSL) Desaturate(amount float64) HSL {
	c.S = num.Clamp(c.S-amount, 0, 100)
	return c
}

// IsLight returns whether the color is light
// (has an HSL lightness greater than or equal to 60)
func (c HSL) IsLight() bool {
	return c.L >= 60
}

// IsDark returns whether the color is dark
// (has an HSL lightness less than 60)
func (c HSL) IsDark() bool {
	return c.L < 60
}

// ContrastColor returns the color that should
// be used to contrast this color (white or black),
// based on the result of [HSL.IsLight].
func (c HSL) ContrastColor() RGB {
	if c.IsLight() {
		return NewRGB(0, 0, 0)
	}
	return NewRGB(255, 255, 255)
}
