// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorconv

import (
	"math"
	"testing"

	"cogentcore.org/colorconv/base/tolassert"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

// sampleRGB returns a grid of 8-bit colors covering every hue sector,
// the achromatic axis and the ties between channels.
func sampleRGB() []RGB {
	var cs []RGB
	for r := 0.0; r <= 255; r += 51 {
		for g := 0.0; g <= 255; g += 51 {
			for b := 0.0; b <= 255; b += 51 {
				cs = append(cs, NewRGBA(r, g, b, 255, 8))
			}
		}
	}
	return append(cs, NewRGB(255, 128, 0), NewRGBA(12, 200, 77, 128, 8), NewRGBA(201, 3, 140, 0, 8))
}

// hueDelta returns the angular distance between two hues.
func hueDelta(a, b float64) float64 {
	d := math.Abs(math.Mod(a-b, 360))
	return min(d, 360-d)
}

func unrounded() Options {
	return NewOptions(WithRound(false))
}

func TestRGBToHSV(t *testing.T) {
	assert.Equal(t, HSV{30, 100, 100, 100}, RGBToHSV(NewRGB(255, 128, 0), DefaultOptions()))
	assert.Equal(t, HSV{0, 100, 100, 100}, RGBToHSV(NewRGB(255, 0, 0), DefaultOptions()))
	assert.Equal(t, HSV{120, 100, 100, 100}, RGBToHSV(NewRGB(0, 255, 0), DefaultOptions()))
	assert.Equal(t, HSV{240, 100, 100, 100}, RGBToHSV(NewRGB(0, 0, 255), DefaultOptions()))
	assert.Equal(t, HSV{300, 100, 100, 100}, RGBToHSV(NewRGB(255, 0, 255), DefaultOptions()))

	// V is independent of the bit depth
	assert.Equal(t, HSV{30, 100, 100, 100}, RGBToHSV(NewRGBA(1023, 514, 0, 1023, 10), DefaultOptions()))

	// a hue rounding up to 360 wraps to 0
	h := RGBToHSV(NewRGB(255, 0, 1), DefaultOptions())
	assert.Equal(t, 0.0, h.H)
	h = RGBToHSV(NewRGB(255, 0, 1), unrounded())
	tolassert.EqualTol(t, 359.7647, h.H, 1e-4)
}

func TestHSVAchromatic(t *testing.T) {
	for _, v := range []float64{0, 1, 100, 128, 254, 255} {
		c := NewRGB(v, v, v)
		h := RGBToHSV(c, unrounded())
		assert.Equal(t, 0.0, h.H)
		assert.Equal(t, 0.0, h.S)
		tolassert.Equal(t, v/255*100, h.V)

		hl := RGBToHSL(c, unrounded())
		assert.Equal(t, 0.0, hl.H)
		assert.Equal(t, 0.0, hl.S)

		hi := RGBToHSI(c, unrounded())
		assert.Equal(t, 0.0, hi.H)
		assert.Equal(t, 0.0, hi.S)
	}
}

func TestHSLHSI(t *testing.T) {
	assert.Equal(t, HSL{30, 100, 50, 100}, RGBToHSL(NewRGB(255, 128, 0), DefaultOptions()))
	assert.Equal(t, HSL{0, 0, 100, 100}, RGBToHSL(NewRGB(255, 255, 255), DefaultOptions()))
	assert.Equal(t, HSI{30, 100, 50, 100}, RGBToHSI(NewRGB(255, 128, 0), DefaultOptions()))
	assert.Equal(t, HSI{0, 0, 0, 100}, RGBToHSI(NewRGB(0, 0, 0), DefaultOptions()))

	assert.Equal(t, NewRGB(255, 128, 0), HSLToRGB(RGBToHSL(NewRGB(255, 128, 0), unrounded()), DefaultOptions()))
	assert.Equal(t, RGB{0, 0, 0, 127.5, 8}, HSIToRGB(HSI{0, 0, 0, 50}, unrounded()))
}

func TestHueInvariants(t *testing.T) {
	for _, round := range []bool{true, false} {
		o := NewOptions(WithRound(round))
		for _, c := range sampleRGB() {
			hsv := RGBToHSV(c, o)
			hsl := RGBToHSL(c, o)
			hsi := RGBToHSI(c, o)
			for _, h := range []float64{hsv.H, hsl.H, hsi.H} {
				assert.GreaterOrEqual(t, h, 0.0, c)
				assert.Less(t, h, 360.0, c)
			}
			for _, v := range []float64{hsv.S, hsv.V, hsv.A, hsl.S, hsl.L, hsl.A, hsi.S, hsi.I, hsi.A} {
				assert.GreaterOrEqual(t, v, 0.0, c)
				assert.LessOrEqual(t, v, 100.0, c)
			}
		}
	}
}

func TestHueRoundTrip(t *testing.T) {
	o := DefaultOptions()
	for _, c := range sampleRGB() {
		back := HSVToRGB(RGBToHSV(c, unrounded()), o)
		assertRGBNear(t, c, back, 0)
		back = HSLToRGB(RGBToHSL(c, unrounded()), o)
		assertRGBNear(t, c, back, 0)
		back = HSIToRGB(RGBToHSI(c, unrounded()), o)
		assertRGBNear(t, c, back, 0)
	}
}

func TestHueColorful(t *testing.T) {
	for _, c := range sampleRGB() {
		r, g, b, _ := c.unit()
		cf := colorful.Color{R: r, G: g, B: b}

		h, s, v := cf.Hsv()
		hsv := RGBToHSV(c, unrounded())
		assert.LessOrEqual(t, hueDelta(h, hsv.H), 1e-9, c)
		tolassert.Equal(t, s*100, hsv.S, c)
		tolassert.Equal(t, v*100, hsv.V, c)

		h, s, l := cf.Hsl()
		hsl := RGBToHSL(c, unrounded())
		assert.LessOrEqual(t, hueDelta(h, hsl.H), 1e-9, c)
		tolassert.Equal(t, s*100, hsl.S, c)
		tolassert.Equal(t, l*100, hsl.L, c)

		back := HSVToRGB(HSV{hsv.H, hsv.S, hsv.V, 100}, unrounded())
		want := colorful.Hsv(hsv.H, hsv.S/100, hsv.V/100)
		tolassert.Equal(t, want.R*255, back.R, c)
		tolassert.Equal(t, want.G*255, back.G, c)
		tolassert.Equal(t, want.B*255, back.B, c)
	}
}

func TestRotateHue(t *testing.T) {
	assert.Equal(t, HSV{10, 50, 50, 100}, HSV{350, 50, 50, 100}.RotateHue(20))
	assert.Equal(t, HSL{270, 50, 50, 100}, HSL{0, 50, 50, 100}.RotateHue(-90))
	assert.Equal(t, HSI{120, 50, 50, 100}, HSI{120, 50, 50, 100}.RotateHue(720))

	// complementary, triadic and tetradic schemes are rotations
	base := RGBToHSL(NewRGB(255, 0, 0), DefaultOptions())
	assert.Equal(t, NewRGB(0, 255, 255), HSLToRGB(base.RotateHue(180), DefaultOptions()))
	assert.Equal(t, NewRGB(0, 255, 0), HSLToRGB(base.RotateHue(120), DefaultOptions()))
	assert.Equal(t, NewRGB(0, 0, 255), HSLToRGB(base.RotateHue(240), DefaultOptions()))
	assert.Equal(t, NewRGB(128, 255, 0), HSLToRGB(base.RotateHue(90), DefaultOptions()))
}

func TestHueOutOfRange(t *testing.T) {
	// hue is wrapped, other channels clamped
	assert.Equal(t, HSVToRGB(HSV{30, 100, 100, 100}, DefaultOptions()), HSVToRGB(HSV{-330, 150, 120, 200}, DefaultOptions()))
	assert.Equal(t, NewRGB(0, 0, 0), HSLToRGB(HSL{720, 50, -10, 100}, DefaultOptions()))
}

// assertRGBNear asserts that the two colors have the same bit depth
// and channels within the given tolerance.
func assertRGBNear(t *testing.T, want, have RGB, tol float64, msgAndArgs ...any) {
	t.Helper()
	assert.Equal(t, want.depth(), have.depth(), msgAndArgs...)
	tolassert.EqualTol(t, want.R, have.R, tol+1e-9, msgAndArgs...)
	tolassert.EqualTol(t, want.G, have.G, tol+1e-9, msgAndArgs...)
	tolassert.EqualTol(t, want.B, have.B, tol+1e-9, msgAndArgs...)
	tolassert.EqualTol(t, want.A, have.A, tol+1e-9, msgAndArgs...)
}
