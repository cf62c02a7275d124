// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorconv

import (
	"testing"

	"cogentcore.org/colorconv/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec709Luma() Option { return WithLuma(Rec709Kb, Rec709Kr) }

func TestYPbPr(t *testing.T) {
	p, err := RGBToYPbPr(NewRGB(255, 0, 0), NewOptions(rec709Luma()))
	require.NoError(t, err)
	tolassert.Equal(t, 0.2126, p.Y)
	tolassert.Equal(t, -0.1145719, p.Pb)
	tolassert.Equal(t, 0.5, p.Pr)
	assert.Equal(t, Rec709Kb, p.Kb)
	assert.Equal(t, Rec709Kr, p.Kr)

	p, err = RGBToYPbPr(NewRGB(255, 255, 255), NewOptions(rec709Luma()))
	require.NoError(t, err)
	tolassert.Equal(t, 1.0, p.Y)
	tolassert.Equal(t, 0.0, p.Pb)
	tolassert.Equal(t, 0.0, p.Pr)

	// the coefficients travel with the value
	c, err := YPbPrToRGB(p, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, NewRGB(255, 255, 255), c)

	for _, luma := range [][2]float64{{Rec601Kb, Rec601Kr}, {Rec709Kb, Rec709Kr}, {Rec2020Kb, Rec2020Kr}} {
		o := NewOptions(WithLuma(luma[0], luma[1]))
		for _, c := range sampleRGB() {
			p, err := RGBToYPbPr(c, o)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, p.Y, 0.0)
			assert.LessOrEqual(t, p.Y, 1.0)
			assert.LessOrEqual(t, max(-p.Pb, p.Pb, -p.Pr, p.Pr), 0.5)

			back, err := YPbPrToRGB(p, DefaultOptions())
			require.NoError(t, err)
			assertRGBNear(t, NewRGBA(c.R, c.G, c.B, 255, 8), back, 0, c)
		}
	}
}

func TestYPbPrErrors(t *testing.T) {
	_, err := RGBToYPbPr(NewRGB(1, 2, 3), DefaultOptions())
	assert.ErrorIs(t, err, ErrMissingLuma)

	_, err = YPbPrToRGB(YPbPr{Y: 0.5}, DefaultOptions())
	assert.ErrorIs(t, err, ErrMissingLuma)

	_, err = YPbPrToRGB(YPbPr{Y: 0.5}, NewOptions(WithLuma(0.5, 0.6)))
	assert.ErrorIs(t, err, ErrInvalidLuma)

	_, err = YPbPrToRGB(YPbPr{Y: 0.5, Kb: 0.5, Kr: 0.6}, DefaultOptions())
	assert.ErrorIs(t, err, ErrInvalidLuma)

	_, err = RGBToYPbPr(NewRGB(1, 2, 3), NewOptions(WithLuma(0.5, 0.6)))
	assert.ErrorIs(t, err, ErrInvalidLuma)

	_, err = RGBToYPbPr(NewRGB(1, 2, 3), NewOptions(WithLuma(-0.1, 0.3)))
	assert.ErrorIs(t, err, ErrInvalidLuma)

	// a coefficient of 1 leaves no chroma scale
	_, err = RGBToYPbPr(NewRGB(10, 20, 30), NewOptions(WithLuma(1, 0)))
	assert.ErrorIs(t, err, ErrInvalidLuma)
	_, err = RGBToYPbPr(NewRGB(10, 20, 30), NewOptions(WithLuma(0, 1)))
	assert.ErrorIs(t, err, ErrInvalidLuma)
	_, err = Convert(NewRGB(10, 20, 30), KindYCbCr, WithLuma(1, 0))
	assert.ErrorIs(t, err, ErrInvalidLuma)

	// Kg = 0 is valid going forward but cannot be inverted
	p, err := RGBToYPbPr(NewRGB(1, 2, 3), NewOptions(WithLuma(0.5, 0.5)))
	require.NoError(t, err)
	_, err = YPbPrToRGB(p, DefaultOptions())
	assert.ErrorIs(t, err, ErrInvalidLuma)
}

func TestYCbCr(t *testing.T) {
	c, err := RGBToYCbCr(NewRGB(255, 0, 0), NewOptions(rec709Luma()))
	require.NoError(t, err)
	assert.Equal(t, YCbCr{
		Y: 63, Cb: 102, Cr: 240,
		Kb: Rec709Kb, Kr: Rec709Kr,
		YLower: 16, YUpper: 235, CLower: 16, CUpper: 240,
	}, c)

	c, err = RGBToYCbCr(NewRGB(0, 0, 0), NewOptions(rec709Luma()))
	require.NoError(t, err)
	assert.Equal(t, 16.0, c.Y)
	assert.Equal(t, 128.0, c.Cb)
	assert.Equal(t, 128.0, c.Cr)

	// 10-bit studio swing bounds
	c, err = RGBToYCbCr(NewRGB(255, 255, 255), NewOptions(rec709Luma(), WithYBounds(64, 940), WithCBounds(64, 960)))
	require.NoError(t, err)
	assert.Equal(t, 940.0, c.Y)
	assert.Equal(t, 512.0, c.Cb)

	// the bounds travel with the value
	p := YCbCrToYPbPr(c, DefaultOptions())
	tolassert.Equal(t, 1.0, p.Y)
	tolassert.Equal(t, 0.0, p.Pb)

	// out of range values are clamped
	p = YCbCrToYPbPr(YCbCr{Y: 0, Cb: 300, Cr: 128}, DefaultOptions())
	assert.Equal(t, 0.0, p.Y)
	assert.Equal(t, 0.5, p.Pb)

	o := NewOptions(rec709Luma())
	for _, c := range sampleRGB() {
		y, err := RGBToYCbCr(c, NewOptions(rec709Luma(), WithRound(false)))
		require.NoError(t, err)
		back, err := YCbCrToRGB(y, o)
		require.NoError(t, err)
		assertRGBNear(t, NewRGBA(c.R, c.G, c.B, 255, 8), back, 0, c)

		y, err = RGBToYCbCr(c, o)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, y.Y, 16.0)
		assert.LessOrEqual(t, y.Y, 235.0)
		assert.GreaterOrEqual(t, min(y.Cb, y.Cr), 16.0)
		assert.LessOrEqual(t, max(y.Cb, y.Cr), 240.0)
	}
}

func TestJPEGYCbCr(t *testing.T) {
	assert.Equal(t, JPEGYCbCr{255, 128, 128}, RGBToJPEGYCbCr(NewRGB(255, 255, 255), DefaultOptions()))
	assert.Equal(t, JPEGYCbCr{0, 128, 128}, RGBToJPEGYCbCr(NewRGB(0, 0, 0), DefaultOptions()))
	assert.Equal(t, JPEGYCbCr{76, 85, 255}, RGBToJPEGYCbCr(NewRGB(255, 0, 0), DefaultOptions()))

	for _, c := range sampleRGB() {
		j := RGBToJPEGYCbCr(c, DefaultOptions())
		back := JPEGYCbCrToRGB(j, DefaultOptions())
		assertRGBNear(t, NewRGBA(c.R, c.G, c.B, 255, 8), back, 2, c)
	}
}
