// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorconv

import (
	"bytes"
	"log/slog"
	"testing"

	"cogentcore.org/colorconv/base/logx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRec709RGB(t *testing.T) {
	c, err := RGBToRec709RGB(NewRGB(255, 128, 0), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, Rec709RGB{235, 126, 16, 255, 8}, c)

	c, err = RGBToRec709RGB(NewRGB(255, 255, 255), NewOptions(WithBitDepth(10)))
	require.NoError(t, err)
	assert.Equal(t, Rec709RGB{940, 940, 940, 1023, 10}, c)

	c, err = RGBToRec709RGB(NewRGB(0, 0, 0), NewOptions(WithBitRate(10)))
	require.NoError(t, err)
	assert.Equal(t, Rec709RGB{64, 64, 64, 1023, 10}, c)

	rgb, err := Rec709RGBToRGB(Rec709RGB{235, 126, 16, 255, 8}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, NewRGB(255, 128, 0), rgb)

	// the output bit depth follows the source unless given
	rgb, err = Rec709RGBToRGB(Rec709RGB{940, 64, 64, 1023, 10}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, RGB{1023, 0, 0, 1023, 10}, rgb)
	rgb, err = Rec709RGBToRGB(Rec709RGB{940, 64, 64, 1023, 10}, NewOptions(WithBitDepth(8)))
	require.NoError(t, err)
	assert.Equal(t, NewRGB(255, 0, 0), rgb)
}

func TestRec2020RGB(t *testing.T) {
	c, err := RGBToRec2020RGB(NewRGB(255, 255, 255), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, Rec2020RGB{940, 940, 940, 1023, 10}, c)

	c, err = RGBToRec2020RGB(NewRGB(0, 255, 0), NewOptions(WithBitDepth(12)))
	require.NoError(t, err)
	assert.Equal(t, Rec2020RGB{256, 3760, 256, 4095, 12}, c)

	// 940 is white at 10 bits in both directions
	rgb, err := Rec2020RGBToRGB(Rec2020RGB{940, 940, 940, 1023, 10}, NewOptions(WithBitDepth(8)))
	require.NoError(t, err)
	assert.Equal(t, NewRGB(255, 255, 255), rgb)

	rgb, err = Rec2020RGBToRGB(Rec2020RGB{R: 64, G: 64, B: 64, A: 1023}, NewOptions(WithBitDepth(8)))
	require.NoError(t, err)
	assert.Equal(t, NewRGB(0, 0, 0), rgb)
}

func TestLegalRangeErrors(t *testing.T) {
	_, err := RGBToRec709RGB(NewRGB(1, 2, 3), NewOptions(WithBitDepth(12)))
	assert.ErrorIs(t, err, ErrInvalidBitRate)
	_, err = RGBToRec709RGB(NewRGB(1, 2, 3), NewOptions(WithBitRate(12)))
	assert.ErrorIs(t, err, ErrInvalidBitRate)
	_, err = RGBToRec2020RGB(NewRGB(1, 2, 3), NewOptions(WithBitDepth(8)))
	assert.ErrorIs(t, err, ErrInvalidBitRate)
	_, err = Rec709RGBToRGB(Rec709RGB{16, 16, 16, 255, 12}, DefaultOptions())
	assert.ErrorIs(t, err, ErrInvalidBitRate)
	_, err = Rec2020RGBToRGB(Rec2020RGB{64, 64, 64, 1023, 16}, DefaultOptions())
	assert.ErrorIs(t, err, ErrInvalidBitRate)
}

func TestLegalRangeClamp(t *testing.T) {
	var b bytes.Buffer
	logx.SetLogger(slog.New(slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer logx.SetLogger(nil)

	// super-black and super-white are clamped, alpha is not
	rgb, err := Rec709RGBToRGB(Rec709RGB{0, 255, 126, 128, 8}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, RGB{0, 255, 128, 128, 8}, rgb)
	assert.Contains(t, b.String(), "clamped legal range channel")
}

func TestLegalRangeRoundTrip(t *testing.T) {
	for _, bd := range []int{8, 10} {
		o := NewOptions(WithBitDepth(bd))
		for _, c := range sampleRGB() {
			v, err := RGBToRec709RGB(c, o)
			require.NoError(t, err)
			back, err := Rec709RGBToRGB(v, NewOptions(WithBitDepth(8)))
			require.NoError(t, err)
			assertRGBNear(t, c, back, 1, "bitDepth %d: %v", bd, c)
		}
	}
	for _, bd := range []int{10, 12} {
		o := NewOptions(WithBitDepth(bd))
		for _, c := range sampleRGB() {
			v, err := RGBToRec2020RGB(c, o)
			require.NoError(t, err)
			back, err := Rec2020RGBToRGB(v, NewOptions(WithBitDepth(8)))
			require.NoError(t, err)
			assertRGBNear(t, c, back, 1, "bitDepth %d: %v", bd, c)
		}
	}
}
