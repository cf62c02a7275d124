// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorconv

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlend(t *testing.T) {
	red, green := NewRGB(255, 0, 0), NewRGB(0, 255, 0)
	assert.Equal(t, RGB{128, 128, 0, 255, 8}, Blend(red, green, 0.5))
	assert.Equal(t, red, Blend(red, green, 0))
	assert.Equal(t, green, Blend(red, green, 1))
	assert.Equal(t, green, Blend(red, green, 2), "amount is clamped")
	assert.Equal(t, RGB{255, 0, 0, 128, 8}, Blend(red, NewRGBA(255, 0, 0, 0, 8), 0.5))

	// b is rescaled to the bit depth of a
	assert.Equal(t, RGB{128, 128, 0, 255, 8}, Blend(red, NewRGBA(0, 1023, 0, 1023, 10), 0.5))

	un := LerpRGB(red, green, 0.5, unrounded())
	assert.Equal(t, RGB{127.5, 127.5, 0, 255, 8}, un)
}

func TestBlendColors(t *testing.T) {
	c, err := BlendColors(Hex("ff0000"), HSV{120, 100, 100, 100}, 0.5)
	require.NoError(t, err)
	assert.Equal(t, RGB{128, 128, 0, 255, 8}, c)

	c, err = BlendColors(NewRGB(255, 0, 0), NewRGB(0, 255, 0), 0.5, WithBitDepth(10))
	require.NoError(t, err)
	assert.Equal(t, RGB{512, 512, 0, 1023, 10}, c)

	_, err = BlendColors(NewRGB(255, 0, 0), YPbPr{Y: 0.5}, 0.5)
	assert.ErrorIs(t, err, ErrMissingLuma)
}

func ExampleBlend() {
	fmt.Println(Blend(NewRGB(255, 0, 0), NewRGB(0, 255, 0), 0.5))
	// Output: rgba(128, 128, 0, 255)@8
}

func ExampleBlend_bitDepth() {
	fmt.Println(Blend(NewRGBA(0, 0, 4095, 4095, 12), NewRGB(255, 255, 255), 0.25))
	// Output: rgba(1024, 1024, 4095, 4095)@12
}
