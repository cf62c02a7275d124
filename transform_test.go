// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransform(t *testing.T) {
	c := HSL{210, 60, 40, 100}
	assert.Equal(t, HSL{210, 60, 65, 100}, c.Lighten(25))
	assert.Equal(t, HSL{210, 60, 100, 100}, c.Lighten(80))
	assert.Equal(t, HSL{210, 60, 30, 100}, c.Darken(10))
	assert.Equal(t, HSL{210, 60, 0, 100}, c.Darken(50))
	assert.Equal(t, HSL{210, 90, 40, 100}, c.Saturate(30))
	assert.Equal(t, HSL{210, 100, 40, 100}, c.Saturate(60))
	assert.Equal(t, HSL{210, 0, 40, 100}, c.Desaturate(70))

	// the receiver is a value and is not modified
	assert.Equal(t, HSL{210, 60, 40, 100}, c)

	assert.Equal(t, HSL{210, 60, 50, 100}, c.Highlight(10))
	assert.Equal(t, HSL{210, 60, 30, 100}, c.Samelight(10))
	light := HSL{210, 60, 70, 100}
	assert.Equal(t, HSL{210, 60, 60, 100}, light.Highlight(10))
	assert.Equal(t, HSL{210, 60, 80, 100}, light.Samelight(10))
}

func TestContrast(t *testing.T) {
	assert.True(t, HSL{0, 0, 60, 100}.IsLight())
	assert.False(t, HSL{0, 0, 60, 100}.IsDark())
	assert.True(t, HSL{0, 0, 59, 100}.IsDark())

	white := RGBToHSL(NewRGB(255, 255, 255), DefaultOptions())
	assert.Equal(t, NewRGB(0, 0, 0), white.ContrastColor())
	navy := RGBToHSL(NewRGB(0, 0, 128), DefaultOptions())
	assert.Equal(t, NewRGB(255, 255, 255), navy.ContrastColor())
}
