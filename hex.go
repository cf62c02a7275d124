// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorconv

import (
	"fmt"
	"strconv"
	"strings"
)

// Hex is a 24-bit color written as six hexadecimal digits, for example
// "ff8000". [ParseHex] returns the normalized lowercase form.
type Hex string

func (h Hex) Kind() Kind { return KindHex }

// ParseHex parses a hex color of the form "#rrggbb", "rrggbb", "#rgb" or
// "rgb" (case insensitive) and returns it as six lowercase digits.
func ParseHex(s string) (Hex, error) {
	s = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return "", fmt.Errorf("colorconv.ParseHex: %w: %q", ErrInvalidHex, s)
	}
	if _, err := strconv.ParseUint(s, 16, 32); err != nil {
		return "", fmt.Errorf("colorconv.ParseHex: %w: %q", ErrInvalidHex, s)
	}
	return Hex(s), nil
}

// HexToRGB returns the opaque RGB color of the hex color, at the bit depth
// of the options (8 if unspecified).
func HexToRGB(h Hex, o Options) (RGB, error) {
	p, err := ParseHex(string(h))
	if err != nil {
		return RGB{}, err
	}
	v, _ := strconv.ParseUint(string(p), 16, 32)
	c := RGB{float64(v >> 16 & 0xff), float64(v >> 8 & 0xff), float64(v & 0xff), 255, DefaultBitDepth}
	if bd := o.bitDepth(DefaultBitDepth); bd != DefaultBitDepth {
		r, g, b, a := c.unit()
		c = rgbFromUnit(r, g, b, a, bd, o.Round)
	}
	return c, nil
}

// RGBToHex returns the hex form of the color, rescaled to 8 bits and
// rounded. Alpha is dropped.
func RGBToHex(c RGB, o Options) Hex {
	c8 := c.ToBitDepth(8)
	return Hex(fmt.Sprintf("%02x%02x%02x", int(c8.R), int(c8.G), int(c8.B)))
}
