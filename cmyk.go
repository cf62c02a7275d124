// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorconv

import "fmt"

// CMYK is a naive subtractive cyan, magenta, yellow, key color with
// each component a percentage [0, 100]. It has no alpha channel and
// does not model any ink or paper.
type CMYK struct {
	C, M, Y, K float64
}

func (c CMYK) Kind() Kind { return KindCMYK }

func (c CMYK) String() string { return fmt.Sprintf("cmyk(%g, %g, %g, %g)", c.C, c.M, c.Y, c.K) }

// RGBToCMYK converts an RGB color to CMYK. Alpha is dropped.
func RGBToCMYK(c RGB, o Options) CMYK {
	r, g, b, _ := c.unit()
	k := 1 - max(r, g, b)
	if k == 1 {
		return CMYK{0, 0, 0, 100}
	}
	return CMYK{
		C: pct((1-r-k)/(1-k), o.Round),
		M: pct((1-g-k)/(1-k), o.Round),
		Y: pct((1-b-k)/(1-k), o.Round),
		K: pct(k, o.Round),
	}
}

// CMYKToRGB converts a CMYK color to an opaque RGB color at the bit
// depth of the options (8 if unspecified).
func CMYKToRGB(c CMYK, o Options) RGB {
	k := 1 - unitPct(c.K)
	return rgbFromUnit((1-unitPct(c.C))*k, (1-unitPct(c.M))*k, (1-unitPct(c.Y))*k, 1,
		o.bitDepth(DefaultBitDepth), o.Round)
}
