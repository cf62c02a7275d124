// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package colorconv converts single color values between representations:
device RGB at any bit depth, HEX, Rec.709 and Rec.2020 legal range RGB,
HSV, HSL, HSI, CMYK, YIQ, CIE XYZ, xyY, L*a*b* and L*u*v*, YPbPr and
YCbCr, plus one-way approximations from a wavelength or a color
temperature.

Each representation is its own immutable value type implementing [Color].
There is one function per supported ordered pair (for example [RGBToHSV]
or [LabToXYZ]) taking the source value and an [Options] bundle, and
[Convert] dispatches any pair, composing through RGB or XYZ where no
direct transform exists:

	hsv := colorconv.RGBToHSV(colorconv.NewRGB(255, 128, 0), colorconv.DefaultOptions())
	lab, err := colorconv.Convert(colorconv.Hex("ff00ff"), colorconv.KindLab,
		colorconv.WithReferenceWhite("d50"))

Numeric input that is out of range is clamped; only structurally invalid
configuration (an unsupported color space and reference white pair, a bad
bit rate, invalid luma coefficients) is reported as an error. Every
function is pure and safe for concurrent use.
*/
package colorconv
