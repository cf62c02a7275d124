// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "golang.org/x/image/math/f64"

// XYZToXYY converts XYZ to xyY chromaticity plus luminance. For black
// (X+Y+Z = 0) the chromaticity of the given reference white is returned.
func XYZToXYY(x, y, z float64, white f64.Vec3) (cx, cy, lum float64) {
	s := x + y + z
	if s == 0 {
		ws := white[0] + white[1] + white[2]
		return white[0] / ws, white[1] / ws, y
	}
	return x / s, y / s, y
}

// XYYToXYZ converts xyY to XYZ. A zero y chromaticity yields black.
func XYYToXYZ(cx, cy, lum float64) (x, y, z float64) {
	if cy == 0 {
		return 0, 0, 0
	}
	x = cx * lum / cy
	y = lum
	z = (1 - cx - cy) * lum / cy
	return
}

// XYZToLab converts XYZ relative to the given reference white to
// L*a*b*. Each of X, Y and Z is divided by the matching white component
// and compressed independently with [LabCompress].
func XYZToLab(x, y, z float64, white f64.Vec3) (l, a, b float64) {
	fx := LabCompress(x / white[0])
	fy := LabCompress(y / white[1])
	fz := LabCompress(z / white[2])
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// LabToXYZ converts L*a*b* to XYZ relative to the given reference white.
// Y tests L* against κε while X and Z test their cubed value against ε.
func LabToXYZ(l, a, b float64, white f64.Vec3) (x, y, z float64) {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200
	x = LabUncompress(fx) * white[0]
	y = LToY(l) * white[1]
	z = LabUncompress(fz) * white[2]
	return
}

// uvPrime returns the CIE 1976 u'v' chromaticity of the given XYZ,
// and false when the denominator vanishes.
func uvPrime(x, y, z float64) (u, v float64, ok bool) {
	d := x + 15*y + 3*z
	if d == 0 {
		return 0, 0, false
	}
	return 4 * x / d, 9 * y / d, true
}

// XYZToLuv converts XYZ relative to the given reference white to L*u*v*.
func XYZToLuv(x, y, z float64, white f64.Vec3) (l, u, v float64) {
	l = YToL(y / white[1])
	up, vp, ok := uvPrime(x, y, z)
	if !ok {
		return l, 0, 0
	}
	ur, vr, _ := uvPrime(white[0], white[1], white[2])
	u = 13 * l * (up - ur)
	v = 13 * l * (vp - vr)
	return
}

// LuvToXYZ converts L*u*v* to XYZ relative to the given reference white.
func LuvToXYZ(l, u, v float64, white f64.Vec3) (x, y, z float64) {
	if l <= 0 {
		return 0, 0, 0
	}
	y = LToY(l) * white[1]
	u0, v0, _ := uvPrime(white[0], white[1], white[2])
	du, dv := u+13*l*u0, v+13*l*v0
	if du == 0 || dv == 0 {
		return 0, 0, 0
	}
	a := (52*l/du - 1) / 3
	b := -5 * y
	c := -1.0 / 3
	d := y * (39*l/dv - 5)
	x = (d - b) / (a - c)
	z = x*a + b
	return
}
