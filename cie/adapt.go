// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "golang.org/x/image/math/f64"

// bradford is the Bradford cone response matrix and bradfordInverse its inverse.
var (
	bradford = f64.Mat3{
		0.8951, 0.2664, -0.1614,
		-0.7502, 1.7135, 0.0367,
		0.0389, -0.0685, 1.0296,
	}
	bradfordInverse = f64.Mat3{
		0.9869929, -0.1470543, 0.1599627,
		0.4323053, 0.5183603, 0.0492912,
		-0.0085287, 0.0400428, 0.9684867,
	}
)

// Adapt performs Bradford chromatic adaptation of the given XYZ
// from one reference white to another.
func Adapt(x, y, z float64, from, to White) (ax, ay, az float64) {
	if from == to {
		return x, y, z
	}
	sw := from.XYZ()
	dw := to.XYZ()
	sr, sg, sb := MulVec(bradford, sw[0], sw[1], sw[2])
	dr, dg, db := MulVec(bradford, dw[0], dw[1], dw[2])
	r, g, b := MulVec(bradford, x, y, z)
	return MulVec(bradfordInverse, r*dr/sr, g*dg/sg, b*db/sb)
}
