// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package num provides generic numeric range utilities
// used throughout the color conversion code.
package num

import (
	"math"

	"golang.org/x/exp/constraints"
)

// ScaleRange linearly maps v from the interval [fromLow, fromHigh]
// onto the interval [toLow, toHigh], rounding the result to the
// nearest integer if round is true. No clamping is performed, and
// fromHigh == fromLow is not guarded: the IEEE-754 result of the
// division propagates.
func ScaleRange[F constraints.Float](v, fromLow, fromHigh, toLow, toHigh F, round bool) F {
	s := toLow + (v-fromLow)/(fromHigh-fromLow)*(toHigh-toLow)
	if round {
		return F(math.Round(float64(s)))
	}
	return s
}

// Fmod returns the floating-point remainder of n/m,
// with the sign of n (see [math.Mod]).
func Fmod[F constraints.Float](n, m F) F {
	return F(math.Mod(float64(n), float64(m)))
}

// WrapHue renormalizes the given hue in degrees into [0, 360),
// repeatedly adding or subtracting 360 so that values that are
// already several turns out of range are also handled.
func WrapHue[F constraints.Float](h F) F {
	if math.IsNaN(float64(h)) || math.IsInf(float64(h), 0) {
		return 0
	}
	if h < -3600 || h >= 3600 {
		h = Fmod(h, 360)
	}
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return h
}

// Clamp returns v limited to the range [lo, hi]. NaN clamps to lo.
func Clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	if v != v {
		return lo
	}
	return min(max(v, lo), hi)
}

// Lerp returns the linear interpolation between a and b
// at the given amount t, where t = 0 gives a and t = 1 gives b.
func Lerp[F constraints.Float](a, b, t F) F {
	return a + (b-a)*t
}

// RoundIf returns v rounded to the nearest integer if round is true,
// and v unchanged otherwise.
func RoundIf[F constraints.Float](v F, round bool) F {
	if round {
		return F(math.Round(float64(v)))
	}
	return v
}

// MaxValue returns the largest channel value representable
// with the given bit depth: 2^bitDepth - 1.
func MaxValue(bitDepth int) float64 {
	return math.Exp2(float64(bitDepth)) - 1
}
