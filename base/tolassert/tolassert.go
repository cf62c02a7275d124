// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality
// of numbers with tolerance (in other words, it checks whether
// numbers are about equal).
package tolassert

import (
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/constraints"
)

// DefaultTol is the default tolerance used by [Equal].
const DefaultTol = 1e-6

// Equal asserts that the given two numbers are about equal to each
// other, using [DefaultTol] as the absolute tolerance.
func Equal[T constraints.Float | constraints.Integer](t assert.TestingT, expected T, actual T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return EqualTol(t, expected, actual, DefaultTol, msgAndArgs...)
}

// EqualTol asserts that the given two numbers are about equal to each
// other, using the given absolute tolerance value.
func EqualTol[T constraints.Float | constraints.Integer](t assert.TestingT, expected T, actual T, tolerance float64, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return assert.InDelta(t, float64(expected), float64(actual), tolerance, msgAndArgs...)
}
