// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorconv

import (
	"errors"

	"cogentcore.org/colorconv/base/logx"
)

// Configuration errors. Color space and reference white errors come from
// the cie package: [cie.ErrUnsupportedCombination], [cie.ErrMissingGamma],
// [cie.ErrUnknownSpace] and [cie.ErrUnknownWhite]. All errors are wrapped,
// so test them with [errors.Is].
var (
	// ErrInvalidBitRate is returned when a Rec.709 or Rec.2020 bit depth
	// is not one of the two supported by the standard.
	ErrInvalidBitRate = errors.New("invalid bit rate")

	// ErrInvalidLuma is returned when the Kb and Kr luma coefficients
	// leave no room for Kg (Kb + Kr > 1), are negative, or either
	// reaches 1.
	ErrInvalidLuma = errors.New("invalid kb/kr luma coefficients")

	// ErrMissingLuma is returned when a luma parameterized conversion
	// is requested without Kb and Kr.
	ErrMissingLuma = errors.New("kb and kr are required")

	// ErrUnsupportedConversion is returned for target representations
	// that cannot be reached, such as a wavelength or a temperature.
	ErrUnsupportedConversion = errors.New("unsupported conversion")

	// ErrInvalidHex is returned by [ParseHex] for malformed input.
	ErrInvalidHex = errors.New("invalid hex color")
)

// logConfigError logs the given configuration error at warn level
// and returns it unchanged.
func logConfigError(err error) error {
	if err != nil {
		logx.Logger().Warn("colorconv: configuration error", "err", err)
	}
	return err
}
