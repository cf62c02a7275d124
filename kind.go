// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorconv

// Color is implemented by every color value type. The types are
// unrelated variants; Kind identifies which one a value is.
type Color interface {
	Kind() Kind
}

// Kind identifies a color representation.
type Kind int32

//go:generate stringer -type=Kind -linecomment

// The comments on the kinds are their names, returned by [Kind.String].
const (
	KindRGB Kind = iota // rgb
	KindRec709RGB       // rec709rgb
	KindRec2020RGB      // rec2020rgb
	KindHex             // hex
	KindHSV             // hsv
	KindHSL             // hsl
	KindHSI             // hsi
	KindCMYK            // cmyk
	KindYIQ             // yiq
	KindXYZ             // xyz
	KindXYY             // xyy
	KindLab             // lab
	KindLuv             // luv
	KindYPbPr           // ypbpr
	KindYCbCr           // ycbcr
	KindJPEGYCbCr       // jpegycbcr
	KindNanometers      // nm
	KindKelvin          // kelvin

	// kindN is the number of kinds.
	kindN = iota
)

// KindValues returns all kinds.
func KindValues() []Kind {
	ks := make([]Kind, kindN)
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}

// isCIE returns whether the kind is one of the XYZ family
// (XYZ, xyY, L*a*b*, L*u*v*), which convert among themselves
// through XYZ without leaving CIE space.
func (k Kind) isCIE() bool {
	switch k {
	case KindXYZ, KindXYY, KindLab, KindLuv:
		return true
	}
	return false
}

// sourceOnly returns whether the kind can only be converted from.
func (k Kind) sourceOnly() bool {
	return k == KindNanometers || k == KindKelvin
}
