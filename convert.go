// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorconv

import (
	"fmt"

	"cogentcore.org/colorconv/base/logx"
)

// converter is a type-erased pairwise conversion.
type converter func(src Color, o Options) (Color, error)

// pair is a (source, target) kind pair.
type pair [2]Kind

// conv wraps a conversion that cannot fail.
func conv[S, T Color](f func(S, Options) T) converter {
	return func(src Color, o Options) (Color, error) {
		s, ok := src.(S)
		if !ok {
			return nil, fmt.Errorf("colorconv.Convert: %w: unexpected value type %T", ErrUnsupportedConversion, src)
		}
		return f(s, o), nil
	}
}

// convErr wraps a conversion that can fail.
func convErr[S, T Color](f func(S, Options) (T, error)) converter {
	return func(src Color, o Options) (Color, error) {
		s, ok := src.(S)
		if !ok {
			return nil, fmt.Errorf("colorconv.Convert: %w: unexpected value type %T", ErrUnsupportedConversion, src)
		}
		t, err := f(s, o)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
}

// direct is the table of conversions implemented without a pivot.
// Every kind converts to RGB, and every kind that is not source only
// converts from RGB; conversions among the XYZ family go through XYZ.
var direct = map[pair]converter{
	{KindRGB, KindRGB}:        conv(RGBToRGB),
	{KindRGB, KindHex}:        conv(RGBToHex),
	{KindHex, KindRGB}:        convErr(HexToRGB),
	{KindRGB, KindRec709RGB}:  convErr(RGBToRec709RGB),
	{KindRec709RGB, KindRGB}:  convErr(Rec709RGBToRGB),
	{KindRGB, KindRec2020RGB}: convErr(RGBToRec2020RGB),
	{KindRec2020RGB, KindRGB}: convErr(Rec2020RGBToRGB),
	{KindRGB, KindHSV}:        conv(RGBToHSV),
	{KindHSV, KindRGB}:        conv(HSVToRGB),
	{KindRGB, KindHSL}:        conv(RGBToHSL),
	{KindHSL, KindRGB}:        conv(HSLToRGB),
	{KindRGB, KindHSI}:        conv(RGBToHSI),
	{KindHSI, KindRGB}:        conv(HSIToRGB),
	{KindRGB, KindCMYK}:       conv(RGBToCMYK),
	{KindCMYK, KindRGB}:       conv(CMYKToRGB),
	{KindRGB, KindYIQ}:        conv(RGBToYIQ),
	{KindYIQ, KindRGB}:        conv(YIQToRGB),
	{KindYIQ, KindYIQ}:        conv(YIQToYIQ),
	{KindRGB, KindXYZ}:        convErr(RGBToXYZ),
	{KindXYZ, KindRGB}:        convErr(XYZToRGB),
	{KindRGB, KindXYY}:        convErr(RGBToXYY),
	{KindXYY, KindRGB}:        convErr(XYYToRGB),
	{KindRGB, KindLab}:        convErr(RGBToLab),
	{KindLab, KindRGB}:        convErr(LabToRGB),
	{KindRGB, KindLuv}:        convErr(RGBToLuv),
	{KindLuv, KindRGB}:        convErr(LuvToRGB),
	{KindRGB, KindYPbPr}:      convErr(RGBToYPbPr),
	{KindYPbPr, KindRGB}:      convErr(YPbPrToRGB),
	{KindRGB, KindYCbCr}:      convErr(RGBToYCbCr),
	{KindYCbCr, KindRGB}:      convErr(YCbCrToRGB),
	{KindYPbPr, KindYCbCr}:    conv(YPbPrToYCbCr),
	{KindYCbCr, KindYPbPr}:    conv(YCbCrToYPbPr),
	{KindRGB, KindJPEGYCbCr}:  conv(RGBToJPEGYCbCr),
	{KindJPEGYCbCr, KindRGB}:  conv(JPEGYCbCrToRGB),
	{KindNanometers, KindRGB}: conv(NanometersToRGB),
	{KindKelvin, KindRGB}:     conv(KelvinToRGB),
}

// toXYZ converts a color of the XYZ family to XYZ.
func toXYZ(src Color, o Options) (XYZ, error) {
	switch c := src.(type) {
	case XYZ:
		return XYZToXYZ(c, o)
	case XYY:
		return XYYToXYZ(c, o)
	case Lab:
		return LabToXYZ(c, o)
	case Luv:
		return LuvToXYZ(c, o)
	}
	return XYZ{}, fmt.Errorf("colorconv.Convert: %w: %T is not a CIE color", ErrUnsupportedConversion, src)
}

// fromXYZ converts an XYZ color to the given kind of the XYZ family.
func fromXYZ(c XYZ, to Kind, o Options) (Color, error) {
	switch to {
	case KindXYY:
		return XYZToXYY(c, o)
	case KindLab:
		return XYZToLab(c, o)
	case KindLuv:
		return XYZToLuv(c, o)
	}
	return c, nil
}

// Convert converts the given color to the given kind. Pairs without a
// direct conversion are composed through XYZ, for two colors of the XYZ
// family, or else through RGB, whose intermediate value is not rounded.
// Converting a color to its own kind with default options returns it
// unchanged, except that hex colors are normalized to lowercase.
// Wavelengths and temperatures cannot be converted to, and return
// [ErrUnsupportedConversion].
func Convert(src Color, to Kind, opts ...Option) (Color, error) {
	if src == nil {
		return nil, fmt.Errorf("colorconv.Convert: %w: nil color", ErrUnsupportedConversion)
	}
	o := NewOptions(opts...)
	from := src.Kind()
	if from == to && o == DefaultOptions() {
		if h, ok := src.(Hex); ok {
			p, err := ParseHex(string(h))
			if err != nil {
				return nil, err
			}
			return p, nil
		}
		return src, nil
	}
	if f, ok := direct[pair{from, to}]; ok {
		return f(src, o)
	}
	if from.isCIE() && to.isCIE() {
		x, err := toXYZ(src, o)
		if err != nil {
			return nil, err
		}
		return fromXYZ(x, to, o)
	}
	if to.sourceOnly() || to < 0 || to >= kindN {
		return nil, fmt.Errorf("colorconv.Convert: %w: %s to %s", ErrUnsupportedConversion, from, to)
	}
	toRGB, ok := direct[pair{from, KindRGB}]
	if !ok {
		return nil, fmt.Errorf("colorconv.Convert: %w: %s to %s", ErrUnsupportedConversion, from, to)
	}
	logx.Logger().Debug("colorconv: converting through rgb", "from", from, "to", to)
	po := o
	po.Round = false
	po.BitDepth = 0
	pivot, err := toRGB(src, po)
	if err != nil {
		return nil, err
	}
	return direct[pair{KindRGB, to}](pivot, o)
}

// ConvertTo is [Convert] with the target kind given by the type parameter.
func ConvertTo[T Color](src Color, opts ...Option) (T, error) {
	var zero T
	c, err := Convert(src, zero.Kind(), opts...)
	if err != nil {
		return zero, err
	}
	return c.(T), nil
}

// Converter returns the function that converts colors of the
// kind from to the kind to, with the given options applied to
// every call.
func Converter(from, to Kind, opts ...Option) func(src Color) (Color, error) {
	return func(src Color) (Color, error) {
		if src.Kind() != from {
			return nil, fmt.Errorf("colorconv.Converter: %w: got %s, want %s", ErrUnsupportedConversion, src.Kind(), from)
		}
		return Convert(src, to, opts...)
	}
}
