// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorconv

import (
	"fmt"
	"slices"

	"cogentcore.org/colorconv/base/logx"
	"cogentcore.org/colorconv/base/num"
)

// Rec709RGB is an ITU-R BT.709 legal range ("studio swing") RGB color.
// At 8 bits nominal black is 16 and nominal white is 235, scaled by
// 2^(BitDepth-8) for higher bit depths. Values may lie outside the
// nominal points. Alpha uses the full range [0, 2^BitDepth - 1].
// BitDepth is 8 or 10; zero means 8.
type Rec709RGB struct {
	R, G, B, A float64
	BitDepth   int
}

// Rec2020RGB is an ITU-R BT.2020 legal range RGB color, with the same
// scaling as [Rec709RGB]. BitDepth is 10 or 12; zero means 10.
type Rec2020RGB struct {
	R, G, B, A float64
	BitDepth   int
}

func (c Rec709RGB) Kind() Kind  { return KindRec709RGB }
func (c Rec2020RGB) Kind() Kind { return KindRec2020RGB }

func (c Rec709RGB) String() string {
	return fmt.Sprintf("rec709rgb(%g, %g, %g, %g)@%d", c.R, c.G, c.B, c.A, c.BitDepth)
}

func (c Rec2020RGB) String() string {
	return fmt.Sprintf("rec2020rgb(%g, %g, %g, %g)@%d", c.R, c.G, c.B, c.A, c.BitDepth)
}

// videoStandard describes the legal range of a video RGB standard.
type videoStandard struct {
	name   string
	depths []int
}

var (
	rec709  = videoStandard{"Rec709RGB", []int{8, 10}}
	rec2020 = videoStandard{"Rec2020RGB", []int{10, 12}}
)

// depth validates the given bit depth, where zero means the default.
func (vs videoStandard) depth(fn string, bd int) (int, error) {
	if bd == 0 {
		return vs.depths[0], nil
	}
	if !slices.Contains(vs.depths, bd) {
		return 0, logConfigError(fmt.Errorf("colorconv.%s: %w: %d (want %d or %d)", fn, ErrInvalidBitRate, bd, vs.depths[0], vs.depths[1]))
	}
	return bd, nil
}

// legal returns the nominal black and white levels at the bit depth.
func legal(bd int) (black, white float64) {
	s := float64(int(1) << (bd - 8))
	return 16 * s, 235 * s
}

// fromRGB returns the legal range channels of an RGB color.
func (vs videoStandard) fromRGB(c RGB, o Options) (r, g, b, a float64, bd int, err error) {
	bd, err = vs.depth("RGBTo"+vs.name, o.bitDepth(0))
	if err != nil {
		return
	}
	black, white := legal(bd)
	ur, ug, ub, ua := c.unit()
	r = num.ScaleRange(ur, 0, 1, black, white, o.Round)
	g = num.ScaleRange(ug, 0, 1, black, white, o.Round)
	b = num.ScaleRange(ub, 0, 1, black, white, o.Round)
	a = num.RoundIf(ua*num.MaxValue(bd), o.Round)
	return
}

// toRGB returns the RGB color of legal range channels. Channels beyond
// the nominal black and white points are clamped to them.
func (vs videoStandard) toRGB(r, g, b, a float64, srcDepth int, o Options) (RGB, error) {
	bd, err := vs.depth(vs.name+"ToRGB", srcDepth)
	if err != nil {
		return RGB{}, err
	}
	black, white := legal(bd)
	ch := func(v float64) float64 {
		cv := num.Clamp(v, black, white)
		if cv != v {
			logx.Logger().Debug("colorconv: clamped legal range channel", "standard", vs.name, "value", v, "clamped", cv)
		}
		return num.ScaleRange(cv, black, white, 0, 1, false)
	}
	ua := num.Clamp(a/num.MaxValue(bd), 0, 1)
	return rgbFromUnit(ch(r), ch(g), ch(b), ua, o.bitDepth(bd), o.Round), nil
}

// RGBToRec709RGB converts an RGB color to Rec.709 legal range at the
// bit depth of the options, which must be 8 (the default) or 10.
func RGBToRec709RGB(c RGB, o Options) (Rec709RGB, error) {
	r, g, b, a, bd, err := rec709.fromRGB(c, o)
	if err != nil {
		return Rec709RGB{}, err
	}
	return Rec709RGB{r, g, b, a, bd}, nil
}

// Rec709RGBToRGB converts a Rec.709 color to full range RGB, at the bit
// depth of the options or else that of the color.
func Rec709RGBToRGB(c Rec709RGB, o Options) (RGB, error) {
	return rec709.toRGB(c.R, c.G, c.B, c.A, c.BitDepth, o)
}

// RGBToRec2020RGB converts an RGB color to Rec.2020 legal range at the
// bit depth of the options, which must be 10 (the default) or 12.
func RGBToRec2020RGB(c RGB, o Options) (Rec2020RGB, error) {
	r, g, b, a, bd, err := rec2020.fromRGB(c, o)
	if err != nil {
		return Rec2020RGB{}, err
	}
	return Rec2020RGB{r, g, b, a, bd}, nil
}

// Rec2020RGBToRGB converts a Rec.2020 color to full range RGB, at the bit
// depth of the options or else that of the color.
func Rec2020RGBToRGB(c Rec2020RGB, o Options) (RGB, error) {
	return rec2020.toRGB(c.R, c.G, c.B, c.A, c.BitDepth, o)
}
