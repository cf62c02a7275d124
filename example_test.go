// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorconv_test

import (
	"fmt"

	"cogentcore.org/colorconv"
)

func ExampleRGBToHSV() {
	c := colorconv.RGBToHSV(colorconv.NewRGB(255, 128, 0), colorconv.DefaultOptions())
	fmt.Println(c)
	// Output: hsv(30, 100, 100, 100)
}

func ExampleConvert() {
	c, err := colorconv.Convert(colorconv.Hex("#f0f"), colorconv.KindRGB)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c)
	// Output: rgba(255, 0, 255, 255)@8
}

func ExampleConvertTo() {
	hsl, err := colorconv.ConvertTo[colorconv.HSL](colorconv.Hex("ff8000"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(hsl, hsl.IsLight())
	// Output: hsl(30, 100, 50, 100) false
}

func ExampleNanometersToRGB() {
	fmt.Println(colorconv.NanometersToRGB(600, colorconv.DefaultOptions()))
	// Output: rgba(255, 190, 0, 255)@8
}
