// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

// Sampling of [CMF1931]: 81 samples every 5 nm from 380 nm to 780 nm.
const (
	CMFStart = 380.0
	CMFStep  = 5.0
	CMFLen   = 81
)

// CMF1931 is the CIE 1931 2° standard observer x̄, ȳ, z̄
// color matching functions.
var CMF1931 = [CMFLen][3]float64{
	{0.001368, 0.000039, 0.006450}, // 380
	{0.002236, 0.000064, 0.010550}, // 385
	{0.004243, 0.000120, 0.020050}, // 390
	{0.007650, 0.000217, 0.036210}, // 395
	{0.014310, 0.000396, 0.067850}, // 400
	{0.023190, 0.000640, 0.110200}, // 405
	{0.043510, 0.001210, 0.207400}, // 410
	{0.077630, 0.002180, 0.371300}, // 415
	{0.134380, 0.004000, 0.645600}, // 420
	{0.214770, 0.007300, 1.039050}, // 425
	{0.283900, 0.011600, 1.385600}, // 430
	{0.328500, 0.016840, 1.622960}, // 435
	{0.348280, 0.023000, 1.747060}, // 440
	{0.348060, 0.029800, 1.782600}, // 445
	{0.336200, 0.038000, 1.772110}, // 450
	{0.318700, 0.048000, 1.744100}, // 455
	{0.290800, 0.060000, 1.669200}, // 460
	{0.251100, 0.073900, 1.528100}, // 465
	{0.195360, 0.090980, 1.287640}, // 470
	{0.142100, 0.112600, 1.041900}, // 475
	{0.095640, 0.139020, 0.812950}, // 480
	{0.057950, 0.169300, 0.616200}, // 485
	{0.032010, 0.208020, 0.465180}, // 490
	{0.014700, 0.258600, 0.353300}, // 495
	{0.004900, 0.323000, 0.272000}, // 500
	{0.002400, 0.407300, 0.212300}, // 505
	{0.009300, 0.503000, 0.158200}, // 510
	{0.029100, 0.608200, 0.111700}, // 515
	{0.063270, 0.710000, 0.078250}, // 520
	{0.109600, 0.793200, 0.057250}, // 525
	{0.165500, 0.862000, 0.042160}, // 530
	{0.225750, 0.914850, 0.029840}, // 535
	{0.290400, 0.954000, 0.020300}, // 540
	{0.359700, 0.980300, 0.013400}, // 545
	{0.433450, 0.994950, 0.008750}, // 550
	{0.512050, 1.000000, 0.005750}, // 555
	{0.594500, 0.995000, 0.003900}, // 560
	{0.678400, 0.978600, 0.002750}, // 565
	{0.762100, 0.952000, 0.002100}, // 570
	{0.842500, 0.915400, 0.001800}, // 575
	{0.916300, 0.870000, 0.001650}, // 580
	{0.978600, 0.816300, 0.001400}, // 585
	{1.026300, 0.757000, 0.001100}, // 590
	{1.056700, 0.694900, 0.001000}, // 595
	{1.062200, 0.631000, 0.000800}, // 600
	{1.045600, 0.566800, 0.000600}, // 605
	{1.002600, 0.503000, 0.000340}, // 610
	{0.938400, 0.441200, 0.000240}, // 615
	{0.854450, 0.381000, 0.000190}, // 620
	{0.751400, 0.321000, 0.000100}, // 625
	{0.642400, 0.265000, 0.000050}, // 630
	{0.541900, 0.217000, 0.000030}, // 635
	{0.447900, 0.175000, 0.000020}, // 640
	{0.360800, 0.138200, 0.000010}, // 645
	{0.283500, 0.107000, 0.000000}, // 650
	{0.218700, 0.081600, 0.000000}, // 655
	{0.164900, 0.061000, 0.000000}, // 660
	{0.121200, 0.044580, 0.000000}, // 665
	{0.087400, 0.032000, 0.000000}, // 670
	{0.063600, 0.023200, 0.000000}, // 675
	{0.046770, 0.017000, 0.000000}, // 680
	{0.032900, 0.011920, 0.000000}, // 685
	{0.022700, 0.008210, 0.000000}, // 690
	{0.015840, 0.005723, 0.000000}, // 695
	{0.011359, 0.004102, 0.000000}, // 700
	{0.008111, 0.002929, 0.000000}, // 705
	{0.005790, 0.002091, 0.000000}, // 710
	{0.004109, 0.001484, 0.000000}, // 715
	{0.002899, 0.001047, 0.000000}, // 720
	{0.002049, 0.000740, 0.000000}, // 725
	{0.001440, 0.000520, 0.000000}, // 730
	{0.001000, 0.000361, 0.000000}, // 735
	{0.000690, 0.000249, 0.000000}, // 740
	{0.000476, 0.000172, 0.000000}, // 745
	{0.000332, 0.000120, 0.000000}, // 750
	{0.000235, 0.000085, 0.000000}, // 755
	{0.000166, 0.000060, 0.000000}, // 760
	{0.000117, 0.000042, 0.000000}, // 765
	{0.000083, 0.000030, 0.000000}, // 770
	{0.000059, 0.000021, 0.000000}, // 775
	{0.000042, 0.000015, 0.000000}, // 780
}

// Radiation constants of Planck's law in SI units.
const (
	planckC1 = 3.74183e-16 // 2πhc², W m²
	planckC2 = 1.4388e-2   // hc/k, m K
)

// PlanckRadiance returns the spectral radiant exitance of a black body
// at the given temperature in Kelvin, for the wavelength in nanometers.
func PlanckRadiance(nm, kelvin float64) float64 {
	wl := nm * 1e-9
	return planckC1 / (math.Pow(wl, 5) * (math.Exp(planckC2/(wl*kelvin)) - 1))
}

// SpectrumToXYZ integrates the given spectral power distribution
// against [CMF1931] with the trapezoidal rule (end samples weighted 0.5,
// interior samples 1.0) and returns chromaticity-normalized x, y, z
// (x + y + z = 1). A zero spectrum returns zeros.
func SpectrumToXYZ(spd func(nm float64) float64) (x, y, z float64) {
	var sx, sy, sz float64
	for i, cmf := range CMF1931 {
		w := 1.0
		if i == 0 || i == CMFLen-1 {
			w = 0.5
		}
		me := spd(CMFStart+float64(i)*CMFStep) * w
		sx += me * cmf[0]
		sy += me * cmf[1]
		sz += me * cmf[2]
	}
	s := sx + sy + sz
	if s == 0 {
		return 0, 0, 0
	}
	return sx / s, sy / s, sz / s
}
