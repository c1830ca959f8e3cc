package colorspace

import "math"

// RGB is a display colorspace defined by a linear XYZ transform and a
// companding (gamma) function.
type RGB struct {
	m     [3][3]float64
	gamma func(float64) float64
}

// FromXYZ converts a tristimulus value to red, green, blue components
// in [0, 1].
//
// Out-of-gamut colors are desaturated by adding white (equal parts of
// all components); values above range are clamped by uniform scaling.
// This follows John Walker's "Colour Rendering of Spectra" treatment:
// https://www.fourmilab.ch/documents/specrend/
func (cs *RGB) FromXYZ(v XYZ) [3]float64 {
	var rgb [3]float64

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			rgb[i] += cs.m[i][j] * v[j]
		}

		rgb[i] = cs.gamma(rgb[i])
	}

	lo := math.Min(rgb[0], math.Min(rgb[1], rgb[2]))
	if lo < 0 {
		for i := range rgb {
			rgb[i] -= lo
		}
	}

	hi := math.Max(rgb[0], math.Max(rgb[1], rgb[2]))
	if hi > 1 {
		for i := range rgb {
			rgb[i] /= hi
		}
	}

	return rgb
}

// To8Bit maps components in [0, 1] to display bytes.
func To8Bit(rgb [3]float64) [3]uint8 {
	var out [3]uint8

	for i, v := range rgb {
		out[i] = uint8(math.Round(255 * math.Min(1, math.Max(0, v))))
	}

	return out
}

// SRGB is the standard sRGB colorspace. Matrix and companding values
// from Bruce Lindbloom's reference data: http://www.brucelindbloom.com/
var SRGB = &RGB{
	m: [3][3]float64{
		{+3.2404542, -1.5371385, -0.4985314},
		{-0.9692660, +1.8760108, +0.0415560},
		{+0.0556434, -0.2040259, +1.0572252},
	},
	gamma: func(v float64) float64 {
		if v <= 0.0031308 {
			return 12.92 * v
		}

		return 1.055*math.Pow(v, 0.41667) - 0.055
	},
}
