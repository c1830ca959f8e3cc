// Package colorspace converts spectral distributions to CIE 1931
// tristimulus values and on to displayable sRGB components.
//
// The conversion integrates a spectrum against the resampled
// color-matching curves, normalized so that a flat unit spectrum has
// luminance Y = 1. XYZ values map to sRGB via the Lindbloom linear
// transform with gamma companding and gamut desaturation.
//
// # Usage
//
//	xyz := colorspace.CIE1931().Convert(spectrum.Blackbody(6500))
//	rgb := colorspace.SRGB.FromXYZ(xyz)
package colorspace
