// Package spectrum provides spectral distributions and uniform
// wavelength sampling over the visible range.
//
// A [Distribution] is any quantity defined as a function of wavelength
// (radiance, reflectance, sensitivity). Distributions are evaluated on
// a uniform grid produced by [Grid]; the default visible grid covers
// [380, 780) nm at 5 nm steps.
//
// # Usage
//
//	sun := spectrum.Blackbody(5700)
//	samples := spectrum.Sample(sun, spectrum.VisibleGrid())
package spectrum
