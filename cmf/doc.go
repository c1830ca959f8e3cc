// Package cmf provides the CIE 1931 color-matching functions as a
// tabulated dataset with loading, validation and resampling.
//
// A [Table] holds the three standard-observer sensitivity curves
// (x̄, ȳ, z̄) as parallel columns sorted by wavelength. Tables come
// either from the embedded reference dataset ([CIE1931]) or from an
// external comma-separated file ([Load]).
//
// # Usage
//
//	table := cmf.CIE1931()
//	_, ybar, _, err := table.Curves()
//	v, err := ybar.At(555) // 1.0, the luminosity peak
package cmf
