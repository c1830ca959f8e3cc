package spectrum

import "math"

// Distribution is a spectral quantity as a function of wavelength.
// Wavelengths are in nanometers; the returned value and its units
// depend on the quantity (radiance, reflectance, sensitivity, ...).
type Distribution interface {
	Value(wavelength float64) float64
}

// DistributionFunc adapts a plain function to [Distribution].
type DistributionFunc func(float64) float64

// Value evaluates the function at the given wavelength.
func (f DistributionFunc) Value(wavelength float64) float64 { return f(wavelength) }

// Flat returns a constant-valued distribution.
func Flat(value float64) Distribution {
	return DistributionFunc(func(float64) float64 { return value })
}

// First and second radiation constants.
// https://en.wikipedia.org/wiki/Planck%27s_law
const (
	c1 = 3.74177e-16
	c2 = 1.43879e-2
)

// Blackbody is the spectral radiant exitance of an ideal black body at
// a given temperature in kelvin, per Planck's law. Units are power per
// unit area per unit wavelength.
type Blackbody float64

// Value evaluates Planck's law at the given wavelength.
func (temp Blackbody) Value(wavelength float64) float64 {
	wl := wavelength * 1e-9 // nm to m
	power := c1 * math.Pow(wl, -5)

	return power / (math.Exp(c2/(wl*float64(temp))) - 1)
}

// Peak is a gaussian emission line centered on a wavelength.
type Peak struct {
	Center float64 // nm
	Width  float64 // standard deviation, nm
}

// Value evaluates the line profile at the given wavelength.
func (p Peak) Value(wavelength float64) float64 {
	d := (wavelength - p.Center) / p.Width
	return math.Exp(-0.5 * d * d)
}

// Sample evaluates d at every given wavelength.
func Sample(d Distribution, wavelengths []float64) []float64 {
	out := make([]float64, len(wavelengths))
	for i, w := range wavelengths {
		out[i] = d.Value(w)
	}

	return out
}
