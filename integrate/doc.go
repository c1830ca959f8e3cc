// Package integrate provides trapezoidal-rule numerical integration of
// sampled curves.
//
// [Trapezoid] handles arbitrary (increasing) sample positions;
// [Uniform] is the reduced form for uniformly spaced samples and uses
// vectorized summation.
//
// # Usage
//
//	area, err := integrate.Trapezoid(wavelengths, values)
package integrate
