// Package testutil provides tolerance assertions and deterministic
// table generators shared by the package tests.
package testutil

// Ramp returns n values start, start+step, start+2*step, ...
func Ramp(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}

	return out
}

// Constant returns a slice of length n filled with value.
func Constant(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}

	return out
}

// LinearTable returns a tabulated line y = slope*x + offset over the
// wavelengths in xs.
func LinearTable(xs []float64, slope, offset float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = slope*x + offset
	}

	return out
}
