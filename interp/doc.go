// Package interp provides piecewise-linear interpolation over tabulated
// 1-D curves.
//
// A [Linear] interpolant is built from parallel slices of strictly
// increasing x values and their samples. Queries are exact at control
// points, linear between them, and fail outside the tabulated domain:
// the interpolant never extrapolates.
//
// # Usage
//
//	curve, _ := interp.NewLinear([]float64{0, 1, 2}, []float64{0, 10, 14})
//	v, _ := curve.At(1.5) // 12
package interp
