package integrate

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
)

var (
	ErrTooFewSamples  = errors.New("integrate: need at least two samples")
	ErrLengthMismatch = errors.New("integrate: xs and ys must have the same length")
	ErrInvalidStep    = errors.New("integrate: step must be positive")
)

// Trapezoid computes the trapezoidal-rule estimate of the area under a
// sampled curve: sum of (xs[i+1]-xs[i]) * (ys[i]+ys[i+1]) / 2.
// The sample positions must be increasing for the result to be an area.
func Trapezoid(xs, ys []float64) (float64, error) {
	if len(xs) != len(ys) {
		return 0, ErrLengthMismatch
	}

	if len(xs) < 2 {
		return 0, ErrTooFewSamples
	}

	var total float64
	for i := 0; i < len(xs)-1; i++ {
		total += (xs[i+1] - xs[i]) * (ys[i] + ys[i+1]) / 2
	}

	return total, nil
}

// Uniform computes the trapezoidal estimate for samples on a uniform
// grid with the given spacing. On such a grid the rule reduces to
// step * (sum(ys) - (ys[0]+ys[n-1])/2), which runs on the vectorized
// sum kernel.
func Uniform(ys []float64, step float64) (float64, error) {
	if step <= 0 {
		return 0, ErrInvalidStep
	}

	if len(ys) < 2 {
		return 0, ErrTooFewSamples
	}

	sum := vecmath.Sum(ys)

	return step * (sum - (ys[0]+ys[len(ys)-1])/2), nil
}
