package interp

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrLengthMismatch = errors.New("interp: xs and ys must have the same length")
	ErrTooFewPoints   = errors.New("interp: need at least two points")
	ErrNotIncreasing  = errors.New("interp: xs must be strictly increasing")
	ErrOutOfDomain    = errors.New("interp: query outside interpolation domain")
)

// Linear is a piecewise-linear interpolant over a strictly increasing
// grid. It is immutable after construction and safe for concurrent use.
type Linear struct {
	xs []float64
	ys []float64
}

// NewLinear builds an interpolant from parallel slices of x positions
// and sample values. The inputs are copied; xs must be strictly
// increasing and hold at least two points.
func NewLinear(xs, ys []float64) (*Linear, error) {
	if len(xs) != len(ys) {
		return nil, ErrLengthMismatch
	}

	if len(xs) < 2 {
		return nil, ErrTooFewPoints
	}

	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, ErrNotIncreasing
		}
	}

	l := &Linear{
		xs: make([]float64, len(xs)),
		ys: make([]float64, len(ys)),
	}
	copy(l.xs, xs)
	copy(l.ys, ys)

	return l, nil
}

// Min returns the lower bound of the interpolation domain.
func (l *Linear) Min() float64 { return l.xs[0] }

// Max returns the upper bound of the interpolation domain.
func (l *Linear) Max() float64 { return l.xs[len(l.xs)-1] }

// At evaluates the interpolant at x. Queries at control points return
// the tabulated value exactly; queries strictly outside [Min, Max]
// fail with [ErrOutOfDomain].
func (l *Linear) At(x float64) (float64, error) {
	last := len(l.xs) - 1
	if x < l.xs[0] || x > l.xs[last] {
		return 0, fmt.Errorf("%w: %g not in [%g, %g]", ErrOutOfDomain, x, l.xs[0], l.xs[last])
	}

	// Smallest i with xs[i] >= x, so the bracket is xs[i-1] < x <= xs[i].
	i := sort.SearchFloat64s(l.xs, x)
	if l.xs[i] == x {
		return l.ys[i], nil
	}

	x0, x1 := l.xs[i-1], l.xs[i]
	y0, y1 := l.ys[i-1], l.ys[i]

	return y0 + (y1-y0)*(x-x0)/(x1-x0), nil
}

// Eval evaluates the interpolant at every position in xs, writing the
// results into dst. It stops at the first out-of-domain query.
func (l *Linear) Eval(dst, xs []float64) error {
	if len(dst) != len(xs) {
		return ErrLengthMismatch
	}

	for i, x := range xs {
		v, err := l.At(x)
		if err != nil {
			return err
		}

		dst[i] = v
	}

	return nil
}

// Sample is the allocating form of [Linear.Eval].
func (l *Linear) Sample(xs []float64) ([]float64, error) {
	out := make([]float64, len(xs))
	if err := l.Eval(out, xs); err != nil {
		return nil, err
	}

	return out, nil
}
