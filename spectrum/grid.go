package spectrum

import (
	"errors"
	"fmt"
	"math"
)

// Default sampling bounds for the visible spectrum, in nanometers.
const (
	WavelengthMin  = 380.0
	WavelengthMax  = 780.0
	WavelengthStep = 5.0
)

// NumSamples is the number of wavelengths in the default visible grid.
const NumSamples = 80

var ErrInvalidRange = errors.New("spectrum: invalid sampling range")

// Grid returns the arithmetic progression start, start+step, ... of all
// values strictly below stop. Each value is computed as start + i*step,
// so there is no accumulated drift.
func Grid(start, stop, step float64) ([]float64, error) {
	if step <= 0 || start >= stop {
		return nil, fmt.Errorf("%w: start=%g stop=%g step=%g", ErrInvalidRange, start, stop, step)
	}

	n := int(math.Ceil((stop - start) / step))

	// Rounding in the count can land the last value on stop; the grid is
	// half-open, so drop it.
	if start+float64(n-1)*step >= stop {
		n--
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}

	return out, nil
}

// VisibleGrid returns the default visible-spectrum grid: [380, 780) nm
// sampled every 5 nm.
func VisibleGrid() []float64 {
	g, err := Grid(WavelengthMin, WavelengthMax, WavelengthStep)
	if err != nil {
		panic(err) // unreachable: constants form a valid range
	}

	return g
}
