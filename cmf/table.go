package cmf

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-spectral/interp"
)

var (
	ErrColumnCount     = errors.New("cmf: expected four columns per row")
	ErrBadField        = errors.New("cmf: non-numeric field")
	ErrTooFewRows      = errors.New("cmf: table needs at least two rows")
	ErrWavelengthOrder = errors.New("cmf: wavelengths must be strictly increasing")
)

// Table holds color-matching functions as four parallel columns sorted
// by ascending wavelength. A Table is immutable once built; callers
// must not modify the columns.
type Table struct {
	Wavelengths []float64
	X           []float64
	Y           []float64
	Z           []float64
}

// Len returns the number of tabulated wavelengths.
func (t *Table) Len() int { return len(t.Wavelengths) }

// Parse reads a comma-separated table with rows of the form
//
//	wavelength,xbar,ybar,zbar
//
// and no header. The table must have at least two rows and strictly
// increasing wavelengths.
func Parse(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1 // column count checked per row below

	var ws, xs, ys, zs []float64

	for row := 1; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("cmf: row %d: %w", row, err)
		}

		if len(rec) != 4 {
			return nil, fmt.Errorf("%w: row %d has %d", ErrColumnCount, row, len(rec))
		}

		var vals [4]float64

		for col, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %d: %q", ErrBadField, row, col+1, field)
			}

			vals[col] = v
		}

		ws = append(ws, vals[0])
		xs = append(xs, vals[1])
		ys = append(ys, vals[2])
		zs = append(zs, vals[3])
	}

	if len(ws) < 2 {
		return nil, ErrTooFewRows
	}

	for i := 1; i < len(ws); i++ {
		if ws[i] <= ws[i-1] {
			return nil, fmt.Errorf("%w: row %d (%g after %g)", ErrWavelengthOrder, i+1, ws[i], ws[i-1])
		}
	}

	return &Table{Wavelengths: ws, X: xs, Y: ys, Z: zs}, nil
}

// Load reads a table from a file.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cmf: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Curves builds piecewise-linear interpolants for the three channels.
// They share the wavelength column but are otherwise independent.
func (t *Table) Curves() (xbar, ybar, zbar *interp.Linear, err error) {
	if xbar, err = interp.NewLinear(t.Wavelengths, t.X); err != nil {
		return nil, nil, nil, err
	}

	if ybar, err = interp.NewLinear(t.Wavelengths, t.Y); err != nil {
		return nil, nil, nil, err
	}

	if zbar, err = interp.NewLinear(t.Wavelengths, t.Z); err != nil {
		return nil, nil, nil, err
	}

	return xbar, ybar, zbar, nil
}

// Resample evaluates all three channels at the given wavelengths.
// Every wavelength must lie within the tabulated domain.
func (t *Table) Resample(wavelengths []float64) (xbar, ybar, zbar []float64, err error) {
	cx, cy, cz, err := t.Curves()
	if err != nil {
		return nil, nil, nil, err
	}

	if xbar, err = cx.Sample(wavelengths); err != nil {
		return nil, nil, nil, err
	}

	if ybar, err = cy.Sample(wavelengths); err != nil {
		return nil, nil, nil, err
	}

	if zbar, err = cz.Sample(wavelengths); err != nil {
		return nil, nil, nil, err
	}

	return xbar, ybar, zbar, nil
}
