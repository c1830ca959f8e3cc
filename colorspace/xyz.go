package colorspace

import (
	"sync"

	"github.com/cwbudde/algo-spectral/cmf"
	"github.com/cwbudde/algo-spectral/integrate"
	"github.com/cwbudde/algo-spectral/spectrum"
	"github.com/cwbudde/algo-vecmath"
)

// XYZ is a CIE 1931 tristimulus value.
type XYZ [3]float64

// Chromaticity returns the (x, y) chromaticity coordinates. A zero
// tristimulus value maps to (0, 0).
func (v XYZ) Chromaticity() (x, y float64) {
	sum := v[0] + v[1] + v[2]
	if sum == 0 {
		return 0, 0
	}

	return v[0] / sum, v[1] / sum
}

// Converter maps spectra to tristimulus values by integrating against
// color-matching weights resampled onto a uniform grid. Immutable and
// safe for concurrent use.
type Converter struct {
	grid  []float64
	xbar  []float64
	ybar  []float64
	zbar  []float64
	scale float64
}

// NewConverter resamples the table onto the grid and normalizes by the
// trapezoidal integral of ybar, so a flat unit spectrum converts to
// luminance Y = 1.
func NewConverter(table *cmf.Table, grid []float64, step float64) (*Converter, error) {
	xbar, ybar, zbar, err := table.Resample(grid)
	if err != nil {
		return nil, err
	}

	norm, err := integrate.Trapezoid(grid, ybar)
	if err != nil {
		return nil, err
	}

	return &Converter{
		grid:  grid,
		xbar:  xbar,
		ybar:  ybar,
		zbar:  zbar,
		scale: step / norm,
	}, nil
}

var (
	cie1931Once sync.Once
	cie1931Conv *Converter
)

// CIE1931 returns the shared converter for the 2-degree standard
// observer over the default visible grid.
func CIE1931() *Converter {
	cie1931Once.Do(func() {
		c, err := NewConverter(cmf.CIE1931(), spectrum.VisibleGrid(), spectrum.WavelengthStep)
		if err != nil {
			panic("colorspace: building CIE 1931 converter: " + err.Error())
		}

		cie1931Conv = c
	})

	return cie1931Conv
}

// Convert samples the distribution on the converter grid and returns
// its tristimulus value.
func (c *Converter) Convert(d spectrum.Distribution) XYZ {
	return c.ConvertSampled(spectrum.Sample(d, c.grid))
}

// ConvertSampled converts samples taken on the converter grid. The
// weight reductions run on the vectorized dot-product kernel.
func (c *Converter) ConvertSampled(samples []float64) XYZ {
	x := vecmath.DotProduct(samples, c.xbar)
	y := vecmath.DotProduct(samples, c.ybar)
	z := vecmath.DotProduct(samples, c.zbar)

	return XYZ{x * c.scale, y * c.scale, z * c.scale}
}
