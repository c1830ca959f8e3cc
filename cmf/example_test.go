package cmf_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/cmf"
	"github.com/cwbudde/algo-spectral/integrate"
	"github.com/cwbudde/algo-spectral/spectrum"
)

func ExampleCIE1931() {
	tab := cmf.CIE1931()
	fmt.Printf("%d rows over [%g, %g] nm\n", tab.Len(), tab.Wavelengths[0], tab.Wavelengths[tab.Len()-1])

	// Output:
	// 81 rows over [380, 780] nm
}

// Compute the CIE luminance normalization constant: resample ybar onto
// the uniform visible grid and integrate with the trapezoidal rule.
func Example() {
	grid := spectrum.VisibleGrid()

	_, ybar, _, err := cmf.CIE1931().Resample(grid)
	if err != nil {
		panic(err)
	}

	norm, err := integrate.Trapezoid(grid, ybar)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.4f\n", norm)

	// Output:
	// 106.8564
}
