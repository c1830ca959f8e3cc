// Command cienorm computes the trapezoidal integral of a CIE 1931
// color-matching function over a uniform wavelength grid.
//
// With the default table, range and channel the result is the CIE
// luminance normalization constant (106.8564135 for ybar over
// [380, 780) nm sampled every 5 nm).
//
// Usage:
//
//	cienorm [flags]
//
// Examples:
//
//	cienorm
//	cienorm -channel x
//	cienorm -all
//	cienorm -table custom.csv -min 400 -max 700 -step 10
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-spectral/cmf"
	"github.com/cwbudde/algo-spectral/integrate"
	"github.com/cwbudde/algo-spectral/interp"
	"github.com/cwbudde/algo-spectral/spectrum"
)

func main() {
	tablePath := flag.String("table", "", "path to a wavelength,xbar,ybar,zbar table (default: embedded CIE 1931 table)")
	minWl := flag.Float64("min", spectrum.WavelengthMin, "grid start wavelength in nm (inclusive)")
	maxWl := flag.Float64("max", spectrum.WavelengthMax, "grid stop wavelength in nm (exclusive)")
	step := flag.Float64("step", spectrum.WavelengthStep, "grid spacing in nm")
	channel := flag.String("channel", "y", "channel to integrate: x, y or z")
	all := flag.Bool("all", false, "report all three channels")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cienorm [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Integrates a CIE 1931 color-matching function over a uniform wavelength grid.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(*tablePath, *minWl, *maxWl, *step, *channel, *all); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(tablePath string, minWl, maxWl, step float64, channel string, all bool) error {
	table := cmf.CIE1931()

	if tablePath != "" {
		var err error
		if table, err = cmf.Load(tablePath); err != nil {
			return fmt.Errorf("loading table: %w", err)
		}
	}

	xbar, ybar, zbar, err := table.Curves()
	if err != nil {
		return fmt.Errorf("building interpolants: %w", err)
	}

	grid, err := spectrum.Grid(minWl, maxWl, step)
	if err != nil {
		return fmt.Errorf("building sample grid: %w", err)
	}

	// Check the grid against the interpolation domain up front so the
	// failure names the configuration rather than a single sample.
	if last := grid[len(grid)-1]; grid[0] < ybar.Min() || last > ybar.Max() {
		return fmt.Errorf("grid [%g, %g] exceeds table domain [%g, %g]: %w",
			grid[0], last, ybar.Min(), ybar.Max(), interp.ErrOutOfDomain)
	}

	curves := map[string]*interp.Linear{"x": xbar, "y": ybar, "z": zbar}

	if all {
		return reportAll(curves, grid)
	}

	curve, ok := curves[channel]
	if !ok {
		return fmt.Errorf("unknown channel %q (want x, y or z)", channel)
	}

	total, err := channelIntegral(curve, grid)
	if err != nil {
		return fmt.Errorf("channel %s: %w", channel, err)
	}

	fmt.Println(total)

	return nil
}

func channelIntegral(curve *interp.Linear, grid []float64) (float64, error) {
	samples, err := curve.Sample(grid)
	if err != nil {
		return 0, fmt.Errorf("resampling: %w", err)
	}

	total, err := integrate.Trapezoid(grid, samples)
	if err != nil {
		return 0, fmt.Errorf("integrating: %w", err)
	}

	return total, nil
}

func reportAll(curves map[string]*interp.Linear, grid []float64) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Channel\tSamples\tIntegral\n")
	fmt.Fprintf(tw, "-------\t-------\t--------\n")

	for _, name := range []string{"x", "y", "z"} {
		total, err := channelIntegral(curves[name], grid)
		if err != nil {
			return fmt.Errorf("channel %s: %w", name, err)
		}

		fmt.Fprintf(tw, "%s\t%d\t%.7f\n", name, len(grid), total)
	}

	return tw.Flush()
}
