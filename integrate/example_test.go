package integrate_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/integrate"
)

func ExampleTrapezoid() {
	// y = x sampled over [0, 4]; the closed-form integral is 8.
	area, err := integrate.Trapezoid(
		[]float64{0, 2, 4},
		[]float64{0, 2, 4},
	)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.1f\n", area)

	// Output:
	// 8.0
}

func ExampleUniform() {
	// Constant 1 over four samples spaced 1 apart: width * height.
	area, err := integrate.Uniform([]float64{1, 1, 1, 1}, 1)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.1f\n", area)

	// Output:
	// 3.0
}
