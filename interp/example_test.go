package interp_test

import (
	"fmt"

	"github.com/katalvlaran/collatzline/interp"
	"github.com/katalvlaran/collatzline/interval"
	"github.com/katalvlaran/collatzline/sequence"
)

// ExampleInterpolator_All samples the trajectory of 2 twice per step.
func ExampleInterpolator_All() {
	path, _ := sequence.Trajectory(2)
	ip, err := interp.New(path, interval.NewCosine, interp.WithDensity(2))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for p := range ip.All() {
		fmt.Printf("(%.1f, %.1f)\n", p.X, p.Y)
	}
	// Output:
	// (0.0, 2.0)
	// (0.5, 1.5)
	// (1.0, 1.0)
	// (1.5, 1.0)
}
