package interval_test

import (
	"fmt"

	"github.com/katalvlaran/collatzline/interval"
	"github.com/katalvlaran/collatzline/sequence"
)

// ExampleNewCosine samples the cosine easing between (0,3) and (1,10).
func ExampleNewCosine() {
	f := interval.NewCosine(sequence.Vertex{X: 0, Y: 3}, sequence.Vertex{X: 1, Y: 10})
	for _, x := range []float64{0, 0.5, 1} {
		fmt.Printf("%.2f ", f.Evaluate(x))
	}
	fmt.Println()
	// Output:
	// 3.00 6.50 10.00
}

// ExampleCompileExpr builds a linear interval function from a formula.
func ExampleCompileExpr() {
	ctor, err := interval.CompileExpr("y0 + (y1 - y0) * (x - x0)")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	f := ctor(sequence.Vertex{X: 0, Y: 2}, sequence.Vertex{X: 1, Y: 1})
	fmt.Println(f.Evaluate(0.25))
	// Output:
	// 1.75
}
