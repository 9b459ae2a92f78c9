package interp

import (
	"errors"
	"math"
)

var (
	// ErrExhausted signals the normal end of a stream. It is not a failure.
	ErrExhausted = errors.New("interp: stream exhausted")

	// ErrNilConstructor indicates New was called without an interval constructor.
	ErrNilConstructor = errors.New("interp: nil interval constructor")
)

// Point is one interpolated sample: X is a fractional step position, Y the
// interpolated value there.
type Point struct {
	X float64
	Y float64
}

// IsVertex reports whether p sits on an integer step, i.e. on a path vertex.
func (p Point) IsVertex() bool {
	return p.X == math.Trunc(p.X)
}

// Step returns the integer step index of p (floor of X).
func (p Point) Step() int {
	return int(math.Floor(p.X))
}
