// SPDX-License-Identifier: MIT
// Package: collatzline/sequence
//
// errors.go — sentinel errors for the sequence package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Context is attached with %w via sequenceErrorf, never baked into sentinels.
//   • Generators never panic; option constructors do (see options.go).

package sequence

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates that n (or the start of the range) is below the allowed
// minimum, e.g. Collatz(1).
var ErrBadSize = errors.New("sequence: parameter too small")

// ErrDegeneratePath indicates a path with fewer than MinPathVertices vertices.
var ErrDegeneratePath = errors.New("sequence: path needs at least two vertices")

// ErrNonMonotonic indicates a path whose X coordinates are not 0,1,2,….
var ErrNonMonotonic = errors.New("sequence: vertex x must equal its index")

// ErrOverflow indicates that a trajectory value left the int64 range.
var ErrOverflow = errors.New("sequence: trajectory value overflows int64")

// sequenceErrorf returns "<method>: <message>: <sentinel>" wrapping sentinel
// so errors.Is keeps working.
func sequenceErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
