// Package sequence generates the discrete trajectories ("paths") that the rest
// of collatzline interpolates and streams.
//
// 🚀 What is a path?
//
//	A Path is an ordered list of integer vertices (x, y) where x is the step
//	index 0,1,2,… and y is the trajectory value at that step. For the Collatz
//	process the path of 3 is:
//
//	  (0,3) (1,10) (2,5) (3,16) (4,8) (5,4) (6,2) (7,1)
//
// ✨ Key features:
//   - Collatz generator over a contiguous range of start values [start..n]
//   - Trajectory for a single start value
//   - Generator interface + GeneratorFunc adapter for custom processes
//   - Path helpers: Len, Bounds, Validate
//
// ⚙️ Usage:
//
//	paths, err := sequence.Collatz(50)
//	if err != nil {
//	  // errors.Is(err, sequence.ErrBadSize) when n < 2
//	}
//	for _, p := range paths {
//	  maxX, maxY := p.Bounds()
//	  _ = maxX; _ = maxY
//	}
//
// Guarantees:
//   - Output order matches ascending start value.
//   - Every returned path has at least two vertices and ends at y = 1.
//   - Paths are never mutated after return.
//
// Termination of the Collatz process is assumed, not proven. Values that would
// overflow int64 are reported as ErrOverflow instead of wrapping silently.
package sequence
