// SPDX-License-Identifier: MIT
// Package: collatzline/sequence
//
// collatz.go — Collatz trajectories.
//
// Contract:
//   • Collatz(n) returns n-start+1 paths for start values start..n in order.
//   • Each path starts at (0, i) and ends at (L-1, 1).
//   • O(Σ L_i) time and memory; no global state.

package sequence

import "math"

// maxOddBeforeOverflow is the largest odd y for which 3y+1 fits in int64.
const maxOddBeforeOverflow = (math.MaxInt64 - 1) / 3

// Collatz returns one trajectory per start value i in [start..n], where start
// defaults to 2 (see WithStart). Each trajectory repeatedly halves even values
// and maps odd values to 3y+1 until it reaches 1.
//
// Errors:
//   - ErrBadSize  if n < MinCollatzN or n < start.
//   - ErrOverflow if an intermediate value would exceed int64.
func Collatz(n int, opts ...Option) ([]Path, error) {
	cfg := newGenConfig(opts...)
	if n < MinCollatzN {
		return nil, sequenceErrorf(MethodCollatz, ErrBadSize, "n must be ≥ %d, got %d", MinCollatzN, n)
	}
	if n < cfg.start {
		return nil, sequenceErrorf(MethodCollatz, ErrBadSize, "n must be ≥ start %d, got %d", cfg.start, n)
	}

	paths := make([]Path, 0, n-cfg.start+1)
	for i := cfg.start; i <= n; i++ {
		p, err := trajectory(int64(i), cfg.maxSteps)
		if err != nil {
			return nil, sequenceErrorf(MethodCollatz, err, "start %d", i)
		}
		paths = append(paths, p)
	}

	return paths, nil
}

// Trajectory returns the Collatz trajectory of a single start value.
// start must be ≥ 2 so that the path has at least one segment.
func Trajectory(start int64, opts ...Option) (Path, error) {
	if start < DefaultStart {
		return nil, sequenceErrorf(MethodTrajectory, ErrBadSize, "start must be ≥ %d, got %d", DefaultStart, start)
	}
	cfg := newGenConfig(opts...)

	p, err := trajectory(start, cfg.maxSteps)
	if err != nil {
		return nil, sequenceErrorf(MethodTrajectory, err, "start %d", start)
	}

	return p, nil
}

// step applies one Collatz step to y.
func step(y int64) (int64, error) {
	if y%2 == 0 {
		return y / 2, nil
	}
	if y > maxOddBeforeOverflow {
		return 0, ErrOverflow
	}

	return 3*y + 1, nil
}

// trajectory walks y down to terminalValue, stopping early after maxSteps
// steps when maxSteps > 0.
func trajectory(y int64, maxSteps int) (Path, error) {
	p := Path{{X: 0, Y: y}}
	for x := 1; y > terminalValue; x++ {
		if maxSteps > 0 && x > maxSteps {
			break
		}
		next, err := step(y)
		if err != nil {
			return nil, err
		}
		y = next
		p = append(p, Vertex{X: x, Y: y})
	}

	return p, nil
}

// CollatzGenerator is the Generator form of Collatz, carrying its options.
type CollatzGenerator struct {
	opts []Option
}

// NewCollatzGenerator returns a Generator that calls Collatz(n, opts...).
func NewCollatzGenerator(opts ...Option) *CollatzGenerator {
	return &CollatzGenerator{opts: opts}
}

// Generate implements Generator.
func (g *CollatzGenerator) Generate(n int) ([]Path, error) {
	return Collatz(n, g.opts...)
}

var _ Generator = (*CollatzGenerator)(nil)
