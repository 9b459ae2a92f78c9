// SPDX-License-Identifier: MIT
// Package: collatzline/sequence
//
// options.go — functional options for generators.
//
// Contract:
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors validate and PANIC on meaningless inputs.
//   • Generators themselves never panic.

package sequence

// Option customizes a generator by mutating genConfig before generation.
type Option func(*genConfig)

// WithStart sets the first start value of a Collatz range (default 2).
// Panics if start < DefaultStart: trajectories of 0 and 1 have no segments.
func WithStart(start int) Option {
	if start < DefaultStart {
		panic("sequence: WithStart(start<2)")
	}
	return func(c *genConfig) {
		c.start = start
	}
}

// WithMaxSteps caps the number of steps of a single trajectory. A trajectory
// that has not reached 1 after max steps is truncated there. 0 means no cap.
// Panics on negative values.
func WithMaxSteps(max int) Option {
	if max < 0 {
		panic("sequence: WithMaxSteps(max<0)")
	}
	return func(c *genConfig) {
		c.maxSteps = max
	}
}
