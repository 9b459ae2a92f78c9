// Package driver plays a chain.Chain at a fixed tick rate into a Sink.
//
// It is the headless counterpart of an animation loop: one pull per tick,
// a pause and a rescale on every path boundary, vertex labels placed with the
// same offset rule a plot would use, and a clean stop on exhaustion or
// context cancellation.
package driver
