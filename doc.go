// Package collatzline traces families of discrete trajectories (Collatz
// sequences) and turns them into a smooth, fixed-rate stream of points that
// a renderer can draw one path at a time.
//
// 🚀 Pipeline
//
//	sequence  — generate the discrete paths (vertices (step, value))
//	interval  — fit a continuous function across each pair of vertices
//	interp    — sample one path lazily at a fixed density
//	chain     — concatenate all paths, with a boundary marker in between
//
// Data flows one way: sequence → interp → chain → consumer. Nothing is
// materialized ahead of time beyond the paths themselves; every component
// yields one value per pull.
//
// Quick example:
//
//	paths, _ := sequence.Collatz(50)
//	c, _ := chain.New(paths, interval.NewCosine, interp.WithDensity(30))
//	for f := range c.All() {
//	  // f.IsBoundary() → clear & rescale via c.CurrentBounds()
//	  // otherwise      → append f.Point to the curve
//	}
//
// The cmd/collatzline binary plays the stream in a terminal (text or JSON
// lines) through internal/driver, configured by flags, YAML and environment.
//
//	go install github.com/katalvlaran/collatzline/cmd/collatzline@latest
package collatzline
