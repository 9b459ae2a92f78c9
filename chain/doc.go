// Package chain concatenates the sample streams of many paths into one
// pull-based stream, with a boundary marker between consecutive paths.
//
// ⚙️ State machine:
//
//	Streaming(i) ──point──▶ Streaming(i)
//	Streaming(i) ──path i exhausted, i+1 < N──▶ Streaming(i+1)   emits Boundary
//	Streaming(i) ──path i exhausted, i+1 = N──▶ Exhausted          returns ErrExhausted
//
// The initial state is Streaming(0); Exhausted is terminal. The chain never
// emits two boundaries in a row and never emits anything after Exhausted.
//
// ⚙️ Usage:
//
//	paths, _ := sequence.Collatz(50)
//	c, _ := chain.New(paths, interval.NewQuartic, interp.WithDensity(30))
//	for f := range c.All() {
//	  if f.IsBoundary() {
//	    maxX, maxY := c.CurrentBounds()
//	    rescale(maxX, maxY)
//	    continue
//	  }
//	  plot(f.Point)
//	}
//
// A Chain is meant to be driven from a single goroutine, typically once per
// animation tick.
package chain
