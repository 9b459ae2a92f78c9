// Package interp turns one path into a lazy, fixed-rate stream of sample
// points.
//
// An Interpolator owns one interval.Func per segment of its path and, on each
// pull, evaluates the function of segment floor(x) at x = counter/density. The
// samples cover [0, L) for a path of L vertices, L·density points in total.
// Positions in [L−1, L) have no segment and yield the fallback value (1 by
// default, the terminal value of every Collatz path).
//
//	ip, _ := interp.New(path, interval.NewCosine, interp.WithDensity(30))
//	for {
//	  p, err := ip.Next()
//	  if errors.Is(err, interp.ErrExhausted) {
//	    break
//	  }
//	  draw(p)
//	}
//
// Interpolators are single-pass: once exhausted they stay exhausted.
package interp
