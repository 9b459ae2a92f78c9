package interp

import (
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/collatzline/interval"
	"github.com/katalvlaran/collatzline/sequence"
)

// Interpolator lazily samples one path. It is not safe for concurrent use.
type Interpolator struct {
	funcs    []interval.Func // funcs[i] spans path[i]→path[i+1]
	density  float64
	fallback float64
	limit    float64 // vertex count of the path
	count    int
	done     bool
}

// New builds an Interpolator over path using ctor for every segment.
// path must satisfy sequence.Path.Validate.
func New(path sequence.Path, ctor interval.Constructor, opts ...Option) (*Interpolator, error) {
	if err := path.Validate(); err != nil {
		return nil, fmt.Errorf("interp: %w", err)
	}
	if ctor == nil {
		return nil, ErrNilConstructor
	}
	cfg := newConfig(opts...)

	funcs := make([]interval.Func, len(path)-1)
	for i := range funcs {
		funcs[i] = ctor(path[i], path[i+1])
	}

	return &Interpolator{
		funcs:    funcs,
		density:  float64(cfg.density),
		fallback: cfg.fallback,
		limit:    float64(len(path)),
	}, nil
}

// Next returns the next sample, or ErrExhausted once x reaches the vertex
// count of the path.
func (ip *Interpolator) Next() (Point, error) {
	if ip.done {
		return Point{}, ErrExhausted
	}

	x := float64(ip.count) / ip.density
	if x >= ip.limit {
		ip.done = true
		return Point{}, ErrExhausted
	}

	y := ip.fallback
	if seg := int(math.Floor(x)); seg < len(ip.funcs) {
		y = ip.funcs[seg].Evaluate(x)
	}
	ip.count++

	return Point{X: x, Y: y}, nil
}

// All returns the remaining samples as a single-use iterator.
func (ip *Interpolator) All() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for {
			p, err := ip.Next()
			if err != nil || !yield(p) {
				return
			}
		}
	}
}

// Segments returns the number of segment functions, L−1.
func (ip *Interpolator) Segments() int { return len(ip.funcs) }

// SampleCount returns the total number of samples the interpolator yields
// from a fresh start, L·density.
func (ip *Interpolator) SampleCount() int { return int(ip.limit * ip.density) }

// Emitted returns the number of samples returned so far.
func (ip *Interpolator) Emitted() int { return ip.count }

// Exhausted reports whether Next has returned ErrExhausted.
func (ip *Interpolator) Exhausted() bool { return ip.done }
