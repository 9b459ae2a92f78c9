package chain

import (
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/collatzline/interp"
	"github.com/katalvlaran/collatzline/interval"
	"github.com/katalvlaran/collatzline/sequence"
)

// Chain streams the samples of its paths one after the other.
// It is not safe for concurrent use.
type Chain struct {
	paths   []sequence.Path
	streams []*interp.Interpolator // streams[i] is released once path i is done
	idx     int
	state   State
	longest int
	frames  int
}

// New builds one Interpolator per path, in order, with the given interval
// constructor and interpolator options.
//
// Errors:
//   - ErrNoPaths if paths is empty.
//   - any interp.New error, wrapped with the offending path index.
func New(paths []sequence.Path, ctor interval.Constructor, opts ...interp.Option) (*Chain, error) {
	if len(paths) == 0 {
		return nil, ErrNoPaths
	}

	c := &Chain{
		paths:   paths,
		streams: make([]*interp.Interpolator, len(paths)),
	}
	for i, p := range paths {
		ip, err := interp.New(p, ctor, opts...)
		if err != nil {
			return nil, fmt.Errorf("chain: path %d: %w", i, err)
		}
		c.streams[i] = ip
		c.longest = max(c.longest, p.Len())
		c.frames += ip.SampleCount()
	}
	c.frames += len(paths) - 1

	return c, nil
}

// FromGenerator runs g with n and chains the resulting paths.
func FromGenerator(g sequence.Generator, n int, ctor interval.Constructor, opts ...interp.Option) (*Chain, error) {
	paths, err := g.Generate(n)
	if err != nil {
		return nil, fmt.Errorf("chain: generate: %w", err)
	}

	return New(paths, ctor, opts...)
}

// Next returns the next frame: a point of the current path, or the boundary
// marker when the current path has just run out and another path follows.
// After the last path it returns ErrExhausted, on every call.
func (c *Chain) Next() (Frame, error) {
	if c.state == Exhausted {
		return Frame{}, ErrExhausted
	}

	p, err := c.streams[c.idx].Next()
	if err == nil {
		return pointFrame(p), nil
	}
	if !errors.Is(err, interp.ErrExhausted) {
		return Frame{}, err
	}

	c.streams[c.idx] = nil
	if c.idx+1 == len(c.streams) {
		c.state = Exhausted
		return Frame{}, ErrExhausted
	}
	c.idx++

	return boundaryFrame, nil
}

// All returns the remaining frames as a single-use iterator.
func (c *Chain) All() iter.Seq[Frame] {
	return func(yield func(Frame) bool) {
		for {
			f, err := c.Next()
			if err != nil || !yield(f) {
				return
			}
		}
	}
}

// State returns the current state.
func (c *Chain) State() State { return c.state }

// PathIndex returns the index of the current path; once exhausted, the index
// of the last path.
func (c *Chain) PathIndex() int { return c.idx }

// PathCount returns the number of chained paths.
func (c *Chain) PathCount() int { return len(c.paths) }

// LongestPathSampleCount returns the largest vertex count over all paths.
// Consumers size per-vertex label pools with it.
func (c *Chain) LongestPathSampleCount() int { return c.longest }

// CurrentBounds returns the maximum x and y over the vertices of the current
// (or, once exhausted, the last) path.
func (c *Chain) CurrentBounds() (maxX int, maxY int64) {
	return c.paths[c.idx].Bounds()
}

// FrameCount returns the total number of frames a fresh chain emits before
// ErrExhausted: every sample of every path plus one boundary between each
// pair of consecutive paths.
func (c *Chain) FrameCount() int { return c.frames }
