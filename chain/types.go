package chain

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/collatzline/interp"
)

var (
	// ErrExhausted signals that the last path has been fully streamed.
	// It aliases interp.ErrExhausted so a single errors.Is check covers both.
	ErrExhausted = interp.ErrExhausted

	// ErrNoPaths indicates a chain built from an empty path collection.
	ErrNoPaths = errors.New("chain: no paths")
)

// State is the coarse state of a Chain.
type State int

const (
	// Streaming means the chain is emitting frames of PathIndex().
	Streaming State = iota
	// Exhausted is terminal.
	Exhausted
)

func (s State) String() string {
	switch s {
	case Streaming:
		return "Streaming"
	case Exhausted:
		return "Exhausted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// FrameKind discriminates the two kinds of chain output.
type FrameKind int

const (
	// FramePoint carries a sample point.
	FramePoint FrameKind = iota
	// FrameBoundary separates the last point of one path from the first
	// point of the next. Its Point field is zero and meaningless.
	FrameBoundary
)

// Frame is one pull of a Chain.
type Frame struct {
	Kind  FrameKind
	Point interp.Point
}

// IsBoundary reports whether f is the boundary marker.
func (f Frame) IsBoundary() bool { return f.Kind == FrameBoundary }

func pointFrame(p interp.Point) Frame { return Frame{Kind: FramePoint, Point: p} }

var boundaryFrame = Frame{Kind: FrameBoundary}
