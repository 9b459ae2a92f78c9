package driver

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/katalvlaran/collatzline/chain"
	"github.com/katalvlaran/collatzline/interp"
	"github.com/katalvlaran/collatzline/internal/logging"
)

// Sink receives what a renderer would draw.
type Sink interface {
	// Point appends a sample to the displayed curve.
	Point(p interp.Point)
	// Label shows the annotation of a vertex.
	Label(l Label)
	// Boundary clears the curve and labels and rescales to b.
	Boundary(b Bounds)
	// Done is called once after the last frame.
	Done()
}

// Options configures a Driver. The zero value pulls as fast as possible,
// does not pause and logs nothing.
type Options struct {
	Tick          time.Duration
	BoundaryPause time.Duration
	LabelScale    float64
	Logger        *slog.Logger
}

// Driver pulls a chain once per tick and forwards frames to a Sink.
type Driver struct {
	chain  *chain.Chain
	sink   Sink
	opts   Options
	labels *LabelPool
	bounds Bounds
	log    *slog.Logger

	points     int
	boundaries int
}

// New returns a Driver for c. The label pool is sized from the longest path.
func New(c *chain.Chain, sink Sink, opts Options) *Driver {
	if opts.LabelScale == 0 {
		opts.LabelScale = DefaultLabelScale
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}

	return &Driver{
		chain:  c,
		sink:   sink,
		opts:   opts,
		labels: NewLabelPool(c.LongestPathSampleCount(), opts.LabelScale),
		log:    log,
	}
}

// Run plays the chain to the end. It returns nil once the chain is exhausted
// and ctx.Err() if ctx is cancelled first.
func (d *Driver) Run(ctx context.Context) error {
	d.log.Info("playback started",
		"paths", d.chain.PathCount(),
		"frames", d.chain.FrameCount(),
		"labels", d.labels.Size())
	d.rescale()

	var tick <-chan time.Time
	if d.opts.Tick > 0 {
		t := time.NewTicker(d.opts.Tick)
		defer t.Stop()
		tick = t.C
	}

	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		more, err := d.Step(ctx)
		if err != nil {
			return err
		}
		if !more {
			d.sink.Done()
			d.log.Info("playback finished", "points", d.points, "boundaries", d.boundaries)
			return nil
		}
	}
}

// Step performs a single pull. It reports false once the chain is exhausted.
func (d *Driver) Step(ctx context.Context) (bool, error) {
	f, err := d.chain.Next()
	if errors.Is(err, chain.ErrExhausted) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if f.IsBoundary() {
		d.boundaries++
		d.log.Debug("path boundary", "path", d.chain.PathIndex())
		if err := sleep(ctx, d.opts.BoundaryPause); err != nil {
			return false, err
		}
		d.rescale()
		return true, nil
	}

	d.points++
	d.log.Log(ctx, logging.LevelTrace, "point", "x", f.Point.X, "y", f.Point.Y)
	d.sink.Point(f.Point)
	if l, ok := d.labels.Place(f.Point, d.bounds); ok {
		d.sink.Label(l)
	}

	return true, nil
}

// Labels returns the labels currently visible.
func (d *Driver) Labels() []Label { return d.labels.Visible() }

// Bounds returns the current display bounds.
func (d *Driver) Bounds() Bounds { return d.bounds }

// rescale clears the labels and moves the display to the current path.
func (d *Driver) rescale() {
	d.labels.Reset()
	d.bounds = BoundsFor(d.chain.CurrentBounds())
	d.sink.Boundary(d.bounds)
}

func sleep(ctx context.Context, dur time.Duration) error {
	if dur <= 0 {
		return nil
	}
	t := time.NewTimer(dur)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
