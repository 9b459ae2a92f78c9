package driver

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/collatzline/chain"
	"github.com/katalvlaran/collatzline/interp"
	"github.com/katalvlaran/collatzline/interval"
	"github.com/katalvlaran/collatzline/sequence"
)

// recorder is a Sink that keeps every event.
type recorder struct {
	points     []interp.Point
	labels     []Label
	boundaries []Bounds
	done       int
	events     []string
}

func (r *recorder) Point(p interp.Point) { r.points = append(r.points, p); r.events = append(r.events, "P") }
func (r *recorder) Label(l Label)        { r.labels = append(r.labels, l); r.events = append(r.events, "L") }
func (r *recorder) Boundary(b Bounds) {
	r.boundaries = append(r.boundaries, b)
	r.events = append(r.events, "B")
}
func (r *recorder) Done() { r.done++ }

func newChain(t *testing.T, n, density int) *chain.Chain {
	t.Helper()
	paths, err := sequence.Collatz(n)
	require.NoError(t, err)
	c, err := chain.New(paths, interval.NewCosine, interp.WithDensity(density))
	require.NoError(t, err)
	return c
}

func TestBoundsFor_Headroom(t *testing.T) {
	assert.Equal(t, Bounds{MaxX: 7, MaxY: 20}, BoundsFor(7, 16))
	assert.Equal(t, Bounds{MaxX: 1, MaxY: 3}, BoundsFor(1, 2))
	assert.Equal(t, Bounds{MaxX: 1, MaxY: 0}, BoundsFor(1, 0), "no headroom without a positive max")
}

func TestLabelPool_Place(t *testing.T) {
	lp := NewLabelPool(8, DefaultLabelScale)
	b := Bounds{MaxX: 7, MaxY: 20}

	even, ok := lp.Place(interp.Point{X: 3, Y: 16}, b)
	require.True(t, ok)
	assert.Equal(t, 3, even.Slot)
	assert.Equal(t, "16", even.Text)
	assert.InDelta(t, 3+7.0/44, even.X, 1e-12)
	assert.InDelta(t, 16+20.0/70, even.Y, 1e-12, "even values are labelled above")

	odd, ok := lp.Place(interp.Point{X: 2, Y: 5}, b)
	require.True(t, ok)
	assert.InDelta(t, 5-20.0/50, odd.Y, 1e-12, "odd values are labelled below")

	_, ok = lp.Place(interp.Point{X: 2.5, Y: 5}, b)
	assert.False(t, ok, "no label between vertices")
	_, ok = lp.Place(interp.Point{X: 8, Y: 1}, b)
	assert.False(t, ok, "no slot beyond the pool")

	assert.Len(t, lp.Visible(), 2)
	lp.Reset()
	assert.Empty(t, lp.Visible())
}

// TestDriver_Run plays Collatz(3) and checks the event order a renderer sees.
func TestDriver_Run(t *testing.T) {
	c := newChain(t, 3, 2)
	rec := &recorder{}
	d := New(c, rec, Options{})

	require.NoError(t, d.Run(context.Background()))
	assert.Equal(t, 1, rec.done)
	assert.Len(t, rec.points, 2*2+8*2)

	// Initial rescale for path 0, then one per boundary.
	require.Len(t, rec.boundaries, 2)
	assert.Equal(t, BoundsFor(1, 2), rec.boundaries[0])
	assert.Equal(t, BoundsFor(7, 16), rec.boundaries[1])

	// Path 0 labels x=0,1; path 1 labels x=0..7.
	assert.Len(t, rec.labels, 2+8)
	assert.Equal(t, "B", rec.events[0])
	assert.Equal(t, []string{"P", "L"}, rec.events[1:3])

	visible := d.Labels()
	require.Len(t, visible, 8, "labels of the last path remain")
	assert.Equal(t, "1", visible[7].Text)
	assert.Equal(t, BoundsFor(7, 16), d.Bounds())
}

func TestDriver_Cancel(t *testing.T) {
	c := newChain(t, 30, 30)
	rec := &recorder{}
	d := New(c, rec, Options{Tick: time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, d.Run(ctx), context.Canceled)
	assert.Zero(t, rec.done)
}

func TestDriver_CancelDuringPause(t *testing.T) {
	c := newChain(t, 3, 1)
	rec := &recorder{}
	d := New(c, rec, Options{BoundaryPause: time.Hour})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, d.Run(ctx), context.DeadlineExceeded)
	assert.Len(t, rec.points, 2, "stopped in the pause after path 0")
}

func TestDriver_Ticked(t *testing.T) {
	c := newChain(t, 2, 2)
	rec := &recorder{}
	d := New(c, rec, Options{Tick: time.Millisecond, BoundaryPause: time.Millisecond})

	require.NoError(t, d.Run(context.Background()))
	assert.Len(t, rec.points, 4)
	assert.Equal(t, 1, rec.done)
}

func TestTextSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTextSink(&buf)
	require.NoError(t, New(newChain(t, 2, 1), sink, Options{}).Run(context.Background()))
	require.NoError(t, sink.Err)

	want := strings.Join([]string{
		"clear 1.000 3.000",
		"point 0.000 2.000",
		"label 0 0.031 2.083 2",
		"point 1.000 1.000",
		"label 1 1.031 0.909 1",
		"done",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, 6, sink.Count)
}

func TestJSONSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSONSink(&buf)
	require.NoError(t, New(newChain(t, 3, 1), sink, Options{}).Run(context.Background()))
	require.NoError(t, sink.Err)

	var types []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var e struct {
			Type   string  `json:"type"`
			Bounds *Bounds `json:"bounds"`
		}
		require.NoError(t, json.Unmarshal([]byte(line), &e), line)
		types = append(types, e.Type)
		if e.Type == "clear" {
			require.NotNil(t, e.Bounds)
			assert.False(t, math.IsNaN(e.Bounds.MaxY))
		}
	}
	assert.Equal(t, "clear", types[0])
	assert.Equal(t, "done", types[len(types)-1])
	assert.Len(t, types, 1+2*2+1+8*2+1)
}
