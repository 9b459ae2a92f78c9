package interval

import (
	"math"

	"github.com/katalvlaran/collatzline/sequence"
)

// Func is a continuous function bound to one segment.
type Func interface {
	Evaluate(x float64) float64
}

// Constructor builds a Func for the segment start→end.
type Constructor func(start, end sequence.Vertex) Func

// Cosine is a half-period cosine easing between two vertices.
type Cosine struct {
	x0   float64
	half float64 // (y0−y1)/2
	mid  float64 // (y0+y1)/2
}

// NewCosine builds a Cosine for start→end.
func NewCosine(start, end sequence.Vertex) Func {
	y0, y1 := float64(start.Y), float64(end.Y)

	return Cosine{x0: float64(start.X), half: (y0 - y1) / 2, mid: (y0 + y1) / 2}
}

// Evaluate implements Func.
func (c Cosine) Evaluate(x float64) float64 {
	return math.Cos((x-c.x0)*math.Pi)*c.half + c.mid
}

// Cubic is an odd cubic centred on the segment midpoint.
type Cubic struct {
	center float64 // (x0+x1)/2
	offset float64 // (y0+y1)/2
	scale  float64 // (y1−y0)·4
}

// NewCubic builds a Cubic for start→end.
func NewCubic(start, end sequence.Vertex) Func {
	y0, y1 := float64(start.Y), float64(end.Y)

	return Cubic{
		center: float64(start.X+end.X) / 2,
		offset: (y0 + y1) / 2,
		scale:  (y1 - y0) * 4,
	}
}

// Evaluate implements Func.
func (c Cubic) Evaluate(x float64) float64 {
	d := x - c.center

	return d*d*d*c.scale + c.offset
}

// Power is y = (x−x0)^n·(y1−y0) + y0. Quadratic and Quartic are Power with
// n = 2 and n = 4.
type Power struct {
	n     int
	x0    float64
	y0    float64
	slope float64 // y1−y0
}

// NewQuadratic builds the n = 2 Power for start→end.
func NewQuadratic(start, end sequence.Vertex) Func { return newPower(2, start, end) }

// NewQuartic builds the n = 4 Power for start→end.
func NewQuartic(start, end sequence.Vertex) Func { return newPower(4, start, end) }

func newPower(n int, start, end sequence.Vertex) Power {
	return Power{
		n:     n,
		x0:    float64(start.X),
		y0:    float64(start.Y),
		slope: float64(end.Y - start.Y),
	}
}

// Evaluate implements Func.
func (p Power) Evaluate(x float64) float64 {
	d := x - p.x0
	r := 1.0
	for i := 0; i < p.n; i++ {
		r *= d
	}

	return r*p.slope + p.y0
}

var (
	_ Func        = Cosine{}
	_ Func        = Cubic{}
	_ Func        = Power{}
	_ Constructor = NewCosine
	_ Constructor = NewCubic
	_ Constructor = NewQuadratic
	_ Constructor = NewQuartic
)
