package driver

import (
	"math"
	"strconv"

	"github.com/katalvlaran/collatzline/interp"
)

// DefaultLabelScale is the label offset constant z.
const DefaultLabelScale = 30.0

// Bounds is the visible region [0, MaxX] × [0, MaxY] of the current path.
type Bounds struct {
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// BoundsFor converts a path bounding box into display bounds, adding
// log2(maxY) of headroom above the highest vertex.
func BoundsFor(maxX int, maxY int64) Bounds {
	y := float64(maxY)
	if y > 0 {
		y += math.Log2(y)
	}

	return Bounds{MaxX: float64(maxX), MaxY: y}
}

// Label is the text annotation of one vertex.
type Label struct {
	Slot int     `json:"slot"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Text string  `json:"text"`
}

// LabelPool holds one reusable label per vertex position of the longest path.
type LabelPool struct {
	slots []Label
	scale float64
}

// NewLabelPool returns a pool of size labels using offset constant scale.
func NewLabelPool(size int, scale float64) *LabelPool {
	return &LabelPool{slots: make([]Label, size), scale: scale}
}

// Place positions the label of vertex p against bounds b. The label sits to
// the right of the vertex, above it when the value is even and below it when
// odd. ok is false when p is not a vertex or has no slot.
func (lp *LabelPool) Place(p interp.Point, b Bounds) (l Label, ok bool) {
	if !p.IsVertex() {
		return Label{}, false
	}
	slot := p.Step()
	if slot < 0 || slot >= len(lp.slots) {
		return Label{}, false
	}

	v := int64(math.Round(p.Y))
	l = Label{
		Slot: slot,
		X:    p.X + b.MaxX/(2*b.MaxX+lp.scale),
		Text: strconv.FormatInt(v, 10),
	}
	if v%2 == 0 {
		l.Y = p.Y + b.MaxY/(2*b.MaxY+lp.scale)
	} else {
		l.Y = p.Y - b.MaxY/(b.MaxY+lp.scale)
	}
	lp.slots[slot] = l

	return l, true
}

// Reset clears every label.
func (lp *LabelPool) Reset() {
	clear(lp.slots)
}

// Visible returns the labels currently set, in slot order.
func (lp *LabelPool) Visible() []Label {
	var out []Label
	for _, l := range lp.slots {
		if l.Text != "" {
			out = append(out, l)
		}
	}

	return out
}

// Size returns the number of slots.
func (lp *LabelPool) Size() int { return len(lp.slots) }
