package driver

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/collatzline/interp"
)

// TextSink writes one human-readable line per event.
type TextSink struct {
	w     io.Writer
	Err   error // first write error, later writes are skipped
	Count int   // events written
}

// NewTextSink returns a TextSink writing to w.
func NewTextSink(w io.Writer) *TextSink { return &TextSink{w: w} }

func (s *TextSink) printf(format string, args ...any) {
	if s.Err != nil {
		return
	}
	_, s.Err = fmt.Fprintf(s.w, format, args...)
	s.Count++
}

func (s *TextSink) Point(p interp.Point) { s.printf("point %.3f %.3f\n", p.X, p.Y) }
func (s *TextSink) Label(l Label)        { s.printf("label %d %.3f %.3f %s\n", l.Slot, l.X, l.Y, l.Text) }
func (s *TextSink) Boundary(b Bounds)    { s.printf("clear %.3f %.3f\n", b.MaxX, b.MaxY) }
func (s *TextSink) Done()                { s.printf("done\n") }

// event is the JSON line written by JSONSink.
type event struct {
	Type   string  `json:"type"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Label  *Label  `json:"label,omitempty"`
	Bounds *Bounds `json:"bounds,omitempty"`
}

// JSONSink writes one JSON object per event (JSON lines).
type JSONSink struct {
	enc *json.Encoder
	Err error
}

// NewJSONSink returns a JSONSink writing to w.
func NewJSONSink(w io.Writer) *JSONSink { return &JSONSink{enc: json.NewEncoder(w)} }

func (s *JSONSink) emit(e event) {
	if s.Err != nil {
		return
	}
	s.Err = s.enc.Encode(e)
}

func (s *JSONSink) Point(p interp.Point) { s.emit(event{Type: "point", X: p.X, Y: p.Y}) }
func (s *JSONSink) Label(l Label)        { s.emit(event{Type: "label", Label: &l}) }
func (s *JSONSink) Boundary(b Bounds)    { s.emit(event{Type: "clear", Bounds: &b}) }
func (s *JSONSink) Done()                { s.emit(event{Type: "done"}) }

var (
	_ Sink = (*TextSink)(nil)
	_ Sink = (*JSONSink)(nil)
)
