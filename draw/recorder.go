package draw

import (
	"unicode/utf8"

	"github.com/lixenwraith/vi-gauge/core"
)

// CallKind identifies a recorded primitive
type CallKind uint8

const (
	CallArc CallKind = iota
	CallLine
	CallRect
	CallImage
	CallLabel
)

// Call is one recorded primitive with its descriptor and target area
type Call struct {
	Kind  CallKind
	Arc   ArcDesc
	Line  LineDesc
	Rect  RectDesc
	Image ImageDesc
	Label LabelDesc
	Area  core.Area
}

// Recorder is a Layer that stores calls in order instead of drawing
// Text is measured as a monospace grid of GlyphW x GlyphH
type Recorder struct {
	Calls  []Call
	GlyphW int
	GlyphH int
}

// NewRecorder creates a recorder with a 6x10 glyph grid
func NewRecorder() *Recorder {
	return &Recorder{GlyphW: 6, GlyphH: 10}
}

func (r *Recorder) Arc(d ArcDesc) {
	r.Calls = append(r.Calls, Call{Kind: CallArc, Arc: d})
}

func (r *Recorder) Line(d LineDesc) {
	r.Calls = append(r.Calls, Call{Kind: CallLine, Line: d})
}

func (r *Recorder) Rect(d RectDesc, area core.Area) {
	r.Calls = append(r.Calls, Call{Kind: CallRect, Rect: d, Area: area})
}

func (r *Recorder) Image(d ImageDesc, area core.Area) {
	r.Calls = append(r.Calls, Call{Kind: CallImage, Image: d, Area: area})
}

func (r *Recorder) Label(d LabelDesc, area core.Area) {
	r.Calls = append(r.Calls, Call{Kind: CallLabel, Label: d, Area: area})
}

func (r *Recorder) TextSize(text string) core.Point {
	return core.Point{X: utf8.RuneCountInString(text) * r.GlyphW, Y: r.GlyphH}
}

// Filter returns the recorded calls of one kind, in order
func (r *Recorder) Filter(kind CallKind) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Reset drops all recorded calls
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
