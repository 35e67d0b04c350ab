package slider

import (
	"github.com/lixenwraith/vi-gauge/core"
	"github.com/lixenwraith/vi-gauge/draw"
	"github.com/lixenwraith/vi-gauge/vmath"
	"github.com/lixenwraith/vi-gauge/widget"
)

// Mode selects how the bar's indicator is anchored
type Mode uint8

const (
	// ModeNormal fills from min to the value
	ModeNormal Mode = iota
	// ModeSymmetrical fills from 0 to the value when the range spans 0
	ModeSymmetrical
	// ModeRange fills from the start value to the value, both draggable
	ModeRange
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeSymmetrical:
		return "symmetrical"
	case ModeRange:
		return "range"
	}
	return "unknown"
}

// ParseMode maps a config name to a Mode, unknown names yield ModeNormal and false
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "normal", "":
		return ModeNormal, true
	case "symmetrical":
		return ModeSymmetrical, true
	case "range":
		return ModeRange, true
	}
	return ModeNormal, false
}

// Bar holds the value range of a horizontal or vertical track
// Values stay within [min, max] and the start value never exceeds the value
type Bar struct {
	*widget.Obj

	min, max int32
	cur      int32
	start    int32
	mode     Mode

	// changed runs after any stored value moves
	changed func()
}

// NewBar creates a 0..100 bar in normal mode
func NewBar(parent *widget.Obj) *Bar {
	return &Bar{
		Obj: widget.NewObj(parent),
		min: 0,
		max: 100,
	}
}

// Range returns the bounds
func (b *Bar) Range() (int32, int32) {
	return b.min, b.max
}

// SetRange sets the bounds and pulls the values inside
func (b *Bar) SetRange(minV, maxV int32) {
	widget.Assert(maxV > minV, "bar max %d must exceed min %d", maxV, minV)
	if b.min == minV && b.max == maxV {
		return
	}
	b.min, b.max = minV, maxV

	b.cur = vmath.Clamp(minV, b.cur, maxV)
	if b.mode == ModeRange {
		b.start = vmath.Clamp(minV, b.start, b.cur)
	} else {
		b.start = minV
	}
	b.valueMoved()
}

// Value returns the current (end) value
func (b *Bar) Value() int32 {
	return b.cur
}

// SetValue sets the end value, clamped to [start, max]
func (b *Bar) SetValue(v int32) {
	v = vmath.Clamp(b.min, v, b.max)
	v = max(v, b.start)
	if v == b.cur {
		return
	}
	b.cur = v
	b.valueMoved()
}

// StartValue returns the start value, equal to min outside range mode
func (b *Bar) StartValue() int32 {
	return b.start
}

// SetStartValue sets the start value in range mode, clamped to [min, value]
func (b *Bar) SetStartValue(v int32) {
	if b.mode != ModeRange {
		return
	}
	v = vmath.Clamp(b.min, v, b.cur)
	if v == b.start {
		return
	}
	b.start = v
	b.valueMoved()
}

// Mode returns the anchoring mode
func (b *Bar) Mode() Mode {
	return b.mode
}

// SetMode switches mode, leaving range mode resets the start value to min
func (b *Bar) SetMode(m Mode) {
	if m == b.mode {
		return
	}
	b.mode = m
	if m != ModeRange {
		b.start = b.min
	}
	b.valueMoved()
}

func (b *Bar) valueMoved() {
	if b.changed != nil {
		b.changed()
	}
	b.Invalidate()
}

// IsHorizontal reports a track at least as wide as it is tall
func (b *Bar) IsHorizontal() bool {
	return b.Width() >= b.Height()
}

// isRTL reports a mirrored horizontal axis
func (b *Bar) isRTL() bool {
	return b.Style(widget.PartMain).BaseDir == widget.BaseDirRTL
}

// trackLen returns the padded interior length along the main axis
func (b *Bar) trackLen() int {
	a := b.ContentCoords()
	if b.IsHorizontal() {
		return a.Width()
	}
	return a.Height()
}

// ValuePos returns the screen coordinate of v along the main axis
// Horizontal grows right (left for RTL) from the padded edge, vertical grows up from the bottom
func (b *Bar) ValuePos(v int32) int {
	a := b.ContentCoords()
	v = vmath.Clamp(b.min, v, b.max)
	off := int(int64(v-b.min) * int64(b.trackLen()) / int64(b.max-b.min))

	switch {
	case !b.IsHorizontal():
		return a.Y2 - off
	case b.isRTL():
		return a.X2 - off
	default:
		return a.X1 + off
	}
}

// PosValue is the inverse of ValuePos, rounding to nearest and saturating at the bounds
func (b *Bar) PosValue(p core.Point) int32 {
	a := b.ContentCoords()

	var off int
	switch {
	case !b.IsHorizontal():
		off = a.Y2 - p.Y
	case b.isRTL():
		off = a.X2 - p.X
	default:
		off = p.X - a.X1
	}

	length := b.trackLen()
	if length <= 0 {
		return b.min
	}
	rng := int64(b.max) - int64(b.min)
	v := (int64(off)*rng+int64(length/2))/int64(length) + int64(b.min)
	return int32(max(min(v, int64(b.max)), int64(b.min)))
}

// anchor returns the value the indicator grows from
func (b *Bar) anchor() int32 {
	switch {
	case b.mode == ModeRange:
		return b.start
	case b.mode == ModeSymmetrical && b.min < 0 && b.max > 0:
		return 0
	default:
		return b.min
	}
}

// IndicatorArea returns the filled part of the track
func (b *Bar) IndicatorArea() core.Area {
	a := b.ContentCoords()
	p0 := b.ValuePos(b.anchor())
	p1 := b.ValuePos(b.cur)
	if b.IsHorizontal() {
		a.X1, a.X2 = min(p0, p1), max(p0, p1)
	} else {
		a.Y1, a.Y2 = min(p0, p1), max(p0, p1)
	}
	return a
}

// Draw paints the track background and the indicator
func (b *Bar) Draw(layer draw.Layer) {
	layer.Rect(b.Style(widget.PartMain).RectDesc(), b.Coords())

	indic := b.IndicatorArea()
	if indic.Empty() {
		return
	}
	layer.Rect(b.Style(widget.PartIndicator).RectDesc(), indic)
}
