// Package slider implements a draggable range control on top of Bar.
//
// Only the knobs react to the pointer. A press records the origin, a drag
// starts once the pointer moves past the device's scroll limit, and the
// pointer position is mapped back to a clamped value on every move.
package slider

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-gauge/core"
	"github.com/lixenwraith/vi-gauge/draw"
	"github.com/lixenwraith/vi-gauge/vmath"
	"github.com/lixenwraith/vi-gauge/widget"
)

// DefaultExtClickPad grows knob hit areas so small knobs stay easy to grab
const DefaultExtClickPad = 8

// Knob identifies a draggable handle
type Knob uint8

const (
	KnobNone Knob = iota
	// KnobEnd drives Value, the right knob (top when vertical)
	KnobEnd
	// KnobStart drives StartValue, the left knob in range mode
	KnobStart
)

func (k Knob) String() string {
	switch k {
	case KnobEnd:
		return "end"
	case KnobStart:
		return "start"
	}
	return "none"
}

// Slider is a Bar with one knob, or two in range mode
type Slider struct {
	*Bar

	dragging      bool
	target        Knob
	leftKnobFocus bool
	pressedPoint  core.Point

	rightKnobArea core.Area
	leftKnobArea  core.Area

	log zerolog.Logger
}

// Option configures a Slider at creation
type Option func(*Slider)

// WithLogger sets the logger, default is a no-op logger
func WithLogger(l zerolog.Logger) Option {
	return func(s *Slider) { s.log = l }
}

// WithMode sets the bar mode
func WithMode(m Mode) Option {
	return func(s *Slider) { s.SetMode(m) }
}

// WithRange sets the value bounds
func WithRange(minV, maxV int32) Option {
	return func(s *Slider) { s.SetRange(minV, maxV) }
}

// New creates a slider filling parent's area
func New(parent *widget.Obj, opts ...Option) *Slider {
	s := &Slider{
		Bar: NewBar(parent),
		log: zerolog.Nop(),
	}

	s.ClearFlag(widget.FlagScrollChainHor | widget.FlagScrollable)
	s.AddFlag(widget.FlagScrollOnFocus)
	s.SetExtClickPad(DefaultExtClickPad)

	s.Bar.changed = s.refreshKnobAreas
	s.AddExtDraw(func(cur int) int { return max(cur, s.knobExtDraw()) })
	s.OnSizeChanged(s.sizeChanged)
	s.OnCoordsChanged(s.refreshKnobAreas)
	s.OnStyleChanged(func(widget.Part) { s.sizeChanged() })

	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With().Str("widget", "slider").Logger()
	s.log.Info().Msg("begin")

	s.sizeChanged()
	return s
}

// IsDragged reports an active drag session
func (s *Slider) IsDragged() bool {
	return s.dragging
}

// LeftKnobFocused reports whether keys step the start knob
func (s *Slider) LeftKnobFocused() bool {
	return s.leftKnobFocus
}

// KnobAreas returns the end and start knob areas from the last layout
// The start area is meaningful only in range mode
func (s *Slider) KnobAreas() (end, start core.Area) {
	return s.rightKnobArea, s.leftKnobArea
}

// HitTest reports whether p lands on a knob grown by the ext click pad
// The track outside the knobs does not react
func (s *Slider) HitTest(p core.Point) bool {
	pad := s.ExtClickPad()
	if s.rightKnobArea.Increase(pad, pad).IsPointOn(p) {
		return true
	}
	return s.Mode() == ModeRange && s.leftKnobArea.Increase(pad, pad).IsPointOn(p)
}

// HandleEvent runs the interaction state machine
func (s *Slider) HandleEvent(ev *widget.Event) widget.Result {
	switch ev.Code {
	case widget.EventHitTest:
		ev.HitResult = s.HitTest(ev.Point)

	case widget.EventPressed:
		if ev.Indev != nil {
			s.pressedPoint = s.TransformPoint(ev.Indev.Point)
		}

	case widget.EventPressing:
		s.updateKnobPos(ev.Indev, true)

	case widget.EventReleased, widget.EventPressLost:
		s.release(ev.Indev)

	case widget.EventFocused:
		if isNavDevice(ev.Indev) {
			s.leftKnobFocus = false
		}

	case widget.EventSizeChanged:
		s.sizeChanged()

	case widget.EventRefrExtDrawSize:
		ev.ExtDrawSize = max(ev.ExtDrawSize, s.knobExtDraw())

	case widget.EventKey:
		return s.key(ev.Key)

	case widget.EventDrawMain:
		if ev.Layer != nil {
			s.Draw(ev.Layer)
		}
	}
	return widget.ResultOK
}

func isNavDevice(indev *widget.Indev) bool {
	return indev != nil && (indev.Type == widget.IndevEncoder || indev.Type == widget.IndevKeypad)
}

func (s *Slider) release(indev *widget.Indev) {
	s.updateKnobPos(indev, false)
	s.dragging = false
	s.target = KnobNone
	s.Invalidate()

	if indev == nil {
		return
	}
	switch {
	case isNavDevice(indev):
		g := indev.Group
		if g == nil || !g.Editing {
			return
		}
		if s.Mode() == ModeRange && !s.leftKnobFocus {
			s.leftKnobFocus = true
			return
		}
		s.leftKnobFocus = false
		g.Editing = false

	case indev.Type == widget.IndevPointer:
		if s.IsHorizontal() {
			s.AddFlag(widget.FlagScrollChainVer)
		} else {
			s.AddFlag(widget.FlagScrollChainHor)
		}
	}
}

func (s *Slider) key(k widget.Key) widget.Result {
	var step int32
	switch k {
	case widget.KeyRight, widget.KeyUp:
		step = 1
	case widget.KeyLeft, widget.KeyDown:
		step = -1
	default:
		return widget.ResultOK
	}

	if s.leftKnobFocus {
		s.SetStartValue(s.StartValue() + step)
	} else {
		s.SetValue(s.Value() + step)
	}
	s.SendValueChanged()
	return widget.ResultOK
}

// sizeChanged keeps the scroll chain on the cross axis and refreshes cached geometry
func (s *Slider) sizeChanged() {
	if s.IsHorizontal() {
		s.AddFlag(widget.FlagScrollChainVer)
		s.ClearFlag(widget.FlagScrollChainHor)
	} else {
		s.AddFlag(widget.FlagScrollChainHor)
		s.ClearFlag(widget.FlagScrollChainVer)
	}
	s.refreshKnobAreas()
	s.RefreshExtDrawSize()
}

// knobExtDraw returns how far knobs may paint outside the widget box
func (s *Slider) knobExtDraw() int {
	st := s.Style(widget.PartKnob)
	size := min(s.Width()+2*st.TransformWidth, s.Height()+2*st.TransformHeight) >> 1
	size = (size * int(st.Scale())) >> 8
	size += max(max(st.PadLeft, st.PadRight), max(st.PadTop, st.PadBottom))
	size += 2
	size += st.ExtDraw
	return size
}

// refreshKnobAreas lays the knobs out around the current value positions
func (s *Slider) refreshKnobAreas() {
	hor := s.IsHorizontal()
	size := s.Width()
	if hor {
		size = s.Height()
	}
	s.rightKnobArea = s.knobArea(s.ValuePos(s.Value()), size, hor)
	s.leftKnobArea = s.knobArea(s.ValuePos(s.StartValue()), size, hor)
}

// knobArea centers a size-long knob on pos and grows it by the knob paddings
func (s *Slider) knobArea(pos, size int, hor bool) core.Area {
	c := s.Coords()
	var a core.Area
	if hor {
		a.X1 = pos - size>>1
		a.X2 = a.X1 + size - 1
		a.Y1, a.Y2 = c.Y1, c.Y2
	} else {
		a.Y1 = pos - size>>1
		a.Y2 = a.Y1 + size - 1
		a.X1, a.X2 = c.X1, c.X2
	}

	st := s.Style(widget.PartKnob)
	a.X1 -= st.PadLeft + st.TransformWidth
	a.X2 += st.PadRight + st.TransformWidth
	a.Y1 -= st.PadTop + st.TransformHeight
	a.Y2 += st.PadBottom + st.TransformHeight
	return a
}

// dragStart picks the knob a drag session moves
func (s *Slider) dragStart(p core.Point) {
	s.dragging = true
	if s.Mode() != ModeRange {
		s.target = KnobEnd
		return
	}

	end, start := s.rightKnobArea, s.leftKnobArea
	hor := s.IsHorizontal()
	rtl := s.isRTL()

	switch {
	case hor && !rtl && p.X > end.X2, hor && rtl && p.X < end.X1, !hor && p.Y < end.Y1:
		s.target = KnobEnd
	case hor && !rtl && p.X < start.X1, hor && rtl && p.X > start.X2, !hor && p.Y > start.Y2:
		s.target = KnobStart
	default:
		var distEnd, distStart int
		if hor {
			distEnd = vmath.Abs(end.Center().X - p.X)
			distStart = vmath.Abs(start.Center().X - p.X)
		} else {
			distEnd = vmath.Abs(end.Center().Y - p.Y)
			distStart = vmath.Abs(start.Center().Y - p.Y)
		}
		if distEnd <= distStart {
			s.target = KnobEnd
			s.leftKnobFocus = false
		} else {
			s.target = KnobStart
			s.leftKnobFocus = true
		}
	}
	s.log.Debug().Stringer("knob", s.target).Int("x", p.X).Int("y", p.Y).Msg("drag start")
}

// updateKnobPos maps the pointer to a value for the dragged knob
// checkDrag holds the value until the pointer passes the scroll limit
func (s *Slider) updateKnobPos(indev *widget.Indev, checkDrag bool) {
	if indev == nil || indev.Type != widget.IndevPointer || indev.Scrolling {
		return
	}

	p := s.TransformPoint(indev.Point)
	hor := s.IsHorizontal()

	if checkDrag && !s.dragging {
		ofs := p.Y - s.pressedPoint.Y
		if hor {
			ofs = p.X - s.pressedPoint.X
		}
		if vmath.Abs(ofs) < indev.ScrollLimit {
			return
		}
	}

	if s.target == KnobNone {
		s.dragStart(p)
	}

	minV, maxV := s.Range()
	if s.target == KnobStart {
		maxV = s.Value()
	} else {
		minV = s.StartValue()
	}
	v := vmath.Clamp(minV, s.PosValue(p), maxV)

	if s.target == KnobStart {
		if v == s.StartValue() {
			return
		}
		s.SetStartValue(v)
	} else {
		if v == s.Value() {
			return
		}
		s.SetValue(v)
	}

	if hor {
		s.ClearFlag(widget.FlagScrollChainVer)
	} else {
		s.ClearFlag(widget.FlagScrollChainHor)
	}
	s.SendValueChanged()
}

// Draw paints the track, the indicator and the knobs, refreshing knob hit areas
func (s *Slider) Draw(layer draw.Layer) {
	s.Bar.Draw(layer)

	s.refreshKnobAreas()
	knob := s.Style(widget.PartKnob).RectDesc()
	layer.Rect(knob, s.rightKnobArea)
	if s.Mode() == ModeRange {
		layer.Rect(knob, s.leftKnobArea)
	}
}
