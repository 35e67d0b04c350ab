// Package widget is the minimal object layer the meter and slider build on.
//
// It resolves geometry, per-part styles, recursive opacity and behaviour flags,
// and forwards invalidated areas to the host's repaint scheduler.
package widget

import (
	"github.com/lixenwraith/vi-gauge/core"
)

// Flag toggles object behaviour consulted by the host's input dispatch
type Flag uint32

const (
	FlagScrollable Flag = 1 << iota
	FlagScrollChainHor
	FlagScrollChainVer
	FlagScrollOnFocus
	FlagClickable
)

// Invalidator receives areas that must be redrawn
type Invalidator interface {
	Invalidate(area core.Area)
}

// InvalidatorFunc adapts a function to Invalidator
type InvalidatorFunc func(area core.Area)

func (f InvalidatorFunc) Invalidate(area core.Area) { f(area) }

// ExtDrawFunc grows the overdraw margin, receives the current value and returns the new one
type ExtDrawFunc func(current int) int

// Obj is a positioned, styled node
type Obj struct {
	parent      *Obj
	coords      core.Area
	styles      [partCount]Style
	flags       Flag
	extClickPad int
	extDrawSize int
	invalidator Invalidator

	// transform maps screen points into this object's local space, nil is identity
	transform func(core.Point) core.Point

	valueChanged []func()
	sizeChanged  []func()
	moved        []func()
	styleChanged []func(Part)
	extDraw      []ExtDrawFunc
}

// NewObj creates an object under parent, which may be nil for a screen
// The invalidator is inherited from the parent
func NewObj(parent *Obj) *Obj {
	o := &Obj{
		parent: parent,
		flags:  FlagScrollable | FlagScrollChainHor | FlagScrollChainVer | FlagClickable,
	}
	for i := range o.styles {
		o.styles[i] = DefaultStyle()
	}
	if parent != nil {
		o.invalidator = parent.invalidator
		o.coords = parent.coords
	}
	return o
}

// Parent returns the parent object or nil
func (o *Obj) Parent() *Obj {
	return o.parent
}

// SetInvalidator sets the repaint sink
func (o *Obj) SetInvalidator(inv Invalidator) {
	o.invalidator = inv
}

// Coords returns the object's screen area
func (o *Obj) Coords() core.Area {
	return o.coords
}

// SetCoords moves or resizes the object
// Size listeners run on a resize, coords listeners on any change
func (o *Obj) SetCoords(a core.Area) {
	if a == o.coords {
		return
	}
	resized := a.Width() != o.coords.Width() || a.Height() != o.coords.Height()

	o.Invalidate()
	o.coords = a
	if resized {
		for _, fn := range o.sizeChanged {
			fn()
		}
	}
	for _, fn := range o.moved {
		fn()
	}
	o.Invalidate()
}

// Width returns the object width
func (o *Obj) Width() int {
	return o.coords.Width()
}

// Height returns the object height
func (o *Obj) Height() int {
	return o.coords.Height()
}

// ContentCoords returns the object area shrunk by the main part's padding
func (o *Obj) ContentCoords() core.Area {
	s := &o.styles[PartMain]
	return core.Area{
		X1: o.coords.X1 + s.PadLeft,
		Y1: o.coords.Y1 + s.PadTop,
		X2: o.coords.X2 - s.PadRight,
		Y2: o.coords.Y2 - s.PadBottom,
	}
}

// Style returns the resolved style of a part
func (o *Obj) Style(part Part) Style {
	return o.styles[part]
}

// SetStyle replaces a part's style, notifies listeners and schedules a full redraw
func (o *Obj) SetStyle(part Part, s Style) {
	o.styles[part] = s
	for _, fn := range o.styleChanged {
		fn(part)
	}
	o.Invalidate()
}

// OnStyleChanged registers a listener called after a part's style is replaced
func (o *Obj) OnStyleChanged(fn func(Part)) {
	o.styleChanged = append(o.styleChanged, fn)
}

// OpaRecursive multiplies the part's opacity with every ancestor's main opacity
// Values below OpaMin collapse to fully transparent
func (o *Obj) OpaRecursive(part Part) core.Opa {
	opa := o.styles[part].Opa
	for p := o.parent; p != nil && opa >= core.OpaMin; p = p.parent {
		opa = core.Opa(uint32(opa) * uint32(p.styles[PartMain].Opa) / 255)
	}
	if opa < core.OpaMin {
		return core.OpaTransp
	}
	return opa
}

// HasFlag reports whether every bit of f is set
func (o *Obj) HasFlag(f Flag) bool {
	return o.flags&f == f
}

// AddFlag sets flag bits
func (o *Obj) AddFlag(f Flag) {
	o.flags |= f
}

// ClearFlag clears flag bits
func (o *Obj) ClearFlag(f Flag) {
	o.flags &^= f
}

// ExtClickPad returns the extra hit-test margin
func (o *Obj) ExtClickPad() int {
	return o.extClickPad
}

// SetExtClickPad sets the extra hit-test margin
func (o *Obj) SetExtClickPad(pad int) {
	o.extClickPad = pad
}

// SetTransform installs the screen-to-local point mapping of ancestors
func (o *Obj) SetTransform(fn func(core.Point) core.Point) {
	o.transform = fn
}

// TransformPoint maps a screen point into local space
func (o *Obj) TransformPoint(p core.Point) core.Point {
	if o.transform == nil {
		return p
	}
	return o.transform(p)
}

// Invalidate schedules the whole object, including overdraw, for redraw
func (o *Obj) Invalidate() {
	o.InvalidateArea(o.coords.Increase(o.extDrawSize, o.extDrawSize))
}

// InvalidateArea schedules an area for redraw, clipped to the object's overdraw box
func (o *Obj) InvalidateArea(a core.Area) {
	if o.invalidator == nil {
		return
	}
	clipped, ok := a.Intersect(o.coords.Increase(o.extDrawSize, o.extDrawSize))
	if !ok {
		return
	}
	o.invalidator.Invalidate(clipped)
}

// OnValueChanged registers a value-changed listener
func (o *Obj) OnValueChanged(fn func()) {
	o.valueChanged = append(o.valueChanged, fn)
}

// SendValueChanged notifies value-changed listeners in registration order
func (o *Obj) SendValueChanged() {
	for _, fn := range o.valueChanged {
		fn()
	}
}

// OnSizeChanged registers a resize listener, called after coords are updated
func (o *Obj) OnSizeChanged(fn func()) {
	o.sizeChanged = append(o.sizeChanged, fn)
}

// OnCoordsChanged registers a listener called after any move or resize
func (o *Obj) OnCoordsChanged(fn func()) {
	o.moved = append(o.moved, fn)
}

// AddExtDraw registers an overdraw contributor
func (o *Obj) AddExtDraw(fn ExtDrawFunc) {
	o.extDraw = append(o.extDraw, fn)
}

// ExtDrawSize returns the cached overdraw margin
func (o *Obj) ExtDrawSize() int {
	return o.extDrawSize
}

// RefreshExtDrawSize recomputes the overdraw margin from all contributors
func (o *Obj) RefreshExtDrawSize() {
	s := 0
	for _, fn := range o.extDraw {
		s = fn(s)
	}
	if s == o.extDrawSize {
		return
	}
	o.Invalidate()
	o.extDrawSize = s
	o.Invalidate()
}
