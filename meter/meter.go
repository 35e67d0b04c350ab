// Package meter implements a circular scale with arcs, ticks, labels and needles.
//
// Values are mapped to angles with integer interpolation. Value changes report
// the smallest area that covers the visual change instead of the whole widget.
package meter

import (
	"strconv"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-gauge/anim"
	"github.com/lixenwraith/vi-gauge/core"
	"github.com/lixenwraith/vi-gauge/vmath"
	"github.com/lixenwraith/vi-gauge/widget"
)

// Animator starts and cancels owner-keyed value animations
type Animator interface {
	Start(a anim.Anim)
	anim.Canceler
}

// Meter is a circular scale with an ordered indicator set
type Meter struct {
	*widget.Obj

	scale      Scale
	indicators []*Indicator

	maxIndicators int
	animator      Animator
	labelFmt      func(v int32) string
	log           zerolog.Logger
}

// Option configures a Meter at creation
type Option func(*Meter)

// WithLogger sets the logger, default is a no-op logger
func WithLogger(l zerolog.Logger) Option {
	return func(m *Meter) { m.log = l }
}

// WithAnimator binds an animator, required for AnimateIndicator* and used to cancel on removal
func WithAnimator(a Animator) Option {
	return func(m *Meter) { m.animator = a }
}

// WithMaxIndicators caps the indicator set, Add* returns nil when full, 0 is unlimited
func WithMaxIndicators(n int) Option {
	return func(m *Meter) { m.maxIndicators = n }
}

// WithLabelFormatter replaces the decimal formatting of major tick labels
func WithLabelFormatter(fn func(v int32) string) Option {
	return func(m *Meter) { m.labelFmt = fn }
}

// New creates a meter filling parent's area with the default scale
func New(parent *widget.Obj, opts ...Option) *Meter {
	m := &Meter{
		Obj:   widget.NewObj(parent),
		scale: DefaultScale(),
		log:   zerolog.Nop(),
		labelFmt: func(v int32) string {
			return strconv.FormatInt(int64(v), 10)
		},
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.With().Str("widget", "meter").Logger()
	m.log.Info().Msg("begin")
	return m
}

// Scale returns a copy of the scale configuration
func (m *Meter) Scale() Scale {
	return m.scale
}

// SetScaleTicks sets the count and look of minor ticks
// cnt below 2 disables tick drawing
func (m *Meter) SetScaleTicks(cnt, width, length uint16, color core.RGB) {
	m.scale.TickCount = cnt
	m.scale.TickWidth = width
	m.scale.TickLength = length
	m.scale.TickColor = color
	m.Invalidate()
}

// SetScaleMajorTicks makes every nth tick major and labeled
func (m *Meter) SetScaleMajorTicks(nth, width, length uint16, color core.RGB, labelGap int16) {
	m.scale.MajorNth = nth
	m.scale.MajorWidth = width
	m.scale.MajorLength = length
	m.scale.MajorColor = color
	m.scale.LabelGap = labelGap
	m.Invalidate()
}

// SetScaleRange sets the value range and its angular placement
func (m *Meter) SetScaleRange(minV, maxV int32, angleRange, rotation uint32) {
	widget.Assert(maxV > minV, "meter scale max %d must exceed min %d", maxV, minV)
	m.scale.Min = minV
	m.scale.Max = maxV
	m.scale.AngleRange = angleRange
	m.scale.Rotation = rotation
	m.Invalidate()
}

// SetScaleRadiusMod shifts every needle tip
func (m *Meter) SetScaleRadiusMod(mod int16) {
	m.scale.RadiusMod = mod
	m.Invalidate()
}

// ValueToAngle maps a value to degrees, saturating outside the scale range
func (m *Meter) ValueToAngle(v int32) int32 {
	rot := int32(m.scale.Rotation)
	return vmath.Map(v, m.scale.Min, m.scale.Max, rot, rot+int32(m.scale.AngleRange))
}

// geometry returns the scale center and outer radius for the current content area
func (m *Meter) geometry() (core.Point, int) {
	area := m.ContentCoords()
	r := area.Width() / 2
	return core.Point{X: area.X1 + r, Y: area.Y1 + r}, r
}

// HandleEvent draws on EventDrawMain, other events need no meter handling
func (m *Meter) HandleEvent(ev *widget.Event) widget.Result {
	if ev.Code == widget.EventDrawMain && ev.Layer != nil {
		m.Draw(ev.Layer)
	}
	return widget.ResultOK
}
