package meter

import (
	"image"
	"time"

	"github.com/lixenwraith/vi-gauge/anim"
	"github.com/lixenwraith/vi-gauge/core"
	"github.com/lixenwraith/vi-gauge/widget"
)

// IndicatorType tags the indicator variant
type IndicatorType uint8

const (
	IndicatorArc IndicatorType = iota
	IndicatorNeedleLine
	IndicatorNeedleImage
	IndicatorScaleLines
)

func (t IndicatorType) String() string {
	switch t {
	case IndicatorArc:
		return "arc"
	case IndicatorNeedleLine:
		return "needle_line"
	case IndicatorNeedleImage:
		return "needle_image"
	case IndicatorScaleLines:
		return "scale_lines"
	}
	return "unknown"
}

// Kind is the variant-specific configuration of an indicator
type Kind interface {
	Type() IndicatorType
}

// Arc draws a ring segment from StartValue to EndValue
type Arc struct {
	Width     uint16
	Color     core.RGB
	Src       image.Image // Optional pattern, borrowed
	RadiusMod int16
}

// NeedleLine draws a line from the center toward EndValue
type NeedleLine struct {
	Width     uint16
	Color     core.RGB
	RadiusMod int16
}

// NeedleImage rotates an image about Pivot so it points at EndValue
// Src is borrowed, the caller keeps it alive while the meter uses it
type NeedleImage struct {
	Src   image.Image
	Pivot core.Point
}

// ScaleLines recolors and widens ticks whose value lies in [StartValue, EndValue]
type ScaleLines struct {
	ColorStart core.RGB
	ColorEnd   core.RGB
	Local      bool // Gradient spans the indicator range instead of the whole scale
	WidthMod   int16
}

func (*Arc) Type() IndicatorType         { return IndicatorArc }
func (*NeedleLine) Type() IndicatorType  { return IndicatorNeedleLine }
func (*NeedleImage) Type() IndicatorType { return IndicatorNeedleImage }
func (*ScaleLines) Type() IndicatorType  { return IndicatorScaleLines }

// Indicator is a handle to one marker of a meter
// Values change only through the owning meter so every change is invalidated
type Indicator struct {
	startValue int32
	endValue   int32
	opa        core.Opa
	kind       Kind
	owner      *Meter
}

// StartValue returns the range start
func (ind *Indicator) StartValue() int32 { return ind.startValue }

// EndValue returns the range end, the value needles point at
func (ind *Indicator) EndValue() int32 { return ind.endValue }

// Opa returns the indicator opacity
func (ind *Indicator) Opa() core.Opa { return ind.opa }

// Type returns the variant tag
func (ind *Indicator) Type() IndicatorType { return ind.kind.Type() }

// Kind returns the variant configuration, changing it requires Meter.Invalidate
func (ind *Indicator) Kind() Kind { return ind.kind }

// AddArc adds an arc indicator of the given stroke width, radius shifted by rMod
func (m *Meter) AddArc(width uint16, color core.RGB, rMod int16) *Indicator {
	return m.add(&Arc{Width: width, Color: color, RadiusMod: rMod})
}

// AddNeedleLine adds a line needle, tip radius shifted by rMod
func (m *Meter) AddNeedleLine(width uint16, color core.RGB, rMod int16) *Indicator {
	return m.add(&NeedleLine{Width: width, Color: color, RadiusMod: rMod})
}

// AddNeedleImage adds an image needle rotated about (pivotX, pivotY) of src
func (m *Meter) AddNeedleImage(src image.Image, pivotX, pivotY int) *Indicator {
	return m.add(&NeedleImage{Src: src, Pivot: core.Point{X: pivotX, Y: pivotY}})
}

// AddScaleLines adds a tick recoloring rule
func (m *Meter) AddScaleLines(colorStart, colorEnd core.RGB, local bool, widthMod int16) *Indicator {
	return m.add(&ScaleLines{ColorStart: colorStart, ColorEnd: colorEnd, Local: local, WidthMod: widthMod})
}

// add appends a zeroed, fully opaque indicator so the newest is drawn on top
func (m *Meter) add(kind Kind) *Indicator {
	if m.maxIndicators > 0 && len(m.indicators) >= m.maxIndicators {
		m.log.Warn().
			Str("kind", kind.Type().String()).
			Int("limit", m.maxIndicators).
			Msg("indicator limit reached")
		return nil
	}

	ind := &Indicator{
		opa:   core.OpaCover,
		kind:  kind,
		owner: m,
	}
	m.indicators = append(m.indicators, ind)
	m.log.Debug().Str("kind", kind.Type().String()).Int("count", len(m.indicators)).Msg("indicator added")

	m.Invalidate()
	return ind
}

// Indicators returns the indicator set in draw order, oldest first
func (m *Meter) Indicators() []*Indicator {
	return append([]*Indicator(nil), m.indicators...)
}

// RemoveIndicator cancels the indicator's animations and drops it
func (m *Meter) RemoveIndicator(ind *Indicator) {
	m.checkHandle(ind)
	if m.animator != nil {
		m.animator.Cancel(ind)
	}
	for i, cur := range m.indicators {
		if cur == ind {
			copy(m.indicators[i:], m.indicators[i+1:])
			m.indicators[len(m.indicators)-1] = nil
			m.indicators = m.indicators[:len(m.indicators)-1]
			break
		}
	}
	ind.owner = nil
	m.Invalidate()
}

// Delete releases every indicator, newest first, canceling bound animations
func (m *Meter) Delete() {
	for i := len(m.indicators) - 1; i >= 0; i-- {
		ind := m.indicators[i]
		if m.animator != nil {
			m.animator.Cancel(ind)
		}
		ind.owner = nil
		m.indicators[i] = nil
	}
	m.indicators = m.indicators[:0]
	m.Invalidate()
}

func (m *Meter) checkHandle(ind *Indicator) {
	widget.Assert(ind != nil, "nil indicator handle")
	widget.Assert(ind.owner == m, "indicator not owned by this meter")
}

// SetIndicatorValue sets start and end to value
// Old start and old end are invalidated independently against the new value
func (m *Meter) SetIndicatorValue(ind *Indicator, value int32) {
	m.checkHandle(ind)
	oldStart, oldEnd := ind.startValue, ind.endValue
	ind.startValue = value
	ind.endValue = value

	switch k := ind.kind.(type) {
	case *Arc:
		m.invalidateArc(k, oldStart, value)
		m.invalidateArc(k, oldEnd, value)
	case *NeedleLine, *NeedleImage:
		m.invalidateNeedle(ind, oldStart)
		m.invalidateNeedle(ind, oldEnd)
		m.invalidateNeedle(ind, value)
	default:
		m.Invalidate()
	}
}

// SetIndicatorStartValue moves the range start
func (m *Meter) SetIndicatorStartValue(ind *Indicator, value int32) {
	m.checkHandle(ind)
	old := ind.startValue
	ind.startValue = value
	m.invalidateChange(ind, old, value)
}

// SetIndicatorEndValue moves the range end
func (m *Meter) SetIndicatorEndValue(ind *Indicator, value int32) {
	m.checkHandle(ind)
	old := ind.endValue
	ind.endValue = value
	m.invalidateChange(ind, old, value)
}

func (m *Meter) invalidateChange(ind *Indicator, old, value int32) {
	switch k := ind.kind.(type) {
	case *Arc:
		m.invalidateArc(k, old, value)
	case *NeedleLine, *NeedleImage:
		m.invalidateNeedle(ind, old)
		m.invalidateNeedle(ind, value)
	default:
		m.Invalidate()
	}
}

// SetIndicatorOpa sets opacity, values above core.OpaMax inherit the widget opacity
func (m *Meter) SetIndicatorOpa(ind *Indicator, opa core.Opa) {
	m.checkHandle(ind)
	ind.opa = opa
	m.Invalidate()
}

// SetIndicatorArcSource sets the pattern image of an arc indicator
func (m *Meter) SetIndicatorArcSource(ind *Indicator, src image.Image) {
	m.checkHandle(ind)
	arc, ok := ind.kind.(*Arc)
	widget.Assert(ok, "arc source set on %s indicator", ind.kind.Type())
	arc.Src = src
	m.Invalidate()
}

// AnimateIndicatorValue drives SetIndicatorValue from the current end value to `to`
// Without an animator the value is applied at once
func (m *Meter) AnimateIndicatorValue(ind *Indicator, to int32, d time.Duration, path anim.Path) {
	m.animate(ind, "value", ind.endValue, to, d, path, func(v int32) { m.SetIndicatorValue(ind, v) })
}

// AnimateIndicatorStartValue drives SetIndicatorStartValue
func (m *Meter) AnimateIndicatorStartValue(ind *Indicator, to int32, d time.Duration, path anim.Path) {
	m.animate(ind, "start", ind.startValue, to, d, path, func(v int32) { m.SetIndicatorStartValue(ind, v) })
}

// AnimateIndicatorEndValue drives SetIndicatorEndValue
func (m *Meter) AnimateIndicatorEndValue(ind *Indicator, to int32, d time.Duration, path anim.Path) {
	m.animate(ind, "end", ind.endValue, to, d, path, func(v int32) { m.SetIndicatorEndValue(ind, v) })
}

func (m *Meter) animate(ind *Indicator, key string, from, to int32, d time.Duration, path anim.Path, exec func(int32)) {
	m.checkHandle(ind)
	if m.animator == nil || d <= 0 {
		exec(to)
		return
	}
	m.animator.Start(anim.Anim{
		Owner:    ind,
		Key:      key,
		From:     from,
		To:       to,
		Duration: d,
		Path:     path,
		Exec: func(v int32) {
			// Removed indicators are canceled, this guards animators that tick late
			if ind.owner == m {
				exec(v)
			}
		},
	})
}
