package meter

import (
	"github.com/lixenwraith/vi-gauge/core"
	"github.com/lixenwraith/vi-gauge/draw"
	"github.com/lixenwraith/vi-gauge/vmath"
	"github.com/lixenwraith/vi-gauge/widget"
)

// needlePad covers line thickness plus anti-aliasing around a needle's bounding box
const needlePad = 2

// invalidateArc reports only the wedge swept between two values
func (m *Meter) invalidateArc(arc *Arc, oldValue, newValue int32) {
	center, r := m.geometry()
	r += int(arc.RadiusMod)

	a0 := m.ValueToAngle(oldValue)
	a1 := m.ValueToAngle(newValue)
	rounded := m.Style(widget.PartItems).ArcRounded

	m.InvalidateArea(draw.ArcArea(center, r, min(a0, a1), max(a0, a1), int(arc.Width), rounded))
}

// invalidateNeedle reports the box covered by a needle at value
func (m *Meter) invalidateNeedle(ind *Indicator, value int32) {
	center, r := m.geometry()

	switch k := ind.kind.(type) {
	case *NeedleLine:
		m.InvalidateArea(needleLineArea(center, r+int(m.scale.RadiusMod)+int(k.RadiusMod), m.ValueToAngle(value), int(k.Width)))
	case *NeedleImage:
		if k.Src == nil {
			m.Invalidate()
			return
		}
		b := k.Src.Bounds()
		angle10 := vmath.NormalizeAngle10(m.ValueToAngle(value) * 10)
		a := vmath.TransformedArea(b.Dx(), b.Dy(), angle10, vmath.ScaleNone, k.Pivot)
		origin := center.Sub(k.Pivot)
		m.InvalidateArea(a.Move(origin.X, origin.Y).Increase(needlePad, needlePad))
	}
}

// needleLineArea bounds the segment from center to the tip at angle, padded by width+2
func needleLineArea(center core.Point, r int, angle int32, width int) core.Area {
	tip := vmath.PolarPoint(center, r, angle)
	pad := width + needlePad
	return core.Area{
		X1: min(center.X, tip.X) - pad,
		Y1: min(center.Y, tip.Y) - pad,
		X2: max(center.X, tip.X) + pad,
		Y2: max(center.Y, tip.Y) + pad,
	}
}
