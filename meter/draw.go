package meter

import (
	"github.com/lixenwraith/vi-gauge/core"
	"github.com/lixenwraith/vi-gauge/draw"
	"github.com/lixenwraith/vi-gauge/vmath"
	"github.com/lixenwraith/vi-gauge/widget"
)

// noMajor seeds the tick counter so it never reaches MajorNth when majors are off
const noMajor = 0xFFFF

// Draw paints arcs, then ticks with labels, then needles, then the center cap
// Within each pass indicators are visited oldest first so the newest ends on top
func (m *Meter) Draw(layer draw.Layer) {
	area := m.ContentCoords()

	m.drawArcs(layer)
	m.drawTicks(layer, area)
	m.drawNeedles(layer)

	center, _ := m.geometry()
	s := m.Style(widget.PartIndicator)
	w, h := s.Width/2, s.Height/2
	layer.Rect(s.RectDesc(), core.Area{
		X1: center.X - w,
		Y1: center.Y - h,
		X2: center.X + w,
		Y2: center.Y + h,
	})
}

func (m *Meter) drawArcs(layer draw.Layer) {
	center, r := m.geometry()
	rounded := m.Style(widget.PartItems).ArcRounded
	opaMain := m.OpaRecursive(widget.PartMain)

	for _, ind := range m.indicators {
		arc, ok := ind.kind.(*Arc)
		if !ok {
			continue
		}
		layer.Arc(draw.ArcDesc{
			Center:     center,
			Radius:     r + int(arc.RadiusMod),
			StartAngle: m.ValueToAngle(ind.startValue),
			EndAngle:   m.ValueToAngle(ind.endValue),
			Width:      int(arc.Width),
			Rounded:    rounded,
			Color:      arc.Color,
			Opa:        core.Compose(opaMain, ind.opa),
			Src:        arc.Src,
		})
	}
}

// TickAt describes one resolved tick, exposed for hosts that draw their own scale
type TickAt struct {
	Index int
	Value int32
	Major bool
	Color core.RGB
	Width int
}

// Ticks resolves value, major status, color and width of every tick
// Fewer than two ticks yields nil
func (m *Meter) Ticks() []TickAt {
	sc := &m.scale
	if sc.TickCount < 2 {
		return nil
	}

	ticks := make([]TickAt, 0, sc.TickCount)
	minorCnt := uint32(noMajor)
	if sc.MajorNth != 0 {
		minorCnt = uint32(sc.MajorNth) - 1
	}

	last := int32(sc.TickCount) - 1
	for i := int32(0); i <= last; i++ {
		minorCnt++
		major := false
		if minorCnt == uint32(sc.MajorNth) {
			minorCnt = 0
			major = true
		}

		t := TickAt{
			Index: int(i),
			Value: vmath.Map(i, 0, last, sc.Min, sc.Max),
			Major: major,
			Color: sc.TickColor,
			Width: int(sc.TickWidth),
		}
		if major {
			t.Color = sc.MajorColor
			t.Width = int(sc.MajorWidth)
		}
		m.applyScaleLines(&t)
		ticks = append(ticks, t)
	}
	return ticks
}

// applyScaleLines lets every covering ScaleLines indicator adjust the tick, later ones win on color
func (m *Meter) applyScaleLines(t *TickAt) {
	for _, ind := range m.indicators {
		sl, ok := ind.kind.(*ScaleLines)
		if !ok {
			continue
		}
		if t.Value < ind.startValue || t.Value > ind.endValue {
			continue
		}

		t.Width += int(sl.WidthMod)
		if sl.ColorStart == sl.ColorEnd {
			t.Color = sl.ColorStart
			continue
		}

		var ratio int32
		if sl.Local {
			ratio = vmath.Map(t.Value, ind.startValue, ind.endValue, int32(core.OpaTransp), int32(core.OpaCover))
		} else {
			ratio = vmath.Map(t.Value, m.scale.Min, m.scale.Max, int32(core.OpaTransp), int32(core.OpaCover))
		}
		t.Color = core.Mix(sl.ColorEnd, sl.ColorStart, uint8(ratio))
	}
}

func (m *Meter) drawTicks(layer draw.Layer, area core.Area) {
	sc := &m.scale
	if sc.TickCount < 2 {
		m.log.Debug().Uint16("ticks", sc.TickCount).Msg("tick drawing skipped")
		return
	}

	rEdge := min(area.Width()/2, area.Height()/2)
	center := core.Point{X: area.X1 + rEdge, Y: area.Y1 + rEdge}
	rOut := rEdge
	rInMajor := rOut - int(sc.MajorLength)
	rInMinor := rOut - int(sc.TickLength)

	s := m.Style(widget.PartTicks)
	lineBase := s.LineDesc()
	labelBase := s.LabelDesc()

	span := int64(sc.AngleRange) * 10
	rot10 := int32(sc.Rotation) * 10
	last := int64(sc.TickCount) - 1

	for _, t := range m.Ticks() {
		angle10 := int32(int64(t.Index)*span/last) + rot10

		rIn := rInMinor
		if t.Major {
			rIn = rInMajor
		}
		pOuter := vmath.TransformPoint(core.Point{X: center.X + rOut, Y: center.Y}, angle10, vmath.ScaleNone, center)
		pInner := vmath.TransformPoint(core.Point{X: center.X + rIn, Y: center.Y}, angle10, vmath.ScaleNone, center)

		if t.Major {
			rText := rInMajor - int(sc.LabelGap)
			p := vmath.TransformPoint(core.Point{X: center.X + rText, Y: center.Y}, angle10, vmath.ScaleNone, center)

			label := labelBase
			label.Text = m.labelFmt(t.Value)
			size := layer.TextSize(label.Text)
			x1 := p.X - size.X/2
			y1 := p.Y - size.Y/2
			layer.Label(label, core.Area{X1: x1, Y1: y1, X2: x1 + size.X, Y2: y1 + size.Y})
		}

		line := lineBase
		line.Color = t.Color
		line.Width = t.Width
		line.P1 = pOuter
		line.P2 = pInner
		layer.Line(line)
	}
}

func (m *Meter) drawNeedles(layer draw.Layer) {
	center, r := m.geometry()
	s := m.Style(widget.PartItems)
	lineBase := s.LineDesc()
	opaMain := m.OpaRecursive(widget.PartMain)

	for _, ind := range m.indicators {
		switch k := ind.kind.(type) {
		case *NeedleLine:
			angle := m.ValueToAngle(ind.endValue)
			line := lineBase
			line.Color = k.Color
			line.Width = int(k.Width)
			line.Opa = core.Compose(opaMain, ind.opa)
			line.P1 = center
			line.P2 = vmath.PolarPoint(center, r+int(m.scale.RadiusMod)+int(k.RadiusMod), angle)
			layer.Line(line)

		case *NeedleImage:
			if k.Src == nil {
				continue
			}
			b := k.Src.Bounds()
			x1 := center.X - k.Pivot.X
			y1 := center.Y - k.Pivot.Y
			layer.Image(draw.ImageDesc{
				Src:      k.Src,
				Pivot:    k.Pivot,
				Rotation: vmath.NormalizeAngle10(m.ValueToAngle(ind.endValue) * 10),
				Scale:    vmath.ScaleNone,
				Opa:      core.Compose(opaMain, ind.opa),
			}, core.Area{X1: x1, Y1: y1, X2: x1 + b.Dx() - 1, Y2: y1 + b.Dy() - 1})
		}
	}
}
