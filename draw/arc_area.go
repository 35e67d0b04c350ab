package draw

import (
	"github.com/lixenwraith/vi-gauge/core"
	"github.com/lixenwraith/vi-gauge/vmath"
)

// ArcArea returns the bounding box of the ring segment between startAngle and endAngle
// The box covers both end caps at inner and outer radius plus every cardinal extreme swept.
// Rounded caps add half the width, one extra pixel covers the anti-aliased edge
func ArcArea(center core.Point, radius int, startAngle, endAngle int32, width int, rounded bool) core.Area {
	if endAngle < startAngle {
		startAngle, endAngle = endAngle, startAngle
	}

	extra := 1
	if rounded {
		extra += width/2 + 1
	}

	// Full ring
	if endAngle-startAngle >= vmath.FullTurn {
		return core.Area{
			X1: center.X - radius,
			Y1: center.Y - radius,
			X2: center.X + radius,
			Y2: center.Y + radius,
		}.Increase(extra, extra)
	}

	rin := max(radius-width, 0)

	p := vmath.PolarPoint(center, radius, startAngle)
	a := core.Area{X1: p.X, Y1: p.Y, X2: p.X, Y2: p.Y}
	extend := func(q core.Point) {
		a.X1 = min(a.X1, q.X)
		a.Y1 = min(a.Y1, q.Y)
		a.X2 = max(a.X2, q.X)
		a.Y2 = max(a.Y2, q.Y)
	}
	extend(vmath.PolarPoint(center, rin, startAngle))
	extend(vmath.PolarPoint(center, radius, endAngle))
	extend(vmath.PolarPoint(center, rin, endAngle))

	// Cardinal extremes between the two angles
	for k := firstQuarterAtOrAfter(startAngle); k <= endAngle; k += 90 {
		switch vmath.NormalizeAngle(k) {
		case 0:
			extend(core.Point{X: center.X + radius, Y: center.Y})
		case 90:
			extend(core.Point{X: center.X, Y: center.Y + radius})
		case 180:
			extend(core.Point{X: center.X - radius, Y: center.Y})
		case 270:
			extend(core.Point{X: center.X, Y: center.Y - radius})
		}
	}

	return a.Increase(extra, extra)
}

// firstQuarterAtOrAfter rounds angle up to the next multiple of 90
func firstQuarterAtOrAfter(angle int32) int32 {
	q := angle / 90 * 90
	if q < angle {
		q += 90
	}
	return q
}
