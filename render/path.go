package render

import (
	"math"

	"golang.org/x/image/vector"
)

// maxSegments bounds polyline subdivision of a single curve
const maxSegments = 256

type fpt struct{ x, y float64 }

// pen feeds canvas coordinates into a rasterizer sized to the clip
type pen struct {
	z      *vector.Rasterizer
	ox, oy float64
}

// poly adds a closed subpath, reverse flips its winding to cut a hole
func (p pen) poly(pts []fpt, reverse bool) {
	if len(pts) < 3 {
		return
	}
	at := func(i int) fpt {
		if reverse {
			return pts[len(pts)-1-i]
		}
		return pts[i]
	}
	first := at(0)
	p.z.MoveTo(float32(first.x-p.ox), float32(first.y-p.oy))
	for i := 1; i < len(pts); i++ {
		q := at(i)
		p.z.LineTo(float32(q.x-p.ox), float32(q.y-p.oy))
	}
	p.z.ClosePath()
}

func radians(deg int32) float64 {
	return float64(deg) * math.Pi / 180
}

func sincos(deg float64) (float64, float64) {
	return math.Sincos(deg * math.Pi / 180)
}

func polar(cx, cy, r, a float64) (float64, float64) {
	s, c := math.Sincos(a)
	return cx + r*c, cy + r*s
}

// segments picks a subdivision keeping chords about 2px long
func segments(r, sweep float64) int {
	n := int(math.Abs(sweep)*r/2) + 1
	return min(max(n, 4), maxSegments)
}

// arcPoints appends points along a circle from angle a0 to a1 in radians
func arcPoints(dst []fpt, cx, cy, r, a0, a1 float64) []fpt {
	n := segments(r, a1-a0)
	for i := 0; i <= n; i++ {
		x, y := polar(cx, cy, r, a0+(a1-a0)*float64(i)/float64(n))
		dst = append(dst, fpt{x, y})
	}
	return dst
}

// circlePoints returns a clockwise circle on a y-down screen
func circlePoints(cx, cy, r float64) []fpt {
	if r <= 0 {
		return nil
	}
	pts := arcPoints(nil, cx, cy, r, 0, 2*math.Pi)
	return pts[:len(pts)-1]
}

// roundRectPoints returns a clockwise rectangle with corners rounded by r
func roundRectPoints(x0, y0, x1, y1, r float64) []fpt {
	r = min(r, (x1-x0)/2, (y1-y0)/2)
	if r <= 0 {
		return []fpt{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
	}
	var pts []fpt
	pts = arcPoints(pts, x1-r, y0+r, r, -math.Pi/2, 0)
	pts = arcPoints(pts, x1-r, y1-r, r, 0, math.Pi/2)
	pts = arcPoints(pts, x0+r, y1-r, r, math.Pi/2, math.Pi)
	pts = arcPoints(pts, x0+r, y0+r, r, math.Pi, 3*math.Pi/2)
	return pts
}

// strokeQuad returns the rectangle covering a segment widened by hw on each side
func strokeQuad(x1, y1, x2, y2, hw float64) ([4]fpt, bool) {
	dx, dy := x2-x1, y2-y1
	l := math.Hypot(dx, dy)
	if l == 0 {
		return [4]fpt{}, false
	}
	nx, ny := -dy/l*hw, dx/l*hw
	return [4]fpt{
		{x1 + nx, y1 + ny},
		{x2 + nx, y2 + ny},
		{x2 - nx, y2 - ny},
		{x1 - nx, y1 - ny},
	}, true
}
