// Package render rasterizes draw descriptors into an RGBA image.
//
// Canvas is the pixel back end of draw.Layer. Every primitive is limited to
// the current clip, so a host can repaint just the dirty areas a widget
// reported instead of the whole frame.
package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/lixenwraith/vi-gauge/core"
	"github.com/lixenwraith/vi-gauge/draw"
	"github.com/lixenwraith/vi-gauge/vmath"
)

// Canvas is a clip-aware raster Layer
type Canvas struct {
	img  *image.RGBA
	clip core.Area
	face font.Face

	// Optimization: rasterizer and coverage mask reused across primitives
	z    *vector.Rasterizer
	mask *image.Alpha
}

var _ draw.Layer = (*Canvas)(nil)

// NewCanvas creates a black w*h canvas with the 7x13 bitmap font
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		face: basicfont.Face7x13,
		z:    vector.NewRasterizer(1, 1),
	}
	c.Resize(w, h)
	return c
}

// Resize reallocates the image and resets the clip, contents are cleared
func (c *Canvas) Resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	c.img = image.NewRGBA(image.Rect(0, 0, w, h))
	c.ResetClip()
	c.Clear(core.RGBBlack)
}

// RGBA returns the backing image
func (c *Canvas) RGBA() *image.RGBA {
	return c.img
}

// Bounds returns the full canvas area
func (c *Canvas) Bounds() core.Area {
	b := c.img.Bounds()
	return core.Area{X1: b.Min.X, Y1: b.Min.Y, X2: b.Max.X - 1, Y2: b.Max.Y - 1}
}

// SetFace replaces the label font
func (c *Canvas) SetFace(f font.Face) {
	c.face = f
}

// SetClip limits drawing to a, returns false when a lies off canvas
func (c *Canvas) SetClip(a core.Area) bool {
	clip, ok := a.Intersect(c.Bounds())
	if !ok {
		c.clip = core.Area{X1: 0, Y1: 0, X2: -1, Y2: -1}
		return false
	}
	c.clip = clip
	return true
}

// ResetClip allows drawing on the whole canvas
func (c *Canvas) ResetClip() {
	c.clip = c.Bounds()
}

// Clip returns the current clip area
func (c *Canvas) Clip() core.Area {
	return c.clip
}

// Clear fills the clip area with an opaque color
func (c *Canvas) Clear(bg core.RGB) {
	r := areaRect(c.clip)
	if r.Empty() {
		return
	}
	xdraw.Draw(c.img, r, image.NewUniform(toRGBA(bg)), image.Point{}, xdraw.Src)
}

// At returns the pixel at (x, y)
func (c *Canvas) At(x, y int) core.RGB {
	p := c.img.RGBAAt(x, y)
	return core.RGB{R: p.R, G: p.G, B: p.B}
}

// Repaint clears and redraws each area in turn with the clip set to it
func (c *Canvas) Repaint(areas []core.Area, bg core.RGB, paint func(draw.Layer)) {
	for _, a := range areas {
		if !c.SetClip(a) {
			continue
		}
		c.Clear(bg)
		paint(c)
	}
	c.ResetClip()
}

// EncodePNG writes the canvas as PNG
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// Arc draws a ring segment, angles run clockwise from 3 o'clock
func (c *Canvas) Arc(d draw.ArcDesc) {
	if d.Width <= 0 || d.Radius <= 0 {
		return
	}
	start, end := d.StartAngle, d.EndAngle
	if end < start {
		end += vmath.FullTurn
	}
	if start == end {
		return
	}

	cx := float64(d.Center.X) + 0.5
	cy := float64(d.Center.Y) + 0.5
	rOut := float64(d.Radius)
	rIn := float64(max(d.Radius-d.Width, 0))

	var src image.Image = image.NewUniform(toRGBA(d.Color))
	sp := image.Point{}
	if d.Src != nil {
		src = d.Src
		origin := image.Pt(d.Center.X-d.Radius, d.Center.Y-d.Radius)
		sp = d.Src.Bounds().Min.Add(areaRect(c.clip).Min.Sub(origin))
	}

	c.fill(src, sp, d.Opa, func(p pen) {
		if end-start >= vmath.FullTurn {
			p.poly(circlePoints(cx, cy, rOut), false)
			if rIn > 0 {
				p.poly(circlePoints(cx, cy, rIn), true)
			}
			return
		}

		a0, a1 := radians(start), radians(end)
		pts := arcPoints(nil, cx, cy, rOut, a0, a1)
		if rIn > 0 {
			pts = arcPoints(pts, cx, cy, rIn, a1, a0)
		} else {
			pts = append(pts, fpt{cx, cy})
		}
		p.poly(pts, false)

		if d.Rounded {
			mid := (rOut + rIn) / 2
			capR := (rOut - rIn) / 2
			for _, a := range [2]float64{a0, a1} {
				x, y := polar(cx, cy, mid, a)
				p.poly(circlePoints(x, y, capR), false)
			}
		}
	})
}

// Line draws a stroke of d.Width centered on the segment
func (c *Canvas) Line(d draw.LineDesc) {
	if d.Width <= 0 {
		return
	}
	x1, y1 := float64(d.P1.X)+0.5, float64(d.P1.Y)+0.5
	x2, y2 := float64(d.P2.X)+0.5, float64(d.P2.Y)+0.5
	hw := float64(d.Width) / 2

	c.fill(image.NewUniform(toRGBA(d.Color)), image.Point{}, d.Opa, func(p pen) {
		if q, ok := strokeQuad(x1, y1, x2, y2, hw); ok {
			p.poly(q[:], false)
		}
		if d.RoundStart {
			p.poly(circlePoints(x1, y1, hw), false)
		}
		if d.RoundEnd {
			p.poly(circlePoints(x2, y2, hw), false)
		}
	})
}

// Rect fills the background then strokes the border inside the area
func (c *Canvas) Rect(d draw.RectDesc, area core.Area) {
	if area.Empty() {
		return
	}
	x0, y0 := float64(area.X1), float64(area.Y1)
	x1, y1 := float64(area.X2+1), float64(area.Y2+1)
	radius := float64(d.Radius)

	c.fill(image.NewUniform(toRGBA(d.BgColor)), image.Point{}, d.BgOpa, func(p pen) {
		p.poly(roundRectPoints(x0, y0, x1, y1, radius), false)
	})

	if d.BorderWidth <= 0 {
		return
	}
	bw := float64(d.BorderWidth)
	c.fill(image.NewUniform(toRGBA(d.BorderColor)), image.Point{}, d.BorderOpa, func(p pen) {
		p.poly(roundRectPoints(x0, y0, x1, y1, radius), false)
		if x1-x0 > 2*bw && y1-y0 > 2*bw {
			p.poly(roundRectPoints(x0+bw, y0+bw, x1-bw, y1-bw, max(radius-bw, 0)), true)
		}
	})
}

// Image draws d.Src with its top-left at area's corner, rotated and scaled about d.Pivot
func (c *Canvas) Image(d draw.ImageDesc, area core.Area) {
	if d.Src == nil || d.Opa <= core.OpaMin {
		return
	}
	clip := areaRect(c.clip)
	if clip.Empty() {
		return
	}
	dst := c.img.SubImage(clip).(*image.RGBA)

	scale := d.Scale
	if scale == 0 {
		scale = vmath.ScaleNone
	}
	s := float64(scale) / vmath.ScaleNone
	sin, cos := sincos(float64(vmath.NormalizeAngle10(d.Rotation)) / 10)

	sr := d.Src.Bounds()
	px := float64(sr.Min.X + d.Pivot.X)
	py := float64(sr.Min.Y + d.Pivot.Y)
	ox := float64(area.X1 + d.Pivot.X)
	oy := float64(area.Y1 + d.Pivot.Y)

	a, b := s*cos, -s*sin
	dd, e := s*sin, s*cos
	s2d := f64.Aff3{
		a, b, ox - (a*px + b*py),
		dd, e, oy - (dd*px + e*py),
	}

	var opts *xdraw.Options
	if d.Opa < core.OpaMax {
		opts = &xdraw.Options{SrcMask: image.NewUniform(color.Alpha{A: uint8(d.Opa)})}
	}
	xdraw.BiLinear.Transform(dst, s2d, d.Src, sr, xdraw.Over, opts)
}

// Label draws one line of text with its top-left at area's corner
func (c *Canvas) Label(d draw.LabelDesc, area core.Area) {
	if d.Text == "" || d.Opa <= core.OpaMin {
		return
	}
	clip, ok := area.Intersect(c.clip)
	if !ok {
		return
	}
	dr := &font.Drawer{
		Dst:  c.img.SubImage(areaRect(clip)).(*image.RGBA),
		Src:  image.NewUniform(color.NRGBA{R: d.Color.R, G: d.Color.G, B: d.Color.B, A: uint8(d.Opa)}),
		Face: c.face,
		Dot:  fixed.P(area.X1, area.Y1+c.face.Metrics().Ascent.Ceil()),
	}
	dr.DrawString(d.Text)
}

// TextSize measures text with the canvas font
func (c *Canvas) TextSize(text string) core.Point {
	return core.Point{
		X: font.MeasureString(c.face, text).Ceil(),
		Y: c.face.Metrics().Height.Ceil(),
	}
}

// fill composites src through the coverage of the traced path, limited to the clip
// sp is the src point aligned with the clip's top-left corner
func (c *Canvas) fill(src image.Image, sp image.Point, opa core.Opa, trace func(p pen)) {
	if opa <= core.OpaMin {
		return
	}
	r := areaRect(c.clip)
	if r.Empty() {
		return
	}
	w, h := r.Dx(), r.Dy()

	c.z.Reset(w, h)
	trace(pen{z: c.z, ox: float64(r.Min.X), oy: float64(r.Min.Y)})

	if c.mask == nil || c.mask.Rect.Dx() != w || c.mask.Rect.Dy() != h {
		c.mask = image.NewAlpha(image.Rect(0, 0, w, h))
	}
	c.z.DrawOp = xdraw.Src
	c.z.Draw(c.mask, c.mask.Rect, image.Opaque, image.Point{})

	if opa < core.OpaMax {
		for i, a := range c.mask.Pix {
			c.mask.Pix[i] = uint8(uint32(a) * uint32(opa) / 255)
		}
	}
	xdraw.DrawMask(c.img, r, src, sp, c.mask, image.Point{}, xdraw.Over)
}

// areaRect converts an inclusive area to a half-open rectangle
func areaRect(a core.Area) image.Rectangle {
	if a.Empty() {
		return image.Rectangle{}
	}
	return image.Rect(a.X1, a.Y1, a.X2+1, a.Y2+1)
}

func toRGBA(c core.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}
