package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-gauge/core"
	"github.com/lixenwraith/vi-gauge/draw"
)

var red = core.RGB{R: 255}

func opaqueRect(c core.RGB) draw.RectDesc {
	return draw.RectDesc{BgColor: c, BgOpa: core.OpaCover}
}

func TestRectFillsExactArea(t *testing.T) {
	c := NewCanvas(40, 40)
	c.Rect(opaqueRect(red), core.Area{X1: 10, Y1: 10, X2: 19, Y2: 19})

	assert.Equal(t, red, c.At(10, 10))
	assert.Equal(t, red, c.At(19, 19))
	assert.Equal(t, core.RGBBlack, c.At(9, 10))
	assert.Equal(t, core.RGBBlack, c.At(20, 19))
}

func TestRectBorder(t *testing.T) {
	c := NewCanvas(40, 40)
	d := draw.RectDesc{
		BgOpa:       core.OpaTransp,
		BorderColor: core.RGBWhite,
		BorderWidth: 2,
		BorderOpa:   core.OpaCover,
	}
	c.Rect(d, core.Area{X1: 0, Y1: 0, X2: 19, Y2: 19})

	assert.Equal(t, core.RGBWhite, c.At(0, 10))
	assert.Equal(t, core.RGBWhite, c.At(1, 10))
	assert.Equal(t, core.RGBBlack, c.At(2, 10), "inside the border")
	assert.Equal(t, core.RGBBlack, c.At(10, 10))
}

func TestClipLimitsDrawing(t *testing.T) {
	c := NewCanvas(40, 40)
	require.True(t, c.SetClip(core.Area{X1: 0, Y1: 0, X2: 9, Y2: 9}))
	c.Rect(opaqueRect(red), c.Bounds())

	assert.Equal(t, red, c.At(9, 9))
	assert.Equal(t, core.RGBBlack, c.At(10, 10))

	assert.False(t, c.SetClip(core.Area{X1: 50, Y1: 50, X2: 60, Y2: 60}))
	c.Rect(opaqueRect(core.RGBWhite), c.Bounds())
	assert.Equal(t, red, c.At(0, 0), "empty clip draws nothing")

	c.ResetClip()
	assert.Equal(t, c.Bounds(), c.Clip())
}

func TestOpacityBlends(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Rect(draw.RectDesc{BgColor: core.RGBWhite, BgOpa: 128}, c.Bounds())
	assert.InDelta(t, 128, int(c.At(5, 5).R), 2)

	c.Clear(core.RGBBlack)
	c.Rect(draw.RectDesc{BgColor: core.RGBWhite, BgOpa: core.OpaMin}, c.Bounds())
	assert.Equal(t, core.RGBBlack, c.At(5, 5), "opacity at or below OpaMin is invisible")
}

func TestLine(t *testing.T) {
	c := NewCanvas(40, 40)
	c.Line(draw.LineDesc{
		P1: core.Point{X: 10, Y: 10}, P2: core.Point{X: 30, Y: 10},
		Width: 3, Color: red, Opa: core.OpaCover,
	})
	assert.Equal(t, red, c.At(20, 10))
	assert.Equal(t, red, c.At(20, 9))
	assert.Equal(t, core.RGBBlack, c.At(20, 14))
	assert.Equal(t, core.RGBBlack, c.At(34, 10))

	c.Clear(core.RGBBlack)
	c.Line(draw.LineDesc{
		P1: core.Point{X: 10, Y: 10}, P2: core.Point{X: 30, Y: 10},
		Width: 6, Color: red, Opa: core.OpaCover, RoundEnd: true,
	})
	assert.Equal(t, red, c.At(31, 10), "round cap extends past the endpoint")
	assert.Equal(t, core.RGBBlack, c.At(8, 10), "square start")
}

func TestArcSegment(t *testing.T) {
	c := NewCanvas(100, 100)
	c.Arc(draw.ArcDesc{
		Center: core.Point{X: 50, Y: 50}, Radius: 20, Width: 4,
		StartAngle: 0, EndAngle: 90, Color: red, Opa: core.OpaCover,
	})
	assert.Equal(t, red, c.At(62, 62), "45 degrees, mid ring")
	assert.Equal(t, core.RGBBlack, c.At(38, 38), "225 degrees, outside the sweep")
	assert.Equal(t, core.RGBBlack, c.At(50, 50), "center")
	assert.Equal(t, core.RGBBlack, c.At(55, 55), "inside the inner radius")
}

func TestArcWrapsAndFullRing(t *testing.T) {
	c := NewCanvas(100, 100)
	c.Arc(draw.ArcDesc{
		Center: core.Point{X: 50, Y: 50}, Radius: 20, Width: 4,
		StartAngle: 270, EndAngle: 0, Color: red, Opa: core.OpaCover,
	})
	assert.Equal(t, red, c.At(62, 37), "315 degrees lies between 270 and 360")
	assert.Equal(t, core.RGBBlack, c.At(62, 62))

	c.Clear(core.RGBBlack)
	c.Arc(draw.ArcDesc{
		Center: core.Point{X: 50, Y: 50}, Radius: 20, Width: 4,
		StartAngle: 0, EndAngle: 360, Color: red, Opa: core.OpaCover,
	})
	for _, p := range []core.Point{{X: 68, Y: 50}, {X: 32, Y: 50}, {X: 50, Y: 68}, {X: 50, Y: 32}} {
		assert.Equal(t, red, c.At(p.X, p.Y), "point %v", p)
	}
	assert.Equal(t, core.RGBBlack, c.At(50, 50))
}

func TestArcPatternSource(t *testing.T) {
	pattern := image.NewUniform(color.RGBA{G: 255, A: 255})
	c := NewCanvas(100, 100)
	c.Arc(draw.ArcDesc{
		Center: core.Point{X: 50, Y: 50}, Radius: 20, Width: 4,
		StartAngle: 0, EndAngle: 90, Color: red, Opa: core.OpaCover, Src: pattern,
	})
	assert.Equal(t, core.RGB{G: 255}, c.At(62, 62))
}

func solidImage(w, h int, col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = col.R, col.G, col.B, col.A
	}
	return img
}

func TestImageRotation(t *testing.T) {
	src := solidImage(4, 4, color.RGBA{R: 255, A: 255})
	area := core.AreaFromSize(10, 10, 4, 4)

	c := NewCanvas(30, 30)
	c.Image(draw.ImageDesc{Src: src, Opa: core.OpaCover}, area)
	assert.Equal(t, red, c.At(11, 11))
	assert.Equal(t, core.RGBBlack, c.At(15, 11))

	// A quarter turn about the top-left corner swings the image left of it
	c.Clear(core.RGBBlack)
	c.Image(draw.ImageDesc{Src: src, Rotation: 900, Opa: core.OpaCover}, area)
	assert.Equal(t, red, c.At(8, 12))
	assert.Equal(t, core.RGBBlack, c.At(12, 12))

	c.Clear(core.RGBBlack)
	c.Image(draw.ImageDesc{Src: nil, Opa: core.OpaCover}, area)
	assert.Equal(t, core.RGBBlack, c.At(11, 11), "nil source is skipped")
}

func TestLabel(t *testing.T) {
	c := NewCanvas(40, 20)
	size := c.TextSize("80")
	assert.Equal(t, core.Point{X: 14, Y: 13}, size)

	area := core.AreaFromSize(2, 2, size.X, size.Y)
	c.Label(draw.LabelDesc{Text: "80", Color: core.RGBWhite, Opa: core.OpaCover}, area)

	lit := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			if c.At(x, y) != core.RGBBlack {
				lit++
				assert.True(t, area.IsPointOn(core.Point{X: x, Y: y}), "pixel %d,%d outside label area", x, y)
			}
		}
	}
	assert.Positive(t, lit)
}

func TestRepaintOnlyDirtyAreas(t *testing.T) {
	c := NewCanvas(40, 40)
	dirty := []core.Area{
		{X1: 0, Y1: 0, X2: 4, Y2: 4},
		{X1: 30, Y1: 30, X2: 39, Y2: 39},
	}
	calls := 0
	c.Repaint(dirty, core.RGBBlack, func(l draw.Layer) {
		calls++
		l.Rect(opaqueRect(red), core.Area{X1: 0, Y1: 0, X2: 39, Y2: 39})
	})

	assert.Equal(t, 2, calls)
	assert.Equal(t, red, c.At(2, 2))
	assert.Equal(t, red, c.At(35, 35))
	assert.Equal(t, core.RGBBlack, c.At(20, 20))
	assert.Equal(t, c.Bounds(), c.Clip(), "clip restored")
}

func TestEncodePNG(t *testing.T) {
	c := NewCanvas(16, 8)
	c.Rect(opaqueRect(red), c.Bounds())

	var buf bytes.Buffer
	require.NoError(t, c.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 16, 8), img.Bounds())
}
