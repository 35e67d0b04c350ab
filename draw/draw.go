// Package draw defines the drawing primitives consumed by widgets.
//
// Widgets never rasterize. They fill descriptors and hand them to a Layer,
// which may be a pixel canvas, a terminal, or a Recorder in tests.
package draw

import (
	"image"

	"github.com/lixenwraith/vi-gauge/core"
)

// ArcDesc describes a ring segment
// Angles are degrees, 0 at 3 o'clock, growing clockwise on a y-down screen
type ArcDesc struct {
	Center     core.Point
	Radius     int // Outer radius
	StartAngle int32
	EndAngle   int32
	Width      int
	Rounded    bool
	Color      core.RGB
	Opa        core.Opa
	Src        image.Image // Optional pattern, sampled instead of Color
}

// LineDesc describes a straight stroke
type LineDesc struct {
	P1, P2     core.Point
	Width      int
	Color      core.RGB
	Opa        core.Opa
	RoundStart bool
	RoundEnd   bool
}

// RectDesc describes a filled, optionally bordered rectangle
type RectDesc struct {
	BgColor     core.RGB
	BgOpa       core.Opa
	Radius      int
	BorderColor core.RGB
	BorderWidth int
	BorderOpa   core.Opa
}

// ImageDesc describes an image drawn into an area, optionally rotated about Pivot
// Rotation is in tenths of degree, Scale is 256-based
type ImageDesc struct {
	Src      image.Image
	Pivot    core.Point
	Rotation int32
	Scale    int32
	Opa      core.Opa
}

// LabelDesc describes a single line of text
type LabelDesc struct {
	Text  string
	Color core.RGB
	Opa   core.Opa
}

// Layer is the drawing target for one render pass
type Layer interface {
	Arc(d ArcDesc)
	Line(d LineDesc)
	Rect(d RectDesc, area core.Area)
	Image(d ImageDesc, area core.Area)
	Label(d LabelDesc, area core.Area)

	// TextSize measures text with the layer's font
	TextSize(text string) core.Point
}
