package widget

import (
	"github.com/lixenwraith/vi-gauge/core"
	"github.com/lixenwraith/vi-gauge/draw"
)

// Part selects a styled sub-element of a widget
type Part uint8

const (
	PartMain Part = iota
	PartIndicator
	PartKnob
	PartItems
	PartTicks
	partCount
)

// BaseDir is the layout direction
type BaseDir uint8

const (
	BaseDirLTR BaseDir = iota
	BaseDirRTL
)

// Style holds the resolved properties of one part
// Resolution from selectors and themes is the host's job, widgets only read
type Style struct {
	PadLeft, PadRight, PadTop, PadBottom int

	// Width and Height size fixed-size parts such as the meter's center cap
	Width, Height int

	TransformWidth  int
	TransformHeight int
	TransformScale  int32 // 256-based, 0 is treated as 256

	BgColor     core.RGB
	BgOpa       core.Opa
	Radius      int
	BorderColor core.RGB
	BorderWidth int
	BorderOpa   core.Opa

	LineColor   core.RGB
	LineWidth   int
	LineOpa     core.Opa
	LineRounded bool

	ArcRounded bool

	TextColor core.RGB
	TextOpa   core.Opa

	// Opa is multiplied down the parent chain
	Opa core.Opa

	// ExtDraw is extra overdraw outside the part box, e.g. shadows
	ExtDraw int

	BaseDir BaseDir
}

// DefaultStyle returns an opaque, unpadded style
func DefaultStyle() Style {
	return Style{
		TransformScale: 256,
		BgOpa:          core.OpaCover,
		BorderOpa:      core.OpaCover,
		LineOpa:        core.OpaCover,
		LineWidth:      1,
		TextColor:      core.RGBWhite,
		TextOpa:        core.OpaCover,
		Opa:            core.OpaCover,
	}
}

// Scale returns the transform scale with zero mapped to identity
func (s Style) Scale() int32 {
	if s.TransformScale == 0 {
		return 256
	}
	return s.TransformScale
}

// RectDesc fills a rect descriptor from the style
func (s Style) RectDesc() draw.RectDesc {
	return draw.RectDesc{
		BgColor:     s.BgColor,
		BgOpa:       s.BgOpa,
		Radius:      s.Radius,
		BorderColor: s.BorderColor,
		BorderWidth: s.BorderWidth,
		BorderOpa:   s.BorderOpa,
	}
}

// LineDesc fills a line descriptor from the style
func (s Style) LineDesc() draw.LineDesc {
	return draw.LineDesc{
		Color:      s.LineColor,
		Width:      s.LineWidth,
		Opa:        s.LineOpa,
		RoundStart: s.LineRounded,
		RoundEnd:   s.LineRounded,
	}
}

// LabelDesc fills a label descriptor from the style
func (s Style) LabelDesc() draw.LabelDesc {
	return draw.LabelDesc{
		Color: s.TextColor,
		Opa:   s.TextOpa,
	}
}
