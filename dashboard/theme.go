package dashboard

import (
	"github.com/lixenwraith/vi-gauge/config"
	"github.com/lixenwraith/vi-gauge/core"
	"github.com/lixenwraith/vi-gauge/widget"
)

var (
	trackColor = core.RGB{R: 0x2a, G: 0x2f, B: 0x36}
	fillColor  = core.RGB{R: 0x2e, G: 0x7d, B: 0xff}
)

// applyTheme resolves the part styles, widgets only read them
func (d *Dashboard) applyTheme() {
	major := config.MustColor(d.cfg.Meter.MajorColor)

	ticks := widget.DefaultStyle()
	ticks.TextColor = major
	d.meter.SetStyle(widget.PartTicks, ticks)

	items := widget.DefaultStyle()
	items.LineRounded = true
	items.ArcRounded = true
	d.meter.SetStyle(widget.PartItems, items)

	hub := widget.DefaultStyle()
	hub.Width, hub.Height = 6, 6
	hub.Radius = 3
	hub.BgColor = major
	d.meter.SetStyle(widget.PartIndicator, hub)

	track := widget.DefaultStyle()
	track.BgColor = trackColor
	track.Radius = sliderHeight / 2
	if d.cfg.Slider.RTL {
		track.BaseDir = widget.BaseDirRTL
	}
	d.slider.SetStyle(widget.PartMain, track)

	fill := widget.DefaultStyle()
	fill.BgColor = d.fillColor()
	fill.Radius = sliderHeight / 2
	d.slider.SetStyle(widget.PartIndicator, fill)

	knob := widget.DefaultStyle()
	knob.BgColor = core.RGBWhite
	knob.Radius = sliderHeight
	knob.PadLeft, knob.PadRight, knob.PadTop, knob.PadBottom = 1, 1, 1, 1
	d.slider.SetStyle(widget.PartKnob, knob)
}

// fillColor borrows the color of the first range-bound arc
func (d *Dashboard) fillColor() core.RGB {
	for _, ic := range d.cfg.Meter.Indicators {
		if ic.Kind == config.KindArc && ic.Follow == config.FollowRange {
			return config.MustColor(ic.Color)
		}
	}
	return fillColor
}
