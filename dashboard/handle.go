package dashboard

import (
	"github.com/lixenwraith/vi-gauge/config"
	"github.com/lixenwraith/vi-gauge/input"
	"github.com/lixenwraith/vi-gauge/terminal"
	"github.com/lixenwraith/vi-gauge/vmath"
	"github.com/lixenwraith/vi-gauge/widget"
)

// StatusRows is the number of terminal rows kept below the canvas
const StatusRows = 1

// HandleIntent routes one intent to the widgets
// Returns false when the dashboard should exit
func (d *Dashboard) HandleIntent(in *input.Intent) bool {
	switch in.Type {
	case input.IntentQuit:
		return false

	case input.IntentResize:
		d.Layout(terminal.PixelSize(in.Cols, max(in.Rows-StatusRows, 1)))

	case input.IntentPointerDown:
		d.pointer.Point = in.Point
		hit := widget.Event{Code: widget.EventHitTest, Point: in.Point}
		d.slider.HandleEvent(&hit)
		if !hit.HitResult {
			return true
		}
		d.pressed = true
		d.setFocus(FocusSlider)
		d.send(widget.EventPressed, &d.pointer)

	case input.IntentPointerMove:
		if d.pressed {
			d.pointer.Point = in.Point
			d.send(widget.EventPressing, &d.pointer)
		}

	case input.IntentPointerUp:
		if d.pressed {
			d.pointer.Point = in.Point
			d.pressed = false
			d.send(widget.EventReleased, &d.pointer)
		}

	case input.IntentStep:
		if d.focus == FocusSlider {
			ev := widget.Event{Code: widget.EventKey, Key: in.Key, Indev: &d.keypad}
			d.slider.HandleEvent(&ev)
		} else {
			d.stepMeter(in.Key)
		}

	case input.IntentEditToggle:
		if d.focus != FocusSlider {
			return true
		}
		if !d.group.Editing {
			d.group.Editing = true
			d.slider.Invalidate()
			return true
		}
		// Releasing the keypad walks the range knobs, then leaves edit mode
		d.send(widget.EventReleased, &d.keypad)

	case input.IntentEscape:
		d.group.Editing = false
		d.slider.Invalidate()

	case input.IntentFocusNext:
		d.setFocus((d.focus + 1) % focusCount)

	case input.IntentMuteToggle:
		d.muted = !d.muted
		d.log.Info().Bool("muted", d.muted).Msg("feedback toggled")
	}
	return true
}

func (d *Dashboard) send(code widget.EventCode, indev *widget.Indev) {
	ev := widget.Event{Code: code, Indev: indev}
	d.slider.HandleEvent(&ev)
}

func (d *Dashboard) setFocus(f Focus) {
	if d.focus == f {
		return
	}
	d.focus = f
	d.group.Editing = false
	if f == FocusSlider {
		d.send(widget.EventFocused, &d.keypad)
	}
	d.root.Invalidate()
	d.log.Debug().Stringer("focus", f).Msg("focus changed")
}

// stepMeter nudges value-bound indicators by one percent of the scale
// The slider is left alone, its next change resyncs the meter
func (d *Dashboard) stepMeter(k widget.Key) {
	mc := d.cfg.Meter
	step := max((mc.Max-mc.Min)/100, 1)
	switch k {
	case widget.KeyLeft, widget.KeyDown:
		step = -step
	case widget.KeyRight, widget.KeyUp:
	default:
		return
	}
	for _, b := range d.bindings {
		if b.follow != config.FollowValue {
			continue
		}
		v := vmath.Clamp(mc.Min, b.ind.EndValue()+step, mc.Max)
		d.meter.SetIndicatorValue(b.ind, v)
	}
}
